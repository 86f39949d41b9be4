package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spendlens/spendlens/internal/config"
	"github.com/spendlens/spendlens/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long:  `Serve the categorization pipeline and expense store over HTTP.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			categorizer, err := initCategorizer()
			if err != nil {
				return err
			}

			srv := server.New(categorizer, store, slog.Default())

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Listen(config.ServerAddr())
			}()

			select {
			case err := <-errCh:
				return fmt.Errorf("server failed: %w", err)
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("failed to shut down server: %w", err)
			}

			slog.Info("Server stopped")
			return nil
		},
	}

	cmd.Flags().String("addr", "", "Listen address (default :8080)")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))

	return cmd
}
