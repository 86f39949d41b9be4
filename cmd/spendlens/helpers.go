package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spendlens/spendlens/internal/categorize"
	"github.com/spendlens/spendlens/internal/common"
	"github.com/spendlens/spendlens/internal/config"
	"github.com/spendlens/spendlens/internal/imagesearch"
	"github.com/spendlens/spendlens/internal/llm"
	"github.com/spendlens/spendlens/internal/service"
	"github.com/spendlens/spendlens/internal/storage"
)

// initStorage opens the expense database and runs migrations.
func initStorage(ctx context.Context) (service.Storage, error) {
	store, err := storage.NewSQLiteStorage(config.DatabasePath())
	if err != nil {
		return nil, common.NewUserError("failed to open expense database", err)
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, common.NewUserError("failed to run migrations", err)
	}

	return store, nil
}

// initCategorizer assembles the full categorization pipeline from config.
func initCategorizer() (service.Categorizer, error) {
	client, err := llm.NewClient(config.LoadLLMConfig())
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			return nil, common.NewUserError("no model credential configured, set GEMINI_API_KEY or llm.api_key", err)
		}
		return nil, err
	}

	search := imagesearch.NewClient(config.PixabayAPIKey(), slog.Default())
	if !search.Configured() {
		slog.Debug("image search disabled, no Pixabay API key configured")
	}

	return categorize.NewCategorizer(client, search, slog.Default()), nil
}
