// Package config provides configuration utilities for the application.
package config

import (
	"errors"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/spendlens/spendlens/internal/llm"
)

// LoadDotenv loads a .env file from the working directory when present.
// Variables already set in the environment take precedence.
func LoadDotenv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Debug("failed to load .env file", "error", err)
	}
}

// LoadLLMConfig assembles the model client configuration from Viper and
// environment variables. Precedence:
// 1. Viper configuration (config file or SPENDLENS_ env vars)
// 2. Direct environment variables (GEMINI_API_KEY etc.)
func LoadLLMConfig() llm.Config {
	cfg := llm.Config{
		Provider:    viper.GetString("llm.provider"),
		APIKey:      viper.GetString("llm.api_key"),
		Model:       viper.GetString("llm.model"),
		Temperature: viper.GetFloat64("llm.temperature"),
		MaxTokens:   viper.GetInt("llm.max_tokens"),
	}

	if cfg.APIKey == "" {
		switch cfg.Provider {
		case "anthropic":
			cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		case "openai":
			cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		default:
			cfg.APIKey = os.Getenv("GEMINI_API_KEY")
		}
	}

	return cfg
}

// PixabayAPIKey returns the image search credential, empty when image search
// is disabled.
func PixabayAPIKey() string {
	if v := viper.GetString("pixabay.api_key"); v != "" {
		return v
	}
	return os.Getenv("PIXABAY_API_KEY")
}

// DatabasePath returns the expanded SQLite database path.
func DatabasePath() string {
	path := viper.GetString("database.path")
	if path == "" {
		path = "$HOME/.local/share/spendlens/spendlens.db"
	}
	return ExpandPath(path)
}

// ServerAddr returns the HTTP listen address.
func ServerAddr() string {
	if v := viper.GetString("server.addr"); v != "" {
		return v
	}
	return ":8080"
}
