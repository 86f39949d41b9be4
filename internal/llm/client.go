package llm

import (
	"context"
	"errors"
)

// Sentinel errors shared by all providers.
var (
	// ErrNotConfigured indicates a missing API credential. It is returned
	// before any network call is attempted.
	ErrNotConfigured = errors.New("llm: API key not configured")
	// ErrEmptyResponse indicates the backend returned no usable text.
	ErrEmptyResponse = errors.New("llm: empty response from model")
)

// Client defines the interface for generative text backends.
type Client interface {
	// Complete sends a prompt and returns the raw completion text. Exactly
	// one attempt is made; transport and backend errors surface unmasked.
	Complete(ctx context.Context, prompt string) (string, error)
}

// Config holds configuration for constructing an LLM client.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
}
