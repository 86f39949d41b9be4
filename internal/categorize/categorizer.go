// Package categorize implements the AI-assisted expense categorization
// pipeline: prompt construction, a single model invocation, and normalization
// of the untrusted completion into a guaranteed-valid result.
package categorize

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spendlens/spendlens/internal/avatar"
	"github.com/spendlens/spendlens/internal/llm"
	"github.com/spendlens/spendlens/internal/model"
)

// ImageSearcher finds one candidate image URL for a keyword, or nothing. It
// must absorb its own failures; the pipeline treats an empty result as "no
// image from search" and moves on.
type ImageSearcher interface {
	SearchImage(ctx context.Context, keyword, searchCategory string) string
}

// noSearch disables the image-search stage when no adapter is configured.
type noSearch struct{}

func (noSearch) SearchImage(context.Context, string, string) string { return "" }

// Categorizer runs the canonical categorization pipeline. One instance serves
// both the CLI and the HTTP endpoint; invocations are independent and safe to
// run concurrently.
type Categorizer struct {
	client  llm.Client
	search  ImageSearcher
	avatars *avatar.Generator
	logger  *slog.Logger
}

// NewCategorizer creates a Categorizer. client may be nil when no model
// credential is configured; Categorize then fails with llm.ErrNotConfigured
// before any network call. search may be nil to disable image search.
func NewCategorizer(client llm.Client, search ImageSearcher, logger *slog.Logger) *Categorizer {
	if search == nil {
		search = noSearch{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Categorizer{
		client:  client,
		search:  search,
		avatars: avatar.NewGenerator(),
		logger:  logger,
	}
}

// Categorize cleans and categorizes a raw expense name. It makes exactly one
// model call and at most one image-search call; there are no retries. The
// result is fully normalized or the error is one of the terminal failure
// kinds — never a partial result.
func (c *Categorizer) Categorize(ctx context.Context, rawName string) (*model.CategorizationResult, error) {
	if strings.TrimSpace(rawName) == "" {
		return nil, ErrEmptyName
	}
	if c.client == nil {
		return nil, llm.ErrNotConfigured
	}

	prompt := BuildPrompt(rawName)

	completion, err := c.client.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("categorization failed: %w", err)
	}

	result, err := c.normalize(ctx, rawName, completion)
	if err != nil {
		c.logger.Warn("unusable model completion",
			"raw_name", rawName,
			"error", err)
		return nil, err
	}

	c.logger.Info("expense categorized",
		"raw_name", rawName,
		"cleaned_name", result.CleanedName,
		"category", result.Category,
		"subcategory", result.Subcategory,
		"confidence", result.Confidence)

	return result, nil
}
