// Package imagesearch provides a Pixabay-backed image lookup used to enrich
// categorized expenses. It is best-effort only: every failure degrades to "no
// result" so that image search can never fail a categorization.
package imagesearch

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const defaultPixabayBaseURL = "https://pixabay.com/api/"

var keywordSanitizer = regexp.MustCompile(`[^a-zA-Z0-9\s-]`)

// Client queries the Pixabay image search API.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	apiKey     string
	baseURL    string
}

// NewClient creates a Pixabay client. An empty API key is allowed and simply
// disables search: every lookup returns no result.
func NewClient(apiKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: defaultPixabayBaseURL,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Configured reports whether an API key is available.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// pixabayHit is the subset of a Pixabay search hit the adapter cares about.
type pixabayHit struct {
	PreviewURL    string `json:"previewURL"`
	WebformatURL  string `json:"webformatURL"`
	LargeImageURL string `json:"largeImageURL"`
}

type pixabayResponse struct {
	Hits []pixabayHit `json:"hits"`
}

// SearchImage returns one candidate image URL for the keyword, or the empty
// string. searchCategory is an optional Pixabay category tag biasing results.
// Network failures, bad statuses, and empty result sets are absorbed.
func (c *Client) SearchImage(ctx context.Context, keyword, searchCategory string) string {
	if c.apiKey == "" {
		return ""
	}

	sanitized := sanitizeKeyword(keyword)
	if sanitized == "" {
		return ""
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", sanitized)
	params.Set("image_type", "photo")
	params.Set("orientation", "horizontal")
	params.Set("safesearch", "true")
	params.Set("per_page", "5")
	if searchCategory != "" {
		params.Set("category", searchCategory)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), http.NoBody)
	if err != nil {
		c.logger.Debug("pixabay request build failed", "error", err)
		return ""
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("pixabay request failed", "error", err, "keyword", sanitized)
		return ""
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("pixabay request failed",
			"status", resp.StatusCode,
			"keyword", sanitized)
		return ""
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn("pixabay response read failed", "error", err)
		return ""
	}

	var response pixabayResponse
	if err := json.Unmarshal(body, &response); err != nil {
		c.logger.Warn("pixabay response parse failed", "error", err)
		return ""
	}

	if len(response.Hits) == 0 {
		return ""
	}

	// Prefer the first hit carrying a CDN preview URL.
	hit := response.Hits[0]
	for _, h := range response.Hits {
		if h.PreviewURL != "" {
			hit = h
			break
		}
	}

	// The preview is tiny; Pixabay's CDN naming convention allows upgrading
	// it to the 640px variant in place.
	candidate := strings.Replace(hit.PreviewURL, "_150.", "_640.", 1)
	if candidate == "" {
		candidate = hit.WebformatURL
	}
	if candidate == "" {
		candidate = hit.LargeImageURL
	}

	if !strings.HasPrefix(candidate, "http") {
		return ""
	}

	return candidate
}

// sanitizeKeyword trims the query to at most three words of letters, digits,
// spaces, and hyphens, bounding query cost and avoiding search-syntax
// injection.
func sanitizeKeyword(keyword string) string {
	cleaned := keywordSanitizer.ReplaceAllString(strings.TrimSpace(keyword), " ")
	words := strings.Fields(cleaned)
	if len(words) > 3 {
		words = words[:3]
	}
	return strings.Join(words, " ")
}
