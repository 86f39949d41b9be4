package categorize

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/spendlens/spendlens/internal/llm"
	"github.com/spendlens/spendlens/internal/model"
	"github.com/spendlens/spendlens/internal/taxonomy"
)

var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Synonym key lists per logical field, consulted in priority order. Generative
// output does not reliably use the canonical field names across requests.
var (
	logoKeys        = []string{"brandLogoUrl", "logoUrl", "logo"}
	imageKeys       = []string{"imageUrl", "productImageUrl", "photoUrl", "image"}
	colorKeys       = []string{"brandColor", "brandPrimaryColor"}
	accentColorKeys = []string{"brandAccentColor", "brandSecondaryColor"}
)

// normalize turns an untrusted completion into a guaranteed-valid result.
// Only JSON parse failures and missing required fields are errors; every
// other deviation is repaired silently.
func (c *Categorizer) normalize(ctx context.Context, rawName, completion string) (*model.CategorizationResult, error) {
	parsed, err := parseCompletion(completion)
	if err != nil {
		return nil, err
	}

	cleanedName, _ := stringField(parsed, "cleanedName")
	suggestedCategory, _ := stringField(parsed, "suggestedCategory")
	if cleanedName == "" || suggestedCategory == "" || !fieldPresent(parsed, "confidence") {
		return nil, ErrIncompleteResponse
	}

	category := taxonomy.Normalize(suggestedCategory)
	subcategory := resolveSubcategory(parsed, category)

	confidenceRaw, _ := stringField(parsed, "confidence")
	confidence := model.NormalizeConfidence(confidenceRaw)

	modelLogo := firstValidURL(parsed, logoKeys)
	modelImage := firstValidURL(parsed, imageKeys)
	keyword := deriveKeyword(parsed, cleanedName, subcategory, category, rawName)

	// Visual-identity fallback chain. The pipeline must end with a usable
	// logo and image even though both are optional in the model's output.
	searchImage := ""
	if modelLogo == "" && keyword != "" {
		searchCategory, _ := taxonomy.SearchCategory(category)
		searchImage = normalizeURL(c.search.SearchImage(ctx, keyword, searchCategory))
	}

	placeholder := c.avatars.URL(cleanedName, category)

	logo := modelLogo
	if logo == "" {
		logo = firstNonEmpty(searchImage, modelImage, placeholder)
	}
	image := firstNonEmpty(modelImage, searchImage, logo, placeholder)

	return &model.CategorizationResult{
		CleanedName:      cleanedName,
		Category:         category,
		Subcategory:      subcategory,
		BrandColor:       normalizeColor(firstString(parsed, colorKeys)),
		BrandAccentColor: normalizeColor(firstString(parsed, accentColorKeys)),
		LogoURL:          logo,
		ImageURL:         image,
		ImageKeyword:     keyword,
		Confidence:       confidence,
	}, nil
}

// parseCompletion unwraps any code fencing and parses the completion into a
// generic map. The typed result is only projected out field by field; the
// model's shape is never trusted directly.
func parseCompletion(completion string) (map[string]any, error) {
	unwrapped := llm.CleanMarkdownWrapper(completion)

	var parsed map[string]any
	if err := json.Unmarshal([]byte(unwrapped), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return parsed, nil
}

func resolveSubcategory(parsed map[string]any, category string) string {
	allowed := taxonomy.Subcategories(category)
	if suggested, ok := stringField(parsed, "suggestedSubcategory"); ok {
		for _, sub := range allowed {
			if sub == suggested {
				return sub
			}
		}
	}
	if len(allowed) > 0 {
		return allowed[0]
	}
	return ""
}

// deriveKeyword picks the search keyword from the first non-empty candidate.
// The raw input closes the chain, so the keyword is never empty.
func deriveKeyword(parsed map[string]any, cleanedName, subcategory, category, rawName string) string {
	keyword, _ := stringField(parsed, "imageKeyword")
	return firstNonEmpty(keyword, cleanedName, subcategory, category, rawName)
}

// normalizeColor keeps only syntactically valid hex colors, canonicalized to
// uppercase.
func normalizeColor(value string) string {
	trimmed := strings.TrimSpace(value)
	if !hexColorPattern.MatchString(trimmed) {
		return ""
	}
	return strings.ToUpper(trimmed)
}

// normalizeURL keeps only absolute http/https URLs.
func normalizeURL(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return ""
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ""
	}
	if parsed.Host == "" {
		return ""
	}
	return parsed.String()
}

// firstValidURL returns the first candidate key holding a valid absolute URL.
func firstValidURL(parsed map[string]any, keys []string) string {
	for _, key := range keys {
		if value, ok := stringField(parsed, key); ok {
			if normalized := normalizeURL(value); normalized != "" {
				return normalized
			}
		}
	}
	return ""
}

// firstString returns the first candidate key holding a non-empty string.
func firstString(parsed map[string]any, keys []string) string {
	for _, key := range keys {
		if value, ok := stringField(parsed, key); ok {
			return value
		}
	}
	return ""
}

// stringField extracts a trimmed string value; ok is false for missing keys,
// nulls, non-strings, and empty strings.
func stringField(parsed map[string]any, key string) (string, bool) {
	value, ok := parsed[key]
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// fieldPresent reports whether a key carries any non-null, non-empty value.
func fieldPresent(parsed map[string]any, key string) bool {
	value, ok := parsed[key]
	if !ok || value == nil {
		return false
	}
	if s, isString := value.(string); isString {
		return strings.TrimSpace(s) != ""
	}
	return true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
