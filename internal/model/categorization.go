// Package model defines the core domain models used throughout the application.
package model

// Confidence is the model's self-reported certainty for a categorization.
type Confidence string

// Confidence ordinal constants.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// IsValid reports whether c is one of the three fixed ordinal values.
func (c Confidence) IsValid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return true
	}
	return false
}

// NormalizeConfidence returns v when it is a valid ordinal and the middle
// value otherwise.
func NormalizeConfidence(v string) Confidence {
	c := Confidence(v)
	if c.IsValid() {
		return c
	}
	return ConfidenceMedium
}

// CategorizationResult is the fully normalized output of the categorization
// pipeline. Every field has been validated against the taxonomy and format
// rules; callers can trust it without further checks.
type CategorizationResult struct {
	CleanedName      string     `json:"cleanedName"`
	Category         string     `json:"suggestedCategory"`
	Subcategory      string     `json:"suggestedSubcategory,omitempty"`
	BrandColor       string     `json:"brandColor,omitempty"`
	BrandAccentColor string     `json:"brandAccentColor,omitempty"`
	LogoURL          string     `json:"brandLogoUrl"`
	ImageURL         string     `json:"imageUrl"`
	ImageKeyword     string     `json:"imageKeyword"`
	Confidence       Confidence `json:"confidence"`
}
