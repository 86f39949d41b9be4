package categorize

import (
	"fmt"
	"strings"

	"github.com/spendlens/spendlens/internal/taxonomy"
)

// BuildPrompt constructs the categorization prompt for a raw expense name.
// It is a pure function: the same name always yields the same prompt.
func BuildPrompt(rawName string) string {
	categories := taxonomy.Categories()

	guide := make([]string, 0, len(categories))
	for _, cat := range categories {
		guide = append(guide, fmt.Sprintf("%s: %s", cat, strings.Join(taxonomy.Subcategories(cat), ", ")))
	}

	return fmt.Sprintf(`You are an AI assistant that helps clean and categorize expense names.

Given the raw expense name: %q

Please provide:
1. A cleaned, human-readable version of the name (remove transaction IDs, clean up merchant names, etc.)
2. The most appropriate category from this list: %s
3. The best matching subcategory for that category.
4. Two brand colors that match the expense: a primary hex color and a complementary accent hex color. Always include the leading "#".
5. A logo URL for the brand if you can determine it. Prefer https://logo.clearbit.com/<domain> when a clear domain is known. Use null if unsure.
6. A concise image search keyword (1-3 words, no special characters) that best represents the expense.
7. A high-quality illustrative product image URL (square preferred). Prefer direct HTTPS links from trusted CDNs. Use null if unsure.
8. Your confidence level (high, medium, or low)

Category system:
- %s

Examples:
- "AMZN*AB123CD456" → cleaned: "Amazon", category: "Shopping", subcategory: "Online Shopping"
- "Apple MacBook Pro 16" → cleaned: "MacBook Pro 16\"", category: "Technology & Electronics", subcategory: "Computers & Laptops"
- "IKEA KALLAX Shelf" → cleaned: "KALLAX Shelf", category: "Housing", subcategory: "Furniture"
- "Tesla Model 3" → cleaned: "Tesla Model 3", category: "Transportation", subcategory: "Vehicle Purchase"

Respond ONLY with a JSON object in this exact format (no markdown, no extra text):
{"cleanedName": "cleaned name here", "suggestedCategory": "category here", "suggestedSubcategory": "subcategory here", "brandColor": "#123456", "brandAccentColor": "#654321", "brandLogoUrl": "https://logo.clearbit.com/example.com", "imageKeyword": "keyword here", "imageUrl": "https://images.example.com/photo-id", "confidence": "high"}`,
		rawName,
		strings.Join(categories, ", "),
		strings.Join(guide, "\n- "))
}
