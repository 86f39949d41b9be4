package llm

import "strings"

// CleanMarkdownWrapper strips a surrounding markdown code fence from a model
// completion, with or without a language tag. Models wrap JSON in fences
// despite instructions not to; the content inside is returned unchanged.
func CleanMarkdownWrapper(content string) string {
	trimmed := strings.TrimSpace(content)

	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	// Drop the language tag, e.g. ```json.
	trimmed = strings.TrimPrefix(trimmed, "json")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")

	return strings.TrimSpace(trimmed)
}
