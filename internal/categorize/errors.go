package categorize

import "errors"

// Terminal pipeline failures. Together with llm.ErrNotConfigured and
// llm.ErrEmptyResponse these form the complete failure set: everything else
// the model gets wrong is repaired silently.
var (
	// ErrEmptyName indicates an empty or whitespace-only expense name. It is
	// returned before any network call.
	ErrEmptyName = errors.New("expense name cannot be empty")
	// ErrMalformedResponse indicates the completion could not be parsed as
	// JSON, meaning the prompt contract was violated.
	ErrMalformedResponse = errors.New("invalid response format from AI")
	// ErrIncompleteResponse indicates the parsed completion is missing a
	// required field.
	ErrIncompleteResponse = errors.New("incomplete response from AI")
)
