// Package llm provides clients for generative text backends. Each client
// performs exactly one completion attempt per call; retry policy belongs to
// the caller, and the categorization pipeline deliberately has none.
package llm
