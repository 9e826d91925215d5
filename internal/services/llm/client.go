package llm

import (
	"context"
)

// CompletionRequest carries one prompt to a text-completion provider.
type CompletionRequest struct {
	Prompt string
	System string
}

// TextCompleter interface for different LLM providers
type TextCompleter interface {
	// Name returns the provider identifier used in logs and responses,
	// e.g. "openai" or "gemini".
	Name() string

	// Complete sends the prompt and returns the raw response text.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
