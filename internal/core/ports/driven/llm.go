package driven

import "context"

// LLMService produces chat completions via a remote API.
//
// Error behaviour matches EmbeddingService: domain.ErrAuthRequired before any
// network call when no credential is configured, domain.RemoteError on
// non-success responses, no retries.
type LLMService interface {
	// Generate produces a completion for the prompt under the given system
	// instruction.
	Generate(ctx context.Context, system, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the completion model being used.
	ModelName() string
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate (0 = model default).
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64
}
