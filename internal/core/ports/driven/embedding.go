package driven

import "context"

// EmbeddingService converts text into fixed-length vectors via a remote API.
//
// Implementations must surface domain.ErrAuthRequired before any network call
// when no credential is configured, and wrap non-success responses in a
// domain.RemoteError. There is no caching and no retry: a single failed call
// fails the whole enclosing operation.
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts in one call.
	// The result has the same length and order as the input.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// ModelName returns the name of the embedding model being used.
	ModelName() string
}
