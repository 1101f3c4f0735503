package driving

import (
	"context"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

// DocumentService manages ingested documents.
type DocumentService interface {
	// List returns document summaries with pagination offsets, newest first.
	List(ctx context.Context, offset, limit int) ([]domain.DocumentSummary, error)

	// Get returns the full detail for a document, including its extracted
	// text and reconstructed chunk list. When the vector index is
	// unavailable the chunk list is empty rather than an error.
	Get(ctx context.Context, id string) (*domain.DocumentDetail, error)

	// Delete removes a document: its indexed chunks, stored file, and
	// metadata record.
	Delete(ctx context.Context, id string) error

	// Count returns the total number of ingested documents.
	Count(ctx context.Context) (int, error)
}
