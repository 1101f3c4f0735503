package driven

import (
	"context"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

// DocumentStore persists document metadata.
// Backed by SQLite.
type DocumentStore interface {
	// SaveDocument stores a document record.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// GetDocument retrieves a document by ID.
	// Returns domain.ErrNotFound when no record exists.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// ListDocuments returns documents ordered by creation time (newest
	// first), with pagination offsets.
	ListDocuments(ctx context.Context, offset, limit int) ([]domain.Document, error)

	// CountDocuments returns the total number of stored documents.
	CountDocuments(ctx context.Context) (int, error)

	// DeleteDocument removes a document record.
	DeleteDocument(ctx context.Context, id string) error
}
