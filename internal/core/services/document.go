package services

import (
	"context"
	"fmt"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driven"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driving"
	"github.com/askdoc-labs/askdoc-cli/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService manages ingested documents.
type DocumentService struct {
	docStore  driven.DocumentStore
	fileStore driven.FileStore
	index     driven.VectorIndex
}

// NewDocumentService creates a new document service. The vector index may be
// nil when it failed to initialise; listing still works, the detail view
// degrades to an empty chunk list, and deletion fails fast.
func NewDocumentService(
	docStore driven.DocumentStore,
	fileStore driven.FileStore,
	index driven.VectorIndex,
) *DocumentService {
	return &DocumentService{
		docStore:  docStore,
		fileStore: fileStore,
		index:     index,
	}
}

// List returns document summaries, newest first.
func (s *DocumentService) List(ctx context.Context, offset, limit int) ([]domain.DocumentSummary, error) {
	docs, err := s.docStore.ListDocuments(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.DocumentSummary, len(docs))
	for i := range docs {
		summaries[i] = docs[i].Summary()
	}
	return summaries, nil
}

// Get returns the full detail for a document. The chunk list is
// reconstructed from the derived chunk IDs and the texts stored in the
// vector index; an unavailable index yields an empty list, not an error.
func (s *DocumentService) Get(ctx context.Context, id string) (*domain.DocumentDetail, error) {
	doc, err := s.docStore.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &domain.DocumentDetail{
		DocumentSummary: doc.Summary(),
		ExtractedText:   doc.ExtractedText,
		Chunks:          []domain.ChunkDetail{},
	}

	if s.index == nil {
		logger.Warn("vector index unavailable, returning document %s without chunks", id)
		return detail, nil
	}

	ids := domain.ChunkIDs(doc.ID, doc.ChunkCount)
	texts, err := s.index.FetchByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetching chunks: %w", err)
	}

	for _, chunkID := range ids {
		text, ok := texts[chunkID]
		if !ok {
			continue
		}
		detail.Chunks = append(detail.Chunks, domain.ChunkDetail{
			ID:   chunkID,
			Text: text,
		})
	}

	return detail, nil
}

// Delete removes a document: its indexed chunks, stored file, and metadata
// record, in that order. The metadata row goes last so a partially deleted
// document remains visible and deletion can be retried.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	if s.index == nil {
		return domain.ErrVectorIndexUnavailable
	}

	doc, err := s.docStore.GetDocument(ctx, id)
	if err != nil {
		return err
	}

	if err := s.index.DeleteByDocument(ctx, id); err != nil {
		return fmt.Errorf("removing index entries: %w", err)
	}

	if err := s.fileStore.Remove(ctx, doc.Path); err != nil {
		return fmt.Errorf("removing stored file: %w", err)
	}

	if err := s.docStore.DeleteDocument(ctx, id); err != nil {
		return fmt.Errorf("removing document record: %w", err)
	}

	logger.Info("deleted document %s", id)
	return nil
}

// Count returns the total number of ingested documents.
func (s *DocumentService) Count(ctx context.Context) (int, error) {
	return s.docStore.CountDocuments(ctx)
}
