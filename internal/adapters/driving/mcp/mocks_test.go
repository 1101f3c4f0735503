package mcp

import (
	"context"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driving"
)

// mockAnswerService implements driving.AnswerService for testing.
type mockAnswerService struct {
	answer *domain.Answer
	err    error
}

func (m *mockAnswerService) Answer(_ context.Context, _ string, _ int) (*domain.Answer, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.answer, nil
}

// mockDocumentService implements driving.DocumentService for testing.
type mockDocumentService struct {
	summaries []domain.DocumentSummary
	detail    *domain.DocumentDetail
	deleted   []string
	err       error
}

func (m *mockDocumentService) List(_ context.Context, _, _ int) ([]domain.DocumentSummary, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.summaries, nil
}

func (m *mockDocumentService) Get(_ context.Context, id string) (*domain.DocumentDetail, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.detail == nil {
		return nil, domain.ErrNotFound
	}
	return m.detail, nil
}

func (m *mockDocumentService) Delete(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockDocumentService) Count(_ context.Context) (int, error) {
	return len(m.summaries), nil
}

// mockIngestService implements driving.IngestService for testing.
type mockIngestService struct {
	result *driving.IngestResult
	err    error
}

func (m *mockIngestService) Ingest(_ context.Context, _ string, _ []byte, _ string) (*driving.IngestResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}
