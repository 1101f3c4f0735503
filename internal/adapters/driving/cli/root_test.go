package cli

import (
	"context"
	"errors"
	"time"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driving"
)

// Mock services for command tests.

type mockAnswerService struct {
	answer *domain.Answer
	err    error
}

func (m *mockAnswerService) Answer(_ context.Context, question string, _ int) (*domain.Answer, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.answer != nil {
		return m.answer, nil
	}
	return &domain.Answer{
		Text: "Mock answer to: " + question,
		Chunks: []domain.RetrievedChunk{
			{ID: "doc-1_chunk_0", Text: "mock chunk", Score: 0.95},
		},
		DocumentIDs: []string{"doc-1"},
		Model:       "mock/llm",
	}, nil
}

type mockIngestService struct {
	result *driving.IngestResult
	err    error
}

func (m *mockIngestService) Ingest(_ context.Context, _ string, _ []byte, _ string) (*driving.IngestResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &driving.IngestResult{DocumentID: "doc-new", ChunkCount: 3}, nil
}

type mockDocumentService struct {
	summaries []domain.DocumentSummary
	detail    *domain.DocumentDetail
	count     int
	err       error
}

func (m *mockDocumentService) List(_ context.Context, _, _ int) ([]domain.DocumentSummary, error) {
	return m.summaries, m.err
}

func (m *mockDocumentService) Get(_ context.Context, id string) (*domain.DocumentDetail, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.detail != nil {
		return m.detail, nil
	}
	return &domain.DocumentDetail{
		DocumentSummary: domain.DocumentSummary{
			ID:         id,
			Filename:   "mock.txt",
			FileType:   domain.FileTypeTXT,
			ChunkCount: 1,
			CreatedAt:  time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		},
		ExtractedText: "mock extracted text",
		Chunks:        []domain.ChunkDetail{{ID: id + "_chunk_0", Text: "mock chunk"}},
	}, nil
}

func (m *mockDocumentService) Delete(_ context.Context, _ string) error {
	return m.err
}

func (m *mockDocumentService) Count(_ context.Context) (int, error) {
	return m.count, m.err
}

type mockSettingsService struct {
	settings *domain.Settings
	setErr   error
}

func (m *mockSettingsService) Get() (*domain.Settings, error) {
	if m.settings != nil {
		return m.settings, nil
	}
	s := domain.DefaultSettings()
	s.DataDir = "/tmp/askdoc-test"
	return &s, nil
}

func (m *mockSettingsService) Set(_, _ string) error    { return m.setErr }
func (m *mockSettingsService) SetAPIKey(_ string) error { return m.setErr }
func (m *mockSettingsService) ConfigPath() string       { return "/tmp/askdoc-test/config.toml" }

type mockAnswerServiceError struct{}

func (m *mockAnswerServiceError) Answer(_ context.Context, _ string, _ int) (*domain.Answer, error) {
	return nil, errors.New("answer failed")
}

// setupTestServices swaps the package service vars for mocks and returns a
// cleanup function restoring the originals.
func setupTestServices() func() {
	oldIngest := ingestService
	oldAnswer := answerService
	oldDocument := documentService
	oldSettings := settingsService

	ingestService = &mockIngestService{}
	answerService = &mockAnswerService{}
	documentService = &mockDocumentService{}
	settingsService = &mockSettingsService{}

	return func() {
		ingestService = oldIngest
		answerService = oldAnswer
		documentService = oldDocument
		settingsService = oldSettings
	}
}
