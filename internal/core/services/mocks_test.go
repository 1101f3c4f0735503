package services

import (
	"context"
	"sort"
	"time"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockExtractor implements driven.Extractor for testing.
type mockExtractor struct {
	fileType domain.FileType
	text     string
	err      error
}

func (m *mockExtractor) FileType() domain.FileType {
	return m.fileType
}

func (m *mockExtractor) Extract(_ context.Context, _ []byte) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

// mockRegistry implements driven.ExtractorRegistry for testing.
type mockRegistry struct {
	extractor *mockExtractor
}

func (m *mockRegistry) ForType(fileType domain.FileType) (driven.Extractor, error) {
	if m.extractor == nil || m.extractor.fileType != fileType {
		return nil, domain.ErrUnsupportedType
	}
	return m.extractor, nil
}

// mockFileStore implements driven.FileStore for testing.
type mockFileStore struct {
	saved     map[string][]byte
	removed   []string
	saveErr   error
	removeErr error
}

func newMockFileStore() *mockFileStore {
	return &mockFileStore{saved: make(map[string][]byte)}
}

func (m *mockFileStore) Save(_ context.Context, documentID, ext string, content []byte) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	path := "/data/storage/" + documentID + "." + ext
	m.saved[path] = content
	return path, nil
}

func (m *mockFileStore) Remove(_ context.Context, path string) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	m.removed = append(m.removed, path)
	delete(m.saved, path)
	return nil
}

// mockDocStore implements driven.DocumentStore for testing.
type mockDocStore struct {
	docs      map[string]*domain.Document
	saveErr   error
	deleteErr error
	deleted   []string
}

func newMockDocStore() *mockDocStore {
	return &mockDocStore{docs: make(map[string]*domain.Document)}
}

func (m *mockDocStore) SaveDocument(_ context.Context, doc *domain.Document) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}
	copied := *doc
	m.docs[doc.ID] = &copied
	return nil
}

func (m *mockDocStore) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	doc, ok := m.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *doc
	return &copied, nil
}

func (m *mockDocStore) ListDocuments(_ context.Context, offset, limit int) ([]domain.Document, error) {
	ids := make([]string, 0, len(m.docs))
	for id := range m.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var docs []domain.Document
	for _, id := range ids {
		docs = append(docs, *m.docs[id])
	}

	if offset >= len(docs) {
		return nil, nil
	}
	docs = docs[offset:]
	if limit > 0 && limit < len(docs) {
		docs = docs[:limit]
	}
	return docs, nil
}

func (m *mockDocStore) CountDocuments(_ context.Context) (int, error) {
	return len(m.docs), nil
}

func (m *mockDocStore) DeleteDocument(_ context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	delete(m.docs, id)
	return nil
}

// mockEmbedder implements driven.EmbeddingService for testing.
type mockEmbedder struct {
	embedding  []float32
	err        error
	embedCalls int
	batchCalls int
	lastBatch  []string
}

func (m *mockEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	m.embedCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.embedding, nil
}

func (m *mockEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	m.batchCalls++
	m.lastBatch = texts
	if m.err != nil {
		return nil, m.err
	}
	result := make([][]float32, len(texts))
	for i := range texts {
		result[i] = m.embedding
	}
	return result, nil
}

func (m *mockEmbedder) ModelName() string {
	return "mock/embedding"
}

// mockLLM implements driven.LLMService for testing.
type mockLLM struct {
	response   string
	err        error
	calls      int
	lastSystem string
	lastPrompt string
	lastOpts   driven.GenerateOptions
}

func (m *mockLLM) Generate(_ context.Context, system, prompt string, opts driven.GenerateOptions) (string, error) {
	m.calls++
	m.lastSystem = system
	m.lastPrompt = prompt
	m.lastOpts = opts
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *mockLLM) ModelName() string {
	return "mock/llm"
}

// mockIndex implements driven.VectorIndex for testing.
type mockIndex struct {
	entries   map[string]driven.VectorEntry
	hits      []driven.VectorHit
	upsertErr error
	queryErr  error
	fetchErr  error
	deleteErr error
	deleted   []string
}

func newMockIndex() *mockIndex {
	return &mockIndex{entries: make(map[string]driven.VectorEntry)}
}

func (m *mockIndex) Upsert(_ context.Context, entries []driven.VectorEntry) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	for _, e := range entries {
		m.entries[e.ChunkID] = e
	}
	return nil
}

func (m *mockIndex) Query(_ context.Context, _ []float32, topK int) ([]driven.VectorHit, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	if topK < len(m.hits) {
		return m.hits[:topK], nil
	}
	return m.hits, nil
}

func (m *mockIndex) FetchByIDs(_ context.Context, chunkIDs []string) (map[string]string, error) {
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	result := make(map[string]string)
	for _, id := range chunkIDs {
		if e, ok := m.entries[id]; ok {
			result[id] = e.Text
		}
	}
	return result, nil
}

func (m *mockIndex) DeleteByDocument(_ context.Context, documentID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, documentID)
	for id, e := range m.entries {
		if e.Metadata.DocumentID == documentID {
			delete(m.entries, id)
		}
	}
	return nil
}

func (m *mockIndex) Close() error {
	return nil
}
