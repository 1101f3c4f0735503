package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/askdoc-labs/askdoc-cli/internal/chunker"
	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driven"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driving"
	"github.com/askdoc-labs/askdoc-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService runs the ingestion pipeline: validate, store the original
// file, extract text, chunk, embed, index, and record metadata.
type IngestService struct {
	extractors     driven.ExtractorRegistry
	fileStore      driven.FileStore
	docStore       driven.DocumentStore
	embedder       driven.EmbeddingService
	index          driven.VectorIndex
	chunker        *chunker.Chunker
	maxUploadBytes int64
}

// NewIngestService creates a new ingest service. The vector index may be nil
// when it failed to initialise; ingestion then fails fast.
func NewIngestService(
	extractors driven.ExtractorRegistry,
	fileStore driven.FileStore,
	docStore driven.DocumentStore,
	embedder driven.EmbeddingService,
	index driven.VectorIndex,
	ch *chunker.Chunker,
	maxUploadBytes int64,
) *IngestService {
	if ch == nil {
		ch = chunker.New()
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = domain.DefaultMaxUploadBytes
	}
	return &IngestService{
		extractors:     extractors,
		fileStore:      fileStore,
		docStore:       docStore,
		embedder:       embedder,
		index:          index,
		chunker:        ch,
		maxUploadBytes: maxUploadBytes,
	}
}

// Ingest processes one uploaded document.
//
// The stored file is removed again if any later step fails, so a failed
// ingestion leaves no trace. The metadata record is written last; a document
// listed by the store is always fully indexed.
func (s *IngestService) Ingest(ctx context.Context, filename string, content []byte, mimeType string) (*driving.IngestResult, error) {
	if s.index == nil {
		return nil, domain.ErrVectorIndexUnavailable
	}

	fileType, err := domain.DetectFileType(mimeType)
	if err != nil {
		return nil, err
	}

	if len(content) == 0 {
		return nil, fmt.Errorf("%w: empty file", domain.ErrInvalidInput)
	}
	if int64(len(content)) > s.maxUploadBytes {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", domain.ErrFileTooLarge, len(content), s.maxUploadBytes)
	}

	extractor, err := s.extractors.ForType(fileType)
	if err != nil {
		return nil, err
	}

	documentID := uuid.NewString()
	logger.Section("Ingest")
	logger.Debug("ingesting %q as %s document %s", filename, fileType, documentID)

	path, err := s.fileStore.Save(ctx, documentID, fileType.Ext(), content)
	if err != nil {
		return nil, fmt.Errorf("storing file: %w", err)
	}

	chunks, err := s.process(ctx, documentID, filename, extractor, content)
	if err != nil {
		s.cleanup(ctx, documentID, path)
		return nil, err
	}

	doc := &domain.Document{
		ID:            documentID,
		Filename:      filename,
		FileType:      fileType,
		Path:          path,
		ExtractedText: chunks.text,
		ChunkCount:    len(chunks.chunks),
	}
	if err := s.docStore.SaveDocument(ctx, doc); err != nil {
		s.cleanup(ctx, documentID, path)
		return nil, fmt.Errorf("saving document: %w", err)
	}

	logger.Info("ingested %s: %d chunks", documentID, doc.ChunkCount)
	return &driving.IngestResult{
		DocumentID: documentID,
		ChunkCount: doc.ChunkCount,
	}, nil
}

// processed carries the intermediate pipeline output.
type processed struct {
	text   string
	chunks []domain.Chunk
}

// process extracts, chunks, embeds, and indexes the content.
func (s *IngestService) process(ctx context.Context, documentID, filename string, extractor driven.Extractor, content []byte) (*processed, error) {
	text, err := extractor.Extract(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("extracting text: %w", err)
	}
	if text == "" {
		return nil, domain.ErrNoExtractableText
	}

	pieces := s.chunker.Split(text)
	if len(pieces) == 0 {
		return nil, domain.ErrNoChunks
	}
	logger.Debug("chunked into %d pieces", len(pieces))

	chunks := make([]domain.Chunk, len(pieces))
	texts := make([]string, len(pieces))
	for i, piece := range pieces {
		chunks[i] = domain.Chunk{
			ID:         domain.ChunkID(documentID, i),
			DocumentID: documentID,
			Index:      i,
			Text:       piece,
		}
		texts[i] = piece
	}

	embeddings, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embedding chunks: %w", err)
	}
	if len(embeddings) != len(chunks) {
		return nil, fmt.Errorf("embedding count mismatch: %d chunks, %d embeddings", len(chunks), len(embeddings))
	}

	entries := make([]driven.VectorEntry, len(chunks))
	for i, chunk := range chunks {
		entries[i] = driven.VectorEntry{
			ChunkID:   chunk.ID,
			Embedding: embeddings[i],
			Text:      chunk.Text,
			Metadata: driven.ChunkMetadata{
				DocumentID: documentID,
				ChunkIndex: chunk.Index,
				Filename:   filename,
			},
		}
	}

	if err := s.index.Upsert(ctx, entries); err != nil {
		return nil, fmt.Errorf("indexing chunks: %w", err)
	}

	return &processed{text: text, chunks: chunks}, nil
}

// cleanup undoes partial ingestion work. Errors here are logged, not
// returned; the original failure is what the caller needs to see.
func (s *IngestService) cleanup(ctx context.Context, documentID, path string) {
	if err := s.index.DeleteByDocument(ctx, documentID); err != nil {
		logger.Warn("cleanup: removing index entries for %s: %v", documentID, err)
	}
	if err := s.fileStore.Remove(ctx, path); err != nil {
		logger.Warn("cleanup: removing stored file %s: %v", path, err)
	}
}
