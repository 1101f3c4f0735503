package domain

import (
	"fmt"
	"time"
)

// Document represents an ingested document with metadata.
// It is immutable once created; the chunk count is derived during ingestion.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Filename is the original name of the uploaded file.
	Filename string

	// FileType is the detected format (pdf, docx, or txt).
	FileType FileType

	// Path is where the original bytes are stored on disk.
	Path string

	// ExtractedText is the full plain text extracted from the file.
	ExtractedText string

	// ChunkCount is the number of chunks produced during ingestion.
	ChunkCount int

	// CreatedAt is when the document was ingested.
	CreatedAt time.Time

	// UpdatedAt is when the record was last written.
	UpdatedAt time.Time
}

// Chunk is a bounded contiguous span of a document's text, the unit of
// embedding and retrieval. Chunks are created in batch at ingestion and
// never mutated.
type Chunk struct {
	// ID is the deterministic identifier derived from (DocumentID, Index).
	ID string

	// DocumentID links to the owning Document.
	DocumentID string

	// Index is the ordinal position within the document's chunk sequence.
	// Indices are contiguous starting at 0.
	Index int

	// Text is the chunk's text span.
	Text string
}

// ChunkID derives the identifier of a chunk from its document and position.
// The derivation is the invariant that lets chunk IDs be reconstructed from a
// document's chunk count alone, without a lookup table.
func ChunkID(documentID string, index int) string {
	return fmt.Sprintf("%s_chunk_%d", documentID, index)
}

// ChunkIDs reconstructs the full ordered ID sequence for a document with the
// given chunk count.
func ChunkIDs(documentID string, chunkCount int) []string {
	if chunkCount <= 0 {
		return nil
	}
	ids := make([]string, chunkCount)
	for i := range ids {
		ids[i] = ChunkID(documentID, i)
	}
	return ids
}

// DocumentSummary is the listing view of a document.
type DocumentSummary struct {
	ID         string    `json:"document_id"`
	Filename   string    `json:"filename"`
	FileType   FileType  `json:"file_type"`
	ChunkCount int       `json:"chunk_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// ChunkDetail is a chunk as shown in the document detail view.
type ChunkDetail struct {
	ID   string `json:"chunk_id"`
	Text string `json:"text"`
}

// DocumentDetail is the full view of a document: the summary plus the
// extracted text and the reconstructed chunk list.
type DocumentDetail struct {
	DocumentSummary
	ExtractedText string        `json:"extracted_text"`
	Chunks        []ChunkDetail `json:"chunks"`
}

// Summary returns the listing view of a document.
func (d *Document) Summary() DocumentSummary {
	return DocumentSummary{
		ID:         d.ID,
		Filename:   d.Filename,
		FileType:   d.FileType,
		ChunkCount: d.ChunkCount,
		CreatedAt:  d.CreatedAt,
	}
}
