package driving

import "context"

// IngestResult reports a successful ingestion.
type IngestResult struct {
	// DocumentID is the identifier assigned to the new document.
	DocumentID string `json:"document_id"`

	// ChunkCount is the number of chunks embedded and indexed.
	ChunkCount int `json:"chunk_count"`
}

// IngestService ingests documents: store the file, extract text, chunk,
// embed, index, and record metadata.
type IngestService interface {
	// Ingest processes one uploaded document. The mimeType is the declared
	// type of the content; unsupported types fail with
	// domain.ErrUnsupportedType before any work is done.
	Ingest(ctx context.Context, filename string, content []byte, mimeType string) (*IngestResult, error)
}
