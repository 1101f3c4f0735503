package driven

import "context"

// VectorIndex stores chunk vectors with their text and metadata and supports
// nearest-neighbour queries under cosine distance. Approximate search is the
// backend's concern; this port only defines the contract.
type VectorIndex interface {
	// Upsert inserts or replaces entries. Ingestion performs one batch call
	// per document.
	Upsert(ctx context.Context, entries []VectorEntry) error

	// Query returns up to topK entries nearest to the embedding, ordered by
	// ascending cosine distance (descending similarity).
	Query(ctx context.Context, embedding []float32, topK int) ([]VectorHit, error)

	// FetchByIDs returns chunk texts keyed by chunk ID for already-known
	// identifiers. Missing IDs are absent from the result, not an error.
	FetchByIDs(ctx context.Context, chunkIDs []string) (map[string]string, error)

	// DeleteByDocument removes every entry attributed to the document.
	DeleteByDocument(ctx context.Context, documentID string) error

	// Close releases resources.
	Close() error
}

// VectorEntry is a chunk as stored in the index.
type VectorEntry struct {
	// ChunkID is the deterministic chunk identifier.
	ChunkID string

	// Embedding is the chunk's vector representation.
	Embedding []float32

	// Text is the chunk's text, stored alongside the vector so query results
	// can be returned without a second lookup.
	Text string

	// Metadata attributes the chunk to its document.
	Metadata ChunkMetadata
}

// ChunkMetadata is the per-chunk metadata stored in the index.
type ChunkMetadata struct {
	// DocumentID is the owning document.
	DocumentID string

	// ChunkIndex is the chunk's position within the document.
	ChunkIndex int

	// Filename is the original filename, kept for display.
	Filename string
}

// VectorHit is a nearest-neighbour query result.
type VectorHit struct {
	// ChunkID is the matched chunk.
	ChunkID string

	// Text is the chunk's stored text.
	Text string

	// Metadata is the chunk's stored metadata.
	Metadata ChunkMetadata

	// Distance is the cosine distance to the query vector (0 = identical).
	Distance float64
}
