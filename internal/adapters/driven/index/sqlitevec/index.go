// Package sqlitevec provides a SQLite-backed vector index.
//
// Embeddings are stored as little-endian float32 blobs and queried by
// exhaustive cosine distance. Exact search over a single SQLite file keeps
// the index embeddable; collection sizes here are far below the point where
// an approximate index pays off.
package sqlitevec

import (
	"context"
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

// Index is a SQLite-backed vector index.
type Index struct {
	db         *sql.DB
	path       string
	collection string
}

// NewIndex opens or creates an index at the given database path. Collection
// names partition entries within one database file.
func NewIndex(dbPath, collection string) (*Index, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("sqlitevec: database path is required")
	}
	if collection == "" {
		return nil, fmt.Errorf("sqlitevec: collection name is required")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening index database: %w", err)
	}

	idx := &Index{
		db:         db,
		path:       dbPath,
		collection: collection,
	}

	if err := idx.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialising index schema: %w", err)
	}

	return idx, nil
}

// Close closes the database connection.
func (idx *Index) Close() error {
	return idx.db.Close()
}

// Path returns the database file path.
func (idx *Index) Path() string {
	return idx.path
}

func (idx *Index) initSchema() error {
	_, err := idx.db.Exec(`
		CREATE TABLE IF NOT EXISTS vectors (
			collection TEXT NOT NULL,
			chunk_id TEXT NOT NULL,
			document_id TEXT NOT NULL,
			chunk_index INTEGER NOT NULL,
			filename TEXT NOT NULL,
			content TEXT NOT NULL,
			embedding BLOB NOT NULL,
			PRIMARY KEY (collection, chunk_id)
		);
		CREATE INDEX IF NOT EXISTS idx_vectors_document
			ON vectors(collection, document_id);
	`)
	return err
}

// Upsert inserts or replaces entries.
func (idx *Index) Upsert(ctx context.Context, entries []driven.VectorEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := idx.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO vectors (collection, chunk_id, document_id, chunk_index, filename, content, embedding)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(collection, chunk_id) DO UPDATE SET
			document_id = excluded.document_id,
			chunk_index = excluded.chunk_index,
			filename = excluded.filename,
			content = excluded.content,
			embedding = excluded.embedding
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, entry := range entries {
		if _, err := stmt.ExecContext(ctx, idx.collection, entry.ChunkID,
			entry.Metadata.DocumentID, entry.Metadata.ChunkIndex, entry.Metadata.Filename,
			entry.Text, float32SliceToBytes(entry.Embedding)); err != nil {
			return fmt.Errorf("saving vector %s: %w", entry.ChunkID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Query returns up to topK entries nearest to the embedding, ordered by
// ascending cosine distance.
func (idx *Index) Query(ctx context.Context, embedding []float32, topK int) ([]driven.VectorHit, error) {
	if topK <= 0 {
		return nil, nil
	}

	rows, err := idx.db.QueryContext(ctx, `
		SELECT chunk_id, document_id, chunk_index, filename, content, embedding
		FROM vectors WHERE collection = ?
	`, idx.collection)
	if err != nil {
		return nil, fmt.Errorf("querying vectors: %w", err)
	}
	defer rows.Close()

	var hits []driven.VectorHit
	for rows.Next() {
		var hit driven.VectorHit
		var blob []byte
		if err := rows.Scan(&hit.ChunkID, &hit.Metadata.DocumentID, &hit.Metadata.ChunkIndex,
			&hit.Metadata.Filename, &hit.Text, &blob); err != nil {
			return nil, fmt.Errorf("scanning vector: %w", err)
		}

		hit.Distance = cosineDistance(embedding, bytesToFloat32Slice(blob))
		hits = append(hits, hit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating vectors: %w", err)
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Distance != hits[j].Distance {
			return hits[i].Distance < hits[j].Distance
		}
		return hits[i].ChunkID < hits[j].ChunkID
	})

	if len(hits) > topK {
		hits = hits[:topK]
	}
	return hits, nil
}

// FetchByIDs returns chunk texts keyed by chunk ID. Missing IDs are absent
// from the result.
func (idx *Index) FetchByIDs(ctx context.Context, chunkIDs []string) (map[string]string, error) {
	result := make(map[string]string, len(chunkIDs))
	if len(chunkIDs) == 0 {
		return result, nil
	}

	placeholders := strings.Repeat("?,", len(chunkIDs)-1) + "?"
	args := make([]any, 0, len(chunkIDs)+1)
	args = append(args, idx.collection)
	for _, id := range chunkIDs {
		args = append(args, id)
	}

	rows, err := idx.db.QueryContext(ctx,
		"SELECT chunk_id, content FROM vectors WHERE collection = ? AND chunk_id IN ("+placeholders+")",
		args...)
	if err != nil {
		return nil, fmt.Errorf("querying vectors by id: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, content string
		if err := rows.Scan(&id, &content); err != nil {
			return nil, fmt.Errorf("scanning vector: %w", err)
		}
		result[id] = content
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating vectors: %w", err)
	}

	return result, nil
}

// DeleteByDocument removes every entry attributed to the document.
func (idx *Index) DeleteByDocument(ctx context.Context, documentID string) error {
	_, err := idx.db.ExecContext(ctx,
		"DELETE FROM vectors WHERE collection = ? AND document_id = ?",
		idx.collection, documentID)
	if err != nil {
		return fmt.Errorf("deleting vectors for document %s: %w", documentID, err)
	}
	return nil
}

// cosineDistance computes 1 - cosine similarity between two vectors.
// Mismatched or zero-length vectors are maximally distant.
func cosineDistance(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 1
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 1
	}

	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}

// float32SliceToBytes encodes a vector as a little-endian blob.
func float32SliceToBytes(floats []float32) []byte {
	if len(floats) == 0 {
		return nil
	}
	buf := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// bytesToFloat32Slice decodes a little-endian blob back to a vector.
func bytesToFloat32Slice(data []byte) []float32 {
	if len(data) == 0 {
		return nil
	}
	floats := make([]float32, len(data)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return floats
}
