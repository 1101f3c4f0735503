// Package sqlite provides a SQLite-backed document metadata store.
//
// The store holds one row per ingested document. Chunk text lives in the
// vector index; chunk IDs are derived from the document ID and chunk count,
// so no chunk table is needed here.
package sqlite
