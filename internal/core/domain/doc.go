// Package domain defines the core business entities for askdoc.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: an ingested document with its extracted text and metadata
//   - Chunk: the unit of embedding and retrieval within a document
//   - Answer: the result of a retrieval-augmented query
//   - FileType: the supported upload formats
//
// It also defines the domain error taxonomy used across all adapters.
package domain
