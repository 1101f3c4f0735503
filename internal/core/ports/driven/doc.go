// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DocumentStore: document metadata persistence
//   - FileStore: original upload persistence
//   - Extractor / ExtractorRegistry: plain-text extraction per file type
//   - ConfigStore: application configuration
//   - EmbeddingService: text to vector conversion (remote API)
//   - LLMService: answer generation (remote API)
//
// # Optional Interfaces
//
// These can be nil and call sites handle the unavailable branch explicitly:
//
//   - VectorIndex: chunk vector storage and nearest-neighbour query. When it
//     failed to initialise, every retrieval operation fails fast with
//     domain.ErrVectorIndexUnavailable; the document detail view degrades to
//     an empty chunk list instead.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: any adapter package
package driven
