// Package extractors provides plain-text extraction for the supported upload
// formats and a registry keyed by file type.
//
// Each format lives in its own subpackage implementing driven.Extractor.
// The registry is the single selection point used by the ingestion pipeline.
package extractors
