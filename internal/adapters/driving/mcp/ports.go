package mcp

import (
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Answer answers questions over the indexed documents.
	Answer driving.AnswerService

	// Ingest ingests new documents.
	Ingest driving.IngestService

	// Document manages ingested documents.
	Document driving.DocumentService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Answer == nil {
		return ErrMissingAnswerService
	}
	// Ingest and Document are optional; their tools and resources degrade.
	return nil
}
