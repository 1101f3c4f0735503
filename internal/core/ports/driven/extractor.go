package driven

import (
	"context"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

// Extractor converts raw file bytes of one format into plain text.
type Extractor interface {
	// FileType returns the format this extractor handles.
	FileType() domain.FileType

	// Extract returns the plain text content of the file.
	// Returns domain.ErrInvalidInput for malformed files.
	Extract(ctx context.Context, content []byte) (string, error)
}

// ExtractorRegistry selects the extractor for a file type.
type ExtractorRegistry interface {
	// ForType returns the extractor for the given file type.
	// Returns domain.ErrUnsupportedType when none is registered.
	ForType(fileType domain.FileType) (Extractor, error)
}
