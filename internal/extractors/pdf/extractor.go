// Package pdf extracts text from PDF uploads using the ledongthuc/pdf
// library.
package pdf

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles PDF documents.
type Extractor struct{}

// New creates a new PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// FileType returns the format this extractor handles.
func (e *Extractor) FileType() domain.FileType {
	return domain.FileTypePDF
}

// Extract returns the plain text of every page.
func (e *Extractor) Extract(_ context.Context, content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", domain.ErrInvalidInput
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", domain.ErrInvalidInput
	}

	var buf strings.Builder
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", domain.ErrInvalidInput
	}

	return strings.TrimSpace(buf.String()), nil
}
