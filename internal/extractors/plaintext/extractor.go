// Package plaintext extracts text from plain-text uploads.
package plaintext

import (
	"bytes"
	"context"
	"strings"
	"unicode/utf8"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// utf8BOM is the optional byte-order mark some editors prepend.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Extractor handles plain text documents.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// FileType returns the format this extractor handles.
func (e *Extractor) FileType() domain.FileType {
	return domain.FileTypeTXT
}

// Extract returns the file content as UTF-8 text.
func (e *Extractor) Extract(_ context.Context, content []byte) (string, error) {
	content = bytes.TrimPrefix(content, utf8BOM)
	if !utf8.Valid(content) {
		return "", domain.ErrInvalidInput
	}
	return strings.TrimSpace(string(content)), nil
}
