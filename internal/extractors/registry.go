package extractors

import (
	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driven"
	"github.com/askdoc-labs/askdoc-cli/internal/extractors/docx"
	"github.com/askdoc-labs/askdoc-cli/internal/extractors/pdf"
	"github.com/askdoc-labs/askdoc-cli/internal/extractors/plaintext"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry selects an extractor by file type.
type Registry struct {
	byType map[domain.FileType]driven.Extractor
}

// NewRegistry creates a registry with the given extractors.
func NewRegistry(extractors ...driven.Extractor) *Registry {
	r := &Registry{byType: make(map[domain.FileType]driven.Extractor, len(extractors))}
	for _, e := range extractors {
		r.byType[e.FileType()] = e
	}
	return r
}

// Defaults returns a registry covering every supported format.
func Defaults() *Registry {
	return NewRegistry(
		pdf.New(),
		docx.New(),
		plaintext.New(),
	)
}

// ForType returns the extractor for the given file type.
func (r *Registry) ForType(fileType domain.FileType) (driven.Extractor, error) {
	e, ok := r.byType[fileType]
	if !ok {
		return nil, domain.ErrUnsupportedType
	}
	return e, nil
}
