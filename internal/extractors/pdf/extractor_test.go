package pdf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

func TestFileType(t *testing.T) {
	assert.Equal(t, domain.FileTypePDF, New().FileType())
}

func TestExtractInvalidContent(t *testing.T) {
	_, err := New().Extract(context.Background(), []byte("not a pdf"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExtractEmptyContent(t *testing.T) {
	_, err := New().Extract(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
