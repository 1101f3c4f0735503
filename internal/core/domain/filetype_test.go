package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFileType(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		want     FileType
		wantErr  bool
	}{
		{name: "pdf mime", mimeType: "application/pdf", want: FileTypePDF},
		{name: "pdf bare", mimeType: "pdf", want: FileTypePDF},
		{name: "docx mime", mimeType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", want: FileTypeDOCX},
		{name: "docx bare", mimeType: "docx", want: FileTypeDOCX},
		{name: "plain text", mimeType: "text/plain", want: FileTypeTXT},
		{name: "plain text with charset", mimeType: "text/plain; charset=utf-8", want: FileTypeTXT},
		{name: "txt bare", mimeType: "txt", want: FileTypeTXT},
		{name: "uppercase", mimeType: "APPLICATION/PDF", want: FileTypePDF},
		{name: "empty", mimeType: "", wantErr: true},
		{name: "png", mimeType: "image/png", wantErr: true},
		{name: "html", mimeType: "text/html", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFileType(tt.mimeType)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileTypeIsValid(t *testing.T) {
	assert.True(t, FileTypePDF.IsValid())
	assert.True(t, FileTypeDOCX.IsValid())
	assert.True(t, FileTypeTXT.IsValid())
	assert.False(t, FileType("html").IsValid())
	assert.False(t, FileType("").IsValid())
}

func TestFileTypeExt(t *testing.T) {
	assert.Equal(t, "pdf", FileTypePDF.Ext())
	assert.Equal(t, "docx", FileTypeDOCX.Ext())
	assert.Equal(t, "txt", FileTypeTXT.Ext())
}
