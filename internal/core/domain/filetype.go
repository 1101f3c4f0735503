package domain

import "strings"

// FileType is a supported document format.
type FileType string

// Supported document formats.
const (
	FileTypePDF  FileType = "pdf"
	FileTypeDOCX FileType = "docx"
	FileTypeTXT  FileType = "txt"
)

// String returns the file type as a string.
func (t FileType) String() string {
	return string(t)
}

// Ext returns the file extension (without dot) used for stored files.
func (t FileType) Ext() string {
	return string(t)
}

// IsValid reports whether the file type is one of the supported formats.
func (t FileType) IsValid() bool {
	switch t {
	case FileTypePDF, FileTypeDOCX, FileTypeTXT:
		return true
	}
	return false
}

// DetectFileType maps a declared MIME type (or bare extension) to a supported
// format. Unknown types return ErrUnsupportedType.
func DetectFileType(mimeType string) (FileType, error) {
	t := strings.ToLower(strings.TrimSpace(mimeType))
	switch {
	case t == "":
		return "", ErrUnsupportedType
	case strings.Contains(t, "pdf"):
		return FileTypePDF, nil
	case strings.Contains(t, "wordprocessingml"), strings.Contains(t, "docx"):
		return FileTypeDOCX, nil
	case strings.Contains(t, "text/plain"), t == "txt":
		return FileTypeTXT, nil
	default:
		return "", ErrUnsupportedType
	}
}
