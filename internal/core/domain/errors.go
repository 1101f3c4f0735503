package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors and are matched with
// errors.Is/errors.As at the boundaries, never by message text.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates the uploaded file format is not supported.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrNoExtractableText indicates extraction produced no text.
	ErrNoExtractableText = errors.New("no text extracted from document")

	// ErrNoChunks indicates chunking produced no chunks.
	ErrNoChunks = errors.New("no chunks created from document")

	// ErrFileTooLarge indicates the upload exceeds the configured size limit.
	ErrFileTooLarge = errors.New("file exceeds maximum upload size")

	// Authentication errors. Reported distinctly from generic remote
	// failures so callers can prompt for credential fixes.

	// ErrAuthRequired indicates no API credential is configured.
	// This is surfaced before any network call is made.
	ErrAuthRequired = errors.New("API key not configured")

	// ErrAuthRejected indicates the remote service rejected the credential.
	ErrAuthRejected = errors.New("API key rejected by remote service")

	// ErrVectorIndexUnavailable indicates the vector index failed to
	// initialise. Every operation requiring retrieval fails fast with this.
	ErrVectorIndexUnavailable = errors.New("vector index unavailable")

	// ErrRemoteService is the generic kind matched by errors.Is for any
	// RemoteError, regardless of which upstream service produced it.
	ErrRemoteService = errors.New("remote service error")
)

// RemoteError is a non-success response from the embedding or completion
// service. It carries the upstream status and message for diagnostics.
type RemoteError struct {
	// Service identifies the upstream call ("embedding" or "completion").
	Service string

	// StatusCode is the upstream HTTP status.
	StatusCode int

	// Message is the upstream error message, when one was returned.
	Message string
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s service error (status %d)", e.Service, e.StatusCode)
	}
	return fmt.Sprintf("%s service error (status %d): %s", e.Service, e.StatusCode, e.Message)
}

// Is lets errors.Is(err, ErrRemoteService) match any RemoteError.
func (e *RemoteError) Is(target error) bool {
	return target == ErrRemoteService
}
