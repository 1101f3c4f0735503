package driven

import "context"

// FileStore persists the original uploaded bytes under a path derived from
// the document ID.
type FileStore interface {
	// Save writes the content and returns the storage path.
	Save(ctx context.Context, documentID, ext string, content []byte) (string, error)

	// Remove deletes a stored file. Removing a path that does not exist is
	// not an error.
	Remove(ctx context.Context, path string) error
}
