package ports

import (
	"context"
	"io"
)

// UploadStore is the upload collaborator: it accepts file content and returns
// a stable opaque reference that the order carries as its image reference.
// The core never inspects file bytes; it only holds the reference.
//
// Uploads are always completed, and their reference obtained, strictly
// before an order is created. A failed or aborted upload therefore never
// leaves a partial order behind; at worst it leaves an orphaned file, which
// the cleanup job reaps.
type UploadStore interface {
	// Store persists the uploaded content under the given scope (the order
	// id the upload belongs to) and returns its reference. Fails with
	// ValueIsInvalidError for disallowed content types or oversized files,
	// and with StorageError when the underlying storage fails.
	Store(ctx context.Context, scope, filename, contentType string, content io.Reader) (string, error)

	// Open returns a reader for a previously stored reference.
	// Fails with StorageError if the reference does not resolve to a file.
	Open(ref string) (io.ReadCloser, error)
}
