package storage

import (
	"context"

	"github.com/iudanet/notekeeper/internal/models"
)

//go:generate moq -out blobs_mock.go . BlobStore

// BlobStore defines the consumed surface of the binary object store.
// Blobs are keyed by object name (the user-supplied file name).
type BlobStore interface {
	// ExistsBlob reports whether a non-empty blob is stored under name.
	// Implemented as a read attempt: a missing key or an empty payload
	// counts as absent.
	ExistsBlob(ctx context.Context, name string) (bool, error)

	// PutBlob stores data under name, overwriting any previous payload.
	PutBlob(ctx context.Context, name string, data []byte) error

	// PutBlobIfAbsent stores data under name only when the name is free.
	// Returns ErrBlobExists when a non-empty blob already occupies the
	// name. The check and the write happen in a single transaction, so
	// two concurrent puts of the same name cannot both succeed.
	PutBlobIfAbsent(ctx context.Context, name string, data []byte) error

	// GetBlob retrieves the blob stored under name.
	// Returns ErrBlobNotFound if absent.
	GetBlob(ctx context.Context, name string) (*models.Blob, error)

	// RemoveBlob deletes the blob stored under name. Removing an absent
	// name is not an error.
	RemoveBlob(ctx context.Context, name string) error
}
