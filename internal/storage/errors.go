package storage

import "errors"

// Common client storage errors
var (
	// ErrNoteNotFound indicates that the note record does not exist
	ErrNoteNotFound = errors.New("note not found")

	// ErrBlobNotFound indicates that no blob is stored under the name
	ErrBlobNotFound = errors.New("blob not found")

	// ErrBlobExists indicates that a blob already occupies the name.
	// Returned by the conditional put to enforce at-most-one-note-per-blob.
	ErrBlobExists = errors.New("blob name already in use")

	// ErrAccountNotFound indicates that no local account has been registered
	ErrAccountNotFound = errors.New("account not found")

	// ErrNotAuthenticated indicates that no valid session exists
	ErrNotAuthenticated = errors.New("not authenticated")
)
