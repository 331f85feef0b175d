package storage

import (
	"context"

	"github.com/iudanet/notekeeper/internal/models"
)

//go:generate moq -out notes_mock.go . NoteRepository

// NoteRepository defines the consumed surface of the note record store.
// Records are immutable: there is no update operation.
type NoteRepository interface {
	// CreateNote persists a new note and returns it with the repository
	// assigned identifier filled in.
	CreateNote(ctx context.Context, note *models.Note) (*models.Note, error)

	// ListNotes returns all notes ordered by creation time.
	ListNotes(ctx context.Context) ([]*models.Note, error)

	// GetNote retrieves a note by id.
	// Returns ErrNoteNotFound if the note doesn't exist.
	GetNote(ctx context.Context, id string) (*models.Note, error)

	// DeleteNote removes a note record.
	// Returns ErrNoteNotFound if the note doesn't exist.
	DeleteNote(ctx context.Context, id string) error
}
