package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/notekeeper/internal/models"
	"github.com/iudanet/notekeeper/internal/storage"
)

// CreateNote persists a new note and assigns its identifier
func (s *Storage) CreateNote(ctx context.Context, note *models.Note) (*models.Note, error) {
	// Репозиторий назначает идентификатор, вызывающий его не задает
	created := *note
	created.ID = uuid.New().String()
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO notes (id, name, description, image_ref, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		created.ID,
		created.Name,
		created.Description,
		created.ImageRef,
		created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert note: %w", err)
	}

	return &created, nil
}

// ListNotes returns all notes ordered by creation time
func (s *Storage) ListNotes(ctx context.Context) ([]*models.Note, error) {
	query := `
		SELECT id, name, description, image_ref, created_at
		FROM notes
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var notes []*models.Note
	for rows.Next() {
		note := &models.Note{}
		if err := rows.Scan(
			&note.ID,
			&note.Name,
			&note.Description,
			&note.ImageRef,
			&note.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}

	return notes, nil
}

// GetNote retrieves a note by id
func (s *Storage) GetNote(ctx context.Context, id string) (*models.Note, error) {
	query := `
		SELECT id, name, description, image_ref, created_at
		FROM notes
		WHERE id = ?
	`

	note := &models.Note{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&note.ID,
		&note.Name,
		&note.Description,
		&note.ImageRef,
		&note.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return note, nil
}

// DeleteNote removes a note record
func (s *Storage) DeleteNote(ctx context.Context, id string) error {
	query := `DELETE FROM notes WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNoteNotFound
	}

	return nil
}
