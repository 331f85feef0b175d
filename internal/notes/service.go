// Package notes implements the note/image synchronization workflows:
// the rules that keep a note record and its referenced image blob
// consistent across create, list and delete.
package notes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/notekeeper/internal/alert"
	"github.com/iudanet/notekeeper/internal/models"
	"github.com/iudanet/notekeeper/internal/storage"
	"github.com/iudanet/notekeeper/internal/validation"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс контроллера синхронизации заметок
type Service interface {
	// Create runs the validated create-note workflow for the draft and
	// returns the updated draft: empty on success, carrying an alert and
	// re-armed for resubmission otherwise. The returned error reports
	// repository faults only; validation and dedup outcomes surface
	// through the draft's alert.
	Create(ctx context.Context, draft models.Draft) (models.Draft, error)

	// Delete removes the note and best-effort removes its image blob.
	Delete(ctx context.Context, id string) error

	// Refresh reloads the note list and resolves every attached image
	// to a renderable local path.
	Refresh(ctx context.Context) ([]NoteView, error)

	// Notes returns the view snapshot produced by the last Refresh.
	Notes() []NoteView
}

// service orchestrates the note repository and the blob store
type service struct {
	repo   storage.NoteRepository
	blobs  storage.BlobStore
	alerts *alert.State
	logger *slog.Logger
	images *ImageCache
	views  []NoteView
}

// NewService creates a new note sync controller
func NewService(repo storage.NoteRepository, blobs storage.BlobStore, alerts *alert.State, images *ImageCache, logger *slog.Logger) Service {
	return &service{
		repo:   repo,
		blobs:  blobs,
		alerts: alerts,
		images: images,
		logger: logger,
	}
}

// Create implements the create-note workflow:
//  1. validate the name; on violation raise the alert and stop before
//     any repository or blob store call
//  2. conditionally write the image blob; a name collision raises a
//     warning, clears the draft's image slot and re-arms the submit
//  3. create the note record
//  4. refresh the list in every branch that touched a store
//  5. on success reset the draft (which implicitly clears stale alerts)
func (s *service) Create(ctx context.Context, draft models.Draft) (models.Draft, error) {
	// Валидация имени до любых обращений к хранилищам
	if a := validation.Field(validation.FieldName, draft.Name, validation.NameConstraints); a != nil {
		s.alerts.Raise(*a)
		draft.Alert = a
		return draft, nil
	}

	if draft.HasImage() {
		err := s.blobs.PutBlobIfAbsent(ctx, draft.ImageName, draft.ImageData)
		switch {
		case errors.Is(err, storage.ErrBlobExists):
			// Имя изображения занято другой заметкой: не перезаписываем,
			// заметку не создаем, слот изображения очищаем. Поле name
			// сохраняется, пользователь должен выбрать другой файл
			// и повторить отправку.
			a := models.Alert{
				Severity:    models.SeverityWarning,
				Message:     "this image is already attached to another note",
				SourceField: validation.FieldImage,
			}
			s.alerts.Raise(a)
			draft.Alert = &a
			draft.ClearImage()
			s.refreshLogged(ctx)
			return draft, nil
		case err != nil:
			// StoreFault: логируем и продолжаем. Заметка может получить
			// висячую ссылку на изображение, но пользователя не блокируем.
			s.logger.Warn("failed to store image blob",
				"name", draft.ImageName,
				"error", err)
		}
	}

	note := &models.Note{
		Name:        draft.Name,
		Description: draft.Description,
		ImageRef:    draft.ImageName,
	}

	created, err := s.repo.CreateNote(ctx, note)
	if err != nil {
		// Отказ репозитория прерывает workflow, но список все равно
		// обновляем, чтобы view отражал последнее закоммиченное состояние
		s.refreshLogged(ctx)
		return draft, fmt.Errorf("failed to create note: %w", err)
	}

	s.logger.Info("note created",
		"id", created.ID,
		"name", created.Name,
		"image_ref", created.ImageRef)

	s.refreshLogged(ctx)

	// Успешная отправка: пустой draft, активный alert снят
	s.alerts.Clear()
	return models.Draft{}, nil
}

// Delete implements the delete-note workflow. The image blob removal is
// attempted strictly before the record deletion, but the record deletion
// is not conditioned on its outcome: the policy favors removing the
// record over leaving it stranded by a storage fault.
func (s *service) Delete(ctx context.Context, id string) error {
	// Каноническое имя изображения перечитываем из репозитория:
	// запись в памяти держит resolved путь, а не исходное имя blob
	note, err := s.repo.GetNote(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get note: %w", err)
	}

	if note.ImageRef != "" {
		if err := s.blobs.RemoveBlob(ctx, note.ImageRef); err != nil {
			// Best-effort: осиротевший blob лучше, чем застрявшая запись
			s.logger.Warn("failed to remove image blob",
				"note_id", id,
				"image_ref", note.ImageRef,
				"error", err)
		}
	}

	if err := s.repo.DeleteNote(ctx, id); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	s.logger.Info("note deleted", "id", id, "image_ref", note.ImageRef)

	s.refreshLogged(ctx)
	return nil
}

// Refresh reloads all notes and resolves attached images. A note whose
// image fails to resolve is returned without an image rather than
// failing the whole refresh.
func (s *service) Refresh(ctx context.Context) ([]NoteView, error) {
	records, err := s.repo.ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	views := make([]NoteView, 0, len(records))
	for _, note := range records {
		view := NoteView{Note: *note}

		if note.ImageRef != "" {
			path, err := s.resolveImage(ctx, note.ImageRef)
			if err != nil {
				// Изоляция отказов по записям: заметка рендерится без
				// изображения, остальной список не страдает
				s.logger.Warn("failed to resolve note image",
					"note_id", note.ID,
					"image_ref", note.ImageRef,
					"error", err)
			} else {
				view.ImagePath = path
			}
		}

		views = append(views, view)
	}

	s.views = views
	return views, nil
}

// Notes returns the current view snapshot
func (s *service) Notes() []NoteView {
	return s.views
}

// resolveImage fetches the blob and materializes it as a local file
func (s *service) resolveImage(ctx context.Context, name string) (string, error) {
	blob, err := s.blobs.GetBlob(ctx, name)
	if err != nil {
		return "", err
	}
	return s.images.Materialize(blob)
}

// refreshLogged runs Refresh and downgrades its error to a log record.
// Used inside create/delete, where the primary outcome is already decided.
func (s *service) refreshLogged(ctx context.Context) {
	if _, err := s.Refresh(ctx); err != nil {
		s.logger.Warn("failed to refresh note list", "error", err)
	}
}
