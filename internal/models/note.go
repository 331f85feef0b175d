package models

import "time"

// Note represents a single user note with an optional attached image.
// Notes are immutable after creation: there is no edit operation,
// only create and delete.
type Note struct {
	CreatedAt   time.Time `json:"created_at"`
	ID          string    `json:"id"`          // ID уникальный идентификатор записи (UUID, назначается репозиторием)
	Name        string    `json:"name"`        // Name название заметки (4-50 символов, обязательное)
	Description string    `json:"description"` // Description опциональное описание (4-50 символов если задано)
	ImageRef    string    `json:"image_ref"`   // ImageRef имя blob с изображением, пустая строка если изображения нет
}

// Blob represents a named binary object stored independently of the note
// record. The name acts as the addressing key; in this system it is the
// user-supplied file name, not a content hash.
// Invariant: at most one Note references a given Blob name at a time.
type Blob struct {
	Name string `json:"name"`
	Data []byte `json:"data"`
}

// Draft is the in-progress note form state. It is an explicit state
// container: controller operations take a Draft and return it updated,
// so there is exactly one owner and mutation site at any moment.
type Draft struct {
	Alert       *Alert
	Name        string
	Description string
	ImageName   string
	ImageData   []byte
}

// HasImage reports whether an image has been picked for this draft.
func (d Draft) HasImage() bool {
	return d.ImageName != ""
}

// ClearImage drops the picked image so the user has to choose another file.
func (d *Draft) ClearImage() {
	d.ImageName = ""
	d.ImageData = nil
}
