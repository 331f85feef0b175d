package notes

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iudanet/notekeeper/internal/models"
)

// NoteView is a note prepared for rendering: the record plus its image
// resolved to a fetchable local path. ImagePath is empty when the note
// has no image or the image could not be resolved.
type NoteView struct {
	models.Note
	ImagePath string
}

// ImageCache materializes image blobs into a local directory so the
// rendering surface can reference them by path.
type ImageCache struct {
	dir string
}

// NewImageCache creates the cache directory if needed
func NewImageCache(dir string) (*ImageCache, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create image cache dir: %w", err)
	}
	return &ImageCache{dir: dir}, nil
}

// Materialize writes the blob payload under its name in the cache dir
// and returns the resulting path. Blob names are user-supplied file
// names, so only the base name is used.
func (c *ImageCache) Materialize(blob *models.Blob) (string, error) {
	path := filepath.Join(c.dir, filepath.Base(blob.Name))
	if err := os.WriteFile(path, blob.Data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write cached image: %w", err)
	}
	return path, nil
}
