package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/notekeeper/internal/models"
	"github.com/iudanet/notekeeper/internal/storage"
)

// ExistsBlob reports whether a non-empty blob is stored under name.
// Existence is checked by attempting a read rather than a dedicated
// metadata call; an empty payload counts as absent.
func (s *Storage) ExistsBlob(ctx context.Context, name string) (bool, error) {
	var exists bool

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBlobs)
		if bucket == nil {
			return fmt.Errorf("blobs bucket not found")
		}

		data := bucket.Get([]byte(name))
		exists = len(data) > 0
		return nil
	})
	if err != nil {
		return false, err
	}

	return exists, nil
}

// PutBlob stores data under name, overwriting any previous payload.
func (s *Storage) PutBlob(ctx context.Context, name string, data []byte) error {
	if name == "" {
		return fmt.Errorf("blob name cannot be empty")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBlobs)
		if bucket == nil {
			return fmt.Errorf("blobs bucket not found")
		}

		if err := bucket.Put([]byte(name), data); err != nil {
			return fmt.Errorf("failed to save blob: %w", err)
		}

		return nil
	})
}

// PutBlobIfAbsent stores data under name only when the name is free.
// The occupancy check and the write share one update transaction, so
// two concurrent puts of the same name cannot both pass the check.
func (s *Storage) PutBlobIfAbsent(ctx context.Context, name string, data []byte) error {
	if name == "" {
		return fmt.Errorf("blob name cannot be empty")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBlobs)
		if bucket == nil {
			return fmt.Errorf("blobs bucket not found")
		}

		// Имя занято только непустым payload
		if existing := bucket.Get([]byte(name)); len(existing) > 0 {
			return storage.ErrBlobExists
		}

		if err := bucket.Put([]byte(name), data); err != nil {
			return fmt.Errorf("failed to save blob: %w", err)
		}

		return nil
	})
}

// GetBlob retrieves the blob stored under name.
func (s *Storage) GetBlob(ctx context.Context, name string) (*models.Blob, error) {
	var blob *models.Blob

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBlobs)
		if bucket == nil {
			return fmt.Errorf("blobs bucket not found")
		}

		data := bucket.Get([]byte(name))
		if len(data) == 0 {
			return storage.ErrBlobNotFound
		}

		// Копируем payload: данные bolt валидны только внутри транзакции
		blob = &models.Blob{
			Name: name,
			Data: append([]byte(nil), data...),
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return blob, nil
}

// RemoveBlob deletes the blob stored under name. Removing an absent name
// is a no-op, not an error: delete cleanup is best-effort.
func (s *Storage) RemoveBlob(ctx context.Context, name string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBlobs)
		if bucket == nil {
			return fmt.Errorf("blobs bucket not found")
		}

		if err := bucket.Delete([]byte(name)); err != nil {
			return fmt.Errorf("failed to delete blob: %w", err)
		}

		return nil
	})
}
