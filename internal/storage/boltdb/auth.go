package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/notekeeper/internal/storage"
)

var (
	accountKey = []byte("account")
	sessionKey = []byte("session")
)

// SaveAccount stores the local account record
func (s *Storage) SaveAccount(ctx context.Context, account *storage.Account) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		// Сериализуем данные в JSON
		data, err := json.Marshal(account)
		if err != nil {
			return fmt.Errorf("failed to marshal account: %w", err)
		}

		if err := bucket.Put(accountKey, data); err != nil {
			return fmt.Errorf("failed to save account: %w", err)
		}

		return nil
	})
}

// GetAccount retrieves the local account record
func (s *Storage) GetAccount(ctx context.Context) (*storage.Account, error) {
	var account *storage.Account

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		data := bucket.Get(accountKey)
		if data == nil {
			return storage.ErrAccountNotFound
		}

		account = &storage.Account{}
		if err := json.Unmarshal(data, account); err != nil {
			return fmt.Errorf("failed to unmarshal account: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// SaveSession stores the signed session token
func (s *Storage) SaveSession(ctx context.Context, token string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		if err := bucket.Put(sessionKey, []byte(token)); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}

		return nil
	})
}

// GetSession retrieves the stored session token
func (s *Storage) GetSession(ctx context.Context) (string, error) {
	var token string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		data := bucket.Get(sessionKey)
		if data == nil {
			return storage.ErrNotAuthenticated
		}

		token = string(data)
		return nil
	})
	if err != nil {
		return "", err
	}

	return token, nil
}

// DeleteSession removes the stored session token (logout)
func (s *Storage) DeleteSession(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		if bucket.Get(sessionKey) == nil {
			return storage.ErrNotAuthenticated
		}

		if err := bucket.Delete(sessionKey); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}

		return nil
	})
}
