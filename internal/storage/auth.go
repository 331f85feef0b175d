package storage

import (
	"context"
	"time"
)

//go:generate moq -out auth_mock.go . AuthStorage

// AuthStorage defines interface for storing the local account and session.
// This is the lowest storage layer - it persists records as-is and performs
// no key derivation or token validation itself.
type AuthStorage interface {
	// SaveAccount stores the local account record, replacing any previous one
	SaveAccount(ctx context.Context, account *Account) error

	// GetAccount retrieves the local account record.
	// Returns ErrAccountNotFound if no account has been registered.
	GetAccount(ctx context.Context) (*Account, error)

	// SaveSession stores the signed session token
	SaveSession(ctx context.Context, token string) error

	// GetSession retrieves the stored session token.
	// Returns ErrNotAuthenticated if no session exists.
	GetSession(ctx context.Context) (string, error)

	// DeleteSession removes the stored session token (logout)
	DeleteSession(ctx context.Context) error
}

// Account represents the single local account in storage.
// The passphrase itself is never stored: only the SHA-256 hash of the
// Argon2id-derived auth key, plus the salt needed to re-derive it.
type Account struct {
	CreatedAt     time.Time `json:"created_at"`
	Username      string    `json:"username"`
	AuthKeyHash   string    `json:"auth_key_hash"`
	Salt          string    `json:"salt"`           // Salt соль деривации ключа (base64)
	SessionSecret string    `json:"session_secret"` // SessionSecret ключ подписи сессионных токенов (base64)
}
