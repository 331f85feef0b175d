// Package auth implements the local account gate: a single user
// registers a passphrase once and opens a session before working with
// notes. Everything is stored locally; there is no auth server.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/notekeeper/internal/crypto"
	"github.com/iudanet/notekeeper/internal/storage"
	"github.com/iudanet/notekeeper/internal/validation"
)

//go:generate moq -out service_mock.go . Service

// DefaultSessionTTL is how long a login stays valid.
const DefaultSessionTTL = 24 * time.Hour

// minPassphraseLen минимальная длина локальной passphrase
const minPassphraseLen = 12

// Service определяет интерфейс локальной авторизации
type Service interface {
	// Register creates the local account and opens a session.
	Register(ctx context.Context, username, passphrase string) error

	// Login verifies the passphrase and opens a session.
	Login(ctx context.Context, username, passphrase string) error

	// Logout drops the current session.
	Logout(ctx context.Context) error

	// Session returns the active session info.
	// Returns storage.ErrNotAuthenticated when no valid session exists.
	Session(ctx context.Context) (*SessionInfo, error)
}

// SessionInfo describes the active session
type SessionInfo struct {
	ExpiresAt time.Time
	Username  string
}

type service struct {
	store      storage.AuthStorage
	logger     *slog.Logger
	sessionTTL time.Duration
}

// NewService creates a new auth service
func NewService(store storage.AuthStorage, logger *slog.Logger) Service {
	return &service{
		store:      store,
		logger:     logger,
		sessionTTL: DefaultSessionTTL,
	}
}

// Register creates the local account and opens a session
func (s *service) Register(ctx context.Context, username, passphrase string) error {
	if a := validation.Field(validation.FieldUsername, username, validation.UsernameConstraints); a != nil {
		return fmt.Errorf("invalid username: %s", a.Message)
	}
	if len(passphrase) < minPassphraseLen {
		return fmt.Errorf("passphrase must be at least %d characters long", minPassphraseLen)
	}

	// Повторная регистрация не поддерживается: аккаунт ровно один
	if _, err := s.store.GetAccount(ctx); err == nil {
		return fmt.Errorf("account already registered")
	} else if !errors.Is(err, storage.ErrAccountNotFound) {
		return fmt.Errorf("failed to check account: %w", err)
	}

	saltBase64, err := crypto.GenerateSaltBase64()
	if err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	authKey, err := crypto.DeriveAuthKeyFromBase64Salt(passphrase, username, saltBase64)
	if err != nil {
		return fmt.Errorf("failed to derive auth key: %w", err)
	}

	authKeyHash, err := crypto.HashAuthKey(authKey)
	if err != nil {
		return fmt.Errorf("failed to hash auth key: %w", err)
	}

	// Случайный секрет подписи сессионных токенов
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return fmt.Errorf("failed to generate session secret: %w", err)
	}

	account := &storage.Account{
		Username:      username,
		AuthKeyHash:   authKeyHash,
		Salt:          saltBase64,
		SessionSecret: base64.StdEncoding.EncodeToString(secret),
		CreatedAt:     time.Now(),
	}

	if err := s.store.SaveAccount(ctx, account); err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}

	s.logger.Info("account registered", "username", username)

	return s.openSession(ctx, account)
}

// Login verifies the passphrase against the stored account and opens a session
func (s *service) Login(ctx context.Context, username, passphrase string) error {
	account, err := s.store.GetAccount(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			return fmt.Errorf("no account registered, run 'notekeeper register' first")
		}
		return fmt.Errorf("failed to get account: %w", err)
	}

	if account.Username != username {
		return fmt.Errorf("unknown username: %s", username)
	}

	authKey, err := crypto.DeriveAuthKeyFromBase64Salt(passphrase, username, account.Salt)
	if err != nil {
		return fmt.Errorf("failed to derive auth key: %w", err)
	}

	if err := crypto.VerifyAuthKey(authKey, account.AuthKeyHash); err != nil {
		return fmt.Errorf("invalid passphrase")
	}

	s.logger.Info("login successful", "username", username)

	return s.openSession(ctx, account)
}

// Logout drops the current session
func (s *service) Logout(ctx context.Context) error {
	if err := s.store.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Session validates the stored token and returns the session info
func (s *service) Session(ctx context.Context) (*SessionInfo, error) {
	tokenString, err := s.store.GetSession(ctx)
	if err != nil {
		return nil, err
	}

	account, err := s.store.GetAccount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	secret, err := base64.StdEncoding.DecodeString(account.SessionSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to decode session secret: %w", err)
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		// Истекший или подделанный токен равнозначен отсутствию сессии
		s.logger.Debug("session token rejected", "error", err)
		return nil, storage.ErrNotAuthenticated
	}

	info := &SessionInfo{Username: claims.Subject}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}

	return info, nil
}

// openSession issues a signed session token and stores it
func (s *service) openSession(ctx context.Context, account *storage.Account) error {
	secret, err := base64.StdEncoding.DecodeString(account.SessionSecret)
	if err != nil {
		return fmt.Errorf("failed to decode session secret: %w", err)
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   account.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return fmt.Errorf("failed to sign session token: %w", err)
	}

	if err := s.store.SaveSession(ctx, token); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}
