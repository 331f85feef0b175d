package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notekeeper/internal/storage"
)

func createTestAccount() *storage.Account {
	return &storage.Account{
		Username:      "alice",
		AuthKeyHash:   "deadbeef",
		Salt:          "c2FsdA==",
		SessionSecret: "c2VjcmV0",
		CreatedAt:     time.Now(),
	}
}

func TestSaveGetAccount(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	account := createTestAccount()

	err := store.SaveAccount(ctx, account)
	require.NoError(t, err)

	got, err := store.GetAccount(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, account.Username, got.Username)
	assert.Equal(t, account.AuthKeyHash, got.AuthKeyHash)
	assert.Equal(t, account.Salt, got.Salt)
	assert.Equal(t, account.SessionSecret, got.SessionSecret)
}

func TestGetAccount_NotFound(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.GetAccount(ctx)
	assert.ErrorIs(t, err, storage.ErrAccountNotFound)
}

func TestSessionRoundtrip(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.SaveSession(ctx, "token-123")
	require.NoError(t, err)

	token, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-123", token)

	err = store.DeleteSession(ctx)
	require.NoError(t, err)

	_, err = store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrNotAuthenticated)
}

func TestDeleteSession_NotAuthenticated(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.DeleteSession(ctx)
	assert.ErrorIs(t, err, storage.ErrNotAuthenticated)
}
