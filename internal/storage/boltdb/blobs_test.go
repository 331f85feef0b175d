package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notekeeper/internal/storage"
)

// createTestStorage создает временное BoltDB хранилище и инициализирует buckets
func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "blobs_test.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestPutGetRemoveBlob(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	payload := []byte("fake png bytes")

	// Сохраняем blob
	err := store.PutBlob(ctx, "cat.png", payload)
	require.NoError(t, err)

	// Получаем blob по имени
	blob, err := store.GetBlob(ctx, "cat.png")
	require.NoError(t, err)
	require.NotNil(t, blob)
	assert.Equal(t, "cat.png", blob.Name)
	assert.Equal(t, payload, blob.Data)

	// Удаляем blob
	err = store.RemoveBlob(ctx, "cat.png")
	require.NoError(t, err)

	_, err = store.GetBlob(ctx, "cat.png")
	assert.ErrorIs(t, err, storage.ErrBlobNotFound)
}

func TestGetBlob_NotFound(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.GetBlob(ctx, "missing.png")
	assert.ErrorIs(t, err, storage.ErrBlobNotFound)
}

func TestRemoveBlob_AbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Удаление отсутствующего имени не ошибка: cleanup best-effort
	err := store.RemoveBlob(ctx, "missing.png")
	assert.NoError(t, err)
}

func TestExistsBlob(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	exists, err := store.ExistsBlob(ctx, "cat.png")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.PutBlob(ctx, "cat.png", []byte("data")))

	exists, err = store.ExistsBlob(ctx, "cat.png")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestExistsBlob_EmptyPayloadCountsAsAbsent(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Пустой payload приравнивается к отсутствию
	require.NoError(t, store.PutBlob(ctx, "empty.png", []byte{}))

	exists, err := store.ExistsBlob(ctx, "empty.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPutBlobIfAbsent(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Первая запись проходит
	err := store.PutBlobIfAbsent(ctx, "cat.png", []byte("original"))
	require.NoError(t, err)

	// Повторная запись под тем же именем отклоняется без перезаписи
	err = store.PutBlobIfAbsent(ctx, "cat.png", []byte("other"))
	assert.ErrorIs(t, err, storage.ErrBlobExists)

	blob, err := store.GetBlob(ctx, "cat.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), blob.Data)
}

func TestPutBlobIfAbsent_EmptyPayloadIsFree(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.PutBlob(ctx, "cat.png", []byte{}))

	// Имя с пустым payload считается свободным
	err := store.PutBlobIfAbsent(ctx, "cat.png", []byte("real data"))
	require.NoError(t, err)

	blob, err := store.GetBlob(ctx, "cat.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("real data"), blob.Data)
}

func TestPutBlob_EmptyName(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.PutBlob(ctx, "", []byte("data"))
	assert.Error(t, err)

	err = store.PutBlobIfAbsent(ctx, "", []byte("data"))
	assert.Error(t, err)
}
