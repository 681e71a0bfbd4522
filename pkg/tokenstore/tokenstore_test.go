package tokenstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Panoptic-IT-Solutions/quickbooks-client/pkg/quickbooks"
	"github.com/Panoptic-IT-Solutions/quickbooks-client/pkg/tokenstore"
)

func sampleToken() *quickbooks.BearerToken {
	return &quickbooks.BearerToken{
		AccessToken:  "at",
		RefreshToken: "rt",
		RealmID:      "12345",
		ExpiresAt:    time.Now().Add(time.Hour).Unix(),
		TokenType:    "bearer",
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := tokenstore.NewMemoryStore()
	ctx := context.Background()

	got, err := store.GetTokens(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.StoreTokens(ctx, sampleToken()))

	got, err = store.GetTokens(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "at", got.AccessToken)
	assert.Equal(t, "12345", got.RealmID)

	require.NoError(t, store.ClearTokens(ctx))

	got, err = store.GetTokens(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreReturnsCopy(t *testing.T) {
	t.Parallel()

	store := tokenstore.NewMemoryStoreWithToken(sampleToken())
	ctx := context.Background()

	first, err := store.GetTokens(ctx)
	require.NoError(t, err)

	first.AccessToken = "mutated"

	second, err := store.GetTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, "at", second.AccessToken)
}

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "tokens.json")
	store := tokenstore.NewFileStore(path)
	ctx := context.Background()

	got, err := store.GetTokens(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.StoreTokens(ctx, sampleToken()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err = store.GetTokens(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "rt", got.RefreshToken)

	require.NoError(t, store.ClearTokens(ctx))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStoreClearMissingFile(t *testing.T) {
	t.Parallel()

	store := tokenstore.NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, store.ClearTokens(context.Background()))
}

func TestFileStoreCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tokens.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	store := tokenstore.NewFileStore(path)

	_, err := store.GetTokens(context.Background())
	require.Error(t, err)
}
