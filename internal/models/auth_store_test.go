package models

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthStoreRoundTrip(t *testing.T) {
	store := NewAuthStore(t.TempDir())
	user := &User{ID: "u-1", Email: "ama@example.com", FirstName: "Ama", LastName: "Diallo", IsActive: true}

	require.NoError(t, store.SaveAuth(user, "tok-123"))

	token, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	assert.True(t, store.IsLoggedIn())
	assert.Equal(t, map[string]string{"Authorization": "Bearer tok-123"}, store.AuthHeader())

	loaded, err := store.User()
	require.NoError(t, err)
	assert.Equal(t, "ama@example.com", loaded.Email)
	assert.Equal(t, "Ama Diallo", loaded.FullName())

	data, err := store.Data()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", data.Token)
	assert.NotEmpty(t, data.LoginTime)
}

func TestAuthStoreEmptyState(t *testing.T) {
	store := NewAuthStore(t.TempDir())

	token, err := store.Token()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.False(t, store.IsLoggedIn())
	assert.Empty(t, store.AuthHeader())

	_, err = store.User()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = store.Data()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestAuthStoreCorruptState(t *testing.T) {
	store := NewAuthStore(t.TempDir())
	require.NoError(t, os.WriteFile(store.UserFile, []byte("{not json"), 0600))
	require.NoError(t, os.WriteFile(store.DataFile, []byte("{not json"), 0600))

	_, err := store.User()
	assert.ErrorIs(t, err, ErrInvalidAuthState)

	_, err = store.Data()
	assert.ErrorIs(t, err, ErrInvalidAuthState)
}

func TestAuthStoreClear(t *testing.T) {
	store := NewAuthStore(t.TempDir())
	require.NoError(t, store.SaveAuth(&User{ID: "u-1"}, "tok"))

	require.NoError(t, store.Clear())

	assert.False(t, store.IsLoggedIn())
	_, err := store.User()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	// Clearing an already empty store is not an error
	require.NoError(t, store.Clear())
}
