package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"altnews/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/check-email", r.URL.Path)
		assert.Equal(t, "ama+news@example.com", r.URL.Query().Get("email"))

		w.Write([]byte(`{"exists": true, "id": "u-1", "email": "ama+news@example.com", "firstName": "Ama", "lastName": "Diallo"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "fr", nil)
	result, err := client.CheckEmail("ama+news@example.com")

	require.NoError(t, err)
	assert.True(t, result.Exists)
	assert.Equal(t, "u-1", result.ID)
	assert.Equal(t, "Ama", result.FirstName)
}

func TestCheckEmailUnknown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"exists": false}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "fr", nil)
	result, err := client.CheckEmail("nobody@example.com")

	require.NoError(t, err)
	assert.False(t, result.Exists)
	assert.Empty(t, result.ID)
}

func TestRegisterPersistsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/register", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{
			"email": "ama@example.com",
			"password": "s3cret",
			"firstName": "Ama",
			"lastName": "Diallo",
			"phone": "+221770000000"
		}`, string(body))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"token": "tok-xyz", "user": {"id": "u-1", "email": "ama@example.com", "firstName": "Ama", "lastName": "Diallo", "isActive": true}}`))
	}))
	defer server.Close()

	store := models.NewAuthStore(t.TempDir())
	client := NewClient(server.URL, "fr", store)

	auth, err := client.Register("ama@example.com", "s3cret", "Ama", "Diallo", "+221770000000")

	require.NoError(t, err)
	assert.Equal(t, "tok-xyz", auth.Token)
	assert.Equal(t, "u-1", auth.User.ID)

	// The client now runs authenticated and the state survives restarts
	assert.Equal(t, "tok-xyz", client.AuthToken)
	token, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-xyz", token)
	user, err := store.User()
	require.NoError(t, err)
	assert.Equal(t, "ama@example.com", user.Email)
}

func TestRegisterMissingUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token": "tok-xyz"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "fr", nil)
	_, err := client.Register("ama@example.com", "s3cret", "Ama", "Diallo", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no user record")
}

func TestRegisterServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error": "email already registered"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "fr", nil)
	_, err := client.Register("ama@example.com", "s3cret", "Ama", "Diallo", "")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "email already registered", apiErr.Message)
}

func TestNewClientPicksUpStoredToken(t *testing.T) {
	store := models.NewAuthStore(t.TempDir())
	require.NoError(t, store.SaveAuth(&models.User{ID: "u-1"}, "tok-stored"))

	client := NewClient("http://example.com/", "fr", store)

	assert.Equal(t, "tok-stored", client.AuthToken)
	assert.Equal(t, "http://example.com", client.BaseURL)
}
