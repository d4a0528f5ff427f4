package models

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// AuthStore persists the signed-in user's session in the config directory:
// the bearer token, the user record and the combined auth data with its
// login timestamp. It is the client-side counterpart of the server session.
type AuthStore struct {
	TokenFile string
	UserFile  string
	DataFile  string

	// Leftover from the purchase flow, removed on Clear
	selectedPlanFile string
}

// NewAuthStore creates an auth store rooted at the given config directory
func NewAuthStore(configDir string) *AuthStore {
	return &AuthStore{
		TokenFile:        filepath.Join(configDir, ".auth_token"),
		UserFile:         filepath.Join(configDir, "auth_user.json"),
		DataFile:         filepath.Join(configDir, "auth_data.json"),
		selectedPlanFile: filepath.Join(configDir, "selected_plan.json"),
	}
}

// SaveAuth persists the user record and token, stamping the login time
func (as *AuthStore) SaveAuth(user *User, token string) error {
	if err := os.WriteFile(as.TokenFile, []byte(token), 0600); err != nil { // Restricted permissions
		return err
	}

	userData, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(as.UserFile, userData, 0600); err != nil {
		return err
	}

	data, err := json.MarshalIndent(AuthData{
		User:      user,
		Token:     token,
		LoginTime: time.Now().Format(time.RFC3339),
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(as.DataFile, data, 0600)
}

// Token returns the stored bearer token, or an empty string if none is saved
func (as *AuthStore) Token() (string, error) {
	data, err := os.ReadFile(as.TokenFile)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

// User returns the stored user record. A missing file yields ErrNotLoggedIn,
// a file that cannot be decoded yields ErrInvalidAuthState.
func (as *AuthStore) User() (*User, error) {
	data, err := os.ReadFile(as.UserFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotLoggedIn
		}
		return nil, err
	}

	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, ErrInvalidAuthState
	}
	return &user, nil
}

// Data returns the full persisted auth record, including the login time
func (as *AuthStore) Data() (*AuthData, error) {
	raw, err := os.ReadFile(as.DataFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotLoggedIn
		}
		return nil, err
	}

	var data AuthData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, ErrInvalidAuthState
	}
	return &data, nil
}

// IsLoggedIn reports whether a token is stored
func (as *AuthStore) IsLoggedIn() bool {
	token, err := as.Token()
	return err == nil && token != ""
}

// AuthHeader returns the Authorization header for API requests, or an
// empty map when no token is stored
func (as *AuthStore) AuthHeader() map[string]string {
	token, err := as.Token()
	if err != nil || token == "" {
		return map[string]string{}
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

// Clear removes all persisted session state, including purchase-flow leftovers
func (as *AuthStore) Clear() error {
	for _, path := range []string{as.TokenFile, as.UserFile, as.DataFile, as.selectedPlanFile} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
