package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"altnews/internal/models"
)

// CheckEmailResult is the server's answer to an account lookup by email
type CheckEmailResult struct {
	Exists    bool   `json:"exists"`
	ID        string `json:"id,omitempty"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// CheckEmail queries whether an account exists for the given address
func (c *Client) CheckEmail(email string) (*CheckEmailResult, error) {
	req, err := c.newRequest(http.MethodGet, "/auth/check-email?email="+url.QueryEscape(email), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	var result CheckEmailResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}

	return &result, nil
}

// Register creates a new user account. When the server issues a token it
// is saved to the auth store along with the user record, so subsequent
// commands run authenticated.
func (c *Client) Register(email, password, firstName, lastName, phone string) (*models.Auth, error) {
	req, err := c.jsonRequest(http.MethodPost, "/auth/register", map[string]string{
		"email":     email,
		"password":  password,
		"firstName": firstName,
		"lastName":  lastName,
		"phone":     phone,
	})
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, responseError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	var auth models.Auth
	if err := json.Unmarshal(body, &auth); err != nil {
		return nil, fmt.Errorf("error parsing response JSON: %w", err)
	}

	if auth.User == nil {
		return nil, fmt.Errorf("no user record found in server response")
	}

	if auth.Token != "" {
		c.AuthToken = auth.Token
		if c.authStore != nil {
			if err := c.authStore.SaveAuth(auth.User, auth.Token); err != nil {
				return nil, fmt.Errorf("error saving auth state: %w", err)
			}
		}
	}

	return &auth, nil
}
