package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"altnews/internal/models"
)

// Client handles communication with the subscription API server
type Client struct {
	// Base URL of the API server
	BaseURL string

	// Interface language, sent as Accept-Language
	Language string

	// Authentication token
	AuthToken string

	// HTTP client with a timeout
	client *http.Client

	// Auth store for persisting session state
	authStore *models.AuthStore
}

// NewClient creates a new API client. A stored token, if any, is picked up
// from the auth store.
func NewClient(baseURL, language string, authStore *models.AuthStore) *Client {
	token := ""
	if authStore != nil {
		storedToken, err := authStore.Token()
		if err == nil && storedToken != "" {
			token = storedToken
		}
	}

	return &Client{
		BaseURL:   strings.TrimSuffix(baseURL, "/"),
		Language:  language,
		AuthToken: token,
		authStore: authStore,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Error is an API failure reduced to its status code and server message
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d)", e.Message, e.StatusCode)
}

// IsNotFound reports whether the error is an API 404
func IsNotFound(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// newRequest builds a request with the standard headers attached
func (c *Client) newRequest(method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequest(method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", c.Language)
	req.Header.Set("company", "conseil")
	if c.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.AuthToken)
	}

	return req, nil
}

// jsonRequest builds a POST or PUT request carrying a JSON body
func (c *Client) jsonRequest(method, path string, payload interface{}) (*http.Request, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error marshalling request: %w", err)
	}

	req, err := c.newRequest(method, path, bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

// responseError reduces a non-2xx response to an *Error, probing the body
// for a message or error field before falling back to the status text
func responseError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var serverErr struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	message := ""
	if err := json.Unmarshal(body, &serverErr); err == nil {
		if serverErr.Message != "" {
			message = serverErr.Message
		} else if serverErr.Error != "" {
			message = serverErr.Error
		}
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	return &Error{StatusCode: resp.StatusCode, Message: message}
}

// unwrapData returns the data field of an enveloped response, or the body
// itself when the server answered with a bare payload
func unwrapData(body []byte) []byte {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil &&
		len(envelope.Data) > 0 && !bytes.Equal(envelope.Data, []byte("null")) {
		return envelope.Data
	}
	return body
}

func closeBody(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		fmt.Printf("Warning: Failed to close response body: %v\n", err)
	}
}
