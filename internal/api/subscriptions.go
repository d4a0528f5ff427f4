package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"altnews/internal/models"
)

// RenewOptions carries the optional payment details of a renewal
type RenewOptions struct {
	PaymentMethod string `json:"paymentMethod,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
}

// CreateSubscription submits a subscription purchase as a multipart form,
// attaching the student proof document when the form references one
func (c *Client) CreateSubscription(form models.SubscriptionForm) (*models.Subscription, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := map[string]string{
		"userId":        form.UserID,
		"email":         form.Email,
		"firstName":     form.FirstName,
		"lastName":      form.LastName,
		"company":       form.Company,
		"phone":         form.Phone,
		"planId":        form.PlanID,
		"newsletter":    strconv.FormatBool(form.Newsletter),
		"transactionId": form.TransactionID,
	}
	for name, value := range fields {
		if name == "userId" && value == "" {
			continue
		}
		if err := writer.WriteField(name, value); err != nil {
			return nil, err
		}
	}

	if form.StudentProof != "" {
		f, err := os.Open(form.StudentProof)
		if err != nil {
			return nil, fmt.Errorf("error opening proof document: %w", err)
		}

		part, err := writer.CreateFormFile("studentProof", filepath.Base(form.StudentProof))
		if err != nil {
			if closeErr := f.Close(); closeErr != nil {
				return nil, fmt.Errorf("error closing file %s: %w", form.StudentProof, closeErr)
			}
			return nil, err
		}

		if _, err := io.Copy(part, f); err != nil {
			if closeErr := f.Close(); closeErr != nil {
				return nil, fmt.Errorf("error closing file %s: %w", form.StudentProof, closeErr)
			}
			return nil, err
		}

		if err := f.Close(); err != nil {
			return nil, fmt.Errorf("error closing file %s: %w", form.StudentProof, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(http.MethodPost, "/subscriptions", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, responseError(resp)
	}

	return decodeSubscription(resp.Body)
}

// CurrentSubscription fetches the active subscription, either for the
// given user id or for the bearer of the token. A 404 means the user has
// no subscription and is reported as (nil, nil), not as an error.
func (c *Client) CurrentSubscription(userID string) (*models.Subscription, error) {
	path := "/subscriptions/current"
	if userID != "" {
		path = "/subscriptions/user/" + url.PathEscape(userID)
	}

	req, err := c.newRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer closeBody(resp)

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	return decodeSubscription(resp.Body)
}

// RenewSubscription renews a subscription, optionally recording how it was paid
func (c *Client) RenewSubscription(id string, payment *RenewOptions) (*models.Subscription, error) {
	if payment == nil {
		payment = &RenewOptions{}
	}

	req, err := c.jsonRequest(http.MethodPost, "/subscriptions/"+url.PathEscape(id)+"/renew", payment)
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

	return decodeSubscription(resp.Body)
}

// CancelSubscription cancels a subscription on the server
func (c *Client) CancelSubscription(id string) (*models.Subscription, error) {
	req, err := c.newRequest(http.MethodPost, "/subscriptions/"+url.PathEscape(id)+"/cancel", nil)
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

	return decodeSubscription(resp.Body)
}

// UpdateSubscription applies a partial update to a subscription
func (c *Client) UpdateSubscription(id string, fields map[string]interface{}) (*models.Subscription, error) {
	req, err := c.jsonRequest(http.MethodPut, "/subscriptions/"+url.PathEscape(id), fields)
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

	return decodeSubscription(resp.Body)
}

func decodeSubscription(r io.Reader) (*models.Subscription, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	var subscription models.Subscription
	if err := json.Unmarshal(unwrapData(body), &subscription); err != nil {
		return nil, fmt.Errorf("error decoding subscription: %w", err)
	}

	return &subscription, nil
}
