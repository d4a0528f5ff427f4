package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"altnews/internal/models"
)

// ListPlans fetches the plan catalog. Every record is normalized before it
// is returned, so prices, durations and feature lists are always usable.
func (c *Client) ListPlans() ([]models.Plan, error) {
	req, err := c.newRequest(http.MethodGet, "/plans", nil)
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

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	var rawPlans []models.RawPlan
	if err := json.Unmarshal(unwrapData(body), &rawPlans); err != nil {
		return nil, fmt.Errorf("error decoding plans: %w", err)
	}

	plans := make([]models.Plan, 0, len(rawPlans))
	for _, raw := range rawPlans {
		plans = append(plans, models.NormalizePlan(raw))
	}

	return plans, nil
}

// GetPlan fetches a single plan by id, normalized
func (c *Client) GetPlan(id string) (*models.Plan, error) {
	req, err := c.newRequest(http.MethodGet, "/plans/"+url.PathEscape(id), nil)
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

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	var raw models.RawPlan
	if err := json.Unmarshal(unwrapData(body), &raw); err != nil {
		return nil, fmt.Errorf("error decoding plan: %w", err)
	}

	plan := models.NormalizePlan(raw)
	return &plan, nil
}
