package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Plan represents a purchasable subscription tier after normalization.
// Price and Duration are always numeric and Features is always a slice,
// regardless of how the API encoded them on the wire.
type Plan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency,omitempty"`
	Duration    int      `json:"duration"`
	Features    []string `json:"features"`
	IsActive    bool     `json:"isActive"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

// RawPlan is the wire representation of a plan. The API is loose about
// types: price arrives as a string or a number, duration as a string or a
// number, and features as a JSON array or a JSON-encoded string.
type RawPlan struct {
	ID          json.RawMessage `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       json.RawMessage `json:"price"`
	Currency    string          `json:"currency"`
	Duration    json.RawMessage `json:"duration"`
	Features    json.RawMessage `json:"features"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

// NormalizePlan converts a raw plan record into a canonical Plan.
// Malformed fields degrade to safe defaults instead of failing the caller:
// unparsable prices become 0, unparsable durations become 30 days and
// unparsable feature lists become empty.
func NormalizePlan(raw RawPlan) Plan {
	return Plan{
		ID:          flexString(raw.ID),
		Name:        raw.Name,
		Description: raw.Description,
		Price:       parsePrice(raw.Price),
		Currency:    raw.Currency,
		Duration:    parseDuration(raw.Duration),
		Features:    ParseFeatures(raw.Features),
		IsActive:    raw.IsActive,
		CreatedAt:   raw.CreatedAt,
		UpdatedAt:   raw.UpdatedAt,
	}
}

// ParseFeatures decodes the feature list of a plan. Arrays pass through,
// JSON-encoded strings are decoded, anything else yields an empty slice.
func ParseFeatures(raw json.RawMessage) []string {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []string{}
	}

	var features []string
	if err := json.Unmarshal(raw, &features); err == nil {
		return features
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		if err := json.Unmarshal([]byte(encoded), &features); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not parse plan features: %s\n", encoded)
			return []string{}
		}
		return features
	}

	return []string{}
}

func parsePrice(raw json.RawMessage) float64 {
	price, err := strconv.ParseFloat(flexString(raw), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return 0
	}
	return price
}

func parseDuration(raw json.RawMessage) int {
	duration, err := strconv.Atoi(flexString(raw))
	if err != nil || duration <= 0 {
		return 30
	}
	return duration
}

// flexString renders a raw JSON scalar as a plain string, accepting both
// quoted and unquoted wire values.
func flexString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	return strings.TrimSpace(string(raw))
}
