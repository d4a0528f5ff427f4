package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePlanStringFields(t *testing.T) {
	var raw RawPlan
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 42,
		"name": "Standard",
		"price": "2000",
		"currency": "FCFA",
		"duration": "30",
		"features": ["Accès illimité", "Newsletter"],
		"isActive": true
	}`), &raw))

	plan := NormalizePlan(raw)

	assert.Equal(t, "42", plan.ID)
	assert.Equal(t, "Standard", plan.Name)
	assert.Equal(t, 2000.0, plan.Price)
	assert.Equal(t, "FCFA", plan.Currency)
	assert.Equal(t, 30, plan.Duration)
	assert.Equal(t, []string{"Accès illimité", "Newsletter"}, plan.Features)
	assert.True(t, plan.IsActive)
}

func TestNormalizePlanNumericFields(t *testing.T) {
	var raw RawPlan
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": "premium",
		"name": "Premium",
		"price": 20000,
		"duration": 365
	}`), &raw))

	plan := NormalizePlan(raw)

	assert.Equal(t, "premium", plan.ID)
	assert.Equal(t, 20000.0, plan.Price)
	assert.Equal(t, 365, plan.Duration)
	assert.Empty(t, plan.Features)
}

func TestNormalizePlanDegradedFields(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantPrice    float64
		wantDuration int
	}{
		{"unparsable price", `{"price": "abc", "duration": 7}`, 0, 7},
		{"negative price", `{"price": -500, "duration": 7}`, 0, 7},
		{"missing price", `{"duration": 7}`, 0, 7},
		{"unparsable duration", `{"price": 100, "duration": "soon"}`, 100, 30},
		{"zero duration", `{"price": 100, "duration": 0}`, 100, 30},
		{"negative duration", `{"price": 100, "duration": -3}`, 100, 30},
		{"missing duration", `{"price": 100}`, 100, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw RawPlan
			require.NoError(t, json.Unmarshal([]byte(tt.body), &raw))

			plan := NormalizePlan(raw)
			assert.Equal(t, tt.wantPrice, plan.Price)
			assert.Equal(t, tt.wantDuration, plan.Duration)
		})
	}
}

func TestParseFeatures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"array", `["a", "b"]`, []string{"a", "b"}},
		{"encoded string", `"[\"a\", \"b\"]"`, []string{"a", "b"}},
		{"empty array", `[]`, []string{}},
		{"null", `null`, []string{}},
		{"empty", ``, []string{}},
		{"garbage string", `"not json"`, []string{}},
		{"number", `5`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFeatures(json.RawMessage(tt.raw))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewSubscriptionFormDefaults(t *testing.T) {
	form := NewSubscriptionForm()

	assert.True(t, form.Newsletter)
	assert.False(t, form.AcceptTerms)
	assert.Empty(t, form.PlanID)
	assert.Empty(t, form.Email)
}
