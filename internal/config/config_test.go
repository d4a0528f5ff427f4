package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))

	require.NoError(t, err)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, "fr", cfg.Language)
}

func TestLoadMissingFileHonorsEnvOverride(t *testing.T) {
	t.Setenv("ALTNEWS_API_BASE_URL", "http://localhost:3000/api")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/api", cfg.APIBaseURL)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := &Config{APIBaseURL: "http://localhost:3000/api", Language: "en", Email: "ama@example.com"}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/api", loaded.APIBaseURL)
	assert.Equal(t, "en", loaded.Language)
	assert.Equal(t, "ama@example.com", loaded.Email)
}

func TestLoadFillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := &Config{Language: "de"} // Unsupported language, no URL
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIBaseURL, loaded.APIBaseURL)
	assert.Equal(t, "fr", loaded.Language)
}
