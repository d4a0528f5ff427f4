package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"altnews/internal/i18n"
)

// DefaultAPIBaseURL is the production subscription API
const DefaultAPIBaseURL = "https://altnews-sub.altdigit.africa/api"

// Config represents the client configuration
type Config struct {
	// Subscription API base URL
	APIBaseURL string `json:"api_base_url"`

	// Interface language (fr or en)
	Language string `json:"language,omitempty"`

	// Cached identity of the logged-in user
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
}

// Load loads the configuration from the given file path
func Load(path string) (*Config, error) {
	// If config file doesn't exist, return default config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}
	if !i18n.IsSupported(cfg.Language) {
		cfg.Language = i18n.DefaultLanguage
	}

	return &cfg, nil
}

// Save saves the configuration to the given file path
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func defaultConfig() *Config {
	baseURL := DefaultAPIBaseURL
	if env := os.Getenv("ALTNEWS_API_BASE_URL"); env != "" {
		baseURL = env
	}
	return &Config{
		APIBaseURL: baseURL,
		Language:   i18n.DefaultLanguage,
	}
}

// GetGlobalConfigDir returns the per-user config directory (~/.altnews)
func GetGlobalConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".altnews"), nil
}

// GetGlobalConfigPath returns the path of the per-user config file
func GetGlobalConfigPath() (string, error) {
	dir, err := GetGlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadGlobalConfig loads the per-user configuration
func LoadGlobalConfig() (*Config, error) {
	path, err := GetGlobalConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// SaveGlobalConfig saves the per-user configuration
func SaveGlobalConfig(cfg *Config) error {
	path, err := GetGlobalConfigPath()
	if err != nil {
		return err
	}
	return cfg.Save(path)
}
