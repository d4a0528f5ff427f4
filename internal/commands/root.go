package commands

import (
	"fmt"

	"altnews/internal/api"
	"altnews/internal/config"
	"altnews/internal/i18n"
	"altnews/internal/models"
	"altnews/internal/subscription"

	"github.com/spf13/cobra"
)

var globalConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "altnews",
	Short: "ALT News - manage your news subscription from the terminal",
	Long: `ALT News subscriber client. Browse the subscription plans, purchase or
renew a subscription, and manage your account against the ALT News API.`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute(cfg *config.Config) error {
	globalConfig = cfg
	return rootCmd.Execute()
}

// currentConfig returns the loaded configuration, reloading it when the
// command runs outside the normal bootstrap (tests)
func currentConfig() (*config.Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}
	return config.LoadGlobalConfig()
}

// newAPIClient builds an API client wired to the persisted auth state
func newAPIClient() (*api.Client, *models.AuthStore, error) {
	cfg, err := currentConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("error loading config: %w", err)
	}

	configDir, err := config.GetGlobalConfigDir()
	if err != nil {
		return nil, nil, err
	}

	store := models.NewAuthStore(configDir)
	return api.NewClient(cfg.APIBaseURL, cfg.Language, store), store, nil
}

// newSession builds a purchase-flow session on top of the API client
func newSession() (*subscription.Session, *models.AuthStore, error) {
	client, store, err := newAPIClient()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := currentConfig()
	if err != nil {
		return nil, nil, err
	}

	return subscription.NewSession(client, cfg.Language), store, nil
}

// sessionLang returns the configured interface language, falling back to
// the site default
func sessionLang(cfg *config.Config) string {
	if cfg != nil && cfg.Language != "" {
		return cfg.Language
	}
	return i18n.DefaultLanguage
}

// requireSubscriber gates management commands on a stored session. Stale
// or undecodable auth state is cleared before refusing.
func requireSubscriber(store *models.AuthStore) (*models.User, error) {
	cfg, err := currentConfig()
	if err != nil {
		return nil, err
	}

	token, err := store.Token()
	if err != nil || token == "" {
		return nil, fmt.Errorf("%s", i18n.T(cfg.Language, "error.auth_required"))
	}

	user, err := store.User()
	if err != nil {
		if clearErr := store.Clear(); clearErr != nil {
			fmt.Printf("Warning: Failed to clear stale auth state: %v\n", clearErr)
		}
		return nil, fmt.Errorf("%s", i18n.T(cfg.Language, "error.auth_required"))
	}

	if !user.IsActive {
		if clearErr := store.Clear(); clearErr != nil {
			fmt.Printf("Warning: Failed to clear stale auth state: %v\n", clearErr)
		}
		return nil, fmt.Errorf("%s", i18n.T(cfg.Language, "error.auth_required"))
	}

	return user, nil
}
