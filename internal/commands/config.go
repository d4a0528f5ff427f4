package commands

import (
	"fmt"

	"altnews/internal/config"
	"altnews/internal/i18n"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and edit the client configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := currentConfig()
		if err != nil {
			fmt.Println("Error loading config:", err)
			return nil
		}

		fmt.Printf("api-url: %s\n", cfg.APIBaseURL)
		fmt.Printf("language: %s\n", cfg.Language)
		if cfg.Email != "" {
			fmt.Printf("email: %s\n", cfg.Email)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long:  "Set a configuration value. Keys: api-url, language.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := currentConfig()
		if err != nil {
			fmt.Println("Error loading config:", err)
			return nil
		}

		key, value := args[0], args[1]
		switch key {
		case "api-url":
			cfg.APIBaseURL = value
		case "language":
			if !i18n.IsSupported(value) {
				fmt.Printf("Unsupported language: %s (supported: fr, en)\n", value)
				return nil
			}
			cfg.Language = value
		default:
			fmt.Println("Unknown config key:", key)
			return nil
		}

		if err := config.SaveGlobalConfig(cfg); err != nil {
			fmt.Println("Error saving config:", err)
			return nil
		}

		fmt.Printf("%s = %s\n", key, value)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetGlobalConfigPath()
		if err != nil {
			fmt.Println("Error:", err)
			return nil
		}

		cfg, err := config.Load(path)
		if err != nil {
			fmt.Println("Error loading config:", err)
			return nil
		}

		if err := cfg.Save(path); err != nil {
			fmt.Println("Error saving config:", err)
			return nil
		}

		fmt.Println("Wrote", path)
		return nil
	},
}

var configPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print the configuration paths",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.GetGlobalConfigDir()
		if err != nil {
			fmt.Println("Error:", err)
			return nil
		}
		path, err := config.GetGlobalConfigPath()
		if err != nil {
			fmt.Println("Error:", err)
			return nil
		}

		fmt.Printf("config dir:  %s\n", dir)
		fmt.Printf("config file: %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathsCmd)
}
