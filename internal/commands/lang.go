package commands

import (
	"fmt"

	"altnews/internal/config"
	"altnews/internal/i18n"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var langCmd = &cobra.Command{
	Use:   "lang [code]",
	Short: "Show or switch the interface language",
	Long:  "Without an argument, list the supported languages. With a code (fr or en), switch to it.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := currentConfig()
		if err != nil {
			fmt.Println("Error loading config:", err)
			return nil
		}

		if len(args) == 0 {
			for _, lang := range i18n.Languages {
				if lang.Code == sessionLang(cfg) {
					color.New(color.Bold).Printf("%s %s (%s) *\n", lang.Flag, lang.Name, lang.Code)
				} else {
					fmt.Printf("%s %s (%s)\n", lang.Flag, lang.Name, lang.Code)
				}
			}
			return nil
		}

		code := args[0]
		if !i18n.IsSupported(code) {
			fmt.Printf("Unsupported language: %s (supported: fr, en)\n", code)
			return nil
		}

		cfg.Language = code
		if err := config.SaveGlobalConfig(cfg); err != nil {
			fmt.Println("Error saving config:", err)
			return nil
		}

		fmt.Println("Language set to", code)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(langCmd)
}
