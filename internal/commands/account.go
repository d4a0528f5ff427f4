package commands

import (
	"bufio"
	"fmt"
	"os"

	"altnews/internal/i18n"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	registerFirstName string
	registerLastName  string
	registerPhone     string
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage the stored account",
	Long:  "Create an account, inspect the logged-in user and clear the stored credentials.",
}

var accountRegisterCmd = &cobra.Command{
	Use:   "register <email>",
	Short: "Create an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _, err := newSession()
		if err != nil {
			fmt.Println("Error:", err)
			return nil
		}

		email := args[0]
		scanner := bufio.NewScanner(os.Stdin)

		// An existing account means nothing to do
		if session.CheckEmail(email) && session.EmailExists {
			fmt.Println("An account already exists for", email)
			return nil
		}
		if session.EmailCheckFailed {
			cfg, _ := currentConfig()
			fmt.Println("Warning:", i18n.T(sessionLang(cfg), "error.email_check"))
		}

		register := func(email, password, firstName, lastName, phone string) bool {
			if registerFirstName != "" {
				firstName = registerFirstName
			}
			if registerLastName != "" {
				lastName = registerLastName
			}
			if registerPhone != "" {
				phone = registerPhone
			}
			return session.RegisterUser(email, password, firstName, lastName, phone)
		}
		if !registerInteractive(register, scanner, email) {
			if session.ErrorMessage != "" {
				fmt.Println("Error:", session.ErrorMessage)
			}
			return nil
		}

		color.Green("Account created for %s", email)
		return nil
	},
}

var accountCheckEmailCmd = &cobra.Command{
	Use:   "check-email <email>",
	Short: "Check whether an account exists for an email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _, err := newSession()
		if err != nil {
			fmt.Println("Error:", err)
			return nil
		}

		if !session.CheckEmail(args[0]) {
			cfg, _ := currentConfig()
			fmt.Println("Error:", i18n.T(sessionLang(cfg), "error.email_check"))
			return nil
		}

		if session.EmailExists {
			fmt.Printf("Account exists: %s %s <%s>\n",
				session.Form.FirstName, session.Form.LastName, session.Form.Email)
		} else {
			fmt.Println("No account for", args[0])
		}
		return nil
	},
}

var accountWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := newAPIClient()
		if err != nil {
			fmt.Println("Error:", err)
			return nil
		}

		user, err := requireSubscriber(store)
		if err != nil {
			fmt.Println("Error:", err)
			return nil
		}

		color.New(color.Bold).Printf("%s\n", user.FullName())
		fmt.Printf("Email: %s\n", user.Email)
		if user.Phone != "" {
			fmt.Printf("Phone: %s\n", user.Phone)
		}
		if user.Role != "" {
			fmt.Printf("Role: %s\n", user.Role)
		}

		if data, err := store.Data(); err == nil && data.LoginTime != "" {
			cfg, _ := currentConfig()
			fmt.Printf("Logged in since: %s\n", i18n.FormatDateTime(data.LoginTime, sessionLang(cfg)))
		}
		return nil
	},
}

var accountLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := newAPIClient()
		if err != nil {
			fmt.Println("Error:", err)
			return nil
		}

		if err := store.Clear(); err != nil {
			fmt.Println("Error clearing stored credentials:", err)
			return nil
		}

		fmt.Println("Logged out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.AddCommand(accountRegisterCmd)
	accountCmd.AddCommand(accountCheckEmailCmd)
	accountCmd.AddCommand(accountWhoamiCmd)
	accountCmd.AddCommand(accountLogoutCmd)

	accountRegisterCmd.Flags().StringVar(&registerFirstName, "first-name", "", "First name")
	accountRegisterCmd.Flags().StringVar(&registerLastName, "last-name", "", "Last name")
	accountRegisterCmd.Flags().StringVar(&registerPhone, "phone", "", "Phone number (optional)")
}
