package commands

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"altnews/internal/i18n"
	"altnews/internal/payment"

	"github.com/charmbracelet/x/term"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	subscribePlanID        string
	subscribeEmail         string
	subscribeFirstName     string
	subscribeLastName      string
	subscribeCompany       string
	subscribePhone         string
	subscribeProofPath     string
	subscribeAcceptTerms   bool
	subscribeNoNewsletter  bool
	subscribeTransactionID string
)

var subscribeCmd = &cobra.Command{
	Use:   "subscribe",
	Short: "Purchase a subscription",
	Long: `Run the subscription purchase flow: pick a plan, identify yourself,
accept the terms and pay. Fields not given as flags are asked interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _, err := newSession()
		if err != nil {
			fmt.Println("Error:", err)
			return nil
		}

		plans := session.FetchPlans()
		if session.PlansError != "" {
			fmt.Println("Error:", session.PlansError)
			return nil
		}

		scanner := bufio.NewScanner(os.Stdin)

		// Plan selection
		planID := subscribePlanID
		if planID == "" {
			if len(plans) == 0 {
				fmt.Println("No plans available")
				return nil
			}
			fmt.Println("Available plans:")
			for i, plan := range plans {
				fmt.Printf("  %d. %s - %s / %d days\n",
					i+1, plan.Name, session.FormatPrice(plan.Price, plan.Currency), plan.Duration)
			}
			choice := promptLine(scanner, "Plan number: ")
			index, err := strconv.Atoi(choice)
			if err != nil || index < 1 || index > len(plans) {
				fmt.Println("Invalid plan number:", choice)
				return nil
			}
			planID = plans[index-1].ID
		}
		session.SelectPlan(planID)

		// Identity: look the email up first, an existing account pre-fills
		// the remaining fields
		email := subscribeEmail
		if email == "" {
			email = promptLine(scanner, "Email: ")
		}
		session.Form.Email = email

		if session.CheckEmail(email) {
			if session.EmailExists {
				fmt.Printf("Welcome back, %s %s\n", session.Form.FirstName, session.Form.LastName)
			} else if confirm(scanner, "No account for this email. Create one? [y/N]: ") {
				if !registerInteractive(session.RegisterUser, scanner, email) {
					fmt.Println("Error:", session.ErrorMessage)
					return nil
				}
				fmt.Println("Account created")
			}
		}

		fillField(&session.Form.FirstName, subscribeFirstName, scanner, "First name: ")
		fillField(&session.Form.LastName, subscribeLastName, scanner, "Last name: ")
		if subscribeCompany != "" {
			session.Form.Company = subscribeCompany
		}
		if subscribePhone != "" {
			session.Form.Phone = subscribePhone
		}
		session.Form.StudentProof = subscribeProofPath
		session.Form.Newsletter = !subscribeNoNewsletter
		session.Form.TransactionID = subscribeTransactionID

		session.Form.AcceptTerms = subscribeAcceptTerms
		if !session.Form.AcceptTerms {
			session.Form.AcceptTerms = confirm(scanner, "Accept the terms and conditions? [y/N]: ")
		}

		if !session.ValidateForm() {
			fmt.Println("Error:", session.ErrorMessage)
			return nil
		}

		// Payment: paid plans without a prior transaction go through the
		// payment processor first
		plan := session.SelectedPlan()
		if session.Form.TransactionID == "" && plan != nil && plan.Price > 0 {
			fmt.Println("Processing payment...")
			result, err := payment.NewMockProcessor().Process(plan.Price, plan.Currency)
			if err != nil {
				cfg, _ := currentConfig()
				fmt.Println("Error:", i18n.T(sessionLang(cfg), "error.payment"))
				return nil
			}
			session.Form.TransactionID = result.TransactionID
			fmt.Printf("Payment accepted (transaction %s)\n", result.TransactionID)
		}

		if !session.ProcessSubscription() {
			fmt.Println("Error:", session.ErrorMessage)
			return nil
		}

		current := session.Current
		color.Green("Subscription confirmed!")
		if plan != nil {
			fmt.Printf("Plan: %s\n", plan.Name)
		}
		if current != nil {
			printSubscriptionDates(current)
		}

		session.ResetForm()
		return nil
	},
}

// registerInteractive collects the registration fields and creates the account
func registerInteractive(register func(email, password, firstName, lastName, phone string) bool, scanner *bufio.Scanner, email string) bool {
	fmt.Print("Password: ")
	passwordBytes, err := term.ReadPassword(uintptr(syscall.Stdin))
	if err != nil {
		fmt.Println("Error reading password:", err)
		return false
	}
	fmt.Println() // Add a newline after password input

	fmt.Print("Confirm password: ")
	confirmBytes, err := term.ReadPassword(uintptr(syscall.Stdin))
	if err != nil {
		fmt.Println("Error reading password confirmation:", err)
		return false
	}
	fmt.Println()

	if string(passwordBytes) != string(confirmBytes) {
		fmt.Println("Error: Passwords do not match")
		return false
	}

	firstName := promptLine(scanner, "First name: ")
	lastName := promptLine(scanner, "Last name: ")
	phone := promptLine(scanner, "Phone (optional): ")

	return register(email, string(passwordBytes), firstName, lastName, phone)
}

func promptLine(scanner *bufio.Scanner, label string) string {
	fmt.Print(label)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text())
	}
	return ""
}

func confirm(scanner *bufio.Scanner, label string) bool {
	answer := strings.ToLower(promptLine(scanner, label))
	return answer == "y" || answer == "yes" || answer == "o" || answer == "oui"
}

// fillField applies the flag value, then the pre-filled value, then prompts
func fillField(field *string, flagValue string, scanner *bufio.Scanner, label string) {
	if flagValue != "" {
		*field = flagValue
		return
	}
	if *field != "" {
		return
	}
	*field = promptLine(scanner, label)
}

func init() {
	rootCmd.AddCommand(subscribeCmd)

	subscribeCmd.Flags().StringVar(&subscribePlanID, "plan", "", "Plan id to subscribe to")
	subscribeCmd.Flags().StringVar(&subscribeEmail, "email", "", "Contact email")
	subscribeCmd.Flags().StringVar(&subscribeFirstName, "first-name", "", "First name")
	subscribeCmd.Flags().StringVar(&subscribeLastName, "last-name", "", "Last name")
	subscribeCmd.Flags().StringVar(&subscribeCompany, "company", "", "Company (optional)")
	subscribeCmd.Flags().StringVar(&subscribePhone, "phone", "", "Phone number (optional)")
	subscribeCmd.Flags().StringVar(&subscribeProofPath, "student-proof", "", "Path to a student status proof document")
	subscribeCmd.Flags().BoolVar(&subscribeAcceptTerms, "accept-terms", false, "Accept the terms and conditions")
	subscribeCmd.Flags().BoolVar(&subscribeNoNewsletter, "no-newsletter", false, "Opt out of the newsletter")
	subscribeCmd.Flags().StringVar(&subscribeTransactionID, "transaction-id", "", "Transaction id of a payment already made")
}
