package commands

import (
	"fmt"

	"altnews/internal/api"
	"altnews/internal/i18n"
	"altnews/internal/models"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	subscriptionUserID string
	renewTransactionID string
	renewMethod        string
	autoRenewOff       bool
)

var subscriptionCmd = &cobra.Command{
	Use:   "subscription",
	Short: "Show and manage your subscription",
	Long:  "Display your current subscription and renew, cancel or configure it.",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, store, err := newSession()
		if err != nil {
			fmt.Println("Error:", err)
			return nil
		}

		userID := subscriptionUserID
		if userID == "" {
			user, err := requireSubscriber(store)
			if err != nil {
				fmt.Println("Error:", err)
				return nil
			}
			userID = user.ID
		}

		current := session.FetchCurrentSubscription(userID)
		if session.SubscriptionError != "" {
			fmt.Println("Error:", session.SubscriptionError)
			return nil
		}

		cfg, _ := currentConfig()
		lang := sessionLang(cfg)
		if current == nil {
			fmt.Println(i18n.T(lang, "subscription.none"))
			fmt.Println("Browse the plans with: altnews plans")
			return nil
		}

		printSubscription(current, lang)
		return nil
	},
}

var subscriptionRenewCmd = &cobra.Command{
	Use:   "renew",
	Short: "Renew your subscription",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, store, err := newSession()
		if err != nil {
			fmt.Println("Error:", err)
			return nil
		}

		user, err := requireSubscriber(store)
		if err != nil {
			fmt.Println("Error:", err)
			return nil
		}

		current := session.FetchCurrentSubscription(user.ID)
		if current == nil {
			cfg, _ := currentConfig()
			fmt.Println(i18n.T(sessionLang(cfg), "subscription.none"))
			return nil
		}

		payment := renewPayment()
		if !session.RenewSubscription(current.ID, payment) {
			fmt.Println("Error:", session.ErrorMessage)
			return nil
		}

		color.Green("Subscription renewed")
		cfg, _ := currentConfig()
		printSubscription(session.Current, sessionLang(cfg))
		return nil
	},
}

var subscriptionCancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel your subscription",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, store, err := newSession()
		if err != nil {
			fmt.Println("Error:", err)
			return nil
		}

		user, err := requireSubscriber(store)
		if err != nil {
			fmt.Println("Error:", err)
			return nil
		}

		session.FetchCurrentSubscription(user.ID)
		if !session.CancelSubscription() {
			fmt.Println("Error:", session.ErrorMessage)
			return nil
		}

		color.Yellow("Subscription cancelled")
		cfg, _ := currentConfig()
		printSubscription(session.Current, sessionLang(cfg))
		return nil
	},
}

var subscriptionAutoRenewCmd = &cobra.Command{
	Use:   "auto-renew",
	Short: "Turn automatic renewal on or off",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, store, err := newSession()
		if err != nil {
			fmt.Println("Error:", err)
			return nil
		}

		user, err := requireSubscriber(store)
		if err != nil {
			fmt.Println("Error:", err)
			return nil
		}

		current := session.FetchCurrentSubscription(user.ID)
		if current == nil {
			cfg, _ := currentConfig()
			fmt.Println(i18n.T(sessionLang(cfg), "subscription.none"))
			return nil
		}

		enabled := !autoRenewOff
		if !session.UpdateSubscription(current.ID, map[string]interface{}{"autoRenew": enabled}) {
			fmt.Println("Error:", session.ErrorMessage)
			return nil
		}

		cfg, _ := currentConfig()
		lang := sessionLang(cfg)
		if enabled {
			fmt.Printf("%s: %s\n", i18n.T(lang, "subscription.auto_renew"), i18n.T(lang, "subscription.enabled"))
		} else {
			fmt.Printf("%s: %s\n", i18n.T(lang, "subscription.auto_renew"), i18n.T(lang, "subscription.disabled"))
		}
		return nil
	},
}

// printSubscription renders the subscription details, status colored by
// lifecycle state
func printSubscription(sub *models.Subscription, lang string) {
	status := i18n.T(lang, "status."+string(sub.Status))
	label := i18n.T(lang, "subscription.status")
	switch sub.Status {
	case models.StatusActive:
		color.Green("%s: %s", label, status)
	case models.StatusPending:
		color.Yellow("%s: %s", label, status)
	case models.StatusExpired, models.StatusCancelled:
		color.Red("%s: %s", label, status)
	default:
		fmt.Printf("%s: %s\n", label, status)
	}

	if sub.Plan != nil {
		fmt.Printf("%s: %s\n", i18n.T(lang, "subscription.plan"), sub.Plan.Name)
	}
	printSubscriptionDates(sub)

	autoRenew := i18n.T(lang, "subscription.disabled")
	if sub.AutoRenew {
		autoRenew = i18n.T(lang, "subscription.enabled")
	}
	fmt.Printf("%s: %s\n", i18n.T(lang, "subscription.auto_renew"), autoRenew)

	if sub.TransactionID != "" {
		fmt.Printf("%s: %s\n", i18n.T(lang, "subscription.transaction"), sub.TransactionID)
	}
}

func printSubscriptionDates(sub *models.Subscription) {
	cfg, _ := currentConfig()
	lang := sessionLang(cfg)
	if sub.StartDate != "" {
		fmt.Printf("%s: %s\n", i18n.T(lang, "subscription.start"), i18n.FormatDate(sub.StartDate, lang))
	}
	if sub.EndDate != "" {
		fmt.Printf("%s: %s\n", i18n.T(lang, "subscription.end"), i18n.FormatDate(sub.EndDate, lang))
	}
}

func renewPayment() *api.RenewOptions {
	if renewTransactionID == "" && renewMethod == "" {
		return nil
	}
	return &api.RenewOptions{PaymentMethod: renewMethod, TransactionID: renewTransactionID}
}

func init() {
	rootCmd.AddCommand(subscriptionCmd)
	subscriptionCmd.AddCommand(subscriptionRenewCmd)
	subscriptionCmd.AddCommand(subscriptionCancelCmd)
	subscriptionCmd.AddCommand(subscriptionAutoRenewCmd)

	subscriptionCmd.Flags().StringVar(&subscriptionUserID, "user", "", "Look up the subscription of a specific user id")
	subscriptionRenewCmd.Flags().StringVar(&renewTransactionID, "transaction-id", "", "Transaction id of a payment already made")
	subscriptionRenewCmd.Flags().StringVar(&renewMethod, "payment-method", "", "Payment method used for the renewal")
	subscriptionAutoRenewCmd.Flags().BoolVar(&autoRenewOff, "off", false, "Disable automatic renewal")
}
