package commands

import (
	"fmt"
	"strings"

	"altnews/internal/models"
	"altnews/internal/ui"
	"altnews/internal/util"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showInactivePlans bool

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List the subscription plans",
	Long:  "Fetch and display the available subscription plans from the ALT News API.",
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

		if len(plans) == 0 {
			fmt.Println("No plans available")
			return nil
		}

		for _, plan := range plans {
			if !plan.IsActive && !showInactivePlans {
				continue
			}

			color.New(color.Bold, color.FgCyan).Printf("%s", plan.Name)
			if !plan.IsActive {
				color.Yellow("  (inactive)")
			} else {
				fmt.Println()
			}
			fmt.Printf("  %s / %d days\n", session.FormatPrice(plan.Price, plan.Currency), plan.Duration)
			if plan.Description != "" {
				fmt.Printf("  %s\n", plan.Description)
			}
			for _, feature := range plan.Features {
				color.Green("    ✓ %s", feature)
			}
			fmt.Printf("  id: %s\n", plan.ID)
			fmt.Println()
		}

		return nil
	},
}

var plansShowCmd = &cobra.Command{
	Use:   "show <plan-id>",
	Short: "Show one plan",
	Long:  "Display the details of a single subscription plan.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _, err := newSession()
		if err != nil {
			fmt.Println("Error:", err)
			return nil
		}

		// Accept a plan name as well as an id
		var plan *models.Plan
		if util.IsUUID(args[0]) {
			plan = session.FetchPlan(args[0])
		} else {
			for _, candidate := range session.FetchPlans() {
				if strings.EqualFold(candidate.Name, args[0]) || candidate.ID == args[0] {
					p := candidate
					plan = &p
					break
				}
			}
		}
		if plan == nil {
			fmt.Println("Plan not found:", args[0])
			return nil
		}

		color.New(color.Bold, color.FgCyan).Println(plan.Name)
		fmt.Printf("Price: %s\n", session.FormatPrice(plan.Price, plan.Currency))
		fmt.Printf("Duration: %d days\n", plan.Duration)
		if plan.Description != "" {
			fmt.Printf("Description: %s\n", plan.Description)
		}
		if len(plan.Features) > 0 {
			fmt.Println("Features:")
			for _, feature := range plan.Features {
				color.Green("  ✓ %s", feature)
			}
		}
		fmt.Printf("Active: %v\n", plan.IsActive)

		return nil
	},
}

var plansBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse plans interactively",
	Long:  "Open an interactive plan browser. Selecting a plan prints its id, ready to pass to 'altnews subscribe --plan'.",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _, err := newSession()
		if err != nil {
			fmt.Println("Error:", err)
			return nil
		}

		program := tea.NewProgram(ui.NewModel(session), tea.WithAltScreen())
		result, err := program.Run()
		if err != nil {
			fmt.Println("Error running plan browser:", err)
			return nil
		}

		if model, ok := result.(ui.Model); ok && model.Choice != nil {
			fmt.Printf("Selected plan: %s (%s)\n", model.Choice.Name, model.Choice.ID)
			fmt.Printf("Subscribe with: altnews subscribe --plan %s\n", model.Choice.ID)
		}

		return nil
	},
}

var plansPickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a plan from a filterable list",
	Long:  "Open a filterable plan list. Type / to filter by name, enter to select.",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _, err := newSession()
		if err != nil {
			fmt.Println("Error:", err)
			return nil
		}

		cfg, _ := currentConfig()
		program := tea.NewProgram(ui.NewPickerModel(session, sessionLang(cfg)), tea.WithAltScreen())
		result, err := program.Run()
		if err != nil {
			fmt.Println("Error running plan picker:", err)
			return nil
		}

		if model, ok := result.(ui.PickerModel); ok && model.Choice != nil {
			fmt.Printf("Selected plan: %s (%s)\n", model.Choice.Name, model.Choice.ID)
			fmt.Printf("Subscribe with: altnews subscribe --plan %s\n", model.Choice.ID)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(plansCmd)
	plansCmd.AddCommand(plansShowCmd)
	plansCmd.AddCommand(plansBrowseCmd)
	plansCmd.AddCommand(plansPickCmd)

	plansCmd.Flags().BoolVar(&showInactivePlans, "inactive", false, "Include inactive plans")
}
