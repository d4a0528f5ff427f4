package ui

import (
	"fmt"
	"strings"

	"altnews/internal/models"
	"altnews/internal/subscription"
	"altnews/internal/util"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model represents the plan browser UI model
type Model struct {
	Viewport      viewport.Model
	Spinner       spinner.Model
	IsLoading     bool
	StatusMessage string
	ErrorMessage  string
	Session       *subscription.Session
	Plans         []models.Plan
	Cursor        int
	Choice        *models.Plan
	Width         int
	Height        int
	Ready         bool
}

// NewModel creates a new plan browser model
func NewModel(session *subscription.Session) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		Spinner:       s,
		IsLoading:     true,
		StatusMessage: "Loading plans...",
		Session:       session,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Spinner.Tick, loadPlans(m.Session))
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.IsLoading = true
			m.StatusMessage = "Refreshing plans..."
			m.ErrorMessage = ""
			return m, loadPlans(m.Session)
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				m.Viewport.SetContent(m.renderPlans())
			}
			return m, nil
		case "down", "j":
			if m.Cursor < len(m.Plans)-1 {
				m.Cursor++
				m.Viewport.SetContent(m.renderPlans())
			}
			return m, nil
		case "enter":
			if !m.IsLoading && m.Cursor < len(m.Plans) {
				m.Choice = &m.Plans[m.Cursor]
				m.Session.SelectPlan(m.Choice.ID)
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		if !m.Ready {
			// First time initializing
			m.Viewport = viewport.New(msg.Width, msg.Height-6)
			m.Viewport.YPosition = 3
			m.Ready = true
			m.Viewport.SetContent(m.renderPlans())
		} else {
			m.Viewport.Width = msg.Width
			m.Viewport.Height = msg.Height - 6
		}

		return m, nil

	case spinner.TickMsg:
		var spinnerCmd tea.Cmd
		m.Spinner, spinnerCmd = m.Spinner.Update(msg)
		cmds = append(cmds, spinnerCmd)

	case plansLoadedMsg:
		m.IsLoading = false
		m.StatusMessage = fmt.Sprintf("Loaded %d plans", len(msg))
		m.Plans = msg
		m.Cursor = 0
		if m.Ready {
			m.Viewport.SetContent(m.renderPlans())
		}
		return m, nil

	case errorMsg:
		m.IsLoading = false
		m.ErrorMessage = string(msg)
		m.StatusMessage = "Error"
		return m, nil
	}

	if m.Ready {
		var viewportCmd tea.Cmd
		m.Viewport, viewportCmd = m.Viewport.Update(msg)
		cmds = append(cmds, viewportCmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI
func (m Model) View() string {
	if !m.Ready {
		return "Initializing..."
	}

	var status string
	if m.IsLoading {
		status = fmt.Sprintf("%s %s", m.Spinner.View(), m.StatusMessage)
	} else {
		status = m.StatusMessage
	}

	statusBar := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1).
		Render(status)

	titleBar := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		Padding(0, 1).
		Render("ALT News - Subscription Plans")

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1).
		Render("Press enter to select, r to refresh, q to quit")

	errorView := ""
	if m.ErrorMessage != "" {
		errorView = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")).
			Padding(0, 1).
			Render(m.ErrorMessage)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		statusBar,
		m.Viewport.View(),
		errorView,
		help,
	)
}

// Messages
type plansLoadedMsg []models.Plan
type errorMsg string

// Commands
func loadPlans(session *subscription.Session) tea.Cmd {
	return func() tea.Msg {
		plans := session.FetchPlans()
		if session.PlansError != "" {
			return errorMsg(session.PlansError)
		}
		return plansLoadedMsg(plans)
	}
}

// renderPlans draws one card per plan, highlighting the cursor position
func (m Model) renderPlans() string {
	if len(m.Plans) == 0 {
		return "No plans available. Press r to refresh."
	}

	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	selectedNameStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	priceStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	featureStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var cards []string
	for i, plan := range m.Plans {
		marker := "  "
		style := nameStyle
		if i == m.Cursor {
			marker = "> "
			style = selectedNameStyle
		}

		var b strings.Builder
		b.WriteString(marker + style.Render(plan.Name) + "\n")
		b.WriteString(fmt.Sprintf("  %s / %d days\n",
			priceStyle.Render(m.Session.FormatPrice(plan.Price, plan.Currency)),
			plan.Duration,
		))
		if plan.Description != "" {
			b.WriteString("  " + util.Truncate(plan.Description, 80) + "\n")
		}
		for _, feature := range plan.Features {
			b.WriteString(featureStyle.Render("    ✓ "+feature) + "\n")
		}
		cards = append(cards, b.String())
	}

	return strings.Join(cards, "\n")
}
