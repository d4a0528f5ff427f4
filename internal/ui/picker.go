package ui

import (
	"altnews/internal/models"
	"altnews/internal/subscription"
	"altnews/internal/ui/components"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// PickerModel wraps the filterable plan list for quick selection
type PickerModel struct {
	List    components.PlanListModel
	Session *subscription.Session
	Choice  *models.Plan
	Ready   bool
}

// NewPickerModel creates a plan picker for the session's language
func NewPickerModel(session *subscription.Session, language string) PickerModel {
	return PickerModel{
		List:    components.NewPlanListModel(0, 0, language),
		Session: session,
	}
}

// Init loads the plans
func (m PickerModel) Init() tea.Cmd {
	return loadPlans(m.Session)
}

// Update handles picker updates
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Let the list handle keys while its filter input is active
		if m.List.List.FilterState() != list.Filtering {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "enter":
				m.Choice = m.List.Selected
				m.Session.SelectPlan(selectedID(m.Choice))
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.List.List.SetSize(msg.Width, msg.Height)
		m.Ready = true
		return m, nil

	case plansLoadedMsg:
		m.List.SetPlans(msg)
		return m, nil

	case errorMsg:
		m.List.List.Title = string(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

// View renders the picker
func (m PickerModel) View() string {
	if !m.Ready {
		return "Initializing..."
	}
	return m.List.View()
}

func selectedID(plan *models.Plan) string {
	if plan == nil {
		return ""
	}
	return plan.ID
}
