package components

import (
	"fmt"
	"sort"

	"altnews/internal/i18n"
	"altnews/internal/models"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PlanItem represents a plan in the list
type PlanItem struct {
	Plan     *models.Plan
	Language string
}

// FilterValue returns the filter value for the plan item
func (i PlanItem) FilterValue() string {
	return i.Plan.Name
}

// Title returns the title for the plan item
func (i PlanItem) Title() string {
	return i.Plan.Name
}

// Description returns the description for the plan item
func (i PlanItem) Description() string {
	price := i18n.FormatPrice(i.Plan.Price, i.Plan.Currency, i.Language)
	if i.Plan.Description != "" {
		return fmt.Sprintf("%s / %d j - %s", price, i.Plan.Duration, i.Plan.Description)
	}
	return fmt.Sprintf("%s / %d j", price, i.Plan.Duration)
}

// PlanListModel represents the plan list model
type PlanListModel struct {
	List     list.Model
	Plans    []models.Plan
	Selected *models.Plan
	Language string
}

// NewPlanListModel creates a new plan list model
func NewPlanListModel(width, height int, language string) PlanListModel {
	listModel := list.New([]list.Item{}, list.NewDefaultDelegate(), width, height)
	listModel.Title = "Plans"
	listModel.SetShowStatusBar(false)
	listModel.SetFilteringEnabled(true)
	listModel.Styles.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true).
		MarginLeft(2)

	return PlanListModel{
		List:     listModel,
		Plans:    []models.Plan{},
		Language: language,
	}
}

// SetPlans sets the plans in the list
func (m *PlanListModel) SetPlans(plans []models.Plan) {
	m.Plans = plans

	// Sort plans by price, cheapest first
	sort.Slice(plans, func(i, j int) bool {
		if plans[i].Price != plans[j].Price {
			return plans[i].Price < plans[j].Price
		}
		return plans[i].Name < plans[j].Name
	})

	// Create items
	items := make([]list.Item, len(plans))
	for i := range plans {
		items[i] = PlanItem{Plan: &plans[i], Language: m.Language}
	}

	m.List.SetItems(items)
}

// Update handles plan list updates
func (m PlanListModel) Update(msg tea.Msg) (PlanListModel, tea.Cmd) {
	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)

	// Update selected plan
	if item, ok := m.List.SelectedItem().(PlanItem); ok {
		m.Selected = item.Plan
	} else {
		m.Selected = nil
	}

	return m, cmd
}

// View renders the plan list
func (m PlanListModel) View() string {
	return m.List.View()
}
