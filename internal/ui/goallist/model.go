package goallist

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alwayselse/trackbuddy/internal/keys"
	"github.com/alwayselse/trackbuddy/internal/model"
	"github.com/alwayselse/trackbuddy/internal/store"
	"github.com/alwayselse/trackbuddy/internal/theme"
)

// GoalsLoadedMsg is sent when goals have been loaded from the store.
type GoalsLoadedMsg struct {
	Goals []model.Goal
}

// EditGoalMsg asks the app to open the goal form for an existing goal.
type EditGoalMsg struct {
	Goal model.Goal
}

// NewGoalMsg asks the app to open the goal form empty.
type NewGoalMsg struct{}

// DeleteGoalMsg asks the app to delete a goal and its time logs.
type DeleteGoalMsg struct {
	GoalID string
}

// ToggleGoalMsg asks the app to flip a goal's active flag.
type ToggleGoalMsg struct {
	GoalID string
}

// categoryFilters defines the filter modes cycled by the filter key.
var categoryFilters = []string{
	"",
	model.CategoryLearning,
	model.CategoryProject,
	model.CategoryIncome,
}

// Model is the goal list view component.
type Model struct {
	list        list.Model
	store       store.Store
	keys        *keys.KeyMap
	filterIndex int
	width       int
	height      int
}

// New creates a new goal list model.
func New(s store.Store, k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, ItemDelegate{}, width, height-2)
	l.Title = "Goals"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	return Model{
		list:   l,
		store:  s,
		keys:   k,
		width:  width,
		height: height,
	}
}

// Init returns a command that loads the initial set of goals.
func (m Model) Init() tea.Cmd {
	return m.LoadGoals()
}

// Update handles messages for the goal list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case GoalsLoadedMsg:
		items := make([]list.Item, len(msg.Goals))
		for i, g := range msg.Goals {
			items[i] = GoalItem{Goal: g}
		}
		cmd := m.list.SetItems(items)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.New):
		return m, func() tea.Msg { return NewGoalMsg{} }

	case key.Matches(msg, m.keys.Edit), key.Matches(msg, m.keys.Select):
		item, ok := m.list.SelectedItem().(GoalItem)
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return EditGoalMsg{Goal: item.Goal} }

	case key.Matches(msg, m.keys.Delete):
		item, ok := m.list.SelectedItem().(GoalItem)
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return DeleteGoalMsg{GoalID: item.Goal.ID} }

	case key.Matches(msg, m.keys.Toggle):
		item, ok := m.list.SelectedItem().(GoalItem)
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return ToggleGoalMsg{GoalID: item.Goal.ID} }

	case msg.String() == "f":
		m.filterIndex = (m.filterIndex + 1) % len(categoryFilters)
		return m, m.LoadGoals()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the goal list view.
func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return m.renderEmptyState()
	}
	return m.list.View()
}

func (m Model) renderEmptyState() string {
	style := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorSubtle)

	if m.filterIndex != 0 {
		return style.Render("No goals in this category.\nPress f to change the filter.")
	}
	return style.Render("No goals yet.\n\nPress n to create one.")
}

// LoadGoals returns a tea.Cmd that queries the store with the current filter.
func (m Model) LoadGoals() tea.Cmd {
	s := m.store
	category := categoryFilters[m.filterIndex]
	return func() tea.Msg {
		var (
			goals []model.Goal
			err   error
		)
		if category == "" {
			goals, err = s.GetGoals(context.Background())
		} else {
			goals, err = s.GetGoalsByCategory(context.Background(), category)
		}
		if err != nil {
			return GoalsLoadedMsg{Goals: nil}
		}
		return GoalsLoadedMsg{Goals: goals}
	}
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
}
