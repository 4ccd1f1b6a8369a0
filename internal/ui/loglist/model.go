package loglist

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

// LogsLoadedMsg is sent when time logs have been loaded from the store.
type LogsLoadedMsg struct {
	Logs       []model.TimeLog
	GoalTitles map[string]string
}

// EditLogMsg asks the app to open the log form for an existing entry.
type EditLogMsg struct {
	Log model.TimeLog
}

// NewLogMsg asks the app to open the log form empty.
type NewLogMsg struct{}

// DeleteLogMsg asks the app to delete a time log.
type DeleteLogMsg struct {
	LogID string
}

// rangeModes defines the time window modes cycled by the filter key.
var rangeModes = []string{"all", "week", "month"}

// Model is the time log list view component.
type Model struct {
	list       list.Model
	store      store.Store
	keys       *keys.KeyMap
	rangeIndex int
	width      int
	height     int
}

// New creates a new time log list model.
func New(s store.Store, k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, ItemDelegate{}, width, height-2)
	l.Title = "Time Logs"
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

// Init returns a command that loads the initial set of logs.
func (m Model) Init() tea.Cmd {
	return m.LoadLogs()
}

// Update handles messages for the time log list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LogsLoadedMsg:
		items := make([]list.Item, len(msg.Logs))
		for i, tl := range msg.Logs {
			items[i] = LogItem{Log: tl, GoalTitle: msg.GoalTitles[tl.GoalID]}
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
		return m, func() tea.Msg { return NewLogMsg{} }

	case key.Matches(msg, m.keys.Edit), key.Matches(msg, m.keys.Select):
		item, ok := m.list.SelectedItem().(LogItem)
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return EditLogMsg{Log: item.Log} }

	case key.Matches(msg, m.keys.Delete):
		item, ok := m.list.SelectedItem().(LogItem)
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return DeleteLogMsg{LogID: item.Log.ID} }

	case msg.String() == "f":
		m.rangeIndex = (m.rangeIndex + 1) % len(rangeModes)
		return m, m.LoadLogs()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the time log list view.
func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		style := lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorSubtle)
		return style.Render("No time logged yet.\n\nPress n to log hours.")
	}
	return m.list.View()
}

// LoadLogs returns a tea.Cmd that queries the store with the current range.
func (m Model) LoadLogs() tea.Cmd {
	s := m.store
	mode := rangeModes[m.rangeIndex]
	return func() tea.Msg {
		ctx := context.Background()

		var (
			logs []model.TimeLog
			err  error
		)
		switch mode {
		case "week":
			logs, err = s.GetCurrentWeekLogs(ctx)
		case "month":
			logs, err = s.GetCurrentMonthLogs(ctx)
		default:
			logs, err = s.GetTimeLogs(ctx)
		}
		if err != nil {
			return LogsLoadedMsg{}
		}

		titles := make(map[string]string)
		if goals, err := s.GetGoals(ctx); err == nil {
			for _, g := range goals {
				titles[g.ID] = g.Title
			}
		}
		return LogsLoadedMsg{Logs: logs, GoalTitles: titles}
	}
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
}
