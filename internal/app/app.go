package app

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alwayselse/trackbuddy/internal/eventbus"
	"github.com/alwayselse/trackbuddy/internal/keys"
	"github.com/alwayselse/trackbuddy/internal/model"
	"github.com/alwayselse/trackbuddy/internal/progress"
	"github.com/alwayselse/trackbuddy/internal/store"
	"github.com/alwayselse/trackbuddy/internal/theme"
	"github.com/alwayselse/trackbuddy/internal/ui"
	"github.com/alwayselse/trackbuddy/internal/ui/dashboard"
	"github.com/alwayselse/trackbuddy/internal/ui/goalform"
	"github.com/alwayselse/trackbuddy/internal/ui/goallist"
	"github.com/alwayselse/trackbuddy/internal/ui/logform"
	"github.com/alwayselse/trackbuddy/internal/ui/loglist"
	"github.com/alwayselse/trackbuddy/internal/ui/noteform"
	"github.com/alwayselse/trackbuddy/internal/ui/notelist"
)

// ViewState identifies which view currently owns the content area.
type ViewState int

const (
	ViewDashboard ViewState = iota
	ViewGoals
	ViewLogs
	ViewNotes
	ViewGoalForm
	ViewLogForm
	ViewNoteForm
)

var tabNames = []string{"1 Dashboard", "2 Goals", "3 Logs", "4 Notes"}

// Model is the root Bubble Tea model that routes messages between views.
type Model struct {
	store  store.Store
	keys   keys.KeyMap
	layout ui.Layout
	help   help.Model
	events <-chan eventbus.Event

	state     ViewState
	dashboard dashboard.Model
	goalList  goallist.Model
	logList   loglist.Model
	noteList  notelist.Model
	goalForm  goalform.Model
	logForm   logform.Model
	noteForm  noteform.Model

	errMsg string
}

// New creates the root application model.
func New(s store.Store, cfg *model.AppConfig) Model {
	k := keys.DefaultKeyMap()
	agg := progress.New(s)
	layout := ui.NewLayout(80, 24)
	w, h := layout.ContentWidth(), layout.ContentHeight()

	events := s.Events().Subscribe(context.Background(), 16)

	return Model{
		store:     s,
		keys:      k,
		layout:    layout,
		help:      help.New(),
		events:    events,
		state:     ViewDashboard,
		dashboard: dashboard.New(s, agg, cfg.Display.HeatmapDays, w, h),
		goalList:  goallist.New(s, &k, w, h),
		logList:   loglist.New(s, &k, w, h),
		noteList:  notelist.New(s, &k, w, h),
		goalForm:  goalform.New(w, h),
		logForm:   logform.New(w, h),
		noteForm:  noteform.New(w, h),
	}
}

// Init loads every view and starts listening for store change events.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.dashboard.Init(),
		m.goalList.Init(),
		m.logList.Init(),
		m.noteList.Init(),
		m.waitForEvent(),
	)
}

// tableChangedMsg is emitted when the store reports a write to a table.
type tableChangedMsg struct {
	table string
}

// waitForEvent returns a command that blocks for the next store event.
func (m Model) waitForEvent() tea.Cmd {
	ch := m.events
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return tableChangedMsg{table: ev.Table}
	}
}

// Update routes messages to the active view and handles global keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		w, h := m.layout.ContentWidth(), m.layout.ContentHeight()
		m.dashboard.SetSize(w, h)
		m.goalList.SetSize(w, h)
		m.logList.SetSize(w, h)
		m.noteList.SetSize(w, h)
		m.goalForm.SetSize(w, h)
		m.logForm.SetSize(w, h)
		m.noteForm.SetSize(w, h)
		m.help.Width = msg.Width
		return m, nil

	case tableChangedMsg:
		return m, tea.Batch(m.reloadFor(msg.table), m.waitForEvent())

	case errMsg:
		m.errMsg = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		if handled, mdl, cmd := m.handleGlobalKeys(msg); handled {
			return mdl, cmd
		}
	}

	return m.updateActiveView(msg)
}

// handleGlobalKeys processes keys that apply regardless of the active view.
// Form views only honor quit so that typing is never intercepted.
func (m Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return true, m, tea.Quit
	}

	if m.inForm() {
		return false, m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return true, m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return true, m, nil
	case key.Matches(msg, m.keys.Dashboard):
		m.state = ViewDashboard
		return true, m, m.dashboard.Load()
	case key.Matches(msg, m.keys.Goals):
		m.state = ViewGoals
		return true, m, nil
	case key.Matches(msg, m.keys.Logs):
		m.state = ViewLogs
		return true, m, nil
	case key.Matches(msg, m.keys.Notes):
		m.state = ViewNotes
		return true, m, nil
	}

	return false, m, nil
}

func (m Model) inForm() bool {
	return m.state == ViewGoalForm ||
		m.state == ViewLogForm ||
		m.state == ViewNoteForm
}

// updateActiveView dispatches the message to the view that owns the screen,
// then handles the request messages views emit.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.state {
	case ViewDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case ViewGoals:
		m.goalList, cmd = m.goalList.Update(msg)
	case ViewLogs:
		m.logList, cmd = m.logList.Update(msg)
	case ViewNotes:
		m.noteList, cmd = m.noteList.Update(msg)
	case ViewGoalForm:
		m.goalForm, cmd = m.goalForm.Update(msg)
	case ViewLogForm:
		m.logForm, cmd = m.logForm.Update(msg)
	case ViewNoteForm:
		m.noteForm, cmd = m.noteForm.Update(msg)
	}

	switch msg := msg.(type) {
	// Goal view requests.
	case goallist.NewGoalMsg:
		m.state = ViewGoalForm
		return m, m.goalForm.StartCreate()
	case goallist.EditGoalMsg:
		m.state = ViewGoalForm
		return m, m.goalForm.StartEdit(msg.Goal)
	case goallist.DeleteGoalMsg:
		return m, m.deleteGoal(msg.GoalID)
	case goallist.ToggleGoalMsg:
		return m, m.toggleGoal(msg.GoalID)
	case goalform.GoalCreatedMsg:
		m.state = ViewGoals
		return m, m.createGoal(msg.Goal)
	case goalform.GoalUpdatedMsg:
		m.state = ViewGoals
		return m, m.updateGoal(msg.Goal)
	case goalform.CancelMsg:
		m.state = ViewGoals
		return m, nil

	// Time log view requests. The forms need the goal list for their
	// selector, so opening one first fetches goals.
	case loglist.NewLogMsg:
		return m, m.openLogForm(nil)
	case loglist.EditLogMsg:
		log := msg.Log
		return m, m.openLogForm(&log)
	case logFormReadyMsg:
		m.state = ViewLogForm
		m.logForm.SetGoals(msg.goals)
		if msg.edit != nil {
			return m, m.logForm.StartEdit(*msg.edit)
		}
		return m, m.logForm.StartCreate()
	case loglist.DeleteLogMsg:
		return m, m.deleteLog(msg.LogID)
	case logform.LogCreatedMsg:
		m.state = ViewLogs
		return m, m.createLog(msg.Log)
	case logform.LogUpdatedMsg:
		m.state = ViewLogs
		return m, m.updateLog(msg.Log)
	case logform.CancelMsg:
		m.state = ViewLogs
		return m, nil

	// Note view requests.
	case notelist.NewNoteMsg:
		return m, m.openNoteForm(nil)
	case notelist.EditNoteMsg:
		note := msg.Note
		return m, m.openNoteForm(&note)
	case noteFormReadyMsg:
		m.state = ViewNoteForm
		m.noteForm.SetGoals(msg.goals)
		if msg.edit != nil {
			return m, m.noteForm.StartEdit(*msg.edit)
		}
		return m, m.noteForm.StartCreate()
	case notelist.DeleteNoteMsg:
		return m, m.deleteNote(msg.NoteID)
	case noteform.NoteCreatedMsg:
		m.state = ViewNotes
		return m, m.createNote(msg.Note)
	case noteform.NoteUpdatedMsg:
		m.state = ViewNotes
		return m, m.updateNote(msg.Note)
	case noteform.CancelMsg:
		m.state = ViewNotes
		return m, nil
	}

	return m, cmd
}

// reloadFor refreshes the views affected by a write to the given table.
// The dashboard aggregates across all tables, so it always reloads.
func (m Model) reloadFor(table string) tea.Cmd {
	cmds := []tea.Cmd{m.dashboard.Load()}
	switch table {
	case eventbus.TableGoals:
		cmds = append(cmds, m.goalList.LoadGoals(), m.logList.LoadLogs())
	case eventbus.TableTimeLogs:
		cmds = append(cmds, m.logList.LoadLogs())
	case eventbus.TableNotes:
		cmds = append(cmds, m.noteList.LoadNotes())
	}
	return tea.Batch(cmds...)
}

// View renders the full frame: header, active view, status bar.
func (m Model) View() string {
	var content string
	switch m.state {
	case ViewDashboard:
		content = m.dashboard.View()
	case ViewGoals:
		content = m.goalList.View()
	case ViewLogs:
		content = m.logList.View()
	case ViewNotes:
		content = m.noteList.View()
	case ViewGoalForm:
		content = m.goalForm.View()
	case ViewLogForm:
		content = m.logForm.View()
	case ViewNoteForm:
		content = m.noteForm.View()
	}

	header := m.layout.RenderHeader(
		" trackbuddy",
		ui.RenderTabs(tabNames, m.activeTab()),
	)

	status := m.help.View(m.keys)
	if m.errMsg != "" {
		status = theme.ErrorStyle.Render(m.errMsg)
	}

	return m.layout.RenderWithFrame(header, content, m.layout.RenderStatusBar(status))
}

func (m Model) activeTab() int {
	switch m.state {
	case ViewGoals, ViewGoalForm:
		return 1
	case ViewLogs, ViewLogForm:
		return 2
	case ViewNotes, ViewNoteForm:
		return 3
	default:
		return 0
	}
}
