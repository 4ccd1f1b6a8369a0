package notelist

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alwayselse/trackbuddy/internal/keys"
	"github.com/alwayselse/trackbuddy/internal/model"
	"github.com/alwayselse/trackbuddy/internal/store"
	"github.com/alwayselse/trackbuddy/internal/theme"
)

// NotesLoadedMsg is sent when notes have been loaded from the store.
type NotesLoadedMsg struct {
	Notes []model.Note
}

// EditNoteMsg asks the app to open the note form for an existing note.
type EditNoteMsg struct {
	Note model.Note
}

// NewNoteMsg asks the app to open the note form empty.
type NewNoteMsg struct{}

// DeleteNoteMsg asks the app to delete a note.
type DeleteNoteMsg struct {
	NoteID string
}

// Model is the note list view component.
type Model struct {
	list        list.Model
	store       store.Store
	keys        *keys.KeyMap
	query       string
	searchMode  bool
	searchInput textinput.Model
	width       int
	height      int
}

// New creates a new note list model.
func New(s store.Store, k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, ItemDelegate{}, width, height-2)
	l.Title = "Notes"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	si := textinput.New()
	si.Placeholder = "search notes..."
	si.Prompt = "/ "
	si.Width = width - 4

	return Model{
		list:        l,
		store:       s,
		keys:        k,
		searchInput: si,
		width:       width,
		height:      height,
	}
}

// Init returns a command that loads the initial set of notes.
func (m Model) Init() tea.Cmd {
	return m.LoadNotes()
}

// Update handles messages for the note list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case NotesLoadedMsg:
		items := make([]list.Item, len(msg.Notes))
		for i, n := range msg.Notes {
			items[i] = NoteItem{Note: n}
		}
		cmd := m.list.SetItems(items)
		return m, cmd

	case tea.KeyMsg:
		if m.searchMode {
			return m.handleSearchKeys(msg)
		}
		return m.handleNormalKeys(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleSearchKeys processes key input while in search mode.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		m.query = m.searchInput.Value()
		return m, m.LoadNotes()

	case "esc":
		m.searchMode = false
		m.searchInput.Reset()
		m.query = ""
		return m, m.LoadNotes()
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleNormalKeys processes key input in normal (non-search) mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.searchInput.Reset()
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.New):
		return m, func() tea.Msg { return NewNoteMsg{} }

	case key.Matches(msg, m.keys.Edit), key.Matches(msg, m.keys.Select):
		item, ok := m.list.SelectedItem().(NoteItem)
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return EditNoteMsg{Note: item.Note} }

	case key.Matches(msg, m.keys.Delete):
		item, ok := m.list.SelectedItem().(NoteItem)
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return DeleteNoteMsg{NoteID: item.Note.ID} }
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the note list view.
func (m Model) View() string {
	if m.searchMode {
		searchBar := lipgloss.NewStyle().
			Padding(0, 1).
			Render(m.searchInput.View())
		return lipgloss.JoinVertical(lipgloss.Left, searchBar, m.list.View())
	}

	if len(m.list.Items()) == 0 {
		style := lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorSubtle)
		if m.query != "" {
			return style.Render("No notes match the search.")
		}
		return style.Render("No notes yet.\n\nPress n to write one.")
	}

	return m.list.View()
}

// LoadNotes returns a tea.Cmd that queries the store with the current query.
func (m Model) LoadNotes() tea.Cmd {
	s := m.store
	query := m.query
	return func() tea.Msg {
		var (
			notes []model.Note
			err   error
		)
		if query == "" {
			notes, err = s.GetNotes(context.Background())
		} else {
			notes, err = s.SearchNotes(context.Background(), query)
		}
		if err != nil {
			return NotesLoadedMsg{Notes: nil}
		}
		return NotesLoadedMsg{Notes: notes}
	}
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
	m.searchInput.Width = width - 4
}
