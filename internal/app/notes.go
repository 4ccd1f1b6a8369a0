package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alwayselse/trackbuddy/internal/model"
)

// openNoteForm fetches all goals for the link selector before switching
// views. edit is nil when creating a new note.
func (m Model) openNoteForm(edit *model.Note) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		goals, err := s.GetGoals(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return noteFormReadyMsg{goals: goals, edit: edit}
	}
}

func (m Model) createNote(note model.Note) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		if _, err := s.CreateNote(context.Background(), note); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func (m Model) updateNote(note model.Note) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		if err := s.UpdateNote(context.Background(), note); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func (m Model) deleteNote(id string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		if err := s.DeleteNote(context.Background(), id); err != nil {
			return errMsg{err}
		}
		return nil
	}
}
