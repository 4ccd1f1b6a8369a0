package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alwayselse/trackbuddy/internal/model"
)

// openLogForm fetches the active goals for the form's selector before
// switching views. edit is nil when creating a new entry.
func (m Model) openLogForm(edit *model.TimeLog) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		goals, err := s.GetActiveGoals(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return logFormReadyMsg{goals: goals, edit: edit}
	}
}

func (m Model) createLog(log model.TimeLog) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		if _, err := s.CreateTimeLog(context.Background(), log); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func (m Model) updateLog(log model.TimeLog) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		if err := s.UpdateTimeLog(context.Background(), log); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func (m Model) deleteLog(id string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		if err := s.DeleteTimeLog(context.Background(), id); err != nil {
			return errMsg{err}
		}
		return nil
	}
}
