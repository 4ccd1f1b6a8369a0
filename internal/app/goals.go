package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alwayselse/trackbuddy/internal/model"
)

// Store writes run in commands so the UI never blocks. Success needs no
// message of its own; the change event from the store triggers reloads.

func (m Model) createGoal(goal model.Goal) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		if _, err := s.CreateGoal(context.Background(), goal); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func (m Model) updateGoal(goal model.Goal) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		if err := s.UpdateGoal(context.Background(), goal); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func (m Model) deleteGoal(id string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		if err := s.DeleteGoal(context.Background(), id); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func (m Model) toggleGoal(id string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		if err := s.ToggleGoalActive(context.Background(), id); err != nil {
			return errMsg{err}
		}
		return nil
	}
}
