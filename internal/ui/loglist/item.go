package loglist

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alwayselse/trackbuddy/internal/model"
	"github.com/alwayselse/trackbuddy/internal/theme"
)

// LogItem wraps a model.TimeLog so it can be used in a bubbles/list.
// GoalTitle is resolved by the loader since logs only carry the goal ID.
type LogItem struct {
	Log       model.TimeLog
	GoalTitle string
}

// FilterValue returns the string used for fuzzy filtering.
func (i LogItem) FilterValue() string { return i.Log.Activity }

// ItemDelegate implements list.ItemDelegate for rendering log lines.
type ItemDelegate struct{}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single time log line.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	li, ok := item.(LogItem)
	if !ok {
		return
	}
	tl := li.Log

	date := theme.SubtleStyle.Render(tl.Date)
	hours := theme.SelectedStyle.Render(fmt.Sprintf("%.1fh", tl.HoursSpent))

	goal := li.GoalTitle
	if goal == "" {
		goal = "(deleted goal)"
	}

	line := fmt.Sprintf("%s  %s  %s  %s", date, hours, goal, tl.Activity)

	if index == m.Index() {
		line = theme.SelectedStyle.Render("> " + line)
	} else {
		line = "  " + line
	}

	fmt.Fprint(w, line)
}
