package goallist

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alwayselse/trackbuddy/internal/model"
	"github.com/alwayselse/trackbuddy/internal/theme"
)

// GoalItem wraps a model.Goal so it can be used in a bubbles/list.
type GoalItem struct {
	Goal model.Goal
}

// FilterValue returns the string used for fuzzy filtering.
func (i GoalItem) FilterValue() string { return i.Goal.Title }

// ItemDelegate implements list.ItemDelegate for rendering goal lines.
type ItemDelegate struct{}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single goal line.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	gi, ok := item.(GoalItem)
	if !ok {
		return
	}
	g := gi.Goal

	var prefix string
	if g.IsActive {
		prefix = "●"
	} else {
		prefix = "○"
	}

	badge := theme.CategoryStyle(g.Category).Render(categoryLabel(g.Category))
	target := theme.SubtleStyle.Render(fmt.Sprintf("%.1fh/wk", g.WeeklyHourTarget))

	line := fmt.Sprintf("%s %s %s  %s", prefix, badge, g.Title, target)

	if !g.IsActive {
		line = theme.InactiveStyle.Render(line)
	}
	if index == m.Index() {
		line = theme.SelectedStyle.Render("> " + line)
	} else {
		line = "  " + line
	}

	fmt.Fprint(w, line)
}

// categoryLabel returns a fixed-width badge text for a category.
func categoryLabel(c string) string {
	switch c {
	case model.CategoryLearning:
		return "LRN"
	case model.CategoryProject:
		return "PRJ"
	case model.CategoryIncome:
		return "INC"
	default:
		return "???"
	}
}
