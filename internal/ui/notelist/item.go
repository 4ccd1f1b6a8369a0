package notelist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alwayselse/trackbuddy/internal/model"
	"github.com/alwayselse/trackbuddy/internal/theme"
)

// NoteItem wraps a model.Note so it can be used in a bubbles/list.
type NoteItem struct {
	Note model.Note
}

// FilterValue returns the string used for fuzzy filtering.
func (i NoteItem) FilterValue() string { return i.Note.Title }

// ItemDelegate implements list.ItemDelegate for rendering note lines.
type ItemDelegate struct{}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single note line.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ni, ok := item.(NoteItem)
	if !ok {
		return
	}
	n := ni.Note

	date := ""
	if n.LinkedDate != nil {
		date = theme.SubtleStyle.Render(*n.LinkedDate + "  ")
	}

	tags := ""
	if len(n.Tags) > 0 {
		display := n.Tags
		if len(display) > 3 {
			display = append(display[:3:3], "…")
		}
		tags = theme.SubtleStyle.Render("  #" + strings.Join(display, " #"))
	}

	line := fmt.Sprintf("%s%s%s", date, n.Title, tags)

	if index == m.Index() {
		line = theme.SelectedStyle.Render("> " + line)
	} else {
		line = "  " + line
	}

	fmt.Fprint(w, line)
}
