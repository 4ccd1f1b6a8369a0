package noteform

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alwayselse/trackbuddy/internal/model"
	"github.com/alwayselse/trackbuddy/internal/theme"
)

// NoteCreatedMsg is dispatched when a new note is submitted via the form.
type NoteCreatedMsg struct {
	Note model.Note
}

// NoteUpdatedMsg is dispatched when an existing note is updated.
type NoteUpdatedMsg struct {
	Note model.Note
}

// CancelMsg is dispatched when the user aborts the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title      string
	content    string
	goalIDs    []string
	projects   string
	linkedDate string
	tags       string
}

// Model is the Bubble Tea model for the note create/edit form.
type Model struct {
	form     *huh.Form
	fb       *formBindings
	editMode bool
	editNote model.Note
	goals    []model.Goal
	width    int
	height   int
}

// New creates a new note form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// SetGoals sets the goals offered by the link selector.
func (m *Model) SetGoals(goals []model.Goal) {
	m.goals = goals
}

// StartCreate initializes the form for a new note.
func (m *Model) StartCreate() tea.Cmd {
	m.editMode = false
	m.editNote = model.Note{}
	*m.fb = formBindings{}
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form for editing an existing note.
func (m *Model) StartEdit(n model.Note) tea.Cmd {
	m.editMode = true
	m.editNote = n
	*m.fb = formBindings{
		title:    n.Title,
		content:  n.Content,
		goalIDs:  append([]string(nil), n.LinkedGoalIDs...),
		projects: strings.Join(n.LinkedProjects, ", "),
		tags:     strings.Join(n.Tags, ", "),
	}
	if n.LinkedDate != nil {
		m.fb.linkedDate = *n.LinkedDate
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the note form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the note form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "New Note"
	if m.editMode {
		titleText = "Edit Note"
	}

	content := theme.TitleStyle.MarginBottom(1).Render(titleText) +
		"\n" + m.form.View()

	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Title").
			Placeholder("Note title").
			Value(&m.fb.title).
			Validate(validateRequired("Title")),
		huh.NewText().
			Title("Content").
			Placeholder("Write your note...").
			Value(&m.fb.content),
	}

	if len(m.goals) > 0 {
		opts := make([]huh.Option[string], len(m.goals))
		for i, g := range m.goals {
			opts[i] = huh.NewOption(g.Title, g.ID)
		}
		fields = append(fields,
			huh.NewMultiSelect[string]().
				Title("Linked Goals").
				Options(opts...).
				Value(&m.fb.goalIDs),
		)
	}

	fields = append(fields,
		huh.NewInput().
			Title("Linked Projects").
			Placeholder("Comma-separated names (optional)").
			Value(&m.fb.projects),
		huh.NewInput().
			Title("Linked Date").
			Placeholder("YYYY-MM-DD (optional)").
			Value(&m.fb.linkedDate).
			Validate(validateOptionalDate),
		huh.NewInput().
			Title("Tags").
			Placeholder("Comma-separated tags (optional)").
			Value(&m.fb.tags),
	)

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) handleSubmit() tea.Cmd {
	note := model.Note{
		Title:          strings.TrimSpace(m.fb.title),
		Content:        m.fb.content,
		LinkedGoalIDs:  m.fb.goalIDs,
		LinkedProjects: splitCommaList(m.fb.projects),
		Tags:           splitCommaList(m.fb.tags),
	}
	if d := strings.TrimSpace(m.fb.linkedDate); d != "" {
		note.LinkedDate = &d
	}

	if m.editMode {
		note.ID = m.editNote.ID
		note.CreatedAt = m.editNote.CreatedAt
		return func() tea.Msg { return NoteUpdatedMsg{Note: note} }
	}
	return func() tea.Msg { return NoteCreatedMsg{Note: note} }
}

// splitCommaList splits a comma-separated input into trimmed non-empty parts.
func splitCommaList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}

func validateOptionalDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(model.DateLayout, s); err != nil {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD")
	}
	return nil
}
