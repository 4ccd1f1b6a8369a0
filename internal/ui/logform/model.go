package logform

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alwayselse/trackbuddy/internal/model"
	"github.com/alwayselse/trackbuddy/internal/theme"
)

// LogCreatedMsg is dispatched when a new time log is submitted via the form.
type LogCreatedMsg struct {
	Log model.TimeLog
}

// LogUpdatedMsg is dispatched when an existing time log is updated.
type LogUpdatedMsg struct {
	Log model.TimeLog
}

// CancelMsg is dispatched when the user aborts the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	goalID     string
	date       string
	activity   string
	hours      string
	reflection string
}

// Model is the Bubble Tea model for the time log create/edit form.
type Model struct {
	form     *huh.Form
	fb       *formBindings
	editMode bool
	editLog  model.TimeLog
	goals    []model.Goal
	width    int
	height   int
}

// New creates a new time log form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// SetGoals sets the goals offered by the goal selector.
func (m *Model) SetGoals(goals []model.Goal) {
	m.goals = goals
}

// StartCreate initializes the form for logging new hours.
func (m *Model) StartCreate() tea.Cmd {
	m.editMode = false
	m.editLog = model.TimeLog{}
	*m.fb = formBindings{
		date: time.Now().Format(model.DateLayout),
	}
	if len(m.goals) > 0 {
		m.fb.goalID = m.goals[0].ID
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form for editing an existing entry.
func (m *Model) StartEdit(tl model.TimeLog) tea.Cmd {
	m.editMode = true
	m.editLog = tl
	*m.fb = formBindings{
		goalID:     tl.GoalID,
		date:       tl.Date,
		activity:   tl.Activity,
		hours:      strconv.FormatFloat(tl.HoursSpent, 'f', -1, 64),
		reflection: tl.Reflection,
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the time log form.
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

// View renders the time log form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "Log Hours"
	if m.editMode {
		titleText = "Edit Time Log"
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
	opts := make([]huh.Option[string], len(m.goals))
	for i, g := range m.goals {
		opts[i] = huh.NewOption(g.Title, g.ID)
	}

	fields := []huh.Field{
		huh.NewSelect[string]().
			Title("Goal").
			Options(opts...).
			Value(&m.fb.goalID),
		huh.NewInput().
			Title("Date").
			Placeholder("YYYY-MM-DD").
			Value(&m.fb.date).
			Validate(validateDate),
		huh.NewInput().
			Title("Activity").
			Placeholder("What did you work on?").
			Value(&m.fb.activity).
			Validate(validateRequired("Activity")),
		huh.NewInput().
			Title("Hours").
			Placeholder("e.g. 1.5").
			Value(&m.fb.hours).
			Validate(validateHours),
		huh.NewText().
			Title("Reflection").
			Placeholder("How did it go? (optional)").
			Value(&m.fb.reflection),
	}

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) handleSubmit() tea.Cmd {
	hours, _ := strconv.ParseFloat(strings.TrimSpace(m.fb.hours), 64)

	tl := model.TimeLog{
		GoalID:     m.fb.goalID,
		Date:       strings.TrimSpace(m.fb.date),
		Activity:   strings.TrimSpace(m.fb.activity),
		HoursSpent: hours,
		Reflection: m.fb.reflection,
	}

	if m.editMode {
		tl.ID = m.editLog.ID
		tl.CreatedAt = m.editLog.CreatedAt
		return func() tea.Msg { return LogUpdatedMsg{Log: tl} }
	}
	return func() tea.Msg { return LogCreatedMsg{Log: tl} }
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

func validateHours(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number of hours")
	}
	if v <= 0 {
		return fmt.Errorf("hours must be greater than zero")
	}
	return nil
}

func validateDate(s string) error {
	_, err := time.Parse(model.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD")
	}
	return nil
}
