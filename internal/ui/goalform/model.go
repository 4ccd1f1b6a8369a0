package goalform

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

// GoalCreatedMsg is dispatched when a new goal is submitted via the form.
type GoalCreatedMsg struct {
	Goal model.Goal
}

// GoalUpdatedMsg is dispatched when an existing goal is updated via the form.
type GoalUpdatedMsg struct {
	Goal model.Goal
}

// CancelMsg is dispatched when the user aborts the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title       string
	description string
	category    string
	target      string
	rules       string
	startDate   string
	endDate     string
	active      bool
}

// Model is the Bubble Tea model for the goal create/edit form.
type Model struct {
	form     *huh.Form
	fb       *formBindings
	editMode bool
	editGoal model.Goal
	width    int
	height   int
}

// New creates a new goal form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{category: model.CategoryLearning, active: true},
		width:  width,
		height: height,
	}
}

// StartCreate initializes the form for creating a new goal.
func (m *Model) StartCreate() tea.Cmd {
	m.editMode = false
	m.editGoal = model.Goal{}
	*m.fb = formBindings{
		category:  model.CategoryLearning,
		startDate: time.Now().Format(model.DateLayout),
		active:    true,
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form for editing an existing goal.
func (m *Model) StartEdit(g model.Goal) tea.Cmd {
	m.editMode = true
	m.editGoal = g
	*m.fb = formBindings{
		title:       g.Title,
		description: g.Description,
		category:    g.Category,
		target:      strconv.FormatFloat(g.WeeklyHourTarget, 'f', -1, 64),
		rules:       strings.Join(g.Rules, "\n"),
		startDate:   g.StartDate,
		active:      g.IsActive,
	}
	if g.EndDate != nil {
		m.fb.endDate = *g.EndDate
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the goal form.
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

// View renders the goal form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "New Goal"
	if m.editMode {
		titleText = "Edit Goal"
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
			Placeholder("What do you want to achieve?").
			Value(&m.fb.title).
			Validate(validateRequired("Title")),
		huh.NewText().
			Title("Description").
			Placeholder("Optional details...").
			Value(&m.fb.description),
		huh.NewSelect[string]().
			Title("Category").
			Options(
				huh.NewOption("Learning", model.CategoryLearning),
				huh.NewOption("Project", model.CategoryProject),
				huh.NewOption("Income", model.CategoryIncome),
			).
			Value(&m.fb.category),
		huh.NewInput().
			Title("Weekly Hour Target").
			Placeholder("e.g. 10").
			Value(&m.fb.target).
			Validate(validateHours),
		huh.NewText().
			Title("Rules").
			Placeholder("One rule per line (optional)").
			Value(&m.fb.rules),
		huh.NewInput().
			Title("Start Date").
			Placeholder("YYYY-MM-DD").
			Value(&m.fb.startDate).
			Validate(validateDate),
		huh.NewInput().
			Title("End Date").
			Placeholder("YYYY-MM-DD (optional)").
			Value(&m.fb.endDate).
			Validate(validateOptionalDate),
	}

	if m.editMode {
		fields = append(fields,
			huh.NewConfirm().
				Title("Active").
				Affirmative("Yes").
				Negative("No").
				Value(&m.fb.active),
		)
	}

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) handleSubmit() tea.Cmd {
	target, _ := strconv.ParseFloat(strings.TrimSpace(m.fb.target), 64)

	var rules []string
	for _, line := range strings.Split(m.fb.rules, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			rules = append(rules, line)
		}
	}

	goal := model.Goal{
		Title:            strings.TrimSpace(m.fb.title),
		Description:      m.fb.description,
		Category:         m.fb.category,
		WeeklyHourTarget: target,
		Rules:            rules,
		StartDate:        strings.TrimSpace(m.fb.startDate),
		IsActive:         m.fb.active,
	}
	if end := strings.TrimSpace(m.fb.endDate); end != "" {
		goal.EndDate = &end
	}

	if m.editMode {
		goal.ID = m.editGoal.ID
		goal.CreatedAt = m.editGoal.CreatedAt
		return func() tea.Msg { return GoalUpdatedMsg{Goal: goal} }
	}
	return func() tea.Msg { return GoalCreatedMsg{Goal: goal} }
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
	if v < 0 {
		return fmt.Errorf("hours cannot be negative")
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

func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return validateDate(s)
}
