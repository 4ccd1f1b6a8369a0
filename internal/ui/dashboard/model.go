package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alwayselse/trackbuddy/internal/model"
	"github.com/alwayselse/trackbuddy/internal/progress"
	"github.com/alwayselse/trackbuddy/internal/store"
	"github.com/alwayselse/trackbuddy/internal/theme"
)

// LoadedMsg carries the full dashboard snapshot computed by the aggregator.
type LoadedMsg struct {
	Streak     int
	TodayHours float64
	Weekly     []model.WeeklyProgress
	GoalTitles map[string]string
	Monthly    model.MonthlyProgress
	Heatmap    []model.HeatmapEntry
}

// Model is the dashboard view component.
type Model struct {
	store       store.Store
	agg         *progress.Aggregator
	heatmapDays int

	streak     int
	todayHours float64
	weekly     []model.WeeklyProgress
	goalTitles map[string]string
	monthly    model.MonthlyProgress
	heatmap    []model.HeatmapEntry
	loaded     bool

	width  int
	height int
}

// New creates a new dashboard model.
func New(s store.Store, agg *progress.Aggregator, heatmapDays, width, height int) Model {
	return Model{
		store:       s,
		agg:         agg,
		heatmapDays: heatmapDays,
		goalTitles:  make(map[string]string),
		width:       width,
		height:      height,
	}
}

// Init returns a command that computes the initial snapshot.
func (m Model) Init() tea.Cmd {
	return m.Load()
}

// Update handles messages for the dashboard view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if loaded, ok := msg.(LoadedMsg); ok {
		m.streak = loaded.Streak
		m.todayHours = loaded.TodayHours
		m.weekly = loaded.Weekly
		m.goalTitles = loaded.GoalTitles
		m.monthly = loaded.Monthly
		m.heatmap = loaded.Heatmap
		m.loaded = true
	}
	return m, nil
}

// Load returns a tea.Cmd that recomputes every dashboard section.
func (m Model) Load() tea.Cmd {
	s := m.store
	agg := m.agg
	days := m.heatmapDays
	return func() tea.Msg {
		ctx := context.Background()
		now := time.Now()

		loaded := LoadedMsg{GoalTitles: make(map[string]string)}

		if streak, err := agg.CurrentStreak(ctx); err == nil {
			loaded.Streak = streak
		}
		if logs, err := s.GetTimeLogsByDate(ctx, store.DateOf(now)); err == nil {
			for _, tl := range logs {
				loaded.TodayHours += tl.HoursSpent
			}
		}
		if weekly, err := agg.AllWeeklyProgress(ctx, now); err == nil {
			loaded.Weekly = weekly
		}
		if goals, err := s.GetGoals(ctx); err == nil {
			for _, g := range goals {
				loaded.GoalTitles[g.ID] = g.Title
			}
		}
		if monthly, err := agg.MonthlyProgress(ctx, now); err == nil {
			loaded.Monthly = *monthly
		}
		if hm, err := agg.HeatmapData(ctx, days); err == nil {
			loaded.Heatmap = hm
		}

		return loaded
	}
}

// View renders the dashboard.
func (m Model) View() string {
	if !m.loaded {
		return theme.SubtleStyle.Padding(1, 2).Render("Loading...")
	}

	sections := []string{
		m.renderSummary(),
		m.renderWeekly(),
		m.renderHeatmap(),
		m.renderMonthly(),
	}

	return lipgloss.NewStyle().
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderSummary() string {
	streak := fmt.Sprintf("🔥 %d day streak", m.streak)
	if m.streak == 0 {
		streak = theme.SubtleStyle.Render("no streak, log hours today to start one")
	}
	today := fmt.Sprintf("today: %.1fh", m.todayHours)

	return theme.PanelStyle.Width(m.panelWidth()).Render(
		theme.TitleStyle.Render("TrackBuddy") + "\n" +
			streak + "  " + theme.SubtleStyle.Render("|") + "  " + today,
	)
}

func (m Model) renderWeekly() string {
	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("This Week") + "\n")

	if len(m.weekly) == 0 {
		b.WriteString(theme.SubtleStyle.Render("No active goals."))
		return theme.PanelStyle.Width(m.panelWidth()).Render(b.String())
	}

	for i, wp := range m.weekly {
		title := m.goalTitles[wp.GoalID]
		if title == "" {
			title = wp.GoalID
		}
		pct := theme.CompletionStyle(wp.CompletionPercentage).
			Render(fmt.Sprintf("%3.0f%%", wp.CompletionPercentage))
		line := fmt.Sprintf(
			"%-24s %s  %.1f/%.1fh %s",
			truncate(title, 24),
			renderBar(wp.CompletionPercentage, 20),
			wp.TotalHours, wp.TargetHours, pct,
		)
		b.WriteString(line)
		if i < len(m.weekly)-1 {
			b.WriteString("\n")
		}
	}

	return theme.PanelStyle.Width(m.panelWidth()).Render(b.String())
}

func (m Model) renderHeatmap() string {
	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render(
		fmt.Sprintf("Last %d Days", len(m.heatmap))) + "\n")

	for _, entry := range m.heatmap {
		b.WriteString(theme.HeatmapStyle(entry.Hours).Render("■"))
	}

	return theme.PanelStyle.Width(m.panelWidth()).Render(b.String())
}

func (m Model) renderMonthly() string {
	month := time.Month(m.monthly.Month).String()
	line := fmt.Sprintf(
		"%.1fh logged  %s  %d projects completed  %s  %d articles published",
		m.monthly.TotalHoursLogged,
		theme.SubtleStyle.Render("|"),
		m.monthly.ProjectsCompleted,
		theme.SubtleStyle.Render("|"),
		m.monthly.ArticlesPublished,
	)

	return theme.PanelStyle.Width(m.panelWidth()).Render(
		theme.TitleStyle.Render(fmt.Sprintf("%s %d", month, m.monthly.Year)) +
			"\n" + line,
	)
}

func (m Model) panelWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	return w
}

// SetSize updates the dashboard dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// renderBar draws a fixed-width completion bar clamped at 100%.
func renderBar(pct float64, width int) string {
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	filled := int(pct / 100 * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return theme.CompletionStyle(pct).Render(bar)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
