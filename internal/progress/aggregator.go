// Package progress computes derived statistics (weekly and monthly
// rollups, streaks, heatmap series) from stored goals and time
// logs. It only reads; nothing here mutates state, so every operation
// is a deterministic function of the store contents at call time.
package progress

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alwayselse/trackbuddy/internal/model"
	"github.com/alwayselse/trackbuddy/internal/store"
)

// publicationKeywords drive the "articles published" heuristic: a log
// counts when its activity text contains any of these, case-insensitive.
// Deliberately imprecise, carried over from the product.
var publicationKeywords = []string{"article", "medium", "published"}

// Aggregator derives progress statistics from the store.
type Aggregator struct {
	store store.Store

	// now is the clock; overridable in tests.
	now func() time.Time
}

// New creates an Aggregator reading from s.
func New(s store.Store) *Aggregator {
	return &Aggregator{store: s, now: time.Now}
}

// WeeklyProgress computes the rollup for one goal in the calendar week
// containing ref. The week runs Monday through Sunday and is numbered
// per ISO-8601. Returns store.ErrNotFound (wrapped) when the goal id
// does not resolve.
func (a *Aggregator) WeeklyProgress(
	ctx context.Context,
	goalID string,
	ref time.Time,
) (*model.WeeklyProgress, error) {
	goal, err := a.store.GetGoalByID(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("weekly progress: %w", err)
	}

	weekStart, weekEnd := store.WeekBounds(ref)
	totalHours, err := a.store.GetTotalHours(ctx, goalID, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("weekly progress: %w", err)
	}

	year, week := ref.ISOWeek()

	completion := 0.0
	if goal.WeeklyHourTarget > 0 {
		completion = totalHours / goal.WeeklyHourTarget * 100
	}

	return &model.WeeklyProgress{
		GoalID:               goalID,
		WeekNumber:           week,
		Year:                 year,
		TotalHours:           totalHours,
		TargetHours:          goal.WeeklyHourTarget,
		CompletionPercentage: completion,
	}, nil
}

// AllWeeklyProgress computes WeeklyProgress for every active goal.
// Each computation is independent; results follow the active-goal order.
func (a *Aggregator) AllWeeklyProgress(
	ctx context.Context,
	ref time.Time,
) ([]model.WeeklyProgress, error) {
	goals, err := a.store.GetActiveGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("all weekly progress: %w", err)
	}

	var results []model.WeeklyProgress
	for _, goal := range goals {
		wp, err := a.WeeklyProgress(ctx, goal.ID, ref)
		if err != nil {
			return nil, err
		}
		results = append(results, *wp)
	}
	return results, nil
}

// MonthlyProgress computes the summary for the calendar month
// containing ref, across all goals.
func (a *Aggregator) MonthlyProgress(
	ctx context.Context,
	ref time.Time,
) (*model.MonthlyProgress, error) {
	monthStart, monthEnd := store.MonthBounds(ref)
	logs, err := a.store.GetTimeLogsByDateRange(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("monthly progress: %w", err)
	}

	var totalHours float64
	for _, log := range logs {
		totalHours += log.HoursSpent
	}

	projectGoals, err := a.store.GetGoalsByCategory(ctx, model.CategoryProject)
	if err != nil {
		return nil, fmt.Errorf("monthly progress: %w", err)
	}
	projectIDs := make(map[string]bool, len(projectGoals))
	for _, goal := range projectGoals {
		projectIDs[goal.ID] = true
	}

	// A project goal with any log this month counts as "completed".
	projectsWithLogs := make(map[string]bool)
	articles := 0
	for _, log := range logs {
		if projectIDs[log.GoalID] {
			projectsWithLogs[log.GoalID] = true
		}
		if mentionsPublication(log.Activity) {
			articles++
		}
	}

	return &model.MonthlyProgress{
		Month:             int(ref.Month()),
		Year:              ref.Year(),
		ProjectsCompleted: len(projectsWithLogs),
		ArticlesPublished: articles,
		TotalHoursLogged:  totalHours,
	}, nil
}

// CurrentStreak counts consecutive calendar days with at least one time
// log, walking backward from today. Without a log for today the
// streak is 0: it is the current unbroken-through-today streak, not
// the most recent one.
func (a *Aggregator) CurrentStreak(ctx context.Context) (int, error) {
	logs, err := a.store.GetTimeLogs(ctx)
	if err != nil {
		return 0, fmt.Errorf("current streak: %w", err)
	}
	if len(logs) == 0 {
		return 0, nil
	}

	loggedDates := make(map[string]bool, len(logs))
	for _, log := range logs {
		loggedDates[log.Date] = true
	}

	streak := 0
	day := a.now()
	for loggedDates[store.DateOf(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak, nil
}

// HeatmapData sums hours per calendar day, across all goals, for the
// trailing `days` days ending today inclusive. The series is dense:
// exactly `days` entries, ascending by date, 0 hours where nothing was
// logged.
func (a *Aggregator) HeatmapData(ctx context.Context, days int) ([]model.HeatmapEntry, error) {
	if days <= 0 {
		return nil, nil
	}

	today := a.now()
	windowStart := today.AddDate(0, 0, -(days - 1))

	logs, err := a.store.GetTimeLogsByDateRange(
		ctx, store.DateOf(windowStart), store.DateOf(today))
	if err != nil {
		return nil, fmt.Errorf("heatmap data: %w", err)
	}

	hoursByDate := make(map[string]float64, len(logs))
	for _, log := range logs {
		hoursByDate[log.Date] += log.HoursSpent
	}

	entries := make([]model.HeatmapEntry, 0, days)
	for day := windowStart; len(entries) < days; day = day.AddDate(0, 0, 1) {
		date := store.DateOf(day)
		entries = append(entries, model.HeatmapEntry{
			Date:  date,
			Hours: hoursByDate[date],
		})
	}
	return entries, nil
}

// mentionsPublication reports whether an activity text matches the
// publication heuristic.
func mentionsPublication(activity string) bool {
	lower := strings.ToLower(activity)
	for _, keyword := range publicationKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
