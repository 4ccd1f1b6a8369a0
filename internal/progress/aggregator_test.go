package progress

import (
	"context"
	"testing"
	"time"

	"github.com/alwayselse/trackbuddy/internal/model"
	"github.com/alwayselse/trackbuddy/internal/store"
	"github.com/alwayselse/trackbuddy/tests/testutil"
)

// fixedNow pins the aggregator clock so streak and heatmap windows are
// deterministic.
var fixedNow = time.Date(2026, 3, 4, 15, 0, 0, 0, time.UTC) // a Wednesday

func newAggregator(t *testing.T) (*Aggregator, *store.SQLiteStore) {
	t.Helper()
	s := testutil.NewTestStore(t)
	a := New(s)
	a.now = func() time.Time { return fixedNow }
	return a, s
}

func createGoal(t *testing.T, s *store.SQLiteStore, category string, target float64) *model.Goal {
	t.Helper()
	goal, err := s.CreateGoal(context.Background(), model.Goal{
		Title:            "Goal",
		Category:         category,
		WeeklyHourTarget: target,
		StartDate:        "2026-01-01",
		IsActive:         true,
	})
	if err != nil {
		t.Fatalf("creating goal: %v", err)
	}
	return goal
}

func createLog(t *testing.T, s *store.SQLiteStore, goalID, date, activity string, hours float64) {
	t.Helper()
	_, err := s.CreateTimeLog(context.Background(), model.TimeLog{
		GoalID:     goalID,
		Date:       date,
		Activity:   activity,
		HoursSpent: hours,
	})
	if err != nil {
		t.Fatalf("creating log: %v", err)
	}
}

func TestWeeklyProgress(t *testing.T) {
	a, s := newAggregator(t)
	ctx := context.Background()

	goal := createGoal(t, s, model.CategoryLearning, 20)
	// Monday and Tuesday of the week containing fixedNow (Mon 2026-03-02).
	createLog(t, s, goal.ID, "2026-03-02", "studied", 3.5)
	createLog(t, s, goal.ID, "2026-03-03", "studied", 2.5)
	// Previous week, must not count.
	createLog(t, s, goal.ID, "2026-02-27", "studied", 8)

	wp, err := a.WeeklyProgress(ctx, goal.ID, fixedNow)
	if err != nil {
		t.Fatalf("WeeklyProgress: %v", err)
	}
	if wp.TotalHours != 6.0 {
		t.Errorf("TotalHours = %v, want 6.0", wp.TotalHours)
	}
	if wp.CompletionPercentage != 30 {
		t.Errorf("CompletionPercentage = %v, want 30", wp.CompletionPercentage)
	}
	if wp.TargetHours != 20 {
		t.Errorf("TargetHours = %v, want 20", wp.TargetHours)
	}

	wantYear, wantWeek := fixedNow.ISOWeek()
	if wp.Year != wantYear || wp.WeekNumber != wantWeek {
		t.Errorf("week = %d/%d, want %d/%d", wp.Year, wp.WeekNumber, wantYear, wantWeek)
	}
}

func TestWeeklyProgressZeroTarget(t *testing.T) {
	a, s := newAggregator(t)

	goal := createGoal(t, s, model.CategoryLearning, 0)
	createLog(t, s, goal.ID, "2026-03-02", "studied", 4)

	wp, err := a.WeeklyProgress(context.Background(), goal.ID, fixedNow)
	if err != nil {
		t.Fatalf("WeeklyProgress: %v", err)
	}
	if wp.CompletionPercentage != 0 {
		t.Errorf("CompletionPercentage = %v, want 0 for zero target", wp.CompletionPercentage)
	}
	if wp.TotalHours != 4 {
		t.Errorf("TotalHours = %v, want 4", wp.TotalHours)
	}
}

func TestWeeklyProgressGoalNotFound(t *testing.T) {
	a, _ := newAggregator(t)

	_, err := a.WeeklyProgress(context.Background(), "missing", fixedNow)
	if !store.IsNotFound(err) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestAllWeeklyProgressCoversActiveGoalsOnly(t *testing.T) {
	a, s := newAggregator(t)
	ctx := context.Background()

	active := createGoal(t, s, model.CategoryLearning, 10)
	inactive := createGoal(t, s, model.CategoryProject, 10)
	if err := s.ToggleGoalActive(ctx, inactive.ID); err != nil {
		t.Fatalf("ToggleGoalActive: %v", err)
	}

	results, err := a.AllWeeklyProgress(ctx, fixedNow)
	if err != nil {
		t.Fatalf("AllWeeklyProgress: %v", err)
	}
	if len(results) != 1 || results[0].GoalID != active.ID {
		t.Errorf("got %+v, want one entry for the active goal", results)
	}
}

func TestMonthlyProgress(t *testing.T) {
	a, s := newAggregator(t)

	learning := createGoal(t, s, model.CategoryLearning, 20)
	projectA := createGoal(t, s, model.CategoryProject, 15)
	projectB := createGoal(t, s, model.CategoryProject, 15)
	income := createGoal(t, s, model.CategoryIncome, 5)

	// March logs.
	createLog(t, s, learning.ID, "2026-03-02", "read a paper", 2)
	createLog(t, s, projectA.ID, "2026-03-03", "built the API", 3)
	createLog(t, s, projectA.ID, "2026-03-10", "more API work", 1)
	createLog(t, s, income.ID, "2026-03-04", "Published Medium article", 1.5)
	createLog(t, s, income.ID, "2026-03-05", "drafted article outline", 0.5)
	// February log, outside the month.
	createLog(t, s, projectB.ID, "2026-02-20", "prototype", 6)

	mp, err := a.MonthlyProgress(context.Background(), fixedNow)
	if err != nil {
		t.Fatalf("MonthlyProgress: %v", err)
	}
	if mp.Month != 3 || mp.Year != 2026 {
		t.Errorf("month = %d/%d, want 3/2026", mp.Month, mp.Year)
	}
	// All March logs across all goals.
	if mp.TotalHoursLogged != 8.0 {
		t.Errorf("TotalHoursLogged = %v, want 8.0", mp.TotalHoursLogged)
	}
	// projectA has logs in March, projectB only in February.
	if mp.ProjectsCompleted != 1 {
		t.Errorf("ProjectsCompleted = %d, want 1", mp.ProjectsCompleted)
	}
	// Two logs mention "article" (every matching log counts).
	if mp.ArticlesPublished != 2 {
		t.Errorf("ArticlesPublished = %d, want 2", mp.ArticlesPublished)
	}
}

func TestCurrentStreak(t *testing.T) {
	a, s := newAggregator(t)
	goal := createGoal(t, s, model.CategoryLearning, 10)

	// Logs today and yesterday, gap two days ago.
	createLog(t, s, goal.ID, "2026-03-04", "today", 1)
	createLog(t, s, goal.ID, "2026-03-03", "yesterday", 1)
	createLog(t, s, goal.ID, "2026-03-01", "before the gap", 1)

	streak, err := a.CurrentStreak(context.Background())
	if err != nil {
		t.Fatalf("CurrentStreak: %v", err)
	}
	if streak != 2 {
		t.Errorf("streak = %d, want 2", streak)
	}
}

func TestCurrentStreakZeroWithoutTodayLog(t *testing.T) {
	a, s := newAggregator(t)
	goal := createGoal(t, s, model.CategoryLearning, 10)

	// Dense history ending yesterday; nothing today.
	for _, date := range []string{"2026-03-03", "2026-03-02", "2026-03-01", "2026-02-28"} {
		createLog(t, s, goal.ID, date, "work", 1)
	}

	streak, err := a.CurrentStreak(context.Background())
	if err != nil {
		t.Fatalf("CurrentStreak: %v", err)
	}
	if streak != 0 {
		t.Errorf("streak = %d, want 0 when today has no log", streak)
	}
}

func TestCurrentStreakEmptyStore(t *testing.T) {
	a, _ := newAggregator(t)

	streak, err := a.CurrentStreak(context.Background())
	if err != nil {
		t.Fatalf("CurrentStreak: %v", err)
	}
	if streak != 0 {
		t.Errorf("streak = %d, want 0", streak)
	}
}

func TestHeatmapDataDenseAndAscending(t *testing.T) {
	a, s := newAggregator(t)

	learning := createGoal(t, s, model.CategoryLearning, 10)
	project := createGoal(t, s, model.CategoryProject, 10)

	// Logs against two goals on the two most recent days; 2026-03-02 empty.
	createLog(t, s, learning.ID, "2026-03-04", "study", 2)
	createLog(t, s, project.ID, "2026-03-04", "build", 1.5)
	createLog(t, s, learning.ID, "2026-03-03", "study", 1)
	createLog(t, s, project.ID, "2026-03-03", "build", 1)

	entries, err := a.HeatmapData(context.Background(), 3)
	if err != nil {
		t.Fatalf("HeatmapData: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want exactly 3", len(entries))
	}

	want := []model.HeatmapEntry{
		{Date: "2026-03-02", Hours: 0},
		{Date: "2026-03-03", Hours: 2},
		{Date: "2026-03-04", Hours: 3.5},
	}
	for i, w := range want {
		if entries[i] != w {
			t.Errorf("entries[%d] = %+v, want %+v", i, entries[i], w)
		}
	}
}

func TestHeatmapDataEmptyStoreIsAllZeros(t *testing.T) {
	a, _ := newAggregator(t)

	entries, err := a.HeatmapData(context.Background(), 7)
	if err != nil {
		t.Fatalf("HeatmapData: %v", err)
	}
	if len(entries) != 7 {
		t.Fatalf("got %d entries, want 7", len(entries))
	}
	for _, e := range entries {
		if e.Hours != 0 {
			t.Errorf("entry %s has %v hours, want 0", e.Date, e.Hours)
		}
	}
}

func TestMentionsPublication(t *testing.T) {
	cases := map[string]bool{
		"Wrote a Medium post":      true,
		"PUBLISHED the newsletter": true,
		"drafted an article":       true,
		"code review":              false,
	}
	for activity, want := range cases {
		if got := mentionsPublication(activity); got != want {
			t.Errorf("mentionsPublication(%q) = %v, want %v", activity, got, want)
		}
	}
}
