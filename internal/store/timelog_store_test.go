package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/alwayselse/trackbuddy/internal/model"
	"github.com/alwayselse/trackbuddy/internal/store"
	"github.com/alwayselse/trackbuddy/tests/testutil"
)

// seedGoal creates a goal for logs to reference.
func seedGoal(t *testing.T, s *store.SQLiteStore) *model.Goal {
	t.Helper()
	goal, err := s.CreateGoal(context.Background(), model.Goal{
		Title:            "Goal",
		Category:         model.CategoryLearning,
		WeeklyHourTarget: 10,
		StartDate:        "2026-01-01",
		IsActive:         true,
	})
	if err != nil {
		t.Fatalf("seeding goal: %v", err)
	}
	return goal
}

func seedLog(t *testing.T, s *store.SQLiteStore, goalID, date string, hours float64) *model.TimeLog {
	t.Helper()
	log, err := s.CreateTimeLog(context.Background(), model.TimeLog{
		GoalID:     goalID,
		Date:       date,
		Activity:   "studied",
		HoursSpent: hours,
	})
	if err != nil {
		t.Fatalf("seeding log: %v", err)
	}
	return log
}

func TestCreateTimeLogDefaultsDateToToday(t *testing.T) {
	s := testutil.NewTestStore(t)
	goal := seedGoal(t, s)

	log, err := s.CreateTimeLog(context.Background(), model.TimeLog{
		GoalID:     goal.ID,
		Activity:   "quick session",
		HoursSpent: 0.5,
	})
	if err != nil {
		t.Fatalf("CreateTimeLog: %v", err)
	}
	if log.Date != store.DateOf(time.Now()) {
		t.Errorf("got date %s, want today", log.Date)
	}
}

func TestGetTimeLogsOrderedByDateDesc(t *testing.T) {
	s := testutil.NewTestStore(t)
	goal := seedGoal(t, s)

	seedLog(t, s, goal.ID, "2026-03-01", 1)
	seedLog(t, s, goal.ID, "2026-03-03", 1)
	seedLog(t, s, goal.ID, "2026-03-02", 1)

	logs, err := s.GetTimeLogs(context.Background())
	if err != nil {
		t.Fatalf("GetTimeLogs: %v", err)
	}
	want := []string{"2026-03-03", "2026-03-02", "2026-03-01"}
	if len(logs) != len(want) {
		t.Fatalf("got %d logs, want %d", len(logs), len(want))
	}
	for i, date := range want {
		if logs[i].Date != date {
			t.Errorf("logs[%d].Date = %s, want %s", i, logs[i].Date, date)
		}
	}
}

func TestGetTimeLogsByDateRangeInclusive(t *testing.T) {
	s := testutil.NewTestStore(t)
	goal := seedGoal(t, s)

	for _, date := range []string{
		"2026-03-01", "2026-03-02", "2026-03-05", "2026-03-06",
	} {
		seedLog(t, s, goal.ID, date, 1)
	}

	logs, err := s.GetTimeLogsByDateRange(context.Background(), "2026-03-02", "2026-03-05")
	if err != nil {
		t.Fatalf("GetTimeLogsByDateRange: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("got %d logs, want 2 (both ends inclusive)", len(logs))
	}
	if logs[0].Date != "2026-03-02" || logs[1].Date != "2026-03-05" {
		t.Errorf("wrong logs in range: %s, %s", logs[0].Date, logs[1].Date)
	}
}

func TestGetTimeLogsByGoalAndByDate(t *testing.T) {
	s := testutil.NewTestStore(t)
	a := seedGoal(t, s)
	b := seedGoal(t, s)
	ctx := context.Background()

	seedLog(t, s, a.ID, "2026-03-01", 2)
	seedLog(t, s, b.ID, "2026-03-01", 3)
	seedLog(t, s, a.ID, "2026-03-02", 1)

	byGoal, err := s.GetTimeLogsByGoal(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetTimeLogsByGoal: %v", err)
	}
	if len(byGoal) != 2 {
		t.Errorf("got %d logs for goal a, want 2", len(byGoal))
	}

	byDate, err := s.GetTimeLogsByDate(ctx, "2026-03-01")
	if err != nil {
		t.Fatalf("GetTimeLogsByDate: %v", err)
	}
	if len(byDate) != 2 {
		t.Errorf("got %d logs for date, want 2", len(byDate))
	}
}

func TestGetTotalHoursFiltersGoalAndRange(t *testing.T) {
	s := testutil.NewTestStore(t)
	a := seedGoal(t, s)
	b := seedGoal(t, s)

	seedLog(t, s, a.ID, "2026-03-02", 3.5) // in range
	seedLog(t, s, a.ID, "2026-03-03", 2.5) // in range
	seedLog(t, s, a.ID, "2026-03-10", 4)   // outside range
	seedLog(t, s, b.ID, "2026-03-02", 8)   // other goal

	total, err := s.GetTotalHours(context.Background(), a.ID, "2026-03-01", "2026-03-07")
	if err != nil {
		t.Fatalf("GetTotalHours: %v", err)
	}
	if total != 6.0 {
		t.Errorf("got %v hours, want 6.0", total)
	}
}

func TestGetTotalHoursEmptyRangeIsZero(t *testing.T) {
	s := testutil.NewTestStore(t)
	goal := seedGoal(t, s)

	total, err := s.GetTotalHours(context.Background(), goal.ID, "2026-01-01", "2026-01-07")
	if err != nil {
		t.Fatalf("GetTotalHours: %v", err)
	}
	if total != 0 {
		t.Errorf("got %v hours, want 0", total)
	}
}

func TestUpdateAndDeleteTimeLog(t *testing.T) {
	s := testutil.NewTestStore(t)
	goal := seedGoal(t, s)
	ctx := context.Background()

	log := seedLog(t, s, goal.ID, "2026-03-01", 1)

	log.HoursSpent = 2.25
	log.Reflection = "went long"
	if err := s.UpdateTimeLog(ctx, *log); err != nil {
		t.Fatalf("UpdateTimeLog: %v", err)
	}

	logs, _ := s.GetTimeLogsByGoal(ctx, goal.ID)
	if len(logs) != 1 || logs[0].HoursSpent != 2.25 || logs[0].Reflection != "went long" {
		t.Errorf("update not applied: %+v", logs)
	}

	if err := s.DeleteTimeLog(ctx, log.ID); err != nil {
		t.Fatalf("DeleteTimeLog: %v", err)
	}
	logs, _ = s.GetTimeLogsByGoal(ctx, goal.ID)
	if len(logs) != 0 {
		t.Errorf("log still present after delete: %+v", logs)
	}

	if err := s.DeleteTimeLog(ctx, log.ID); !store.IsNotFound(err) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
	missing := *log
	missing.ID = "missing"
	if err := s.UpdateTimeLog(ctx, missing); !store.IsNotFound(err) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestWeekBoundsMondayThroughSunday(t *testing.T) {
	// 2026-03-04 is a Wednesday.
	wed := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	start, end := store.WeekBounds(wed)
	if start != "2026-03-02" || end != "2026-03-08" {
		t.Errorf("got [%s, %s], want [2026-03-02, 2026-03-08]", start, end)
	}

	// Sunday belongs to the week that started the previous Monday.
	sun := time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)
	start, end = store.WeekBounds(sun)
	if start != "2026-03-02" || end != "2026-03-08" {
		t.Errorf("got [%s, %s], want [2026-03-02, 2026-03-08]", start, end)
	}
}

func TestMonthBounds(t *testing.T) {
	feb := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	start, end := store.MonthBounds(feb)
	if start != "2026-02-01" || end != "2026-02-28" {
		t.Errorf("got [%s, %s], want [2026-02-01, 2026-02-28]", start, end)
	}

	leap := time.Date(2028, 2, 1, 0, 0, 0, 0, time.UTC)
	start, end = store.MonthBounds(leap)
	if start != "2028-02-01" || end != "2028-02-29" {
		t.Errorf("got [%s, %s], want leap-year February", start, end)
	}
}
