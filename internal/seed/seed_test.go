package seed_test

import (
	"context"
	"testing"

	"github.com/alwayselse/trackbuddy/internal/seed"
	"github.com/alwayselse/trackbuddy/tests/testutil"
)

func TestLoadPopulatesEmptyStore(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	summary, err := seed.Load(ctx, s)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if summary.Goals != 3 || summary.TimeLogs != 5 || summary.Notes != 3 {
		t.Errorf("summary = %+v", summary)
	}

	goals, err := s.GetGoals(ctx)
	if err != nil {
		t.Fatalf("GetGoals: %v", err)
	}
	if len(goals) != 3 {
		t.Errorf("got %d goals, want 3", len(goals))
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	if _, err := seed.Load(ctx, s); err != nil {
		t.Fatalf("first Load: %v", err)
	}
	summary, err := seed.Load(ctx, s)
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if !summary.Skipped {
		t.Error("second Load should report Skipped")
	}
	if summary.Goals != 0 {
		t.Errorf("second Load created %d goals, want 0", summary.Goals)
	}

	logs, err := s.GetTimeLogs(ctx)
	if err != nil {
		t.Fatalf("GetTimeLogs: %v", err)
	}
	if len(logs) != 5 {
		t.Errorf("got %d logs after double seed, want 5", len(logs))
	}
}
