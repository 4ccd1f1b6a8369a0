package store_test

import (
	"context"
	"testing"

	"github.com/alwayselse/trackbuddy/internal/model"
	"github.com/alwayselse/trackbuddy/internal/store"
	"github.com/alwayselse/trackbuddy/tests/testutil"
)

func TestCreateNoteRoundTrip(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	date := "2026-04-01"
	note, err := s.CreateNote(ctx, model.Note{
		Title:          "Gradient Descent",
		Content:        "# Notes\nupdate rule ...",
		LinkedGoalIDs:  []string{"goal-1", "goal-2"},
		LinkedProjects: []string{"ml-sandbox"},
		LinkedDate:     &date,
		Tags:           []string{"machine-learning", "math"},
	})
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}

	got, err := s.GetNoteByID(ctx, note.ID)
	if err != nil {
		t.Fatalf("GetNoteByID: %v", err)
	}
	if got.Title != "Gradient Descent" {
		t.Errorf("title = %q", got.Title)
	}
	if len(got.LinkedGoalIDs) != 2 || len(got.Tags) != 2 {
		t.Errorf("links not persisted: goals=%v tags=%v", got.LinkedGoalIDs, got.Tags)
	}
	if len(got.LinkedProjects) != 1 || got.LinkedProjects[0] != "ml-sandbox" {
		t.Errorf("projects not persisted: %v", got.LinkedProjects)
	}
	if got.LinkedDate == nil || *got.LinkedDate != date {
		t.Errorf("linked date not persisted: %v", got.LinkedDate)
	}
}

func TestGetNoteByIDNotFound(t *testing.T) {
	s := testutil.NewTestStore(t)

	_, err := s.GetNoteByID(context.Background(), "missing")
	if !store.IsNotFound(err) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestUpdateNoteReplacesLinksAndTags(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	note, err := s.CreateNote(ctx, model.Note{
		Title:         "Draft",
		LinkedGoalIDs: []string{"goal-1"},
		Tags:          []string{"old"},
	})
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}

	note.Title = "Final"
	note.LinkedGoalIDs = []string{"goal-2"}
	note.Tags = []string{"new", "shiny"}
	if err := s.UpdateNote(ctx, *note); err != nil {
		t.Fatalf("UpdateNote: %v", err)
	}

	got, _ := s.GetNoteByID(ctx, note.ID)
	if got.Title != "Final" {
		t.Errorf("title = %q", got.Title)
	}
	if len(got.LinkedGoalIDs) != 1 || got.LinkedGoalIDs[0] != "goal-2" {
		t.Errorf("goal links not replaced: %v", got.LinkedGoalIDs)
	}
	if len(got.Tags) != 2 {
		t.Errorf("tags not replaced: %v", got.Tags)
	}
}

func TestSearchNotesMatchesTitleContentAndTags(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	mustCreate := func(n model.Note) {
		t.Helper()
		if _, err := s.CreateNote(ctx, n); err != nil {
			t.Fatalf("CreateNote: %v", err)
		}
	}
	mustCreate(model.Note{Title: "Python tips", Content: "list comprehensions"})
	mustCreate(model.Note{Title: "Dinner ideas", Content: "try the python curry place"})
	mustCreate(model.Note{Title: "Reading list", Tags: []string{"python", "books"}})
	mustCreate(model.Note{Title: "Unrelated", Content: "nothing to see"})

	matches, err := s.SearchNotes(ctx, "PYTHON")
	if err != nil {
		t.Fatalf("SearchNotes: %v", err)
	}
	if len(matches) != 3 {
		t.Errorf("got %d matches, want 3 (title, content, tag)", len(matches))
	}
}

func TestGetNotesByGoalToleratesDanglingLinks(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	goal, err := s.CreateGoal(ctx, model.Goal{
		Title:     "Linked",
		Category:  model.CategoryLearning,
		StartDate: "2026-01-01",
		IsActive:  true,
	})
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}

	note, err := s.CreateNote(ctx, model.Note{
		Title:         "Survivor",
		LinkedGoalIDs: []string{goal.ID},
	})
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}

	// Deleting the goal must not delete the note; the link dangles.
	if err := s.DeleteGoal(ctx, goal.ID); err != nil {
		t.Fatalf("DeleteGoal: %v", err)
	}

	got, err := s.GetNoteByID(ctx, note.ID)
	if err != nil {
		t.Fatalf("note should survive goal deletion: %v", err)
	}
	if len(got.LinkedGoalIDs) != 1 || got.LinkedGoalIDs[0] != goal.ID {
		t.Errorf("dangling link should remain: %v", got.LinkedGoalIDs)
	}

	byGoal, err := s.GetNotesByGoal(ctx, goal.ID)
	if err != nil {
		t.Fatalf("GetNotesByGoal: %v", err)
	}
	if len(byGoal) != 1 {
		t.Errorf("got %d notes, want 1 via dangling id", len(byGoal))
	}
}

func TestGetNotesByTagExactMatch(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	if _, err := s.CreateNote(ctx, model.Note{Title: "A", Tags: []string{"go"}}); err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	if _, err := s.CreateNote(ctx, model.Note{Title: "B", Tags: []string{"golang"}}); err != nil {
		t.Fatalf("CreateNote: %v", err)
	}

	notes, err := s.GetNotesByTag(ctx, "go")
	if err != nil {
		t.Fatalf("GetNotesByTag: %v", err)
	}
	if len(notes) != 1 || notes[0].Title != "A" {
		t.Errorf("tag match must be exact, got %+v", notes)
	}
}

func TestGetNotesByDate(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	date := "2026-04-02"
	if _, err := s.CreateNote(ctx, model.Note{Title: "Dated", LinkedDate: &date}); err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	if _, err := s.CreateNote(ctx, model.Note{Title: "Undated"}); err != nil {
		t.Fatalf("CreateNote: %v", err)
	}

	notes, err := s.GetNotesByDate(ctx, date)
	if err != nil {
		t.Fatalf("GetNotesByDate: %v", err)
	}
	if len(notes) != 1 || notes[0].Title != "Dated" {
		t.Errorf("got %+v, want the dated note only", notes)
	}
}

func TestDeleteNote(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	note, err := s.CreateNote(ctx, model.Note{Title: "Gone soon"})
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	if err := s.DeleteNote(ctx, note.ID); err != nil {
		t.Fatalf("DeleteNote: %v", err)
	}
	if _, err := s.GetNoteByID(ctx, note.ID); !store.IsNotFound(err) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
	if err := s.DeleteNote(ctx, note.ID); !store.IsNotFound(err) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
