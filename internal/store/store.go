package store

import (
	"context"
	"errors"

	"github.com/alwayselse/trackbuddy/internal/eventbus"
	"github.com/alwayselse/trackbuddy/internal/model"
)

// ErrNotFound is returned when a referenced entity id does not exist.
// Every by-id read and every mutation surfaces it uniformly; callers
// check with errors.Is.
var ErrNotFound = errors.New("not found")

// Store defines the persistence interface for goals, time logs, and
// notes. All reads are consistent snapshots at call time; all writes
// publish a table-change event for live views.
type Store interface {
	// Events exposes the hub that announces table changes.
	Events() *eventbus.Hub

	// === Goals ===

	CreateGoal(ctx context.Context, goal model.Goal) (*model.Goal, error)
	GetGoals(ctx context.Context) ([]model.Goal, error)
	GetActiveGoals(ctx context.Context) ([]model.Goal, error)
	GetGoalByID(ctx context.Context, id string) (*model.Goal, error)
	GetGoalsByCategory(ctx context.Context, category string) ([]model.Goal, error)
	UpdateGoal(ctx context.Context, goal model.Goal) error
	// DeleteGoal removes the goal and every time log referencing it,
	// as one atomic unit.
	DeleteGoal(ctx context.Context, id string) error
	ToggleGoalActive(ctx context.Context, id string) error

	// === Time logs ===

	CreateTimeLog(ctx context.Context, log model.TimeLog) (*model.TimeLog, error)
	GetTimeLogs(ctx context.Context) ([]model.TimeLog, error)
	GetTimeLogsByGoal(ctx context.Context, goalID string) ([]model.TimeLog, error)
	// GetTimeLogsByDateRange is inclusive on both ends; start and end
	// are YYYY-MM-DD strings.
	GetTimeLogsByDateRange(ctx context.Context, start, end string) ([]model.TimeLog, error)
	GetTimeLogsByDate(ctx context.Context, date string) ([]model.TimeLog, error)
	GetCurrentWeekLogs(ctx context.Context) ([]model.TimeLog, error)
	GetCurrentMonthLogs(ctx context.Context) ([]model.TimeLog, error)
	GetTotalHours(ctx context.Context, goalID, start, end string) (float64, error)
	UpdateTimeLog(ctx context.Context, log model.TimeLog) error
	DeleteTimeLog(ctx context.Context, id string) error

	// === Notes ===

	CreateNote(ctx context.Context, note model.Note) (*model.Note, error)
	GetNotes(ctx context.Context) ([]model.Note, error)
	GetNoteByID(ctx context.Context, id string) (*model.Note, error)
	UpdateNote(ctx context.Context, note model.Note) error
	DeleteNote(ctx context.Context, id string) error
	SearchNotes(ctx context.Context, query string) ([]model.Note, error)
	GetNotesByGoal(ctx context.Context, goalID string) ([]model.Note, error)
	GetNotesByTag(ctx context.Context, tag string) ([]model.Note, error)
	GetNotesByDate(ctx context.Context, date string) ([]model.Note, error)
}
