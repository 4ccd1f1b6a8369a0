package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/alwayselse/trackbuddy/internal/eventbus"
	"github.com/alwayselse/trackbuddy/internal/model"
)

// CreateGoal inserts a new goal, assigning an id and timestamps, and
// returns the stored entity.
func (s *SQLiteStore) CreateGoal(ctx context.Context, goal model.Goal) (*model.Goal, error) {
	if strings.TrimSpace(goal.Title) == "" {
		return nil, fmt.Errorf("goal title must not be empty")
	}
	if !model.ValidCategory(goal.Category) {
		return nil, fmt.Errorf("unknown goal category %q", goal.Category)
	}
	if goal.ID == "" {
		goal.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	goal.CreatedAt = now
	goal.UpdatedAt = now

	rules, err := json.Marshal(goal.Rules)
	if err != nil {
		return nil, fmt.Errorf("marshaling rules for goal %s: %w", goal.ID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO goals (
			id, title, description, category, weekly_hour_target,
			rules, start_date, end_date, is_active,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		goal.ID, goal.Title, goal.Description, goal.Category, goal.WeeklyHourTarget,
		string(rules), goal.StartDate, goal.EndDate, boolToInt(goal.IsActive),
		goal.CreatedAt, goal.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating goal: %w", err)
	}

	s.publish(eventbus.TableGoals, "create")
	return &goal, nil
}

// GetGoals retrieves all goals in insertion order.
func (s *SQLiteStore) GetGoals(ctx context.Context) ([]model.Goal, error) {
	return s.queryGoals(ctx, "SELECT * FROM goals")
}

// GetActiveGoals retrieves goals whose active flag is set.
func (s *SQLiteStore) GetActiveGoals(ctx context.Context) ([]model.Goal, error) {
	return s.queryGoals(ctx, "SELECT * FROM goals WHERE is_active = 1")
}

// GetGoalsByCategory retrieves goals with an exact category match.
func (s *SQLiteStore) GetGoalsByCategory(
	ctx context.Context,
	category string,
) ([]model.Goal, error) {
	return s.queryGoals(ctx, "SELECT * FROM goals WHERE category = ?", category)
}

// GetGoalByID retrieves a single goal by ID.
func (s *SQLiteStore) GetGoalByID(ctx context.Context, id string) (*model.Goal, error) {
	rows, err := s.db.QueryxContext(ctx, "SELECT * FROM goals WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("getting goal %s: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("getting goal %s: %w", id, err)
		}
		return nil, fmt.Errorf("goal %s: %w", id, ErrNotFound)
	}

	goal, err := scanGoal(rows)
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// UpdateGoal updates an existing goal by ID and refreshes its update
// timestamp. The goal is written as a whole; callers load, modify,
// then save.
func (s *SQLiteStore) UpdateGoal(ctx context.Context, goal model.Goal) error {
	if strings.TrimSpace(goal.Title) == "" {
		return fmt.Errorf("goal title must not be empty")
	}
	if !model.ValidCategory(goal.Category) {
		return fmt.Errorf("unknown goal category %q", goal.Category)
	}
	goal.UpdatedAt = time.Now().UTC()

	rules, err := json.Marshal(goal.Rules)
	if err != nil {
		return fmt.Errorf("marshaling rules for goal %s: %w", goal.ID, err)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE goals SET
			title = ?, description = ?, category = ?, weekly_hour_target = ?,
			rules = ?, start_date = ?, end_date = ?, is_active = ?,
			updated_at = ?
		WHERE id = ?`,
		goal.Title, goal.Description, goal.Category, goal.WeeklyHourTarget,
		string(rules), goal.StartDate, goal.EndDate, boolToInt(goal.IsActive),
		goal.UpdatedAt,
		goal.ID,
	)
	if err != nil {
		return fmt.Errorf("updating goal %s: %w", goal.ID, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("goal %s: %w", goal.ID, ErrNotFound)
	}

	s.publish(eventbus.TableGoals, "update")
	return nil
}

// DeleteGoal removes a goal and every time log referencing it. The
// cascade rides on the time_logs foreign key, so the single DELETE is
// atomic: either the goal and all its logs go, or nothing does.
func (s *SQLiteStore) DeleteGoal(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM goals WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting goal %s: %w", id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("goal %s: %w", id, ErrNotFound)
	}

	s.publish(eventbus.TableGoals, "delete")
	s.publish(eventbus.TableTimeLogs, "delete")
	return nil
}

// ToggleGoalActive flips the active flag of a goal.
func (s *SQLiteStore) ToggleGoalActive(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE goals SET
			is_active = CASE WHEN is_active = 0 THEN 1 ELSE 0 END,
			updated_at = ?
		WHERE id = ?`,
		time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("toggling goal %s: %w", id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("goal %s: %w", id, ErrNotFound)
	}

	s.publish(eventbus.TableGoals, "update")
	return nil
}

// queryGoals runs a goal query and scans all rows.
func (s *SQLiteStore) queryGoals(
	ctx context.Context,
	query string,
	args ...interface{},
) ([]model.Goal, error) {
	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying goals: %w", err)
	}
	defer rows.Close()

	var goals []model.Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	return goals, rows.Err()
}

// scanGoal scans a goal row from a sqlx.Rows result set.
func scanGoal(rows *sqlx.Rows) (model.Goal, error) {
	var (
		goal      model.Goal
		rulesJSON string
		endDate   sql.NullString
		activeInt int
	)

	err := rows.Scan(
		&goal.ID, &goal.Title, &goal.Description, &goal.Category,
		&goal.WeeklyHourTarget, &rulesJSON, &goal.StartDate, &endDate,
		&activeInt, &goal.CreatedAt, &goal.UpdatedAt,
	)
	if err != nil {
		return model.Goal{}, fmt.Errorf("scanning goal row: %w", err)
	}

	goal.IsActive = activeInt != 0
	if endDate.Valid {
		goal.EndDate = &endDate.String
	}
	if rulesJSON != "" {
		if err := json.Unmarshal([]byte(rulesJSON), &goal.Rules); err != nil {
			return model.Goal{}, fmt.Errorf("unmarshaling rules: %w", err)
		}
	}

	return goal, nil
}

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
