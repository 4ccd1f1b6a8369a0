package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/alwayselse/trackbuddy/internal/eventbus"
	"github.com/alwayselse/trackbuddy/internal/model"
)

// CreateTimeLog inserts a new time log, assigning an id and creation
// timestamp, and returns the stored entity. The referenced goal must
// exist (enforced by the foreign key).
func (s *SQLiteStore) CreateTimeLog(ctx context.Context, log model.TimeLog) (*model.TimeLog, error) {
	if log.GoalID == "" {
		return nil, fmt.Errorf("time log goal id must not be empty")
	}
	if strings.TrimSpace(log.Activity) == "" {
		return nil, fmt.Errorf("time log activity must not be empty")
	}
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.Date == "" {
		log.Date = DateOf(time.Now())
	}
	log.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO time_logs (id, goal_id, date, activity, hours_spent, reflection, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		log.ID, log.GoalID, log.Date, log.Activity, log.HoursSpent,
		log.Reflection, log.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating time log: %w", err)
	}

	s.publish(eventbus.TableTimeLogs, "create")
	return &log, nil
}

// GetTimeLogs retrieves all time logs, most recent date first.
func (s *SQLiteStore) GetTimeLogs(ctx context.Context) ([]model.TimeLog, error) {
	return s.queryTimeLogs(ctx,
		"SELECT * FROM time_logs ORDER BY date DESC, created_at DESC")
}

// GetTimeLogsByGoal retrieves the logs referencing a goal.
func (s *SQLiteStore) GetTimeLogsByGoal(
	ctx context.Context,
	goalID string,
) ([]model.TimeLog, error) {
	return s.queryTimeLogs(ctx,
		"SELECT * FROM time_logs WHERE goal_id = ? ORDER BY date DESC, created_at DESC",
		goalID)
}

// GetTimeLogsByDateRange retrieves logs with start <= date <= end.
// Dates are YYYY-MM-DD strings, so the string comparison in SQL is
// chronological.
func (s *SQLiteStore) GetTimeLogsByDateRange(
	ctx context.Context,
	start, end string,
) ([]model.TimeLog, error) {
	return s.queryTimeLogs(ctx,
		"SELECT * FROM time_logs WHERE date >= ? AND date <= ? ORDER BY date ASC",
		start, end)
}

// GetTimeLogsByDate retrieves logs for an exact calendar day.
func (s *SQLiteStore) GetTimeLogsByDate(
	ctx context.Context,
	date string,
) ([]model.TimeLog, error) {
	return s.queryTimeLogs(ctx,
		"SELECT * FROM time_logs WHERE date = ? ORDER BY created_at DESC",
		date)
}

// GetCurrentWeekLogs retrieves logs for the week containing today.
func (s *SQLiteStore) GetCurrentWeekLogs(ctx context.Context) ([]model.TimeLog, error) {
	start, end := WeekBounds(time.Now())
	return s.GetTimeLogsByDateRange(ctx, start, end)
}

// GetCurrentMonthLogs retrieves logs for the month containing today.
func (s *SQLiteStore) GetCurrentMonthLogs(ctx context.Context) ([]model.TimeLog, error) {
	start, end := MonthBounds(time.Now())
	return s.GetTimeLogsByDateRange(ctx, start, end)
}

// GetTotalHours sums hours spent for one goal within an inclusive date
// range.
func (s *SQLiteStore) GetTotalHours(
	ctx context.Context,
	goalID, start, end string,
) (float64, error) {
	var total float64
	err := s.db.GetContext(ctx, &total, `
		SELECT COALESCE(SUM(hours_spent), 0)
		FROM time_logs
		WHERE goal_id = ? AND date >= ? AND date <= ?`,
		goalID, start, end)
	if err != nil {
		return 0, fmt.Errorf("summing hours for goal %s: %w", goalID, err)
	}
	return total, nil
}

// UpdateTimeLog updates an existing time log by ID.
func (s *SQLiteStore) UpdateTimeLog(ctx context.Context, log model.TimeLog) error {
	if strings.TrimSpace(log.Activity) == "" {
		return fmt.Errorf("time log activity must not be empty")
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE time_logs SET
			goal_id = ?, date = ?, activity = ?, hours_spent = ?, reflection = ?
		WHERE id = ?`,
		log.GoalID, log.Date, log.Activity, log.HoursSpent, log.Reflection,
		log.ID,
	)
	if err != nil {
		return fmt.Errorf("updating time log %s: %w", log.ID, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("time log %s: %w", log.ID, ErrNotFound)
	}

	s.publish(eventbus.TableTimeLogs, "update")
	return nil
}

// DeleteTimeLog removes a single time log by ID.
func (s *SQLiteStore) DeleteTimeLog(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM time_logs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting time log %s: %w", id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("time log %s: %w", id, ErrNotFound)
	}

	s.publish(eventbus.TableTimeLogs, "delete")
	return nil
}

// queryTimeLogs runs a time log query and scans all rows.
func (s *SQLiteStore) queryTimeLogs(
	ctx context.Context,
	query string,
	args ...interface{},
) ([]model.TimeLog, error) {
	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying time logs: %w", err)
	}
	defer rows.Close()

	var logs []model.TimeLog
	for rows.Next() {
		log, err := scanTimeLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

// scanTimeLog scans a time log row from a sqlx.Rows result set.
func scanTimeLog(rows *sqlx.Rows) (model.TimeLog, error) {
	var log model.TimeLog
	err := rows.Scan(
		&log.ID, &log.GoalID, &log.Date, &log.Activity,
		&log.HoursSpent, &log.Reflection, &log.CreatedAt,
	)
	if err != nil {
		return model.TimeLog{}, fmt.Errorf("scanning time log row: %w", err)
	}
	return log, nil
}
