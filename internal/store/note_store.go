package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/alwayselse/trackbuddy/internal/eventbus"
	"github.com/alwayselse/trackbuddy/internal/model"
)

// CreateNote inserts a new note with its goal links and tags, assigning
// an id and timestamps, and returns the stored entity.
func (s *SQLiteStore) CreateNote(ctx context.Context, note model.Note) (*model.Note, error) {
	if strings.TrimSpace(note.Title) == "" {
		return nil, fmt.Errorf("note title must not be empty")
	}
	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	note.CreatedAt = now
	note.UpdatedAt = now

	projects, err := json.Marshal(note.LinkedProjects)
	if err != nil {
		return nil, fmt.Errorf("marshaling linked projects for note %s: %w", note.ID, err)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO notes (id, title, content, linked_projects, linked_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		note.ID, note.Title, note.Content, string(projects), note.LinkedDate,
		note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating note: %w", err)
	}

	if err := insertNoteLinks(ctx, tx, note.ID, note.LinkedGoalIDs, note.Tags); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing note %s: %w", note.ID, err)
	}

	s.publish(eventbus.TableNotes, "create")
	return &note, nil
}

// GetNotes retrieves all notes, most recently updated first.
func (s *SQLiteStore) GetNotes(ctx context.Context) ([]model.Note, error) {
	return s.queryNotes(ctx, "SELECT * FROM notes ORDER BY updated_at DESC")
}

// GetNoteByID retrieves a single note by ID, including its goal links
// and tags.
func (s *SQLiteStore) GetNoteByID(ctx context.Context, id string) (*model.Note, error) {
	notes, err := s.queryNotes(ctx, "SELECT * FROM notes WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, fmt.Errorf("note %s: %w", id, ErrNotFound)
	}
	return &notes[0], nil
}

// UpdateNote updates an existing note by ID, replacing its goal links
// and tags wholesale, and refreshes its update timestamp.
func (s *SQLiteStore) UpdateNote(ctx context.Context, note model.Note) error {
	if strings.TrimSpace(note.Title) == "" {
		return fmt.Errorf("note title must not be empty")
	}
	note.UpdatedAt = time.Now().UTC()

	projects, err := json.Marshal(note.LinkedProjects)
	if err != nil {
		return fmt.Errorf("marshaling linked projects for note %s: %w", note.ID, err)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE notes SET
			title = ?, content = ?, linked_projects = ?, linked_date = ?, updated_at = ?
		WHERE id = ?`,
		note.Title, note.Content, string(projects), note.LinkedDate, note.UpdatedAt,
		note.ID,
	)
	if err != nil {
		return fmt.Errorf("updating note %s: %w", note.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("note %s: %w", note.ID, ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM note_goals WHERE note_id = ?", note.ID); err != nil {
		return fmt.Errorf("clearing note goal links: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM note_tags WHERE note_id = ?", note.ID); err != nil {
		return fmt.Errorf("clearing note tags: %w", err)
	}
	if err := insertNoteLinks(ctx, tx, note.ID, note.LinkedGoalIDs, note.Tags); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing note %s: %w", note.ID, err)
	}

	s.publish(eventbus.TableNotes, "update")
	return nil
}

// DeleteNote removes a note by ID. Its link and tag rows go with it.
func (s *SQLiteStore) DeleteNote(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting note %s: %w", id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("note %s: %w", id, ErrNotFound)
	}

	s.publish(eventbus.TableNotes, "delete")
	return nil
}

// SearchNotes returns notes whose title, content, or any tag contains
// the query, case-insensitive. No ranking; order follows GetNotes.
func (s *SQLiteStore) SearchNotes(ctx context.Context, query string) ([]model.Note, error) {
	notes, err := s.GetNotes(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	var matches []model.Note
	for _, note := range notes {
		if strings.Contains(strings.ToLower(note.Title), needle) ||
			strings.Contains(strings.ToLower(note.Content), needle) {
			matches = append(matches, note)
			continue
		}
		for _, tag := range note.Tags {
			if strings.Contains(strings.ToLower(tag), needle) {
				matches = append(matches, note)
				break
			}
		}
	}
	return matches, nil
}

// GetNotesByGoal retrieves notes whose linked-goal list contains goalID.
func (s *SQLiteStore) GetNotesByGoal(ctx context.Context, goalID string) ([]model.Note, error) {
	return s.queryNotes(ctx, `
		SELECT n.* FROM notes n
		INNER JOIN note_goals ng ON n.id = ng.note_id
		WHERE ng.goal_id = ?
		ORDER BY n.updated_at DESC`, goalID)
}

// GetNotesByTag retrieves notes carrying the exact tag.
func (s *SQLiteStore) GetNotesByTag(ctx context.Context, tag string) ([]model.Note, error) {
	return s.queryNotes(ctx, `
		SELECT n.* FROM notes n
		INNER JOIN note_tags nt ON n.id = nt.note_id
		WHERE nt.tag = ?
		ORDER BY n.updated_at DESC`, tag)
}

// GetNotesByDate retrieves notes linked to an exact calendar day.
func (s *SQLiteStore) GetNotesByDate(ctx context.Context, date string) ([]model.Note, error) {
	return s.queryNotes(ctx,
		"SELECT * FROM notes WHERE linked_date = ? ORDER BY updated_at DESC", date)
}

// insertNoteLinks writes the note_goals and note_tags rows for a note.
func insertNoteLinks(
	ctx context.Context,
	tx *sqlx.Tx,
	noteID string,
	goalIDs, tags []string,
) error {
	for _, goalID := range goalIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO note_goals (note_id, goal_id) VALUES (?, ?)",
			noteID, goalID); err != nil {
			return fmt.Errorf("linking note %s to goal %s: %w", noteID, goalID, err)
		}
	}
	for _, tag := range tags {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO note_tags (note_id, tag) VALUES (?, ?)",
			noteID, tag); err != nil {
			return fmt.Errorf("tagging note %s with %s: %w", noteID, tag, err)
		}
	}
	return nil
}

// queryNotes runs a note query, scans all rows, and loads each note's
// goal links and tags.
func (s *SQLiteStore) queryNotes(
	ctx context.Context,
	query string,
	args ...interface{},
) ([]model.Note, error) {
	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range notes {
		if err := s.loadNoteLinks(ctx, &notes[i]); err != nil {
			return nil, err
		}
	}
	return notes, nil
}

// loadNoteLinks populates a note's linked goal ids and tags.
func (s *SQLiteStore) loadNoteLinks(ctx context.Context, note *model.Note) error {
	err := s.db.SelectContext(ctx, &note.LinkedGoalIDs,
		"SELECT goal_id FROM note_goals WHERE note_id = ?", note.ID)
	if err != nil {
		return fmt.Errorf("loading goal links for note %s: %w", note.ID, err)
	}

	err = s.db.SelectContext(ctx, &note.Tags,
		"SELECT tag FROM note_tags WHERE note_id = ? ORDER BY tag", note.ID)
	if err != nil {
		return fmt.Errorf("loading tags for note %s: %w", note.ID, err)
	}
	return nil
}

// scanNote scans a note row from a sqlx.Rows result set.
func scanNote(rows *sqlx.Rows) (model.Note, error) {
	var (
		note         model.Note
		projectsJSON string
		linkedDate   sql.NullString
	)

	err := rows.Scan(
		&note.ID, &note.Title, &note.Content, &projectsJSON,
		&linkedDate, &note.CreatedAt, &note.UpdatedAt,
	)
	if err != nil {
		return model.Note{}, fmt.Errorf("scanning note row: %w", err)
	}

	if linkedDate.Valid {
		note.LinkedDate = &linkedDate.String
	}
	if projectsJSON != "" {
		if err := json.Unmarshal([]byte(projectsJSON), &note.LinkedProjects); err != nil {
			return model.Note{}, fmt.Errorf("unmarshaling linked projects: %w", err)
		}
	}

	return note, nil
}
