package model

import "time"

// Note is a markdown document optionally linked to goals, projects,
// tags, and a calendar date.
type Note struct {
	ID      string `json:"id" db:"id"`
	Title   string `json:"title" db:"title"`
	Content string `json:"content" db:"content"`

	// LinkedGoalIDs are weak references: deleting a goal does not touch
	// its notes, and a note may point at a goal that no longer exists.
	LinkedGoalIDs []string `json:"linked_goal_ids,omitempty" db:"-"`

	// LinkedProjects are free-text project names, not entity references.
	LinkedProjects []string `json:"linked_projects,omitempty" db:"-"`

	// LinkedDate optionally pins the note to a calendar day, YYYY-MM-DD.
	LinkedDate *string `json:"linked_date,omitempty" db:"linked_date"`

	Tags []string `json:"tags,omitempty" db:"-"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
