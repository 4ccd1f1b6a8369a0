package model

import "time"

// DateLayout is the calendar-day format used for every date field in the
// system. The form sorts lexicographically, so string comparison on
// stored dates is equivalent to chronological comparison.
const DateLayout = "2006-01-02"

// TimeLog is a single dated record of hours spent toward a goal.
// Its lifecycle is bound to the parent goal: deleting the goal deletes
// its logs.
type TimeLog struct {
	ID     string `json:"id" db:"id"`
	GoalID string `json:"goal_id" db:"goal_id"`

	// Date is the calendar day the work happened, YYYY-MM-DD.
	// No time-of-day component.
	Date string `json:"date" db:"date"`

	Activity   string  `json:"activity" db:"activity"`
	HoursSpent float64 `json:"hours_spent" db:"hours_spent"`

	// Reflection is an optional free-text note about the session.
	Reflection string `json:"reflection,omitempty" db:"reflection"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
