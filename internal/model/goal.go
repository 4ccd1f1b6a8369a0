package model

import "time"

// Goal category constants.
const (
	CategoryLearning = "learning"
	CategoryProject  = "project"
	CategoryIncome   = "income"
)

// Categories lists all valid goal categories.
var Categories = []string{CategoryLearning, CategoryProject, CategoryIncome}

// Goal is a tracked objective with a weekly hour target.
type Goal struct {
	ID          string `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	Category    string `json:"category" db:"category"`

	// WeeklyHourTarget is the number of hours the user aims to log per
	// week. Zero means "no target"; progress reports a completion
	// percentage of 0 rather than dividing by it.
	WeeklyHourTarget float64 `json:"weekly_hour_target" db:"weekly_hour_target"`

	// Rules are free-text commitments attached to the goal.
	Rules []string `json:"rules,omitempty" db:"-"`

	// StartDate and EndDate are calendar days in YYYY-MM-DD form.
	StartDate string  `json:"start_date" db:"start_date"`
	EndDate   *string `json:"end_date,omitempty" db:"end_date"`

	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ValidCategory reports whether c is one of the known goal categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
