package model

// WeeklyProgress is the derived per-goal rollup for one calendar week.
// It is computed on demand and never persisted.
type WeeklyProgress struct {
	GoalID string `json:"goal_id"`

	// WeekNumber and Year follow ISO-8601 week numbering, so the pair
	// stays consistent across year boundaries (the week containing
	// Jan 1 may belong to the previous ISO year).
	WeekNumber int `json:"week_number"`
	Year       int `json:"year"`

	TotalHours  float64 `json:"total_hours"`
	TargetHours float64 `json:"target_hours"`

	// CompletionPercentage is TotalHours/TargetHours*100, or 0 when the
	// target is 0.
	CompletionPercentage float64 `json:"completion_percentage"`
}

// MonthlyProgress is the derived summary for one calendar month across
// all goals.
type MonthlyProgress struct {
	Month int `json:"month"` // 1-indexed
	Year  int `json:"year"`

	// ProjectsCompleted counts distinct project-category goals with at
	// least one log in the month. Presence of any log counts as
	// "completed", a coarse heuristic carried over from the product.
	ProjectsCompleted int `json:"projects_completed"`

	// ArticlesPublished counts logs whose activity text mentions
	// "article", "medium", or "published" (case-insensitive). Every
	// matching log counts, not distinct activities.
	ArticlesPublished int `json:"articles_published"`

	TotalHoursLogged float64 `json:"total_hours_logged"`
}

// HeatmapEntry is one day of the dense trailing-window hours series.
type HeatmapEntry struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}
