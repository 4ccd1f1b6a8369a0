// Package seed loads a small demo dataset so a fresh install has
// something to show on the dashboard.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/alwayselse/trackbuddy/internal/model"
	"github.com/alwayselse/trackbuddy/internal/store"
)

// Summary reports what Load created. Skipped is true when the store
// already had goals and nothing was written.
type Summary struct {
	Goals    int
	TimeLogs int
	Notes    int
	Skipped  bool
}

// Load populates the store with three sample goals, a few days of time
// logs ending today, and linked notes. It is a no-op when goals already
// exist, so running it twice does not duplicate data.
func Load(ctx context.Context, s store.Store) (*Summary, error) {
	existing, err := s.GetGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking existing goals: %w", err)
	}
	if len(existing) > 0 {
		return &Summary{Skipped: true}, nil
	}

	startDate := store.DateOf(time.Now().AddDate(0, -2, 0))

	learning, err := s.CreateGoal(ctx, model.Goal{
		Title:            "Learn Machine Learning",
		Description:      "Master the fundamentals of ML including supervised and unsupervised learning",
		Category:         model.CategoryLearning,
		WeeklyHourTarget: 20,
		Rules: []string{
			"Log 20 hours per week of learning",
			"Maintain digital notes for everything",
			"Complete at least 2 exercises per week",
		},
		StartDate: startDate,
		IsActive:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("seeding learning goal: %w", err)
	}

	project, err := s.CreateGoal(ctx, model.Goal{
		Title:            "Build Portfolio Projects",
		Description:      "Create projects to showcase on LinkedIn and resume",
		Category:         model.CategoryProject,
		WeeklyHourTarget: 15,
		Rules: []string{
			"1 milestone project OR 3 small projects per month",
			"No 2 consecutive weeks without a project",
			"Every project must have proper documentation",
		},
		StartDate: startDate,
		IsActive:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("seeding project goal: %w", err)
	}

	income, err := s.CreateGoal(ctx, model.Goal{
		Title:            "Freelance & Writing",
		Description:      "Generate income through articles and freelance work",
		Category:         model.CategoryIncome,
		WeeklyHourTarget: 5,
		Rules: []string{
			"Log 5 hours per week",
			"Publish 1 Medium article every 2 weeks",
			"Apply to 3 freelance gigs per month",
		},
		StartDate: startDate,
		IsActive:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("seeding income goal: %w", err)
	}

	today := store.DateOf(time.Now())
	yesterday := store.DateOf(time.Now().AddDate(0, 0, -1))
	twoDaysAgo := store.DateOf(time.Now().AddDate(0, 0, -2))

	logs := []model.TimeLog{
		{
			GoalID:     learning.ID,
			Date:       today,
			Activity:   "Completed Python tutorial on Linear Regression",
			HoursSpent: 3.5,
			Reflection: "Great session! Finally understood gradient descent.",
		},
		{
			GoalID:     project.ID,
			Date:       today,
			Activity:   "Built REST API for weather app",
			HoursSpent: 2,
			Reflection: "Need to add authentication next.",
		},
		{
			GoalID:     learning.ID,
			Date:       yesterday,
			Activity:   "Read research paper on Neural Networks",
			HoursSpent: 2.5,
		},
		{
			GoalID:     income.ID,
			Date:       yesterday,
			Activity:   "Wrote Medium article on React hooks",
			HoursSpent: 1.5,
			Reflection: "Published! Hope it gets good engagement.",
		},
		{
			GoalID:     learning.ID,
			Date:       twoDaysAgo,
			Activity:   "Worked through Kaggle competition",
			HoursSpent: 4,
		},
	}
	for _, log := range logs {
		if _, err := s.CreateTimeLog(ctx, log); err != nil {
			return nil, fmt.Errorf("seeding time log: %w", err)
		}
	}

	notes := []model.Note{
		{
			Title: "Linear Regression Notes",
			Content: "# Linear Regression Overview\n\n" +
				"- Simple: y = mx + b\n" +
				"- Cost function: MSE = (1/n) * sum((y - y_hat)^2)\n" +
				"- Gradient descent update: theta = theta - alpha * dJ/dtheta\n",
			LinkedGoalIDs: []string{learning.ID},
			Tags:          []string{"machine-learning", "statistics", "python"},
		},
		{
			Title: "REST API Best Practices",
			Content: "# REST API Design Principles\n\n" +
				"- GET/POST/PUT/PATCH/DELETE semantics\n" +
				"- Version the API: /api/v1/...\n" +
				"- Use proper status codes\n",
			LinkedGoalIDs:  []string{project.ID},
			LinkedProjects: []string{"Weather App"},
			LinkedDate:     &today,
			Tags:           []string{"api", "backend", "rest"},
		},
		{
			Title: "Medium Writing Checklist",
			Content: "# Article Writing Process\n\n" +
				"- Outline main points before drafting\n" +
				"- Proofread 2-3 times before publishing\n" +
				"- Share on LinkedIn after publishing\n",
			LinkedGoalIDs: []string{income.ID},
			Tags:          []string{"writing", "medium", "blogging"},
		},
	}
	for _, note := range notes {
		if _, err := s.CreateNote(ctx, note); err != nil {
			return nil, fmt.Errorf("seeding note: %w", err)
		}
	}

	return &Summary{Goals: 3, TimeLogs: len(logs), Notes: len(notes)}, nil
}
