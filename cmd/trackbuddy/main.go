package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alwayselse/trackbuddy/internal/app"
	"github.com/alwayselse/trackbuddy/internal/model"
	"github.com/alwayselse/trackbuddy/internal/progress"
	"github.com/alwayselse/trackbuddy/internal/seed"
	"github.com/alwayselse/trackbuddy/internal/store"
)

var (
	configPath string
	dbPath     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "trackbuddy",
		Short: "Personal goal and time tracker",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, s, err := open()
			if err != nil {
				return err
			}
			defer s.Close()

			p := tea.NewProgram(app.New(s, cfg), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	rootCmd.PersistentFlags().StringVar(
		&configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(
		&dbPath, "db", "", "database path (overrides config)")

	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(statsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// open loads the config and opens the store, honoring the --db override.
func open() (*model.AppConfig, *store.SQLiteStore, error) {
	path := configPath
	if path == "" {
		path = model.DefaultConfigPath()
	}
	cfg, err := model.LoadConfig(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	s, err := store.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return cfg, s, nil
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate an empty database with sample data",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := open()
			if err != nil {
				return err
			}
			defer s.Close()

			summary, err := seed.Load(context.Background(), s)
			if err != nil {
				return err
			}
			if summary.Skipped {
				fmt.Println("Database already has goals; nothing seeded.")
				return nil
			}
			fmt.Printf("Seeded %d goals, %d time logs, %d notes.\n",
				summary.Goals, summary.TimeLogs, summary.Notes)
			return nil
		},
	}
}

func statsCmd() *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print progress for the week and month of a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := open()
			if err != nil {
				return err
			}
			defer s.Close()

			ref := time.Now()
			if dateStr != "" {
				ref, err = time.Parse(model.DateLayout, dateStr)
				if err != nil {
					return fmt.Errorf("invalid --date, use YYYY-MM-DD: %w", err)
				}
			}

			ctx := context.Background()
			agg := progress.New(s)

			streak, err := agg.CurrentStreak(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("Streak: %d day(s)\n\n", streak)

			weekly, err := agg.AllWeeklyProgress(ctx, ref)
			if err != nil {
				return err
			}
			goals, err := s.GetGoals(ctx)
			if err != nil {
				return err
			}
			titles := make(map[string]string, len(goals))
			for _, g := range goals {
				titles[g.ID] = g.Title
			}

			if len(weekly) > 0 {
				fmt.Printf("Week %d, %d:\n", weekly[0].WeekNumber, weekly[0].Year)
				for _, wp := range weekly {
					fmt.Printf("  %-30s %5.1f / %5.1f h  (%.0f%%)\n",
						titles[wp.GoalID], wp.TotalHours,
						wp.TargetHours, wp.CompletionPercentage)
				}
			} else {
				fmt.Println("No active goals.")
			}

			monthly, err := agg.MonthlyProgress(ctx, ref)
			if err != nil {
				return err
			}
			fmt.Printf("\n%s %d:\n", time.Month(monthly.Month), monthly.Year)
			fmt.Printf("  Hours logged:       %.1f\n", monthly.TotalHoursLogged)
			fmt.Printf("  Projects completed: %d\n", monthly.ProjectsCompleted)
			fmt.Printf("  Articles published: %d\n", monthly.ArticlesPublished)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "reference date (YYYY-MM-DD)")
	return cmd
}
