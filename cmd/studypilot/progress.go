package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"studypilot/internal/domain/repositories"
	"studypilot/internal/progress"
	"studypilot/internal/repository/postgres"
)

func newProgressCmd(a *app) *cobra.Command {
	var (
		user string
		goal float64
	)

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show this week's study hours against the goal",
		Long: `Show this week's completed study hours against the weekly goal.

Sessions are read from the database in SUPABASE_DB_URL.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipSlotsAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if user == "" {
				user = a.cfg.DevUserID
			}
			userID, err := uuid.Parse(user)
			if err != nil {
				return fmt.Errorf("invalid --user: %w", err)
			}
			if goal <= 0 {
				goal = a.cfg.WeeklyGoalHours
			}
			if a.cfg.SupabaseDBURL == "" {
				return fmt.Errorf("SUPABASE_DB_URL is not set")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			pool, err := postgres.CreateConnectionPool(ctx, a.cfg.SupabaseDBURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			sessions := postgres.NewSessionRepository(&postgres.RepositoryConfig{
				Pool:   pool,
				Tables: postgres.NewTableNames(a.cfg.TablePrefix),
				Logger: a.logger,
			})
			return a.printProgress(ctx, sessions, userID, goal)
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "user ID (default DEV_USER_ID)")
	cmd.Flags().Float64Var(&goal, "goal", 0, "weekly goal in hours (default WEEKLY_GOAL_HOURS)")
	return cmd
}

func (a *app) printProgress(ctx context.Context, sessions repositories.SessionRepository, userID uuid.UUID, goal float64) error {
	tracker := progress.NewTracker(sessions, progress.Options{Goal: goal, WeekStart: a.cfg.WeekStart}, a.logger)
	defer tracker.Close()

	p := tracker.SetIdentity(ctx, userID)
	fmt.Fprintf(a.out, "%.1f / %g hours (%.0f%%)\n", p.Hours, p.Goal, p.Percent)
	if !p.WindowStart.IsZero() {
		fmt.Fprintf(a.out, "week %s to %s\n",
			p.WindowStart.Format("2006-01-02"), p.WindowEnd.Format("2006-01-02"))
	}
	return nil
}
