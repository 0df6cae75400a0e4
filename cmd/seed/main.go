package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"studypilot/internal/config"
	"studypilot/internal/domain/models"
	"studypilot/internal/progress"
	"studypilot/internal/repository/postgres"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed sessions")
	userFlag := flag.String("user", "", "User to seed sessions for (defaults to DEV_USER_ID)")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	// Prevent destructive operations in production
	if cfg.Environment == "prod" && *dropTables {
		log.Fatalf("BLOCKED: cannot run --drop-tables in production environment")
	}
	if cfg.SupabaseDBURL == "" {
		log.Fatalf("SUPABASE_DB_URL is required")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log.Printf("Seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.SupabaseDBURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *dropTables {
		log.Println("Dropping all tables...")
		if err := postgres.DropSchema(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
	}

	log.Println("Ensuring database schema is up to date...")
	if err := postgres.EnsureSchema(ctx, pool, tables, cfg.TablePrefix); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}

	if *schemaOnly {
		log.Println("Schema setup complete (schema-only mode)")
		return
	}

	rawUser := *userFlag
	if rawUser == "" {
		rawUser = cfg.DevUserID
	}
	userID, err := uuid.Parse(rawUser)
	if err != nil {
		log.Fatalf("Invalid user ID %q: %v", rawUser, err)
	}

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	sessionRepo := postgres.NewSessionRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool, logger)

	sessions := demoSessions(userID, time.Now(), cfg.WeekStart)
	err = txManager.ExecTx(ctx, func(ctx context.Context) error {
		for i := range sessions {
			if err := sessionRepo.InsertSession(ctx, &sessions[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to seed sessions: %v", err)
	}

	window := progress.WeekWindow(time.Now(), cfg.WeekStart)
	hours := progress.TotalHours(sessions, userID, window)
	log.Printf("Seeded %d sessions for %s (%.1f hours this week)", len(sessions), userID, hours)
}

// demoSessions spreads a mix of completed and abandoned sessions over this
// week and the previous one
func demoSessions(userID uuid.UUID, now time.Time, weekStart time.Weekday) []models.PomodoroSession {
	start := progress.WeekWindow(now, weekStart).Start
	plan := []struct {
		offset    time.Duration
		minutes   int
		completed bool
	}{
		{-3 * 24 * time.Hour, 50, true},
		{-2 * 24 * time.Hour, 25, true},
		{2 * time.Hour, 25, true},
		{3 * time.Hour, 25, false},
		{26 * time.Hour, 50, true},
	}

	sessions := make([]models.PomodoroSession, 0, len(plan))
	for _, s := range plan {
		startedAt := start.Add(s.offset)
		if startedAt.After(now) {
			continue
		}
		sessions = append(sessions, models.PomodoroSession{
			UserID:          userID,
			DurationMinutes: s.minutes,
			Completed:       s.completed,
			StartedAt:       startedAt,
		})
	}
	return sessions
}
