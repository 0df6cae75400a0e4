package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"studypilot/internal/auth"
	"studypilot/internal/config"
	"studypilot/internal/domain/repositories"
	"studypilot/internal/handler"
	"studypilot/internal/middleware"
	"studypilot/internal/notify"
	"studypilot/internal/preferences"
	"studypilot/internal/repository/memory"
	"studypilot/internal/repository/postgres"
	"studypilot/internal/service"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, logCloser, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logCloser.Close()
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
		"auth_disabled", cfg.AuthDisabled,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Route guard
	var jwtVerifier auth.JWTVerifier
	var terminator auth.SessionTerminator = service.LocalTerminator{}
	if cfg.AuthDisabled {
		logger.Warn("AUTH DISABLED: every request runs as the dev user (NEVER use in production!)",
			"dev_user_id", cfg.DevUserID)
	} else {
		jwtVerifier, err = auth.NewJWTVerifier(ctx, cfg.SupabaseJWKSURL, logger)
		if err != nil {
			log.Fatalf("Failed to create JWT verifier: %v", err)
		}
		defer jwtVerifier.Close()
		terminator = auth.NewSessionClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
	}

	// Repositories
	var slotRepo repositories.SlotRepository
	var sessionRepo repositories.SessionRepository
	if cfg.SupabaseDBURL != "" {
		pool, err := postgres.CreateConnectionPool(ctx, cfg.SupabaseDBURL)
		if err != nil {
			log.Fatalf("Failed to create connection pool: %v", err)
		}
		defer pool.Close()

		tables := postgres.NewTableNames(cfg.TablePrefix)
		if err := postgres.EnsureSchema(ctx, pool, tables, cfg.TablePrefix); err != nil {
			log.Fatalf("Failed to ensure schema: %v", err)
		}
		logger.Info("database connected", "max_conns", pool.Config().MaxConns)

		repoConfig := &postgres.RepositoryConfig{
			Pool:   pool,
			Tables: tables,
			Logger: logger,
		}
		slotRepo = postgres.NewSlotRepository(repoConfig)
		sessionRepo = postgres.NewSessionRepository(repoConfig)
	} else {
		if cfg.Environment == "prod" {
			log.Fatalf("SUPABASE_DB_URL is required in prod")
		}
		logger.Warn("no database configured, using in-memory repositories")
		slotRepo = memory.NewSlotRepository()
		sessionRepo = memory.NewSessionRepository()
	}

	provider, err := preferences.NewProvider(logger)
	if err != nil {
		log.Fatalf("Failed to load preference defaults: %v", err)
	}
	notifier := notify.NewLogNotifier(logger)

	// Services
	prefsService := service.NewPreferencesService(slotRepo, provider, notifier, logger)
	progressService := service.NewProgressService(sessionRepo, cfg.WeeklyGoalHours, cfg.WeekStart, nil, logger)
	sessionService := service.NewSessionService(terminator, notifier, logger)

	logger.Info("services initialized")

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, handler.Handlers{
		Preferences: handler.NewPreferencesHandler(prefsService, logger),
		Banner:      handler.NewBannerHandler(prefsService, logger),
		Progress:    handler.NewProgressHandler(progressService, logger),
		Session:     handler.NewSessionHandler(sessionService, logger),
	})

	// Order: CORS → Logging → Auth → Recovery → Routes
	var h http.Handler = mux
	h = middleware.Recovery(logger)(h)
	h = middleware.AuthMiddleware(jwtVerifier, middleware.AuthOptions{
		Disabled:    cfg.AuthDisabled,
		DevUserID:   devUserID(cfg),
		PublicPaths: []string{"/health"},
		Logger:      logger,
	})(h)
	h = middleware.RequestLogger(logger)(h)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// devUserID is only consulted when the guard is disabled, where Validate
// already checked that it parses
func devUserID(cfg *config.Config) uuid.UUID {
	id, err := uuid.Parse(cfg.DevUserID)
	if err != nil {
		return uuid.Nil
	}
	return id
}
