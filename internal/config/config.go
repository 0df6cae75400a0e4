package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type Config struct {
	Port            string
	Environment     string
	SupabaseURL     string
	SupabaseAnonKey string
	SupabaseDBURL   string
	SupabaseJWKSURL string // Constructed from SupabaseURL + /auth/v1/.well-known/jwks.json
	CORSOrigins     string
	TablePrefix     string
	// Route guard
	AuthDisabled bool
	DevUserID    string
	// Weekly goal
	WeeklyGoalHours float64
	WeekStart       time.Weekday
	// Logging
	LogDir      string
	LogMaxFiles int
	// Local client
	Home string // Directory holding the client-side slot database
}

// Load reads configuration from the environment. Unset keys take their defaults.
func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")
	supabaseURL := strings.TrimRight(getEnv("SUPABASE_URL", ""), "/")

	jwksURL := ""
	if supabaseURL != "" {
		jwksURL = supabaseURL + "/auth/v1/.well-known/jwks.json"
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Environment:     env,
		SupabaseURL:     supabaseURL,
		SupabaseAnonKey: getEnv("SUPABASE_ANON_KEY", ""),
		SupabaseDBURL:   getEnv("SUPABASE_DB_URL", ""),
		SupabaseJWKSURL: jwksURL,
		CORSOrigins:     getEnv("CORS_ORIGINS", "http://localhost:5173"),
		TablePrefix:     getTablePrefix(env),
		AuthDisabled:    getEnv("AUTH_DISABLED", "false") == "true",
		DevUserID:       getEnv("DEV_USER_ID", "00000000-0000-0000-0000-000000000001"),
		WeeklyGoalHours: getFloat("WEEKLY_GOAL_HOURS", DefaultWeeklyGoalHours),
		WeekStart:       parseWeekday(getEnv("WEEK_START_DAY", "monday")),
		LogDir:          getEnv("LOG_DIR", ""),
		LogMaxFiles:     getInt("LOG_MAX_FILES", 10),
		Home:            getEnv("STUDYPILOT_HOME", defaultHome()),
	}
}

// Validate rejects configurations the server must not start with
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Environment, validation.Required, validation.In("dev", "test", "prod")),
		validation.Field(&c.Port, validation.Required, is.Port),
		validation.Field(&c.SupabaseURL,
			validation.When(!c.AuthDisabled, validation.Required.Error("is required unless AUTH_DISABLED=true")),
			is.URL,
		),
		validation.Field(&c.AuthDisabled,
			validation.When(c.Environment == "prod", validation.Empty.Error("cannot be enabled in prod")),
		),
		validation.Field(&c.DevUserID, validation.When(c.AuthDisabled, validation.Required, is.UUID)),
		validation.Field(&c.WeeklyGoalHours, validation.Min(0.5), validation.Max(float64(MaxWeeklyGoalHours))),
		validation.Field(&c.LogMaxFiles, validation.Min(1)),
	)
}

// LogLevel returns debug in dev, info elsewhere
func (c *Config) LogLevel() slog.Level {
	if c.Environment == "dev" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

// parseWeekday accepts English day names ("monday", "Sun") or 0-6 with 0 = Sunday.
// Anything else falls back to Monday.
func parseWeekday(value string) time.Weekday {
	v := strings.ToLower(strings.TrimSpace(value))
	if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 6 {
		return time.Weekday(n)
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if v == name || (len(v) >= 3 && strings.HasPrefix(name, v)) {
			return d
		}
	}
	return time.Monday
}

func defaultHome() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return ".studypilot"
	}
	return filepath.Join(dir, ".studypilot")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return n
}

func getFloat(key string, defaultValue float64) float64 {
	f, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return f
}

// String renders the non-secret parts of the configuration for startup logs
func (c *Config) String() string {
	return fmt.Sprintf("env=%s port=%s prefix=%s auth_disabled=%t week_start=%s goal=%.1f",
		c.Environment, c.Port, c.TablePrefix, c.AuthDisabled, c.WeekStart, c.WeeklyGoalHours)
}
