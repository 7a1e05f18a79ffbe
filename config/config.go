package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application settings read from the environment.
type Config struct {
	DatabaseURL string
	ServerPort  int
	LogLevel    slog.Level

	// ActiveSeasonID enables the playoff refresher for that season. Zero
	// disables it.
	ActiveSeasonID  int
	RefreshInterval time.Duration

	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int

	R2 R2Config
}

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicBaseURL   string
}

// Enabled reports whether snapshot publishing is configured.
func (c R2Config) Enabled() bool {
	return c.AccountID != "" || c.AccessKeyID != "" || c.SecretAccessKey != "" || c.BucketName != "" || c.PublicBaseURL != ""
}

func (c R2Config) validate() error {
	if !c.Enabled() {
		return nil
	}
	if c.AccountID == "" || c.AccessKeyID == "" || c.SecretAccessKey == "" || c.BucketName == "" || c.PublicBaseURL == "" {
		return errors.New("R2 configuration is partial: set all R2_* variables or none")
	}
	return nil
}

// Load reads the configuration from environment variables. A .env file is
// loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	port, err := intEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	level, err := parseLogLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}

	seasonID, err := intEnv("ACTIVE_SEASON_ID", 0)
	if err != nil {
		return nil, err
	}
	if seasonID < 0 {
		return nil, fmt.Errorf("ACTIVE_SEASON_ID must not be negative, got %d", seasonID)
	}

	interval := 30 * time.Second
	if v := os.Getenv("REFRESH_INTERVAL"); v != "" {
		interval, err = time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REFRESH_INTERVAL environment variable: %w", err)
		}
		if interval < time.Second {
			return nil, fmt.Errorf("REFRESH_INTERVAL must be at least 1s, got %s", interval)
		}
	}

	rps := 10.0
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		rps, err = strconv.ParseFloat(v, 64)
		if err != nil || rps <= 0 {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RPS environment variable: %q", v)
		}
	}
	burst, err := intEnv("RATE_LIMIT_BURST", 20)
	if err != nil {
		return nil, err
	}
	if burst <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_BURST must be positive, got %d", burst)
	}

	cfg := &Config{
		DatabaseURL:        dbURL,
		ServerPort:         port,
		LogLevel:           level,
		ActiveSeasonID:     seasonID,
		RefreshInterval:    interval,
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS"), []string{"*"}),
		RateLimitRPS:       rps,
		RateLimitBurst:     burst,
		R2: R2Config{
			AccountID:       os.Getenv("R2_ACCOUNT_ID"),
			AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
			BucketName:      os.Getenv("R2_BUCKET_NAME"),
			PublicBaseURL:   os.Getenv("R2_PUBLIC_BASE_URL"),
		},
	}
	if err := cfg.R2.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return n, nil
}

func parseLogLevel(v string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q (want debug, info, warn or error)", v)
	}
}

func splitList(v string, def []string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
