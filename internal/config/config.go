package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/Simplici0/sheetquote/internal/pricing"
)

const (
	defaultAppEnv         = "dev"
	defaultDBPath         = "./dev.db"
	defaultPort           = "8080"
	defaultSurchargePerLb = 0.25
)

var defaultCORSOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}

// Config holds application configuration sourced from environment variables.
type Config struct {
	AppEnv             string
	DBPath             string
	Port               string
	LogLevel           slog.Level
	CORSAllowedOrigins []string
	RunMinimum         pricing.RunMinimum
	SeedReferenceData  bool
}

// IsDev reports whether the service runs in local development.
func (c Config) IsDev() bool {
	return c.AppEnv == "" || strings.EqualFold(c.AppEnv, defaultAppEnv) || strings.EqualFold(c.AppEnv, "development")
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: load local dev environment variables.
	// Production injects real environment variables instead.
	if err := loadDotEnv(".env"); err != nil {
		slog.Warn("ignoring unreadable .env file", "error", err)
	}

	cfg := Config{
		AppEnv:             os.Getenv("APP_ENV"),
		DBPath:             os.Getenv("DB_PATH"),
		Port:               os.Getenv("PORT"),
		LogLevel:           parseLogLevel(os.Getenv("LOG_LEVEL")),
		CORSAllowedOrigins: parseList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		RunMinimum:         pricing.DefaultRunMinimum(),
	}

	if cfg.AppEnv == "" {
		cfg.AppEnv = defaultAppEnv
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = append([]string(nil), defaultCORSOrigins...)
	}

	if raw := os.Getenv("RUN_MINIMUM_POLICY"); raw != "" {
		policy, err := pricing.ParseRunMinimumPolicy(raw)
		if err != nil {
			slog.Warn("invalid RUN_MINIMUM_POLICY, using default", "value", raw, "default", cfg.RunMinimum.Policy)
		} else {
			cfg.RunMinimum.Policy = policy
		}
	}

	cfg.RunMinimum.SurchargePerLb = defaultSurchargePerLb
	if raw := os.Getenv("SHORT_RUN_SURCHARGE_PER_LB"); raw != "" {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || v < 0 {
			slog.Warn("invalid SHORT_RUN_SURCHARGE_PER_LB, using default", "value", raw, "default", defaultSurchargePerLb)
		} else {
			cfg.RunMinimum.SurchargePerLb = v
		}
	}

	cfg.SeedReferenceData = cfg.IsDev()
	if raw := os.Getenv("SEED_REFERENCE_DATA"); raw != "" {
		v, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			slog.Warn("invalid SEED_REFERENCE_DATA, using default", "value", raw, "default", cfg.SeedReferenceData)
		} else {
			cfg.SeedReferenceData = v
		}
	}

	return cfg
}

func parseLogLevel(raw string) slog.Level {
	var level slog.Level
	if raw == "" {
		return slog.LevelInfo
	}
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		slog.Warn("invalid LOG_LEVEL, using info", "value", raw)
		return slog.LevelInfo
	}
	return level
}

func parseList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
