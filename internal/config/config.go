// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"exercise-tracker/internal/util"
	"exercise-tracker/pkg/db" // Import db package for its Config struct
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort     string
	DB             db.Config
	Log            util.LogOptions
	AllowedOrigins []string
	PublicDir      string
	ViewsDir       string
}

// LoadConfig loads configuration from environment variables, after merging an
// optional .env file from the working directory. Variables already set win over .env.
// It returns an AppConfig instance or an error if any variable is invalid.
func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	cfg := &AppConfig{
		ServerPort: getEnv("PORT", "3000"),
		DB: db.Config{
			Path: getEnv("DB_PATH", "./database.db"),
		},
		Log: util.LogOptions{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  os.Getenv("LOG_FILE"),
		},
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		PublicDir:      getEnv("PUBLIC_DIR", "public"),
		ViewsDir:       getEnv("VIEWS_DIR", "views"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the application cannot start with.
func (c *AppConfig) Validate() error {
	if strings.TrimSpace(c.DB.Path) == "" {
		return errors.New("DB_PATH must not be empty")
	}
	if _, err := util.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	if len(c.AllowedOrigins) == 0 {
		return errors.New("CORS_ALLOWED_ORIGINS must list at least one origin")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
