package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the kiosk settings. Every field has a default, so running
// the binary next to the roster and background files needs no configuration.
type Config struct {
	RosterPath     string
	LogDir         string
	BackgroundPath string
	Title          string

	// StrictToggle switches the "already signed in" check from
	// any-Signed-In-row-exists to most-recent-status. Off by default to
	// match the historical log semantics.
	StrictToggle bool
}

// Load reads an optional .env file and resolves the configuration from the
// environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	return Config{
		RosterPath:     envOr("KIOSK_ROSTER_PATH", "Robotics Club Member Roster CSV.csv"),
		LogDir:         envOr("KIOSK_LOG_DIR", "daily_logs"),
		BackgroundPath: envOr("KIOSK_BACKGROUND", "MDC Robotics sign page.png"),
		Title:          envOr("KIOSK_TITLE", "AI and Robotics Club Sign-In"),
		StrictToggle:   envBool("KIOSK_STRICT_TOGGLE"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	switch os.Getenv(key) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
