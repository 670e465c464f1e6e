package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"KIOSK_ROSTER_PATH", "KIOSK_LOG_DIR", "KIOSK_BACKGROUND",
		"KIOSK_TITLE", "KIOSK_STRICT_TOGGLE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "Robotics Club Member Roster CSV.csv", cfg.RosterPath)
	assert.Equal(t, "daily_logs", cfg.LogDir)
	assert.Equal(t, "MDC Robotics sign page.png", cfg.BackgroundPath)
	assert.Equal(t, "AI and Robotics Club Sign-In", cfg.Title)
	assert.False(t, cfg.StrictToggle)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("KIOSK_ROSTER_PATH", "members.csv")
	t.Setenv("KIOSK_LOG_DIR", "logs")
	t.Setenv("KIOSK_STRICT_TOGGLE", "1")

	cfg := Load()

	assert.Equal(t, "members.csv", cfg.RosterPath)
	assert.Equal(t, "logs", cfg.LogDir)
	assert.True(t, cfg.StrictToggle)
}

func TestStrictToggleParsing(t *testing.T) {
	for value, want := range map[string]bool{
		"1": true, "true": true, "yes": true, "on": true,
		"0": false, "false": false, "": false, "banana": false,
	} {
		t.Setenv("KIOSK_STRICT_TOGGLE", value)
		assert.Equal(t, want, Load().StrictToggle, "value %q", value)
	}
}
