package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRosterStudentIDColumn(t *testing.T) {
	path := writeRoster(t, "Name, Student ID \nAlice,123\nBob, 456 \n")

	roster, err := LoadRoster(path)
	require.NoError(t, err)

	assert.Len(t, roster, 2)
	assert.Contains(t, roster, "123")
	assert.Contains(t, roster, "456")
}

func TestLoadRosterAlternateHeaders(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"id", "id,Name\n123,Alice\n"},
		{"student number", "Name,Student Number\nAlice,123\n"},
		{"mixed case", "name,STUDENT ID\nAlice,123\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			roster, err := LoadRoster(writeRoster(t, tc.content))
			require.NoError(t, err)
			assert.Contains(t, roster, "123")
		})
	}
}

func TestLoadRosterSkipsBlankAndShortRows(t *testing.T) {
	path := writeRoster(t, "Name,Student ID\nAlice,123\nBob,\nCarol\nDave,123\n")

	roster, err := LoadRoster(path)
	require.NoError(t, err)

	assert.Len(t, roster, 1)
	assert.Contains(t, roster, "123")
}

func TestLoadRosterMissingFile(t *testing.T) {
	roster, err := LoadRoster(filepath.Join(t.TempDir(), "nope.csv"))

	assert.ErrorIs(t, err, ErrRosterNotFound)
	assert.Empty(t, roster)
}

func TestLoadRosterMissingColumn(t *testing.T) {
	path := writeRoster(t, "Name,Email\nAlice,a@example.com\n")

	roster, err := LoadRoster(path)

	assert.ErrorIs(t, err, ErrIDColumnMissing)
	assert.Empty(t, roster)
}
