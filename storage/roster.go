package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	ErrRosterNotFound  = errors.New("roster file not found")
	ErrIDColumnMissing = errors.New("roster has no student ID column")
)

// LoadRoster reads the membership CSV and returns the set of valid student
// IDs. Header names are matched after trimming and lowercasing; the ID column
// is the first one named "student id", "student number" or "id".
//
// On any error the returned set is empty, which makes every sign-in attempt
// fail validation. The caller decides how to surface the error.
func LoadRoster(path string) (map[string]struct{}, error) {
	roster := map[string]struct{}{}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return roster, fmt.Errorf("%w: %s", ErrRosterNotFound, path)
		}
		return roster, fmt.Errorf("open roster: %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return roster, fmt.Errorf("read roster: %s: %w", path, err)
	}
	if len(rows) == 0 {
		return roster, fmt.Errorf("%w: %s is empty", ErrIDColumnMissing, path)
	}

	idIdx := -1
	for i, h := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "student id", "student number", "id":
			idIdx = i
		}
		if idIdx != -1 {
			break
		}
	}
	if idIdx == -1 {
		return roster, fmt.Errorf("%w: %s has columns %v", ErrIDColumnMissing, path, rows[0])
	}

	for _, row := range rows[1:] {
		if idIdx >= len(row) {
			continue
		}
		id := strings.TrimSpace(row[idIdx])
		if id == "" {
			continue
		}
		roster[id] = struct{}{}
	}
	return roster, nil
}
