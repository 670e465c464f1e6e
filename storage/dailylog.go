package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/yBoranbayev/rollcall/models"
)

var logHeader = []string{"Student ID", "Status", "Date", "Time"}

// DailyLogStore manages one CSV log file per calendar date. Every mutation
// rewrites the whole file; per-day record counts are small enough for that.
type DailyLogStore struct {
	dir string
	mu  sync.Mutex
}

func NewDailyLogStore(dir string) *DailyLogStore {
	return &DailyLogStore{dir: dir}
}

// Today returns the current date in log-file form.
func Today() string {
	return time.Now().Format("2006-01-02")
}

func (s *DailyLogStore) Path(date string) string {
	return filepath.Join(s.dir, date+".csv")
}

// Open loads the records for a date in file order, creating an empty log
// (header only) the first time the date is seen.
func (s *DailyLogStore) Open(date string) ([]models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readRecords(date)
}

// Records returns the records for a date without creating the file; a date
// with no log yet reads as empty.
func (s *DailyLogStore) Records(date string) ([]models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.Path(date)); os.IsNotExist(err) {
		return []models.Record{}, nil
	}
	return s.readRecords(date)
}

// Append stamps a record with the current time and rewrites the day's file
// with the full row set.
func (s *DailyLogStore) Append(date, studentID string, status models.Status) (models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readRecords(date)
	if err != nil {
		return models.Record{}, err
	}

	rec := models.Record{
		StudentID: studentID,
		Status:    status,
		Date:      date,
		Time:      time.Now().Format("15:04:05"),
	}
	records = append(records, rec)

	if err := s.writeRecords(date, records); err != nil {
		return models.Record{}, err
	}
	return rec, nil
}

func (s *DailyLogStore) readRecords(date string) ([]models.Record, error) {
	p := s.Path(date)
	if _, err := os.Stat(p); os.IsNotExist(err) {
		if err := s.writeRecords(date, nil); err != nil {
			return nil, err
		}
		return []models.Record{}, nil
	}

	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open log: %s: %w", p, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read log: %s: %w", p, err)
	}

	records := []models.Record{}
	for i, row := range rows {
		if i == 0 || len(row) < 4 {
			continue
		}
		records = append(records, models.Record{
			StudentID: row[0],
			Status:    models.Status(row[1]),
			Date:      row[2],
			Time:      row[3],
		})
	}
	return records, nil
}

func (s *DailyLogStore) writeRecords(date string, records []models.Record) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create log dir: %s: %w", s.dir, err)
	}

	f, err := os.Create(s.Path(date))
	if err != nil {
		return fmt.Errorf("write log: %s: %w", s.Path(date), err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(logHeader); err != nil {
		return fmt.Errorf("write log header: %w", err)
	}
	for _, rec := range records {
		row := []string{rec.StudentID, string(rec.Status), rec.Date, rec.Time}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write log row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// HasSignedIn reports whether any row for the student has status Signed In.
// Note this deliberately ignores later Signed Out rows: a student who signed
// in at any point today counts as signed in. See LastStatus for the
// recency-based check.
func HasSignedIn(records []models.Record, studentID string) bool {
	for _, rec := range records {
		if rec.StudentID == studentID && rec.Status == models.StatusSignedIn {
			return true
		}
	}
	return false
}

// LastStatus returns the status of the student's most recent row, if any.
func LastStatus(records []models.Record, studentID string) (models.Status, bool) {
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].StudentID == studentID {
			return records[i].Status, true
		}
	}
	return "", false
}
