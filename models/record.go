package models

// Status is the attendance state written to the daily log.
// The string values are part of the file format.
type Status string

const (
	StatusSignedIn  Status = "Signed In"
	StatusSignedOut Status = "Signed Out"
)

// Record is one sign-in or sign-out event in a daily log.
type Record struct {
	StudentID string
	Status    Status
	Date      string // "2006-01-02"
	Time      string // "15:04:05"
}
