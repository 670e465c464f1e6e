package signin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yBoranbayev/rollcall/models"
	"github.com/yBoranbayev/rollcall/storage"
)

// Validation errors shown inline on the kiosk.
var (
	ErrEmptyInput    = errors.New("Please enter a Student ID")
	ErrUnknownMember = errors.New("Please enter a valid STUDENT ID")
)

// Outcome is the result of a successful toggle.
type Outcome struct {
	Status  models.Status
	Message string
}

// Controller validates sign-in attempts against the roster and toggles the
// student's state in today's log.
type Controller struct {
	roster map[string]struct{}
	store  *storage.DailyLogStore
	strict bool
}

// NewController builds a controller. With strict set, the toggle follows the
// student's most recent status instead of treating any prior Signed In row as
// currently-in.
func NewController(roster map[string]struct{}, store *storage.DailyLogStore, strict bool) *Controller {
	return &Controller{roster: roster, store: store, strict: strict}
}

// Process handles one submission. Validation failures return ErrEmptyInput or
// ErrUnknownMember without touching the log; anything else wraps a store
// error.
func (c *Controller) Process(input string) (Outcome, error) {
	id := strings.TrimSpace(input)
	if id == "" {
		return Outcome{}, ErrEmptyInput
	}
	if _, ok := c.roster[id]; !ok {
		return Outcome{}, ErrUnknownMember
	}

	date := storage.Today()
	records, err := c.store.Open(date)
	if err != nil {
		return Outcome{}, fmt.Errorf("open daily log: %w", err)
	}

	signedIn := false
	if c.strict {
		last, ok := storage.LastStatus(records, id)
		signedIn = ok && last == models.StatusSignedIn
	} else {
		signedIn = storage.HasSignedIn(records, id)
	}

	next := models.StatusSignedIn
	message := "Thank you. You have been signed in."
	if signedIn {
		next = models.StatusSignedOut
		message = "Thank you. You have been successfully logged out."
	}

	if _, err := c.store.Append(date, id, next); err != nil {
		return Outcome{}, fmt.Errorf("append daily log: %w", err)
	}
	return Outcome{Status: next, Message: message}, nil
}
