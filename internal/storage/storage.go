package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrUnknownDriver is returned by Open for an unsupported storage driver.
var ErrUnknownDriver = errors.New("unknown storage driver")

const (
	DriverJSONL  = "jsonl"
	DriverSQLite = "sqlite"
)

// Event is one answered user turn. Intent is the rule that produced the answer and
// Matched is false when the assistant fell back to a generic reply.
type Event struct {
	ID                string    `json:"id"`
	Timestamp         time.Time `json:"timestamp"`
	UserID            int64     `json:"user_id"`
	UserMessage       string    `json:"user_message"`
	AssistantResponse string    `json:"assistant_response"`
	Intent            string    `json:"intent,omitempty"`
	Matched           bool      `json:"matched"`
}

// NewEvent stamps an event with a fresh id and the current UTC time.
func NewEvent(userID int64, userMessage, response, intent string, matched bool) Event {
	return Event{
		ID:                uuid.NewString(),
		Timestamp:         time.Now().UTC(),
		UserID:            userID,
		UserMessage:       userMessage,
		AssistantResponse: response,
		Intent:            intent,
		Matched:           matched,
	}
}

// Recorder abstracts persistence of interaction events.
// LoadInteractions returns events in chronological order.
// Implementations must be safe for concurrent use.
type Recorder interface {
	AppendInteraction(event Event) error
	LoadInteractions() ([]Event, error)
	Close() error
}

// Open returns the recorder for driver. path is the JSONL file or the SQLite database.
func Open(driver, path string) (Recorder, error) {
	switch driver {
	case DriverJSONL, "":
		return NewFileRecorder(path)
	case DriverSQLite:
		return NewSQLiteRecorder(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
}
