package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is one entry in a run's audit trail. Versions number the events
// of a single run in append order, starting at 1.
type Event struct {
	Type    string
	RunID   uuid.UUID
	Data    interface{}
	Time    time.Time
	Version int
}

// Store persists run audit trails
type Store interface {
	Append(runID uuid.UUID, eventType string, data interface{})
	Events(runID uuid.UUID) []Event
	All() []Event
}
