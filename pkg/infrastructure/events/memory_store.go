package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryStore keeps run audit trails in process memory. Safe for
// concurrent use.
type InMemoryStore struct {
	mu      sync.RWMutex
	streams map[uuid.UUID][]Event
	all     []Event
}

// NewInMemoryStore creates an empty in-memory event store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		streams: make(map[uuid.UUID][]Event),
	}
}

// Append records an event at the end of the run's stream
func (s *InMemoryStore) Append(runID uuid.UUID, eventType string, data interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event := Event{
		Type:    eventType,
		RunID:   runID,
		Data:    data,
		Time:    time.Now(),
		Version: len(s.streams[runID]) + 1,
	}

	s.streams[runID] = append(s.streams[runID], event)
	s.all = append(s.all, event)
}

// Events returns the run's audit trail in append order
func (s *InMemoryStore) Events(runID uuid.UUID) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stream := s.streams[runID]
	out := make([]Event, len(stream))
	copy(out, stream)
	return out
}

// All returns every recorded event across runs in append order
func (s *InMemoryStore) All() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Event, len(s.all))
	copy(out, s.all)
	return out
}
