package events

import (
	"sync"

	"go.uber.org/zap"
)

// MemoryStore is an in-memory event store. Appends are synchronous; handlers
// are notified outside the store's lock so subscribers cannot stall a
// transition.
type MemoryStore struct {
	mu          sync.RWMutex
	streams     map[string][]Event
	all         []Event
	subscribers map[string][]Handler
	logger      *zap.Logger
}

// NewMemoryStore creates an empty in-memory event store
func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MemoryStore{
		streams:     make(map[string][]Event),
		subscribers: make(map[string][]Handler),
		logger:      logger,
	}
}

// Verify interface compliance
var _ Store = (*MemoryStore)(nil)

// Append records the event at the next version of its stream
func (s *MemoryStore) Append(streamID string, event Event) error {
	s.mu.Lock()
	versioned := baseEvent{
		eventType: event.Type(),
		stream:    streamID,
		data:      event.Data(),
		timestamp: event.Timestamp(),
		version:   len(s.streams[streamID]) + 1,
	}
	s.streams[streamID] = append(s.streams[streamID], versioned)
	s.all = append(s.all, versioned)
	handlers := append([]Handler(nil), s.subscribers[versioned.eventType]...)
	s.mu.Unlock()

	for _, handler := range handlers {
		if !handler.CanHandle(versioned.eventType) {
			continue
		}
		if err := handler.Handle(versioned); err != nil {
			s.logger.Warn("event handler failed",
				zap.String("event_type", versioned.eventType),
				zap.String("stream", streamID),
				zap.Error(err),
			)
		}
	}
	return nil
}

// Read returns a stream's events starting at fromVersion (1-based)
func (s *MemoryStore) Read(streamID string, fromVersion int) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stream := s.streams[streamID]
	if fromVersion < 1 {
		fromVersion = 1
	}
	if fromVersion > len(stream) {
		return []Event{}, nil
	}
	return append([]Event(nil), stream[fromVersion-1:]...), nil
}

// ReadAll returns every recorded event starting at the given position
func (s *MemoryStore) ReadAll(fromPosition int) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if fromPosition < 0 {
		fromPosition = 0
	}
	if fromPosition >= len(s.all) {
		return []Event{}, nil
	}
	return append([]Event(nil), s.all[fromPosition:]...), nil
}

// Subscribe registers a handler for the given event types
func (s *MemoryStore) Subscribe(eventTypes []string, handler Handler) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, eventType := range eventTypes {
		s.subscribers[eventType] = append(s.subscribers[eventType], handler)
	}
	return nil
}
