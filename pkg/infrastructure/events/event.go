package events

import "time"

// Event is a recorded fact about a part, reorder, or support request. The
// stream id groups events for one entity.
type Event interface {
	Type() string
	StreamID() string
	Data() interface{}
	Timestamp() time.Time
	Version() int
}

// Handler consumes events of the types it declares.
type Handler interface {
	Handle(event Event) error
	CanHandle(eventType string) bool
}

// Store appends and replays events. Notification fan-out is the store's
// concern; it must never run inside a transition's guard-evaluation section.
type Store interface {
	Append(streamID string, event Event) error
	Read(streamID string, fromVersion int) ([]Event, error)
	ReadAll(fromPosition int) ([]Event, error)
	Subscribe(eventTypes []string, handler Handler) error
}

type baseEvent struct {
	eventType string
	stream    string
	data      interface{}
	timestamp time.Time
	version   int
}

func (e baseEvent) Type() string         { return e.eventType }
func (e baseEvent) StreamID() string     { return e.stream }
func (e baseEvent) Data() interface{}    { return e.data }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }
func (e baseEvent) Version() int         { return e.version }

// NewEvent creates an event with the current timestamp. The store assigns the
// stream version on append.
func NewEvent(eventType, streamID string, data interface{}) Event {
	return baseEvent{
		eventType: eventType,
		stream:    streamID,
		data:      data,
		timestamp: time.Now(),
		version:   1,
	}
}
