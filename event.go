package inputfsm

import (
	"time"

	"github.com/google/uuid"
)

// Event identifies the external occurrence that triggered a dispatch, such
// as a keyboard or pointer event handle from the embedding UI. The machine
// never inspects it beyond metadata lookups; it is carried so that the
// change callback can report which event caused a settled value change.
type Event interface {
	GetID() string
	GetName() string
	GetTimestamp() time.Time
	GetMetadata() map[string]any
}

// BaseEvent provides a basic implementation of the Event interface
type BaseEvent struct {
	id        string
	name      string
	timestamp time.Time
	metadata  map[string]any
}

// NewEvent creates a new event with the given name
func NewEvent(name string) Event {
	return &BaseEvent{
		id:        uuid.New().String(),
		name:      name,
		timestamp: time.Now(),
		metadata:  make(map[string]any),
	}
}

// NewEventWithMeta creates a new event carrying metadata from the
// originating UI event, such as modifier key flags.
func NewEventWithMeta(name string, metadata map[string]any) Event {
	if metadata == nil {
		metadata = make(map[string]any)
	}
	return &BaseEvent{
		id:        uuid.New().String(),
		name:      name,
		timestamp: time.Now(),
		metadata:  metadata,
	}
}

// GetID returns the unique event identifier
func (e *BaseEvent) GetID() string {
	return e.id
}

// GetName returns the event name
func (e *BaseEvent) GetName() string {
	return e.name
}

// GetTimestamp returns when the event was created
func (e *BaseEvent) GetTimestamp() time.Time {
	return e.timestamp
}

// GetMetadata returns the event metadata
func (e *BaseEvent) GetMetadata() map[string]any {
	return e.metadata
}

// MetaShiftKey is the metadata key under which embedding widgets record
// whether the shift modifier was held on the originating event.
const MetaShiftKey = "shiftKey"

// IsShiftEvent reports whether ev carries a truthy shift modifier flag.
func IsShiftEvent(ev Event) bool {
	if ev == nil {
		return false
	}
	shift, ok := ev.GetMetadata()[MetaShiftKey].(bool)
	return ok && shift
}
