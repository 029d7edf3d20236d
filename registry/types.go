package registry

import "github.com/google/uuid"

// Handle is an opaque reference to a live resource in a table.
// Handle 0 is reserved and always invalid.
type Handle uint64

// EventType for resource lifecycle notifications.
type EventType uint8

const (
	EventRegistered EventType = iota
	EventDestroyed
	EventLeaked
)

// Event describes one resource lifecycle transition.
type Event struct {
	Value    any
	Scope    uuid.UUID
	Resource string
	Handle   Handle
	Type     EventType
}

// Entry is a live resource held by a Table.
type Entry struct {
	Value    any
	Scope    uuid.UUID
	Resource string
}

// Observer receives notifications about resource lifecycle events.
type Observer interface {
	OnScopeEvent(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

func (f ObserverFunc) OnScopeEvent(e Event) { f(e) }
