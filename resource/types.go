package resource

import clcore "github.com/gpubind/cl-core"

// Handle is an opaque reference to a registered memory object.
// Handle 0 is reserved and always invalid.
type Handle uint32

// EventType identifies a lifecycle event.
type EventType uint8

const (
	EventRegistered EventType = iota
	EventReleased
	EventBorrowed
	EventReturned
)

// Event describes a lifecycle event for a registered memory object.
type Event struct {
	Type    EventType
	Handle  Handle
	Mem     clcore.Mem
	Borrows uint32
}

// Observer receives notifications about lifecycle events.
type Observer interface {
	OnMemEvent(Event)
}
