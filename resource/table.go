package resource

import (
	"strconv"
	"sync"

	"go.uber.org/zap"

	clcore "github.com/gpubind/cl-core"
	"github.com/gpubind/cl-core/errors"
)

// Table maps handles to native memory objects and tracks outstanding
// borrows. Safe for concurrent use.
type Table struct {
	mu        sync.RWMutex
	entries   []entry
	freeList  []Handle
	observers []Observer
	obsMu     sync.RWMutex
	closed    bool
}

type entry struct {
	mem     clcore.Mem
	borrows uint32
	valid   bool
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		entries:  make([]entry, 0, 64),
		freeList: make([]Handle, 0, 16),
	}
}

// Register adds a memory object and returns its handle. Returns 0
// after Close.
func (t *Table) Register(mem clcore.Mem) Handle {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return 0
	}

	e := entry{mem: mem, valid: true}
	var handle Handle
	if n := len(t.freeList); n > 0 {
		handle = t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
		t.entries[handle-1] = e
	} else {
		t.entries = append(t.entries, e)
		handle = Handle(len(t.entries))
	}
	t.mu.Unlock()

	t.notify(Event{Type: EventRegistered, Handle: handle, Mem: mem})
	return handle
}

// Get retrieves a memory object by handle without borrowing it.
func (t *Table) Get(handle Handle) (clcore.Mem, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.lookup(handle)
	if !ok {
		return clcore.Mem{}, false
	}
	return e.mem, true
}

// Borrow marks the object as in use across a native call and returns
// it. Every successful Borrow must be paired with a Return.
func (t *Table) Borrow(handle Handle) (clcore.Mem, bool) {
	t.mu.Lock()
	e, ok := t.lookup(handle)
	if !ok {
		t.mu.Unlock()
		return clcore.Mem{}, false
	}
	e.borrows++
	mem, borrows := e.mem, e.borrows
	t.mu.Unlock()

	t.notify(Event{Type: EventBorrowed, Handle: handle, Mem: mem, Borrows: borrows})
	return mem, true
}

// Return ends a borrow started with Borrow.
func (t *Table) Return(handle Handle) bool {
	t.mu.Lock()
	e, ok := t.lookup(handle)
	if !ok || e.borrows == 0 {
		t.mu.Unlock()
		return false
	}
	e.borrows--
	mem, borrows := e.mem, e.borrows
	t.mu.Unlock()

	t.notify(Event{Type: EventReturned, Handle: handle, Mem: mem, Borrows: borrows})
	return true
}

// Release removes the entry and returns the memory object so the
// caller can invoke the native release. Fails with a borrowed error
// while a borrow is outstanding, and with not-found for an unknown
// handle.
func (t *Table) Release(handle Handle) (clcore.Mem, error) {
	t.mu.Lock()
	e, ok := t.lookup(handle)
	if !ok {
		t.mu.Unlock()
		return clcore.Mem{}, errors.NotFound(errors.PhaseRuntime, "mem handle", handleName(handle))
	}
	if e.borrows > 0 {
		borrows := int(e.borrows)
		t.mu.Unlock()
		return clcore.Mem{}, errors.Borrowed(errors.PhaseRuntime, handle, borrows)
	}

	mem := e.mem
	e.valid = false
	e.mem = clcore.Mem{}
	t.freeList = append(t.freeList, handle)
	t.mu.Unlock()

	t.notify(Event{Type: EventReleased, Handle: handle, Mem: mem})
	return mem, nil
}

// Len returns the number of registered objects.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for _, e := range t.entries {
		if e.valid {
			count++
		}
	}
	return count
}

// Each iterates over registered objects until fn returns false.
func (t *Table) Each(fn func(Handle, clcore.Mem) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i, e := range t.entries {
		if e.valid {
			if !fn(Handle(i+1), e.mem) {
				break
			}
		}
	}
}

// Close drops all entries and stops accepting registrations. Close
// does not release native objects.
func (t *Table) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true
	t.entries = nil
	t.freeList = nil
	return nil
}

// Subscribe adds an observer for lifecycle events.
func (t *Table) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// lookup returns the entry for a handle. Caller holds t.mu.
func (t *Table) lookup(handle Handle) (*entry, bool) {
	if handle == 0 || int(handle) > len(t.entries) {
		return nil, false
	}
	e := &t.entries[handle-1]
	if !e.valid {
		return nil, false
	}
	return e, true
}

func (t *Table) notify(e Event) {
	logEvent(e)

	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnMemEvent(e)
	}
}

func logEvent(e Event) {
	l := Logger()
	if l.Core().Enabled(zap.DebugLevel) {
		l.Debug("mem event",
			zap.Uint8("type", uint8(e.Type)),
			zap.Uint32("handle", uint32(e.Handle)),
			zap.Uint32("borrows", e.Borrows),
		)
	}
}

func handleName(h Handle) string {
	return strconv.FormatUint(uint64(h), 10)
}
