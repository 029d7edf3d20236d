package registry

import (
	"sync"

	"github.com/google/uuid"
)

// Table tracks live scope-registered resources with observer support.
// Unlike a Scope, a Table may be shared: several scopes on several
// goroutines can report into one table, so access is synchronized.
type Table struct {
	entries   map[Handle]Entry
	next      Handle
	mu        sync.RWMutex
	observers []Observer
	obsMu     sync.RWMutex
	closed    bool
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		entries: make(map[Handle]Entry),
	}
}

// Insert records a live resource and returns its handle.
// Returns 0 if the table is closed.
func (t *Table) Insert(scope uuid.UUID, resource string, value any) Handle {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return 0
	}
	t.next++
	h := t.next
	t.entries[h] = Entry{
		Value:    value,
		Scope:    scope,
		Resource: resource,
	}
	t.mu.Unlock()

	t.notify(Event{
		Type:     EventRegistered,
		Handle:   h,
		Scope:    scope,
		Resource: resource,
		Value:    value,
	})

	return h
}

// Get retrieves a live entry by handle.
func (t *Table) Get(handle Handle) (Entry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.entries[handle]
	return e, ok
}

// Remove retires a resource and returns its entry if it was live.
func (t *Table) Remove(handle Handle) (Entry, bool) {
	t.mu.Lock()
	e, ok := t.entries[handle]
	if ok {
		delete(t.entries, handle)
	}
	t.mu.Unlock()
	if !ok {
		return Entry{}, false
	}

	t.notify(Event{
		Type:     EventDestroyed,
		Handle:   handle,
		Scope:    e.Scope,
		Resource: e.Resource,
		Value:    e.Value,
	})

	return e, true
}

// Len returns the number of live resources.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Each iterates over all live resources until fn returns false.
func (t *Table) Each(fn func(Handle, Entry) bool) {
	t.mu.RLock()
	snapshot := make(map[Handle]Entry, len(t.entries))
	for h, e := range t.entries {
		snapshot[h] = e
	}
	t.mu.RUnlock()

	for h, e := range snapshot {
		if !fn(h, e) {
			return
		}
	}
}

// Clear retires all live resources, notifying observers for each.
func (t *Table) Clear() {
	var handles []Handle
	t.Each(func(h Handle, _ Entry) bool {
		handles = append(handles, h)
		return true
	})
	for _, h := range handles {
		t.Remove(h)
	}
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

// Close reports every remaining entry as leaked, clears the table, and
// stops accepting insertions. Returns the number of leaked resources.
func (t *Table) Close() int {
	t.mu.Lock()
	t.closed = true
	leaked := t.entries
	t.entries = make(map[Handle]Entry)
	t.mu.Unlock()

	for h, e := range leaked {
		t.notify(Event{
			Type:     EventLeaked,
			Handle:   h,
			Scope:    e.Scope,
			Resource: e.Resource,
			Value:    e.Value,
		})
	}

	return len(leaked)
}

func (t *Table) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnScopeEvent(e)
	}
}
