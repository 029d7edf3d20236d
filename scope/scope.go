package scope

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	scoped "github.com/wippyai/scoped"
	"github.com/wippyai/scoped/errors"
	"github.com/wippyai/scoped/registry"
)

// record is one pending destruction: a destructor closure and the value it
// tears down, linked to the previously registered record in the same scope.
// Once drained a record is retired and never revisited.
type record struct {
	destroy  func() error
	value    any
	resource string
	handle   registry.Handle
	next     *record
}

type state uint8

const (
	stateActive state = iota
	stateDraining
	stateDone
)

// Scope is a stack of pending cleanup records owned by a single goroutine.
// Records are pushed in registration order and destroyed in reverse order
// when the scope drains. A drained scope rejects further registrations.
type Scope struct {
	head  *record
	table *registry.Table
	alloc scoped.Allocator
	id    uuid.UUID
	count int
	state state
}

// Option configures a Scope at creation.
type Option func(*Scope)

// WithTable attaches a registry table; every registration and destruction
// in this scope (and in nested scopes created by Run) is reported to it.
func WithTable(t *registry.Table) Option {
	return func(s *Scope) {
		s.table = t
	}
}

// WithAllocator overrides the allocator backing Alloc for this scope.
func WithAllocator(a scoped.Allocator) Option {
	return func(s *Scope) {
		s.alloc = a
	}
}

// New creates an empty active scope. Most callers should use Run instead;
// New is for integrating with an existing context discipline, paired with
// a deferred Drain.
func New(opts ...Option) *Scope {
	s := &Scope{
		id:    uuid.New(),
		state: stateActive,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// ID returns the scope's unique identity, as reported in registry events
// and log fields.
func (s *Scope) ID() uuid.UUID {
	return s.id
}

// Len returns the number of pending cleanup records.
func (s *Scope) Len() int {
	return s.count
}

// Defer registers a bare cleanup action for a resource the caller has
// already constructed. Actions run in reverse registration order on drain.
func (s *Scope) Defer(cleanup func() error) error {
	if cleanup == nil {
		return errors.InvalidInput(errors.PhaseRegister, "nil cleanup function")
	}
	return s.push("deferred", nil, cleanup)
}

// push appends a cleanup record for value at the top of the stack.
func (s *Scope) push(resource string, value any, destroy func() error) error {
	switch s.state {
	case stateDraining, stateDone:
		return errors.Closed(errors.PhaseRegister)
	}

	rec := &record{
		destroy:  destroy,
		value:    value,
		resource: resource,
		next:     s.head,
	}
	if s.table != nil {
		rec.handle = s.table.Insert(s.id, resource, value)
	}
	s.head = rec
	s.count++
	return nil
}

// Drain destroys every pending record, most recently registered first,
// and retires the scope. Draining is best-effort: a destructor failure or
// panic is captured and draining continues with the next record. All
// captured failures are returned combined. Drain is a no-op on a scope
// that already drained.
func (s *Scope) Drain() error {
	if s.state != stateActive {
		return nil
	}
	s.state = stateDraining

	var err error
	for rec := s.head; rec != nil; rec = rec.next {
		if derr := s.destroyRecord(rec); derr != nil {
			Logger().Warn("destructor failed during drain",
				zap.String("scope", s.id.String()),
				zap.String("resource", rec.resource),
				zap.Error(derr))
			err = multierr.Append(err, derr)
		}
	}

	s.head = nil
	s.count = 0
	s.state = stateDone
	return err
}

// destroyRecord invokes one destructor, containing panics so the rest of
// the drain pass still runs. The record is retired from the registry table
// whether or not the destructor succeeded.
func (s *Scope) destroyRecord(rec *record) (err error) {
	if s.table != nil && rec.handle != 0 {
		defer s.table.Remove(rec.handle)
	}
	defer func() {
		if r := recover(); r != nil {
			err = errors.DestructorPanicked(rec.resource, r)
		}
	}()

	if rec.destroy == nil {
		return nil
	}
	if derr := rec.destroy(); derr != nil {
		return errors.DestructorFailed(rec.resource, derr)
	}
	return nil
}

// resourceName describes a value for registry entries and error messages.
func resourceName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", v)
}
