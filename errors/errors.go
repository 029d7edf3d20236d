package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the scope lifecycle the error occurred
type Phase string

const (
	PhaseEnter    Phase = "enter"    // scope entry
	PhaseRegister Phase = "register" // resource registration
	PhaseAlloc    Phase = "alloc"    // heap convenience allocation
	PhaseDrain    Phase = "drain"    // scope exit cleanup
)

// Kind categorizes the error
type Kind string

const (
	KindNoScope         Kind = "no_scope"
	KindClosed          Kind = "closed"
	KindConstruct       Kind = "construct"
	KindDestructor      Kind = "destructor"
	KindDestructorPanic Kind = "destructor_panic"
	KindExhausted       Kind = "exhausted"
	KindInvalidInput    Kind = "invalid_input"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Resource string
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Resource != "" {
		b.WriteString(": resource ")
		b.WriteString(e.Resource)
	}

	if e.Detail != "" {
		if e.Resource != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Resource sets the resource description, typically the Go type name
func (b *Builder) Resource(r string) *Builder {
	b.err.Resource = r
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NoScope reports an operation that requires an active scope on a context
// that carries none
func NoScope(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNoScope,
		Detail: "no active scope on context",
	}
}

// Closed reports an operation on a scope that has already drained
func Closed(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: "scope already drained",
	}
}

// ConstructFailed wraps a constructor failure; nothing was registered
func ConstructFailed(resource string, cause error) *Error {
	return &Error{
		Phase:    PhaseRegister,
		Kind:     KindConstruct,
		Resource: resource,
		Detail:   "constructor failed",
		Cause:    cause,
	}
}

// DestructorFailed wraps a destructor failure observed during drain
func DestructorFailed(resource string, cause error) *Error {
	return &Error{
		Phase:    PhaseDrain,
		Kind:     KindDestructor,
		Resource: resource,
		Detail:   "destructor failed",
		Cause:    cause,
	}
}

// DestructorPanicked reports a destructor that panicked during drain.
// The panic value is preserved in Value.
func DestructorPanicked(resource string, panicValue any) *Error {
	return &Error{
		Phase:    PhaseDrain,
		Kind:     KindDestructorPanic,
		Resource: resource,
		Detail:   fmt.Sprintf("destructor panicked: %v", panicValue),
		Value:    panicValue,
	}
}

// Exhausted reports an allocator that cannot satisfy a request
func Exhausted(size int) *Error {
	return &Error{
		Phase:  PhaseAlloc,
		Kind:   KindExhausted,
		Detail: fmt.Sprintf("cannot allocate %d bytes", size),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}
