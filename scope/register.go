package scope

import (
	"context"

	scoped "github.com/wippyai/scoped"
	"github.com/wippyai/scoped/errors"
)

// Register constructs a resource and records its teardown in the current
// scope, returning the resource for immediate use.
//
// construct runs first; if it fails nothing is registered and the failure
// is returned wrapped as a construct error (the underlying error stays
// reachable through errors.Is). On success the (destroy, value) pair is
// pushed onto the innermost active scope, so within one scope destructors
// run in exact reverse call order. Callers registering dependent resources
// must register them in dependency order; the stack understands only call
// order.
//
// destroy may be nil: if the value implements scoped.Dropper its Drop
// method is used, otherwise the record is a no-op placeholder that still
// participates in registry accounting.
func Register[T any](ctx context.Context, construct func() (T, error), destroy func(T) error) (T, error) {
	var zero T

	s := From(ctx)
	if s == nil {
		return zero, errors.NoScope(errors.PhaseRegister)
	}
	if construct == nil {
		return zero, errors.InvalidInput(errors.PhaseRegister, "nil constructor")
	}

	v, err := construct()
	if err != nil {
		return zero, errors.ConstructFailed(resourceName(zero), err)
	}

	fn := destroyFunc(v, destroy)
	if err := s.push(resourceName(v), v, fn); err != nil {
		// Constructed but unregistrable (scope already drained). Destroy
		// now so the resource neither leaks nor gets a second chance.
		if fn != nil {
			_ = fn()
		}
		return zero, err
	}
	return v, nil
}

// Defer registers a bare cleanup action on the current scope for a
// resource the caller already owns. Equivalent to Register with a
// constructor that has already run.
func Defer(ctx context.Context, cleanup func() error) error {
	s := From(ctx)
	if s == nil {
		return errors.NoScope(errors.PhaseRegister)
	}
	return s.Defer(cleanup)
}

func destroyFunc[T any](v T, destroy func(T) error) func() error {
	if destroy != nil {
		return func() error { return destroy(v) }
	}
	if d, ok := any(v).(scoped.Dropper); ok {
		return func() error {
			d.Drop()
			return nil
		}
	}
	return nil
}
