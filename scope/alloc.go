package scope

import (
	"context"

	"github.com/wippyai/scoped/errors"
)

// Alloc returns a zeroed size-byte buffer registered on the current scope.
// The buffer is handed back to the scope's allocator when the scope
// drains, with the same ordering guarantees as Register. Equivalent to the
// general form with an "allocate size bytes" constructor and a "release
// storage" destructor.
//
// The buffer must not be retained past the scope: after drain its storage
// may be reused by later allocations.
func Alloc(ctx context.Context, size int) ([]byte, error) {
	s := From(ctx)
	if s == nil {
		return nil, errors.NoScope(errors.PhaseAlloc)
	}

	a := s.allocator()
	buf, err := a.Alloc(size)
	if err != nil {
		return nil, err
	}

	if err := s.push("[]byte", buf, func() error {
		a.Free(buf)
		return nil
	}); err != nil {
		a.Free(buf)
		return nil, err
	}
	return buf, nil
}

// Make returns a pointer to a zeroed T registered on the current scope.
// If *T implements scoped.Dropper, Drop runs on drain; otherwise the
// record releases the reference and the garbage collector reclaims the
// value once the caller drops its handle.
func Make[T any](ctx context.Context) (*T, error) {
	return Register[*T](ctx, func() (*T, error) { return new(T), nil }, nil)
}
