// Package scoped provides scope-bound resource cleanup for Go.
//
// Code running inside a scope can allocate or construct resources without
// threading ownership back through its callers: every resource registered
// while the scope is active is destroyed, in reverse registration order,
// when the scope's governing function returns. This holds for normal
// returns, error returns, and panics alike.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	scoped/       Root package with the Allocator and Dropper interfaces
//	├── scope/    Scope stack, the Run controller, Register and Alloc
//	├── registry/ Optional live-resource accounting with lifecycle observers
//	└── errors/   Structured error types for debugging
//
// # Quick Start
//
// Run a unit of work inside a scope and register resources as they are
// constructed:
//
//	err := scope.Run(ctx, func(ctx context.Context) error {
//	    conn, err := scope.Register(ctx, dialBroker, (*Conn).Close)
//	    if err != nil {
//	        return err
//	    }
//
//	    buf, err := scope.Alloc(ctx, 4096)
//	    if err != nil {
//	        return err
//	    }
//
//	    return process(conn, buf)
//	})
//	// conn is closed and buf released before err is observed,
//	// most recently registered first.
//
// Scopes nest with the call stack: a nested Run drains only its own
// registrations, leaving the enclosing scope untouched.
//
// # Thread Safety
//
// A Scope belongs to a single goroutine. Each goroutine that enters a scope
// gets its own independent stack; no synchronization is performed and none
// is needed, because scope state is never shared. Passing a scoped resource
// handle to another goroutine is a lifetime violation outside this
// library's guarantees: the origin scope may destroy the resource while the
// other goroutine still uses it.
//
// # Resource Escape
//
// Go cannot tie a value's lifetime to a dynamic extent at compile time.
// A handle returned out of the function passed to Run refers to a resource
// that has already been destroyed. Keeping handles inside the scope is
// caller responsibility; the registry package can be attached to a scope to
// make accounting mistakes observable at runtime.
package scoped
