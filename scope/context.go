package scope

import (
	"context"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type ctxKey struct{}

// With returns a context carrying s as the current scope.
func With(ctx context.Context, s *Scope) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// From returns the current scope carried by ctx, or nil if there is none.
func From(ctx context.Context) *Scope {
	s, _ := ctx.Value(ctxKey{}).(*Scope)
	return s
}

// Run executes fn inside a fresh scope. Resources registered during fn,
// at any call depth, are destroyed in reverse registration order before
// Run returns. The parent scope, if any, is left untouched and becomes
// current again once Run returns.
//
// The drain runs on every exit path: if fn returns an error, cleanup
// happens first and the error is returned with any drain failures appended
// (the work error stays first and remains visible to errors.Is). If fn
// panics, cleanup still happens and the panic resumes; drain failures on
// the panic path are logged.
//
// A fresh scope inherits the parent scope's registry table and allocator
// unless overridden by opts.
func Run(ctx context.Context, fn func(context.Context) error, opts ...Option) (err error) {
	s := New(opts...)
	if parent := From(ctx); parent != nil {
		if s.table == nil {
			s.table = parent.table
		}
		if s.alloc == nil {
			s.alloc = parent.alloc
		}
	}

	log := Logger()
	log.Debug("scope entered", zap.String("scope", s.id.String()))

	defer func() {
		pending := s.count
		derr := s.Drain()
		log.Debug("scope drained",
			zap.String("scope", s.id.String()),
			zap.Int("records", pending))
		if derr != nil {
			// On a panic path this assignment is discarded when the
			// panic resumes; Drain already logged each failure.
			err = multierr.Append(err, derr)
		}
	}()

	return fn(With(ctx, s))
}
