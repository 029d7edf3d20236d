// Package scope implements the scope stack: a per-goroutine list of
// pending cleanup records drained in reverse registration order when the
// scope's governing function returns.
//
// # Scopes
//
// Run is the usual entry point. It installs a fresh scope on the context,
// executes the unit of work, and drains everything the work registered:
//
//	err := scope.Run(ctx, func(ctx context.Context) error {
//	    f, err := scope.Register(ctx, open, (*os.File).Close)
//	    if err != nil {
//	        return err
//	    }
//	    return use(f)
//	})
//
// Registration finds the innermost active scope through the context, not
// through lexical structure: a helper five calls deep registers into the
// same scope as its caller. Nested Run calls drain only their own records;
// the enclosing scope is restored untouched.
//
// The drain runs on every exit path. An error return and a panic both pass
// through cleanup before the caller observes them.
//
// # Explicit handles
//
// Callers with their own context discipline can manage a Scope directly:
//
//	s := scope.New()
//	defer s.Drain()
//	ctx = scope.With(ctx, s)
//
// A Scope must stay on the goroutine that created it.
package scope
