// Package errors provides structured error types for the scoped library.
//
// Errors are categorized by Phase (where in the scope lifecycle the error
// occurred) and Kind (error category). The Error type includes the resource
// description, a human-readable detail, and the cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDrain, errors.KindDestructor).
//		Resource("*os.File").
//		Detail("close failed").
//		Cause(cause).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NoScope(errors.PhaseRegister)
//	err := errors.ConstructFailed("*net.Conn", cause)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
