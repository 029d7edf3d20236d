package scoped

// Allocator provides raw byte storage for the scoped heap-allocation
// convenience API. Implementations must tolerate Free being called exactly
// once per buffer returned by Alloc.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Free(buf []byte)
}

// Dropper is optionally implemented by resource values that know how to
// tear themselves down. A registration with a nil destructor falls back to
// Drop when the value implements this interface.
type Dropper interface {
	Drop()
}
