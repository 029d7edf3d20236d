package scope

import (
	"sync"

	scoped "github.com/wippyai/scoped"
	"github.com/wippyai/scoped/errors"
)

const (
	// Pool limits to prevent memory bloat
	poolMaxCap  = 1 << 20 // max buffer capacity retained
	poolInitCap = 512
)

// byte buffer pool backing the default allocator
var bufPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, poolInitCap)
		return &buf
	},
}

// poolAllocator is the default scoped.Allocator: buffers come from a
// sync.Pool and are zeroed before reuse.
type poolAllocator struct{}

var defaultAllocator scoped.Allocator = poolAllocator{}

func (poolAllocator) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, errors.InvalidInput(errors.PhaseAlloc, "negative size")
	}
	bp := bufPool.Get().(*[]byte)
	if cap(*bp) < size {
		bufPool.Put(bp)
		return make([]byte, size), nil
	}
	buf := (*bp)[:size]
	clear(buf)
	return buf, nil
}

func (poolAllocator) Free(buf []byte) {
	if cap(buf) == 0 || cap(buf) > poolMaxCap {
		return // reject oversized
	}
	b := buf[:0]
	bufPool.Put(&b)
}

// allocator returns the scope's configured allocator, falling back to the
// pooled default.
func (s *Scope) allocator() scoped.Allocator {
	if s.alloc != nil {
		return s.alloc
	}
	return defaultAllocator
}
