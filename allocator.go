package framecap

// Allocator owns a growable byte buffer backing a frame's pixel data.
// Resize may relocate the buffer, so Data must be re-fetched after every
// Resize; the slice returned before a Resize may point at stale memory.
type Allocator interface {
	// Resize guarantees at least n addressable bytes afterward.
	Resize(n int)
	// Data returns the current buffer. Valid only after a successful
	// Resize and until the next one.
	Data() []byte
	// Size reports the currently addressable length.
	Size() int
}

// AllocatorFactory produces allocators for newly pooled frames.
type AllocatorFactory func() Allocator

const allocAlign = 64

// DefaultAllocator is a growable buffer allocator. Capacity is rounded up
// to a 64-byte multiple and kept while requests stay within half of the
// current size, so steady-state capture does not reallocate per frame.
type DefaultAllocator struct {
	buf []byte
}

// NewDefaultAllocator returns an empty growable-buffer allocator.
func NewDefaultAllocator() *DefaultAllocator { return &DefaultAllocator{} }

func (a *DefaultAllocator) Resize(n int) {
	if n <= 0 {
		return
	}
	if a.buf != nil && n <= len(a.buf) && n >= len(a.buf)/2 {
		return
	}
	aligned := (n + allocAlign - 1) &^ (allocAlign - 1)
	a.buf = make([]byte, aligned)
}

func (a *DefaultAllocator) Data() []byte { return a.buf }

func (a *DefaultAllocator) Size() int { return len(a.buf) }
