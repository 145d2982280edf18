package framecap

import "sync"

// BorrowedBuffer wraps externally owned bytes, typically a capture
// backend's mapped buffer, together with the action that hands the
// memory back. The release action runs exactly once, either when the
// holding frame's last reference drops or on an explicit Release.
//
// A BorrowedBuffer must not be attached to a second frame after its
// first borrow; the external memory may be rewritten by the device once
// released.
type BorrowedBuffer struct {
	data    []byte
	release func()
	once    sync.Once
}

// NewBorrowedBuffer wraps data with a release action. release may be nil
// when the external owner needs no notification.
func NewBorrowedBuffer(data []byte, release func()) *BorrowedBuffer {
	return &BorrowedBuffer{data: data, release: release}
}

// Bytes returns the borrowed memory. Valid until Release.
func (b *BorrowedBuffer) Bytes() []byte { return b.data }

// Release hands the memory back to its owner. Safe to call more than
// once; the underlying action runs only the first time.
func (b *BorrowedBuffer) Release() {
	b.once.Do(func() {
		b.data = nil
		if b.release != nil {
			b.release()
		}
	})
}
