package framecap

import (
	"log/slog"
	"sync/atomic"
)

// Frame represents one image buffer in flight.
//
// Plane layout by format:
//   - I420: Planes[0] holds Y, Planes[1] holds U, Planes[2] holds V.
//   - NV12/NV21: Planes[0] holds Y, Planes[1] holds interleaved chroma,
//     Planes[2] is nil.
//   - Packed and RGB-family formats: Planes[0] holds everything, the
//     other planes are nil.
//
// A frame's bytes are owned either by its Allocator or by a
// BorrowedBuffer wrapping external capture memory. Consumers share
// frames by reference counting: Retain before handing a frame to
// another holder, Release when done. A frame with no holders is free
// and eligible for pool reuse.
type Frame struct {
	Planes [3][]byte
	Stride [3]int

	Format PixelFormat
	Width  int
	Height int

	// SizeInBytes is the total byte size across active planes and must
	// equal the sum of stride times applicable plane height.
	SizeInBytes int

	// Timestamp is the capture time in monotonic nanoseconds.
	Timestamp uint64

	// Index increases strictly across frames from one provider.
	Index uint64

	// Alloc owns the frame's bytes once they are not borrowed. Frames
	// never allocate directly; they always resize through Alloc.
	Alloc Allocator

	borrowed *BorrowedBuffer
	refs     atomic.Int32
}

// Retain adds a reference and returns the frame for chaining.
func (f *Frame) Retain() *Frame {
	f.refs.Add(1)
	return f
}

// Release drops one reference. When the last reference goes, borrowed
// memory is released and the frame becomes eligible for pool reuse.
func (f *Frame) Release() {
	n := f.refs.Add(-1)
	if n < 0 {
		f.refs.Store(0)
		slog.Error("framecap: Release called on a frame with no holders")
		return
	}
	if n == 0 {
		if b := f.borrowed; b != nil {
			f.borrowed = nil
			b.Release()
		}
	}
}

// InUse reports whether any holder still references the frame.
func (f *Frame) InUse() bool { return f.refs.Load() > 0 }

// SetBorrowed attaches external memory ownership to the frame. The
// buffer is released when the frame's last reference drops. A frame that
// already carries a borrow must not receive a second one.
func (f *Frame) SetBorrowed(b *BorrowedBuffer) {
	if f.borrowed != nil {
		slog.Error("framecap: frame already wraps a borrowed buffer")
		f.borrowed.Release()
	}
	f.borrowed = b
}

// OwnsData reports whether Planes[0] already points at the frame's own
// allocator buffer, meaning the pixel data has been produced (or copied)
// into memory the frame owns.
func (f *Frame) OwnsData() bool {
	if f.Alloc == nil {
		return false
	}
	buf := f.Alloc.Data()
	return len(f.Planes[0]) > 0 && len(buf) > 0 && &f.Planes[0][0] == &buf[0]
}

// Detach copies borrowed plane data into the frame's own allocator so
// the frame no longer aliases external memory. A frame that already owns
// its data is left untouched.
func (f *Frame) Detach() {
	if f.OwnsData() {
		return
	}
	if f.Alloc == nil {
		f.Alloc = NewDefaultAllocator()
	}

	f.Alloc.Resize(f.SizeInBytes)
	buf := f.Alloc.Data()

	plane0 := f.Stride[0] * f.Height
	copy(buf[:plane0], f.Planes[0])
	switch {
	case f.Stride[1] > 0 && f.Stride[2] > 0 && f.Planes[2] != nil:
		// Only I420 uses the third plane.
		plane1 := f.Stride[1] * (f.Height / 2)
		copy(buf[plane0:plane0+plane1], f.Planes[1])
		copy(buf[plane0+plane1:f.SizeInBytes], f.Planes[2])
		f.Planes[1] = buf[plane0 : plane0+plane1]
		f.Planes[2] = buf[plane0+plane1 : f.SizeInBytes]
	case f.Stride[1] > 0 && f.Planes[1] != nil:
		copy(buf[plane0:f.SizeInBytes], f.Planes[1])
		f.Planes[1] = buf[plane0:f.SizeInBytes]
		f.Planes[2] = nil
	default:
		f.Planes[1] = nil
		f.Planes[2] = nil
	}
	f.Planes[0] = buf[:plane0]

	if b := f.borrowed; b != nil {
		f.borrowed = nil
		b.Release()
	}
}
