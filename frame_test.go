package framecap

import "testing"

func TestFrameRetainRelease(t *testing.T) {
	f := &Frame{}
	if f.InUse() {
		t.Fatal("fresh frame reports in use")
	}

	f.Retain()
	f.Retain()
	if !f.InUse() {
		t.Fatal("retained frame reports free")
	}

	f.Release()
	if !f.InUse() {
		t.Fatal("frame freed with one holder remaining")
	}
	f.Release()
	if f.InUse() {
		t.Fatal("frame still in use after last release")
	}
}

func TestFrameReleaseFiresBorrowedOnce(t *testing.T) {
	released := 0
	data := make([]byte, 16)
	f := &Frame{}
	f.SetBorrowed(NewBorrowedBuffer(data, func() { released++ }))

	f.Retain()
	f.Retain()
	f.Release()
	if released != 0 {
		t.Fatal("borrowed buffer released while frame still held")
	}
	f.Release()
	if released != 1 {
		t.Fatalf("borrowed release ran %d times, want 1", released)
	}
}

func TestBorrowedBufferReleaseIdempotent(t *testing.T) {
	released := 0
	b := NewBorrowedBuffer(make([]byte, 4), func() { released++ })
	b.Release()
	b.Release()
	if released != 1 {
		t.Fatalf("release ran %d times, want 1", released)
	}
	if b.Bytes() != nil {
		t.Error("bytes still accessible after release")
	}
}

func TestFrameOwnsData(t *testing.T) {
	f := &Frame{}
	if f.OwnsData() {
		t.Fatal("frame without allocator claims ownership")
	}

	external := make([]byte, 32)
	f.Alloc = NewDefaultAllocator()
	f.Alloc.Resize(32)
	f.Planes[0] = external
	if f.OwnsData() {
		t.Fatal("frame with external plane claims ownership")
	}

	f.Planes[0] = f.Alloc.Data()[:32]
	if !f.OwnsData() {
		t.Fatal("frame pointing at its allocator denies ownership")
	}
}

func TestFrameDetachSinglePlane(t *testing.T) {
	const w, h = 4, 2
	external := make([]byte, w*h*3)
	for i := range external {
		external[i] = byte(i)
	}

	released := false
	f := &Frame{
		Format:      PixelFormatRGB24,
		Width:       w,
		Height:      h,
		SizeInBytes: len(external),
	}
	f.Stride[0] = w * 3
	f.Planes[0] = external
	f.SetBorrowed(NewBorrowedBuffer(external, func() { released = true }))

	f.Detach()

	if !f.OwnsData() {
		t.Fatal("detached frame does not own its data")
	}
	if !released {
		t.Fatal("detach kept the borrowed buffer")
	}
	for i, b := range f.Planes[0] {
		if b != byte(i) {
			t.Fatalf("byte %d = %d after detach, want %d", i, b, byte(i))
		}
	}
}

func TestFrameDetachPlanar(t *testing.T) {
	const w, h = 4, 4
	ySize := w * h
	cSize := (w / 2) * (h / 2)
	external := make([]byte, ySize+2*cSize)
	for i := range external {
		external[i] = byte(100 + i)
	}

	f := &Frame{
		Format:      PixelFormatI420v,
		Width:       w,
		Height:      h,
		SizeInBytes: len(external),
	}
	f.Stride = [3]int{w, w / 2, w / 2}
	f.Planes[0] = external[:ySize]
	f.Planes[1] = external[ySize : ySize+cSize]
	f.Planes[2] = external[ySize+cSize:]

	f.Detach()

	if !f.OwnsData() {
		t.Fatal("detached frame does not own its data")
	}
	if len(f.Planes[1]) != cSize || len(f.Planes[2]) != cSize {
		t.Fatalf("chroma plane lengths %d/%d, want %d", len(f.Planes[1]), len(f.Planes[2]), cSize)
	}
	if f.Planes[1][0] != byte(100+ySize) {
		t.Errorf("U plane starts with %d, want %d", f.Planes[1][0], byte(100+ySize))
	}
	if f.Planes[2][0] != byte(100+ySize+cSize) {
		t.Errorf("V plane starts with %d, want %d", f.Planes[2][0], byte(100+ySize+cSize))
	}
}

func TestFrameDetachOwnedIsNoop(t *testing.T) {
	f := &Frame{
		Format:      PixelFormatRGB24,
		Width:       2,
		Height:      1,
		SizeInBytes: 6,
	}
	f.Stride[0] = 6
	f.Alloc = NewDefaultAllocator()
	f.Alloc.Resize(6)
	f.Planes[0] = f.Alloc.Data()[:6]
	before := &f.Planes[0][0]

	f.Detach()
	if &f.Planes[0][0] != before {
		t.Error("detach moved data the frame already owned")
	}
}
