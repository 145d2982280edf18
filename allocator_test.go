package framecap

import "testing"

func TestDefaultAllocatorGrow(t *testing.T) {
	a := NewDefaultAllocator()
	if a.Size() != 0 {
		t.Fatalf("new allocator size = %d, want 0", a.Size())
	}

	a.Resize(100)
	if a.Size() < 100 {
		t.Fatalf("size after Resize(100) = %d, want >= 100", a.Size())
	}
	if a.Size()%64 != 0 {
		t.Errorf("size %d not rounded to 64-byte multiple", a.Size())
	}
}

func TestDefaultAllocatorShrinkHysteresis(t *testing.T) {
	a := NewDefaultAllocator()
	a.Resize(1024)
	buf := a.Data()

	// Within half the current size the buffer is kept.
	a.Resize(600)
	if &a.Data()[0] != &buf[0] {
		t.Error("Resize within hysteresis window reallocated")
	}

	// Far below half triggers a reallocation to the smaller size.
	a.Resize(64)
	if a.Size() >= 1024 {
		t.Errorf("size after deep shrink = %d, want < 1024", a.Size())
	}
}

func TestDefaultAllocatorStableWhenSameSize(t *testing.T) {
	a := NewDefaultAllocator()
	a.Resize(512)
	buf := a.Data()
	a.Resize(512)
	if &a.Data()[0] != &buf[0] {
		t.Error("Resize to same size reallocated")
	}
}
