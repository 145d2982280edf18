package capture

import (
	"log/slog"
	"sync"

	framecap "github.com/smazurov/framecap"
	"github.com/smazurov/framecap/internal/events"
	"github.com/smazurov/framecap/internal/logging"
	"github.com/smazurov/framecap/internal/metrics"
)

// FramePool recycles frames so steady-state capture reuses buffers
// instead of allocating per frame. The pool holds frames in acquisition
// order; a frame whose reference count has dropped to zero is free and
// the next acquisition hands it out again, allocator intact.
type FramePool struct {
	mu      sync.Mutex
	frames  []*framecap.Frame
	maxSize int
	factory framecap.AllocatorFactory
	log     *slog.Logger
}

// NewFramePool creates a pool bounded at maxSize frames. A non-positive
// maxSize falls back to DefaultMaxCacheFrames.
func NewFramePool(maxSize int) *FramePool {
	if maxSize <= 0 {
		maxSize = DefaultMaxCacheFrames
	}
	return &FramePool{
		maxSize: maxSize,
		log:     logging.GetLogger("capture"),
	}
}

// AcquireFree returns a frame carrying one reference. The pool reuses
// the first free frame, grows while below its bound, and at capacity
// evicts its oldest entry to make room. It never blocks.
func (p *FramePool) AcquireFree() *framecap.Frame {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, f := range p.frames {
		if !f.InUse() {
			// Move to the back so eviction order tracks acquisition.
			p.frames = append(append(p.frames[:i:i], p.frames[i+1:]...), f)
			metrics.IncPoolReuse()
			return f.Retain()
		}
	}

	if len(p.frames) >= p.maxSize {
		// Every slot is held. Drop the pool's oldest entry; its holders
		// keep it alive, but it will not come back for reuse.
		p.frames = append(p.frames[:0:0], p.frames[1:]...)
		p.log.Warn("frame pool saturated, evicting oldest entry", "max_size", p.maxSize)
		metrics.IncPoolEvictions()
		events.Publish(events.PoolEvictedEvent{PoolSize: p.maxSize})
	}

	f := p.newFrame()
	p.frames = append(p.frames, f)
	metrics.SetPoolFrames(len(p.frames))
	return f.Retain()
}

func (p *FramePool) newFrame() *framecap.Frame {
	f := &framecap.Frame{}
	if p.factory != nil {
		f.Alloc = p.factory()
	} else {
		f.Alloc = framecap.NewDefaultAllocator()
	}
	return f
}

// SetAllocatorFactory installs the allocator source for future frames
// and clears the pool, so no frame with an old allocator is handed out
// again. Frames still held elsewhere stay valid.
func (p *FramePool) SetAllocatorFactory(factory framecap.AllocatorFactory) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.factory = factory
	p.frames = nil
	metrics.SetPoolFrames(0)
}

// SetMaxSize adjusts the pool bound. A shrink below the current
// population takes effect through eviction on subsequent acquisitions.
func (p *FramePool) SetMaxSize(n int) {
	if n <= 0 {
		n = DefaultMaxCacheFrames
	}
	p.mu.Lock()
	p.maxSize = n
	p.mu.Unlock()
}

// Len reports the current pool population.
func (p *FramePool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.frames)
}

// Clear forgets every pooled frame. Held frames stay valid for their
// holders; free ones become garbage.
func (p *FramePool) Clear() {
	p.mu.Lock()
	p.frames = nil
	p.mu.Unlock()
	metrics.SetPoolFrames(0)
}
