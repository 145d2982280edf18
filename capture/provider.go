package capture

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	framecap "github.com/smazurov/framecap"
	"github.com/smazurov/framecap/convert"
	"github.com/smazurov/framecap/internal/logging"
	"github.com/smazurov/framecap/internal/metrics"
)

const (
	// DefaultMaxCacheFrames bounds the frame pool.
	DefaultMaxCacheFrames = 15
	// DefaultMaxAvailableFrames bounds the queue of undelivered frames.
	DefaultMaxAvailableFrames = 3
)

// NewFrameCallback sees every frame before it is queued. Returning true
// means the callback consumed the frame: it is released immediately and
// never reaches the available queue.
type NewFrameCallback func(*framecap.Frame) bool

// Provider owns the delivery path between a frame source and its
// consumers. The source acquires frames from the provider's pool, fills
// them and hands them to Deliver; consumers take them out with Grab.
type Provider struct {
	mu           sync.Mutex
	pool         *FramePool
	queue        *frameQueue
	callback     NewFrameCallback
	targetFormat framecap.PixelFormat
	verticalFlip bool
	started      bool

	index atomic.Uint64
	log   *slog.Logger
}

// NewProvider creates a provider with the default pool and queue bounds.
func NewProvider() *Provider {
	return &Provider{
		pool:  NewFramePool(DefaultMaxCacheFrames),
		queue: newFrameQueue(DefaultMaxAvailableFrames),
		log:   logging.GetLogger("capture"),
	}
}

// Start opens the delivery path. Starting again after a Stop installs a
// fresh queue; grabbers still parked on the old one drain out with nil.
func (p *Provider) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	q := p.queue
	q.mu.Lock()
	stopped := q.stopped
	maxSize := q.maxSize
	q.mu.Unlock()
	if stopped {
		p.queue = newFrameQueue(maxSize)
	}
	p.started = true
}

// Stop closes the delivery path and wakes every blocked grabber. Frames
// already queued remain grabbable until drained.
func (p *Provider) Stop() {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return
	}
	p.started = false
	q := p.queue
	p.mu.Unlock()
	q.stop()
}

// AcquireFrame hands the source a pooled frame carrying one reference.
// Deliver takes that reference back; a source abandoning a frame must
// release it itself.
func (p *Provider) AcquireFrame() *framecap.Frame {
	return p.pool.AcquireFree()
}

// Deliver stamps, optionally converts and publishes one frame. The
// caller's reference passes to the provider: the frame ends up either
// queued, or released when the callback consumed it or the path is
// stopped.
func (p *Provider) Deliver(f *framecap.Frame) {
	f.Index = p.index.Add(1)
	if f.Timestamp == 0 {
		f.Timestamp = uint64(time.Now().UnixNano())
	}

	p.mu.Lock()
	target := p.targetFormat
	flip := p.verticalFlip
	cb := p.callback
	q := p.queue
	started := p.started
	p.mu.Unlock()

	if !started {
		f.Release()
		return
	}

	if target != framecap.PixelFormatUnknown {
		if !convert.Convert(f, target, flip) {
			p.log.Warn("frame conversion failed, delivering unconverted",
				"from", f.Format.String(), "to", target.String())
		}
	} else if flip && f.Width > 0 {
		convert.Convert(f, f.Format, true)
	}

	if cb != nil && cb(f) {
		f.Release()
		return
	}

	q.publish(f)
	metrics.IncFramesDelivered()
}

// Grab takes the oldest available frame, waiting up to timeout when the
// queue is empty. A negative timeout waits indefinitely. Returns nil on
// timeout, after Stop, or when the provider was never started. The
// caller owns the returned frame's reference and must Release it.
func (p *Provider) Grab(timeout time.Duration) *framecap.Frame {
	p.mu.Lock()
	started := p.started
	q := p.queue
	p.mu.Unlock()
	if !started {
		p.log.Warn("grab on a provider that was not started")
		return nil
	}
	return q.retrieve(timeout)
}

// SetNewFrameCallback installs the synchronous pre-queue callback. A nil
// callback removes it.
func (p *Provider) SetNewFrameCallback(cb NewFrameCallback) {
	p.mu.Lock()
	p.callback = cb
	p.mu.Unlock()
}

// SetFrameAllocator installs an allocator factory for future pooled
// frames and clears the pool.
func (p *Provider) SetFrameAllocator(factory framecap.AllocatorFactory) {
	p.pool.SetAllocatorFactory(factory)
}

// SetMaxCacheFrameSize bounds the frame pool.
func (p *Provider) SetMaxCacheFrameSize(n int) {
	p.pool.SetMaxSize(n)
}

// SetMaxAvailableFrameSize bounds the available-frame queue.
func (p *Provider) SetMaxAvailableFrameSize(n int) {
	p.mu.Lock()
	q := p.queue
	p.mu.Unlock()
	q.setMaxSize(n)
}

// SetTargetFormat requests in-place conversion of every delivered frame.
// PixelFormatUnknown disables conversion; verticalFlip still applies on
// its own.
func (p *Provider) SetTargetFormat(format framecap.PixelFormat, verticalFlip bool) {
	p.mu.Lock()
	p.targetFormat = format
	p.verticalFlip = verticalFlip
	p.mu.Unlock()
}
