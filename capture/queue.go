package capture

import (
	"log/slog"
	"sync"
	"time"

	framecap "github.com/smazurov/framecap"
	"github.com/smazurov/framecap/internal/events"
	"github.com/smazurov/framecap/internal/logging"
	"github.com/smazurov/framecap/internal/metrics"
)

// frameQueue is the bounded FIFO of frames awaiting a consumer. Overflow
// drops the oldest queued frame, so a slow consumer always sees the most
// recent captures. Waiters block on a notify channel that is closed and
// replaced on every publish, which broadcasts to all of them at once.
type frameQueue struct {
	mu      sync.Mutex
	frames  []*framecap.Frame
	maxSize int
	notify  chan struct{}
	stopped bool
	log     *slog.Logger
}

func newFrameQueue(maxSize int) *frameQueue {
	if maxSize <= 0 {
		maxSize = DefaultMaxAvailableFrames
	}
	return &frameQueue{
		maxSize: maxSize,
		notify:  make(chan struct{}),
		log:     logging.GetLogger("capture"),
	}
}

// publish appends a frame, dropping the head first when full. The queue
// takes over the caller's reference; a dropped frame is released here.
func (q *frameQueue) publish(f *framecap.Frame) {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		f.Release()
		return
	}
	var dropped *framecap.Frame
	if len(q.frames) >= q.maxSize {
		dropped = q.frames[0]
		q.frames = append(q.frames[:0:0], q.frames[1:]...)
	}
	q.frames = append(q.frames, f)
	close(q.notify)
	q.notify = make(chan struct{})
	q.mu.Unlock()

	if dropped != nil {
		q.log.Warn("available queue full, dropping oldest frame",
			"dropped_index", dropped.Index, "queue_size", q.maxSize)
		metrics.IncFramesDropped()
		events.Publish(events.FrameDroppedEvent{Index: dropped.Index, QueueSize: q.maxSize})
		dropped.Release()
	}
}

// retrieve pops the head, waiting up to timeout when the queue is empty.
// A negative timeout waits indefinitely. Returns nil on timeout or after
// stop once the queue has drained; frames queued before a stop are still
// handed out.
func (q *frameQueue) retrieve(timeout time.Duration) *framecap.Frame {
	var deadline <-chan time.Time
	if timeout >= 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		deadline = timer.C
	}
	for {
		q.mu.Lock()
		if len(q.frames) > 0 {
			f := q.frames[0]
			q.frames = append(q.frames[:0:0], q.frames[1:]...)
			q.mu.Unlock()
			return f
		}
		if q.stopped {
			q.mu.Unlock()
			return nil
		}
		wake := q.notify
		q.mu.Unlock()

		select {
		case <-wake:
		case <-deadline:
			return nil
		}
	}
}

// stop wakes every blocked retriever. Publishing after a stop releases
// the frame instead of queueing it.
func (q *frameQueue) stop() {
	q.mu.Lock()
	if !q.stopped {
		q.stopped = true
		close(q.notify)
	}
	q.mu.Unlock()
}

// clear releases and forgets every queued frame.
func (q *frameQueue) clear() {
	q.mu.Lock()
	frames := q.frames
	q.frames = nil
	q.mu.Unlock()
	for _, f := range frames {
		f.Release()
	}
}

func (q *frameQueue) setMaxSize(n int) {
	if n <= 0 {
		n = DefaultMaxAvailableFrames
	}
	q.mu.Lock()
	q.maxSize = n
	q.mu.Unlock()
}
