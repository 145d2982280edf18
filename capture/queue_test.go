package capture

import (
	"testing"
	"time"

	framecap "github.com/smazurov/framecap"
)

func queuedFrame() *framecap.Frame {
	f := &framecap.Frame{}
	return f.Retain()
}

func TestQueueFIFO(t *testing.T) {
	q := newFrameQueue(4)
	f1, f2 := queuedFrame(), queuedFrame()
	f1.Index, f2.Index = 1, 2

	q.publish(f1)
	q.publish(f2)

	if got := q.retrieve(0); got != f1 {
		t.Fatalf("first retrieve = %v, want frame 1", got)
	}
	if got := q.retrieve(0); got != f2 {
		t.Fatalf("second retrieve = %v, want frame 2", got)
	}
}

func TestQueueDropsOldestOnOverflow(t *testing.T) {
	q := newFrameQueue(2)
	f1, f2, f3 := queuedFrame(), queuedFrame(), queuedFrame()

	q.publish(f1)
	q.publish(f2)
	q.publish(f3)

	if f1.InUse() {
		t.Error("dropped frame still holds its queue reference")
	}
	if got := q.retrieve(0); got != f2 {
		t.Fatal("head after overflow is not the second-oldest frame")
	}
	if got := q.retrieve(0); got != f3 {
		t.Fatal("tail after overflow is not the newest frame")
	}
}

func TestQueueRetrieveTimesOut(t *testing.T) {
	q := newFrameQueue(2)
	start := time.Now()
	if got := q.retrieve(50 * time.Millisecond); got != nil {
		t.Fatal("empty queue returned a frame")
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("retrieve returned after %v, before the timeout", elapsed)
	}
}

func TestQueueRetrieveWakesOnPublish(t *testing.T) {
	q := newFrameQueue(2)
	f := queuedFrame()

	done := make(chan *framecap.Frame, 1)
	go func() {
		done <- q.retrieve(-1)
	}()

	time.Sleep(20 * time.Millisecond)
	q.publish(f)

	select {
	case got := <-done:
		if got != f {
			t.Fatalf("woken retriever got %v", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("retriever never woke after publish")
	}
}

func TestQueueStopWakesAllRetrievers(t *testing.T) {
	q := newFrameQueue(2)
	const waiters = 3

	done := make(chan *framecap.Frame, waiters)
	for i := 0; i < waiters; i++ {
		go func() {
			done <- q.retrieve(-1)
		}()
	}

	time.Sleep(20 * time.Millisecond)
	q.stop()

	for i := 0; i < waiters; i++ {
		select {
		case got := <-done:
			if got != nil {
				t.Fatal("stopped retriever got a frame")
			}
		case <-time.After(2 * time.Second):
			t.Fatal("a retriever never woke after stop")
		}
	}
}

func TestQueueDrainsAfterStop(t *testing.T) {
	q := newFrameQueue(2)
	f := queuedFrame()
	q.publish(f)
	q.stop()

	if got := q.retrieve(0); got != f {
		t.Fatal("frame queued before stop was lost")
	}
	if got := q.retrieve(0); got != nil {
		t.Fatal("drained stopped queue returned a frame")
	}
}

func TestQueuePublishAfterStopReleases(t *testing.T) {
	q := newFrameQueue(2)
	q.stop()

	f := queuedFrame()
	q.publish(f)
	if f.InUse() {
		t.Error("frame published after stop kept its reference")
	}
	if got := q.retrieve(0); got != nil {
		t.Error("stopped queue accepted a frame")
	}
}

func TestQueueClearReleases(t *testing.T) {
	q := newFrameQueue(2)
	f := queuedFrame()
	q.publish(f)
	q.clear()
	if f.InUse() {
		t.Error("cleared frame still holds its queue reference")
	}
}
