package events

import (
	"sync"
	"testing"
	"time"
)

func waitFor(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestPublishSubscribe(t *testing.T) {
	bus := New()

	got := make(chan FrameDroppedEvent, 1)
	done := make(chan struct{})
	unsub := bus.Subscribe(func(e FrameDroppedEvent) {
		got <- e
		close(done)
	})
	defer unsub()

	bus.Publish(FrameDroppedEvent{Index: 42, QueueSize: 3})
	waitFor(t, done, "frame-dropped handler")

	e := <-got
	if e.Index != 42 || e.QueueSize != 3 {
		t.Errorf("handler saw %+v", e)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := New()

	var mu sync.Mutex
	count := 0
	first := make(chan struct{})
	unsub := bus.Subscribe(func(e PoolEvictedEvent) {
		mu.Lock()
		count++
		if count == 1 {
			close(first)
		}
		mu.Unlock()
	})

	bus.Publish(PoolEvictedEvent{PoolSize: 8})
	waitFor(t, first, "first pool-evicted handler")

	unsub()
	bus.Publish(PoolEvictedEvent{PoolSize: 8})
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if count != 1 {
		t.Errorf("handler ran %d times after unsubscribe, want 1", count)
	}
}

func TestTypeSafety(t *testing.T) {
	bus := New()

	backend := make(chan struct{})
	unsub := bus.Subscribe(func(e BackendChangedEvent) {
		close(backend)
	})
	defer unsub()

	// A different event type must not reach this handler.
	bus.Publish(ConfigReloadedEvent{Path: "/etc/framecap.toml"})

	select {
	case <-backend:
		t.Fatal("backend handler saw a config event")
	case <-time.After(100 * time.Millisecond):
	}

	bus.Publish(BackendChangedEvent{Requested: "avx2", Active: "cpu"})
	waitFor(t, backend, "backend-changed handler")
}

func TestDefaultBusRoundTrip(t *testing.T) {
	done := make(chan ConfigReloadedEvent, 1)
	unsub := Subscribe(func(e ConfigReloadedEvent) {
		select {
		case done <- e:
		default:
		}
	})
	defer unsub()

	Publish(ConfigReloadedEvent{Path: "framecap.toml"})

	select {
	case e := <-done:
		if e.Path != "framecap.toml" {
			t.Errorf("handler saw %+v", e)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("default bus never delivered")
	}
}

func TestSubscribeUnknownHandler(t *testing.T) {
	bus := New()
	unsub := bus.Subscribe(func(s string) {})
	// Must be a callable no-op rather than nil.
	unsub()
}

func TestConcurrentPublish(t *testing.T) {
	bus := New()

	const publishers, each = 4, 25
	var mu sync.Mutex
	seen := 0
	all := make(chan struct{})
	unsub := bus.Subscribe(func(e FrameDroppedEvent) {
		mu.Lock()
		seen++
		if seen == publishers*each {
			close(all)
		}
		mu.Unlock()
	})
	defer unsub()

	var wg sync.WaitGroup
	for p := 0; p < publishers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < each; i++ {
				bus.Publish(FrameDroppedEvent{Index: uint64(i)})
			}
		}()
	}
	wg.Wait()
	waitFor(t, all, "all concurrent events")
}

func TestEventTypeIdentifiers(t *testing.T) {
	events := []Event{
		FrameDroppedEvent{},
		PoolEvictedEvent{},
		BackendChangedEvent{},
		ConfigReloadedEvent{},
	}
	seen := make(map[uint32]bool)
	for _, e := range events {
		id := e.Type()
		if id == 0 {
			t.Errorf("%T has the zero type identifier", e)
		}
		if seen[id] {
			t.Errorf("%T reuses type identifier %d", e, id)
		}
		seen[id] = true
	}
}
