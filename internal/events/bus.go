package events

import (
	"github.com/kelindar/event"
)

// Bus wraps the kelindar/event dispatcher for event broadcasting.
type Bus struct {
	dispatcher *event.Dispatcher
}

// New creates a new event bus.
func New() *Bus {
	return &Bus{
		dispatcher: event.NewDispatcher(),
	}
}

// Publish publishes an event to all subscribers.
// Usage: bus.Publish(FrameDroppedEvent{...})
func (b *Bus) Publish(ev Event) {
	// kelindar/event publishing is generic over the concrete type, so a
	// type switch routes each event through the right instantiation.
	switch e := ev.(type) {
	case FrameDroppedEvent:
		event.Publish(b.dispatcher, e)
	case PoolEvictedEvent:
		event.Publish(b.dispatcher, e)
	case BackendChangedEvent:
		event.Publish(b.dispatcher, e)
	case ConfigReloadedEvent:
		event.Publish(b.dispatcher, e)
	}
}

// Subscribe subscribes to events with a handler function. The handler's
// parameter type determines which events it receives. Returns an
// unsubscribe function.
// Usage: unsub := bus.Subscribe(func(e FrameDroppedEvent) { ... })
func (b *Bus) Subscribe(handler any) func() {
	switch h := handler.(type) {
	case func(FrameDroppedEvent):
		return event.Subscribe(b.dispatcher, h)
	case func(PoolEvictedEvent):
		return event.Subscribe(b.dispatcher, h)
	case func(BackendChangedEvent):
		return event.Subscribe(b.dispatcher, h)
	case func(ConfigReloadedEvent):
		return event.Subscribe(b.dispatcher, h)
	default:
		// No-op unsubscribe for unrecognized handler types.
		return func() {}
	}
}

// defaultBus serves package-level publishers that have no bus handle of
// their own, such as the conversion backend selector.
var defaultBus = New()

// Default returns the process-wide bus.
func Default() *Bus { return defaultBus }

// Publish publishes an event on the process-wide bus.
func Publish(ev Event) { defaultBus.Publish(ev) }

// Subscribe subscribes a handler on the process-wide bus.
func Subscribe(handler any) func() { return defaultBus.Subscribe(handler) }
