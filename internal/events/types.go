package events

// Event type constants for kelindar/event.
const (
	TypeFrameDropped uint32 = iota + 1
	TypePoolEvicted
	TypeBackendChanged
	TypeConfigReloaded
)

// Event interface required by kelindar/event.
type Event interface {
	Type() uint32
}

// FrameDroppedEvent is published when the available-frame queue discards
// its oldest entry to make room for a new one.
type FrameDroppedEvent struct {
	Index     uint64 `json:"index" doc:"Sequence index of the dropped frame"`
	QueueSize int    `json:"queue_size" doc:"Queue capacity at the time of the drop"`
}

// Type returns the event type identifier for FrameDroppedEvent.
func (e FrameDroppedEvent) Type() uint32 { return TypeFrameDropped }

// PoolEvictedEvent is published when the frame pool discards its oldest
// entry because every slot is held and the pool is at capacity.
type PoolEvictedEvent struct {
	PoolSize int `json:"pool_size" doc:"Pool capacity at the time of the eviction"`
}

// Type returns the event type identifier for PoolEvictedEvent.
func (e PoolEvictedEvent) Type() uint32 { return TypePoolEvicted }

// BackendChangedEvent is published after an administrative backend
// selection, with both the requested and the effectively active backend.
type BackendChangedEvent struct {
	Requested string `json:"requested" example:"avx2" doc:"Backend asked for"`
	Active    string `json:"active" example:"cpu" doc:"Backend actually in effect"`
}

// Type returns the event type identifier for BackendChangedEvent.
func (e BackendChangedEvent) Type() uint32 { return TypeBackendChanged }

// ConfigReloadedEvent is published after the configuration watcher
// applies a changed file.
type ConfigReloadedEvent struct {
	Path string `json:"path" doc:"Path of the reloaded configuration file"`
}

// Type returns the event type identifier for ConfigReloadedEvent.
func (e ConfigReloadedEvent) Type() uint32 { return TypeConfigReloaded }
