package convert

import (
	"log/slog"

	"github.com/smazurov/framecap/internal/events"
)

// Backend identifies one implementation family of the conversion
// kernels.
type Backend int

const (
	// BackendAuto resolves to the best capability-confirmed backend.
	BackendAuto Backend = iota
	// BackendCPU is the portable scalar path, always available.
	BackendCPU
	// BackendAVX2 is the 16-pixel block path, available on amd64 with
	// AVX2 support.
	BackendAVX2
	// BackendNEON is the 8-pixel block path, available on arm64.
	BackendNEON
	// BackendAccelerate stands for the platform's native image
	// library. The pure Go build does not bind one, so its capability
	// is never confirmed; it keeps its slot at the head of the resolve
	// order for builds that do.
	BackendAccelerate
)

func (b Backend) String() string {
	switch b {
	case BackendAuto:
		return "auto"
	case BackendCPU:
		return "cpu"
	case BackendAVX2:
		return "avx2"
	case BackendNEON:
		return "neon"
	case BackendAccelerate:
		return "accelerate"
	}
	return "unknown"
}

// ParseBackend maps a configuration string to a Backend.
func ParseBackend(s string) (Backend, bool) {
	switch s {
	case "", "auto":
		return BackendAuto, true
	case "cpu":
		return BackendCPU, true
	case "avx2":
		return BackendAVX2, true
	case "neon":
		return BackendNEON, true
	case "accelerate":
		return BackendAccelerate, true
	}
	return BackendAuto, false
}

// Selection state is deliberately unsynchronized. Backend changes are
// rare administrative actions; a stale read only routes one extra call
// through the previous backend.
var (
	avx2Enabled  = true
	neonEnabled  = true
	accelEnabled = true
)

func hasAccelerate() bool {
	// No native image library is bound in the pure Go build.
	return false
}

func canUseAVX2() bool { return avx2Enabled && hasAVX2() }

func canUseNEON() bool { return neonEnabled && hasNEON() }

func canUseAccelerate() bool { return accelEnabled && hasAccelerate() }

// HasBackend reports whether the running hardware supports the given
// backend, regardless of the current enable state.
func HasBackend(b Backend) bool {
	switch b {
	case BackendAuto, BackendCPU:
		return true
	case BackendAVX2:
		return hasAVX2()
	case BackendNEON:
		return hasNEON()
	case BackendAccelerate:
		return hasAccelerate()
	}
	return false
}

// ActiveBackend resolves the backend that the next kernel call will
// actually run: native acceleration first, then the architecture's block
// path, then scalar.
func ActiveBackend() Backend {
	switch {
	case canUseAccelerate():
		return BackendAccelerate
	case canUseAVX2():
		return BackendAVX2
	case canUseNEON():
		return BackendNEON
	default:
		return BackendCPU
	}
}

// SetBackend forces a specific backend, disabling the others. It returns
// false when the requested backend is unsupported on the running
// hardware; in that case the effective backend is whatever ActiveBackend
// reports, never a silent substitute.
func SetBackend(b Backend) bool {
	ok := false
	switch b {
	case BackendAuto:
		accelEnabled, avx2Enabled, neonEnabled = true, true, true
		ok = true
	case BackendCPU:
		accelEnabled, avx2Enabled, neonEnabled = false, false, false
		ok = true
	case BackendAVX2:
		accelEnabled, neonEnabled = false, false
		ok = EnableAVX2(true)
	case BackendNEON:
		accelEnabled, avx2Enabled = false, false
		ok = EnableNEON(true)
	case BackendAccelerate:
		avx2Enabled, neonEnabled = false, false
		ok = EnableAccelerate(true)
	default:
		slog.Error("convert: unsupported backend", "backend", int(b))
		return false
	}
	events.Publish(events.BackendChangedEvent{Requested: b.String(), Active: ActiveBackend().String()})
	return ok
}

// EnableAVX2 toggles the AVX2 path and reports whether it is both
// enabled and supported.
func EnableAVX2(on bool) bool {
	avx2Enabled = on
	return canUseAVX2()
}

// EnableNEON toggles the NEON path and reports whether it is both
// enabled and supported.
func EnableNEON(on bool) bool {
	neonEnabled = on
	return canUseNEON()
}

// EnableAccelerate toggles the native-acceleration path and reports
// whether it is both enabled and supported.
func EnableAccelerate(on bool) bool {
	accelEnabled = on
	return canUseAccelerate()
}
