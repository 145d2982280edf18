//go:build arm64

package convert

import "golang.org/x/sys/cpu"

func hasAVX2() bool { return false }

// ASIMD is baseline on arm64 but the kernel can mask it for a process,
// so the feature bit is still consulted.
func hasNEON() bool { return cpu.ARM64.HasASIMD }
