//go:build amd64

package convert

import "golang.org/x/sys/cpu"

// Feature bits are probed once by x/sys/cpu at process start.

func hasAVX2() bool { return cpu.X86.HasAVX2 }

func hasNEON() bool { return false }
