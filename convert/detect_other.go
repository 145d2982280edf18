//go:build !amd64 && !arm64

package convert

func hasAVX2() bool { return false }

func hasNEON() bool { return false }
