//go:build !amd64 && !arm64

package hwy

func init() {
	// Non-amd64 architectures fall back to scalar mode.
	setScalarMode()
}

// CPUHasAVX2 returns false on non-x86 architectures.
func CPUHasAVX2() bool {
	return false
}
