//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures fall back to scalar mode.
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
}
