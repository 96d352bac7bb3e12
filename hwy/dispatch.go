package hwy

import "unsafe"

// DispatchLevel represents the SIMD instruction set native kernels may use.
type DispatchLevel int

const (
	// DispatchScalar indicates no native SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the vector width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth = 16

// CPU features reported by golang.org/x/sys/cpu, independent of whether this
// binary was built with native kernels for them.
var (
	hasAVX2   bool
	hasAVX512 bool
	hasFMA    bool
)

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector width in bytes.
// For example: 16 for SSE2/NEON/scalar, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
func CurrentName() string {
	return currentLevel.String()
}

// HasAVX2 reports whether the CPU implements AVX2.
func HasAVX2() bool {
	return hasAVX2
}

// HasAVX512 reports whether the CPU implements AVX-512F.
func HasAVX512() bool {
	return hasAVX512
}

// HasFMA reports whether the CPU implements fused multiply-add.
func HasFMA() bool {
	return hasFMA
}

// MaxLanes returns the number of lanes for type T with the current width.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
func MaxLanes[T Floats]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	return min(currentWidth/elementSize, capacity)
}
