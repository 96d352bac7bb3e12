// Package hwy provides portable fixed-width vectors with runtime CPU dispatch.
//
// It follows the Highway C++ library's design philosophy: kernels are written
// once against Vec[T] and run everywhere, while architecture-specific packages
// may replace hot loops with native SIMD at init time.
//
// Vec values are held by value in a fixed-capacity array, so lane operations
// never allocate. The number of active lanes is MaxLanes[T](), which follows
// the register width detected for the current CPU.
//
// Basic usage:
//
//	import "github.com/hwybench/transcendentals/hwy"
//
//	a := hwy.Load(data1)
//	b := hwy.Load(data2)
//	hwy.Store(hwy.Add(a, b), output)
package hwy

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// capacity is the largest lane count of any Vec: one 512-bit register of
// float32 lanes.
const capacity = 16

// Vec is a portable vector handle. Only the first NumLanes() entries of data
// are meaningful.
//
// Vec instances should not be created directly; use Load, Set, or Zero instead.
type Vec[T Floats] struct {
	data [capacity]T
	n    int
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Lane returns the value held in lane i.
// This is primarily for testing and tail handling.
func (v Vec[T]) Lane(i int) T {
	return v.data[i]
}

// Store writes the vector's lanes to dst, stopping early if dst is shorter.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

// Mask represents the result of a comparison operation.
// It can be used with Merge and IfThenElse to perform conditional selection.
//
// Mask instances should not be created directly; use comparison operations
// like Equal, Less, or Greater instead.
type Mask[T Floats] struct {
	bits [capacity]bool
	n    int
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return m.n
}

// GetBit reports whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	return m.bits[i]
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for i := range m.n {
		if !m.bits[i] {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for i := range m.n {
		if m.bits[i] {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for i := range m.n {
		if m.bits[i] {
			count++
		}
	}
	return count
}

// Or returns the lane-wise union of two masks.
func (m Mask[T]) Or(other Mask[T]) Mask[T] {
	n := min(m.n, other.n)
	result := Mask[T]{n: n}
	for i := range n {
		result.bits[i] = m.bits[i] || other.bits[i]
	}
	return result
}

// And returns the lane-wise intersection of two masks.
func (m Mask[T]) And(other Mask[T]) Mask[T] {
	n := min(m.n, other.n)
	result := Mask[T]{n: n}
	for i := range n {
		result.bits[i] = m.bits[i] && other.bits[i]
	}
	return result
}
