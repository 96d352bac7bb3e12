// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import "math"

// This file provides the pure Go implementations of all vector operations.
// Binary operations produce min(a.NumLanes(), b.NumLanes()) lanes, so a short
// tail Load combined with full-width constants yields a short result.

// Load creates a vector by loading up to MaxLanes[T]() elements from src.
// If src is shorter, the vector has len(src) lanes.
func Load[T Floats](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	v := Vec[T]{n: n}
	copy(v.data[:n], src[:n])
	return v
}

// Store writes a vector's data to a slice.
func Store[T Floats](v Vec[T], dst []T) {
	n := min(len(dst), v.n)
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Floats](value T) Vec[T] {
	v := Vec[T]{n: MaxLanes[T]()}
	for i := range v.n {
		v.data[i] = value
	}
	return v
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Floats]() Vec[T] {
	return Vec[T]{n: MaxLanes[T]()}
}

// Add performs element-wise addition.
func Add[T Floats](a, b Vec[T]) Vec[T] {
	result := Vec[T]{n: min(a.n, b.n)}
	for i := range result.n {
		result.data[i] = a.data[i] + b.data[i]
	}
	return result
}

// Sub performs element-wise subtraction.
func Sub[T Floats](a, b Vec[T]) Vec[T] {
	result := Vec[T]{n: min(a.n, b.n)}
	for i := range result.n {
		result.data[i] = a.data[i] - b.data[i]
	}
	return result
}

// Mul performs element-wise multiplication.
func Mul[T Floats](a, b Vec[T]) Vec[T] {
	result := Vec[T]{n: min(a.n, b.n)}
	for i := range result.n {
		result.data[i] = a.data[i] * b.data[i]
	}
	return result
}

// Div performs element-wise division.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	result := Vec[T]{n: min(a.n, b.n)}
	for i := range result.n {
		result.data[i] = a.data[i] / b.data[i]
	}
	return result
}

// MulAdd computes a*b + c with the common a.MulAdd(b, c) semantics.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	result := Vec[T]{n: min(a.n, b.n, c.n)}
	for i := range result.n {
		result.data[i] = a.data[i]*b.data[i] + c.data[i]
	}
	return result
}

// Neg negates each lane.
func Neg[T Floats](v Vec[T]) Vec[T] {
	result := Vec[T]{n: v.n}
	for i := range v.n {
		result.data[i] = -v.data[i]
	}
	return result
}

// Abs computes the absolute value of each lane.
func Abs[T Floats](v Vec[T]) Vec[T] {
	result := Vec[T]{n: v.n}
	for i := range v.n {
		result.data[i] = T(math.Abs(float64(v.data[i])))
	}
	return result
}

// Min returns the element-wise minimum.
func Min[T Floats](a, b Vec[T]) Vec[T] {
	result := Vec[T]{n: min(a.n, b.n)}
	for i := range result.n {
		result.data[i] = min(a.data[i], b.data[i])
	}
	return result
}

// Max returns the element-wise maximum.
func Max[T Floats](a, b Vec[T]) Vec[T] {
	result := Vec[T]{n: min(a.n, b.n)}
	for i := range result.n {
		result.data[i] = max(a.data[i], b.data[i])
	}
	return result
}

// Floor rounds each lane toward negative infinity.
func Floor[T Floats](v Vec[T]) Vec[T] {
	result := Vec[T]{n: v.n}
	for i := range v.n {
		result.data[i] = T(math.Floor(float64(v.data[i])))
	}
	return result
}

// RoundToEven rounds to the nearest even integer (banker's rounding).
// This is the default IEEE 754 rounding mode.
func RoundToEven[T Floats](v Vec[T]) Vec[T] {
	result := Vec[T]{n: v.n}
	for i := range v.n {
		result.data[i] = T(math.RoundToEven(float64(v.data[i])))
	}
	return result
}

// ReduceSum returns the sum of all lanes.
func ReduceSum[T Floats](v Vec[T]) T {
	var sum T
	for i := range v.n {
		sum += v.data[i]
	}
	return sum
}

// Equal performs element-wise equality comparison.
func Equal[T Floats](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		m.bits[i] = a.data[i] == b.data[i]
	}
	return m
}

// Less performs element-wise less-than comparison.
func Less[T Floats](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		m.bits[i] = a.data[i] < b.data[i]
	}
	return m
}

// Greater performs element-wise greater-than comparison.
func Greater[T Floats](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		m.bits[i] = a.data[i] > b.data[i]
	}
	return m
}

// IsNaN returns a mask of the lanes holding NaN.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	m := Mask[T]{n: v.n}
	for i := range v.n {
		m.bits[i] = v.data[i] != v.data[i]
	}
	return m
}

// IfThenElse selects elements from a where mask is true, from b otherwise.
func IfThenElse[T Floats](mask Mask[T], a, b Vec[T]) Vec[T] {
	result := Vec[T]{n: min(mask.n, a.n, b.n)}
	for i := range result.n {
		if mask.bits[i] {
			result.data[i] = a.data[i]
		} else {
			result.data[i] = b.data[i]
		}
	}
	return result
}

// Merge selects elements from a where mask is true, from b otherwise.
// This is equivalent to IfThenElse(mask, a, b) with the argument order of
// the archsimd a.Merge(b, mask) method.
func Merge[T Floats](a, b Vec[T], mask Mask[T]) Vec[T] {
	return IfThenElse(mask, a, b)
}

// Pow2 computes 2^k for each lane, where k holds integral values.
// Exponents above the largest finite power give +Inf.
func Pow2[T Floats](k Vec[T]) Vec[T] {
	result := Vec[T]{n: k.n}
	var zero T
	switch any(zero).(type) {
	case float32:
		for i := range k.n {
			e := int32(k.data[i])
			switch {
			case e > 127:
				result.data[i] = T(math.Inf(1))
			case e < -126:
				result.data[i] = T(math.Ldexp(1, int(e)))
			default:
				// 2^e is exponent field (e + 127) with an empty mantissa
				result.data[i] = T(math.Float32frombits(uint32(e+127) << 23))
			}
		}
	default:
		for i := range k.n {
			result.data[i] = T(math.Ldexp(1, int(k.data[i])))
		}
	}
	return result
}

// GetExponent returns e such that x = m * 2^e with m in [1, 2), as a float
// lane value. Zero lanes return 0.
func GetExponent[T Floats](v Vec[T]) Vec[T] {
	result := Vec[T]{n: v.n}
	for i := range v.n {
		frac, exp := math.Frexp(float64(v.data[i]))
		if frac == 0 {
			continue
		}
		result.data[i] = T(exp - 1)
	}
	return result
}

// GetMantissa returns m in [1, 2) such that x = m * 2^e.
// Zero, Inf and NaN lanes are passed through unchanged.
func GetMantissa[T Floats](v Vec[T]) Vec[T] {
	result := Vec[T]{n: v.n}
	for i := range v.n {
		x := float64(v.data[i])
		if x == 0 || math.IsInf(x, 0) || math.IsNaN(x) {
			result.data[i] = v.data[i]
			continue
		}
		frac, _ := math.Frexp(x)
		result.data[i] = T(2 * frac)
	}
	return result
}
