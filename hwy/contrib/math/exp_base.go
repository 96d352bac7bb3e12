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

package math

import (
	stdmath "math"

	"github.com/hwybench/transcendentals/hwy"
	"github.com/hwybench/transcendentals/hwy/contrib/algo"
)

// BaseExpVec computes e^x for a single vector.
//
// Algorithm:
// 1. Range reduction: x = k*ln(2) + r, where |r| <= ln(2)/2
// 2. Polynomial approximation: e^r ≈ 1 + r + r²/2! + r³/3! + ...
// 3. Reconstruction: e^x = 2^k * e^r
//
// The degree-6 polynomial is accurate to about 1e-7 relative, which is
// full precision for float32 only.
func BaseExpVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	overflow := hwy.Set(byType[T](expOverflow_f32, expOverflow_f64))
	underflow := hwy.Set(byType[T](expUnderflow_f32, expUnderflow_f64))
	ln2Hi := hwy.Set(byType[T](expLn2Hi_f32, expLn2Hi_f64))
	ln2Lo := hwy.Set(byType[T](expLn2Lo_f32, expLn2Lo_f64))
	invLn2 := hwy.Set(T(expInvLn2))
	one := hwy.Set(T(1))

	overflowMask := hwy.Greater(x, overflow)
	underflowMask := hwy.Less(x, underflow)

	// k = round(x / ln(2)), r = x - k*ln(2) using a high/low split
	k := hwy.RoundToEven(hwy.Mul(x, invLn2))
	r := hwy.Sub(x, hwy.Mul(k, ln2Hi))
	r = hwy.Sub(r, hwy.Mul(k, ln2Lo))

	// Horner's method from the highest degree
	p := hwy.MulAdd(hwy.Set(T(expC6)), r, hwy.Set(T(expC5)))
	p = hwy.MulAdd(p, r, hwy.Set(T(expC4)))
	p = hwy.MulAdd(p, r, hwy.Set(T(expC3)))
	p = hwy.MulAdd(p, r, hwy.Set(T(expC2)))
	p = hwy.MulAdd(p, r, one)
	p = hwy.MulAdd(p, r, one)

	// 2^128 is not a float32, so the top k is scaled as 2^127 * 2
	two := hwy.Set(T(2))
	topK := hwy.Greater(k, hwy.Set(T(127)))
	k = hwy.Merge(hwy.Sub(k, one), k, topK)
	result := hwy.Mul(p, hwy.Pow2(k))
	result = hwy.Merge(hwy.Mul(result, two), result, topK)

	result = hwy.Merge(hwy.Set(T(stdmath.Inf(1))), result, overflowMask)
	result = hwy.Merge(hwy.Zero[T](), result, underflowMask)
	return result
}

// BaseExpPoly computes e^x for every element of input.
func BaseExpPoly[T hwy.Floats](input, output []T) {
	algo.BaseApply(input, output, BaseExpVec[T])
}
