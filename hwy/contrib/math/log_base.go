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

// BaseLogVec computes the natural logarithm of a single vector.
//
// Algorithm: log(x) = log(2^e * m) = e*ln(2) + log(m), where m ∈ [1, 2).
// For log(m), let y = (m-1)/(m+1), then log(m) = 2*(y + y³/3 + y⁵/5 + ...).
//
// Special cases: log(0)=-Inf, log(neg)=NaN, log(+Inf)=+Inf, log(1)=0
func BaseLogVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Set(T(1))
	zero := hwy.Zero[T]()
	posInf := hwy.Set(T(stdmath.Inf(1)))

	zeroMask := hwy.Equal(x, zero)
	negMask := hwy.Less(x, zero)
	oneMask := hwy.Equal(x, one)
	infMask := hwy.Equal(x, posInf)

	e := hwy.GetExponent(x)
	m := hwy.GetMantissa(x)

	// Keep m near 1: for m > sqrt(2) use m/2 and e+1
	mLarge := hwy.Greater(m, hwy.Set(T(logSqrt2)))
	m = hwy.Merge(hwy.Mul(m, hwy.Set(T(0.5))), m, mLarge)
	e = hwy.Merge(hwy.Add(e, one), e, mLarge)

	y := hwy.Div(hwy.Sub(m, one), hwy.Add(m, one))
	y2 := hwy.Mul(y, y)

	poly := hwy.MulAdd(hwy.Set(T(logC5)), y2, hwy.Set(T(logC4)))
	poly = hwy.MulAdd(poly, y2, hwy.Set(T(logC3)))
	poly = hwy.MulAdd(poly, y2, hwy.Set(T(logC2)))
	poly = hwy.MulAdd(poly, y2, one)
	logM := hwy.Mul(hwy.Mul(hwy.Set(T(2)), y), poly)

	ln2Hi := hwy.Set(byType[T](expLn2Hi_f32, expLn2Hi_f64))
	ln2Lo := hwy.Set(byType[T](expLn2Lo_f32, expLn2Lo_f64))
	result := hwy.Add(hwy.MulAdd(e, ln2Hi, logM), hwy.Mul(e, ln2Lo))

	result = hwy.Merge(hwy.Set(T(stdmath.Inf(-1))), result, zeroMask)
	result = hwy.Merge(hwy.Set(T(stdmath.NaN())), result, negMask)
	result = hwy.Merge(zero, result, oneMask)
	result = hwy.Merge(posInf, result, infMask)
	return result
}

// BaseLogPoly computes ln(x) for every element of input.
func BaseLogPoly[T hwy.Floats](input, output []T) {
	algo.BaseApply(input, output, BaseLogVec[T])
}
