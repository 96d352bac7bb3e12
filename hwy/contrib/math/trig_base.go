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
	"github.com/hwybench/transcendentals/hwy"
	"github.com/hwybench/transcendentals/hwy/contrib/algo"
)

// BaseSinVec computes sin(x) for a single vector.
//
// Uses Cody-Waite range reduction by π/2 and selects between the sin and cos
// polynomials by quadrant:
//   - 0: sin(r)
//   - 1: cos(r)
//   - 2: -sin(r)
//   - 3: -cos(r)
//
// The quadrant is computed as k - 4*floor(k/4) on the float lanes, which is
// exact while |k| < 2^24.
func BaseSinVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	piOver2A := hwy.Set(byType[T](trigPiOver2A_32, trigPiOver2Hi))
	piOver2B := hwy.Set(byType[T](trigPiOver2B_32, trigPiOver2Lo))
	piOver2C := hwy.Set(byType[T](trigPiOver2C_32, 0))
	one := hwy.Set(T(1))

	k := hwy.RoundToEven(hwy.Mul(x, hwy.Set(T(trig2OverPi))))
	r := hwy.Sub(x, hwy.Mul(k, piOver2A))
	r = hwy.Sub(r, hwy.Mul(k, piOver2B))
	r = hwy.Sub(r, hwy.Mul(k, piOver2C))
	r2 := hwy.Mul(r, r)

	sinPoly := hwy.MulAdd(hwy.Set(T(trigS4)), r2, hwy.Set(T(trigS3)))
	sinPoly = hwy.MulAdd(sinPoly, r2, hwy.Set(T(trigS2)))
	sinPoly = hwy.MulAdd(sinPoly, r2, hwy.Set(T(trigS1)))
	sinPoly = hwy.MulAdd(sinPoly, r2, one)
	sinR := hwy.Mul(r, sinPoly)

	cosPoly := hwy.MulAdd(hwy.Set(T(trigC4)), r2, hwy.Set(T(trigC3)))
	cosPoly = hwy.MulAdd(cosPoly, r2, hwy.Set(T(trigC2)))
	cosPoly = hwy.MulAdd(cosPoly, r2, hwy.Set(T(trigC1)))
	cosR := hwy.MulAdd(cosPoly, r2, one)

	four := hwy.Set(T(4))
	quadrant := hwy.Sub(k, hwy.Mul(four, hwy.Floor(hwy.Div(k, four))))

	useCosMask := hwy.Equal(quadrant, one).Or(hwy.Equal(quadrant, hwy.Set(T(3))))
	negateMask := hwy.Greater(quadrant, hwy.Set(T(1.5)))

	result := hwy.Merge(cosR, sinR, useCosMask)
	result = hwy.Merge(hwy.Neg(result), result, negateMask)
	return result
}

// BaseSinPoly computes sin(x) for every element of input.
func BaseSinPoly[T hwy.Floats](input, output []T) {
	algo.BaseApply(input, output, BaseSinVec[T])
}
