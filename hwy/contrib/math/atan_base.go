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

// BaseAtanVec computes atan(x) for a single vector.
//
// Two levels of range reduction bring the argument to |z| <= tan(π/8):
//   - |x| > 1: atan(x) = π/2 - atan(1/x)
//   - z > tan(π/8): atan(z) = π/4 + atan((z-1)/(z+1))
//
// The polynomial stops at z¹¹, leaving up to about 1e-6 absolute error for
// float64 lanes.
func BaseAtanVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Set(T(1))

	absX := hwy.Abs(x)
	signMask := hwy.Less(x, hwy.Zero[T]())

	useReciprocalMask := hwy.Greater(absX, one)
	reduced := hwy.Merge(hwy.Div(one, absX), absX, useReciprocalMask)

	useIdentityMask := hwy.Greater(reduced, hwy.Set(T(atanTanPiOver8)))
	transformed := hwy.Div(hwy.Sub(reduced, one), hwy.Add(reduced, one))
	reduced = hwy.Merge(transformed, reduced, useIdentityMask)

	z2 := hwy.Mul(reduced, reduced)
	poly := hwy.MulAdd(hwy.Set(T(atanC5)), z2, hwy.Set(T(atanC4)))
	poly = hwy.MulAdd(poly, z2, hwy.Set(T(atanC3)))
	poly = hwy.MulAdd(poly, z2, hwy.Set(T(atanC2)))
	poly = hwy.MulAdd(poly, z2, hwy.Set(T(atanC1)))
	poly = hwy.MulAdd(poly, z2, one)
	atanCore := hwy.Mul(reduced, poly)

	atanReduced := hwy.Merge(hwy.Add(hwy.Set(T(atanPiOver4)), atanCore), atanCore, useIdentityMask)
	resultAbs := hwy.Merge(hwy.Sub(hwy.Set(T(atanPiOver2)), atanReduced), atanReduced, useReciprocalMask)

	return hwy.Merge(hwy.Neg(resultAbs), resultAbs, signMask)
}

// BaseAtanPoly computes atan(x) for every element of input.
func BaseAtanPoly[T hwy.Floats](input, output []T) {
	algo.BaseApply(input, output, BaseAtanVec[T])
}
