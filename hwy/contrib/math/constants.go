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

import "github.com/hwybench/transcendentals/hwy"

// Exp constants
const (
	expLn2Hi_f32 float32 = 0.693359375
	expLn2Lo_f32 float32 = -2.12194440e-4
	expLn2Hi_f64 float64 = 0.6931471803691238
	expLn2Lo_f64 float64 = 1.9082149292705877e-10
	expInvLn2    float64 = 1.44269504088896341

	expOverflow_f32  float32 = 88.72283905206835
	expUnderflow_f32 float32 = -87.33654475055310
	expOverflow_f64  float64 = 709.782712893384
	expUnderflow_f64 float64 = -708.3964185322641

	// Taylor series: 1 + r + r²/2! + r³/3! + r⁴/4! + r⁵/5! + r⁶/6!
	expC2 float64 = 0.5
	expC3 float64 = 0.16666666666666666
	expC4 float64 = 0.041666666666666664
	expC5 float64 = 0.008333333333333333
	expC6 float64 = 0.001388888888888889
)

// Log constants
const (
	// log(m) = 2*atanh(y) = 2*y*(1 + y²/3 + y⁴/5 + y⁶/7 + y⁸/9), y = (m-1)/(m+1)
	logC2 float64 = 0.3333333333333367565
	logC3 float64 = 0.1999999999970470954
	logC4 float64 = 0.1428571437183119574
	logC5 float64 = 0.1111109921607489198

	logSqrt2 float64 = 1.414
)

// Trig constants
const (
	trig2OverPi   float64 = 0.6366197723675814
	trigPiOver2Hi float64 = 1.5707963267948966
	trigPiOver2Lo float64 = 6.123233995736766e-17

	// π/2 split into three float32 parts; the first two have few enough
	// significant bits that k*part is exact for moderate k.
	trigPiOver2A_32 float32 = 1.5703125
	trigPiOver2B_32 float32 = 4.837512969970703125e-4
	trigPiOver2C_32 float32 = 7.54978995489188216e-8

	// sin(r) ≈ r * (1 + s1*r² + s2*r⁴ + s3*r⁶ + s4*r⁸) for |r| <= π/4
	trigS1 float64 = -0.16666666641626524
	trigS2 float64 = 0.008333329385889463
	trigS3 float64 = -0.00019839334836096632
	trigS4 float64 = 2.718311493989822e-6

	// cos(r) ≈ 1 + c1*r² + c2*r⁴ + c3*r⁶ + c4*r⁸ for |r| <= π/4
	trigC1 float64 = -0.4999999963229337
	trigC2 float64 = 0.04166662453689337
	trigC3 float64 = -0.001388731625493765
	trigC4 float64 = 2.443315711809948e-5
)

// Atan constants
const (
	atanPiOver2    float64 = 1.5707963267948966
	atanPiOver4    float64 = 0.7853981633974483
	atanTanPiOver8 float64 = 0.4142135623730950488 // sqrt(2) - 1

	atanC1 float64 = -0.3333333333
	atanC2 float64 = 0.2
	atanC3 float64 = -0.1428571429
	atanC4 float64 = 0.1111111111
	atanC5 float64 = -0.0909090909
)

// byType returns c32 for float32 lanes and c64 otherwise.
func byType[T hwy.Floats](c32 float32, c64 float64) T {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return T(c32)
	}
	return T(c64)
}
