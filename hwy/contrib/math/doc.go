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

// Package math provides SIMD transcendental functions built from range
// reduction and polynomial approximation.
//
// # Vector Functions
//
// Portable functions operate on one hwy.Vec at a time and compose without
// allocating, which makes them suitable for fused kernels:
//   - BaseExpVec(x Vec[T]) Vec[T] - e^x
//   - BaseLogVec(x Vec[T]) Vec[T] - ln(x)
//   - BaseSinVec(x Vec[T]) Vec[T] - sin(x)
//   - BaseAtanVec(x Vec[T]) Vec[T] - atan(x)
//
// # Slice Functions
//
// BaseExpPoly, BaseLogPoly, BaseSinPoly and BaseAtanPoly apply the vector
// functions over whole slices, including a ragged tail.
//
// # AVX2 Functions
//
// With GOEXPERIMENT=simd on amd64 the same algorithms are available over
// archsimd.Float32x8:
//   - Exp_AVX2_F32x8, Log_AVX2_F32x8, Sin_AVX2_F32x8, Atan_AVX2_F32x8
//
// # Accuracy
//
// Polynomials are sized for float32. Results are within a few ULP of the
// standard library for float32. Float64 lanes run the same polynomials, so
// they gain range but not precision: expect errors up to about 1e-6
// (absolute below 1, relative above), far from full double precision. Atan
// has the largest error, Log and Sin the smallest.
//
// Denormal inputs to Log give the same results on every dispatch target.
//
// Special values: Exp overflows to +Inf and underflows to 0, Log returns -Inf
// for 0, NaN for negative inputs and +Inf for +Inf. NaN propagates.
package math
