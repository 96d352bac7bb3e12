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

package algo

import "github.com/hwybench/transcendentals/hwy"

// VecFunc transforms one vector. It must preserve the lane count of its
// argument so a short tail vector stays short.
type VecFunc[T hwy.Floats] func(hwy.Vec[T]) hwy.Vec[T]

// BaseApply transforms in to out using fn, one vector at a time.
// Only the first min(len(in), len(out)) elements are processed.
//
// The final partial vector is loaded short rather than padded, so no scalar
// fallback and no scratch buffer are needed.
//
// Example usage:
//
//	algo.BaseApply(input, output, math.BaseExpVec[float32])
func BaseApply[T hwy.Floats](in, out []T, fn VecFunc[T]) {
	n := min(len(in), len(out))
	lanes := hwy.MaxLanes[T]()

	for i := 0; i < n; i += lanes {
		x := hwy.Load(in[i:n])
		hwy.Store(fn(x), out[i:n])
	}
}
