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

// Package algo provides slice-level drivers for vector functions.
//
// BaseApply walks a slice in hwy.MaxLanes steps and hands each vector to a
// VecFunc. Fused kernels compose several vector functions inside one VecFunc
// so intermediates stay in registers rather than round-tripping through
// memory:
//
//	algo.BaseApply(input, output, func(v hwy.Vec[float32]) hwy.Vec[float32] {
//		return math.BaseLogVec(math.BaseExpVec(v))
//	})
package algo
