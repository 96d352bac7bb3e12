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

package bench

import "github.com/hwybench/transcendentals/hwy"

// Kernel computes an elementwise transform of input[:count] into
// output[:count].
//
// Callers guarantee len(input) >= count, len(output) >= count and that the
// two slices do not overlap. A Kernel overwrites output[:count] without
// reading it first and never writes to input.
type Kernel[T hwy.Floats] func(input, output []T, count int)

// Variant is a named Kernel taking part in a comparison.
type Variant[T hwy.Floats] struct {
	Name   string
	Kernel Kernel[T]
}
