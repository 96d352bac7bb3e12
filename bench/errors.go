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

import "errors"

var (
	// ErrInvalidTrials is returned by Run when trials is not positive.
	ErrInvalidTrials = errors.New("bench: trials must be positive")

	// ErrNoVariants is returned by Compare when there is nothing to compare.
	ErrNoVariants = errors.New("bench: no variants to compare")

	// ErrInvalidBaseline is returned by Compare when the baseline index does
	// not name a variant.
	ErrInvalidBaseline = errors.New("bench: baseline index out of range")

	// ErrInputMutated is returned by Compare when a kernel wrote to its input.
	ErrInputMutated = errors.New("bench: input changed during comparison")

	// ErrStopwatchFailed is returned by Run when the Stopwatch could not be
	// reset or read, so the trial has no valid reading.
	ErrStopwatchFailed = errors.New("bench: stopwatch failed")

	// ErrCyclesUnavailable is returned by OpenCycleCounter when the hardware
	// cycle counter cannot be used on this system.
	ErrCyclesUnavailable = errors.New("bench: cpu cycle counter unavailable")
)
