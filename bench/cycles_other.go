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

//go:build !linux

package bench

// CycleCounter is a Stopwatch over the hardware CPU-cycle counter.
// It is only available on Linux.
type CycleCounter struct{}

// OpenCycleCounter always returns ErrCyclesUnavailable on this platform.
func OpenCycleCounter() (*CycleCounter, error) {
	return nil, ErrCyclesUnavailable
}

// Reset implements Stopwatch.
func (c *CycleCounter) Reset() {}

// Elapsed implements Stopwatch.
func (c *CycleCounter) Elapsed() float64 { return 0 }

// Unit implements Stopwatch.
func (c *CycleCounter) Unit() string { return "million cycles" }

// Err always returns nil on this platform.
func (c *CycleCounter) Err() error { return nil }

// Close implements io.Closer.
func (c *CycleCounter) Close() error { return nil }
