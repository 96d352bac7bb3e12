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

import (
	"errors"
	"fmt"
	"time"
)

// Stopwatch measures the amount of work done since the last Reset.
// Implementations are stateful and not safe for concurrent use.
type Stopwatch interface {
	// Reset captures a new start reference.
	Reset()
	// Elapsed returns the non-negative amount since the last Reset, in Unit.
	Elapsed() float64
	// Unit names what Elapsed counts, e.g. "ms".
	Unit() string
}

// A Stopwatch whose readings can fail implements Err, returning the first
// failure since it was opened. Runner checks it after every trial.
type errReporter interface {
	Err() error
}

// Clock is a Stopwatch over the monotonic wall clock, in milliseconds.
type Clock struct {
	start time.Time
}

// NewClock returns a Clock started at the current time.
func NewClock() *Clock {
	return &Clock{start: time.Now()}
}

// Reset implements Stopwatch.
func (c *Clock) Reset() {
	c.start = time.Now()
}

// Elapsed implements Stopwatch.
func (c *Clock) Elapsed() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}

// Unit implements Stopwatch.
func (c *Clock) Unit() string { return "ms" }

// NewStopwatch returns the most precise Stopwatch available: the CPU cycle
// counter when the kernel allows it, the monotonic Clock otherwise.
//
// The returned release func must be called when the Stopwatch is no longer
// needed. It is never nil, even on error.
func NewStopwatch() (Stopwatch, func(), error) {
	cc, err := OpenCycleCounter()
	switch {
	case err == nil:
		return cc, func() { _ = cc.Close() }, nil
	case errors.Is(err, ErrCyclesUnavailable):
		return NewClock(), func() {}, nil
	default:
		return nil, func() {}, fmt.Errorf("opening stopwatch: %w", err)
	}
}
