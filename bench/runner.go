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
	"fmt"
	"log/slog"
	"math"

	"github.com/hwybench/transcendentals/hwy"
)

const (
	// DefaultTrials is the number of timed trials per variant.
	DefaultTrials = 3

	// DefaultCount is the default number of elements per trial.
	DefaultCount = 1024 * 1024
)

// Measurement is the outcome of one trial.
type Measurement struct {
	// Elapsed is the Stopwatch reading right after the kernel returned.
	Elapsed float64
	// Checksum is the mean of the output elements, NaN for an empty input.
	Checksum float64
}

// Result is the fastest trial of one variant.
type Result struct {
	Name   string
	Best   Measurement
	Unit   string
	Trials int
	Count  int
}

// Option configures a Runner.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger trials are reported to at debug level.
// The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Runner times kernels with one Stopwatch and a reusable output buffer.
// It is not safe for concurrent use.
type Runner[T hwy.Floats] struct {
	sw     Stopwatch
	output []T
	logger *slog.Logger
}

// NewRunner returns a Runner timing with sw.
func NewRunner[T hwy.Floats](sw Stopwatch, opts ...Option) *Runner[T] {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Runner[T]{sw: sw, logger: o.logger}
}

// Unit returns the unit of the Runner's Stopwatch.
func (r *Runner[T]) Unit() string { return r.sw.Unit() }

// Run times kernel over all of input for the given number of trials and
// returns the trial with the least elapsed amount. Ties keep the earlier
// trial. A Stopwatch reporting a failure through Err aborts the run with
// ErrStopwatchFailed.
func (r *Runner[T]) Run(name string, kernel Kernel[T], input []T, trials int) (Result, error) {
	if trials <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidTrials, trials)
	}

	count := len(input)
	if cap(r.output) < count {
		r.output = make([]T, count)
	}
	output := r.output[:count]

	best := Measurement{Elapsed: math.Inf(1), Checksum: math.NaN()}
	for trial := range trials {
		r.sw.Reset()
		kernel(input, output, count)
		elapsed := r.sw.Elapsed()
		if er, ok := r.sw.(errReporter); ok {
			if err := er.Err(); err != nil {
				return Result{}, fmt.Errorf("%w: trial %d of %q: %w", ErrStopwatchFailed, trial+1, name, err)
			}
		}

		checksum := mean(output)
		r.logger.Debug("trial finished",
			"variant", name,
			"trial", trial+1,
			"elapsed", elapsed,
			"checksum", checksum)

		if elapsed < best.Elapsed {
			best = Measurement{Elapsed: elapsed, Checksum: checksum}
		}
	}

	return Result{
		Name:   name,
		Best:   best,
		Unit:   r.sw.Unit(),
		Trials: trials,
		Count:  count,
	}, nil
}

// mean returns the average of values accumulated in float64, or NaN when
// values is empty.
func mean[T hwy.Floats](values []T) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	return sum / float64(len(values))
}
