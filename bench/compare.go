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
	"io"
	"math"
	"text/tabwriter"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/samber/lo"

	"github.com/hwybench/transcendentals/hwy"
)

// Report holds the results of one comparison session, in variant order.
type Report struct {
	Results  []Result
	Baseline int
	// Fastest is the index of the fastest non-baseline variant, or Baseline
	// when it is the only variant.
	Fastest int
	// Speedup is SpeedupOf(Fastest).
	Speedup float64
}

// Compare runs each variant in order over the same input with r and reports
// how the fastest one does against variants[baseline].
//
// Variants run sequentially. The first error aborts the session and no
// partial Report is returned.
func Compare[T hwy.Floats](r *Runner[T], variants []Variant[T], input []T, trials, baseline int) (*Report, error) {
	if len(variants) == 0 {
		return nil, ErrNoVariants
	}
	if baseline < 0 || baseline >= len(variants) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidBaseline, baseline, len(variants))
	}

	fingerprint := checksumBytes(input)
	results := make([]Result, 0, len(variants))
	for _, v := range variants {
		res, err := r.Run(v.Name, v.Kernel, input, trials)
		if err != nil {
			return nil, fmt.Errorf("running %q: %w", v.Name, err)
		}
		if checksumBytes(input) != fingerprint {
			return nil, fmt.Errorf("%w: after %q", ErrInputMutated, v.Name)
		}
		results = append(results, res)
	}

	rep := &Report{Results: results, Baseline: baseline, Fastest: baseline}
	candidates := lo.Filter(lo.Range(len(results)), func(i int, _ int) bool {
		return i != baseline
	})
	if len(candidates) > 0 {
		rep.Fastest = lo.MinBy(candidates, func(a, b int) bool {
			return results[a].Best.Elapsed < results[b].Best.Elapsed
		})
	}
	rep.Speedup = rep.SpeedupOf(rep.Fastest)
	return rep, nil
}

// SpeedupOf returns how many times faster variant i ran than the baseline:
// baseline elapsed over variant elapsed. Two zero readings give 1 and a zero
// variant reading gives +Inf.
func (rep *Report) SpeedupOf(i int) float64 {
	base := rep.Results[rep.Baseline].Best.Elapsed
	elapsed := rep.Results[i].Best.Elapsed
	switch {
	case elapsed == 0 && base == 0:
		return 1
	case elapsed == 0:
		return math.Inf(1)
	}
	return base / elapsed
}

// Render writes one aligned line per variant followed by the speedup
// summary.
func (rep *Report) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for _, res := range rep.Results {
		fmt.Fprintf(tw, "[%s]:\t[%.3f] %s (avg %f)\n", res.Name, res.Best.Elapsed, res.Unit, res.Best.Checksum)
	}
	fmt.Fprintf(tw, "\t(%.2fx speedup from %s)\n", rep.Speedup, rep.Results[rep.Fastest].Name)
	return tw.Flush()
}

// checksumBytes fingerprints the raw bytes of values.
func checksumBytes[T hwy.Floats](values []T) uint64 {
	if len(values) == 0 {
		return xxhash.Sum64(nil)
	}
	size := len(values) * int(unsafe.Sizeof(values[0]))
	return xxhash.Sum64(unsafe.Slice((*byte)(unsafe.Pointer(&values[0])), size))
}
