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

// Package bench times elementwise kernels and compares variants.
//
// A Runner owns a Stopwatch and an output buffer. Run invokes a Kernel over
// the input for a number of trials and keeps the fastest one together with
// the mean of the output it produced:
//
//	sw, release, err := bench.NewStopwatch()
//	if err != nil {
//		return err
//	}
//	defer release()
//
//	runner := bench.NewRunner[float32](sw)
//	report, err := bench.Compare(runner, variants, input, bench.DefaultTrials, len(variants)-1)
//	if err != nil {
//		return err
//	}
//	report.Render(os.Stdout)
//
// A Runner and its Stopwatch are not safe for concurrent use. Independent
// sessions with their own Runner and Stopwatch may run in parallel.
package bench
