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

// transcendentals times the vectorized transcendental kernel against the
// serial one and prints how much faster it is.
//
// Usage:
//
//	transcendentals [--count=N]
//
// The report goes to stdout. Log lines, errors and usage go to stderr.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hwybench/transcendentals/bench"
	"github.com/hwybench/transcendentals/examples/transcendentals"
	"github.com/hwybench/transcendentals/hwy"
)

// session runs one comparison over count elements. Tests replace it.
var session = runSession

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cmd := newRootCmd(stdout, logger)
	cmd.SetArgs(args)
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		logger.Error("transcendentals failed", "err", err)
		return 1
	}
	return 0
}

func newRootCmd(stdout io.Writer, logger *slog.Logger) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "transcendentals",
		Short: "Benchmark a vectorized transcendental kernel against a serial one",
		Long: `Fills a buffer with 1.0 and computes log(exp(v) * exp(2v) * sin(v) * atan(v))
for every element, with the vectorized kernel selected for this CPU and with
the serial standard-library kernel. Each kernel runs several trials and the
fastest is reported together with the mean of its output.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				return fmt.Errorf("invalid --count %d: must be a positive integer", count)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Past validation, failures are not usage problems.
			cmd.SilenceUsage = true
			return session(stdout, logger, count)
		},
	}
	addFlags(cmd.Flags(), &count)
	return cmd
}

func addFlags(flags *pflag.FlagSet, count *int) {
	flags.IntVar(count, "count", bench.DefaultCount, "number of elements per trial")
	flags.SortFlags = false
}

func runSession(stdout io.Writer, logger *slog.Logger, count int) error {
	sw, release, err := bench.NewStopwatch()
	if err != nil {
		return err
	}
	defer release()

	logger.Info("benchmark starting",
		"count", count,
		"trials", bench.DefaultTrials,
		"target", hwy.CurrentName(),
		"unit", sw.Unit())

	input := make([]float32, count)
	for i := range input {
		input[i] = 1
	}

	variants := []bench.Variant[float32]{
		{Name: transcendentals.Name(), Kernel: transcendentals.Transcendental},
		{Name: transcendentals.SerialName, Kernel: transcendentals.TranscendentalSerial},
	}
	runner := bench.NewRunner[float32](sw, bench.WithLogger(logger))
	rep, err := bench.Compare(runner, variants, input, bench.DefaultTrials, len(variants)-1)
	if err != nil {
		return fmt.Errorf("comparing kernels: %w", err)
	}

	logger.Info("benchmark finished", "speedup", rep.Speedup, "fastest", rep.Results[rep.Fastest].Name)
	return rep.Render(stdout)
}
