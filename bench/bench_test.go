package bench

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// scriptedStopwatch returns the next reading from readings on every Elapsed
// call and repeats the last one once they run out.
type scriptedStopwatch struct {
	readings []float64
	calls    int
	resets   int
}

func (s *scriptedStopwatch) Reset() { s.resets++ }

func (s *scriptedStopwatch) Elapsed() float64 {
	i := min(s.calls, len(s.readings)-1)
	s.calls++
	return s.readings[i]
}

func (s *scriptedStopwatch) Unit() string { return "ticks" }

func fill(n int, v float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func doubleKernel(input, output []float32, count int) {
	for i := range count {
		output[i] = 2 * input[i]
	}
}

// trialKernel writes the trial number to every output, so the checksum
// identifies which trial was kept.
func trialKernel() Kernel[float32] {
	trial := 0
	return func(input, output []float32, count int) {
		trial++
		for i := range count {
			output[i] = float32(trial)
		}
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunKeepsStrictMinimum(t *testing.T) {
	tests := []struct {
		name          string
		readings      []float64
		wantElapsed   float64
		wantTrialKept float64
	}{
		{"decreasing", []float64{3, 2, 1}, 1, 3},
		{"increasing", []float64{1, 2, 3}, 1, 1},
		{"middle", []float64{5, 2, 4}, 2, 2},
		{"tie keeps first", []float64{2, 1, 1}, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sw := &scriptedStopwatch{readings: tt.readings}
			r := NewRunner[float32](sw, WithLogger(quietLogger()))

			res, err := r.Run("k", trialKernel(), fill(4, 0), len(tt.readings))
			require.NoError(t, err)

			assert.Equal(t, tt.wantElapsed, res.Best.Elapsed)
			assert.Equal(t, tt.wantTrialKept, res.Best.Checksum)
			assert.Equal(t, len(tt.readings), sw.resets)
			assert.Equal(t, "ticks", res.Unit)
			assert.Equal(t, 4, res.Count)
			assert.Equal(t, len(tt.readings), res.Trials)
		})
	}
}

func TestRunInvalidTrials(t *testing.T) {
	r := NewRunner[float32](&scriptedStopwatch{readings: []float64{1}})
	called := false
	kernel := func(input, output []float32, count int) { called = true }

	for _, trials := range []int{0, -1} {
		_, err := r.Run("k", kernel, fill(4, 1), trials)
		require.ErrorIs(t, err, ErrInvalidTrials)
	}
	assert.False(t, called, "kernel must not run with invalid trials")
}

func TestRunEmptyInput(t *testing.T) {
	r := NewRunner[float32](NewClock())
	res, err := r.Run("empty", doubleKernel, nil, 2)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(res.Best.Checksum), "checksum of no data = %v, want NaN", res.Best.Checksum)
	assert.GreaterOrEqual(t, res.Best.Elapsed, 0.0)
	assert.Equal(t, 0, res.Count)
}

func TestRunChecksum(t *testing.T) {
	r := NewRunner[float32](NewClock())
	input := []float32{1, 2, 3, 4}

	first, err := r.Run("double", doubleKernel, input, 3)
	require.NoError(t, err)
	second, err := r.Run("double", doubleKernel, input, 3)
	require.NoError(t, err)

	assert.Equal(t, 5.0, first.Best.Checksum)
	assert.Equal(t, first.Best.Checksum, second.Best.Checksum)
	assert.GreaterOrEqual(t, first.Best.Elapsed, 0.0)
}

func TestRunReusesOutput(t *testing.T) {
	r := NewRunner[float32](NewClock())
	var seen []*float32
	kernel := func(input, output []float32, count int) {
		seen = append(seen, &output[0])
		doubleKernel(input, output, count)
	}

	_, err := r.Run("a", kernel, fill(16, 1), 2)
	require.NoError(t, err)
	_, err = r.Run("b", kernel, fill(8, 1), 1)
	require.NoError(t, err)

	require.Len(t, seen, 3)
	assert.Same(t, seen[0], seen[1])
	assert.Same(t, seen[0], seen[2])
}

func TestRunLogsTrials(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := NewRunner[float32](&scriptedStopwatch{readings: []float64{1}}, WithLogger(logger))

	_, err := r.Run("logged", doubleKernel, fill(2, 1), 2)
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "trial finished"))
	assert.Contains(t, out, "variant=logged")
	assert.Contains(t, out, "trial=2")
	assert.Contains(t, out, "checksum=2")
}

// brokenStopwatch reads 0 and starts failing after ok successful readings.
type brokenStopwatch struct {
	ok    int
	calls int
	err   error
}

func (s *brokenStopwatch) Reset() {}

func (s *brokenStopwatch) Elapsed() float64 {
	s.calls++
	if s.calls > s.ok && s.err == nil {
		s.err = errors.New("counter gone")
	}
	return 0
}

func (s *brokenStopwatch) Unit() string { return "ticks" }

func (s *brokenStopwatch) Err() error { return s.err }

func TestRunStopwatchFailure(t *testing.T) {
	sw := &brokenStopwatch{ok: 1}
	r := NewRunner[float32](sw, WithLogger(quietLogger()))

	_, err := r.Run("double", doubleKernel, fill(4, 1), 3)
	require.ErrorIs(t, err, ErrStopwatchFailed)
	assert.Contains(t, err.Error(), "trial 2")
	assert.Contains(t, err.Error(), "counter gone")
	assert.Equal(t, 2, sw.calls, "no trial may run after a failed reading")
}

func TestCompareStopsOnStopwatchFailure(t *testing.T) {
	sw := &brokenStopwatch{ok: 1}
	r := NewRunner[float32](sw, WithLogger(quietLogger()))
	variants := []Variant[float32]{
		{Name: "vectorized", Kernel: doubleKernel},
		{Name: "serial", Kernel: doubleKernel},
	}

	rep, err := Compare(r, variants, fill(4, 1), 1, 1)
	require.ErrorIs(t, err, ErrStopwatchFailed)
	assert.Nil(t, rep, "no speedup may be reported from failed readings")
	assert.Contains(t, err.Error(), `"serial"`)
}

func TestCompareErrors(t *testing.T) {
	r := NewRunner[float32](&scriptedStopwatch{readings: []float64{1}})
	input := fill(4, 1)
	variants := []Variant[float32]{{Name: "double", Kernel: doubleKernel}}

	_, err := Compare(r, nil, input, 1, 0)
	assert.ErrorIs(t, err, ErrNoVariants)

	for _, baseline := range []int{-1, 1} {
		rep, err := Compare(r, variants, input, 1, baseline)
		assert.ErrorIs(t, err, ErrInvalidBaseline)
		assert.Nil(t, rep)
	}

	rep, err := Compare(r, variants, input, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidTrials)
	assert.Nil(t, rep)
}

func TestCompareDetectsInputMutation(t *testing.T) {
	r := NewRunner[float32](&scriptedStopwatch{readings: []float64{1}})
	mutating := func(input, output []float32, count int) {
		input[0]++
		doubleKernel(input, output, count)
	}
	variants := []Variant[float32]{
		{Name: "double", Kernel: doubleKernel},
		{Name: "mutating", Kernel: mutating},
	}

	rep, err := Compare(r, variants, fill(4, 1), 1, 0)
	require.ErrorIs(t, err, ErrInputMutated)
	assert.Nil(t, rep)
	assert.Contains(t, err.Error(), "mutating")
}

func TestCompareSpeedup(t *testing.T) {
	// Three variants, one trial each: fast, medium, then the baseline.
	sw := &scriptedStopwatch{readings: []float64{2, 5, 10}}
	r := NewRunner[float32](sw, WithLogger(quietLogger()))
	variants := []Variant[float32]{
		{Name: "fast", Kernel: doubleKernel},
		{Name: "medium", Kernel: doubleKernel},
		{Name: "serial", Kernel: doubleKernel},
	}

	rep, err := Compare(r, variants, fill(8, 1), 1, 2)
	require.NoError(t, err)

	require.Len(t, rep.Results, 3)
	for i, v := range variants {
		assert.Equal(t, v.Name, rep.Results[i].Name)
	}
	assert.Equal(t, 0, rep.Fastest)
	assert.Equal(t, 5.0, rep.Speedup)
	assert.Equal(t, 2.0, rep.SpeedupOf(1))
	assert.Equal(t, 1.0, rep.SpeedupOf(2))
}

func TestCompareAgainstItself(t *testing.T) {
	sw := &scriptedStopwatch{readings: []float64{4}}
	r := NewRunner[float32](sw)
	variants := []Variant[float32]{
		{Name: "a", Kernel: doubleKernel},
		{Name: "a again", Kernel: doubleKernel},
	}

	rep, err := Compare(r, variants, fill(8, 1), 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, rep.Speedup)
	assert.Equal(t, rep.Results[0].Best.Checksum, rep.Results[1].Best.Checksum)
}

func TestCompareBaselineOnly(t *testing.T) {
	r := NewRunner[float32](&scriptedStopwatch{readings: []float64{3}})
	rep, err := Compare(r, []Variant[float32]{{Name: "only", Kernel: doubleKernel}}, fill(2, 1), 1, 0)
	require.NoError(t, err)

	assert.Equal(t, 0, rep.Fastest)
	assert.Equal(t, 1.0, rep.Speedup)
}

func TestSpeedupZeroReadings(t *testing.T) {
	rep := &Report{
		Results: []Result{
			{Best: Measurement{Elapsed: 0}},
			{Best: Measurement{Elapsed: 0}},
			{Best: Measurement{Elapsed: 3}},
		},
		Baseline: 1,
	}
	assert.Equal(t, 1.0, rep.SpeedupOf(0))
	assert.Equal(t, 0.0, rep.SpeedupOf(2))

	rep.Baseline = 2
	assert.True(t, math.IsInf(rep.SpeedupOf(0), 1))
}

func TestRender(t *testing.T) {
	rep := &Report{
		Results: []Result{
			{Name: "vectorized", Best: Measurement{Elapsed: 1.5, Checksum: 2.5}, Unit: "ms"},
			{Name: "serial", Best: Measurement{Elapsed: 6, Checksum: 2.5}, Unit: "ms"},
		},
		Baseline: 1,
		Fastest:  0,
		Speedup:  4,
	}

	var buf bytes.Buffer
	require.NoError(t, rep.Render(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "[vectorized]: [1.500] ms (avg 2.500000)", lines[0])
	assert.Equal(t, "[serial]:     [6.000] ms (avg 2.500000)", lines[1])
	assert.Equal(t, "              (4.00x speedup from vectorized)", lines[2])
}

func TestConcurrentSessions(t *testing.T) {
	var g errgroup.Group
	results := make([]Result, 4)

	for i := range results {
		g.Go(func() error {
			r := NewRunner[float32](NewClock(), WithLogger(quietLogger()))
			res, err := r.Run("double", doubleKernel, fill(1024, float32(i)), DefaultTrials)
			results[i] = res
			return err
		})
	}
	require.NoError(t, g.Wait())

	for i, res := range results {
		assert.Equal(t, float64(2*i), res.Best.Checksum)
	}
}

func TestNewStopwatch(t *testing.T) {
	sw, release, err := NewStopwatch()
	require.NoError(t, err)
	require.NotNil(t, release)
	defer release()

	assert.Contains(t, []string{"ms", "million cycles"}, sw.Unit())
	sw.Reset()
	assert.GreaterOrEqual(t, sw.Elapsed(), 0.0)
}

func TestClock(t *testing.T) {
	c := NewClock()
	c.Reset()
	first := c.Elapsed()
	second := c.Elapsed()

	assert.GreaterOrEqual(t, first, 0.0)
	assert.GreaterOrEqual(t, second, first)
	assert.Equal(t, "ms", c.Unit())
}

func TestOpenCycleCounter(t *testing.T) {
	cc, err := OpenCycleCounter()
	if errors.Is(err, ErrCyclesUnavailable) {
		t.Skipf("cycle counter unavailable: %v", err)
	}
	require.NoError(t, err)
	defer cc.Close()

	cc.Reset()
	x := 0.0
	for i := range 100000 {
		x += math.Sqrt(float64(i))
	}
	assert.Greater(t, cc.Elapsed(), 0.0, "no cycles counted computing %v", x)
	assert.NoError(t, cc.Err())
	assert.Equal(t, "million cycles", cc.Unit())
}

func TestChecksumBytes(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{1, 2, 3}
	assert.Equal(t, checksumBytes(a), checksumBytes(b))

	b[2] = 4
	assert.NotEqual(t, checksumBytes(a), checksumBytes(b))
	assert.NotEqual(t, checksumBytes(a), checksumBytes(a[:2]))
	assert.Equal(t, checksumBytes[float64](nil), checksumBytes([]float64{}))
}

func BenchmarkRun(b *testing.B) {
	r := NewRunner[float32](NewClock(), WithLogger(quietLogger()))
	input := fill(4096, 1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := r.Run("double", doubleKernel, input, 1); err != nil {
			b.Fatal(err)
		}
	}
}
