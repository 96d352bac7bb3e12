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

//go:build linux

package bench

import (
	"encoding/binary"
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// CycleCounter is a Stopwatch over the hardware CPU-cycle counter of the
// calling OS thread, in millions of cycles.
//
// OpenCycleCounter pins the calling goroutine to its OS thread so the
// counter keeps following the goroutine that runs the kernels. Close must be
// called from the same goroutine.
type CycleCounter struct {
	fd  int
	buf [8]byte
	err error
}

// OpenCycleCounter opens a per-thread cycle counter with perf_event_open.
// It returns an error wrapping ErrCyclesUnavailable when the kernel refuses
// the event, which is common in containers and with a restrictive
// kernel.perf_event_paranoid.
func OpenCycleCounter() (*CycleCounter, error) {
	attr := unix.PerfEventAttr{
		Type:   unix.PERF_TYPE_HARDWARE,
		Config: unix.PERF_COUNT_HW_CPU_CYCLES,
		Bits:   unix.PerfBitExcludeKernel | unix.PerfBitExcludeHv,
	}
	attr.Size = uint32(unsafe.Sizeof(attr))

	runtime.LockOSThread()
	// pid 0 and cpu -1 count the calling thread on any CPU
	fd, err := unix.PerfEventOpen(&attr, 0, -1, -1, unix.PERF_FLAG_FD_CLOEXEC)
	if err != nil {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("%w: perf_event_open: %v", ErrCyclesUnavailable, err)
	}

	c := &CycleCounter{fd: fd}
	if _, err := unix.Read(fd, c.buf[:]); err != nil {
		_ = unix.Close(fd)
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("%w: reading counter: %v", ErrCyclesUnavailable, err)
	}
	return c, nil
}

// Reset implements Stopwatch. A failed reset is reported by Err.
func (c *CycleCounter) Reset() {
	if err := unix.IoctlSetInt(c.fd, unix.PERF_EVENT_IOC_RESET, 0); err != nil {
		c.fail(fmt.Errorf("resetting cycle counter: %w", err))
	}
}

// Elapsed implements Stopwatch. A failed read reports 0 and is reported by
// Err.
func (c *CycleCounter) Elapsed() float64 {
	n, err := unix.Read(c.fd, c.buf[:])
	switch {
	case err != nil:
		c.fail(fmt.Errorf("reading cycle counter: %w", err))
		return 0
	case n != len(c.buf):
		c.fail(fmt.Errorf("reading cycle counter: short read of %d bytes", n))
		return 0
	}
	return float64(binary.NativeEndian.Uint64(c.buf[:])) / 1e6
}

// Err returns the first Reset or Elapsed failure, or nil.
func (c *CycleCounter) Err() error { return c.err }

func (c *CycleCounter) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// Unit implements Stopwatch.
func (c *CycleCounter) Unit() string { return "million cycles" }

// Close releases the counter and unpins the goroutine.
func (c *CycleCounter) Close() error {
	defer runtime.UnlockOSThread()
	return unix.Close(c.fd)
}
