//go:build linux

package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycleCounterLatchesFailure(t *testing.T) {
	c := &CycleCounter{fd: -1}
	require.NoError(t, c.Err())

	c.Reset()
	first := c.Err()
	require.Error(t, first)
	assert.Contains(t, first.Error(), "resetting cycle counter")

	assert.Equal(t, 0.0, c.Elapsed())
	assert.Same(t, first, c.Err(), "the first failure is kept")
}

func TestCycleCounterReadFailure(t *testing.T) {
	c := &CycleCounter{fd: -1}

	assert.Equal(t, 0.0, c.Elapsed())
	require.Error(t, c.Err())
	assert.Contains(t, c.Err().Error(), "reading cycle counter")
}
