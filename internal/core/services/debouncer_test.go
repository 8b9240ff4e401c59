package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_CollapsesBursts(t *testing.T) {
	clk := newFakeClock()
	calls := 0
	d := NewDebouncer(clk, 300*time.Millisecond, func() { calls++ })

	for i := 0; i < 5; i++ {
		d.Schedule()
		clk.Advance(100 * time.Millisecond)
	}
	assert.Zero(t, calls)
	assert.True(t, d.Pending())

	clk.Advance(300 * time.Millisecond)
	assert.Equal(t, 1, calls)
	assert.False(t, d.Pending())
}

func TestDebouncer_Cancel(t *testing.T) {
	clk := newFakeClock()
	calls := 0
	d := NewDebouncer(clk, 300*time.Millisecond, func() { calls++ })

	d.Schedule()
	d.Cancel()
	clk.Advance(time.Second)

	assert.Zero(t, calls)
	assert.False(t, d.Pending())
}

func TestDebouncer_Stop(t *testing.T) {
	clk := newFakeClock()
	calls := 0
	d := NewDebouncer(clk, 300*time.Millisecond, func() { calls++ })

	d.Schedule()
	d.Stop()
	d.Schedule()
	clk.Advance(time.Second)

	assert.Zero(t, calls)
}

func TestDebouncer_StaleCallbackDropped(t *testing.T) {
	clk := newFakeClock()
	calls := 0
	d := NewDebouncer(clk, 300*time.Millisecond, func() { calls++ })

	d.Schedule()
	gen := d.gen
	d.Schedule()

	// A callback from the superseded timer that already escaped Stop.
	d.fire(gen)
	assert.Zero(t, calls)

	clk.Advance(300 * time.Millisecond)
	assert.Equal(t, 1, calls)
}
