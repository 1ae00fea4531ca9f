package tween

import (
	"time"
)

// A Ticker delivers frame-ready signals. The Animator suspends on Tick
// between samples and calls Stop when its run ends.
type Ticker interface {
	Tick() <-chan time.Time
	Stop()
}

// A Platform supplies the Animator's view of the outside world: a clock,
// a per-frame ticker and a way to ask the environment for another frame.
// Injecting it keeps the scheduler deterministic under test.
type Platform interface {
	Now() time.Time
	NewTicker() Ticker
	RequestFrame()
}

// Display is a free-running Platform that fabricates a frame clock from a
// time.Ticker at a fixed refresh interval. RequestFrame is a no-op because
// ticks flow whether or not anyone asks; environments with a real
// compositor supply their own Platform instead.
type Display struct {
	interval time.Duration
}

// NewDisplay creates a Display with the given refresh interval.
func NewDisplay(interval time.Duration) *Display {
	d := new(Display)
	d.interval = interval
	return d
}

func (d *Display) Now() time.Time {
	return time.Now()
}

func (d *Display) NewTicker() Ticker {
	return &displayTicker{ticker: time.NewTicker(d.interval)}
}

func (d *Display) RequestFrame() {}

type displayTicker struct {
	ticker *time.Ticker
}

func (t *displayTicker) Tick() <-chan time.Time {
	return t.ticker.C
}

func (t *displayTicker) Stop() {
	t.ticker.Stop()
}
