package tween

import (
	"sync"
	"time"
)

// Direction controls which way an animation plays through its timeline.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Context carries the configuration a timeline builder can set while it
// runs: whether the animation starts on its own and which way it plays
// first. It is consumed once, when the builder returns.
type Context struct {
	autoStart bool
	direction Direction
}

// AutoStart makes the animator begin a run as soon as it is built.
func (c *Context) AutoStart(on bool) *Context {
	c.autoStart = on
	return c
}

// StartingDirection sets the direction the first run plays in.
func (c *Context) StartingDirection(d Direction) *Context {
	c.direction = d
	return c
}

// An Animator owns the live state of one animation: the current value, the
// running flag and the direction. It samples its timeline once per frame
// tick, driven by the Platform's frame clock, and is the only writer of the
// value; everyone else reads through Value or an OnChange listener.
//
// At most one tick loop is active per Animator. A direction change while
// running is absorbed by the live loop, which re-anchors at the current
// offset so the animation reverses from wherever it is.
type Animator[O any] struct {
	platform Platform

	mu        sync.Mutex
	timeline  AnimatedValue[O]
	value     O
	direction Direction
	running   bool
	stop      chan struct{}
	closed    bool

	listeners  map[int]func(O)
	listenerID int
}

type validated interface {
	Err() error
}

// NewAnimator evaluates build once and wires the resulting timeline to the
// platform's frame clock. The value is seeded at the starting anchor. If
// the timeline failed validation the error is returned and no animator is
// produced.
func NewAnimator[O any](platform Platform, build func(*Context) AnimatedValue[O]) (*Animator[O], error) {
	ctx := new(Context)
	timeline := build(ctx)
	if v, ok := timeline.(validated); ok {
		if err := v.Err(); err != nil {
			return nil, err
		}
	}

	a := new(Animator[O])
	a.platform = platform
	a.timeline = timeline
	a.direction = ctx.direction
	a.value = timeline.Calc(anchorIndex(ctx.direction, timeline.Duration()))
	a.listeners = make(map[int]func(O))

	if ctx.autoStart {
		a.Run(ctx.direction)
	}
	return a, nil
}

func anchorIndex(d Direction, total uint32) uint32 {
	if d == Backward {
		return total
	}
	return 0
}

// Run starts playing in the given direction. While a run is active this
// only updates the requested direction: the live loop notices a change and
// continues from its current position, and an unchanged direction is a
// no-op. A new loop is only spawned from the idle state.
func (a *Animator[O]) Run(direction Direction) {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.direction = direction
	if a.running {
		a.mu.Unlock()
		return
	}
	a.running = true
	stop := make(chan struct{})
	a.stop = stop
	timeline := a.timeline
	// The start instant belongs to the Run call, not to whenever the
	// loop goroutine gets scheduled; time that passes in between counts.
	start := a.platform.Now()
	a.mu.Unlock()

	go a.animate(timeline, direction, start, stop)
}

func (a *Animator[O]) animate(timeline AnimatedValue[O], direction Direction, start time.Time, stop chan struct{}) {
	total := int64(timeline.Duration())
	anchor := int64(anchorIndex(direction, timeline.Duration()))

	ticker := a.platform.NewTicker()
	defer ticker.Stop()

	last := direction
	a.platform.RequestFrame()

	for {
		select {
		case <-stop:
			return
		case <-ticker.Tick():
		}
		a.platform.RequestFrame()

		a.mu.Lock()
		if a.stop != stop {
			// Superseded or cancelled; publish nothing more.
			a.mu.Unlock()
			return
		}

		now := a.platform.Now()
		direction := a.direction
		if direction != last {
			anchor = clampOffset(offsetAt(last, anchor, now.Sub(start)), total)
			start = now
			last = direction
		}

		offset := offsetAt(direction, anchor, now.Sub(start))
		finished := (direction == Forward && offset >= total) ||
			(direction == Backward && offset <= 0)
		a.value = timeline.Calc(uint32(clampOffset(offset, total)))
		if finished {
			a.running = false
			a.stop = nil
		}
		value := a.value
		fns := a.snapshotListeners()
		a.mu.Unlock()

		for _, fn := range fns {
			fn(value)
		}
		if finished {
			return
		}
	}
}

// offsetAt measures the timeline offset reached after elapsed real time,
// counted from anchor in the given direction. Backward runs go negative
// once they pass the start; the caller treats that as the zero boundary.
func offsetAt(direction Direction, anchor int64, elapsed time.Duration) int64 {
	ms := elapsed.Milliseconds()
	if direction == Backward {
		return anchor - ms
	}
	return anchor + ms
}

func clampOffset(offset, total int64) int64 {
	if offset < 0 {
		return 0
	}
	if offset > total {
		return total
	}
	return offset
}

// Value returns the most recently published sample. Safe to call from any
// goroutine, including before the first run.
func (a *Animator[O]) Value() O {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.value
}

// IsRunning reports whether a tick loop is active.
func (a *Animator[O]) IsRunning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// Direction returns the most recently requested direction.
func (a *Animator[O]) Direction() Direction {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.direction
}

// OnChange registers fn to be called with each published sample. It
// returns a function that removes the listener. Listeners run on the tick
// loop's goroutine, outside the animator's lock.
func (a *Animator[O]) OnChange(fn func(O)) func() {
	a.mu.Lock()
	id := a.listenerID
	a.listenerID++
	a.listeners[id] = fn
	a.mu.Unlock()

	return func() {
		a.mu.Lock()
		delete(a.listeners, id)
		a.mu.Unlock()
	}
}

func (a *Animator[O]) snapshotListeners() []func(O) {
	fns := make([]func(O), 0, len(a.listeners))
	for _, fn := range a.listeners {
		fns = append(fns, fn)
	}
	return fns
}

// Stop cancels any active run. The value stays wherever it was last
// sampled; no further sample is published once Stop returns.
func (a *Animator[O]) Stop() {
	a.mu.Lock()
	a.cancelLocked()
	a.mu.Unlock()
}

// Reload re-evaluates build, replacing the timeline. Any active run is
// cancelled first. On error the animator keeps its previous timeline and
// stays stopped.
func (a *Animator[O]) Reload(build func(*Context) AnimatedValue[O]) error {
	ctx := new(Context)
	timeline := build(ctx)
	if v, ok := timeline.(validated); ok {
		if err := v.Err(); err != nil {
			a.Stop()
			return err
		}
	}

	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.cancelLocked()
	a.timeline = timeline
	a.direction = ctx.direction
	a.value = timeline.Calc(anchorIndex(ctx.direction, timeline.Duration()))
	a.mu.Unlock()

	if ctx.autoStart {
		a.Run(ctx.direction)
	}
	return nil
}

// Close tears the animator down, cancelling any active run. A closed
// animator ignores further Run calls.
func (a *Animator[O]) Close() {
	a.mu.Lock()
	a.closed = true
	a.cancelLocked()
	a.mu.Unlock()
}

func (a *Animator[O]) cancelLocked() {
	if a.stop != nil {
		close(a.stop)
		a.stop = nil
	}
	a.running = false
}
