package tween

import (
	"fmt"
)

// An AnimatedValue maps a time index in milliseconds onto a value. The
// Animator samples through this interface, so anything with a duration and
// a pointwise Calc can be animated.
type AnimatedValue[O any] interface {
	// Duration is the total animatable time in milliseconds.
	Duration() uint32

	// Calc samples the value at index. The index must lie within
	// [0, Duration()]; the caller clamps, Calc does not.
	Calc(index uint32) O
}

type segment[T any] struct {
	start    T
	end      T
	duration uint32
	fn       EasingFunction
}

// A Timeline is an ordered sequence of eased segments with an incrementally
// maintained total duration. Builder methods copy on append, so a Timeline
// that has been handed out never changes underneath its holder.
type Timeline[T, O any] struct {
	ease     Ease[T, O]
	check    func(T) error
	segments []segment[T]
	total    uint32
	err      error
}

// NewFloat64 creates a scalar timeline seeded with its first segment.
func NewFloat64(start, end float64, duration uint32, fn EasingFunction) Timeline[float64, float64] {
	tl := Timeline[float64, float64]{ease: EaseFloat64}
	return tl.Add(start, end, duration, fn)
}

// NewColor creates a colour timeline seeded with its first segment.
func NewColor(start, end Color, duration uint32, fn EasingFunction) Timeline[Color, Color] {
	tl := Timeline[Color, Color]{ease: EaseColor}
	return tl.Add(start, end, duration, fn)
}

// NewColorString creates a timeline over string-encoded colours, seeded
// with its first segment. Endpoints are validated as they are appended;
// the first bad colour is reported by Err.
func NewColorString(start, end string, duration uint32, fn EasingFunction) Timeline[string, string] {
	tl := Timeline[string, string]{
		ease: EaseColorString,
		check: func(s string) error {
			_, err := ParseColor(s)
			return err
		},
	}
	return tl.Add(start, end, duration, fn)
}

// Add appends an eased segment, returning a new Timeline.
func (tl Timeline[T, O]) Add(start, end T, duration uint32, fn EasingFunction) Timeline[T, O] {
	if tl.err == nil && tl.check != nil {
		if err := tl.check(start); err != nil {
			tl.err = err
		} else if err := tl.check(end); err != nil {
			tl.err = err
		}
	}

	segments := make([]segment[T], len(tl.segments), len(tl.segments)+1)
	copy(segments, tl.segments)
	tl.segments = append(segments, segment[T]{start: start, end: end, duration: duration, fn: fn})
	tl.total += duration
	return tl
}

// AddConstant appends a hold segment that pins value for duration.
func (tl Timeline[T, O]) AddConstant(value T, duration uint32) Timeline[T, O] {
	return tl.Add(value, value, duration, Constant)
}

// Duration returns the total duration in milliseconds.
func (tl Timeline[T, O]) Duration() uint32 {
	return tl.total
}

// Err reports the first endpoint validation failure recorded while
// building. A timeline with a non-nil Err must not be sampled.
func (tl Timeline[T, O]) Err() error {
	return tl.err
}

// Calc samples the timeline at index. Segments are scanned in append
// order; a segment owns the window (accumulated, accumulated+duration],
// and the first segment also takes index 0, so every internal boundary
// belongs to exactly one segment. Sampling outside [0, Duration()] or
// sampling a timeline that failed validation is a contract violation and
// panics.
func (tl Timeline[T, O]) Calc(index uint32) O {
	if tl.err != nil {
		panic(fmt.Sprintf("tween: sampling invalid timeline: %v", tl.err))
	}
	if index > tl.total {
		panic(fmt.Sprintf("tween: sample at %dms outside timeline of %dms", index, tl.total))
	}

	accumulated := uint32(0)
	for i, seg := range tl.segments {
		upper := accumulated + seg.duration
		if (index > accumulated || (i == 0 && index == 0)) && index <= upper {
			return tl.ease(seg.start, seg.end, index-accumulated, seg.duration, seg.fn)
		}
		accumulated = upper
	}

	panic("tween: timeline has no segments")
}
