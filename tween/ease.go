package tween

import (
	"github.com/lucasb-eyer/go-colorful"
)

// An Ease produces the value between start and end at elapsed within
// duration, shaped by fn. It is the capability that makes a value kind
// interpolable; new kinds are added by writing a new Ease, not by
// extending a hierarchy.
type Ease[T, O any] func(start, end T, elapsed, duration uint32, fn EasingFunction) O

// EaseFloat64 interpolates a scalar.
func EaseFloat64(start, end float64, elapsed, duration uint32, fn EasingFunction) float64 {
	return fn(float64(elapsed), start, end-start, float64(duration))
}

// EaseColor interpolates in HSV space: hue, saturation, value and alpha
// are each eased independently with the same function. Hue moves over the
// raw distance between the endpoints, so a red-to-blue ease passes through
// green rather than wrapping the short way round the wheel.
func EaseColor(start, end Color, elapsed, duration uint32, fn EasingFunction) Color {
	t := float64(elapsed)
	d := float64(duration)

	h1, s1, v1 := start.C.Hsv()
	h2, s2, v2 := end.C.Hsv()

	h := fn(t, h1, h2-h1, d)
	s := fn(t, s1, s2-s1, d)
	v := fn(t, v1, v2-v1, d)
	a := fn(t, start.A, end.A-start.A, d)

	return Color{C: colorful.Hsv(h, s, v), A: a}
}

// EaseColorString interpolates between two string-encoded colours and
// serialises the result canonically. The endpoints must already have been
// validated with ParseColor; an unparseable endpoint here is a contract
// violation and panics.
func EaseColorString(start, end string, elapsed, duration uint32, fn EasingFunction) string {
	from, err := ParseColor(start)
	if err != nil {
		panic(err)
	}
	to, err := ParseColor(end)
	if err != nil {
		panic(err)
	}
	return EaseColor(from, to, elapsed, duration, fn).String()
}
