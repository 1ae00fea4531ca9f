package tween

import (
	"github.com/fogleman/ease"
)

// An EasingFunction maps elapsed time onto an interpolated value using the
// classic four-argument form: t is the elapsed time, b the start value,
// c the delta to the end value and d the total duration.
type EasingFunction func(t, b, c, d float64) float64

// Linear interpolates with no easing.
func Linear(t, b, c, d float64) float64 {
	if d <= 0 {
		return b + c
	}
	return b + c*(t/d)
}

// Constant resolves to the start value whatever the elapsed time. Hold
// segments use it to pin a value for their whole duration.
func Constant(_, b, _, _ float64) float64 {
	return b
}

// FromUnit adapts a normalised easing curve (progress in, progress out) to
// an EasingFunction. The curves in fogleman/ease all have that shape. A
// non-positive duration resolves to the end value, so degenerate segments
// never divide by zero.
func FromUnit(fn func(float64) float64) EasingFunction {
	return func(t, b, c, d float64) float64 {
		if d <= 0 {
			return b + c
		}
		return b + c*fn(t/d)
	}
}

// Adapted fogleman/ease curves.
var (
	InQuad       = FromUnit(ease.InQuad)
	OutQuad      = FromUnit(ease.OutQuad)
	InOutQuad    = FromUnit(ease.InOutQuad)
	InCubic      = FromUnit(ease.InCubic)
	OutCubic     = FromUnit(ease.OutCubic)
	InOutCubic   = FromUnit(ease.InOutCubic)
	InQuart      = FromUnit(ease.InQuart)
	OutQuart     = FromUnit(ease.OutQuart)
	InOutQuart   = FromUnit(ease.InOutQuart)
	InQuint      = FromUnit(ease.InQuint)
	OutQuint     = FromUnit(ease.OutQuint)
	InOutQuint   = FromUnit(ease.InOutQuint)
	InSine       = FromUnit(ease.InSine)
	OutSine      = FromUnit(ease.OutSine)
	InOutSine    = FromUnit(ease.InOutSine)
	InExpo       = FromUnit(ease.InExpo)
	OutExpo      = FromUnit(ease.OutExpo)
	InOutExpo    = FromUnit(ease.InOutExpo)
	InCirc       = FromUnit(ease.InCirc)
	OutCirc      = FromUnit(ease.OutCirc)
	InOutCirc    = FromUnit(ease.InOutCirc)
	InElastic    = FromUnit(ease.InElastic)
	OutElastic   = FromUnit(ease.OutElastic)
	InOutElastic = FromUnit(ease.InOutElastic)
	InBack       = FromUnit(ease.InBack)
	OutBack      = FromUnit(ease.OutBack)
	InOutBack    = FromUnit(ease.InOutBack)
	InBounce     = FromUnit(ease.InBounce)
	OutBounce    = FromUnit(ease.OutBounce)
	InOutBounce  = FromUnit(ease.InOutBounce)
)
