package stream

import (
	"fmt"
	"strings"

	"github.com/matt-g-everett/animtx/tween"
)

var easings = map[string]tween.EasingFunction{
	"linear":         tween.Linear,
	"in-quad":        tween.InQuad,
	"out-quad":       tween.OutQuad,
	"in-out-quad":    tween.InOutQuad,
	"in-cubic":       tween.InCubic,
	"out-cubic":      tween.OutCubic,
	"in-out-cubic":   tween.InOutCubic,
	"in-quart":       tween.InQuart,
	"out-quart":      tween.OutQuart,
	"in-out-quart":   tween.InOutQuart,
	"in-quint":       tween.InQuint,
	"out-quint":      tween.OutQuint,
	"in-out-quint":   tween.InOutQuint,
	"in-sine":        tween.InSine,
	"out-sine":       tween.OutSine,
	"in-out-sine":    tween.InOutSine,
	"in-expo":        tween.InExpo,
	"out-expo":       tween.OutExpo,
	"in-out-expo":    tween.InOutExpo,
	"in-circ":        tween.InCirc,
	"out-circ":       tween.OutCirc,
	"in-out-circ":    tween.InOutCirc,
	"in-elastic":     tween.InElastic,
	"out-elastic":    tween.OutElastic,
	"in-out-elastic": tween.InOutElastic,
	"in-back":        tween.InBack,
	"out-back":       tween.OutBack,
	"in-out-back":    tween.InOutBack,
	"in-bounce":      tween.InBounce,
	"out-bounce":     tween.OutBounce,
	"in-out-bounce":  tween.InOutBounce,
}

// EasingByName resolves a configured easing name. An empty name means
// linear.
func EasingByName(name string) (tween.EasingFunction, error) {
	if name == "" {
		return tween.Linear, nil
	}
	fn, ok := easings[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("stream: unknown easing %q", name)
	}
	return fn, nil
}

func buildTimeline(segments []SegmentConfig) (tween.Timeline[string, string], error) {
	var tl tween.Timeline[string, string]
	if len(segments) == 0 {
		return tl, fmt.Errorf("stream: animation needs at least one segment")
	}

	for i, seg := range segments {
		start, end := seg.From, seg.To
		fn := tween.Constant
		if seg.Hold != "" {
			start, end = seg.Hold, seg.Hold
		} else {
			var err error
			fn, err = EasingByName(seg.Easing)
			if err != nil {
				return tl, err
			}
		}

		if i == 0 {
			tl = tween.NewColorString(start, end, seg.Duration, fn)
		} else {
			tl = tl.Add(start, end, seg.Duration, fn)
		}
	}

	return tl, tl.Err()
}

func parseDirection(s string) (tween.Direction, error) {
	switch strings.ToLower(s) {
	case "", "forward":
		return tween.Forward, nil
	case "backward", "reverse":
		return tween.Backward, nil
	default:
		return tween.Forward, fmt.Errorf("stream: unknown direction %q", s)
	}
}

func newAnimation(platform tween.Platform, cfg AnimationConfig) (*animation, error) {
	tl, err := buildTimeline(cfg.Segments)
	if err != nil {
		return nil, fmt.Errorf("animation %q: %w", cfg.Name, err)
	}

	direction, err := parseDirection(cfg.Direction)
	if err != nil {
		return nil, fmt.Errorf("animation %q: %w", cfg.Name, err)
	}

	animator, err := tween.NewAnimator(platform, func(ctx *tween.Context) tween.AnimatedValue[string] {
		ctx.AutoStart(cfg.AutoStart).StartingDirection(direction)
		return tl
	})
	if err != nil {
		return nil, fmt.Errorf("animation %q: %w", cfg.Name, err)
	}

	return &animation{name: cfg.Name, animator: animator, timeline: tl}, nil
}
