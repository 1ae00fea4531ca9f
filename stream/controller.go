package stream

import (
	"fmt"
	"math"

	"github.com/matt-g-everett/animtx/tween"
)

type animation struct {
	name     string
	animator *tween.Animator[string]
	timeline tween.Timeline[string, string]
}

// Controller owns the live animators declared in config and dispatches
// control actions to them.
type Controller struct {
	animations map[string]*animation
	order      []string
}

// NewController builds an animator for every configured animation. A bad
// declaration fails the whole controller so misconfiguration is visible
// at startup, not at first use.
func NewController(platform tween.Platform, configs []AnimationConfig) (*Controller, error) {
	c := new(Controller)
	c.animations = make(map[string]*animation, len(configs))

	for _, cfg := range configs {
		if cfg.Name == "" {
			c.Close()
			return nil, fmt.Errorf("stream: animation without a name")
		}
		if _, ok := c.animations[cfg.Name]; ok {
			c.Close()
			return nil, fmt.Errorf("stream: duplicate animation %q", cfg.Name)
		}

		a, err := newAnimation(platform, cfg)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.animations[cfg.Name] = a
		c.order = append(c.order, cfg.Name)
	}

	return c, nil
}

// Animator returns the named animator, or nil.
func (c *Controller) Animator(name string) *tween.Animator[string] {
	if a, ok := c.animations[name]; ok {
		return a.animator
	}
	return nil
}

// Status is one animation's externally visible state.
type Status struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Running bool   `json:"running"`
}

// Snapshot reads every animation's current value, in declaration order.
func (c *Controller) Snapshot() []Status {
	statuses := make([]Status, 0, len(c.order))
	for _, name := range c.order {
		a := c.animations[name]
		statuses = append(statuses, Status{
			Name:    name,
			Value:   a.animator.Value(),
			Running: a.animator.IsRunning(),
		})
	}
	return statuses
}

// A ControlMessage asks one animation to start, reverse or stop.
type ControlMessage struct {
	Animation string `json:"animation"`
	Action    string `json:"action"`
}

// Handle applies a control message.
func (c *Controller) Handle(msg ControlMessage) error {
	a, ok := c.animations[msg.Animation]
	if !ok {
		return fmt.Errorf("stream: no animation %q", msg.Animation)
	}

	switch msg.Action {
	case "start":
		a.animator.Run(tween.Forward)
	case "reverse":
		a.animator.Run(tween.Backward)
	case "stop":
		a.animator.Stop()
	default:
		return fmt.Errorf("stream: unknown action %q", msg.Action)
	}
	return nil
}

// Preview samples the named animation's timeline at n evenly spaced
// points from start to end, without disturbing the live animator.
func (c *Controller) Preview(name string, n int) ([]string, error) {
	a, ok := c.animations[name]
	if !ok {
		return nil, fmt.Errorf("stream: no animation %q", name)
	}
	if n < 2 {
		return nil, fmt.Errorf("stream: preview needs at least 2 samples")
	}

	total := float64(a.timeline.Duration())
	samples := make([]string, n)
	for i := 0; i < n; i++ {
		index := uint32(math.Round(total * float64(i) / float64(n-1)))
		samples[i] = a.timeline.Calc(index)
	}
	return samples, nil
}

// Close tears down every animator.
func (c *Controller) Close() {
	for _, a := range c.animations {
		a.animator.Close()
	}
}
