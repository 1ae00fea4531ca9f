package stream

import "time"

const defaultFrameMs = 33

type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Api struct {
		Addr string `yaml:"addr"`
	} `yaml:"api"`
	FrameMs    uint32            `yaml:"frameMs"`
	Animations []AnimationConfig `yaml:"animations"`
}

// An AnimationConfig declares one named animation as a sequence of
// segments over string-encoded colours.
type AnimationConfig struct {
	Name      string          `yaml:"name"`
	AutoStart bool            `yaml:"autoStart"`
	Direction string          `yaml:"direction"`
	Segments  []SegmentConfig `yaml:"segments"`
}

// A SegmentConfig is either a hold (constant colour) or an eased
// transition between two colours. Duration is in milliseconds.
type SegmentConfig struct {
	Hold     string `yaml:"hold"`
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Duration uint32 `yaml:"duration"`
	Easing   string `yaml:"easing"`
}

// FrameInterval returns the configured frame period, defaulting to the
// usual 30fps-ish cadence.
func (c Config) FrameInterval() time.Duration {
	ms := c.FrameMs
	if ms == 0 {
		ms = defaultFrameMs
	}
	return time.Duration(ms) * time.Millisecond
}
