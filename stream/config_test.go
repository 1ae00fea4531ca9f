package stream

import (
	"testing"
	"time"

	"gopkg.in/yaml.v2"
)

const sampleConfig = `
mqtt:
  url: tcp://broker:1883
  username: anim
  password: secret
  topics:
    stream: home/anim/stream
    control: home/anim/control
api:
  addr: ":3000"
frameMs: 16
animations:
  - name: pulse
    autoStart: true
    direction: forward
    segments:
      - hold: "rgb(255,0,0,255)"
        duration: 100
      - from: "rgb(255,0,0,255)"
        to: "rgb(0,0,255,255)"
        duration: 200
        easing: linear
`

func TestConfigUnmarshal(t *testing.T) {
	var config Config
	if err := yaml.Unmarshal([]byte(sampleConfig), &config); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if config.Mqtt.URL != "tcp://broker:1883" {
		t.Errorf("mqtt url = %q", config.Mqtt.URL)
	}
	if config.Mqtt.Topics.Control != "home/anim/control" {
		t.Errorf("control topic = %q", config.Mqtt.Topics.Control)
	}
	if config.FrameInterval() != 16*time.Millisecond {
		t.Errorf("frame interval = %v, expected 16ms", config.FrameInterval())
	}

	if len(config.Animations) != 1 {
		t.Fatalf("expected 1 animation, got %d", len(config.Animations))
	}
	anim := config.Animations[0]
	if anim.Name != "pulse" || !anim.AutoStart {
		t.Errorf("animation parsed as %+v", anim)
	}
	if len(anim.Segments) != 2 || anim.Segments[0].Hold == "" || anim.Segments[1].Easing != "linear" {
		t.Errorf("segments parsed as %+v", anim.Segments)
	}
}

func TestConfigDefaultFrameInterval(t *testing.T) {
	var config Config
	if config.FrameInterval() != 33*time.Millisecond {
		t.Errorf("default frame interval = %v, expected 33ms", config.FrameInterval())
	}
}

func TestBuildTimeline(t *testing.T) {
	tl, err := buildTimeline([]SegmentConfig{
		{Hold: "rgb(255,0,0,255)", Duration: 100},
		{From: "rgb(255,0,0,255)", To: "rgb(0,0,255,255)", Duration: 200, Easing: "linear"},
	})
	if err != nil {
		t.Fatalf("buildTimeline: %v", err)
	}
	if tl.Duration() != 300 {
		t.Errorf("duration = %d, expected 300", tl.Duration())
	}
	if got := tl.Calc(50); got != "rgb(255,0,0,255)" {
		t.Errorf("Calc(50) = %s, expected the held red", got)
	}
	if got := tl.Calc(300); got != "rgb(0,0,255,255)" {
		t.Errorf("Calc(300) = %s, expected blue", got)
	}
}

func TestBuildTimelineErrors(t *testing.T) {
	if _, err := buildTimeline(nil); err == nil {
		t.Error("expected an error for an empty segment list")
	}
	if _, err := buildTimeline([]SegmentConfig{{From: "red", To: "blue", Duration: 100, Easing: "warp"}}); err == nil {
		t.Error("expected an error for an unknown easing")
	}
	if _, err := buildTimeline([]SegmentConfig{{From: "notacolour", To: "blue", Duration: 100}}); err == nil {
		t.Error("expected an error for an unparseable colour")
	}
}

func TestEasingByName(t *testing.T) {
	if _, err := EasingByName(""); err != nil {
		t.Errorf("empty name should default to linear: %v", err)
	}
	if _, err := EasingByName("In-Out-Quad"); err != nil {
		t.Errorf("names should be case-insensitive: %v", err)
	}
	if _, err := EasingByName("warp"); err == nil {
		t.Error("expected an error for an unknown easing")
	}
}

func TestParseDirection(t *testing.T) {
	cases := map[string]bool{"": true, "forward": true, "backward": true, "reverse": true, "sideways": false}
	for in, ok := range cases {
		_, err := parseDirection(in)
		if ok && err != nil {
			t.Errorf("parseDirection(%q): unexpected error %v", in, err)
		}
		if !ok && err == nil {
			t.Errorf("parseDirection(%q): expected error", in)
		}
	}
}
