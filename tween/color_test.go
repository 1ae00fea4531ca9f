package tween

import (
	"errors"
	"testing"
)

func TestParseColorForms(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"#ff0000", "rgb(255,0,0,255)"},
		{"#f00", "rgb(255,0,0,255)"},
		{"#00ff0080", "rgb(0,255,0,128)"},
		{"rgb(1,2,3)", "rgb(1,2,3,255)"},
		{"rgb(10, 20, 30, 40)", "rgb(10,20,30,40)"},
		{"rgba(255,255,255,0)", "rgb(255,255,255,0)"},
		{"teal", "rgb(0,128,128,255)"},
		{"Blue", "rgb(0,0,255,255)"},
		{"  #ff0000  ", "rgb(255,0,0,255)"},
	}

	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Errorf("ParseColor(%q): unexpected error %v", c.in, err)
			continue
		}
		if got.String() != c.want {
			t.Errorf("ParseColor(%q) = %s, expected %s", c.in, got, c.want)
		}
	}
}

func TestParseColorRejectsUnknownTokens(t *testing.T) {
	for _, in := range []string{"", "blurple", "#zzz", "#12345", "#ff00", "#0011223", "#aabbccddee", "rgb(300,0,0)", "rgb(1,2)", "rgb(1,2,3", "hsl(0,0,0)"} {
		_, err := ParseColor(in)
		if err == nil {
			t.Errorf("ParseColor(%q): expected error", in)
			continue
		}
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("ParseColor(%q): expected *ParseError, got %T", in, err)
		}
	}
}

func TestEaseColorMidpointThroughHSV(t *testing.T) {
	red := RGB255(255, 0, 0, 255)
	blue := RGB255(0, 0, 255, 255)

	// Hue runs 0 -> 240 over the raw distance, so halfway is green.
	mid := EaseColor(red, blue, 100, 200, Linear)
	if got := mid.String(); got != "rgb(0,255,0,255)" {
		t.Errorf("midpoint = %s, expected rgb(0,255,0,255)", got)
	}
}

func TestEaseColorEndpoints(t *testing.T) {
	from := RGB255(10, 20, 30, 40)
	to := RGB255(200, 100, 50, 250)

	if got := EaseColor(from, to, 0, 500, Linear).String(); got != from.String() {
		t.Errorf("start endpoint = %s, expected %s", got, from)
	}
	if got := EaseColor(from, to, 500, 500, Linear).String(); got != to.String() {
		t.Errorf("end endpoint = %s, expected %s", got, to)
	}
}

func TestEaseColorStringCanonicalises(t *testing.T) {
	got := EaseColorString("#ff0000", "blue", 200, 200, Linear)
	if got != "rgb(0,0,255,255)" {
		t.Errorf("eased string = %q, expected canonical rgb form", got)
	}
}
