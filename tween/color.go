package tween

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// A ParseError reports a colour token that isn't in any recognised format.
type ParseError struct {
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("tween: %q is not a recognised colour", e.Value)
}

// Color is an RGB colour with an alpha channel. The RGB part is a
// go-colorful colour so it can move through HSV space; alpha rides
// alongside in [0, 1].
type Color struct {
	C colorful.Color
	A float64
}

// RGB255 creates a Color from 8-bit channels.
func RGB255(r, g, b, a uint8) Color {
	return Color{
		C: colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0},
		A: float64(a) / 255.0,
	}
}

// String serialises the colour in the canonical rgb(r,g,b,a) form with
// 8-bit channels, whatever form it was parsed from.
func (c Color) String() string {
	r, g, b := c.C.Clamped().RGB255()
	a := c.A
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return fmt.Sprintf("rgb(%d,%d,%d,%d)", r, g, b, uint8(a*255.0+0.5))
}

// ParseColor reads a colour token. Accepted forms are #rgb, #rrggbb and
// #rrggbbaa hex, rgb(r,g,b), rgb(r,g,b,a) and rgba(r,g,b,a) with 8-bit
// components, and CSS colour names. Anything else is a *ParseError.
func ParseColor(s string) (Color, error) {
	token := strings.TrimSpace(s)

	if strings.HasPrefix(token, "#") {
		return parseHex(s, token)
	}

	lower := strings.ToLower(token)
	if strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba(") {
		return parseRGBFunc(s, lower)
	}

	if named, ok := colornames.Map[lower]; ok {
		return RGB255(named.R, named.G, named.B, named.A), nil
	}

	return Color{}, &ParseError{Value: s}
}

func parseHex(raw, token string) (Color, error) {
	if len(token) != 4 && len(token) != 7 && len(token) != 9 {
		return Color{}, &ParseError{Value: raw}
	}

	alpha := 1.0
	if len(token) == 9 {
		a, err := strconv.ParseUint(token[7:], 16, 8)
		if err != nil {
			return Color{}, &ParseError{Value: raw}
		}
		alpha = float64(a) / 255.0
		token = token[:7]
	}

	c, err := colorful.Hex(token)
	if err != nil {
		return Color{}, &ParseError{Value: raw}
	}
	return Color{C: c, A: alpha}, nil
}

func parseRGBFunc(raw, lower string) (Color, error) {
	open := strings.IndexByte(lower, '(')
	if !strings.HasSuffix(lower, ")") {
		return Color{}, &ParseError{Value: raw}
	}

	parts := strings.Split(lower[open+1:len(lower)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, &ParseError{Value: raw}
	}

	channels := make([]uint8, 0, 4)
	for _, part := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return Color{}, &ParseError{Value: raw}
		}
		channels = append(channels, uint8(n))
	}

	a := uint8(255)
	if len(channels) == 4 {
		a = channels[3]
	}
	return RGB255(channels[0], channels[1], channels[2], a), nil
}
