package colorpick

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// ErrInvalidColor is returned when a color string cannot be parsed.
var ErrInvalidColor = errors.New("colorpick: invalid color")

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Components are not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: Quantize(c.R),
		G: Quantize(c.G),
		B: Quantize(c.B),
		A: Quantize(c.A),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA2 creates a color from RGBA components.
func RGBA2(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// RGB8 creates an opaque color from 0-255 channel values.
func RGB8(r, g, b int) RGBA {
	return RGBA{
		R: float64(clampChannel(r)) / 255,
		G: float64(clampChannel(g)) / 255,
		B: float64(clampChannel(b)) / 255,
		A: 1,
	}
}

// Lerp performs linear interpolation between two colors, component-wise.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Quantize maps a [0, 1] component to a byte, rounding half up.
// Values outside [0, 1] saturate.
func Quantize(v float64) uint8 {
	return uint8(clamp255(math.Floor(v*255 + 0.5)))
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = RGBA2(0, 0, 0, 0)
)

// Channels holds 8-bit red, green and blue values in [0, 255].
type Channels struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// ColorValue is a selected color. Hex is always derived from RGB; build
// values with NewColorValue rather than setting Hex by hand.
type ColorValue struct {
	Hex string   `json:"hex"`
	RGB Channels `json:"rgb"`
}

// NewColorValue builds a ColorValue from 8-bit channels. Out-of-range
// channels are clamped to [0, 255].
func NewColorValue(r, g, b int) ColorValue {
	r, g, b = clampChannel(r), clampChannel(g), clampChannel(b)
	return ColorValue{
		Hex: RGBToHex(r, g, b),
		RGB: Channels{R: r, G: g, B: b},
	}
}

// FromNRGBA builds a ColorValue from the color channels of a pixel, ignoring alpha.
func FromNRGBA(c color.NRGBA) ColorValue {
	return NewColorValue(int(c.R), int(c.G), int(c.B))
}

// Color returns the value as an opaque color.NRGBA.
func (v ColorValue) Color() color.NRGBA {
	return color.NRGBA{R: uint8(v.RGB.R), G: uint8(v.RGB.G), B: uint8(v.RGB.B), A: 255}
}

// RGBA returns the value as a float color.
func (v ColorValue) RGBA() RGBA {
	return RGB8(v.RGB.R, v.RGB.G, v.RGB.B)
}

// HSV returns the value converted with RGBToHSV.
func (v ColorValue) HSV() HSV {
	return RGBToHSV(v.RGB.R, v.RGB.G, v.RGB.B)
}

// White value used before the first sample is taken.
var whiteValue = NewColorValue(255, 255, 255)

// DefaultValue returns the white placeholder value widgets report before
// their first render.
func DefaultValue() ColorValue { return whiteValue }

const hexDigits = "0123456789abcdef"

// RGBToHex formats channels as "#rrggbb" in lowercase. Channels are
// clamped to [0, 255] first.
func RGBToHex(r, g, b int) string {
	var buf [7]byte
	buf[0] = '#'
	for i, c := range [3]int{clampChannel(r), clampChannel(g), clampChannel(b)} {
		buf[1+i*2] = hexDigits[c>>4]
		buf[2+i*2] = hexDigits[c&0x0f]
	}
	return string(buf[:])
}

// HSV is a hue/saturation/value triple. H is in whole degrees [0, 360);
// S and V are percentages rounded to two decimals.
type HSV struct {
	H int     `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// String returns "hsv(h, s%, v%)".
func (h HSV) String() string {
	return fmt.Sprintf("hsv(%d, %s%%, %s%%)", h.H,
		strconv.FormatFloat(h.S, 'f', -1, 64),
		strconv.FormatFloat(h.V, 'f', -1, 64))
}

// RGBToHSV converts 8-bit channels to HSV. Channels are clamped to [0, 255].
func RGBToHSV(r, g, b int) HSV {
	rn := float64(clampChannel(r)) / 255
	gn := float64(clampChannel(g)) / 255
	bn := float64(clampChannel(b)) / 255

	v := math.Max(rn, math.Max(gn, bn))
	diff := v - math.Min(rn, math.Min(gn, bn))

	var h, s float64
	if diff != 0 {
		s = diff / v
		dc := func(c float64) float64 { return (v-c)/6/diff + 0.5 }
		rr, gg, bb := dc(rn), dc(gn), dc(bn)

		switch v {
		case rn:
			h = bb - gg
		case gn:
			h = 1.0/3 + rr - bb
		default:
			h = 2.0/3 + gg - rr
		}
		if h < 0 {
			h++
		} else if h > 1 {
			h--
		}
	}

	deg := int(math.Round(h * 360))
	if deg == 360 {
		deg = 0
	}
	return HSV{
		H: deg,
		S: roundPercent(s * 100),
		V: roundPercent(v * 100),
	}
}

func roundPercent(x float64) float64 {
	return math.Round(x*100) / 100
}

var foldNames = cases.Fold()

// ParseColor parses a CSS-style color string. Supported forms are
// "#rgb", "#rgba", "#rrggbb", "#rrggbbaa", "rgb(r, g, b)", "rgba(r, g, b, a)"
// and SVG named colors ("red", "DarkOrange"). Errors wrap ErrInvalidColor.
func ParseColor(s string) (RGBA, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return RGBA{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}
	if in[0] == '#' {
		return parseHexColor(in[1:], s)
	}

	lower := foldNames.String(in)
	switch {
	case strings.HasPrefix(lower, "rgba("):
		return parseFunctional(lower[len("rgba("):], 4, s)
	case strings.HasPrefix(lower, "rgb("):
		return parseFunctional(lower[len("rgb("):], 3, s)
	}

	if lower == "transparent" {
		return Transparent, nil
	}
	if c, ok := colornames.Map[lower]; ok {
		return FromColor(c), nil
	}
	return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// MustParseColor is like ParseColor but panics on error.
// It is intended for package-level constants.
func MustParseColor(s string) RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHexColor(hex, orig string) (RGBA, error) {
	var vals [4]uint64
	vals[3] = 255

	switch len(hex) {
	case 3, 4:
		for i := 0; i < len(hex); i++ {
			n, err := strconv.ParseUint(hex[i:i+1], 16, 8)
			if err != nil {
				return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
			}
			vals[i] = n * 17
		}
	case 6, 8:
		for i := 0; i < len(hex)/2; i++ {
			n, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
			if err != nil {
				return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
			}
			vals[i] = n
		}
	default:
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}

	return RGBA{
		R: float64(vals[0]) / 255,
		G: float64(vals[1]) / 255,
		B: float64(vals[2]) / 255,
		A: float64(vals[3]) / 255,
	}, nil
}

func parseFunctional(body string, want int, orig string) (RGBA, error) {
	body = strings.TrimSpace(body)
	if !strings.HasSuffix(body, ")") {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	parts := strings.Split(body[:len(body)-1], ",")
	if len(parts) != want {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}

	var ch [3]float64
	for i := 0; i < 3; i++ {
		n, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
		}
		ch[i] = clamp255(n) / 255
	}

	a := 1.0
	if want == 4 {
		n, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
		}
		a = math.Max(0, math.Min(1, n))
	}
	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: a}, nil
}
