package widget

import (
	"image"

	"github.com/gogpu/colorpick"
)

// Option configures a widget during creation.
// Options that do not apply to a widget are ignored by it.
//
// Example:
//
//	s, err := widget.NewSlider(
//	    widget.WithLength(250),
//	    widget.WithOrientation(colorpick.Vertical),
//	    widget.WithOnSliderChange(func(v widget.SliderValue) { ... }),
//	)
type Option func(*options)

// options holds optional configuration for widget creation.
type options struct {
	width, height int
	length        int
	orientation   colorpick.Orientation
	color         string
	areaValue     *AreaValue
	sliderValue   *SliderValue
	disabled      bool
	origin        image.Point
	backend       string
	onArea        func(AreaValue)
	onSlider      func(SliderValue)
}

// Default dimensions.
const (
	DefaultWidth  = 150
	DefaultHeight = 150
	DefaultLength = 150
	DefaultColor  = "#ffffff"
)

// defaultOptions returns the default widget options.
func defaultOptions() options {
	return options{
		width:       DefaultWidth,
		height:      DefaultHeight,
		length:      DefaultLength,
		orientation: colorpick.Horizontal,
		color:       DefaultColor,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSize sets the width and height of a Spectrum or Plane.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithLength sets the track length of a Slider.
func WithLength(length int) Option {
	return func(o *options) {
		o.length = length
	}
}

// WithOrientation sets the orientation of a Slider.
func WithOrientation(or colorpick.Orientation) Option {
	return func(o *options) {
		o.orientation = or
	}
}

// WithColor sets the base color of a Plane. Any form accepted by
// colorpick.ParseColor is allowed.
func WithColor(c string) Option {
	return func(o *options) {
		o.color = c
	}
}

// WithValue sets the initial pointer position of a Spectrum or Plane.
// Only X and Y are used; the color is always sampled.
func WithValue(v AreaValue) Option {
	return func(o *options) {
		o.areaValue = &v
	}
}

// WithSliderValue sets the initial track position of a Slider.
// Only Pos is used; the color is always sampled.
func WithSliderValue(v SliderValue) Option {
	return func(o *options) {
		o.sliderValue = &v
	}
}

// WithDisabled creates the widget disabled.
func WithDisabled(disabled bool) Option {
	return func(o *options) {
		o.disabled = disabled
	}
}

// WithOrigin places the widget's top-left corner at p in screen
// coordinates. Pointer events are translated relative to it.
func WithOrigin(p image.Point) Option {
	return func(o *options) {
		o.origin = p
	}
}

// WithBackend selects a named surface backend. The default picks the best
// available one.
func WithBackend(name string) Option {
	return func(o *options) {
		o.backend = name
	}
}

// WithOnChange sets the change callback of a Spectrum or Plane.
func WithOnChange(fn func(AreaValue)) Option {
	return func(o *options) {
		o.onArea = fn
	}
}

// WithOnSliderChange sets the change callback of a Slider.
func WithOnSliderChange(fn func(SliderValue)) Option {
	return func(o *options) {
		o.onSlider = fn
	}
}
