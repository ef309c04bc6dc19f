// Package picker composes the color widgets into a complete picker.
//
// A Basic picker is a single Spectrum. An Advanced picker stacks a Plane
// above a horizontal Slider; the slider's sampled color becomes the plane's
// base color, and the plane's sampled color is the picker's value.
//
// Pointer events arrive in screen coordinates. A Down event is delivered to
// the widget under the pointer, which then receives the following Move
// events until Up, or until the pointer leaves it (delivered as Leave).
package picker

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/gogpu/colorpick"
	"github.com/gogpu/colorpick/pointer"
	"github.com/gogpu/colorpick/widget"
)

// Mode selects the picker layout.
type Mode int

const (
	// Basic shows a spectrum.
	Basic Mode = iota
	// Advanced shows a plane driven by a hue slider.
	Advanced
)

// String returns "BASIC" or "ADVANCED".
func (m Mode) String() string {
	switch m {
	case Basic:
		return "BASIC"
	case Advanced:
		return "ADVANCED"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "basic" or "advanced" in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic":
		return Basic, nil
	case "advanced":
		return Advanced, nil
	}
	return Basic, fmt.Errorf("picker: unknown mode %q", s)
}

// Layout constants.
const (
	Width        = 250
	FieldHeight  = 150
	SliderMargin = 16
)

// target is what the picker routes events to.
type target interface {
	Handle(ev pointer.Event) bool
	Bounds() image.Rectangle
}

// Picker is a composed color picker.
type Picker struct {
	mode     Mode
	spectrum *widget.Spectrum
	plane    *widget.Plane
	slider   *widget.Slider
	active   target
	value    colorpick.ColorValue
	onChange func(colorpick.ColorValue)
}

// Option configures a Picker.
type Option func(*config)

type config struct {
	mode     Mode
	origin   image.Point
	width    int
	height   int
	value    *widget.AreaValue
	margin   int
	disabled bool
	backend  string
	onChange func(colorpick.ColorValue)
}

// WithMode selects Basic or Advanced.
func WithMode(m Mode) Option { return func(c *config) { c.mode = m } }

// WithOrigin places the picker's top-left corner in screen coordinates.
func WithOrigin(p image.Point) Option { return func(c *config) { c.origin = p } }

// WithFieldSize overrides the size of the spectrum or plane. The slider
// length follows the width.
func WithFieldSize(width, height int) Option {
	return func(c *config) {
		c.width = width
		c.height = height
	}
}

// WithSliderMargin sets the vertical gap between the plane and the slider
// of an Advanced picker.
func WithSliderMargin(n int) Option { return func(c *config) { c.margin = n } }

// WithValue sets the initial pointer position of the spectrum or plane.
func WithValue(v widget.AreaValue) Option { return func(c *config) { c.value = &v } }

// WithDisabled creates every widget disabled.
func WithDisabled(d bool) Option { return func(c *config) { c.disabled = d } }

// WithBackend selects the surface backend for every widget.
func WithBackend(name string) Option { return func(c *config) { c.backend = name } }

// WithOnChange sets the callback run whenever the picker value changes.
func WithOnChange(fn func(colorpick.ColorValue)) Option {
	return func(c *config) { c.onChange = fn }
}

// New creates a picker and renders every widget once.
func New(opts ...Option) (*Picker, error) {
	cfg := config{width: Width, height: FieldHeight, margin: SliderMargin}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Picker{mode: cfg.mode, onChange: cfg.onChange}
	fieldOpts := []widget.Option{
		widget.WithSize(cfg.width, cfg.height),
		widget.WithOrigin(cfg.origin),
		widget.WithDisabled(cfg.disabled),
		widget.WithBackend(cfg.backend),
		widget.WithOnChange(func(v widget.AreaValue) { p.update(v.ColorValue) }),
	}
	if cfg.value != nil {
		fieldOpts = append(fieldOpts, widget.WithValue(*cfg.value))
	}

	var err error
	switch cfg.mode {
	case Basic:
		p.spectrum, err = widget.NewSpectrum(fieldOpts...)
		if err != nil {
			return nil, fmt.Errorf("picker: %w", err)
		}
	case Advanced:
		p.plane, err = widget.NewPlane(fieldOpts...)
		if err != nil {
			return nil, fmt.Errorf("picker: %w", err)
		}
		p.slider, err = widget.NewSlider(
			widget.WithLength(cfg.width),
			widget.WithOrigin(cfg.origin.Add(image.Pt(0, cfg.height+cfg.margin))),
			widget.WithDisabled(cfg.disabled),
			widget.WithBackend(cfg.backend),
			widget.WithOnSliderChange(p.hueChanged),
		)
		if err != nil {
			_ = p.plane.Close()
			return nil, fmt.Errorf("picker: %w", err)
		}
	default:
		return nil, fmt.Errorf("picker: unknown mode %v", cfg.mode)
	}
	return p, nil
}

// hueChanged feeds the slider's color into the plane.
func (p *Picker) hueChanged(v widget.SliderValue) {
	if p.plane == nil {
		return
	}
	if err := p.plane.SetColor(v.Hex); err != nil {
		colorpick.Logger().Warn("picker: slider color rejected", "hex", v.Hex, "err", err)
	}
}

func (p *Picker) update(v colorpick.ColorValue) {
	p.value = v
	if p.onChange != nil {
		p.onChange(v)
	}
}

// Mode returns the picker mode.
func (p *Picker) Mode() Mode { return p.mode }

// Value returns the selected color.
func (p *Picker) Value() colorpick.ColorValue { return p.value }

// Preview returns the hex color of the preview swatch.
func (p *Picker) Preview() string { return p.value.Hex }

// Details holds the text of the R, G, B and HEX fields.
type Details struct {
	R, G, B string
	Hex     string
}

// Details returns the selected color formatted for display.
func (p *Picker) Details() Details {
	return Details{
		R:   strconv.Itoa(p.value.RGB.R),
		G:   strconv.Itoa(p.value.RGB.G),
		B:   strconv.Itoa(p.value.RGB.B),
		Hex: p.value.Hex,
	}
}

// Spectrum returns the spectrum of a Basic picker, or nil.
func (p *Picker) Spectrum() *widget.Spectrum { return p.spectrum }

// Plane returns the plane of an Advanced picker, or nil.
func (p *Picker) Plane() *widget.Plane { return p.plane }

// Slider returns the slider of an Advanced picker, or nil.
func (p *Picker) Slider() *widget.Slider { return p.slider }

func (p *Picker) targets() []target {
	if p.mode == Advanced {
		return []target{p.plane, p.slider}
	}
	return []target{p.spectrum}
}

// Bounds returns the union of the widget rectangles.
func (p *Picker) Bounds() image.Rectangle {
	var r image.Rectangle
	for _, t := range p.targets() {
		r = r.Union(t.Bounds())
	}
	return r
}

// Handle routes a screen-space pointer event and reports whether any
// widget changed.
func (p *Picker) Handle(ev pointer.Event) bool {
	switch ev.Kind {
	case pointer.Down:
		p.active = nil
		for _, t := range p.targets() {
			if ev.Point().In(t.Bounds()) {
				p.active = t
				return t.Handle(ev)
			}
		}
		return false
	case pointer.Move:
		if p.active == nil {
			return false
		}
		if !ev.Point().In(p.active.Bounds()) {
			return p.release(pointer.Event{Kind: pointer.Leave, X: ev.X, Y: ev.Y})
		}
		return p.active.Handle(ev)
	case pointer.Up, pointer.Leave:
		if p.active == nil {
			return false
		}
		return p.release(ev)
	}
	return false
}

func (p *Picker) release(ev pointer.Event) bool {
	t := p.active
	p.active = nil
	return t.Handle(ev)
}

// SetDisabled enables or disables every widget.
func (p *Picker) SetDisabled(d bool) {
	switch p.mode {
	case Advanced:
		p.plane.SetDisabled(d)
		p.slider.SetDisabled(d)
	default:
		p.spectrum.SetDisabled(d)
	}
}

// Close releases every widget surface.
func (p *Picker) Close() error {
	var first error
	closeOne := func(c interface{ Close() error }) {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	if p.spectrum != nil {
		closeOne(p.spectrum)
	}
	if p.plane != nil {
		closeOne(p.plane)
	}
	if p.slider != nil {
		closeOne(p.slider)
	}
	return first
}
