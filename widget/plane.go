package widget

import (
	"fmt"

	"github.com/gogpu/colorpick"
	"github.com/gogpu/colorpick/render"
)

// Plane is the saturation/value plane of a base color: white fading out
// across x, black fading in down y.
type Plane struct {
	*area
	color string
}

// NewPlane creates a plane and runs its first render cycle.
// Relevant options: WithSize, WithColor, WithValue, WithDisabled,
// WithOrigin, WithBackend, WithOnChange.
func NewPlane(opts ...Option) (*Plane, error) {
	o := buildOptions(opts)
	base, err := colorpick.ParseColor(o.color)
	if err != nil {
		return nil, fmt.Errorf("widget: plane: %w", err)
	}
	a, err := newArea("plane", render.PlaneField{Base: base}, o)
	if err != nil {
		return nil, err
	}
	return &Plane{area: a, color: o.color}, nil
}

// Color returns the base color string.
func (p *Plane) Color() string { return p.color }

// SetColor changes the base color and re-renders. An unparseable color is
// reported and the previous base is kept. Setting the current color again
// does nothing.
func (p *Plane) SetColor(c string) error {
	if c == p.color {
		return nil
	}
	base, err := colorpick.ParseColor(c)
	if err != nil {
		colorpick.Logger().Warn("base color ignored",
			"widget", p.kind, "id", p.id, "color", c, "err", err)
		return fmt.Errorf("widget: plane: %w", err)
	}
	p.color = c
	p.field = render.PlaneField{Base: base}
	p.refresh()
	return nil
}
