package colorpick

import (
	"fmt"
	"strings"
)

// Orientation is the long axis of a slider.
type Orientation int

const (
	// Horizontal lays the slider track along the x axis.
	Horizontal Orientation = iota
	// Vertical lays the slider track along the y axis.
	Vertical
)

// String returns "HORIZONTAL" or "VERTICAL".
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "HORIZONTAL"
	case Vertical:
		return "VERTICAL"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation accepts "horizontal" or "vertical" in any case.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("colorpick: unknown orientation %q", s)
}
