package widget

import "github.com/gogpu/colorpick"

// AreaValue is the value of a 2D widget: the committed pointer position and
// the color sampled there.
type AreaValue struct {
	X int `json:"x"`
	Y int `json:"y"`
	colorpick.ColorValue
}

// SliderValue is the value of a slider: the committed track position and
// the color sampled behind the thumb.
type SliderValue struct {
	Pos int `json:"pos"`
	colorpick.ColorValue
}
