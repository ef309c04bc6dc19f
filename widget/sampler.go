package widget

import (
	"image"

	"github.com/gogpu/colorpick"
	"github.com/gogpu/colorpick/render"
	"github.com/gogpu/colorpick/surface"
)

// SliderSampleOffset is how far past the committed position a slider reads
// its color: the trailing edge of the thumb and its shadow.
const SliderSampleOffset = render.PointerSize + render.ShadowSize

// SampleArea reads the color at p.
func SampleArea(s surface.Surface, p image.Point) colorpick.ColorValue {
	return colorpick.FromNRGBA(s.ReadPixel(p.X, p.Y))
}

// SampleSlider reads the color SliderSampleOffset units past pos along the
// track axis. Reads past the end of the track return black, like any
// read outside the surface.
func SampleSlider(s surface.Surface, pos int, o colorpick.Orientation) colorpick.ColorValue {
	at := pos + SliderSampleOffset
	if o == colorpick.Vertical {
		return colorpick.FromNRGBA(s.ReadPixel(0, at))
	}
	return colorpick.FromNRGBA(s.ReadPixel(at, 0))
}
