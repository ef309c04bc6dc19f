// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"

	"github.com/gogpu/colorpick"
	"github.com/gogpu/colorpick/surface"
)

// Selector ring geometry.
const (
	SelectorRadius    = 4
	SelectorLineWidth = 2
)

// Slider thumb geometry. PointerSize is the thumb's extent along the track,
// ShadowSize the offset of its shadow.
const (
	PointerSize    = 4
	ShadowSize     = 1
	TrackThickness = 9
)

var (
	selectorStroke = colorpick.White
	thumbFill      = colorpick.White
	thumbStroke    = colorpick.MustParseColor("#dddddd")
	thumbShadow    = colorpick.MustParseColor("#707070")
)

// Selector draws the ring glyph centred on p. The centre pixel is left
// untouched.
func Selector(s surface.Surface, p image.Point) {
	s.StrokeRing(p.X, p.Y, SelectorRadius, SelectorLineWidth, selectorStroke)
}

// SliderThumb draws the shadow at pos+ShadowSize and then the thumb at pos,
// spanning thickness across the track.
func SliderThumb(s surface.Surface, pos int, o colorpick.Orientation, thickness int) {
	s.FillRect(thumbRect(pos+ShadowSize, o, thickness), thumbShadow)

	r := thumbRect(pos, o, thickness)
	s.FillRect(r, thumbFill)
	s.StrokeRect(r, thumbStroke)
}

func thumbRect(pos int, o colorpick.Orientation, thickness int) image.Rectangle {
	if o == colorpick.Vertical {
		return image.Rect(0, pos, thickness, pos+PointerSize)
	}
	return image.Rect(pos, 0, pos+PointerSize, thickness)
}
