// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pointer

import (
	"image"

	"github.com/gogpu/colorpick"
)

// Policy decides whether a mapped position is committed.
type Policy interface {
	// Commit returns the position to commit for candidate and true, or
	// prev and false when the candidate is rejected.
	Commit(candidate, prev image.Point) (image.Point, bool)
}

// AreaPolicy accepts every mapped position of a 2D field, bounded to
// [0, Width) x [0, Height).
type AreaPolicy struct {
	Width, Height int
}

// Commit implements Policy.
func (p AreaPolicy) Commit(candidate, _ image.Point) (image.Point, bool) {
	if candidate.X > p.Width-1 {
		candidate.X = p.Width - 1
	}
	if candidate.Y > p.Height-1 {
		candidate.Y = p.Height - 1
	}
	if candidate.X < 0 {
		candidate.X = 0
	}
	if candidate.Y < 0 {
		candidate.Y = 0
	}
	return candidate, true
}

// SliderPolicy projects positions onto a slider track. Length is the track
// length along Orientation and Thickness the pointer glyph's extent along
// the same axis.
type SliderPolicy struct {
	Orientation colorpick.Orientation
	Length      int
	Thickness   int
}

// MaxPos returns Length - Thickness.
func (p SliderPolicy) MaxPos() int {
	return p.Length - p.Thickness
}

// Project returns the coordinate of pt along the track axis.
func (p SliderPolicy) Project(pt image.Point) int {
	if p.Orientation == colorpick.Vertical {
		return pt.Y
	}
	return pt.X
}

// Point places a scalar track position back on the track axis.
func (p SliderPolicy) Point(pos int) image.Point {
	if p.Orientation == colorpick.Vertical {
		return image.Pt(0, pos)
	}
	return image.Pt(pos, 0)
}

// Commit implements Policy. Positions up to MaxPos()-1 are taken exactly;
// anything further is rejected and prev is kept, so the pointer stops one
// unit short of the end rather than snapping to it.
func (p SliderPolicy) Commit(candidate, prev image.Point) (image.Point, bool) {
	pos := p.Project(candidate)
	if pos <= p.MaxPos()-1 {
		return p.Point(pos), true
	}
	return prev, false
}
