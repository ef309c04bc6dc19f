// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pointer

import (
	"fmt"
	"image"
)

// Kind identifies a pointer event.
type Kind uint8

const (
	// Down is a button press.
	Down Kind = iota + 1
	// Move is pointer motion.
	Move
	// Up is a button release.
	Up
	// Leave is the pointer exiting the widget.
	Leave
)

// String returns the event kind name.
func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	case Leave:
		return "leave"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Event is a raw pointer event in screen coordinates.
type Event struct {
	Kind Kind
	X, Y int
}

// Point returns the event's screen position.
func (e Event) Point() image.Point { return image.Pt(e.X, e.Y) }

// Map translates a screen position into coordinates local to bounds,
// clamping negative results to 0 on each axis. There is no upper clamp;
// the valid maximum belongs to the position policy.
func Map(screen image.Point, bounds image.Rectangle) image.Point {
	p := screen.Sub(bounds.Min)
	if p.X < 0 {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = 0
	}
	return p
}
