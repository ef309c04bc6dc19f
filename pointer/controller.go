// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pointer

import (
	"image"

	"github.com/gogpu/colorpick"
)

// State is the pointer state of one widget.
type State struct {
	Position image.Point
	Dragging bool
}

// Transition applies ev to s and returns the next state. bounds is the
// widget's screen rectangle. Transition has no side effects.
func Transition(s State, ev Event, bounds image.Rectangle, p Policy) State {
	next, _ := transition(s, ev, bounds, p)
	return next
}

// transition also reports whether a candidate position was rejected.
func transition(s State, ev Event, bounds image.Rectangle, p Policy) (State, bool) {
	switch ev.Kind {
	case Down:
		pos, ok := p.Commit(Map(ev.Point(), bounds), s.Position)
		return State{Position: pos, Dragging: true}, !ok
	case Move:
		if !s.Dragging {
			return s, false
		}
		pos, ok := p.Commit(Map(ev.Point(), bounds), s.Position)
		return State{Position: pos, Dragging: true}, !ok
	case Up, Leave:
		return State{Position: s.Position}, false
	}
	return s, false
}

// Controller owns a State and gates transitions on the disabled flag.
type Controller struct {
	state    State
	policy   Policy
	bounds   image.Rectangle
	disabled bool
}

// NewController returns an Idle controller at position start. bounds is
// the widget's rectangle in screen coordinates.
func NewController(start image.Point, bounds image.Rectangle, p Policy) *Controller {
	return &Controller{
		state:  State{Position: start},
		policy: p,
		bounds: bounds,
	}
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Position returns the committed position.
func (c *Controller) Position() image.Point { return c.state.Position }

// SetPosition commits pos directly, bypassing the policy. It is used when a
// widget is given an explicit value.
func (c *Controller) SetPosition(pos image.Point) { c.state.Position = pos }

// Bounds returns the widget's screen rectangle.
func (c *Controller) Bounds() image.Rectangle { return c.bounds }

// SetBounds moves the widget on screen.
func (c *Controller) SetBounds(r image.Rectangle) { c.bounds = r }

// SetPolicy replaces the position policy, e.g. after a slider changes
// orientation.
func (c *Controller) SetPolicy(p Policy) { c.policy = p }

// Disabled reports whether events are ignored.
func (c *Controller) Disabled() bool { return c.disabled }

// SetDisabled enables or disables event handling. Disabling while dragging
// leaves the state untouched.
func (c *Controller) SetDisabled(d bool) { c.disabled = d }

// Handle applies ev and reports whether the state changed.
func (c *Controller) Handle(ev Event) (State, bool) {
	if c.disabled {
		return c.state, false
	}
	prev := c.state
	next, rejected := transition(prev, ev, c.bounds, c.policy)
	if rejected {
		colorpick.Logger().Debug("pointer position rejected",
			"event", ev.Kind.String(), "x", ev.X, "y", ev.Y, "kept", prev.Position)
	}
	c.state = next
	return next, next != prev
}
