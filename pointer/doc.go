// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pointer turns raw pointer events into committed widget positions.
//
// Map translates screen coordinates into surface-local ones. The drag state
// machine has two states, Idle and Dragging:
//
//	Idle     --Down-->        Dragging (position policy applied)
//	Dragging --Move-->        Dragging (position policy applied)
//	Dragging --Up / Leave-->  Idle     (position kept)
//
// Move events while Idle are ignored. A disabled Controller ignores every
// event. Policies decide which mapped positions are committed: AreaPolicy
// keeps the mapped point inside the surface, SliderPolicy projects onto the
// track axis and rejects positions past the end of the track.
package pointer
