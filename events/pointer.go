// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the input events that the driver feeds into a
// render root, the window events that drive layout and animation, and
// the lifecycle updates that the render root derives and delivers to
// widgets itself.
package events

import (
	"fmt"

	"cogentcore.org/arbor/events/key"
	"cogentcore.org/arbor/math32"
)

// Buttons is a pointer button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

var buttonNames = [...]string{"NoButton", "Left", "Middle", "Right"}

func (b Buttons) String() string {
	if b < 0 || int(b) >= len(buttonNames) {
		return fmt.Sprintf("Buttons(%d)", int32(b))
	}
	return buttonNames[b]
}

// PointerTypes is the kind of a [PointerEvent].
type PointerTypes int32

const (
	// PointerDown happens when a button is pressed.
	PointerDown PointerTypes = iota

	// PointerUp happens when a button is released.
	PointerUp

	// PointerMove happens when the pointer moves, with or without
	// a button down.
	PointerMove

	// PointerScroll is a scroll wheel or trackpad scroll,
	// with the amount in [PointerEvent.Delta].
	PointerScroll

	// PointerLeave happens when the pointer leaves the window.
	// It is not hit tested.
	PointerLeave
)

var pointerTypeNames = [...]string{"PointerDown", "PointerUp", "PointerMove", "PointerScroll", "PointerLeave"}

func (t PointerTypes) String() string {
	if t < 0 || int(t) >= len(pointerTypeNames) {
		return fmt.Sprintf("PointerTypes(%d)", int32(t))
	}
	return pointerTypeNames[t]
}

// PointerEvent is a mouse, pen or touch event in window coordinates.
type PointerEvent struct {
	Type   PointerTypes
	Button Buttons

	// Pos is the position of the pointer in window coordinates.
	Pos math32.Vector2

	// Delta is the scroll amount for [PointerScroll].
	Delta math32.Vector2

	Mods key.ModifierSet
}

// NewPointer returns a new [PointerEvent] of the given type.
func NewPointer(typ PointerTypes, but Buttons, pos math32.Vector2) *PointerEvent {
	return &PointerEvent{Type: typ, Button: but, Pos: pos}
}

func (ev *PointerEvent) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Mods: %v}", ev.Type, ev.Button, ev.Pos, ev.Mods)
}

// HasPos returns whether the event is hit tested.
func (ev *PointerEvent) HasPos() bool {
	return ev.Type != PointerLeave
}
