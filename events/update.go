// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// UpdateTypes is the kind of an [Update].
type UpdateTypes int32

const (
	// WidgetAdded is sent once to a widget after it is inserted into the tree.
	WidgetAdded UpdateTypes = iota

	// WidgetRemoved is sent to a widget right before it is removed
	// from the tree, children before parents.
	WidgetRemoved

	// DisabledChanged is sent when the effective disabled state changes,
	// either directly or through an ancestor.
	DisabledChanged

	// FocusChanged is sent when the widget gains or loses focus.
	FocusChanged

	// ChildFocusChanged is sent when the focused widget enters or leaves
	// the subtree of the widget.
	ChildFocusChanged

	// HoveredChanged is sent when the pointer enters or leaves the widget.
	HoveredChanged

	// ChildHoveredChanged is sent when the hovered widget enters or
	// leaves the subtree of the widget.
	ChildHoveredChanged

	// TimerFired is sent when a timer requested by the widget expires.
	TimerFired
)

var updateTypeNames = [...]string{"WidgetAdded", "WidgetRemoved", "DisabledChanged", "FocusChanged", "ChildFocusChanged", "HoveredChanged", "ChildHoveredChanged", "TimerFired"}

func (t UpdateTypes) String() string {
	if t < 0 || int(t) >= len(updateTypeNames) {
		return fmt.Sprintf("UpdateTypes(%d)", int32(t))
	}
	return updateTypeNames[t]
}

// TimerToken identifies a timer requested by a widget.
type TimerToken uint64

// Update is a lifecycle notification derived by the render root.
type Update struct {
	Type UpdateTypes

	// Value is the new state for the Changed types.
	Value bool

	// Timer is the token of the fired timer for [TimerFired].
	Timer TimerToken
}

func (u Update) String() string {
	switch u.Type {
	case TimerFired:
		return fmt.Sprintf("%v(%d)", u.Type, u.Timer)
	case WidgetAdded, WidgetRemoved:
		return u.Type.String()
	}
	return fmt.Sprintf("%v(%v)", u.Type, u.Value)
}
