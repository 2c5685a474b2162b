// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/arbor/events/key"
)

// TextTypes is the kind of a [TextEvent].
type TextTypes int32

const (
	// KeyDown happens when a key is pressed.
	KeyDown TextTypes = iota

	// KeyUp happens when a key is released.
	KeyUp

	// ImeCommit is text committed by the input method.
	ImeCommit

	// Paste is text pasted from the clipboard.
	Paste
)

var textTypeNames = [...]string{"KeyDown", "KeyUp", "ImeCommit", "Paste"}

func (t TextTypes) String() string {
	if t < 0 || int(t) >= len(textTypeNames) {
		return fmt.Sprintf("TextTypes(%d)", int32(t))
	}
	return textTypeNames[t]
}

// TextEvent is a keyboard or input method event, delivered to the
// focused widget.
type TextEvent struct {
	Type TextTypes
	Code key.Codes

	// Rune is the character produced by a key, or 0.
	Rune rune

	// Text is the committed or pasted text.
	Text string

	Mods key.ModifierSet
}

// NewKey returns a new [KeyDown] event for the given code and rune.
func NewKey(code key.Codes, r rune, mods ...key.Modifiers) *TextEvent {
	return &TextEvent{Type: KeyDown, Code: code, Rune: r, Mods: key.Mods(mods...)}
}

// NewImeCommit returns a new [ImeCommit] event with the given text.
func NewImeCommit(text string) *TextEvent {
	return &TextEvent{Type: ImeCommit, Text: text}
}

func (ev *TextEvent) String() string {
	return fmt.Sprintf("%v{Code: %v, Rune: %q, Text: %q, Mods: %v}", ev.Type, ev.Code, ev.Rune, ev.Text, ev.Mods)
}

// IsTab returns whether the event is a Tab key down, and whether it
// has the shift modifier.
func (ev *TextEvent) IsTab() (tab, shift bool) {
	if ev.Type != KeyDown || ev.Code != key.CodeTab {
		return false, false
	}
	return true, ev.Mods.HasFlag(key.Shift)
}
