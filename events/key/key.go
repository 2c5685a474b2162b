// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the key codes and modifier flags carried by
// keyboard events.
package key

import "cogentcore.org/arbor/bitflag"

// Codes is the identity of a physical key, independent of the
// character it produces.
type Codes int32

const (
	CodeUnknown Codes = iota
	CodeTab
	CodeReturnEnter
	CodeEscape
	CodeSpacebar
	CodeBackspace
	CodeDelete
	CodeLeftArrow
	CodeRightArrow
	CodeUpArrow
	CodeDownArrow
	CodeHome
	CodeEnd
	// CodeRune is any key that produces a character not listed above.
	CodeRune
)

var codeNames = [...]string{"Unknown", "Tab", "ReturnEnter", "Escape", "Spacebar", "Backspace", "Delete", "LeftArrow", "RightArrow", "UpArrow", "DownArrow", "Home", "End", "Rune"}

// String returns the name of the code.
func (c Codes) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return "Unknown"
	}
	return codeNames[c]
}

// Modifiers are used as bitflags representing a set of modifier keys.
type Modifiers int64

const (
	// Shift is the shift key.
	Shift Modifiers = iota

	// Control is the control key.
	Control

	// Alt is the alt (option on macOS) key.
	Alt

	// Meta is the system meta key (command on macOS, windows key on Windows).
	Meta
)

var modifierNames = [...]string{"Shift", "Control", "Alt", "Meta"}

// String returns the name of the modifier.
func (m Modifiers) String() string {
	if m < 0 || int(m) >= len(modifierNames) {
		return "Modifiers(?)"
	}
	return modifierNames[m]
}

// ModifierSet is a set of [Modifiers].
type ModifierSet = bitflag.Flags[Modifiers]

// Mods returns a [ModifierSet] holding the given modifiers.
func Mods(mods ...Modifiers) ModifierSet {
	return bitflag.Mask(mods...)
}
