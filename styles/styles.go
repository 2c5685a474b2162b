// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles provides the box property types that the paint pass
// reads from every widget's property store: background, border,
// padding and text color. Each type is its own property key.
package styles

import (
	"image/color"

	"cogentcore.org/arbor/styles/sides"
)

// Background is the fill color of the widget box.
// The default is fully transparent, which paints nothing.
type Background struct {
	Color color.RGBA
}

// BorderColor is the color of the widget border.
type BorderColor struct {
	Color color.RGBA
}

// StaticDefault returns opaque black.
func (BorderColor) StaticDefault() BorderColor {
	return BorderColor{color.RGBA{A: 255}}
}

// BorderWidth is the width of each side of the widget border.
// It takes up space inside the widget box, so it affects layout.
type BorderWidth struct {
	sides.Floats
}

// NewBorderWidth returns a [BorderWidth] set with [sides.Sides.Set] semantics.
func NewBorderWidth(vals ...float32) BorderWidth {
	return BorderWidth{sides.NewFloats(vals...)}
}

func (BorderWidth) AffectsLayout() bool { return true }

// Sanitize replaces negative and non-finite widths with zero.
func (b BorderWidth) Sanitize() (BorderWidth, bool) {
	if b.IsValid() {
		return b, true
	}
	return BorderWidth{b.Clamped()}, false
}

// Padding is the space between the border and the content of a widget.
type Padding struct {
	sides.Floats
}

// NewPadding returns a [Padding] set with [sides.Sides.Set] semantics.
func NewPadding(vals ...float32) Padding {
	return Padding{sides.NewFloats(vals...)}
}

func (Padding) AffectsLayout() bool { return true }

// Sanitize replaces negative and non-finite padding with zero.
func (p Padding) Sanitize() (Padding, bool) {
	if p.IsValid() {
		return p, true
	}
	return Padding{p.Clamped()}, false
}

// TextColor is the color used for text content.
type TextColor struct {
	Color color.RGBA
}

// StaticDefault returns opaque black.
func (TextColor) StaticDefault() TextColor {
	return TextColor{color.RGBA{A: 255}}
}

// Insets returns the total space taken by border and padding on
// each side, which layout reserves around the content.
func Insets(b BorderWidth, p Padding) sides.Floats {
	return b.Add(p.Floats)
}
