// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"cogentcore.org/arbor/math32"
)

// Face is the font face used for all text measurement and drawing.
// It is a fixed-width 7x13 bitmap face, which keeps sizes stable
// across platforms.
var Face font.Face = basicfont.Face7x13

// TextMetrics is the measured size of a line of text.
type TextMetrics struct {
	// Size is the width of the text and the line height.
	Size math32.Vector2

	// Baseline is the distance from the top of the line to the baseline.
	Baseline float32
}

// MeasureText returns the metrics of a single line of text in [Face].
func MeasureText(text string) TextMetrics {
	m := Face.Metrics()
	w := font.MeasureString(Face, text).Ceil()
	return TextMetrics{
		Size:     math32.Vec2(float32(w), float32(m.Height.Ceil())),
		Baseline: float32(m.Ascent.Ceil()),
	}
}

// RuneOffset returns the horizontal offset of the given byte index
// into text, which is where a cursor before that byte is drawn.
func RuneOffset(text string, index int) float32 {
	index = min(max(index, 0), len(text))
	return float32(font.MeasureString(Face, text[:index]).Ceil())
}
