// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package widgets provides a small set of reference widgets built on
// package core: [Label], [Button], [Flex], [SizedBox], [TextInput]
// and [Spinner].
//
// Each widget can be configured freely before it is inserted into a
// tree. Once inserted, it must only be changed through the mutation
// functions of this package, such as [SetLabelText], which take a
// [core.WidgetMut] and request the passes the change needs.
package widgets

import (
	"image/color"

	"github.com/cespare/xxhash/v2"

	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/properties"
	"cogentcore.org/arbor/styles"
	"cogentcore.org/arbor/styles/sides"
)

// insets returns the border and padding of a widget.
func insets(props properties.Ref) sides.Floats {
	return styles.Insets(properties.Lookup[styles.BorderWidth](props), properties.Lookup[styles.Padding](props))
}

// textColor returns c if it is set, and the TextColor property otherwise.
func textColor(props properties.Ref, c color.RGBA) color.RGBA {
	if c != (color.RGBA{}) {
		return c
	}
	return properties.Lookup[styles.TextColor](props).Color
}

// clampFinite returns v clamped to [lo, hi], or lo when the result
// would not be finite.
func clampFinite(v, lo, hi float32) float32 {
	v = math32.Clamp(v, lo, hi)
	if !math32.IsFinite(v) {
		return lo
	}
	return v
}

// hashString returns the hash of s used in widget fingerprints.
func hashString(s string) uint64 { return xxhash.Sum64String(s) }
