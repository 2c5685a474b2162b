// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/arbor/math32"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
	white = color.RGBA{255, 255, 255, 255}
)

func TestMeasureText(t *testing.T) {
	m := MeasureText("hello")
	assert.Equal(t, math32.Vec2(35, 13), m.Size)
	assert.Equal(t, float32(11), m.Baseline)
	assert.Equal(t, float32(0), MeasureText("").Size.X)
	assert.Equal(t, float32(14), RuneOffset("hello", 2))
	assert.Equal(t, float32(35), RuneOffset("hello", 99))
}

func TestSceneItems(t *testing.T) {
	s := &Scene{}
	s.FillRect(math32.B2(0, 0, 10, 10), color.RGBA{})
	assert.True(t, s.IsEmpty(), "transparent fills are skipped")
	s.FillRect(math32.B2(0, 0, 10, 10), red)
	s.DrawText(math32.Vec2(0, 11), "hi", blue)
	s.StrokeRect(math32.B2(0, 0, 10, 10), 1, 1, 1, 1, blue)
	assert.Equal(t, 6, s.Count())
	assert.Equal(t, []string{"hi"}, s.Texts())

	parent := &Scene{}
	parent.Append(s, math32.Translate2D(5, 5), nil)
	parent.Append(s, math32.Translate2D(20, 0), nil)
	assert.Equal(t, 12, parent.Count())

	var origins []math32.Vector2
	parent.Walk(func(it Item, m math32.Matrix2) {
		if _, ok := it.(*Text); ok {
			origins = append(origins, m.Translation())
		}
	})
	assert.Equal(t, []math32.Vector2{math32.Vec2(5, 5), math32.Vec2(20, 0)}, origins)

	s.Reset()
	assert.Equal(t, 0, parent.Count(), "groups reference their scene")
}

func TestRasterize(t *testing.T) {
	child := &Scene{}
	child.FillRect(math32.B2(0, 0, 10, 10), red)

	s := &Scene{}
	s.Append(child, math32.Translate2D(5, 5), nil)
	clip := math32.B2(0, 0, 4, 4)
	s.Append(child, math32.Translate2D(20, 20), &clip)

	img := s.Rasterize(image.Pt(40, 40), white)
	require.Equal(t, image.Rect(0, 0, 40, 40), img.Bounds())
	assert.Equal(t, white, img.RGBAAt(0, 0))
	assert.Equal(t, red, img.RGBAAt(5, 5))
	assert.Equal(t, red, img.RGBAAt(14, 14))
	assert.Equal(t, white, img.RGBAAt(15, 15))
	assert.Equal(t, red, img.RGBAAt(23, 23))
	assert.Equal(t, white, img.RGBAAt(24, 24), "clipped")
}

func TestRasterizeText(t *testing.T) {
	s := &Scene{}
	s.DrawText(math32.Vec2(0, 11), "W", blue)
	img := s.Rasterize(image.Pt(7, 13), white)
	n := 0
	for y := range 13 {
		for x := range 7 {
			if img.RGBAAt(x, y) != white {
				n++
			}
		}
	}
	assert.Greater(t, n, 0)
}
