// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"cogentcore.org/arbor/math32"
)

// Rasterize draws the scene into a new image of the given size,
// filled first with the given background color. Rectangles are drawn
// as the axis-aligned bounds of their transformed corners, and text is
// positioned by its transformed origin without scaling.
func (s *Scene) Rasterize(size image.Point, background color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: size})
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	s.rasterize(img, math32.Identity2(), img.Bounds())
	return img
}

func (s *Scene) rasterize(img *image.RGBA, m math32.Matrix2, clip image.Rectangle) {
	for _, it := range s.Items {
		switch it := it.(type) {
		case *Rect:
			r := it.Rect.MulMatrix2(m).ToRect().Intersect(clip)
			if !r.Empty() {
				draw.Draw(img, r, image.NewUniform(it.Color), image.Point{}, draw.Over)
			}
		case *Text:
			if clip.Empty() {
				continue
			}
			pos := m.MulVector2AsPoint(it.Pos)
			d := font.Drawer{
				Dst:  img.SubImage(clip).(*image.RGBA),
				Src:  image.NewUniform(it.Color),
				Face: Face,
				Dot:  fixed.P(int(math32.Round(pos.X)), int(math32.Round(pos.Y))),
			}
			d.DrawString(it.Text)
		case *Group:
			if it.Scene == nil {
				continue
			}
			gm := m.Mul(it.Transform)
			gc := clip
			if it.HasClip {
				gc = gc.Intersect(it.Clip.MulMatrix2(gm).ToRect())
			}
			it.Scene.rasterize(img, gm, gc)
		}
	}
}
