// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint provides the retained display list that widgets paint
// into, text measurement with a fixed bitmap face, and a rasterizer
// that turns a display list into an image.
package paint

import (
	"image/color"

	"cogentcore.org/arbor/math32"
)

// Scene is a retained display list. Each widget paints its own content
// into a Scene in local coordinates, and the paint pass assembles those
// fragments into the window scene with [Scene.Append].
type Scene struct {
	Items []Item
}

// Item is a union interface for scene items: [Rect], [Text] or [Group].
type Item interface {
	IsRenderItem()
}

// Rect is a filled axis-aligned rectangle.
type Rect struct {
	Rect  math32.Box2
	Color color.RGBA
}

// Text is a single line of text drawn with [Face], with Pos at the
// left end of the baseline.
type Text struct {
	Pos   math32.Vector2
	Text  string
	Color color.RGBA
}

// Group is a nested scene drawn with a transform and an optional clip
// rectangle in the group's local coordinates.
type Group struct {
	Transform math32.Matrix2
	Clip      math32.Box2
	HasClip   bool
	Scene     *Scene
}

// interface assertion.
func (r *Rect) IsRenderItem() {}

// interface assertion.
func (t *Text) IsRenderItem() {}

// interface assertion.
func (g *Group) IsRenderItem() {}

// Add adds item(s) to the scene.
func (s *Scene) Add(item ...Item) *Scene {
	s.Items = append(s.Items, item...)
	return s
}

// Reset resets back to an empty scene.
// It preserves the existing slice memory for re-use.
func (s *Scene) Reset() *Scene {
	clear(s.Items)
	s.Items = s.Items[:0]
	return s
}

// IsEmpty returns whether the scene has no items.
func (s *Scene) IsEmpty() bool {
	return len(s.Items) == 0
}

// FillRect adds a filled rectangle. Fully transparent fills are skipped.
func (s *Scene) FillRect(r math32.Box2, c color.RGBA) *Scene {
	if c.A == 0 || r.IsEmpty() {
		return s
	}
	return s.Add(&Rect{Rect: r, Color: c})
}

// StrokeRect adds the border of the rectangle as four filled rectangles
// inside it, with the given widths for the top, right, bottom and left.
func (s *Scene) StrokeRect(r math32.Box2, top, right, bottom, left float32, c color.RGBA) *Scene {
	s.FillRect(math32.B2(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+top), c)
	s.FillRect(math32.B2(r.Min.X, r.Max.Y-bottom, r.Max.X, r.Max.Y), c)
	s.FillRect(math32.B2(r.Min.X, r.Min.Y+top, r.Min.X+left, r.Max.Y-bottom), c)
	s.FillRect(math32.B2(r.Max.X-right, r.Min.Y+top, r.Max.X, r.Max.Y-bottom), c)
	return s
}

// DrawText adds a line of text with its baseline starting at pos.
func (s *Scene) DrawText(pos math32.Vector2, text string, c color.RGBA) *Scene {
	if text == "" || c.A == 0 {
		return s
	}
	return s.Add(&Text{Pos: pos, Text: text, Color: c})
}

// Append adds the child scene as a [Group] with the given transform.
// A non-nil clip restricts drawing to that rectangle in the child's
// coordinates. The child is referenced, not copied, so later edits to
// it are visible through this scene.
func (s *Scene) Append(child *Scene, transform math32.Matrix2, clip *math32.Box2) *Scene {
	g := &Group{Transform: transform, Scene: child}
	if clip != nil {
		g.Clip = *clip
		g.HasClip = true
	}
	return s.Add(g)
}

// Walk calls fun for every non-group item in drawing order,
// with the accumulated transform of the item.
func (s *Scene) Walk(fun func(it Item, transform math32.Matrix2)) {
	s.walk(math32.Identity2(), fun)
}

func (s *Scene) walk(m math32.Matrix2, fun func(it Item, transform math32.Matrix2)) {
	for _, it := range s.Items {
		if g, ok := it.(*Group); ok {
			if g.Scene != nil {
				g.Scene.walk(m.Mul(g.Transform), fun)
			}
			continue
		}
		fun(it, m)
	}
}

// Count returns the number of non-group items, including nested ones.
func (s *Scene) Count() int {
	n := 0
	s.Walk(func(Item, math32.Matrix2) { n++ })
	return n
}

// Texts returns the strings of every [Text] item in drawing order.
func (s *Scene) Texts() []string {
	var ts []string
	s.Walk(func(it Item, _ math32.Matrix2) {
		if t, ok := it.(*Text); ok {
			ts = append(ts, t.Text)
		}
	})
	return ts
}
