// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"
)

// Box2 represents a 2D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2FromSize returns a new [Box2] at the origin with the given size.
func B2FromSize(size Vector2) Box2 {
	return Box2{Max: size}
}

// B2Empty returns a new [Box2] with empty minimum and maximum values,
// which is the identity for [Box2.Union].
func B2Empty() Box2 {
	return Box2{Vector2Scalar(Infinity), Vector2Scalar(-Infinity)}
}

// String implements [fmt.Stringer].
func (b Box2) String() string {
	return fmt.Sprintf("[%v - %v]", b.Min, b.Max)
}

// IsEmpty returns if this bounding box is empty (max < min on any coord).
func (b Box2) IsEmpty() bool {
	return (b.Max.X < b.Min.X) || (b.Max.Y < b.Min.Y)
}

// Size returns the size of the box.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint returns if this bounding box contains the specified point.
// The minimum edge is inclusive and the maximum edge is exclusive.
func (b Box2) ContainsPoint(point Vector2) bool {
	return point.X >= b.Min.X && point.X < b.Max.X &&
		point.Y >= b.Min.Y && point.Y < b.Max.Y
}

// Intersect returns the intersection with other box.
func (b Box2) Intersect(other Box2) Box2 {
	return Box2{b.Min.Max(other.Min), b.Max.Min(other.Max)}
}

// Union returns the union with other box.
func (b Box2) Union(other Box2) Box2 {
	if other.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return other
	}
	return Box2{b.Min.Min(other.Min), b.Max.Max(other.Max)}
}

// Translate returns translated position of this box by offset.
func (b Box2) Translate(offset Vector2) Box2 {
	return Box2{b.Min.Add(offset), b.Max.Add(offset)}
}

// Inset returns the box shrunk by the given amount on every side.
func (b Box2) Inset(d float32) Box2 {
	return Box2{b.Min.Add(Vector2Scalar(d)), b.Max.Sub(Vector2Scalar(d))}
}

// MulMatrix2 returns the axis-aligned bounding box of this box
// transformed by the given matrix.
func (b Box2) MulMatrix2(m Matrix2) Box2 {
	tl := m.MulVector2AsPoint(b.Min)
	br := m.MulVector2AsPoint(b.Max)
	tr := m.MulVector2AsPoint(Vec2(b.Max.X, b.Min.Y))
	bl := m.MulVector2AsPoint(Vec2(b.Min.X, b.Max.Y))
	return Box2{tl.Min(br).Min(tr).Min(bl), tl.Max(br).Max(tr).Max(bl)}
}

// ToRect returns the box as an [image.Rectangle],
// rounding the minimum down and the maximum up.
func (b Box2) ToRect() image.Rectangle {
	return image.Rectangle{Min: b.Min.ToPointFloor(), Max: b.Max.ToPointCeil()}
}
