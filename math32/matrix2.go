// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Matrix2 is a 3x2 matrix for 2D affine transforms:
//
//	[XX XY X0]
//	[YX YY Y0]
//
// The zero value is not the identity; use [Identity2].
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2] matrix.
func Identity2() Matrix2 {
	return Matrix2{1, 0, 0, 1, 0, 0}
}

// Translate2D returns a matrix that translates by the given amounts.
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{1, 0, 0, 1, x, y}
}

// Scale2D returns a matrix that scales by the given factors.
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{x, 0, 0, y, 0, 0}
}

// Rotate2D returns a matrix that rotates by the given angle in radians.
func Rotate2D(angle float32) Matrix2 {
	c := Cos(angle)
	s := Sin(angle)
	return Matrix2{c, s, -s, c, 0, 0}
}

// String implements [fmt.Stringer].
func (a Matrix2) String() string {
	return fmt.Sprintf("matrix(%g,%g,%g,%g,%g,%g)", a.XX, a.YX, a.XY, a.YY, a.X0, a.Y0)
}

// IsIdentity returns whether the matrix is the identity.
func (a Matrix2) IsIdentity() bool {
	return a == Identity2()
}

// Mul returns a*b. Applying the result to a point is the same as
// applying b and then a.
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// MulVector2AsPoint multiplies the Vector2 as a point, including translation.
func (a Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	return Vector2{a.XX*v.X + a.XY*v.Y + a.X0, a.YX*v.X + a.YY*v.Y + a.Y0}
}

// MulVector2AsVector multiplies the Vector2 as a vector, without translation.
func (a Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	return Vector2{a.XX*v.X + a.XY*v.Y, a.YX*v.X + a.YY*v.Y}
}

// Translation returns the translation component of the matrix.
func (a Matrix2) Translation() Vector2 {
	return Vector2{a.X0, a.Y0}
}

// Det returns the determinant of the matrix.
func (a Matrix2) Det() float32 {
	return a.XX*a.YY - a.XY*a.YX
}

// Inverse returns the inverse of the matrix.
// A singular matrix returns the zero matrix.
func (a Matrix2) Inverse() Matrix2 {
	det := a.Det()
	if det == 0 {
		return Matrix2{}
	}
	id := 1 / det
	return Matrix2{
		XX: a.YY * id,
		YX: -a.YX * id,
		XY: -a.XY * id,
		YY: a.XX * id,
		X0: (a.XY*a.Y0 - a.YY*a.X0) * id,
		Y0: (a.YX*a.X0 - a.XX*a.Y0) * id,
	}
}
