// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix2(t *testing.T) {
	assert.True(t, Identity2().IsIdentity())
	assert.False(t, Matrix2{}.IsIdentity())

	v := Vec2(2, 3)
	assert.Equal(t, Vec2(7, 9), Translate2D(5, 6).MulVector2AsPoint(v))
	assert.Equal(t, v, Translate2D(5, 6).MulVector2AsVector(v))
	assert.Equal(t, Vec2(4, 9), Scale2D(2, 3).MulVector2AsPoint(v))

	// scale is applied first, then translation
	m := Translate2D(10, 0).Mul(Scale2D(2, 2))
	assert.Equal(t, Vec2(14, 6), m.MulVector2AsPoint(v))
	assert.Equal(t, Vec2(10, 0), m.Translation())

	inv := m.Inverse()
	assert.Equal(t, v, inv.MulVector2AsPoint(m.MulVector2AsPoint(v)))
	assert.Equal(t, Matrix2{}, Scale2D(0, 1).Inverse())
}

func TestMatrix2Rotate(t *testing.T) {
	p := Rotate2D(Pi / 2).MulVector2AsPoint(Vec2(1, 0))
	assert.InDelta(t, 0, p.X, 1e-6)
	assert.InDelta(t, 1, p.Y, 1e-6)
	assert.Equal(t, "matrix(1,0,0,1,3,4)", Translate2D(3, 4).String())
}
