// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitflag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type color int64

const (
	red color = iota
	green
	blue
)

func (c color) String() string {
	return [...]string{"red", "green", "blue"}[c]
}

func TestFlags(t *testing.T) {
	var fs Flags[color]
	assert.True(t, fs.IsZero())
	assert.Equal(t, "0", fs.String())

	fs.SetFlag(true, red, blue)
	fs.SetFlag(true, red)
	assert.True(t, fs.HasFlag(red))
	assert.False(t, fs.HasFlag(green))
	assert.True(t, fs.HasAny(green, blue))
	assert.False(t, fs.HasAll(green, blue))
	assert.True(t, fs.HasAll(red, blue))
	assert.Equal(t, []color{red, blue}, fs.Set())
	assert.Equal(t, "red|blue", fs.String())

	fs.SetFlag(false, red)
	assert.Equal(t, Mask(blue), fs)
}
