// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	name string
}

func update(s []*item, names []string, destroyed *[]string) ([]*item, bool) {
	return Update(s, names,
		func(e *item) string { return e.name },
		func(k string, i int) *item { return &item{name: k} },
		func(e *item) { *destroyed = append(*destroyed, e.name) })
}

func names(s []*item) []string {
	r := make([]string, len(s))
	for i, e := range s {
		r[i] = e.name
	}
	return r
}

func TestUpdate(t *testing.T) {
	var s []*item
	var destroyed []string

	s, mods := update(s, []string{"a", "b", "c"}, &destroyed)
	assert.Equal(t, []string{"a", "b", "c"}, names(s))
	assert.True(t, mods)
	b := s[1]

	s, mods = update(s, []string{"a", "aa", "b", "c"}, &destroyed)
	assert.Equal(t, []string{"a", "aa", "b", "c"}, names(s))
	assert.True(t, mods)
	assert.Same(t, b, s[2])

	s, mods = update(s, []string{"c", "aa", "bb"}, &destroyed)
	assert.Equal(t, []string{"c", "aa", "bb"}, names(s))
	assert.True(t, mods)
	assert.ElementsMatch(t, []string{"a", "b"}, destroyed)

	s, mods = update(s, []string{"c", "aa", "bb"}, &destroyed)
	assert.Equal(t, []string{"c", "aa", "bb"}, names(s))
	assert.False(t, mods)
}

func TestUpdateKeys(t *testing.T) {
	ids := []uint64{1, 2, 3}
	var gone []uint64
	r, mods := Update(ids, []uint64{3, 1, 4},
		func(e uint64) uint64 { return e },
		func(k uint64, i int) uint64 { return k },
		func(e uint64) { gone = append(gone, e) })
	assert.True(t, mods)
	assert.Equal(t, []uint64{3, 1, 4}, r)
	assert.Equal(t, []uint64{2}, gone)
}
