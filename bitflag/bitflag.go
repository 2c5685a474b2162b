// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitflag provides a set of bit flags indexed by ordinal
// enum values (const iota's), so that flag types can be declared as
// simple ordinal lists while being stored in a single int64.
package bitflag

import (
	"fmt"
	"strings"
)

// Flag is the constraint for ordinal flag values, which must be
// less than 64 and have a name.
type Flag interface {
	~int64
	fmt.Stringer
}

// Flags is a set of bit flags of type F.
type Flags[F Flag] int64

// Mask makes a mask for checking multiple different flags.
func Mask[F Flag](flags ...F) Flags[F] {
	var mask Flags[F]
	for _, f := range flags {
		mask |= 1 << uint(f)
	}
	return mask
}

// HasFlag returns whether the given flag is set.
func (fs Flags[F]) HasFlag(f F) bool {
	return fs&(1<<uint(f)) != 0
}

// HasAny returns whether any of the given flags are set.
func (fs Flags[F]) HasAny(flags ...F) bool {
	return fs&Mask(flags...) != 0
}

// HasAll returns whether all of the given flags are set.
func (fs Flags[F]) HasAll(flags ...F) bool {
	m := Mask(flags...)
	return fs&m == m
}

// SetFlag sets the given flags to the given on / off value.
func (fs *Flags[F]) SetFlag(on bool, flags ...F) {
	if on {
		*fs |= Mask(flags...)
	} else {
		*fs &^= Mask(flags...)
	}
}

// IsZero returns whether no flags are set.
func (fs Flags[F]) IsZero() bool {
	return fs == 0
}

// Set returns the flags that are set, in ordinal order.
func (fs Flags[F]) Set() []F {
	var r []F
	for i := F(0); i < 64; i++ {
		if fs.HasFlag(i) {
			r = append(r, i)
		}
	}
	return r
}

// String returns the names of the set flags joined by "|".
func (fs Flags[F]) String() string {
	if fs == 0 {
		return "0"
	}
	var b strings.Builder
	for i, f := range fs.Set() {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(f.String())
	}
	return b.String()
}
