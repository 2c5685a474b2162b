// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"

	"cogentcore.org/arbor/math32"
)

// BoxConstraints are the minimum and maximum sizes a parent allows
// a child to take. Max may be infinite on either axis. BoxConstraints
// are comparable, and are the key of the layout cache.
type BoxConstraints struct {
	Min math32.Vector2
	Max math32.Vector2
}

// Tight returns constraints that only allow the given size.
func Tight(size math32.Vector2) BoxConstraints {
	return BoxConstraints{size, size}
}

// Loose returns constraints that allow any size up to max.
func Loose(max math32.Vector2) BoxConstraints {
	return BoxConstraints{Max: max}
}

// Unbounded returns constraints that allow any size.
func Unbounded() BoxConstraints {
	return BoxConstraints{Max: math32.Vector2Scalar(math32.Infinity)}
}

func (bc BoxConstraints) String() string {
	return fmt.Sprintf("BoxConstraints{Min: %v, Max: %v}", bc.Min, bc.Max)
}

// IsTight returns whether only one size is allowed.
func (bc BoxConstraints) IsTight() bool {
	return bc.Min == bc.Max
}

// Constrain returns the size clamped to the constraints.
func (bc BoxConstraints) Constrain(size math32.Vector2) math32.Vector2 {
	return size.Max(bc.Min).Min(bc.Max)
}

// Loosen returns the constraints with a zero minimum.
func (bc BoxConstraints) Loosen() BoxConstraints {
	return BoxConstraints{Max: bc.Max}
}

// Shrink returns the constraints reduced by the given amount on each
// axis, never below zero, as for the content inside padding.
func (bc BoxConstraints) Shrink(by math32.Vector2) BoxConstraints {
	zero := math32.Vector2{}
	return BoxConstraints{
		Min: bc.Min.Sub(by).Max(zero),
		Max: bc.Max.Sub(by).Max(zero),
	}
}

// layoutCacheSize is the number of recent layout results kept per widget.
const layoutCacheSize = 4

type layoutCacheEntry struct {
	constraints BoxConstraints
	size        math32.Vector2
}

// layoutCache is a small least-recently-used cache of layout results
// keyed by the constraints of the request.
type layoutCache struct {
	entries []layoutCacheEntry
}

// get returns the cached size for the constraints and marks the entry
// as most recently used.
func (lc *layoutCache) get(bc BoxConstraints) (math32.Vector2, bool) {
	for i, e := range lc.entries {
		if e.constraints == bc {
			copy(lc.entries[1:i+1], lc.entries[:i])
			lc.entries[0] = e
			return e.size, true
		}
	}
	return math32.Vector2{}, false
}

// put stores a result as the most recently used entry, evicting the
// least recently used one when full.
func (lc *layoutCache) put(bc BoxConstraints, size math32.Vector2) {
	for i, e := range lc.entries {
		if e.constraints == bc {
			lc.entries = append(lc.entries[:i], lc.entries[i+1:]...)
			break
		}
	}
	if len(lc.entries) >= layoutCacheSize {
		lc.entries = lc.entries[:layoutCacheSize-1]
	}
	lc.entries = append([]layoutCacheEntry{{bc, size}}, lc.entries...)
}

func (lc *layoutCache) clear() {
	lc.entries = lc.entries[:0]
}
