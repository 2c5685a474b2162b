// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slicesx provides additional slice functions
// beyond those in the standard [slices] package.
package slicesx

// Search returns the index of the first element found that matches
// the given function, searching outward in both directions from the
// given start index. Starting close to the expected position makes
// repeated lookups in slices that change slowly (like child lists)
// nearly constant time. A negative or out of range start index starts
// in the middle. It returns -1 if nothing matches.
func Search[E any](s []E, match func(e E) bool, start int) int {
	n := len(s)
	if n == 0 {
		return -1
	}
	if start < 0 || start >= n {
		start = n / 2
	}
	for d := 0; d < n; d++ {
		up := start + d
		down := start - d - 1
		if up >= n && down < 0 {
			break
		}
		if up < n && match(s[up]) {
			return up
		}
		if down >= 0 && match(s[down]) {
			return down
		}
	}
	return -1
}
