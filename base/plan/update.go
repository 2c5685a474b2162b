// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plan provides an efficient mechanism for updating a slice
// to contain a target list of elements, generating minimal edits to
// modify the current slice contents to match the target.
// The mechanism depends on each element having a unique comparable
// key that determines whether it is already present.
package plan

import (
	"log/slog"
	"slices"

	"cogentcore.org/arbor/base/slicesx"
)

// Update ensures that the elements of the slice match the given target
// keys, in order. Elements whose key is not in the target are removed,
// and destroy is called on them if it is non-nil. Missing keys are
// created with new. It returns the updated slice and whether any
// changes were made.
func Update[E any, K comparable](s []E, target []K, key func(e E) K, new func(k K, i int) E, destroy func(e E)) (r []E, mods bool) {
	want := make(map[K]int, len(target))
	for i, k := range target {
		if _, has := want[k]; has {
			slog.Error("plan.Update: duplicate key", "key", k)
		}
		want[k] = i
	}
	r = s
	last := make(map[K]int, len(r))
	for i := len(r) - 1; i >= 0; i-- {
		k := key(r[i])
		if _, ok := want[k]; !ok {
			mods = true
			if destroy != nil {
				destroy(r[i])
			}
			r = slices.Delete(r, i, i+1)
			continue
		}
		last[k] = i
	}
	for i, k := range target {
		ci := slicesx.Search(r, func(e E) bool { return key(e) == k }, last[k])
		switch {
		case ci < 0:
			mods = true
			r = slices.Insert(r, i, new(k, i))
		case ci != i:
			mods = true
			e := r[ci]
			r = slices.Delete(r, ci, ci+1)
			r = slices.Insert(r, i, e)
		}
	}
	return
}
