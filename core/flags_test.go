// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cogentcore.org/arbor/bitflag"
)

func TestStateFlagsString(t *testing.T) {
	assert.Equal(t, "RequestLayout", RequestLayout.String())
	assert.Equal(t, "NeedsAnim", NeedsAnim.String())
	assert.Equal(t, "StateFlags(99)", StateFlags(99).String())
}

func TestRequestSetsAccumulated(t *testing.T) {
	for _, p := range flagPairs {
		for _, f := range p.self {
			st := &WidgetState{}
			st.request(f)
			assert.True(t, st.Has(f), f.String())
			assert.True(t, st.Has(p.accumulated), f.String())
		}
	}
}

func TestMergeUp(t *testing.T) {
	child := &WidgetState{}
	child.request(RequestAccess)
	parent := &WidgetState{}
	parent.MergeUp(child)
	assert.True(t, parent.Has(NeedsAccess))
	assert.False(t, parent.Has(RequestAccess), "self flags never propagate")

	child = &WidgetState{}
	child.mark(NeedsLayout)
	parent = &WidgetState{}
	parent.MergeUp(child)
	assert.True(t, parent.Has(NeedsLayout))
	assert.False(t, parent.Has(RequestLayout))

	child = &WidgetState{}
	child.request(TranslationChanged)
	parent = &WidgetState{}
	parent.MergeUp(child)
	assert.True(t, parent.Has(NeedsCompose))
	assert.False(t, parent.Has(TranslationChanged))

	// merging is idempotent and never clears parent flags
	parent.request(RequestPaint)
	before := parent.Flags()
	parent.MergeUp(child)
	parent.MergeUp(&WidgetState{})
	assert.Equal(t, before, parent.Flags())
}

func TestMergeUpClosure(t *testing.T) {
	// after merging, no accumulated flag of the parent is missing for
	// any work pending in the child
	for _, p := range flagPairs {
		for _, f := range append([]StateFlags{p.accumulated}, p.self...) {
			child := &WidgetState{}
			child.mark(f)
			parent := &WidgetState{}
			parent.MergeUp(child)
			assert.True(t, parent.Has(p.accumulated), f.String())
			assert.Zero(t, parent.Flags()&selfMask, f.String())
		}
	}
}

func TestNewWidgetFlags(t *testing.T) {
	assert.True(t, newWidgetFlags.HasAll(ChildrenChanged, IsNew, RequestLayout, RequestPaint, RequestAccess))
	assert.False(t, newWidgetFlags.HasAny(RequestAnim, NeedsAnim))
	assert.Equal(t, selfMask|accumulatedMask, newWidgetFlags|bitflag.Mask(RequestAnim, NeedsAnim))
}
