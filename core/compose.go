// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"cogentcore.org/arbor/math32"
)

// runComposePass computes the window transforms and bounding rectangles
// of the widgets that moved or changed size, and calls [Widget.Compose]
// on the widgets that requested it.
func (rr *RenderRoot) runComposePass() {
	if !rr.rootState().Has(NeedsCompose) {
		return
	}
	defer rr.enterPass(passCompose)()
	root := rr.borrowRoot()
	rr.composeNode(root, math32.Identity2(), false)
	root.release()
}

func (rr *RenderRoot) composeNode(n node, parentTransform math32.Matrix2, parentMoved bool) {
	st := n.st()
	if !parentMoved && !st.Has(NeedsCompose) {
		return
	}
	moved := parentMoved || st.Has(TranslationChanged)
	requested := st.Has(RequestCompose)
	st.clear(RequestCompose, TranslationChanged, NeedsCompose)
	rr.metrics.visit(passCompose)

	if moved {
		st.windowTransform = parentTransform.Mul(st.localTransform())
		st.windowOrigin = st.windowTransform.MulVector2AsPoint(math32.Vector2{})
		st.request(RequestAccess)
		st.mark(NeedsPaint)
		if st.isFocused && n.w().AcceptsTextInput() {
			rr.emit(Signal{Type: ImeMoved, Widget: st.id, Rect: st.WindowRect()})
		}
	}
	if requested {
		n.w().Compose(&ComposeCtx{widgetCtx{root: rr, n: n}})
	}

	bounds := st.WindowRect()
	for _, id := range n.children() {
		c := n.child(id)
		rr.composeNode(c, st.windowTransform, moved)
		bounds = bounds.Union(c.st().boundingRect)
		st.MergeUp(c.st())
		c.release()
	}
	if st.hasClip {
		bounds = bounds.Intersect(st.clip.MulMatrix2(st.windowTransform))
	}
	st.boundingRect = bounds
}
