// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"

	"cogentcore.org/arbor/math32"
)

// LayoutCtx is the context of [Widget.Layout]. A widget lays out each of
// its children with [LayoutCtx.RunLayout] and then positions it with
// [LayoutCtx.PlaceChild]; it may also measure children speculatively with
// [LayoutCtx.MeasureChild].
type LayoutCtx struct {
	requestCtx
}

// RunLayout lays out the child owned by the pod within the given
// constraints and returns its size. The child must then be placed with
// [LayoutCtx.PlaceChild] before the Layout method returns.
func (c *LayoutCtx) RunLayout(pod *WidgetPod, bc BoxConstraints) math32.Vector2 {
	cn := c.n.child(pod.mustID())
	size := c.root.runLayout(cn, bc)
	c.state().MergeUp(cn.st())
	cn.release()
	return size
}

// MeasureChild returns the size the child owned by the pod would take
// within the given constraints, without requiring it to be placed.
// Repeated measurements with the same constraints are answered from
// a cache until the child needs layout again.
func (c *LayoutCtx) MeasureChild(pod *WidgetPod, bc BoxConstraints) math32.Vector2 {
	cn := c.n.child(pod.mustID())
	defer cn.release()
	cs := cn.st()
	if !cs.Has(NeedsLayout) {
		if size, ok := cs.layoutCache.get(bc); ok {
			c.root.metrics.LayoutCacheHits.Inc()
			return size
		}
	}
	c.root.metrics.LayoutCacheMisses.Inc()
	expecting := cs.expectingPlace
	size := c.root.runLayout(cn, bc)
	cs.expectingPlace = expecting
	c.state().MergeUp(cs)
	return size
}

// PlaceChild sets the position of the child owned by the pod in the
// coordinates of this widget. The child must have been laid out.
func (c *LayoutCtx) PlaceChild(pod *WidgetPod, origin math32.Vector2) {
	cn := c.n.child(pod.mustID())
	defer cn.release()
	cs := cn.st()
	if !cs.hasLayout {
		panic(fmt.Sprintf("core: %v placed child %v before laying it out", c.state(), cs))
	}
	if !origin.IsFinite() {
		debugPanicf("%v placed child %v at invalid position %v", c.state(), cs, origin)
		origin = math32.Vector2{}
	}
	if cs.origin != origin {
		cs.origin = origin
		cs.request(TranslationChanged)
		cs.mark(NeedsPaint)
	}
	cs.expectingPlace = false
	c.state().MergeUp(cs)
}

// ChildSize returns the size of the child owned by the pod from its
// last layout.
func (c *LayoutCtx) ChildSize(pod *WidgetPod) math32.Vector2 {
	cn := c.n.child(pod.mustID())
	defer cn.release()
	return cn.st().size
}

// ChildBaselineOffset returns the baseline offset of the child owned
// by the pod from its last layout.
func (c *LayoutCtx) ChildBaselineOffset(pod *WidgetPod) float32 {
	cn := c.n.child(pod.mustID())
	defer cn.release()
	return cn.st().baselineOffset
}

// SetBaselineOffset sets the distance from the bottom of the widget to
// its text baseline, which parents use to align text across widgets.
func (c *LayoutCtx) SetBaselineOffset(offset float32) {
	c.state().baselineOffset = offset
}

// SetClipPath clips the painting and hit testing of the widget and its
// descendants to the given rectangle, in local coordinates.
func (c *LayoutCtx) SetClipPath(r math32.Box2) {
	st := c.state()
	if st.hasClip && st.clip == r {
		return
	}
	st.clip, st.hasClip = r, true
	st.mark(NeedsCompose, NeedsPaint)
}

// ClearClipPath removes the clip set by [LayoutCtx.SetClipPath].
func (c *LayoutCtx) ClearClipPath() {
	st := c.state()
	if !st.hasClip {
		return
	}
	st.clip, st.hasClip = math32.Box2{}, false
	st.mark(NeedsCompose, NeedsPaint)
}

// runLayoutPass lays out the root widget from the window size.
func (rr *RenderRoot) runLayoutPass() {
	if !rr.rootState().Has(NeedsLayout) {
		return
	}
	defer rr.enterPass(passLayout)()
	root := rr.borrowRoot()
	defer root.release()
	rr.runLayout(root, rr.rootConstraints())
	root.st().expectingPlace = false
}

// rootConstraints returns the constraints of the root widget.
func (rr *RenderRoot) rootConstraints() BoxConstraints {
	if rr.sizePolicy == SizeContent {
		return Loose(rr.size)
	}
	return Tight(rr.size)
}

// runLayout lays out n within bc, unless its last layout was done with
// the same constraints and nothing in its subtree needs layout.
func (rr *RenderRoot) runLayout(n node, bc BoxConstraints) math32.Vector2 {
	st := n.st()
	if !st.Has(NeedsLayout) && st.hasLayout && st.lastConstraints == bc {
		st.expectingPlace = true
		return st.size
	}
	if st.Has(NeedsLayout) {
		st.layoutCache.clear()
	}
	st.clear(RequestLayout, NeedsLayout)
	rr.metrics.visit(passLayout)
	if DebugSettings.LayoutTrace {
		fmt.Println("\tDebugSettings.LayoutTrace: layout", st, bc)
	}
	st.baselineOffset = 0
	ctx := &LayoutCtx{requestCtx{widgetCtx{root: rr, n: n}}}
	size := n.w().Layout(ctx, st.propertiesRef(), bc)
	size = sanitizeSize(st, size)

	for _, id := range n.children() {
		cn := n.state.Child(id)
		cs := cn.Item()
		if cs.expectingPlace {
			cn.Release()
			panic(fmt.Sprintf("core: %v laid out child %v without placing it", st, cs))
		}
		if cs.Has(NeedsLayout) {
			debugPanicf("%v did not lay out child %v, which needs layout", st, cs)
			cs.clear(RequestLayout, NeedsLayout)
		}
		st.MergeUp(cs)
		cn.Release()
	}

	if !st.hasLayout || size != st.size {
		st.request(RequestPaint)
		st.request(RequestAccess)
		st.mark(NeedsCompose)
	}
	if DebugSettings.LayoutTrace {
		fmt.Println("\tDebugSettings.LayoutTrace: size", st, size)
	}
	st.size = size
	st.hasLayout = true
	st.lastConstraints = bc
	st.layoutCache.put(bc, size)
	st.expectingPlace = true
	return size
}

// sanitizeSize reports and replaces invalid sizes returned by Layout.
func sanitizeSize(st *WidgetState, size math32.Vector2) math32.Vector2 {
	fix := func(v float32) float32 {
		if !math32.IsFinite(v) || v < 0 {
			return 0
		}
		return v
	}
	fixed := math32.Vec2(fix(size.X), fix(size.Y))
	if fixed != size {
		debugPanicf("%v returned invalid size %v from Layout", st, size)
	}
	return fixed
}
