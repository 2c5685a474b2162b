// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"

	"cogentcore.org/arbor/access"
	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/paint"
	"cogentcore.org/arbor/properties"
	"cogentcore.org/arbor/styles"
	"cogentcore.org/arbor/styles/sides"
)

// runPaintPass repaints the fragments of the widgets that requested paint
// and assembles the fragments of all widgets into the window scene.
// Each fragment is appended by reference, so the assembly does not copy
// the items of widgets that did not repaint.
func (rr *RenderRoot) runPaintPass() *paint.Scene {
	defer rr.enterPass(passPaint)()
	content := &paint.Scene{}
	root := rr.borrowRoot()
	rr.paintNode(root, content)
	root.release()
	sc := &paint.Scene{}
	sc.Append(content, math32.Scale2D(rr.scale, rr.scale), nil)
	return sc
}

func (rr *RenderRoot) paintNode(n node, out *paint.Scene) {
	st := n.st()
	if st.Has(RequestPaint) {
		rr.metrics.visit(passPaint)
		if DebugSettings.PaintTrace {
			fmt.Println("\tDebugSettings.PaintTrace: paint", st)
		}
		props := st.propertiesRef()
		st.fragment.Reset()
		paintBox(st.fragment, props, st.size)
		n.w().Paint(&PaintCtx{widgetCtx{root: rr, n: n}}, props, st.fragment)
	}
	st.clear(RequestPaint, NeedsPaint)

	group := &paint.Scene{}
	group.Append(st.fragment, math32.Identity2(), nil)
	for _, id := range n.children() {
		c := n.child(id)
		rr.paintNode(c, group)
		st.MergeUp(c.st())
		c.release()
	}
	var clip *math32.Box2
	if st.hasClip {
		r := st.clip
		clip = &r
	}
	out.Append(group, st.localTransform(), clip)
}

// paintBox paints the background and border of a widget box from its
// properties.
func paintBox(sc *paint.Scene, props properties.Ref, size math32.Vector2) {
	box := math32.B2FromSize(size)
	sc.FillRect(box, properties.Lookup[styles.Background](props).Color)
	bw := properties.Lookup[styles.BorderWidth](props)
	if !sides.AreZero(bw.Sides) {
		bc := properties.Lookup[styles.BorderColor](props)
		sc.StrokeRect(box, bw.Top, bw.Right, bw.Bottom, bw.Left, bc.Color)
	}
}

// runAccessPass rebuilds the accessibility nodes of the widgets that
// requested it and returns them, parents before children.
func (rr *RenderRoot) runAccessPass() access.TreeUpdate {
	upd := access.TreeUpdate{Root: rr.rootID, Focus: rr.focused}
	if upd.Focus == 0 {
		upd.Focus = rr.rootID
	}
	if !rr.rootState().Has(NeedsAccess) {
		return upd
	}
	defer rr.enterPass(passAccess)()
	root := rr.borrowRoot()
	rr.accessNode(root, &upd)
	root.release()
	return upd
}

func (rr *RenderRoot) accessNode(n node, upd *access.TreeUpdate) {
	st := n.st()
	if !st.Has(NeedsAccess) {
		return
	}
	if st.Has(RequestAccess) {
		rr.metrics.visit(passAccess)
		w := n.w()
		an := &access.Node{
			Role:      w.AccessRole(),
			Bounds:    st.WindowRect(),
			Children:  n.children(),
			Disabled:  st.isDisabled,
			Focusable: w.AcceptsFocus() && !st.isDisabled,
			Hovered:   st.isHovered,
		}
		if an.Focusable {
			an.AddAction(access.ActionFocus)
			if st.isFocused {
				an.AddAction(access.ActionBlur)
			}
		}
		w.Accessibility(&AccessCtx{widgetCtx{root: rr, n: n}}, st.propertiesRef(), an)
		st.accessNode = an
		upd.Nodes = append(upd.Nodes, access.NodeUpdate{ID: st.id, Node: an})
	}
	st.clear(RequestAccess, NeedsAccess)
	for _, id := range n.children() {
		c := n.child(id)
		rr.accessNode(c, upd)
		st.MergeUp(c.st())
		c.release()
	}
}
