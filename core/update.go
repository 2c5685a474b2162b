// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"slices"
	"time"

	"cogentcore.org/arbor/events"
	"cogentcore.org/arbor/tree"
)

// runUpdateNewPass delivers [events.WidgetAdded] to every new widget,
// parents before their children.
func (rr *RenderRoot) runUpdateNewPass() {
	if !rr.rootState().Has(NeedsUpdateNew) {
		return
	}
	defer rr.enterPass(passUpdate)()
	root := rr.borrowRoot()
	rr.updateNew(root)
	root.release()
}

func (rr *RenderRoot) updateNew(n node) {
	st := n.st()
	if !st.Has(NeedsUpdateNew) {
		return
	}
	isNew := st.Has(IsNew)
	st.clear(IsNew, NeedsUpdateNew)
	if isNew {
		rr.metrics.visit(passUpdate)
		rr.update(n, events.Update{Type: events.WidgetAdded})
	}
	for _, id := range n.children() {
		c := n.child(id)
		rr.updateNew(c)
		st.MergeUp(c.st())
		c.release()
	}
}

// runUpdateDisabledPass propagates explicit disabled states down the tree,
// delivering [events.DisabledChanged] to every widget whose effective
// disabled state changed.
func (rr *RenderRoot) runUpdateDisabledPass() {
	if !rr.rootState().Has(NeedsUpdateDisabled) {
		return
	}
	defer rr.enterPass(passUpdate)()
	root := rr.borrowRoot()
	rr.updateDisabled(root, false, false)
	root.release()
}

func (rr *RenderRoot) updateDisabled(n node, parentDisabled, force bool) {
	st := n.st()
	if !force && !st.Has(NeedsUpdateDisabled) {
		return
	}
	force = force || st.Has(UpdateDisabled)
	st.clear(UpdateDisabled, NeedsUpdateDisabled)
	disabled := parentDisabled || st.isExplicitlyDisabled
	if disabled != st.isDisabled {
		rr.metrics.visit(passUpdate)
		st.isDisabled = disabled
		st.request(RequestAccess)
		rr.focusChainDirty = true
		if disabled && (rr.focused == st.id || (rr.nextFocus != nil && *rr.nextFocus == st.id)) {
			var none tree.NodeID
			rr.nextFocus = &none
		}
		rr.update(n, events.Update{Type: events.DisabledChanged, Value: disabled})
		force = true
	}
	for _, id := range n.children() {
		c := n.child(id)
		rr.updateDisabled(c, disabled, force)
		st.MergeUp(c.st())
		c.release()
	}
}

// runFocusChainPass rebuilds the list of focusable widgets in tree order.
func (rr *RenderRoot) runFocusChainPass() {
	if !rr.focusChainDirty {
		return
	}
	rr.focusChainDirty = false
	rr.focusChain = rr.focusChain[:0]
	rr.collectFocusChain(rr.rootID)
	if DebugSettings.FocusTrace {
		fmt.Println("\tDebugSettings.FocusTrace: focus chain", rr.focusChain)
	}
}

func (rr *RenderRoot) collectFocusChain(id tree.NodeID) {
	wr := rr.widgets.MustFind(id)
	st := rr.states.MustFind(id).Item()
	if st.isDisabled {
		return
	}
	if wr.Item().AcceptsFocus() {
		rr.focusChain = append(rr.focusChain, id)
	}
	for _, c := range wr.Children() {
		rr.collectFocusChain(c)
	}
}

// runFocusPass moves the focus to the widget requested last, delivering
// [events.FocusChanged] to the widgets losing and gaining focus and
// [events.ChildFocusChanged] to their ancestors whose status changed.
func (rr *RenderRoot) runFocusPass() {
	if rr.nextFocus == nil {
		return
	}
	next := *rr.nextFocus
	rr.nextFocus = nil
	if next != 0 && !rr.canFocus(next) {
		if DebugSettings.FocusTrace {
			fmt.Println("\tDebugSettings.FocusTrace: cannot focus", next)
		}
		if rr.widgets.Has(rr.focused) {
			return
		}
		next = 0
	}
	old := rr.focused
	if next == old && (old == 0 || rr.widgets.Has(old)) {
		return
	}
	defer rr.enterPass(passUpdate)()
	if DebugSettings.FocusTrace {
		fmt.Println("\tDebugSettings.FocusTrace: focus", old, "->", next)
	}
	oldPath := rr.focusPath
	var newPath []tree.NodeID
	if next != 0 {
		newPath = rr.widgets.Path(next)
	}
	rr.focused, rr.focusPath = next, newPath

	if old != 0 && rr.widgets.Has(old) {
		rr.withNode(old, func(n node) {
			st := n.st()
			st.isFocused = false
			st.request(RequestAccess)
			rr.update(n, events.Update{Type: events.FocusChanged, Value: false})
		})
	}
	if rr.imeActive {
		rr.imeActive = false
		rr.emit(Signal{Type: EndIme, Widget: old})
	}
	rr.updatePathStatus(oldPath, newPath, events.ChildFocusChanged, func(st *WidgetState, v bool) { st.hasFocus = v })
	if next != 0 {
		rr.withNode(next, func(n node) {
			st := n.st()
			st.isFocused = true
			st.request(RequestAccess)
			rr.update(n, events.Update{Type: events.FocusChanged, Value: true})
			if n.w().AcceptsTextInput() {
				rr.imeActive = true
				rr.emit(Signal{Type: StartIme, Widget: next, Rect: st.WindowRect()})
			}
		})
	}
}

// updatePathStatus updates a status shared by the widgets along a path,
// such as having focus within: the widgets only on the old path lose it
// and those only on the new path gain it, each getting an update of the
// given type. Widgets that were removed are skipped.
func (rr *RenderRoot) updatePathStatus(oldPath, newPath []tree.NodeID, typ events.UpdateTypes, set func(st *WidgetState, v bool)) {
	for _, id := range oldPath {
		if slices.Contains(newPath, id) || !rr.widgets.Has(id) {
			continue
		}
		rr.withNode(id, func(n node) {
			set(n.st(), false)
			rr.update(n, events.Update{Type: typ, Value: false})
		})
	}
	for _, id := range newPath {
		if slices.Contains(oldPath, id) {
			continue
		}
		rr.withNode(id, func(n node) {
			set(n.st(), true)
			rr.update(n, events.Update{Type: typ, Value: true})
		})
	}
}

// runHoverPass recomputes the widget under the last known pointer
// position, which changes when the pointer or the widgets move.
// A widget holding the pointer capture is the only one that may be hovered.
func (rr *RenderRoot) runHoverPass() {
	var next tree.NodeID
	if rr.pointerPos != nil {
		next = rr.hitTest(*rr.pointerPos)
	}
	if rr.pointerCapture != 0 && next != rr.pointerCapture {
		next = 0
	}
	old := rr.hovered
	if next == old && (old == 0 || rr.widgets.Has(old)) {
		return
	}
	defer rr.enterPass(passUpdate)()
	oldPath := rr.hoverPath
	var newPath []tree.NodeID
	if next != 0 {
		newPath = rr.widgets.Path(next)
	}
	rr.hovered, rr.hoverPath = next, newPath
	if old != 0 && rr.widgets.Has(old) {
		rr.withNode(old, func(n node) {
			st := n.st()
			st.isHovered = false
			st.request(RequestAccess)
			rr.update(n, events.Update{Type: events.HoveredChanged, Value: false})
		})
	}
	rr.updatePathStatus(oldPath, newPath, events.ChildHoveredChanged, func(st *WidgetState, v bool) { st.hasHovered = v })
	if next != 0 {
		rr.withNode(next, func(n node) {
			st := n.st()
			st.isHovered = true
			st.request(RequestAccess)
			rr.update(n, events.Update{Type: events.HoveredChanged, Value: true})
		})
	}
}

// runAnimPass calls [Widget.OnAnimFrame] on every widget that requested
// an animation frame. Each request is good for one frame.
func (rr *RenderRoot) runAnimPass(interval time.Duration) {
	if !rr.rootState().Has(NeedsAnim) {
		return
	}
	defer rr.enterPass(passAnim)()
	root := rr.borrowRoot()
	rr.animNode(root, interval)
	root.release()
}

func (rr *RenderRoot) animNode(n node, interval time.Duration) {
	st := n.st()
	if !st.Has(NeedsAnim) {
		return
	}
	requested := st.Has(RequestAnim)
	st.clear(RequestAnim, NeedsAnim)
	if requested {
		rr.metrics.visit(passAnim)
		ctx := &UpdateCtx{requestCtx{widgetCtx{root: rr, n: n}}}
		n.w().OnAnimFrame(ctx, st.propertiesRef(), interval)
	}
	for _, id := range n.children() {
		c := n.child(id)
		rr.animNode(c, interval)
		st.MergeUp(c.st())
		c.release()
	}
}
