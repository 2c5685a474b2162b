// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"

	"cogentcore.org/arbor/access"
	"cogentcore.org/arbor/events"
	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/properties"
	"cogentcore.org/arbor/tree"
)

// HandlePointerEvent delivers a pointer event to the widget under the
// pointer, or to the widget holding the pointer capture, and bubbles it up
// through the ancestors until one handles it. It returns whether the event
// was handled.
func (rr *RenderRoot) HandlePointerEvent(e *events.PointerEvent) bool {
	rr.checkNotInPass("HandlePointerEvent")
	if e.HasPos() {
		pos := e.Pos
		rr.pointerPos = &pos
	} else {
		rr.pointerPos = nil
	}
	target := rr.pointerCapture
	if target == 0 && e.HasPos() {
		target = rr.hitTest(e.Pos)
	}
	handled := false
	if target != 0 {
		handled = rr.dispatch(target, true, e, func(ctx *EventCtx, w Widget, props properties.Ref) {
			w.OnPointerEvent(ctx, props, e)
		})
	}
	if e.Type == events.PointerUp || e.Type == events.PointerLeave {
		rr.pointerCapture = 0
	}
	rr.runRewritePasses()
	return handled
}

// HandleTextEvent delivers a keyboard or input method event to the focused
// widget and bubbles it up. An unhandled Tab moves the focus to the next
// widget in the focus chain, and Shift+Tab to the previous one.
func (rr *RenderRoot) HandleTextEvent(e *events.TextEvent) bool {
	rr.checkNotInPass("HandleTextEvent")
	handled := false
	if rr.focused != 0 && rr.widgets.Has(rr.focused) {
		handled = rr.dispatch(rr.focused, false, e, func(ctx *EventCtx, w Widget, props properties.Ref) {
			w.OnTextEvent(ctx, props, e)
		})
	}
	if tab, shift := e.IsTab(); tab && !handled {
		rr.focusNeighbor(!shift)
		handled = true
	}
	rr.runRewritePasses()
	return handled
}

// HandleAccessEvent delivers an action from assistive technology to its
// target widget and bubbles it up. An unhandled focus action focuses the
// target, and an unhandled blur action removes its focus.
func (rr *RenderRoot) HandleAccessEvent(e *events.AccessEvent) bool {
	rr.checkNotInPass("HandleAccessEvent")
	if !rr.widgets.Has(e.Target) {
		return false
	}
	handled := rr.dispatch(e.Target, false, e, func(ctx *EventCtx, w Widget, props properties.Ref) {
		w.OnAccessEvent(ctx, props, e)
	})
	if !handled {
		switch e.Action {
		case access.ActionFocus:
			if rr.canFocus(e.Target) {
				id := e.Target
				rr.nextFocus = &id
				handled = true
			}
		case access.ActionBlur:
			if rr.focused == e.Target {
				var none tree.NodeID
				rr.nextFocus = &none
				handled = true
			}
		}
	}
	rr.runRewritePasses()
	return handled
}

// dispatch calls fun on the target and then on each of its ancestors,
// skipping disabled widgets, until the event is handled.
func (rr *RenderRoot) dispatch(target tree.NodeID, pointer bool, e fmt.Stringer, fun func(ctx *EventCtx, w Widget, props properties.Ref)) bool {
	defer rr.enterPass(passEvent)()
	nodes := rr.borrowPath(target)
	defer rr.releasePath(nodes)
	ctx := &EventCtx{target: target, pointer: pointer}
	for i := len(nodes) - 1; i >= 0 && !ctx.handled; i-- {
		n := nodes[i]
		st := n.st()
		if st.isDisabled {
			continue
		}
		if DebugSettings.EventTrace {
			fmt.Println("\tDebugSettings.EventTrace:", e, "to", st)
		}
		rr.metrics.visit(passEvent)
		ctx.requestCtx = requestCtx{widgetCtx{root: rr, n: n}}
		fun(ctx, n.w(), st.propertiesRef())
	}
	return ctx.handled
}

// hitTest returns the topmost widget accepting pointer interaction at the
// given window position, or zero.
func (rr *RenderRoot) hitTest(pos math32.Vector2) tree.NodeID {
	return rr.hitTestNode(rr.rootID, pos)
}

func (rr *RenderRoot) hitTestNode(id tree.NodeID, pos math32.Vector2) tree.NodeID {
	wr := rr.widgets.MustFind(id)
	st := rr.states.MustFind(id).Item()
	if !st.boundingRect.ContainsPoint(pos) {
		return 0
	}
	local := st.windowTransform.Inverse().MulVector2AsPoint(pos)
	if st.hasClip && !st.clip.ContainsPoint(local) {
		return 0
	}
	children := wr.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if hit := rr.hitTestNode(children[i], pos); hit != 0 {
			return hit
		}
	}
	if wr.Item().AcceptsPointerInteraction() && math32.B2FromSize(st.size).ContainsPoint(local) {
		return id
	}
	return 0
}

// canFocus returns whether the widget exists, is enabled and accepts focus.
func (rr *RenderRoot) canFocus(id tree.NodeID) bool {
	wr, ok := rr.widgets.Find(id)
	if !ok {
		return false
	}
	st := rr.states.MustFind(id).Item()
	return !st.isDisabled && wr.Item().AcceptsFocus()
}

// focusNeighbor requests focus for the next or previous widget in the
// focus chain, wrapping around at its ends.
func (rr *RenderRoot) focusNeighbor(forward bool) {
	chain := rr.focusChain
	if len(chain) == 0 {
		return
	}
	idx := -1
	for i, id := range chain {
		if id == rr.focused {
			idx = i
			break
		}
	}
	var next int
	switch {
	case idx < 0 && forward:
		next = 0
	case idx < 0:
		next = len(chain) - 1
	case forward:
		next = (idx + 1) % len(chain)
	default:
		next = (idx - 1 + len(chain)) % len(chain)
	}
	id := chain[next]
	rr.nextFocus = &id
	if DebugSettings.FocusTrace {
		fmt.Println("\tDebugSettings.FocusTrace: tab to", id)
	}
}
