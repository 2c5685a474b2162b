// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/arbor/access"
	"cogentcore.org/arbor/events"
	"cogentcore.org/arbor/events/key"
	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/tree"
)

// withSuffix returns the entries of the log ending with the suffix.
func withSuffix(log []string, suffix string) []string {
	var res []string
	for _, l := range log {
		if strings.HasSuffix(l, suffix) {
			res = append(res, l)
		}
	}
	return res
}

// containing returns the entries of the log containing the string.
func containing(log []string, sub string) []string {
	var res []string
	for _, l := range log {
		if strings.Contains(l, sub) {
			res = append(res, l)
		}
	}
	return res
}

// twoBoxes returns a root with a 10x20 child a above a 30x5 child b.
func twoBoxes(log *[]string) (rr *RenderRoot, a, b *box) {
	a = &box{name: "a", size: math32.Vec2(10, 20), log: log}
	b = &box{name: "b", size: math32.Vec2(30, 5), log: log}
	rr = newTestRoot(newBox("root", log, NewWidgetPod(a), NewWidgetPod(b)))
	return
}

func down(x, y float32) *events.PointerEvent {
	return events.NewPointer(events.PointerDown, events.Left, math32.Vec2(x, y))
}

func TestPointerBubbles(t *testing.T) {
	var log []string
	rr, _, b := twoBoxes(&log)

	assert.False(t, rr.HandlePointerEvent(down(5, 22)))
	assert.Equal(t, []string{"b:PointerDown", "root:PointerDown"}, withSuffix(log, "PointerDown"))

	log = nil
	b.onPointer = func(ctx *EventCtx, e *events.PointerEvent) {
		assert.True(t, ctx.IsTarget())
		ctx.SetHandled()
	}
	assert.True(t, rr.HandlePointerEvent(down(5, 22)))
	assert.Equal(t, []string{"b:PointerDown"}, withSuffix(log, "PointerDown"))

	log = nil
	rr.HandlePointerEvent(down(50, 50))
	assert.Equal(t, []string{"root:PointerDown"}, withSuffix(log, "PointerDown"))
}

func TestPointerSkipsDisabled(t *testing.T) {
	var log []string
	rr, _, b := twoBoxes(&log)
	bid := rr.Children(rr.RootID())[1]
	b.onPointer = func(ctx *EventCtx, e *events.PointerEvent) { ctx.SetHandled() }

	rr.EditWidget(bid, func(m WidgetMut[Widget]) { m.Ctx.SetDisabled(true) })
	assert.Contains(t, log, "b:DisabledChanged(true)")
	st, _ := rr.WidgetState(bid)
	assert.True(t, st.IsDisabled())

	log = nil
	assert.False(t, rr.HandlePointerEvent(down(5, 22)))
	assert.Equal(t, []string{"root:PointerDown"}, withSuffix(log, "PointerDown"))
}

func TestDisabledPropagates(t *testing.T) {
	var log []string
	inner := &box{name: "inner", size: math32.Vec2(5, 5), log: &log, focusable: true}
	innerPod := NewWidgetPod(inner)
	mid := newBox("mid", &log, innerPod)
	midPod := NewWidgetPod(mid)
	rr := newTestRoot(newBox("root", &log, midPod))
	assert.Equal(t, []tree.NodeID{innerPod.ID()}, rr.FocusChain())

	rr.EditWidget(midPod.ID(), func(m WidgetMut[Widget]) { m.Ctx.SetDisabled(true) })
	assert.True(t, stateOf(rr, innerPod).IsDisabled())
	assert.Contains(t, log, "inner:DisabledChanged(true)")
	assert.Empty(t, rr.FocusChain())

	log = nil
	rr.EditWidget(innerPod.ID(), func(m WidgetMut[Widget]) { m.Ctx.SetDisabled(true) })
	assert.Empty(t, log, "explicitly disabling a widget disabled by its parent changes nothing")

	rr.EditWidget(midPod.ID(), func(m WidgetMut[Widget]) { m.Ctx.SetDisabled(false) })
	assert.True(t, stateOf(rr, innerPod).IsDisabled())
	assert.False(t, stateOf(rr, midPod).IsDisabled())
}

func TestPointerCapture(t *testing.T) {
	var log []string
	rr, a, _ := twoBoxes(&log)
	aid := rr.Children(rr.RootID())[0]
	a.onPointer = func(ctx *EventCtx, e *events.PointerEvent) {
		if e.Type == events.PointerDown {
			ctx.CapturePointer()
		}
		ctx.SetHandled()
	}
	rr.HandlePointerEvent(down(5, 5))
	assert.Equal(t, aid, rr.PointerCapture())

	log = nil
	rr.HandlePointerEvent(events.NewPointer(events.PointerMove, events.NoButton, math32.Vec2(50, 50)))
	assert.Equal(t, []string{"a:PointerMove"}, withSuffix(log, "PointerMove"))
	assert.Equal(t, tree.NodeID(0), rr.HoveredWidget(), "only the capturing widget may be hovered")

	rr.HandlePointerEvent(events.NewPointer(events.PointerUp, events.Left, math32.Vec2(50, 50)))
	assert.Contains(t, log, "a:PointerUp")
	assert.Equal(t, tree.NodeID(0), rr.PointerCapture())
	assert.Equal(t, rr.RootID(), rr.HoveredWidget())
}

func TestCapturePointerOutsidePointerEvent(t *testing.T) {
	a := &box{name: "a", focusable: true}
	pod := NewWidgetPod(a)
	a.onText = func(ctx *EventCtx, e *events.TextEvent) { ctx.CapturePointer() }
	rr := newTestRoot(newBox("root", nil, pod))
	rr.EditWidget(pod.ID(), func(m WidgetMut[Widget]) { m.Ctx.RequestFocus() })
	assert.Panics(t, func() {
		rr.HandleTextEvent(events.NewKey(key.CodeRune, 'x'))
	})
}

func TestHover(t *testing.T) {
	var log []string
	rr, _, _ := twoBoxes(&log)
	aid := rr.Children(rr.RootID())[0]
	bid := rr.Children(rr.RootID())[1]

	rr.HandlePointerEvent(events.NewPointer(events.PointerMove, events.NoButton, math32.Vec2(5, 5)))
	assert.Equal(t, aid, rr.HoveredWidget())
	sa, _ := rr.WidgetState(aid)
	assert.True(t, sa.IsHovered())
	rs, _ := rr.WidgetState(rr.RootID())
	assert.True(t, rs.HasHovered())
	assert.False(t, rs.IsHovered())
	assert.Contains(t, log, "a:HoveredChanged(true)")
	assert.Contains(t, log, "root:ChildHoveredChanged(true)")

	log = nil
	rr.HandlePointerEvent(events.NewPointer(events.PointerMove, events.NoButton, math32.Vec2(5, 22)))
	assert.Equal(t, bid, rr.HoveredWidget())
	assert.Equal(t, []string{"a:HoveredChanged(false)", "a:ChildHoveredChanged(false)", "b:ChildHoveredChanged(true)", "b:HoveredChanged(true)"}, containing(log, "Hovered"))

	log = nil
	rr.HandlePointerEvent(events.NewPointer(events.PointerLeave, events.NoButton, math32.Vector2{}))
	assert.Equal(t, tree.NodeID(0), rr.HoveredWidget())
	assert.Contains(t, log, "root:ChildHoveredChanged(false)")
}

func TestHoverFollowsLayout(t *testing.T) {
	rr, a, _ := twoBoxes(nil)
	aid := rr.Children(rr.RootID())[0]
	bid := rr.Children(rr.RootID())[1]
	rr.HandlePointerEvent(events.NewPointer(events.PointerMove, events.NoButton, math32.Vec2(5, 22)))
	assert.Equal(t, bid, rr.HoveredWidget())

	// growing a moves b down and out from under the pointer
	rr.EditWidget(aid, func(m WidgetMut[Widget]) {
		setSize(Downcast[*box](m), math32.Vec2(10, 30))
	})
	assert.Equal(t, math32.Vec2(10, 30), a.size)
	assert.Equal(t, aid, rr.HoveredWidget())
}

func TestNoPointerInteraction(t *testing.T) {
	var log []string
	rr, a, _ := twoBoxes(&log)
	a.noPointer = true
	rr.HandlePointerEvent(down(5, 5))
	assert.Equal(t, []string{"root:PointerDown"}, withSuffix(log, "PointerDown"))
}

func TestTabFocus(t *testing.T) {
	var log []string
	a := &box{name: "a", size: math32.Vec2(10, 10), log: &log, focusable: true}
	b := &box{name: "b", size: math32.Vec2(10, 10), log: &log, focusable: true}
	c := &box{name: "c", size: math32.Vec2(10, 10), log: &log}
	ap, bp, cp := NewWidgetPod(a), NewWidgetPod(b), NewWidgetPod(c)
	rr := newTestRoot(newBox("root", &log, ap, cp, bp))
	assert.Equal(t, []tree.NodeID{ap.ID(), bp.ID()}, rr.FocusChain())

	tab := func(shift bool) {
		if shift {
			rr.HandleTextEvent(events.NewKey(key.CodeTab, 0, key.Shift))
		} else {
			rr.HandleTextEvent(events.NewKey(key.CodeTab, 0))
		}
	}

	tab(false)
	assert.Equal(t, ap.ID(), rr.FocusedWidget())
	assert.True(t, stateOf(rr, ap).IsFocused())
	assert.True(t, stateOf(rr, ap).HasFocus())
	rs, _ := rr.WidgetState(rr.RootID())
	assert.True(t, rs.HasFocus())
	assert.False(t, rs.IsFocused())
	assert.Contains(t, log, "a:FocusChanged(true)")
	assert.Contains(t, log, "root:ChildFocusChanged(true)")

	log = nil
	tab(false)
	assert.Equal(t, bp.ID(), rr.FocusedWidget())
	assert.Equal(t, []string{"a:KeyDown", "root:KeyDown", "a:FocusChanged(false)", "a:ChildFocusChanged(false)", "b:ChildFocusChanged(true)", "b:FocusChanged(true)"}, log)

	tab(false)
	assert.Equal(t, ap.ID(), rr.FocusedWidget())
	tab(true)
	assert.Equal(t, bp.ID(), rr.FocusedWidget())

	rr.EditWidget(bp.ID(), func(m WidgetMut[Widget]) { m.Ctx.SetDisabled(true) })
	assert.Equal(t, tree.NodeID(0), rr.FocusedWidget())
	assert.False(t, rs.HasFocus())
	assert.Equal(t, []tree.NodeID{ap.ID()}, rr.FocusChain())
}

func TestTextEventToFocused(t *testing.T) {
	var log []string
	a := &box{name: "a", size: math32.Vec2(10, 10), log: &log, focusable: true}
	a.onText = func(ctx *EventCtx, e *events.TextEvent) { ctx.SetHandled() }
	pod := NewWidgetPod(a)
	rr := newTestRoot(newBox("root", &log, pod))

	assert.False(t, rr.HandleTextEvent(events.NewKey(key.CodeRune, 'x')), "no focus")
	rr.EditWidget(pod.ID(), func(m WidgetMut[Widget]) { m.Ctx.RequestFocus() })
	log = nil
	assert.True(t, rr.HandleTextEvent(events.NewKey(key.CodeRune, 'x')))
	assert.Equal(t, []string{"a:KeyDown"}, log)

	// a handled tab does not move the focus
	assert.True(t, rr.HandleTextEvent(events.NewKey(key.CodeTab, 0)))
	assert.Equal(t, pod.ID(), rr.FocusedWidget())
}

func TestFocusRemovedWidget(t *testing.T) {
	a := &box{name: "a", size: math32.Vec2(10, 10), focusable: true}
	pod := NewWidgetPod(a)
	root := newBox("root", nil, pod)
	rr := newTestRoot(root)
	rr.EditWidget(pod.ID(), func(m WidgetMut[Widget]) { m.Ctx.RequestFocus() })
	assert.Equal(t, pod.ID(), rr.FocusedWidget())

	rr.EditRootWidget(func(m WidgetMut[Widget]) { removeChildAt(Downcast[*box](m), 0) })
	assert.Equal(t, tree.NodeID(0), rr.FocusedWidget())
	rs, _ := rr.WidgetState(rr.RootID())
	assert.False(t, rs.HasFocus())
}

func TestRequestFocusRefused(t *testing.T) {
	a := &box{name: "a", size: math32.Vec2(10, 10)}
	pod := NewWidgetPod(a)
	rr := newTestRoot(newBox("root", nil, pod))
	rr.EditWidget(pod.ID(), func(m WidgetMut[Widget]) { m.Ctx.RequestFocus() })
	assert.Equal(t, tree.NodeID(0), rr.FocusedWidget())
}

func TestImeSignals(t *testing.T) {
	a := &box{name: "a", size: math32.Vec2(10, 10), focusable: true, textInput: true}
	pod := NewWidgetPod(a)
	rr := newTestRoot(newBox("root", nil, NewWidgetPod(&box{size: math32.Vec2(10, 10)}), pod))
	drainSignals(rr)

	rr.EditWidget(pod.ID(), func(m WidgetMut[Widget]) { m.Ctx.RequestFocus() })
	sigs := drainSignals(rr)
	require.Contains(t, signalTypes(sigs), StartIme)
	for _, s := range sigs {
		if s.Type == StartIme {
			assert.Equal(t, pod.ID(), s.Widget)
			assert.Equal(t, math32.B2(0, 10, 10, 20), s.Rect)
		}
	}

	// moving the focused input reports its new rectangle
	first := rr.Children(rr.RootID())[0]
	rr.EditWidget(first, func(m WidgetMut[Widget]) {
		setSize(Downcast[*box](m), math32.Vec2(10, 15))
	})
	sigs = drainSignals(rr)
	require.Contains(t, signalTypes(sigs), ImeMoved)
	for _, s := range sigs {
		if s.Type == ImeMoved {
			assert.Equal(t, math32.B2(0, 15, 10, 25), s.Rect)
		}
	}

	rr.EditWidget(pod.ID(), func(m WidgetMut[Widget]) { m.Ctx.ResignFocus() })
	assert.Contains(t, signalTypes(drainSignals(rr)), EndIme)
	assert.Equal(t, tree.NodeID(0), rr.FocusedWidget())
}

func TestAccessEvents(t *testing.T) {
	var log []string
	a := &box{name: "a", size: math32.Vec2(10, 10), log: &log, focusable: true}
	pod := NewWidgetPod(a)
	rr := newTestRoot(newBox("root", &log, pod))

	assert.True(t, rr.HandleAccessEvent(&events.AccessEvent{Target: pod.ID(), Action: access.ActionFocus}))
	assert.Contains(t, log, "a:Focus")
	assert.Equal(t, pod.ID(), rr.FocusedWidget())

	assert.True(t, rr.HandleAccessEvent(&events.AccessEvent{Target: pod.ID(), Action: access.ActionBlur}))
	assert.Equal(t, tree.NodeID(0), rr.FocusedWidget())

	a.onAccess = func(ctx *EventCtx, e *events.AccessEvent) {
		if e.Action == access.ActionClick {
			ctx.SubmitAction("clicked")
			ctx.SetHandled()
		}
	}
	drainSignals(rr)
	assert.True(t, rr.HandleAccessEvent(&events.AccessEvent{Target: pod.ID(), Action: access.ActionClick}))
	assert.Contains(t, signalTypes(drainSignals(rr)), ActionSignal)

	assert.False(t, rr.HandleAccessEvent(&events.AccessEvent{Target: tree.NewNodeID(), Action: access.ActionClick}))
}
