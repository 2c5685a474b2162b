// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"time"

	"cogentcore.org/arbor/events"
	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/tree"
)

// node is a widget and its state, both mutably borrowed from the arenas
// of a [RenderRoot].
type node struct {
	widget *tree.ArenaMut[Widget]
	state  *tree.ArenaMut[*WidgetState]
}

func (n node) id() tree.NodeID { return n.widget.ID() }
func (n node) w() Widget { return n.widget.Item() }
func (n node) st() *WidgetState { return n.state.Item() }
func (n node) children() []tree.NodeID { return n.widget.Children() }

// child borrows a child of the node.
func (n node) child(id tree.NodeID) node {
	return node{widget: n.widget.Child(id), state: n.state.Child(id)}
}

func (n node) release() {
	n.widget.Release()
	n.state.Release()
}

// widgetCtx is the read-only part of every pass context: the identity,
// geometry and status of the widget the method was called on.
type widgetCtx struct {
	root *RenderRoot
	n    node
}

func (c *widgetCtx) state() *WidgetState { return c.n.st() }

// ID returns the identifier of the widget.
func (c *widgetCtx) ID() tree.NodeID { return c.n.id() }

// Tag returns the tag of the widget's pod, if any.
func (c *widgetCtx) Tag() string { return c.state().tag }

// Size returns the size computed by the last layout of the widget.
func (c *widgetCtx) Size() math32.Vector2 { return c.state().size }

// BaselineOffset returns the distance from the bottom of the widget to its baseline.
func (c *widgetCtx) BaselineOffset() float32 { return c.state().baselineOffset }

// LayoutRect returns the box of the widget in its parent's coordinates.
func (c *widgetCtx) LayoutRect() math32.Box2 { return c.state().LayoutRect() }

// WindowOrigin returns the window position of the widget's origin.
// It is only valid after the compose pass.
func (c *widgetCtx) WindowOrigin() math32.Vector2 { return c.state().windowOrigin }

// WindowTransform returns the transform from local to window coordinates.
func (c *widgetCtx) WindowTransform() math32.Matrix2 { return c.state().windowTransform }

// WindowRect returns the window-space bounding box of the widget.
func (c *widgetCtx) WindowRect() math32.Box2 { return c.state().WindowRect() }

// IsDisabled returns whether the widget or an ancestor is disabled.
func (c *widgetCtx) IsDisabled() bool { return c.state().isDisabled }

// IsHovered returns whether the pointer is over the widget itself.
func (c *widgetCtx) IsHovered() bool { return c.state().isHovered }

// HasHovered returns whether the pointer is over the widget or a descendant.
func (c *widgetCtx) HasHovered() bool { return c.state().hasHovered }

// IsFocused returns whether the widget has input focus.
func (c *widgetCtx) IsFocused() bool { return c.state().isFocused }

// HasFocus returns whether the widget or a descendant has input focus.
func (c *widgetCtx) HasFocus() bool { return c.state().hasFocus }

// HasPointerCapture returns whether the widget holds the pointer capture.
func (c *widgetCtx) HasPointerCapture() bool { return c.root.pointerCapture == c.n.id() }

// Scale returns the scale factor of the window.
func (c *widgetCtx) Scale() float32 { return c.root.scale }

// Now returns the current time of the render root, which advances
// with animation frames and timers.
func (c *widgetCtx) Now() time.Time { return c.root.now }

// requestCtx adds the pass and side effect requests to [widgetCtx].
// It is embedded in the contexts of the passes that may change widgets.
type requestCtx struct {
	widgetCtx
}

func (c *requestCtx) trace(what string) {
	if DebugSettings.UpdateTrace {
		fmt.Println("\tDebugSettings.UpdateTrace:", what+":", c.state())
	}
}

// RequestLayout requests that the widget be laid out again.
// This does not request paint: call [requestCtx.RequestRender] too if
// the appearance of the widget changes.
func (c *requestCtx) RequestLayout() {
	c.trace("RequestLayout")
	c.state().request(RequestLayout)
}

// RequestPaintOnly requests that the widget be painted again without
// rebuilding its accessibility node.
func (c *requestCtx) RequestPaintOnly() {
	c.trace("RequestPaintOnly")
	c.state().request(RequestPaint)
}

// RequestAccessibility requests that the accessibility node of the
// widget be rebuilt.
func (c *requestCtx) RequestAccessibility() {
	c.state().request(RequestAccess)
}

// RequestRender requests paint and accessibility.
func (c *requestCtx) RequestRender() {
	c.trace("RequestRender")
	c.state().request(RequestPaint)
	c.state().request(RequestAccess)
}

// RequestCompose requests that [Widget.Compose] be called on the widget.
func (c *requestCtx) RequestCompose() {
	c.state().request(RequestCompose)
}

// RequestAnimFrame requests a call to [Widget.OnAnimFrame] on the next
// frame tick. Requests of widgets removed before the tick are dropped.
func (c *requestCtx) RequestAnimFrame() {
	c.state().request(RequestAnim)
}

// ChildrenChanged tells the render root that the set or order of child
// pods of the widget changed, so that it calls [Widget.RegisterChildren]
// again. It also requests layout.
func (c *requestCtx) ChildrenChanged() {
	c.trace("ChildrenChanged")
	c.state().request(ChildrenChanged)
	c.state().request(RequestLayout)
}

// SetDisabled sets whether the widget is explicitly disabled. A widget is
// disabled if it or any ancestor is explicitly disabled; disabled widgets
// receive no input events and cannot hold focus.
func (c *requestCtx) SetDisabled(disabled bool) {
	st := c.state()
	if st.isExplicitlyDisabled == disabled {
		return
	}
	st.isExplicitlyDisabled = disabled
	st.request(UpdateDisabled)
}

// SetTransform sets the transform of the widget, applied after its
// translation to the position set by its parent. It does not need layout.
func (c *requestCtx) SetTransform(m math32.Matrix2) {
	st := c.state()
	if st.transform == m {
		return
	}
	st.transform = m
	st.request(TranslationChanged)
	st.mark(NeedsPaint)
}

// RequestFocus requests input focus for the widget. The focus moves in
// the update pass that follows, if the widget accepts focus then.
func (c *requestCtx) RequestFocus() {
	id := c.n.id()
	c.root.nextFocus = &id
}

// ResignFocus gives up input focus if the widget has it or requested it.
func (c *requestCtx) ResignFocus() {
	id := c.n.id()
	if c.root.focused == id || (c.root.nextFocus != nil && *c.root.nextFocus == id) {
		var none tree.NodeID
		c.root.nextFocus = &none
	}
}

// RequestTimer requests a [events.TimerFired] update after the given
// duration, and returns the token of the timer.
func (c *requestCtx) RequestTimer(d time.Duration) events.TimerToken {
	return c.root.timers.add(c.n.id(), c.root.now.Add(d))
}

// SubmitAction sends an action signal with the given value to the
// application, through [RenderRoot.PopSignal].
func (c *requestCtx) SubmitAction(action any) {
	c.root.emit(Signal{Type: ActionSignal, Widget: c.n.id(), Action: action})
}

// MutateSelfLater queues a mutation of the widget, run after the current
// pass with a [WidgetMut] for it. Queued mutations run in request order.
func (c *requestCtx) MutateSelfLater(fun func(m WidgetMut[Widget])) {
	c.root.deferred.push(c.n.id(), fun)
}

// MutateLater queues a mutation of any widget, like [requestCtx.MutateSelfLater].
func (c *requestCtx) MutateLater(id tree.NodeID, fun func(m WidgetMut[Widget])) {
	c.root.deferred.push(id, fun)
}

// EventCtx is the context of the event handlers of a widget.
type EventCtx struct {
	requestCtx

	target  tree.NodeID
	handled bool

	// pointer is set while handling a pointer event.
	pointer bool
}

// Target returns the widget the event was first delivered to.
func (c *EventCtx) Target() tree.NodeID { return c.target }

// IsTarget returns whether the widget is the target of the event,
// as opposed to an ancestor it bubbled up to.
func (c *EventCtx) IsTarget() bool { return c.target == c.n.id() }

// SetHandled stops the event from bubbling further up.
func (c *EventCtx) SetHandled() { c.handled = true }

// IsHandled returns whether the event was handled.
func (c *EventCtx) IsHandled() bool { return c.handled }

// CapturePointer sends all pointer events to the widget until it calls
// [EventCtx.ReleasePointer] or the pointer button is released.
// It may only be called while handling a pointer event.
func (c *EventCtx) CapturePointer() {
	if !c.pointer {
		panic(fmt.Sprintf("core: CapturePointer called outside of a pointer event by %v", c.state()))
	}
	c.root.pointerCapture = c.n.id()
}

// ReleasePointer releases the pointer capture held by the widget.
func (c *EventCtx) ReleasePointer() {
	if c.root.pointerCapture == c.n.id() {
		c.root.pointerCapture = 0
	}
}

// UpdateCtx is the context of lifecycle, animation and property updates.
type UpdateCtx struct {
	requestCtx
}

// RegisterCtx is the context of [Widget.RegisterChildren].
type RegisterCtx struct {
	root *RenderRoot
	n    node

	// registered are the pods registered so far, in order.
	registered []*WidgetPod
}

// ComposeCtx is the context of [Widget.Compose].
type ComposeCtx struct {
	widgetCtx
}

// PaintCtx is the context of [Widget.Paint].
type PaintCtx struct {
	widgetCtx
}

// AccessCtx is the context of [Widget.Accessibility].
type AccessCtx struct {
	widgetCtx
}
