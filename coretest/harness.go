// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coretest provides a [Harness] that drives a [core.RenderRoot]
// the way a window driver would, for testing widgets without a window,
// along with the [Recorder] and [ModularWidget] helper widgets.
package coretest

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"cogentcore.org/arbor/access"
	"cogentcore.org/arbor/base/iox/imagex"
	"cogentcore.org/arbor/core"
	"cogentcore.org/arbor/events"
	"cogentcore.org/arbor/events/key"
	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/paint"
	"cogentcore.org/arbor/tree"
)

// DefaultSize is the window size of a [Harness] made with [New].
var DefaultSize = math32.Vec2(400, 300)

// Background is the color that [Harness.RenderImage] fills the window
// with before drawing the scene.
var Background = color.RGBA{255, 255, 255, 255}

// Action is an action submitted by a widget with
// [core.MutateCtx.SubmitAction], as seen by the driver.
type Action struct {
	Widget tree.NodeID
	Action any
}

func (a Action) String() string {
	return fmt.Sprintf("%v: %v", a.Widget, a.Action)
}

// Harness owns a [core.RenderRoot] and plays the part of the window
// driver: it feeds it input events, advances its clock, consumes its
// signals and keeps the accessibility tree built from its updates.
// All methods panic if the render root does.
type Harness struct {
	root *core.RenderRoot

	size  math32.Vector2
	scale float32

	pointerPos math32.Vector2
	mods       key.ModifierSet

	actions []Action

	// redrawRequested is whether the root asked for a redraw since the
	// last [Harness.Redraw].
	redrawRequested bool

	// animRequested is whether the root asked for an animation frame
	// since the last [Harness.AnimationFrame].
	animRequested bool

	imeActive bool
	imeRect   math32.Box2

	access access.Tree
	scene  *paint.Scene
}

// New returns a new harness for the given root widget, in a window of
// [DefaultSize] at scale 1.
func New(root core.Widget) *Harness {
	return NewWithOptions(root, core.Options{Size: DefaultSize})
}

// NewWithOptions returns a new harness for the given root widget and
// render root options. A zero clock starts at a fixed date, so that
// tests do not depend on the wall clock.
func NewWithOptions(root core.Widget, opts core.Options) *Harness {
	if opts.Size == (math32.Vector2{}) {
		opts.Size = DefaultSize
	}
	if opts.Scale == 0 {
		opts.Scale = 1
	}
	if opts.Now.IsZero() {
		opts.Now = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	h := &Harness{
		root:  core.NewRenderRoot(root, opts),
		size:  opts.Size,
		scale: opts.Scale,
	}
	h.processSignals()
	return h
}

// Root returns the render root driven by the harness.
func (h *Harness) Root() *core.RenderRoot { return h.root }

// RootID returns the identifier of the root widget.
func (h *Harness) RootID() tree.NodeID { return h.root.RootID() }

// Size returns the window size.
func (h *Harness) Size() math32.Vector2 { return h.size }

// processSignals consumes all pending signals of the root.
func (h *Harness) processSignals() {
	for {
		s, ok := h.root.PopSignal()
		if !ok {
			return
		}
		switch s.Type {
		case core.ActionSignal:
			h.actions = append(h.actions, Action{Widget: s.Widget, Action: s.Action})
		case core.RequestRedraw:
			h.redrawRequested = true
		case core.RequestAnimFrame:
			h.animRequested = true
		case core.StartIme:
			h.imeActive = true
			h.imeRect = s.Rect
		case core.ImeMoved:
			h.imeRect = s.Rect
		case core.EndIme:
			h.imeActive = false
		}
	}
}

// EditRootWidget edits the root widget, as [core.RenderRoot.EditRootWidget].
func (h *Harness) EditRootWidget(fun func(m core.WidgetMut[core.Widget])) {
	h.root.EditRootWidget(fun)
	h.processSignals()
}

// EditWidget edits the widget with the given identifier,
// as [core.RenderRoot.EditWidget].
func (h *Harness) EditWidget(id tree.NodeID, fun func(m core.WidgetMut[core.Widget])) {
	h.root.EditWidget(id, fun)
	h.processSignals()
}

// EditWidgetByTag edits the widget with the given tag. It panics if
// there is no such widget.
func (h *Harness) EditWidgetByTag(tag string, fun func(m core.WidgetMut[core.Widget])) {
	if !h.root.EditWidgetByTag(tag, fun) {
		panic(fmt.Sprintf("coretest: no widget with tag %q", tag))
	}
	h.processSignals()
}

// WidgetByTag returns the identifier of the widget with the given tag.
// It panics if there is no such widget.
func (h *Harness) WidgetByTag(tag string) tree.NodeID {
	id, ok := h.root.WidgetByTag(tag)
	if !ok {
		panic(fmt.Sprintf("coretest: no widget with tag %q", tag))
	}
	return id
}

// Widget returns the widget with the given identifier.
// It panics if there is no such widget.
func (h *Harness) Widget(id tree.NodeID) core.Widget {
	w, ok := h.root.Widget(id)
	if !ok {
		panic(fmt.Sprintf("coretest: no widget %v", id))
	}
	return w
}

// WidgetState returns the state of the widget with the given identifier.
// It panics if there is no such widget.
func (h *Harness) WidgetState(id tree.NodeID) *core.WidgetState {
	st, ok := h.root.WidgetState(id)
	if !ok {
		panic(fmt.Sprintf("coretest: no widget %v", id))
	}
	return st
}

// FocusedWidget returns the focused widget, or 0.
func (h *Harness) FocusedWidget() tree.NodeID { return h.root.FocusedWidget() }

// HoveredWidget returns the hovered widget, or 0.
func (h *Harness) HoveredWidget() tree.NodeID { return h.root.HoveredWidget() }

// FocusOn focuses the widget with the given identifier, or clears focus
// for 0, as if the application requested it.
func (h *Harness) FocusOn(id tree.NodeID) {
	if id == 0 {
		if f := h.root.FocusedWidget(); f != 0 {
			h.EditWidget(f, func(m core.WidgetMut[core.Widget]) { m.Ctx.ResignFocus() })
		}
		return
	}
	h.EditWidget(id, func(m core.WidgetMut[core.Widget]) { m.Ctx.RequestFocus() })
}

// PopAction removes and returns the oldest action submitted by a widget.
func (h *Harness) PopAction() (Action, bool) {
	if len(h.actions) == 0 {
		return Action{}, false
	}
	a := h.actions[0]
	h.actions = h.actions[1:]
	return a, true
}

// IsRedrawRequested returns whether the root asked for a redraw since
// the last [Harness.Redraw].
func (h *Harness) IsRedrawRequested() bool { return h.redrawRequested }

// IsAnimRequested returns whether the root asked for an animation frame
// since the last [Harness.AnimationFrame].
func (h *Harness) IsAnimRequested() bool { return h.animRequested }

// ImeArea returns whether the input method is active and the window
// rectangle of the widget it edits.
func (h *Harness) ImeArea() (bool, math32.Box2) { return h.imeActive, h.imeRect }

// Pointer

func (h *Harness) pointer(typ events.PointerTypes, but events.Buttons) bool {
	e := events.NewPointer(typ, but, h.pointerPos)
	e.Mods = h.mods
	handled := h.root.HandlePointerEvent(e)
	h.processSignals()
	return handled
}

// MouseMove moves the pointer to the given window position.
func (h *Harness) MouseMove(pos math32.Vector2) bool {
	h.pointerPos = pos
	return h.pointer(events.PointerMove, events.NoButton)
}

// MouseMoveTo moves the pointer to the center of the given widget.
func (h *Harness) MouseMoveTo(id tree.NodeID) bool {
	r := h.WidgetState(id).WindowRect()
	return h.MouseMove(r.Min.Add(r.Max).MulScalar(0.5))
}

// MouseButtonPress presses the given button at the current position.
func (h *Harness) MouseButtonPress(but events.Buttons) bool {
	return h.pointer(events.PointerDown, but)
}

// MouseButtonRelease releases the given button at the current position.
func (h *Harness) MouseButtonRelease(but events.Buttons) bool {
	return h.pointer(events.PointerUp, but)
}

// MouseClick presses and releases the left button at the current position.
func (h *Harness) MouseClick() {
	h.MouseButtonPress(events.Left)
	h.MouseButtonRelease(events.Left)
}

// MouseClickOn moves the pointer to the center of the given widget and
// clicks it.
func (h *Harness) MouseClickOn(id tree.NodeID) {
	h.MouseMoveTo(id)
	h.MouseClick()
}

// MouseWheel scrolls by the given amount at the current position.
func (h *Harness) MouseWheel(delta math32.Vector2) bool {
	e := events.NewPointer(events.PointerScroll, events.NoButton, h.pointerPos)
	e.Delta = delta
	e.Mods = h.mods
	handled := h.root.HandlePointerEvent(e)
	h.processSignals()
	return handled
}

// MouseLeave moves the pointer out of the window.
func (h *Harness) MouseLeave() bool {
	return h.pointer(events.PointerLeave, events.NoButton)
}

// Keyboard

// SetModifiers sets the modifiers held for subsequent input events.
func (h *Harness) SetModifiers(mods ...key.Modifiers) {
	h.mods = key.Mods(mods...)
}

// KeyPress sends a key down event for the given code and rune
// with the held modifiers.
func (h *Harness) KeyPress(code key.Codes, r rune) bool {
	e := events.NewKey(code, r)
	e.Mods = h.mods
	handled := h.root.HandleTextEvent(e)
	h.processSignals()
	return handled
}

// KeyboardType types the given text one rune at a time.
func (h *Harness) KeyboardType(text string) {
	for _, r := range text {
		h.KeyPress(key.CodeRune, r)
	}
}

// ImeCommit sends text committed by the input method.
func (h *Harness) ImeCommit(text string) bool {
	handled := h.root.HandleTextEvent(events.NewImeCommit(text))
	h.processSignals()
	return handled
}

// Tab moves the focus forward, or backward with shift held,
// unless the focused widget handles tab itself.
func (h *Harness) Tab() bool {
	return h.KeyPress(key.CodeTab, '\t')
}

// AccessAction sends an accessibility action to the given widget.
func (h *Harness) AccessAction(id tree.NodeID, action access.Action, data string) bool {
	handled := h.root.HandleAccessEvent(&events.AccessEvent{Target: id, Action: action, Data: data})
	h.processSignals()
	return handled
}

// Window

// Resize resizes the window.
func (h *Harness) Resize(size math32.Vector2) {
	h.size = size
	h.root.HandleWindowEvent(events.Resize{Size: size})
	h.processSignals()
}

// Rescale changes the window scale factor.
func (h *Harness) Rescale(scale float32) {
	h.scale = scale
	h.root.HandleWindowEvent(events.Rescale{Scale: scale})
	h.processSignals()
}

// AnimationFrame sends an animation frame with the given interval,
// advancing the clock by it.
func (h *Harness) AnimationFrame(interval time.Duration) {
	h.animRequested = false
	h.root.HandleWindowEvent(events.AnimFrame{Elapsed: interval})
	h.processSignals()
}

// AdvanceTime advances the clock by d, firing due timers, and then
// sends one animation frame for the whole interval if one was requested.
func (h *Harness) AdvanceTime(d time.Duration) {
	now := h.root.Now().Add(d)
	if h.animRequested {
		h.AnimationFrame(d)
	}
	h.root.AdvanceTimers(now)
	h.processSignals()
}

// Rendering

// Redraw runs the paint and accessibility passes, applies the
// accessibility update to [Harness.AccessTree] and returns the scene
// and the update.
func (h *Harness) Redraw() (*paint.Scene, access.TreeUpdate) {
	sc, upd := h.root.Redraw()
	h.redrawRequested = false
	h.processSignals()
	h.access.Apply(upd)
	h.scene = sc
	return sc, upd
}

// Scene returns the scene of the last [Harness.Redraw].
func (h *Harness) Scene() *paint.Scene { return h.scene }

// AccessTree returns the accessibility tree as of the last
// [Harness.Redraw].
func (h *Harness) AccessTree() *access.Tree { return &h.access }

// RenderImage redraws and rasterizes the scene into an image of the
// window size times its scale.
func (h *Harness) RenderImage() *image.RGBA {
	sc, _ := h.Redraw()
	return sc.Rasterize(h.size.MulScalar(h.scale).ToPointCeil(), Background)
}

// AssertRender asserts that the rendered image of the window is the
// same as that stored at the given filename in the testdata directory,
// saving the image to that filename if it does not already exist.
// A png file extension is added if there is none.
func (h *Harness) AssertRender(t imagex.TestingT, filename string) {
	imagex.Assert(t, h.RenderImage(), filename)
}
