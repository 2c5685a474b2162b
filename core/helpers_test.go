// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"image/color"
	"slices"
	"time"

	"cogentcore.org/arbor/access"
	"cogentcore.org/arbor/events"
	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/paint"
	"cogentcore.org/arbor/properties"
	"cogentcore.org/arbor/tree"
)

// box is a configurable widget for the tests of this package: it stacks
// its children vertically and records what happens to it in a log.
type box struct {
	WidgetBase

	name     string
	size     math32.Vector2
	color    color.RGBA
	children []*WidgetPod

	focusable bool
	textInput bool
	noPointer bool
	value     int

	log *[]string

	layoutCalls int
	paintCalls  int
	accessCalls int
	animCalls   int

	onLayout  func(ctx *LayoutCtx, bc BoxConstraints) math32.Vector2
	onUpdate  func(ctx *UpdateCtx, u events.Update)
	onPointer func(ctx *EventCtx, e *events.PointerEvent)
	onText    func(ctx *EventCtx, e *events.TextEvent)
	onAccess  func(ctx *EventCtx, e *events.AccessEvent)
	onAnim    func(ctx *UpdateCtx, interval time.Duration)
}

func newBox(name string, log *[]string, children ...*WidgetPod) *box {
	return &box{name: name, log: log, children: children}
}

func (b *box) record(format string, args ...any) {
	if b.log != nil {
		*b.log = append(*b.log, b.name+":"+fmt.Sprintf(format, args...))
	}
}

func (b *box) RegisterChildren(ctx *RegisterCtx) {
	for _, c := range b.children {
		ctx.RegisterChild(c)
	}
}

func (b *box) Children() []tree.NodeID { return PodIDs(b.children...) }

func (b *box) Update(ctx *UpdateCtx, props properties.Ref, u events.Update) {
	b.record("%v", u)
	if b.onUpdate != nil {
		b.onUpdate(ctx, u)
	}
}

func (b *box) OnPointerEvent(ctx *EventCtx, props properties.Ref, e *events.PointerEvent) {
	b.record("%v", e.Type)
	if b.onPointer != nil {
		b.onPointer(ctx, e)
	}
}

func (b *box) OnTextEvent(ctx *EventCtx, props properties.Ref, e *events.TextEvent) {
	b.record("%v", e.Type)
	if b.onText != nil {
		b.onText(ctx, e)
	}
}

func (b *box) OnAccessEvent(ctx *EventCtx, props properties.Ref, e *events.AccessEvent) {
	b.record("%v", e.Action)
	if b.onAccess != nil {
		b.onAccess(ctx, e)
	}
}

func (b *box) OnAnimFrame(ctx *UpdateCtx, props properties.Ref, interval time.Duration) {
	b.animCalls++
	b.record("anim %v", interval)
	if b.onAnim != nil {
		b.onAnim(ctx, interval)
	}
}

func (b *box) Layout(ctx *LayoutCtx, props properties.Ref, bc BoxConstraints) math32.Vector2 {
	b.layoutCalls++
	if b.onLayout != nil {
		return b.onLayout(ctx, bc)
	}
	size := b.size
	var y float32
	for _, c := range b.children {
		s := ctx.RunLayout(c, Loose(bc.Max))
		ctx.PlaceChild(c, math32.Vec2(0, y))
		y += s.Y
		size.X = max(size.X, s.X)
	}
	size.Y = max(size.Y, y)
	return bc.Constrain(size)
}

func (b *box) Paint(ctx *PaintCtx, props properties.Ref, sc *paint.Scene) {
	b.paintCalls++
	sc.FillRect(math32.B2FromSize(ctx.Size()), b.color)
}

func (b *box) AccessRole() access.Role { return access.RoleGenericContainer }

func (b *box) Accessibility(ctx *AccessCtx, props properties.Ref, node *access.Node) {
	b.accessCalls++
	node.Label = b.name
	node.Value = fmt.Sprint(b.value)
}

func (b *box) AcceptsPointerInteraction() bool { return !b.noPointer }
func (b *box) AcceptsFocus() bool              { return b.focusable }
func (b *box) AcceptsTextInput() bool          { return b.textInput }

func (b *box) Fingerprint() uint64 {
	return uint64(b.value)<<32 | uint64(len(b.children))
}

// mutation helpers

func addChild(m WidgetMut[*box], pod *WidgetPod) {
	m.Widget.children = append(m.Widget.children, pod)
	m.Ctx.ChildrenChanged()
}

func removeChildAt(m WidgetMut[*box], i int) {
	m.Widget.children = slices.Delete(m.Widget.children, i, i+1)
	m.Ctx.ChildrenChanged()
}

func setValue(m WidgetMut[*box], v int) {
	m.Widget.value = v
	m.Ctx.RequestRender()
}

func setColor(m WidgetMut[*box], c color.RGBA) {
	m.Widget.color = c
	m.Ctx.RequestPaintOnly()
}

func setSize(m WidgetMut[*box], size math32.Vector2) {
	m.Widget.size = size
	m.Ctx.RequestLayout()
}

// newTestRoot returns a render root with a fixed 100x100 window.
func newTestRoot(root Widget) *RenderRoot {
	return NewRenderRoot(root, Options{Size: math32.Vec2(100, 100), Now: time.Unix(1000, 0)})
}

func stateOf(rr *RenderRoot, pod *WidgetPod) *WidgetState {
	st, ok := rr.WidgetState(pod.ID())
	if !ok {
		panic(fmt.Sprintf("no state for %v", pod))
	}
	return st
}

// drainSignals pops every pending signal.
func drainSignals(rr *RenderRoot) []Signal {
	var sigs []Signal
	for {
		s, ok := rr.PopSignal()
		if !ok {
			return sigs
		}
		sigs = append(sigs, s)
	}
}

func signalTypes(sigs []Signal) []SignalTypes {
	ts := make([]SignalTypes, len(sigs))
	for i, s := range sigs {
		ts[i] = s.Type
	}
	return ts
}
