// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coretest

import (
	"reflect"
	"time"

	"cogentcore.org/arbor/access"
	"cogentcore.org/arbor/core"
	"cogentcore.org/arbor/events"
	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/paint"
	"cogentcore.org/arbor/properties"
	"cogentcore.org/arbor/tree"
)

// ModularWidget is a widget whose behavior is given by functions, for
// writing one-off widgets in tests. Any function left nil does what
// [core.WidgetBase] does, except that the default layout lays out all
// children at the origin and takes the minimum size.
type ModularWidget[S any] struct {
	core.WidgetBase

	// State is the test-specific state of the widget.
	State S

	// Pods are the children of the widget.
	Pods []*core.WidgetPod

	// Focusable is returned from AcceptsFocus.
	Focusable bool

	// TextInput is returned from AcceptsTextInput.
	TextInput bool

	// NoPointer makes AcceptsPointerInteraction return false.
	NoPointer bool

	// Role is returned from AccessRole.
	Role access.Role

	PointerFunc    func(w *ModularWidget[S], ctx *core.EventCtx, e *events.PointerEvent)
	TextFunc       func(w *ModularWidget[S], ctx *core.EventCtx, e *events.TextEvent)
	AccessFunc     func(w *ModularWidget[S], ctx *core.EventCtx, e *events.AccessEvent)
	AnimFunc       func(w *ModularWidget[S], ctx *core.UpdateCtx, interval time.Duration)
	UpdateFunc     func(w *ModularWidget[S], ctx *core.UpdateCtx, u events.Update)
	PropertyFunc   func(w *ModularWidget[S], ctx *core.UpdateCtx, property reflect.Type)
	LayoutFunc     func(w *ModularWidget[S], ctx *core.LayoutCtx, props properties.Ref, bc core.BoxConstraints) math32.Vector2
	ComposeFunc    func(w *ModularWidget[S], ctx *core.ComposeCtx)
	PaintFunc      func(w *ModularWidget[S], ctx *core.PaintCtx, props properties.Ref, sc *paint.Scene)
	AccessNodeFunc func(w *ModularWidget[S], ctx *core.AccessCtx, node *access.Node)
}

// NewModularWidget returns a new [ModularWidget] with the given state
// and children.
func NewModularWidget[S any](state S, children ...*core.WidgetPod) *ModularWidget[S] {
	return &ModularWidget[S]{State: state, Pods: children}
}

// OnPointer sets [ModularWidget.PointerFunc].
func (w *ModularWidget[S]) OnPointer(fun func(w *ModularWidget[S], ctx *core.EventCtx, e *events.PointerEvent)) *ModularWidget[S] {
	w.PointerFunc = fun
	return w
}

// OnText sets [ModularWidget.TextFunc].
func (w *ModularWidget[S]) OnText(fun func(w *ModularWidget[S], ctx *core.EventCtx, e *events.TextEvent)) *ModularWidget[S] {
	w.TextFunc = fun
	return w
}

// OnAccess sets [ModularWidget.AccessFunc].
func (w *ModularWidget[S]) OnAccess(fun func(w *ModularWidget[S], ctx *core.EventCtx, e *events.AccessEvent)) *ModularWidget[S] {
	w.AccessFunc = fun
	return w
}

// OnAnim sets [ModularWidget.AnimFunc].
func (w *ModularWidget[S]) OnAnim(fun func(w *ModularWidget[S], ctx *core.UpdateCtx, interval time.Duration)) *ModularWidget[S] {
	w.AnimFunc = fun
	return w
}

// OnUpdate sets [ModularWidget.UpdateFunc].
func (w *ModularWidget[S]) OnUpdate(fun func(w *ModularWidget[S], ctx *core.UpdateCtx, u events.Update)) *ModularWidget[S] {
	w.UpdateFunc = fun
	return w
}

// OnLayout sets [ModularWidget.LayoutFunc].
func (w *ModularWidget[S]) OnLayout(fun func(w *ModularWidget[S], ctx *core.LayoutCtx, props properties.Ref, bc core.BoxConstraints) math32.Vector2) *ModularWidget[S] {
	w.LayoutFunc = fun
	return w
}

// OnPaint sets [ModularWidget.PaintFunc].
func (w *ModularWidget[S]) OnPaint(fun func(w *ModularWidget[S], ctx *core.PaintCtx, props properties.Ref, sc *paint.Scene)) *ModularWidget[S] {
	w.PaintFunc = fun
	return w
}

// SetFocusable sets [ModularWidget.Focusable].
func (w *ModularWidget[S]) SetFocusable(focusable bool) *ModularWidget[S] {
	w.Focusable = focusable
	return w
}

func (w *ModularWidget[S]) RegisterChildren(ctx *core.RegisterCtx) {
	for _, c := range w.Pods {
		ctx.RegisterChild(c)
	}
}

func (w *ModularWidget[S]) Children() []tree.NodeID { return core.PodIDs(w.Pods...) }

func (w *ModularWidget[S]) OnPointerEvent(ctx *core.EventCtx, props properties.Ref, e *events.PointerEvent) {
	if w.PointerFunc != nil {
		w.PointerFunc(w, ctx, e)
	}
}

func (w *ModularWidget[S]) OnTextEvent(ctx *core.EventCtx, props properties.Ref, e *events.TextEvent) {
	if w.TextFunc != nil {
		w.TextFunc(w, ctx, e)
	}
}

func (w *ModularWidget[S]) OnAccessEvent(ctx *core.EventCtx, props properties.Ref, e *events.AccessEvent) {
	if w.AccessFunc != nil {
		w.AccessFunc(w, ctx, e)
	}
}

func (w *ModularWidget[S]) OnAnimFrame(ctx *core.UpdateCtx, props properties.Ref, interval time.Duration) {
	if w.AnimFunc != nil {
		w.AnimFunc(w, ctx, interval)
	}
}

func (w *ModularWidget[S]) Update(ctx *core.UpdateCtx, props properties.Ref, u events.Update) {
	if w.UpdateFunc != nil {
		w.UpdateFunc(w, ctx, u)
	}
}

func (w *ModularWidget[S]) PropertyChanged(ctx *core.UpdateCtx, property reflect.Type) {
	if w.PropertyFunc != nil {
		w.PropertyFunc(w, ctx, property)
	}
}

func (w *ModularWidget[S]) Layout(ctx *core.LayoutCtx, props properties.Ref, bc core.BoxConstraints) math32.Vector2 {
	if w.LayoutFunc != nil {
		return w.LayoutFunc(w, ctx, props, bc)
	}
	for _, c := range w.Pods {
		ctx.RunLayout(c, bc.Loosen())
		ctx.PlaceChild(c, math32.Vector2{})
	}
	return bc.Min
}

func (w *ModularWidget[S]) Compose(ctx *core.ComposeCtx) {
	if w.ComposeFunc != nil {
		w.ComposeFunc(w, ctx)
	}
}

func (w *ModularWidget[S]) Paint(ctx *core.PaintCtx, props properties.Ref, sc *paint.Scene) {
	if w.PaintFunc != nil {
		w.PaintFunc(w, ctx, props, sc)
	}
}

func (w *ModularWidget[S]) AccessRole() access.Role { return w.Role }

func (w *ModularWidget[S]) Accessibility(ctx *core.AccessCtx, props properties.Ref, node *access.Node) {
	if w.AccessNodeFunc != nil {
		w.AccessNodeFunc(w, ctx, node)
	}
}

func (w *ModularWidget[S]) AcceptsPointerInteraction() bool { return !w.NoPointer }

func (w *ModularWidget[S]) AcceptsFocus() bool { return w.Focusable }

func (w *ModularWidget[S]) AcceptsTextInput() bool { return w.TextInput }
