// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core provides the retained widget tree of Arbor: the state
// record kept for every widget, the pods through which parents own their
// children, the mutation proxy through which application code edits
// widgets, and the [RenderRoot] that schedules the registration, event,
// update, layout, compose, paint and accessibility passes.
package core

import (
	"reflect"
	"time"

	"cogentcore.org/arbor/access"
	"cogentcore.org/arbor/events"
	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/paint"
	"cogentcore.org/arbor/properties"
	"cogentcore.org/arbor/tree"
)

// Widget is the interface that all widgets satisfy. The [RenderRoot]
// stores widgets through this interface and calls these methods from its
// passes; widgets should embed [WidgetBase] and override only the methods
// they need.
//
// A widget owns its children through [WidgetPod] fields and reports
// them from [Widget.RegisterChildren] and [Widget.Children].
type Widget interface {

	// RegisterChildren must call [RegisterCtx.RegisterChild] for every
	// child pod the widget currently owns, in order. It is called when
	// the widget is first inserted and after [MutateCtx.ChildrenChanged].
	RegisterChildren(ctx *RegisterCtx)

	// OnPointerEvent handles a pointer event targeted at the widget or
	// bubbling up from one of its descendants.
	OnPointerEvent(ctx *EventCtx, props properties.Ref, e *events.PointerEvent)

	// OnTextEvent handles a keyboard or input method event delivered to
	// the focused widget and bubbling up through its ancestors.
	OnTextEvent(ctx *EventCtx, props properties.Ref, e *events.TextEvent)

	// OnAccessEvent handles an action requested by assistive technology.
	OnAccessEvent(ctx *EventCtx, props properties.Ref, e *events.AccessEvent)

	// OnAnimFrame is called on each frame tick after the widget called
	// [MutateCtx.RequestAnimFrame], with the time since the last frame.
	OnAnimFrame(ctx *UpdateCtx, props properties.Ref, interval time.Duration)

	// Update handles a lifecycle notification; see [events.UpdateTypes].
	Update(ctx *UpdateCtx, props properties.Ref, u events.Update)

	// PropertyChanged is called after a property of the given type was
	// inserted or removed on the widget.
	PropertyChanged(ctx *UpdateCtx, property reflect.Type)

	// Layout computes the size of the widget within the given constraints,
	// laying out each child with [LayoutCtx.RunLayout] and positioning it
	// with [LayoutCtx.PlaceChild].
	Layout(ctx *LayoutCtx, props properties.Ref, bc BoxConstraints) math32.Vector2

	// Compose is called after [MutateCtx.RequestCompose], once window
	// positions are known.
	Compose(ctx *ComposeCtx)

	// Paint paints the widget itself, not its children, into the scene
	// in local coordinates. Background and border are already painted.
	Paint(ctx *PaintCtx, props properties.Ref, sc *paint.Scene)

	// AccessRole returns the accessibility role of the widget.
	AccessRole() access.Role

	// Accessibility fills in the widget-specific fields of its
	// accessibility node.
	Accessibility(ctx *AccessCtx, props properties.Ref, node *access.Node)

	// Children returns the identifiers of the registered children.
	Children() []tree.NodeID

	// AcceptsPointerInteraction returns whether the widget can be the
	// target of pointer events. Widgets that return false are skipped by
	// hit testing, in favor of their ancestors.
	AcceptsPointerInteraction() bool

	// AcceptsFocus returns whether the widget can hold input focus.
	AcceptsFocus() bool

	// AcceptsTextInput returns whether the widget edits text,
	// which requests the input method while it is focused.
	AcceptsTextInput() bool
}

// Fingerprinter is implemented by widgets that can summarize their
// visible state as a number. When [DebugSettingsData.CheckConsistency]
// is on, an edit that changes the fingerprint of a widget without
// requesting any pass is reported.
type Fingerprinter interface {
	Fingerprint() uint64
}

// WidgetBase provides the default implementation of every [Widget] method:
// no children, no event handling, and a size equal to the minimum of the
// constraints.
type WidgetBase struct{}

func (wb *WidgetBase) RegisterChildren(ctx *RegisterCtx) {}

func (wb *WidgetBase) OnPointerEvent(ctx *EventCtx, props properties.Ref, e *events.PointerEvent) {
}

func (wb *WidgetBase) OnTextEvent(ctx *EventCtx, props properties.Ref, e *events.TextEvent) {}

func (wb *WidgetBase) OnAccessEvent(ctx *EventCtx, props properties.Ref, e *events.AccessEvent) {}

func (wb *WidgetBase) OnAnimFrame(ctx *UpdateCtx, props properties.Ref, interval time.Duration) {}

func (wb *WidgetBase) Update(ctx *UpdateCtx, props properties.Ref, u events.Update) {}

func (wb *WidgetBase) PropertyChanged(ctx *UpdateCtx, property reflect.Type) {}

func (wb *WidgetBase) Layout(ctx *LayoutCtx, props properties.Ref, bc BoxConstraints) math32.Vector2 {
	return bc.Min
}

func (wb *WidgetBase) Compose(ctx *ComposeCtx) {}

func (wb *WidgetBase) Paint(ctx *PaintCtx, props properties.Ref, sc *paint.Scene) {}

func (wb *WidgetBase) AccessRole() access.Role { return access.RoleUnknown }

func (wb *WidgetBase) Accessibility(ctx *AccessCtx, props properties.Ref, node *access.Node) {}

func (wb *WidgetBase) Children() []tree.NodeID { return nil }

func (wb *WidgetBase) AcceptsPointerInteraction() bool { return true }

func (wb *WidgetBase) AcceptsFocus() bool { return false }

func (wb *WidgetBase) AcceptsTextInput() bool { return false }

// PodIDs returns the identifiers of the given pods, for implementing
// [Widget.Children]. Pods that are not yet inserted are skipped.
func PodIDs(pods ...*WidgetPod) []tree.NodeID {
	ids := make([]tree.NodeID, 0, len(pods))
	for _, p := range pods {
		if p != nil && p.IsInserted() {
			ids = append(ids, p.id)
		}
	}
	return ids
}
