// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"reflect"

	"cogentcore.org/arbor/access"
	"cogentcore.org/arbor/bitflag"
	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/paint"
	"cogentcore.org/arbor/properties"
	"cogentcore.org/arbor/tree"
)

// WidgetState is the per-widget record kept by the [RenderRoot] next to
// each widget: pending-work flags, geometry computed by the layout and
// compose passes, interaction status, properties and cached output.
// Widgets never hold their own WidgetState; they reach it through the
// context passed to each of their methods.
type WidgetState struct {
	id tree.NodeID

	// flags are the pending-work flags; see [StateFlags].
	flags bitflag.Flags[StateFlags]

	// requests counts every request made on this widget, which is used by
	// the consistency check of [MutateCtx].
	requests int

	// widgetType is the dynamic type of the widget, for tracing.
	widgetType reflect.Type

	// tag is the tag of the pod that owns the widget, if any.
	tag string

	// layout results

	// size is the size computed by the last layout of the widget.
	size math32.Vector2

	// origin is the position of the widget in its parent's coordinates,
	// set by [LayoutCtx.PlaceChild].
	origin math32.Vector2

	// baselineOffset is the distance from the bottom of the widget to
	// its text baseline.
	baselineOffset float32

	// clip is the clip rectangle in local coordinates, if hasClip.
	clip    math32.Box2
	hasClip bool

	// transform is an extra transform applied after translation to origin.
	transform math32.Matrix2

	// lastConstraints are the constraints of the last layout.
	lastConstraints BoxConstraints

	// hasLayout is set once the widget has been laid out at least once.
	hasLayout bool

	// expectingPlace is set when the widget was laid out by its parent and
	// not yet placed.
	expectingPlace bool

	// layoutCache holds the results of recent layouts keyed by constraints.
	layoutCache layoutCache

	// compose results

	// windowTransform maps local coordinates to window coordinates.
	windowTransform math32.Matrix2

	// windowOrigin is the window position of the local origin.
	windowOrigin math32.Vector2

	// boundingRect is the window-space bounding box of the widget and all
	// of its descendants, restricted to its clip.
	boundingRect math32.Box2

	// status

	isExplicitlyDisabled bool
	isDisabled           bool
	isHovered            bool
	hasHovered           bool
	isFocused            bool
	hasFocus             bool

	// properties are the properties set on the widget itself.
	properties *properties.Properties

	// defaults is the table of defaults per widget type, resolved for
	// the widget type at lookup.
	defaults *properties.DefaultProperties

	// fragment is the cached output of the last paint of the widget,
	// in local coordinates.
	fragment *paint.Scene

	// accessNode is the cached accessibility node of the widget.
	accessNode *access.Node
}

// newWidgetState returns the state of a freshly inserted widget,
// with every pass pending.
func newWidgetState(id tree.NodeID, w Widget, pod *WidgetPod, defaults *properties.DefaultProperties) *WidgetState {
	st := &WidgetState{
		id:              id,
		flags:           newWidgetFlags,
		widgetType:      reflect.TypeOf(w),
		tag:             pod.tag,
		transform:       math32.Identity2(),
		windowTransform: math32.Identity2(),
		properties:      pod.props,
		fragment:        &paint.Scene{},
	}
	if pod.hasTransform {
		st.transform = pod.transform
	}
	if st.properties == nil {
		st.properties = &properties.Properties{}
	}
	st.defaults = defaults
	return st
}

func (st *WidgetState) String() string {
	name := "<nil>"
	if st.widgetType != nil {
		name = st.widgetType.String()
	}
	return fmt.Sprintf("%s%v", name, st.id)
}

// ID returns the identifier of the widget.
func (st *WidgetState) ID() tree.NodeID { return st.id }

// Flags returns a copy of the pending-work flags.
func (st *WidgetState) Flags() bitflag.Flags[StateFlags] { return st.flags }

// Has returns whether the given flag is set.
func (st *WidgetState) Has(f StateFlags) bool { return st.flags.HasFlag(f) }

// HasAny returns whether any of the given flags is set.
func (st *WidgetState) HasAny(f ...StateFlags) bool { return st.flags.HasAny(f...) }

// Tag returns the tag of the widget's pod.
func (st *WidgetState) Tag() string { return st.tag }

// Size returns the size computed by the last layout.
func (st *WidgetState) Size() math32.Vector2 { return st.size }

// Origin returns the position of the widget in its parent.
func (st *WidgetState) Origin() math32.Vector2 { return st.origin }

// BaselineOffset returns the distance from the bottom of the widget
// to its baseline.
func (st *WidgetState) BaselineOffset() float32 { return st.baselineOffset }

// LayoutRect returns the box of the widget in its parent's coordinates.
func (st *WidgetState) LayoutRect() math32.Box2 {
	return math32.B2FromSize(st.size).Translate(st.origin)
}

// WindowOrigin returns the window position of the widget's origin.
func (st *WidgetState) WindowOrigin() math32.Vector2 { return st.windowOrigin }

// WindowTransform returns the transform from local to window coordinates.
func (st *WidgetState) WindowTransform() math32.Matrix2 { return st.windowTransform }

// WindowRect returns the window-space bounding box of the widget itself.
func (st *WidgetState) WindowRect() math32.Box2 {
	return math32.B2FromSize(st.size).MulMatrix2(st.windowTransform)
}

// BoundingRect returns the window-space bounding box of the widget and
// its descendants.
func (st *WidgetState) BoundingRect() math32.Box2 { return st.boundingRect }

// IsDisabled returns whether the widget or one of its ancestors is disabled.
func (st *WidgetState) IsDisabled() bool { return st.isDisabled }

// IsHovered returns whether the pointer is over the widget itself.
func (st *WidgetState) IsHovered() bool { return st.isHovered }

// HasHovered returns whether the pointer is over the widget or one of
// its descendants.
func (st *WidgetState) HasHovered() bool { return st.hasHovered }

// IsFocused returns whether the widget has input focus.
func (st *WidgetState) IsFocused() bool { return st.isFocused }

// HasFocus returns whether the widget or one of its descendants has
// input focus.
func (st *WidgetState) HasFocus() bool { return st.hasFocus }

// Fragment returns the cached paint output of the widget.
func (st *WidgetState) Fragment() *paint.Scene { return st.fragment }

// AccessNode returns the cached accessibility node of the widget.
func (st *WidgetState) AccessNode() *access.Node { return st.accessNode }

// propertiesRef returns the properties of the widget with its type defaults.
func (st *WidgetState) propertiesRef() properties.Ref {
	return properties.NewRef(st.properties, st.defaults.For(st.widgetType))
}

// localTransform maps local coordinates to the parent's coordinates.
func (st *WidgetState) localTransform() math32.Matrix2 {
	return math32.Translate2D(st.origin.X, st.origin.Y).Mul(st.transform)
}

// request sets a self flag and its accumulated flag on the widget.
// Setting a flag that is already set has no further effect.
func (st *WidgetState) request(f StateFlags) {
	st.requests++
	st.flags.SetFlag(true, f)
	if acc, ok := accumulatedOf[f]; ok {
		st.flags.SetFlag(true, acc)
	}
}

// mark sets flags directly, without counting as a request.
func (st *WidgetState) mark(fs ...StateFlags) {
	st.flags.SetFlag(true, fs...)
}

// clear clears the given flags. Passes call it on a widget right before
// visiting its children, so that a child requesting the same work again
// re-arms the flag through [WidgetState.MergeUp].
func (st *WidgetState) clear(fs ...StateFlags) {
	st.flags.SetFlag(false, fs...)
}

// MergeUp merges the flags of a child into this parent state: the
// accumulated flag of every kind of work is set on the parent if the child
// has any of its self flags or its accumulated flag. Self flags of the
// parent are never changed, so a descendant's [RequestAccess] shows up as
// [NeedsAccess] on its ancestors and never as their own [RequestAccess].
func (st *WidgetState) MergeUp(child *WidgetState) {
	for _, p := range flagPairs {
		if child.flags.HasAny(p.self...) || child.flags.HasFlag(p.accumulated) {
			st.flags.SetFlag(true, p.accumulated)
		}
	}
}
