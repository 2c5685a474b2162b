// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"reflect"

	"cogentcore.org/arbor/properties"
)

// MutateCtx is the context of a [WidgetMut]: it grants the requests of
// the other pass contexts, plus access to the children of the widget
// and to its properties.
type MutateCtx struct {
	requestCtx
}

// WidgetMut is a scoped handle granting write access to one widget and
// its state. It is only valid inside the callback it is passed to: the
// widget is borrowed from the tree for the duration of the callback, and
// its flags are merged up to the root afterwards.
//
// Widgets provide mutation helpers taking a WidgetMut, which change a field
// and request the passes the change needs in one call. Application code
// should change widgets only through those helpers.
type WidgetMut[W any] struct {
	Ctx    *MutateCtx
	Widget W
}

// Downcast returns the handle typed as the concrete widget type W.
// It panics if the widget is not a W.
func Downcast[W Widget](m WidgetMut[Widget]) WidgetMut[W] {
	w, ok := m.Widget.(W)
	if !ok {
		panic(fmt.Sprintf("core: cannot downcast %v to %v", m.Ctx.state(), reflect.TypeFor[W]()))
	}
	return WidgetMut[W]{Ctx: m.Ctx, Widget: w}
}

// TryDowncast is like [Downcast] but reports failure instead of panicking.
func TryDowncast[W Widget](m WidgetMut[Widget]) (WidgetMut[W], bool) {
	w, ok := m.Widget.(W)
	if !ok {
		return WidgetMut[W]{}, false
	}
	return WidgetMut[W]{Ctx: m.Ctx, Widget: w}, true
}

// Dyn returns the handle typed as a plain [Widget]. W must be a widget type.
func (m WidgetMut[W]) Dyn() WidgetMut[Widget] {
	return WidgetMut[Widget]{Ctx: m.Ctx, Widget: any(m.Widget).(Widget)}
}

// EditChild calls fun with a handle for the child owned by the pod,
// while the parent handle stays valid. The pod must be registered.
func (c *MutateCtx) EditChild(pod *WidgetPod, fun func(m WidgetMut[Widget])) {
	cn := c.n.child(pod.mustID())
	c.root.mutate(cn, fun)
	c.state().MergeUp(cn.st())
	cn.release()
}

// EditChildAs is like [MutateCtx.EditChild] with the handle downcast to W.
func EditChildAs[W Widget](c *MutateCtx, pod *WidgetPod, fun func(m WidgetMut[W])) {
	c.EditChild(pod, func(m WidgetMut[Widget]) {
		fun(Downcast[W](m))
	})
}

// Properties returns the properties of the widget.
func (c *MutateCtx) Properties() properties.Ref {
	return c.state().propertiesRef()
}

// InsertProperty sets property P on the widget, returning the previous
// value if any. Values out of range are reported and clamped. It requests
// layout for properties that affect layout and paint for all.
func InsertProperty[P any](c *MutateCtx, v P) (old P, had bool) {
	st := c.state()
	sv, ok := properties.Sanitize(v)
	if !ok {
		debugPanicf("property %T value %v is out of range on %v", v, v, st)
	}
	old, had = properties.Insert(st.properties, sv)
	c.propertyChanged(properties.TypeOf[P](), properties.AffectsLayout[P]())
	return
}

// RemoveProperty removes property P from the widget, which then uses its
// default again, and returns the removed value if any.
func RemoveProperty[P any](c *MutateCtx) (old P, had bool) {
	old, had = properties.Remove[P](c.state().properties)
	if had {
		c.propertyChanged(properties.TypeOf[P](), properties.AffectsLayout[P]())
	}
	return
}

func (c *MutateCtx) propertyChanged(t reflect.Type, affectsLayout bool) {
	if affectsLayout {
		c.RequestLayout()
	}
	c.RequestPaintOnly()
	c.n.w().PropertyChanged(&UpdateCtx{c.requestCtx}, t)
}

// mutate calls fun with a handle for the node. With consistency checks
// on, a widget whose fingerprint changed without any request being made
// is reported.
func (rr *RenderRoot) mutate(n node, fun func(m WidgetMut[Widget])) {
	ctx := &MutateCtx{requestCtx{widgetCtx{root: rr, n: n}}}
	w := n.w()
	st := n.st()
	fpr, check := w.(Fingerprinter)
	check = check && DebugSettings.CheckConsistency
	var fp uint64
	requests := st.requests
	if check {
		fp = fpr.Fingerprint()
	}
	fun(WidgetMut[Widget]{Ctx: ctx, Widget: w})
	if check && st.requests == requests && fpr.Fingerprint() != fp {
		debugPanicf("%v changed in a mutation that requested no pass; use its mutation helpers", st)
	}
}
