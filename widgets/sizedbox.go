// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"cogentcore.org/arbor/access"
	"cogentcore.org/arbor/core"
	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/properties"
	"cogentcore.org/arbor/tree"
)

// SizedBox gives its optional child a fixed width and/or height, within
// the constraints of its parent. Without a child it is a spacer.
// A dimension set to [math32.Infinity] expands to the maximum allowed.
type SizedBox struct {
	core.WidgetBase

	child *core.WidgetPod

	width, height       float32
	hasWidth, hasHeight bool
}

// NewSizedBox returns a new sized box with no child and no size,
// which takes the minimum size allowed.
func NewSizedBox() *SizedBox { return &SizedBox{} }

// NewSizedBoxWith returns a new sized box around the given child.
func NewSizedBoxWith(w core.Widget) *SizedBox {
	return &SizedBox{child: core.NewWidgetPod(w)}
}

// Expand returns a sized box taking all the space it is allowed.
func Expand(w core.Widget) *SizedBox {
	sb := NewSizedBox().SetWidth(math32.Infinity).SetHeight(math32.Infinity)
	if w != nil {
		sb.child = core.NewWidgetPod(w)
	}
	return sb
}

// SetWidth sets the width before the box is inserted.
func (sb *SizedBox) SetWidth(w float32) *SizedBox {
	sb.width, sb.hasWidth = w, true
	return sb
}

// SetHeight sets the height before the box is inserted.
func (sb *SizedBox) SetHeight(h float32) *SizedBox {
	sb.height, sb.hasHeight = h, true
	return sb
}

// Child returns the pod of the child, or nil.
func (sb *SizedBox) Child() *core.WidgetPod { return sb.child }

// SetSizedBoxWidth changes the width of the box.
func SetSizedBoxWidth(m core.WidgetMut[*SizedBox], w float32) {
	m.Widget.SetWidth(w)
	m.Ctx.RequestLayout()
}

// SetSizedBoxHeight changes the height of the box.
func SetSizedBoxHeight(m core.WidgetMut[*SizedBox], h float32) {
	m.Widget.SetHeight(h)
	m.Ctx.RequestLayout()
}

// UnsetSizedBoxSize makes the box take the size of its child again.
func UnsetSizedBoxSize(m core.WidgetMut[*SizedBox]) {
	m.Widget.hasWidth, m.Widget.hasHeight = false, false
	m.Ctx.RequestLayout()
}

// SetSizedBoxChild replaces the child of the box.
func SetSizedBoxChild(m core.WidgetMut[*SizedBox], w core.Widget) {
	m.Widget.child = core.NewWidgetPod(w)
	m.Ctx.ChildrenChanged()
}

// RemoveSizedBoxChild removes the child of the box.
func RemoveSizedBoxChild(m core.WidgetMut[*SizedBox]) {
	if m.Widget.child == nil {
		return
	}
	m.Widget.child = nil
	m.Ctx.ChildrenChanged()
}

// SizedBoxChild calls fun with a handle for the child.
func SizedBoxChild(m core.WidgetMut[*SizedBox], fun func(cm core.WidgetMut[core.Widget])) {
	if m.Widget.child != nil {
		m.Ctx.EditChild(m.Widget.child, fun)
	}
}

func (sb *SizedBox) RegisterChildren(ctx *core.RegisterCtx) {
	if sb.child != nil {
		ctx.RegisterChild(sb.child)
	}
}

func (sb *SizedBox) Children() []tree.NodeID { return core.PodIDs(sb.child) }

// childConstraints returns the constraints for the child, tightened
// on the dimensions that are set.
func (sb *SizedBox) childConstraints(bc core.BoxConstraints) core.BoxConstraints {
	cbc := bc
	if sb.hasWidth {
		w := clampFinite(sb.width, bc.Min.X, bc.Max.X)
		cbc.Min.X, cbc.Max.X = w, w
	}
	if sb.hasHeight {
		h := clampFinite(sb.height, bc.Min.Y, bc.Max.Y)
		cbc.Min.Y, cbc.Max.Y = h, h
	}
	return cbc
}

func (sb *SizedBox) Layout(ctx *core.LayoutCtx, props properties.Ref, bc core.BoxConstraints) math32.Vector2 {
	cbc := sb.childConstraints(bc)
	if sb.child == nil {
		return cbc.Min
	}
	size := ctx.RunLayout(sb.child, cbc)
	ctx.PlaceChild(sb.child, math32.Vector2{})
	ctx.SetBaselineOffset(ctx.ChildBaselineOffset(sb.child))
	return bc.Constrain(size)
}

func (sb *SizedBox) AccessRole() access.Role { return access.RoleGenericContainer }

func (sb *SizedBox) AcceptsPointerInteraction() bool { return false }
