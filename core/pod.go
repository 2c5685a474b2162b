// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"

	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/properties"
	"cogentcore.org/arbor/tree"
)

// WidgetPod is the edge through which a parent owns exactly one child.
// A new pod holds its widget until the registration pass first visits it;
// only then is an identifier allocated and the widget moved into the tree.
// A pod that is dropped before registration leaves nothing behind.
// After registration the pod is a reference by identifier.
type WidgetPod struct {
	id tree.NodeID

	// pending is the widget until it is inserted.
	pending Widget

	tag string

	transform    math32.Matrix2
	hasTransform bool

	// props are the initial properties, moved into the widget state
	// on insertion.
	props *properties.Properties
}

// NewWidgetPod returns a new pod owning the given widget.
func NewWidgetPod(w Widget) *WidgetPod {
	if w == nil {
		panic("core: NewWidgetPod called with a nil Widget")
	}
	return &WidgetPod{pending: w}
}

// NewTaggedPod returns a new pod owning the given widget, which can be
// found with [RenderRoot.WidgetByTag] while it is in the tree.
// At most one widget in a tree may have a given tag.
func NewTaggedPod(tag string, w Widget) *WidgetPod {
	p := NewWidgetPod(w)
	p.tag = tag
	return p
}

// WithTransform sets the initial transform of the widget, applied
// after its translation to the position set by its parent.
// It must be called before the pod is registered.
func (p *WidgetPod) WithTransform(m math32.Matrix2) *WidgetPod {
	p.checkPending("WithTransform")
	p.transform = m
	p.hasTransform = true
	return p
}

// WithProperties sets the initial properties of the widget.
// It must be called before the pod is registered.
func (p *WidgetPod) WithProperties(props *properties.Properties) *WidgetPod {
	p.checkPending("WithProperties")
	p.props = props
	return p
}

// ID returns the identifier of the widget, which is zero until the pod
// has been registered.
func (p *WidgetPod) ID() tree.NodeID { return p.id }

// Tag returns the tag of the pod.
func (p *WidgetPod) Tag() string { return p.tag }

// IsInserted returns whether the widget has been moved into the tree.
func (p *WidgetPod) IsInserted() bool { return p.id != 0 }

func (p *WidgetPod) String() string {
	if p.IsInserted() {
		return fmt.Sprintf("WidgetPod(%v)", p.id)
	}
	return fmt.Sprintf("WidgetPod(pending %T)", p.pending)
}

func (p *WidgetPod) checkPending(method string) {
	if p.IsInserted() {
		panic(fmt.Sprintf("core: WidgetPod.%s called on %v after registration", method, p.id))
	}
}

// mustID returns the identifier of an inserted pod, and panics
// for a pending one.
func (p *WidgetPod) mustID() tree.NodeID {
	if !p.IsInserted() {
		panic(fmt.Sprintf("core: %v used before it was registered", p))
	}
	return p.id
}
