// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package access defines the accessibility tree that widgets report to
// assistive technology: one [Node] per widget, and a [TreeUpdate] delta
// holding only the nodes that changed since the last frame.
package access

import (
	"fmt"
	"slices"

	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/tree"
)

// Role is the semantic kind of a widget.
type Role int32

const (
	// RoleUnknown is used by widgets that do not report a role.
	RoleUnknown Role = iota

	// RoleGenericContainer groups children without its own semantics.
	RoleGenericContainer

	// RoleWindow is the root of the tree.
	RoleWindow

	// RoleLabel is static text.
	RoleLabel

	// RoleButton is a pressable control.
	RoleButton

	// RoleTextInput is an editable single line of text.
	RoleTextInput

	// RoleProgressIndicator is an indeterminate activity indicator.
	RoleProgressIndicator
)

var roleNames = [...]string{"Unknown", "GenericContainer", "Window", "Label", "Button", "TextInput", "ProgressIndicator"}

// String returns the name of the role.
func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return fmt.Sprintf("Role(%d)", int32(r))
	}
	return roleNames[r]
}

// Action is a request from assistive technology to a widget.
type Action int32

const (
	ActionClick Action = iota
	ActionFocus
	ActionBlur
	ActionSetValue
	ActionIncrement
	ActionDecrement
)

var actionNames = [...]string{"Click", "Focus", "Blur", "SetValue", "Increment", "Decrement"}

// String returns the name of the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int32(a))
	}
	return actionNames[a]
}

// Node is the accessibility description of one widget.
type Node struct {
	Role Role

	// Bounds is the window-space bounding box of the widget.
	Bounds math32.Box2

	// Children are the identifiers of the child widgets, in order.
	Children []tree.NodeID

	// Label is the accessible name.
	Label string

	// Value is the current value of an editable or ranged widget.
	Value string

	Disabled  bool
	Focusable bool
	Hovered   bool

	// Actions are the actions the widget supports.
	Actions []Action
}

// AddAction adds the action if the node does not already support it.
func (n *Node) AddAction(a Action) {
	if !slices.Contains(n.Actions, a) {
		n.Actions = append(n.Actions, a)
	}
}

// SupportsAction returns whether the node supports the action.
func (n *Node) SupportsAction(a Action) bool {
	return slices.Contains(n.Actions, a)
}

// NodeUpdate is a rebuilt node in a [TreeUpdate].
type NodeUpdate struct {
	ID   tree.NodeID
	Node *Node
}

// TreeUpdate is the delta of the accessibility tree for one frame.
type TreeUpdate struct {

	// Nodes are the nodes rebuilt since the last update, parents first.
	Nodes []NodeUpdate

	// Root is the identifier of the root node.
	Root tree.NodeID

	// Focus is the identifier of the focused node, which is Root
	// when no widget has focus.
	Focus tree.NodeID
}

// Node returns the node with the given identifier from the update,
// or nil if it was not rebuilt.
func (u *TreeUpdate) Node(id tree.NodeID) *Node {
	for _, n := range u.Nodes {
		if n.ID == id {
			return n.Node
		}
	}
	return nil
}

// IDs returns the identifiers of the rebuilt nodes.
func (u *TreeUpdate) IDs() []tree.NodeID {
	ids := make([]tree.NodeID, len(u.Nodes))
	for i, n := range u.Nodes {
		ids[i] = n.ID
	}
	return ids
}
