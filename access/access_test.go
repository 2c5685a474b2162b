// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cogentcore.org/arbor/tree"
)

func TestNodeActions(t *testing.T) {
	n := &Node{Role: RoleButton}
	n.AddAction(ActionClick)
	n.AddAction(ActionClick)
	assert.Equal(t, []Action{ActionClick}, n.Actions)
	assert.True(t, n.SupportsAction(ActionClick))
	assert.False(t, n.SupportsAction(ActionFocus))
	assert.Equal(t, "Button", RoleButton.String())
	assert.Equal(t, "Role(42)", Role(42).String())
}

func TestTreeApply(t *testing.T) {
	root, a, b := tree.NewNodeID(), tree.NewNodeID(), tree.NewNodeID()
	tr := &Tree{}
	u := TreeUpdate{
		Nodes: []NodeUpdate{
			{root, &Node{Role: RoleWindow, Children: []tree.NodeID{a, b}}},
			{a, &Node{Role: RoleLabel, Label: "a"}},
			{b, &Node{Role: RoleButton, Label: "b"}},
		},
		Root:  root,
		Focus: root,
	}
	tr.Apply(u)
	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, "a", u.Node(a).Label)
	assert.Nil(t, u.Node(tree.NewNodeID()))
	assert.Equal(t, []tree.NodeID{root, a, b}, u.IDs())

	// only a changes, b is kept as previously reported
	tr.Apply(TreeUpdate{Nodes: []NodeUpdate{{a, &Node{Role: RoleLabel, Label: "a2"}}}, Root: root, Focus: b})
	assert.Equal(t, "a2", tr.Node(a).Label)
	assert.Equal(t, "b", tr.Node(b).Label)
	assert.Equal(t, b, tr.Focus)

	// b is dropped from the root's children
	tr.Apply(TreeUpdate{Nodes: []NodeUpdate{{root, &Node{Role: RoleWindow, Children: []tree.NodeID{a}}}}, Root: root, Focus: root})
	assert.Nil(t, tr.Node(b))
	assert.Equal(t, 2, tr.Len())
}
