// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package access

import "cogentcore.org/arbor/tree"

// Tree is the full accessibility tree as seen by a consumer that applies
// every [TreeUpdate] in order.
type Tree struct {
	Root  tree.NodeID
	Focus tree.NodeID
	nodes map[tree.NodeID]*Node
}

// Apply applies the update and drops the nodes that are no longer
// reachable from the root.
func (t *Tree) Apply(u TreeUpdate) {
	if t.nodes == nil {
		t.nodes = map[tree.NodeID]*Node{}
	}
	for _, n := range u.Nodes {
		t.nodes[n.ID] = n.Node
	}
	t.Root = u.Root
	t.Focus = u.Focus
	reachable := map[tree.NodeID]bool{}
	var visit func(id tree.NodeID)
	visit = func(id tree.NodeID) {
		n, ok := t.nodes[id]
		if !ok || reachable[id] {
			return
		}
		reachable[id] = true
		for _, c := range n.Children {
			visit(c)
		}
	}
	visit(t.Root)
	for id := range t.nodes {
		if !reachable[id] {
			delete(t.nodes, id)
		}
	}
}

// Node returns the node with the given identifier, or nil.
func (t *Tree) Node(id tree.NodeID) *Node {
	return t.nodes[id]
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}
