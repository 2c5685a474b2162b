// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "cogentcore.org/arbor/tree"
)

func TestNewNodeID(t *testing.T) {
	a := NewNodeID()
	b := NewNodeID()
	assert.True(t, a.IsValid())
	assert.Greater(t, b, a)
	assert.False(t, NodeID(0).IsValid())
	assert.Equal(t, "#7", NodeID(7).String())
}

func TestNewNodeIDConcurrent(t *testing.T) {
	const n = 100
	ids := make(chan NodeID, n)
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- NewNodeID()
		}()
	}
	wg.Wait()
	close(ids)
	seen := map[NodeID]bool{}
	for id := range ids {
		assert.False(t, seen[id])
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

// newTestArena returns an arena with a root and two children,
// the first of which has one child of its own.
func newTestArena() (a *Arena[string], root, c1, c2, gc NodeID) {
	a = NewArena[string]()
	root, c1, c2, gc = NewNodeID(), NewNodeID(), NewNodeID(), NewNodeID()
	a.Insert(0, root, "root")
	a.Insert(root, c1, "c1")
	a.Insert(root, c2, "c2")
	a.Insert(c1, gc, "gc")
	return
}

func TestArenaInsertFind(t *testing.T) {
	a, root, c1, c2, gc := newTestArena()
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, []NodeID{root}, a.Roots())

	r, ok := a.Find(root)
	require.True(t, ok)
	assert.Equal(t, "root", r.Item())
	assert.Equal(t, []NodeID{c1, c2}, r.Children())
	assert.Equal(t, "gc", r.Child(c1).Child(gc).Item())

	p, ok := a.Parent(gc)
	assert.True(t, ok)
	assert.Equal(t, c1, p)
	assert.Equal(t, []NodeID{root, c1, gc}, a.Path(gc))
	assert.Equal(t, []NodeID{gc, c1, c2, root}, a.SubtreeIDs(root))

	_, ok = a.Find(NewNodeID())
	assert.False(t, ok)
	assert.Panics(t, func() { a.MustFind(NewNodeID()) })
	assert.Panics(t, func() { r.Child(gc) })
	assert.Panics(t, func() { a.Insert(root, c1, "dup") })
	assert.Panics(t, func() { a.Insert(NewNodeID(), NewNodeID(), "orphan") })
	assert.Panics(t, func() { a.Insert(0, 0, "zero") })
}

func TestArenaSplitBorrow(t *testing.T) {
	a, root, c1, c2, gc := newTestArena()

	m := a.MustFindMut(root)
	m.SetItem("root2")
	m1 := m.Child(c1)
	m2 := m.Child(c2)
	// the parent and two disjoint children are mutable at once
	m1.SetItem("c1b")
	m2.SetItem("c2b")
	g := m1.Child(gc)
	g.SetItem("gcb")

	assert.Panics(t, func() { m.Child(c1) }, "double borrow of a child")
	assert.Panics(t, func() { a.Find(gc) }, "read inside a borrowed subtree")
	assert.Panics(t, func() { a.FindMut(root) }, "double borrow of root")
	assert.Panics(t, func() { m.Child(gc) }, "grandchild is not a child")
	assert.Panics(t, func() { m1.Release() }, "release with live child borrow")

	g.Release()
	m1.Release()
	m2.Release()
	assert.Panics(t, func() { m2.Item() })
	m.Release()

	r := a.MustFind(root)
	assert.Equal(t, "root2", r.Item())
	assert.Equal(t, "c1b", r.Child(c1).Item())
	assert.Equal(t, "gcb", a.MustFind(gc).Item())
}

func TestArenaRemove(t *testing.T) {
	a, root, c1, c2, gc := newTestArena()

	m := a.MustFindMut(root)
	assert.Panics(t, func() { a.Remove(c1) })
	removed := m.RemoveChild(c1)
	assert.Equal(t, []NodeID{gc, c1}, removed)
	assert.Equal(t, []NodeID{c2}, m.Children())
	assert.Panics(t, func() { m.RemoveChild(c1) })
	m.Release()

	assert.False(t, a.Has(c1))
	assert.False(t, a.Has(gc))
	assert.Equal(t, 2, a.Len())

	assert.Equal(t, []NodeID{c2, root}, a.Remove(root))
	assert.Equal(t, 0, a.Len())
	assert.Empty(t, a.Roots())
	assert.Nil(t, a.Remove(root))
}

func TestArenaInsertChildOrder(t *testing.T) {
	a, root, c1, c2, _ := newTestArena()
	c3 := NewNodeID()

	m := a.MustFindMut(root)
	m.InsertChild(c3, "c3")
	assert.Equal(t, []NodeID{c1, c2, c3}, m.Children())
	m.SetChildOrder([]NodeID{c3, c1, c2})
	assert.Equal(t, []NodeID{c3, c1, c2}, m.Children())
	assert.True(t, m.HasChild(c3))
	assert.Panics(t, func() { m.SetChildOrder([]NodeID{c1, c1, c2}) })
	assert.Panics(t, func() { m.SetChildOrder([]NodeID{c1}) })
	m.Release()

	p, _ := a.Parent(c3)
	assert.Equal(t, root, p)
}
