// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"slices"
)

// entry is one node of an [Arena].
type entry[T any] struct {
	parent   NodeID
	item     T
	children []NodeID

	// borrowed is set while an [ArenaMut] for this entry is live.
	// A borrowed entry grants exclusive access to its whole subtree.
	borrowed bool
}

// Arena stores a forest of items of type T keyed by [NodeID].
//
// Mutable access is split: [Arena.FindMut] borrows one entry, and
// [ArenaMut.Child] borrows a child of an already borrowed entry, so that
// a parent and any one of its children can be mutated at the same time.
// Borrows are checked when they are taken; every violation panics.
//
// An Arena is not safe for concurrent use.
type Arena[T any] struct {
	entries map[NodeID]*entry[T]
	roots   []NodeID
}

// NewArena returns a new empty [Arena].
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{entries: map[NodeID]*entry[T]{}}
}

// Len returns the number of entries in the arena.
func (a *Arena[T]) Len() int {
	return len(a.entries)
}

// Has returns whether the arena contains the given identifier.
func (a *Arena[T]) Has(id NodeID) bool {
	_, ok := a.entries[id]
	return ok
}

// Roots returns the identifiers of the entries without a parent,
// in insertion order.
func (a *Arena[T]) Roots() []NodeID {
	return slices.Clone(a.roots)
}

// Parent returns the parent of the given entry, which is zero for roots.
// ok is false if the identifier is not in the arena.
func (a *Arena[T]) Parent(id NodeID) (parent NodeID, ok bool) {
	e, ok := a.entries[id]
	if !ok {
		return 0, false
	}
	return e.parent, true
}

// Path returns the identifiers from the root of the given entry down to
// and including the entry itself. It panics if the identifier is absent.
func (a *Arena[T]) Path(id NodeID) []NodeID {
	var path []NodeID
	for id != 0 {
		e := a.mustEntry(id)
		path = append(path, id)
		id = e.parent
	}
	slices.Reverse(path)
	return path
}

// SubtreeIDs returns the identifiers of the given entry and all of its
// descendants in post-order (children before their parents).
// It returns nil if the identifier is absent.
func (a *Arena[T]) SubtreeIDs(id NodeID) []NodeID {
	e, ok := a.entries[id]
	if !ok {
		return nil
	}
	var ids []NodeID
	for _, c := range e.children {
		ids = append(ids, a.SubtreeIDs(c)...)
	}
	return append(ids, id)
}

// Insert adds the item under the given parent, after its existing children.
// A zero parent inserts a new root. It panics if the identifier is zero or
// already present, if the parent is absent, or if the parent's subtree is
// mutably borrowed (use [ArenaMut.InsertChild] instead).
func (a *Arena[T]) Insert(parent, id NodeID, item T) {
	if parent == 0 {
		a.insert(0, id, item)
		a.roots = append(a.roots, id)
		return
	}
	a.checkNotBorrowed(parent)
	pe := a.mustEntry(parent)
	a.insert(parent, id, item)
	pe.children = append(pe.children, id)
}

func (a *Arena[T]) insert(parent, id NodeID, item T) {
	if id == 0 {
		panic("tree: cannot insert the zero NodeID")
	}
	if _, exists := a.entries[id]; exists {
		panic(fmt.Sprintf("tree: NodeID %v is already in the arena", id))
	}
	a.entries[id] = &entry[T]{parent: parent, item: item}
}

// Find returns a read-only view of the given entry.
// ok is false if the identifier is absent. It panics if the entry or any
// of its ancestors is mutably borrowed.
func (a *Arena[T]) Find(id NodeID) (ArenaRef[T], bool) {
	e, ok := a.entries[id]
	if !ok {
		return ArenaRef[T]{}, false
	}
	a.checkNotBorrowed(id)
	return ArenaRef[T]{arena: a, id: id, entry: e}, true
}

// MustFind is like [Arena.Find] but panics if the identifier is absent.
func (a *Arena[T]) MustFind(id NodeID) ArenaRef[T] {
	r, ok := a.Find(id)
	if !ok {
		panic(fmt.Sprintf("tree: NodeID %v not found in the arena", id))
	}
	return r
}

// FindMut mutably borrows the given entry and, through it, its subtree.
// The borrow lasts until [ArenaMut.Release]. ok is false if the identifier
// is absent. It panics if the entry or any of its ancestors is already
// mutably borrowed.
func (a *Arena[T]) FindMut(id NodeID) (*ArenaMut[T], bool) {
	e, ok := a.entries[id]
	if !ok {
		return nil, false
	}
	a.checkNotBorrowed(id)
	e.borrowed = true
	return &ArenaMut[T]{arena: a, id: id, entry: e}, true
}

// MustFindMut is like [Arena.FindMut] but panics if the identifier is absent.
func (a *Arena[T]) MustFindMut(id NodeID) *ArenaMut[T] {
	m, ok := a.FindMut(id)
	if !ok {
		panic(fmt.Sprintf("tree: NodeID %v not found in the arena", id))
	}
	return m
}

// Remove removes the given entry and its whole subtree, returning the
// removed identifiers in post-order. It returns nil if the identifier is
// absent, and panics if any part of the subtree or any ancestor is borrowed.
func (a *Arena[T]) Remove(id NodeID) []NodeID {
	e, ok := a.entries[id]
	if !ok {
		return nil
	}
	a.checkNotBorrowed(id)
	ids := a.removeSubtree(id)
	if e.parent == 0 {
		a.roots = slices.DeleteFunc(a.roots, func(r NodeID) bool { return r == id })
	} else if pe, ok := a.entries[e.parent]; ok {
		pe.children = slices.DeleteFunc(pe.children, func(c NodeID) bool { return c == id })
	}
	return ids
}

// removeSubtree deletes the entries of the subtree rooted at id without
// touching the parent's child list.
func (a *Arena[T]) removeSubtree(id NodeID) []NodeID {
	ids := a.SubtreeIDs(id)
	for _, d := range ids {
		if a.entries[d].borrowed {
			panic(fmt.Sprintf("tree: cannot remove NodeID %v while it is borrowed", d))
		}
	}
	for _, d := range ids {
		delete(a.entries, d)
	}
	return ids
}

func (a *Arena[T]) mustEntry(id NodeID) *entry[T] {
	e, ok := a.entries[id]
	if !ok {
		panic(fmt.Sprintf("tree: NodeID %v not found in the arena", id))
	}
	return e
}

// checkNotBorrowed panics if the entry or one of its ancestors is
// mutably borrowed.
func (a *Arena[T]) checkNotBorrowed(id NodeID) {
	for cur := id; cur != 0; {
		e := a.mustEntry(cur)
		if e.borrowed {
			if cur == id {
				panic(fmt.Sprintf("tree: NodeID %v is already mutably borrowed", id))
			}
			panic(fmt.Sprintf("tree: NodeID %v is inside the subtree of mutably borrowed NodeID %v", id, cur))
		}
		cur = e.parent
	}
}

// ArenaRef is a read-only view of one arena entry.
type ArenaRef[T any] struct {
	arena *Arena[T]
	id    NodeID
	entry *entry[T]
}

// ID returns the identifier of the entry.
func (r ArenaRef[T]) ID() NodeID { return r.id }

// Item returns the item stored in the entry.
func (r ArenaRef[T]) Item() T { return r.entry.item }

// Parent returns the parent identifier, or zero for a root.
func (r ArenaRef[T]) Parent() NodeID { return r.entry.parent }

// Children returns a copy of the ordered child identifiers.
func (r ArenaRef[T]) Children() []NodeID { return slices.Clone(r.entry.children) }

// Child returns a read-only view of the given child entry.
// It panics if id is not a child of this entry.
func (r ArenaRef[T]) Child(id NodeID) ArenaRef[T] {
	if !slices.Contains(r.entry.children, id) {
		panic(fmt.Sprintf("tree: NodeID %v is not a child of NodeID %v", id, r.id))
	}
	return ArenaRef[T]{arena: r.arena, id: id, entry: r.arena.entries[id]}
}

// ArenaMut is a mutable borrow of one arena entry and its subtree.
// It must be released with [ArenaMut.Release] once all of the child
// borrows taken through it have been released.
type ArenaMut[T any] struct {
	arena *Arena[T]
	id    NodeID
	entry *entry[T]

	// childBorrows is the number of live child borrows taken through this.
	childBorrows int

	// parent is the borrow this was taken from, if any.
	parent *ArenaMut[T]

	released bool
}

// ID returns the identifier of the borrowed entry.
func (m *ArenaMut[T]) ID() NodeID { return m.id }

// Item returns the item stored in the entry.
func (m *ArenaMut[T]) Item() T {
	m.checkLive()
	return m.entry.item
}

// SetItem replaces the item stored in the entry.
func (m *ArenaMut[T]) SetItem(item T) {
	m.checkLive()
	m.entry.item = item
}

// Parent returns the parent identifier, or zero for a root.
func (m *ArenaMut[T]) Parent() NodeID { return m.entry.parent }

// Children returns a copy of the ordered child identifiers.
func (m *ArenaMut[T]) Children() []NodeID {
	m.checkLive()
	return slices.Clone(m.entry.children)
}

// HasChild returns whether id is a child of this entry.
func (m *ArenaMut[T]) HasChild(id NodeID) bool {
	return slices.Contains(m.entry.children, id)
}

// Child mutably borrows the given child and its subtree while this
// borrow stays live. Any number of distinct children may be borrowed
// at once. It panics if id is not a child of this entry or if that
// child is already borrowed.
func (m *ArenaMut[T]) Child(id NodeID) *ArenaMut[T] {
	m.checkLive()
	if !slices.Contains(m.entry.children, id) {
		panic(fmt.Sprintf("tree: NodeID %v is not a child of NodeID %v", id, m.id))
	}
	ce := m.arena.entries[id]
	if ce.borrowed {
		panic(fmt.Sprintf("tree: NodeID %v is already mutably borrowed", id))
	}
	ce.borrowed = true
	m.childBorrows++
	return &ArenaMut[T]{arena: m.arena, id: id, entry: ce, parent: m}
}

// InsertChild adds a new child entry after the existing children.
// It panics if the identifier is zero or already present.
func (m *ArenaMut[T]) InsertChild(id NodeID, item T) {
	m.checkLive()
	m.arena.insert(m.id, id, item)
	m.entry.children = append(m.entry.children, id)
}

// RemoveChild removes the given child and its subtree, returning the
// removed identifiers in post-order. It panics if id is not a child of
// this entry or if any part of its subtree is borrowed.
func (m *ArenaMut[T]) RemoveChild(id NodeID) []NodeID {
	m.checkLive()
	if !slices.Contains(m.entry.children, id) {
		panic(fmt.Sprintf("tree: NodeID %v is not a child of NodeID %v", id, m.id))
	}
	ids := m.arena.removeSubtree(id)
	m.entry.children = slices.DeleteFunc(m.entry.children, func(c NodeID) bool { return c == id })
	return ids
}

// SetChildOrder reorders the children of this entry. The given slice
// must be a permutation of the current children.
func (m *ArenaMut[T]) SetChildOrder(ids []NodeID) {
	m.checkLive()
	if len(ids) != len(m.entry.children) {
		panic(fmt.Sprintf("tree: SetChildOrder on NodeID %v: got %d ids for %d children", m.id, len(ids), len(m.entry.children)))
	}
	seen := make(map[NodeID]bool, len(ids))
	for _, id := range ids {
		if seen[id] || !slices.Contains(m.entry.children, id) {
			panic(fmt.Sprintf("tree: SetChildOrder on NodeID %v: %v is not a permutation of %v", m.id, ids, m.entry.children))
		}
		seen[id] = true
	}
	m.entry.children = slices.Clone(ids)
}

// Release ends the borrow. It panics if child borrows taken through
// this are still live or if it was already released.
func (m *ArenaMut[T]) Release() {
	m.checkLive()
	if m.childBorrows > 0 {
		panic(fmt.Sprintf("tree: NodeID %v released with %d live child borrows", m.id, m.childBorrows))
	}
	m.released = true
	m.entry.borrowed = false
	if m.parent != nil {
		m.parent.childBorrows--
	}
}

func (m *ArenaMut[T]) checkLive() {
	if m.released {
		panic(fmt.Sprintf("tree: use of released borrow of NodeID %v", m.id))
	}
}
