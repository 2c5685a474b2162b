// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides the identifier allocator and the generic arena
// that store the widget tree. Nodes never reference each other directly:
// every parent and child link is a [NodeID] resolved against an [Arena].
package tree

import (
	"strconv"
	"sync/atomic"
)

// NodeID is the stable, unique key of a node in the tree.
// The zero value means "no node" and is never allocated.
type NodeID uint64

// lastNodeID is the last identifier handed out by [NewNodeID].
var lastNodeID atomic.Uint64

// NewNodeID returns a new [NodeID] that is strictly greater than every
// identifier previously returned. It is safe for concurrent use.
// Identifiers are never reused, even after their node is removed.
func NewNodeID() NodeID {
	return NodeID(lastNodeID.Add(1))
}

// IsValid returns whether the identifier is non-zero.
func (id NodeID) IsValid() bool {
	return id != 0
}

// String returns the identifier in the form "#12".
func (id NodeID) String() string {
	return "#" + strconv.FormatUint(uint64(id), 10)
}
