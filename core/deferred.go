// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"log/slog"

	"cogentcore.org/arbor/tree"
)

// mutateCallback is a mutation queued with [requestCtx.MutateSelfLater]
// or [requestCtx.MutateLater].
type mutateCallback struct {
	id  tree.NodeID
	fun func(m WidgetMut[Widget])
}

// deferredQueue is the first-in first-out queue of mutations requested
// during a pass. It is drained only between passes, when nothing is
// borrowed from the tree, and callbacks queued while draining run after
// every callback queued before them.
type deferredQueue struct {
	items []mutateCallback
	head  int
}

func (q *deferredQueue) push(id tree.NodeID, fun func(m WidgetMut[Widget])) {
	q.items = append(q.items, mutateCallback{id: id, fun: fun})
}

func (q *deferredQueue) pop() (mutateCallback, bool) {
	if q.head >= len(q.items) {
		return mutateCallback{}, false
	}
	cb := q.items[q.head]
	q.items[q.head] = mutateCallback{}
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return cb, true
}

func (q *deferredQueue) len() int {
	return len(q.items) - q.head
}

// runMutateCallbacks drains the deferred queue. Callbacks for widgets that
// were removed before they ran are dropped.
func (rr *RenderRoot) runMutateCallbacks() {
	for {
		cb, ok := rr.deferred.pop()
		if !ok {
			return
		}
		if !rr.widgets.Has(cb.id) {
			slog.Debug("core: dropping deferred mutation of removed widget", "id", cb.id)
			continue
		}
		rr.withNode(cb.id, func(n node) {
			rr.mutate(n, cb.fun)
		})
	}
}
