// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"container/heap"
	"time"

	"cogentcore.org/arbor/events"
	"cogentcore.org/arbor/tree"
)

// timer is a pending [events.TimerFired] update.
type timer struct {
	when  time.Time
	token events.TimerToken
	id    tree.NodeID
}

// timerHeap is a min-heap of timers ordered by deadline, then by token,
// so that timers with the same deadline fire in request order.
type timerHeap []timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].when.Equal(h[j].when) {
		return h[i].token < h[j].token
	}
	return h[i].when.Before(h[j].when)
}
func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *timerHeap) Push(x any)   { *h = append(*h, x.(timer)) }
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// timers are the pending timers of a render root.
type timers struct {
	heap      timerHeap
	lastToken events.TimerToken
}

func (t *timers) add(id tree.NodeID, when time.Time) events.TimerToken {
	t.lastToken++
	heap.Push(&t.heap, timer{when: when, token: t.lastToken, id: id})
	return t.lastToken
}

// popDue removes and returns the next timer due at now, if any.
func (t *timers) popDue(now time.Time) (timer, bool) {
	if len(t.heap) == 0 || t.heap[0].when.After(now) {
		return timer{}, false
	}
	return heap.Pop(&t.heap).(timer), true
}

// next returns the deadline of the next timer.
func (t *timers) next() (time.Time, bool) {
	if len(t.heap) == 0 {
		return time.Time{}, false
	}
	return t.heap[0].when, true
}

// AdvanceTimers sets the current time of the render root and delivers
// [events.TimerFired] to every widget whose timer is due, in deadline
// order. Timers of removed widgets are dropped.
func (rr *RenderRoot) AdvanceTimers(now time.Time) {
	rr.checkNotInPass("AdvanceTimers")
	if now.After(rr.now) {
		rr.now = now
	}
	for {
		t, ok := rr.timers.popDue(rr.now)
		if !ok {
			break
		}
		if !rr.widgets.Has(t.id) {
			continue
		}
		rr.withNode(t.id, func(n node) {
			rr.update(n, events.Update{Type: events.TimerFired, Timer: t.token})
		})
	}
	rr.runRewritePasses()
}

// NextTimer returns the deadline of the earliest pending timer.
func (rr *RenderRoot) NextTimer() (time.Time, bool) {
	return rr.timers.next()
}
