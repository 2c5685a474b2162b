// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"slices"

	"cogentcore.org/arbor/base/plan"
	"cogentcore.org/arbor/events"
	"cogentcore.org/arbor/tree"
)

// RegisterChild registers the child owned by the pod. A widget must
// register every child it owns, each exactly once, in order, from
// [Widget.RegisterChildren]. Children that were registered before and are
// not registered again are removed. Then each pending pod is inserted into
// the tree: its widget gets its identifier and a fresh state.
func (c *RegisterCtx) RegisterChild(pod *WidgetPod) {
	if pod == nil {
		panic(fmt.Sprintf("core: %v registered a nil WidgetPod", c.n.st()))
	}
	if pod.IsInserted() && !c.n.widget.HasChild(pod.id) {
		panic(fmt.Sprintf("core: %v registered %v, which is not its child", c.n.st(), pod))
	}
	if slices.Contains(c.registered, pod) {
		panic(fmt.Sprintf("core: %v registered %v twice", c.n.st(), pod))
	}
	c.registered = append(c.registered, pod)
}

// insertPod moves the widget of a pending pod into the tree under n.
func (rr *RenderRoot) insertPod(n node, pod *WidgetPod) {
	if pod.tag != "" {
		if other, has := rr.tags[pod.tag]; has {
			panic(fmt.Sprintf("core: tag %q of new %T is already used by %v", pod.tag, pod.pending, other))
		}
	}
	id := tree.NewNodeID()
	w := pod.pending
	st := newWidgetState(id, w, pod, rr.defaults)
	n.widget.InsertChild(id, w)
	n.state.InsertChild(id, st)
	if pod.tag != "" {
		rr.tags[pod.tag] = id
	}
	pod.id = id
	pod.pending = nil
	pod.props = nil
	if DebugSettings.RegisterTrace {
		fmt.Println("\tDebugSettings.RegisterTrace: insert", st, "under", n.st())
	}
}

// runRegisterPass calls [Widget.RegisterChildren] on every widget whose
// children changed, inserting new children and removing dropped ones.
func (rr *RenderRoot) runRegisterPass() {
	if !rr.rootState().Has(NeedsRegister) {
		return
	}
	defer rr.enterPass(passRegister)()
	root := rr.borrowRoot()
	rr.registerNode(root)
	root.release()
}

func (rr *RenderRoot) registerNode(n node) {
	st := n.st()
	if !st.Has(NeedsRegister) {
		return
	}
	changed := st.Has(ChildrenChanged)
	st.clear(ChildrenChanged, NeedsRegister)
	if changed {
		rr.metrics.visit(passRegister)
		rr.registerChildren(n)
	}
	for _, id := range n.children() {
		c := n.child(id)
		rr.registerNode(c)
		st.MergeUp(c.st())
		c.release()
	}
}

// registerChildren reconciles the children of n with those it registers.
func (rr *RenderRoot) registerChildren(n node) {
	st := n.st()
	before := n.children()
	ctx := &RegisterCtx{root: rr, n: n}
	n.w().RegisterChildren(ctx)
	var kept []tree.NodeID
	for _, pod := range ctx.registered {
		if pod.IsInserted() {
			kept = append(kept, pod.id)
		}
	}
	// removals come first, so that a new pod may reuse a dropped tag
	current := n.children()
	_, mods := plan.Update(current, kept,
		func(id tree.NodeID) tree.NodeID { return id },
		func(id tree.NodeID, i int) tree.NodeID { return id },
		func(id tree.NodeID) { rr.removeChild(n, id) })
	order := make([]tree.NodeID, len(ctx.registered))
	for i, pod := range ctx.registered {
		if !pod.IsInserted() {
			rr.insertPod(n, pod)
			mods = true
		}
		order[i] = pod.id
	}
	if !slices.Equal(order, before) {
		mods = true
	}
	n.widget.SetChildOrder(order)
	n.state.SetChildOrder(order)
	if DebugSettings.CheckConsistency {
		if reported := n.w().Children(); !slices.Equal(reported, order) {
			debugPanicf("%v reports children %v but registered %v", st, reported, order)
		}
	}
	if mods {
		st.request(RequestLayout)
		st.request(RequestAccess)
		st.mark(NeedsPaint)
		rr.focusChainDirty = true
	}
}

// removeChild removes the child and its subtree from the tree, after
// delivering [events.WidgetRemoved] to each of them, children first.
func (rr *RenderRoot) removeChild(n node, id tree.NodeID) {
	c := n.child(id)
	rr.notifyRemoved(c)
	c.release()
	ids := n.widget.RemoveChild(id)
	n.state.RemoveChild(id)
	for _, rid := range ids {
		if rr.pointerCapture == rid {
			rr.pointerCapture = 0
		}
		if rr.focused == rid || (rr.nextFocus != nil && *rr.nextFocus == rid) {
			var none tree.NodeID
			rr.nextFocus = &none
		}
	}
	rr.focusChainDirty = true
	if DebugSettings.RegisterTrace {
		fmt.Println("\tDebugSettings.RegisterTrace: removed", ids, "from", n.st())
	}
}

func (rr *RenderRoot) notifyRemoved(n node) {
	for _, id := range n.children() {
		c := n.child(id)
		rr.notifyRemoved(c)
		c.release()
	}
	st := n.st()
	if st.tag != "" && rr.tags[st.tag] == st.id {
		delete(rr.tags, st.tag)
	}
	rr.update(n, events.Update{Type: events.WidgetRemoved})
}
