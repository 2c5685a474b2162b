// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/arbor/access"
	"cogentcore.org/arbor/events"
	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/paint"
	"cogentcore.org/arbor/properties"
	"cogentcore.org/arbor/tree"
)

// SizePolicies determine how the root widget is laid out
// from the window size.
type SizePolicies int32

const (
	// SizeFixed lays out the root with tight constraints at the window size.
	SizeFixed SizePolicies = iota

	// SizeContent lays out the root with loose constraints up to the
	// window size, so that the window can shrink to fit its content.
	SizeContent
)

// Options are the options of [NewRenderRoot].
type Options struct {
	// Size is the logical size of the window.
	Size math32.Vector2

	// SizePolicy determines the constraints of the root widget.
	SizePolicy SizePolicies

	// Scale is the factor from logical to physical pixels.
	// Zero means 1.
	Scale float32

	// DefaultProperties are the property defaults per widget type.
	// Nil means none.
	DefaultProperties *properties.DefaultProperties

	// Metrics receive the pass metrics. Nil means new [Metrics]
	// on their own registry.
	Metrics *Metrics

	// Now is the initial time of the render root. Zero means
	// the current time.
	Now time.Time
}

// SignalTypes are the kinds of [Signal].
type SignalTypes int32

const (
	// ActionSignal carries a value submitted by a widget with
	// [requestCtx.SubmitAction], such as a button press.
	ActionSignal SignalTypes = iota

	// RequestRedraw asks the platform to call [RenderRoot.Redraw].
	RequestRedraw

	// RequestAnimFrame asks the platform to send an [events.AnimFrame].
	RequestAnimFrame

	// ImeMoved reports the new window rectangle of the focused text input.
	ImeMoved

	// StartIme asks the platform to show its input method editor.
	StartIme

	// EndIme asks the platform to hide its input method editor.
	EndIme
)

var signalTypeNames = [...]string{"ActionSignal", "RequestRedraw", "RequestAnimFrame", "ImeMoved", "StartIme", "EndIme"}

func (s SignalTypes) String() string {
	if s < 0 || int(s) >= len(signalTypeNames) {
		return fmt.Sprintf("SignalTypes(%d)", int32(s))
	}
	return signalTypeNames[s]
}

// Signal is a message from the render root to the platform or application.
type Signal struct {
	Type SignalTypes

	// Widget is the widget the signal is about, if any.
	Widget tree.NodeID

	// Action is the value of an [ActionSignal].
	Action any

	// Rect is the window rectangle of an input method signal.
	Rect math32.Box2
}

// maxRewriteIterations bounds the rewrite passes run for one input.
const maxRewriteIterations = 16

// RenderRoot owns a tree of widgets and their states, and runs the passes
// that bring them up to date. Platform input goes in through its Handle
// methods and [RenderRoot.Redraw], and everything going out is queued as
// a [Signal]. It is not safe for concurrent use.
type RenderRoot struct {
	widgets *tree.Arena[Widget]
	states  *tree.Arena[*WidgetState]

	rootID tree.NodeID
	tags   map[string]tree.NodeID

	focused    tree.NodeID
	focusPath  []tree.NodeID
	nextFocus  *tree.NodeID
	focusChain []tree.NodeID

	focusChainDirty bool
	imeActive       bool

	hovered        tree.NodeID
	hoverPath      []tree.NodeID
	pointerPos     *math32.Vector2
	pointerCapture tree.NodeID

	deferred deferredQueue
	timers   timers
	signals  []Signal

	defaults *properties.DefaultProperties
	metrics  *Metrics

	size       math32.Vector2
	sizePolicy SizePolicies
	scale      float32
	now        time.Time

	// inPass is the name of the pass running, if any.
	inPass string

	redrawRequested bool
	animRequested   bool
}

// NewRenderRoot returns a render root for the given root widget, with
// every rewrite pass already run so that it is ready for input.
func NewRenderRoot(root Widget, opts Options) *RenderRoot {
	rr := &RenderRoot{
		widgets:    tree.NewArena[Widget](),
		states:     tree.NewArena[*WidgetState](),
		tags:       map[string]tree.NodeID{},
		defaults:   opts.DefaultProperties,
		metrics:    opts.Metrics,
		size:       opts.Size,
		sizePolicy: opts.SizePolicy,
		scale:      opts.Scale,
		now:        opts.Now,
	}
	if rr.defaults == nil {
		rr.defaults = properties.NewDefaultProperties()
	}
	if rr.metrics == nil {
		rr.metrics = NewMetrics()
	}
	if rr.scale == 0 {
		rr.scale = 1
	}
	if rr.now.IsZero() {
		rr.now = time.Now()
	}
	pod := NewWidgetPod(root)
	rr.rootID = tree.NewNodeID()
	rr.widgets.Insert(0, rr.rootID, root)
	rr.states.Insert(0, rr.rootID, newWidgetState(rr.rootID, root, pod, rr.defaults))
	pod.id = rr.rootID
	pod.pending = nil
	rr.focusChainDirty = true
	rr.runRewritePasses()
	return rr
}

// RootID returns the identifier of the root widget.
func (rr *RenderRoot) RootID() tree.NodeID { return rr.rootID }

// Metrics returns the metrics of the render root.
func (rr *RenderRoot) Metrics() *Metrics { return rr.metrics }

// Size returns the logical size of the window.
func (rr *RenderRoot) Size() math32.Vector2 { return rr.size }

// Now returns the current time of the render root.
func (rr *RenderRoot) Now() time.Time { return rr.now }

// Len returns the number of widgets in the tree.
func (rr *RenderRoot) Len() int { return rr.widgets.Len() }

// Has returns whether the widget is in the tree.
func (rr *RenderRoot) Has(id tree.NodeID) bool { return rr.widgets.Has(id) }

// Widget returns the widget with the given identifier, for inspection.
// Changing it other than through [RenderRoot.EditWidget] breaks the
// invalidation of the passes.
func (rr *RenderRoot) Widget(id tree.NodeID) (Widget, bool) {
	r, ok := rr.widgets.Find(id)
	if !ok {
		return nil, false
	}
	return r.Item(), true
}

// WidgetState returns the state of the widget with the given identifier.
func (rr *RenderRoot) WidgetState(id tree.NodeID) (*WidgetState, bool) {
	r, ok := rr.states.Find(id)
	if !ok {
		return nil, false
	}
	return r.Item(), true
}

// Children returns the identifiers of the children of the widget.
func (rr *RenderRoot) Children(id tree.NodeID) []tree.NodeID {
	r, ok := rr.widgets.Find(id)
	if !ok {
		return nil
	}
	return r.Children()
}

// Parent returns the identifier of the parent of the widget.
func (rr *RenderRoot) Parent(id tree.NodeID) (tree.NodeID, bool) {
	return rr.widgets.Parent(id)
}

// WidgetByTag returns the identifier of the widget with the given tag.
// ok is false if no widget in the tree has the tag, including after the
// tagged widget was removed.
func (rr *RenderRoot) WidgetByTag(tag string) (id tree.NodeID, ok bool) {
	id, ok = rr.tags[tag]
	return
}

// FocusedWidget returns the widget with input focus, or zero.
func (rr *RenderRoot) FocusedWidget() tree.NodeID { return rr.focused }

// HoveredWidget returns the widget under the pointer, or zero.
func (rr *RenderRoot) HoveredWidget() tree.NodeID { return rr.hovered }

// PointerCapture returns the widget holding the pointer capture, or zero.
func (rr *RenderRoot) PointerCapture() tree.NodeID { return rr.pointerCapture }

// FocusChain returns the focusable widgets in tab order.
func (rr *RenderRoot) FocusChain() []tree.NodeID {
	return append([]tree.NodeID(nil), rr.focusChain...)
}

// PopSignal removes and returns the oldest pending signal.
func (rr *RenderRoot) PopSignal() (Signal, bool) {
	if len(rr.signals) == 0 {
		return Signal{}, false
	}
	s := rr.signals[0]
	rr.signals = rr.signals[1:]
	return s, true
}

func (rr *RenderRoot) emit(s Signal) {
	if DebugSettings.UpdateTrace {
		fmt.Println("\tDebugSettings.UpdateTrace: signal:", s.Type, s.Widget)
	}
	rr.signals = append(rr.signals, s)
}

// checkNotInPass panics if a pass is running: widgets must use
// [requestCtx.MutateLater] to change other widgets from a pass.
func (rr *RenderRoot) checkNotInPass(method string) {
	if rr.inPass != "" {
		panic(fmt.Sprintf("core: RenderRoot.%s called during the %s pass; use MutateLater", method, rr.inPass))
	}
}

// enterPass marks the start of a pass, and returns the function marking
// its end.
func (rr *RenderRoot) enterPass(pass string) func() {
	if rr.inPass != "" {
		panic(fmt.Sprintf("core: %s pass started during the %s pass", pass, rr.inPass))
	}
	rr.inPass = pass
	rr.metrics.passRun(pass)
	return func() { rr.inPass = "" }
}

func (rr *RenderRoot) rootState() *WidgetState {
	return rr.states.MustFind(rr.rootID).Item()
}

func (rr *RenderRoot) borrowRoot() node {
	return node{widget: rr.widgets.MustFindMut(rr.rootID), state: rr.states.MustFindMut(rr.rootID)}
}

// borrowPath borrows every widget from the root down to the given one.
func (rr *RenderRoot) borrowPath(id tree.NodeID) []node {
	path := rr.widgets.Path(id)
	nodes := make([]node, len(path))
	nodes[0] = rr.borrowRoot()
	for i := 1; i < len(path); i++ {
		nodes[i] = nodes[i-1].child(path[i])
	}
	return nodes
}

// releasePath releases nodes borrowed with borrowPath, merging the flags
// of each up into its parent.
func (rr *RenderRoot) releasePath(nodes []node) {
	for i := len(nodes) - 1; i >= 0; i-- {
		if i > 0 {
			nodes[i-1].st().MergeUp(nodes[i].st())
		}
		nodes[i].release()
	}
}

// withNode calls fun with the given widget borrowed, and then merges its
// flags up to the root.
func (rr *RenderRoot) withNode(id tree.NodeID, fun func(n node)) {
	nodes := rr.borrowPath(id)
	defer rr.releasePath(nodes)
	fun(nodes[len(nodes)-1])
}

// update delivers a lifecycle update to the widget.
func (rr *RenderRoot) update(n node, u events.Update) {
	if DebugSettings.UpdateTrace {
		fmt.Println("\tDebugSettings.UpdateTrace:", u, "to", n.st())
	}
	ctx := &UpdateCtx{requestCtx{widgetCtx{root: rr, n: n}}}
	n.w().Update(ctx, n.st().propertiesRef(), u)
}

// EditRootWidget calls fun with a handle for the root widget, and then
// runs the rewrite passes.
func (rr *RenderRoot) EditRootWidget(fun func(m WidgetMut[Widget])) {
	rr.EditWidget(rr.rootID, fun)
}

// EditWidget calls fun with a handle for the widget with the given
// identifier, and then runs the rewrite passes. It panics if there is
// no such widget.
func (rr *RenderRoot) EditWidget(id tree.NodeID, fun func(m WidgetMut[Widget])) {
	rr.checkNotInPass("EditWidget")
	if !rr.widgets.Has(id) {
		panic(fmt.Sprintf("core: RenderRoot.EditWidget: no widget %v", id))
	}
	rr.withNode(id, func(n node) {
		rr.mutate(n, fun)
	})
	rr.runRewritePasses()
}

// EditWidgetByTag is like [RenderRoot.EditWidget] for the widget with the
// given tag. It returns false if no widget has the tag.
func (rr *RenderRoot) EditWidgetByTag(tag string, fun func(m WidgetMut[Widget])) bool {
	id, ok := rr.tags[tag]
	if !ok {
		return false
	}
	rr.EditWidget(id, fun)
	return true
}

// EditWidgetAs is like [RenderRoot.EditWidget] with the handle downcast to W.
func EditWidgetAs[W Widget](rr *RenderRoot, id tree.NodeID, fun func(m WidgetMut[W])) {
	rr.EditWidget(id, func(m WidgetMut[Widget]) {
		fun(Downcast[W](m))
	})
}

// HandleWindowEvent handles a change of the window or a frame tick.
func (rr *RenderRoot) HandleWindowEvent(e events.WindowEvent) {
	rr.checkNotInPass("HandleWindowEvent")
	switch e := e.(type) {
	case events.Resize:
		if rr.size != e.Size {
			rr.size = e.Size
			rr.withNode(rr.rootID, func(n node) { n.st().request(RequestLayout) })
		}
	case events.Rescale:
		if rr.scale != e.Scale && e.Scale > 0 {
			rr.scale = e.Scale
			rr.withNode(rr.rootID, func(n node) { n.st().mark(NeedsPaint) })
		}
	case events.AnimFrame:
		rr.now = rr.now.Add(e.Elapsed)
		rr.animRequested = false
		rr.runAnimPass(e.Elapsed)
	}
	rr.runRewritePasses()
}

// Redraw runs the remaining passes and returns the scene of the whole
// window in physical pixels, along with the accessibility nodes rebuilt
// since the last redraw.
func (rr *RenderRoot) Redraw() (*paint.Scene, access.TreeUpdate) {
	rr.checkNotInPass("Redraw")
	rr.runRewritePasses()
	sc := rr.runPaintPass()
	upd := rr.runAccessPass()
	rr.redrawRequested = false
	return sc, upd
}

// runRewritePasses runs the passes that rewrite the tree until no more
// work is pending: deferred mutations, registration, updates, layout,
// compose and hover. Each pass may request work from an earlier one, so
// they are repeated a bounded number of times.
func (rr *RenderRoot) runRewritePasses() {
	for i := range maxRewriteIterations {
		rr.runMutateCallbacks()
		rr.runRegisterPass()
		rr.runUpdateNewPass()
		rr.runUpdateDisabledPass()
		rr.runFocusChainPass()
		rr.runFocusPass()
		rr.runLayoutPass()
		rr.runComposePass()
		rr.runHoverPass()
		if !rr.needsRewritePasses() {
			break
		}
		if i == maxRewriteIterations-1 {
			slog.Warn("core: rewrite passes did not settle", "iterations", maxRewriteIterations, "flags", rr.rootState().flags)
		}
	}
	rr.metrics.Nodes.Set(float64(rr.widgets.Len()))
	root := rr.rootState()
	if root.HasAny(NeedsPaint, NeedsAccess) && !rr.redrawRequested {
		rr.redrawRequested = true
		rr.emit(Signal{Type: RequestRedraw})
	}
	if root.Has(NeedsAnim) && !rr.animRequested {
		rr.animRequested = true
		rr.emit(Signal{Type: RequestAnimFrame})
	}
}

func (rr *RenderRoot) needsRewritePasses() bool {
	if rr.deferred.len() > 0 || rr.nextFocus != nil || rr.focusChainDirty {
		return true
	}
	return rr.rootState().HasAny(NeedsRegister, NeedsUpdateNew, NeedsUpdateDisabled, NeedsLayout, NeedsCompose)
}
