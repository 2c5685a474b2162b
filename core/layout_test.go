// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"cogentcore.org/arbor/events"
	"cogentcore.org/arbor/math32"
)

func TestBoxConstraints(t *testing.T) {
	bc := BoxConstraints{Min: math32.Vec2(10, 10), Max: math32.Vec2(50, 40)}
	assert.Equal(t, math32.Vec2(10, 40), bc.Constrain(math32.Vec2(5, 60)))
	assert.False(t, bc.IsTight())
	assert.True(t, Tight(math32.Vec2(3, 4)).IsTight())
	assert.Equal(t, Loose(math32.Vec2(50, 40)), bc.Loosen())
	assert.Equal(t, BoxConstraints{Min: math32.Vec2(0, 0), Max: math32.Vec2(40, 30)}, bc.Shrink(math32.Vec2(10, 10)))
	assert.True(t, math32.IsInf(Unbounded().Max.X, 1))
}

func TestLayoutCache(t *testing.T) {
	var lc layoutCache
	for i := range layoutCacheSize + 1 {
		lc.put(Tight(math32.Vec2(float32(i), 0)), math32.Vec2(float32(i), 1))
	}
	_, ok := lc.get(Tight(math32.Vec2(0, 0)))
	assert.False(t, ok, "least recently used entry is evicted")
	size, ok := lc.get(Tight(math32.Vec2(1, 0)))
	assert.True(t, ok)
	assert.Equal(t, math32.Vec2(1, 1), size)

	// 1 is now the most recent, so 2 is evicted next
	lc.put(Tight(math32.Vec2(9, 0)), math32.Vec2(9, 1))
	_, ok = lc.get(Tight(math32.Vec2(2, 0)))
	assert.False(t, ok)
	_, ok = lc.get(Tight(math32.Vec2(1, 0)))
	assert.True(t, ok)

	lc.put(Tight(math32.Vec2(9, 0)), math32.Vec2(9, 2))
	size, _ = lc.get(Tight(math32.Vec2(9, 0)))
	assert.Equal(t, math32.Vec2(9, 2), size)
	assert.Len(t, lc.entries, layoutCacheSize)

	lc.clear()
	assert.Empty(t, lc.entries)
}

func TestMeasureChildCache(t *testing.T) {
	child := &box{name: "c", size: math32.Vec2(10, 10)}
	pod := NewWidgetPod(child)
	root := newBox("root", nil, pod)
	var measured math32.Vector2
	root.onLayout = func(ctx *LayoutCtx, bc BoxConstraints) math32.Vector2 {
		ctx.MeasureChild(pod, Loose(math32.Vec2(50, 50)))
		measured = ctx.MeasureChild(pod, Loose(math32.Vec2(50, 50)))
		ctx.RunLayout(pod, Loose(math32.Vec2(50, 50)))
		ctx.PlaceChild(pod, math32.Vec2(5, 5))
		return bc.Max
	}
	rr := newTestRoot(root)
	m := rr.Metrics()
	assert.Equal(t, math32.Vec2(10, 10), measured)
	assert.Equal(t, 1, child.layoutCalls)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LayoutCacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LayoutCacheMisses))

	rr.HandleWindowEvent(events.Resize{Size: math32.Vec2(80, 80)})
	assert.Equal(t, 2, root.layoutCalls)
	assert.Equal(t, 1, child.layoutCalls)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.LayoutCacheHits))

	rr.EditWidget(pod.ID(), func(m WidgetMut[Widget]) {
		setSize(Downcast[*box](m), math32.Vec2(20, 20))
	})
	assert.Equal(t, 2, child.layoutCalls)
	assert.Equal(t, math32.Vec2(20, 20), measured)
	assert.Equal(t, 4.0, testutil.ToFloat64(m.LayoutCacheHits))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.LayoutCacheMisses))
	assert.Equal(t, math32.Vec2(5, 5), stateOf(rr, pod).Origin())
}

func TestLayoutWithoutPlacePanics(t *testing.T) {
	pod := NewWidgetPod(newBox("c", nil))
	root := newBox("root", nil, pod)
	root.onLayout = func(ctx *LayoutCtx, bc BoxConstraints) math32.Vector2 {
		ctx.RunLayout(pod, bc)
		return bc.Max
	}
	assert.Panics(t, func() { newTestRoot(root) })
}

func TestPlaceWithoutLayoutPanics(t *testing.T) {
	pod := NewWidgetPod(newBox("c", nil))
	root := newBox("root", nil, pod)
	root.onLayout = func(ctx *LayoutCtx, bc BoxConstraints) math32.Vector2 {
		ctx.PlaceChild(pod, math32.Vector2{})
		return bc.Max
	}
	assert.Panics(t, func() { newTestRoot(root) })
}

func TestSkippedChildLayout(t *testing.T) {
	if !debugBuild {
		t.Skip("only reported in debug builds")
	}
	pod := NewWidgetPod(newBox("c", nil))
	root := newBox("root", nil, pod)
	root.onLayout = func(ctx *LayoutCtx, bc BoxConstraints) math32.Vector2 {
		return bc.Max
	}
	assert.Panics(t, func() { newTestRoot(root) })
}

func TestInvalidSize(t *testing.T) {
	if !debugBuild {
		t.Skip("only reported in debug builds")
	}
	root := newBox("root", nil)
	root.onLayout = func(ctx *LayoutCtx, bc BoxConstraints) math32.Vector2 {
		return math32.Vec2(-1, math32.NaN())
	}
	assert.Panics(t, func() { newTestRoot(root) })
}

func TestSanitizeSize(t *testing.T) {
	st := &WidgetState{}
	size := math32.Vec2(12, 3)
	assert.Equal(t, size, sanitizeSize(st, size))
}

func TestTransformAndClip(t *testing.T) {
	inner := &box{name: "inner", size: math32.Vec2(40, 40)}
	innerPod := NewWidgetPod(inner)
	outer := newBox("outer", nil, innerPod)
	outer.onLayout = func(ctx *LayoutCtx, bc BoxConstraints) math32.Vector2 {
		ctx.RunLayout(innerPod, bc)
		ctx.PlaceChild(innerPod, math32.Vec2(10, 0))
		ctx.SetClipPath(math32.B2(0, 0, 20, 20))
		return math32.Vec2(20, 20)
	}
	outerPod := NewWidgetPod(outer).WithTransform(math32.Translate2D(30, 30))
	rr := newTestRoot(newBox("root", nil, outerPod))

	so := stateOf(rr, outerPod)
	assert.Equal(t, math32.Vec2(30, 30), so.WindowOrigin())
	si := stateOf(rr, innerPod)
	assert.Equal(t, math32.B2(40, 30, 80, 70), si.WindowRect())
	assert.Equal(t, math32.B2(30, 30, 50, 50), so.BoundingRect(), "clipped to the outer box")

	// the clip limits hit testing
	rr.HandlePointerEvent(events.NewPointer(events.PointerMove, events.NoButton, math32.Vec2(45, 35)))
	assert.Equal(t, innerPod.ID(), rr.HoveredWidget())
	rr.HandlePointerEvent(events.NewPointer(events.PointerMove, events.NoButton, math32.Vec2(60, 35)))
	assert.Equal(t, rr.RootID(), rr.HoveredWidget())

	// a transform change needs no layout
	layouts := outer.layoutCalls
	rr.EditWidget(outerPod.ID(), func(m WidgetMut[Widget]) {
		m.Ctx.SetTransform(math32.Translate2D(0, 0))
	})
	assert.Equal(t, layouts, outer.layoutCalls)
	assert.Equal(t, math32.B2(10, 0, 50, 40), si.WindowRect())
}
