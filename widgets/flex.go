// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"fmt"
	"slices"

	"cogentcore.org/arbor/access"
	"cogentcore.org/arbor/core"
	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/properties"
	"cogentcore.org/arbor/tree"
)

// Axis is the main axis of a [Flex].
type Axis int32

const (
	// Horizontal lays out children in a row.
	Horizontal Axis = iota

	// Vertical lays out children in a column.
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "Vertical"
	}
	return "Horizontal"
}

// main returns the index of the axis in a [math32.Vector2].
func (a Axis) main() int { return int(a) }

// cross returns the index of the other axis in a [math32.Vector2].
func (a Axis) cross() int { return 1 - int(a) }

// pack returns a vector with the given main and cross values.
func (a Axis) pack(main, cross float32) math32.Vector2 {
	var v math32.Vector2
	v.SetDim(a.main(), main)
	v.SetDim(a.cross(), cross)
	return v
}

// MainAlignments is how a [Flex] distributes extra space
// along its main axis.
type MainAlignments int32

const (
	MainStart MainAlignments = iota
	MainCenter
	MainEnd
	SpaceBetween
	SpaceAround
	SpaceEvenly
)

// CrossAlignments is how a [Flex] positions children
// along its cross axis.
type CrossAlignments int32

const (
	CrossStart CrossAlignments = iota
	CrossCenter
	CrossEnd

	// CrossFill stretches children to the cross size of the flex.
	CrossFill

	// CrossBaseline aligns the text baselines of the children of a
	// horizontal flex. It acts as CrossStart in a vertical flex.
	CrossBaseline
)

// flexItem is a child widget or a spacer.
type flexItem struct {

	// pod is the child, or nil for a spacer.
	pod *core.WidgetPod

	// flex is the share of the remaining main-axis space the item
	// takes; zero means it takes its own size.
	flex float32

	// spacer is the fixed length of a non-flex spacer.
	spacer float32
}

// Flex lays out its children along one axis, like CSS flexbox without
// wrapping. Flex children and flex spacers share the main-axis space
// left over by the other children in proportion to their flex factors.
type Flex struct {
	core.WidgetBase

	// Direction is the main axis.
	Direction Axis

	// MainAlign distributes the extra space along the main axis
	// when there are no flex items.
	MainAlign MainAlignments

	// CrossAlign positions the children along the cross axis.
	CrossAlign CrossAlignments

	// Gap is the space between consecutive items.
	Gap float32

	// FillMajor makes the flex take all the main-axis space it is
	// allowed instead of the size of its content.
	FillMajor bool

	items []flexItem
}

// NewRow returns a new horizontal flex.
func NewRow() *Flex { return &Flex{Direction: Horizontal} }

// NewColumn returns a new vertical flex.
func NewColumn() *Flex { return &Flex{Direction: Vertical} }

// WithChild adds a child widget before the flex is inserted.
func (fl *Flex) WithChild(w core.Widget) *Flex {
	return fl.WithChildPod(core.NewWidgetPod(w))
}

// WithChildPod adds a child pod before the flex is inserted.
func (fl *Flex) WithChildPod(pod *core.WidgetPod) *Flex {
	fl.items = append(fl.items, flexItem{pod: pod})
	return fl
}

// WithFlexChild adds a child widget with the given flex factor.
func (fl *Flex) WithFlexChild(w core.Widget, flex float32) *Flex {
	fl.items = append(fl.items, flexItem{pod: core.NewWidgetPod(w), flex: flex})
	return fl
}

// WithSpacer adds a fixed-length spacer.
func (fl *Flex) WithSpacer(length float32) *Flex {
	fl.items = append(fl.items, flexItem{spacer: length})
	return fl
}

// WithFlexSpacer adds a spacer with the given flex factor.
func (fl *Flex) WithFlexSpacer(flex float32) *Flex {
	fl.items = append(fl.items, flexItem{flex: flex})
	return fl
}

// SetGap sets [Flex.Gap] before the flex is inserted.
func (fl *Flex) SetGap(gap float32) *Flex {
	fl.Gap = gap
	return fl
}

// SetCrossAlign sets [Flex.CrossAlign] before the flex is inserted.
func (fl *Flex) SetCrossAlign(a CrossAlignments) *Flex {
	fl.CrossAlign = a
	return fl
}

// SetMainAlign sets [Flex.MainAlign] before the flex is inserted.
func (fl *Flex) SetMainAlign(a MainAlignments) *Flex {
	fl.MainAlign = a
	return fl
}

// Len returns the number of items, including spacers.
func (fl *Flex) Len() int { return len(fl.items) }

// Pod returns the pod of the item at index i, or nil for a spacer.
func (fl *Flex) Pod(i int) *core.WidgetPod { return fl.items[i].pod }

// mutation functions

// AddFlexChild adds a child widget with the given flex factor,
// which is zero for a child that takes its own size.
func AddFlexChild(m core.WidgetMut[*Flex], w core.Widget, flex float32) {
	InsertFlexChild(m, len(m.Widget.items), w, flex)
}

// InsertFlexChild inserts a child widget at index i.
func InsertFlexChild(m core.WidgetMut[*Flex], i int, w core.Widget, flex float32) {
	m.Widget.items = slices.Insert(m.Widget.items, i, flexItem{pod: core.NewWidgetPod(w), flex: flex})
	m.Ctx.ChildrenChanged()
}

// AddFlexSpacer adds a spacer, with a fixed length if flex is zero.
func AddFlexSpacer(m core.WidgetMut[*Flex], length, flex float32) {
	m.Widget.items = append(m.Widget.items, flexItem{spacer: length, flex: flex})
	m.Ctx.RequestLayout()
}

// RemoveFlexChild removes the item at index i.
func RemoveFlexChild(m core.WidgetMut[*Flex], i int) {
	it := m.Widget.items[i]
	m.Widget.items = slices.Delete(m.Widget.items, i, i+1)
	if it.pod != nil {
		m.Ctx.ChildrenChanged()
	} else {
		m.Ctx.RequestLayout()
	}
}

// ClearFlex removes all items.
func ClearFlex(m core.WidgetMut[*Flex]) {
	if len(m.Widget.items) == 0 {
		return
	}
	m.Widget.items = nil
	m.Ctx.ChildrenChanged()
}

// FlexChild calls fun with a handle for the child at index i.
// It panics if the item is a spacer.
func FlexChild(m core.WidgetMut[*Flex], i int, fun func(cm core.WidgetMut[core.Widget])) {
	pod := m.Widget.items[i].pod
	if pod == nil {
		panic(fmt.Sprintf("widgets: flex item %d is a spacer", i))
	}
	m.Ctx.EditChild(pod, fun)
}

// SetFlexDirection changes the main axis.
func SetFlexDirection(m core.WidgetMut[*Flex], a Axis) {
	m.Widget.Direction = a
	m.Ctx.RequestLayout()
}

// SetFlexGap changes the gap between items.
func SetFlexGap(m core.WidgetMut[*Flex], gap float32) {
	m.Widget.Gap = gap
	m.Ctx.RequestLayout()
}

// SetFlexMainAlign changes the main-axis alignment.
func SetFlexMainAlign(m core.WidgetMut[*Flex], a MainAlignments) {
	m.Widget.MainAlign = a
	m.Ctx.RequestLayout()
}

// SetFlexCrossAlign changes the cross-axis alignment.
func SetFlexCrossAlign(m core.WidgetMut[*Flex], a CrossAlignments) {
	m.Widget.CrossAlign = a
	m.Ctx.RequestLayout()
}

// SetFlexFactor changes the flex factor of the item at index i.
func SetFlexFactor(m core.WidgetMut[*Flex], i int, flex float32) {
	m.Widget.items[i].flex = flex
	m.Ctx.RequestLayout()
}

func (fl *Flex) RegisterChildren(ctx *core.RegisterCtx) {
	for _, it := range fl.items {
		if it.pod != nil {
			ctx.RegisterChild(it.pod)
		}
	}
}

func (fl *Flex) Children() []tree.NodeID {
	ids := make([]tree.NodeID, 0, len(fl.items))
	for _, it := range fl.items {
		if it.pod != nil && it.pod.IsInserted() {
			ids = append(ids, it.pod.ID())
		}
	}
	return ids
}

func (fl *Flex) Layout(ctx *core.LayoutCtx, props properties.Ref, bc core.BoxConstraints) math32.Vector2 {
	d := fl.Direction
	mi, ci := d.main(), d.cross()
	in := insets(props)
	ibc := bc.Shrink(in.Size())
	maxMain := ibc.Max.Dim(mi)
	maxCross := ibc.Max.Dim(ci)
	fill := fl.CrossAlign == CrossFill && math32.IsFinite(maxCross)

	childBC := func(main float32, tight bool) core.BoxConstraints {
		var cbc core.BoxConstraints
		if tight {
			cbc.Min.SetDim(mi, main)
		}
		cbc.Max.SetDim(mi, main)
		if fill {
			cbc.Min.SetDim(ci, maxCross)
		}
		cbc.Max.SetDim(ci, maxCross)
		return cbc
	}

	sizes := make([]math32.Vector2, len(fl.items))
	var used, totalFlex float32
	gaps := fl.Gap * float32(max(len(fl.items)-1, 0))

	// non-flex items first
	for i, it := range fl.items {
		switch {
		case it.flex > 0:
			totalFlex += it.flex
		case it.pod == nil:
			sizes[i] = d.pack(it.spacer, 0)
			used += it.spacer
		default:
			sizes[i] = ctx.RunLayout(it.pod, childBC(math32.Infinity, false))
			used += sizes[i].Dim(mi)
		}
	}

	// flex items share what is left
	remaining := float32(0)
	if math32.IsFinite(maxMain) {
		remaining = max(maxMain-used-gaps, 0)
	}
	if totalFlex > 0 {
		unit := remaining / totalFlex
		for i, it := range fl.items {
			if it.flex <= 0 {
				continue
			}
			share := unit * it.flex
			if it.pod == nil {
				sizes[i] = d.pack(share, 0)
			} else {
				sizes[i] = ctx.RunLayout(it.pod, childBC(share, true))
			}
			used += sizes[i].Dim(mi)
		}
	}

	// cross size and baseline
	var cross, maxAbove, maxBelow float32
	baseline := fl.CrossAlign == CrossBaseline && d == Horizontal
	for i, it := range fl.items {
		if it.pod == nil {
			continue
		}
		cross = max(cross, sizes[i].Dim(ci))
		if baseline {
			below := ctx.ChildBaselineOffset(it.pod)
			maxBelow = max(maxBelow, below)
			maxAbove = max(maxAbove, sizes[i].Y-below)
		}
	}
	if baseline {
		cross = max(cross, maxAbove+maxBelow)
	}
	if fill {
		cross = maxCross
	}

	content := used + gaps
	mainSize := content
	if fl.FillMajor && math32.IsFinite(maxMain) {
		mainSize = maxMain
	}
	size := bc.Constrain(d.pack(mainSize, cross).Add(in.Size()))
	inner := size.Sub(in.Size())
	mainSize, cross = inner.Dim(mi), inner.Dim(ci)

	// distribute any extra main-axis space
	extra := max(mainSize-content, 0)
	start, between := float32(0), fl.Gap
	n := float32(len(fl.items))
	if totalFlex == 0 && n > 0 {
		switch fl.MainAlign {
		case MainCenter:
			start = extra / 2
		case MainEnd:
			start = extra
		case SpaceBetween:
			if n > 1 {
				between += extra / (n - 1)
			} else {
				start = extra / 2
			}
		case SpaceAround:
			between += extra / n
			start = extra / n / 2
		case SpaceEvenly:
			between += extra / (n + 1)
			start = extra / (n + 1)
		}
	}

	pos := start
	for i, it := range fl.items {
		if it.pod != nil {
			cs := sizes[i].Dim(ci)
			var off float32
			switch fl.CrossAlign {
			case CrossCenter:
				off = (cross - cs) / 2
			case CrossEnd:
				off = cross - cs
			case CrossBaseline:
				if baseline {
					off = maxAbove - (sizes[i].Y - ctx.ChildBaselineOffset(it.pod))
				}
			}
			ctx.PlaceChild(it.pod, in.Pos().Add(d.pack(pos, off)))
		}
		pos += sizes[i].Dim(mi) + between
	}
	if baseline {
		ctx.SetBaselineOffset(size.Y - in.Top - maxAbove)
	}
	return size
}

func (fl *Flex) AccessRole() access.Role { return access.RoleGenericContainer }

func (fl *Flex) AcceptsPointerInteraction() bool { return false }
