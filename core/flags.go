// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"

	"cogentcore.org/arbor/bitflag"
)

// StateFlags are the pending-work flags of a [WidgetState].
//
// Most flags come in pairs: a Request flag set on a widget that itself
// needs the work done, and a Needs flag set on that widget and on every
// ancestor, meaning that the widget or some descendant needs the work.
// A pass skips every subtree whose root lacks its Needs flag.
type StateFlags int64

const (
	// ChildrenChanged is set when the widget's set of child pods changed,
	// so that the registration pass must call RegisterChildren on it.
	ChildrenChanged StateFlags = iota

	// NeedsRegister is the accumulated form of [ChildrenChanged].
	NeedsRegister

	// IsNew is set on a widget that has not yet received its
	// WidgetAdded update.
	IsNew

	// NeedsUpdateNew is the accumulated form of [IsNew].
	NeedsUpdateNew

	// UpdateDisabled is set when the explicit disabled state of the
	// widget changed.
	UpdateDisabled

	// NeedsUpdateDisabled is the accumulated form of [UpdateDisabled].
	NeedsUpdateDisabled

	// RequestLayout is set when the widget must re-run its Layout.
	RequestLayout

	// NeedsLayout is the accumulated form of [RequestLayout].
	// A widget with NeedsLayout runs its own Layout too, because
	// its size may depend on its children.
	NeedsLayout

	// RequestCompose is set when the widget wants its Compose method called.
	RequestCompose

	// TranslationChanged is set when the widget moved relative to its parent
	// or its transform changed, so that window positions must be recomputed
	// for its whole subtree.
	TranslationChanged

	// NeedsCompose is the accumulated form of [RequestCompose] and
	// [TranslationChanged]. It is also set alone on a widget whose size
	// changed, which only needs its bounding rectangle recomputed.
	NeedsCompose

	// RequestPaint is set when the widget must repaint its own fragment.
	RequestPaint

	// NeedsPaint is the accumulated form of [RequestPaint]. It is also set
	// alone on a widget that moved, so that a redraw is requested without
	// repainting any fragment.
	NeedsPaint

	// RequestAccess is set when the widget must rebuild its own
	// accessibility node.
	RequestAccess

	// NeedsAccess is the accumulated form of [RequestAccess]: the widget or
	// some descendant requested accessibility.
	NeedsAccess

	// RequestAnim is set when the widget wants an animation frame callback.
	RequestAnim

	// NeedsAnim is the accumulated form of [RequestAnim].
	NeedsAnim

	stateFlagsN
)

var stateFlagNames = [...]string{
	"ChildrenChanged", "NeedsRegister", "IsNew", "NeedsUpdateNew",
	"UpdateDisabled", "NeedsUpdateDisabled", "RequestLayout", "NeedsLayout",
	"RequestCompose", "TranslationChanged", "NeedsCompose", "RequestPaint",
	"NeedsPaint", "RequestAccess", "NeedsAccess", "RequestAnim", "NeedsAnim",
}

// String returns the name of the flag.
func (f StateFlags) String() string {
	if f < 0 || f >= stateFlagsN {
		return fmt.Sprintf("StateFlags(%d)", int64(f))
	}
	return stateFlagNames[f]
}

// flagPair ties the self flags of a kind of work to its accumulated flag.
type flagPair struct {
	self        []StateFlags
	accumulated StateFlags
}

// flagPairs lists every kind of pending work.
var flagPairs = []flagPair{
	{[]StateFlags{ChildrenChanged}, NeedsRegister},
	{[]StateFlags{IsNew}, NeedsUpdateNew},
	{[]StateFlags{UpdateDisabled}, NeedsUpdateDisabled},
	{[]StateFlags{RequestLayout}, NeedsLayout},
	{[]StateFlags{RequestCompose, TranslationChanged}, NeedsCompose},
	{[]StateFlags{RequestPaint}, NeedsPaint},
	{[]StateFlags{RequestAccess}, NeedsAccess},
	{[]StateFlags{RequestAnim}, NeedsAnim},
}

// accumulatedOf maps each self flag to its accumulated flag.
var accumulatedOf = func() map[StateFlags]StateFlags {
	m := map[StateFlags]StateFlags{}
	for _, p := range flagPairs {
		for _, s := range p.self {
			m[s] = p.accumulated
		}
	}
	return m
}()

// selfMask and accumulatedMask are the unions of all self and all
// accumulated flags.
var selfMask, accumulatedMask = func() (self, acc bitflag.Flags[StateFlags]) {
	for _, p := range flagPairs {
		self |= bitflag.Mask(p.self...)
		acc |= bitflag.Mask(p.accumulated)
	}
	return
}()

// newWidgetFlags are the flags of a freshly inserted widget:
// every kind of work except animation is pending.
var newWidgetFlags = func() bitflag.Flags[StateFlags] {
	var fs bitflag.Flags[StateFlags]
	for _, p := range flagPairs {
		if p.accumulated == NeedsAnim {
			continue
		}
		fs.SetFlag(true, p.self...)
		fs.SetFlag(true, p.accumulated)
	}
	return fs
}()
