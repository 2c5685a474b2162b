// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coretest

import (
	"fmt"
	"reflect"
	"time"

	"cogentcore.org/arbor/access"
	"cogentcore.org/arbor/core"
	"cogentcore.org/arbor/events"
	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/paint"
	"cogentcore.org/arbor/properties"
	"cogentcore.org/arbor/tree"
)

// RecordTypes is the kind of a [Record].
type RecordTypes int32

const (
	RecordRegisterChildren RecordTypes = iota
	RecordPointerEvent
	RecordTextEvent
	RecordAccessEvent
	RecordAnimFrame
	RecordUpdate
	RecordPropertyChanged
	RecordLayout
	RecordCompose
	RecordPaint
	RecordAccessibility
)

var recordTypeNames = [...]string{"RegisterChildren", "PointerEvent", "TextEvent", "AccessEvent", "AnimFrame", "Update", "PropertyChanged", "Layout", "Compose", "Paint", "Accessibility"}

func (t RecordTypes) String() string {
	if t < 0 || int(t) >= len(recordTypeNames) {
		return fmt.Sprintf("RecordTypes(%d)", int32(t))
	}
	return recordTypeNames[t]
}

// Record is one call made by the render root on a [Recorder].
type Record struct {
	Type RecordTypes

	// Detail is a description of the argument of the call,
	// such as the event or the constraints.
	Detail string
}

func (r Record) String() string {
	if r.Detail == "" {
		return r.Type.String()
	}
	return r.Type.String() + "(" + r.Detail + ")"
}

// Recording is the list of calls recorded by one or more [Recorder]s.
type Recording struct {
	records []Record
}

func (rc *Recording) add(typ RecordTypes, detail string) {
	rc.records = append(rc.records, Record{Type: typ, Detail: detail})
}

// Len returns the number of pending records.
func (rc *Recording) Len() int { return len(rc.records) }

// Next removes and returns the oldest record.
func (rc *Recording) Next() (Record, bool) {
	if len(rc.records) == 0 {
		return Record{}, false
	}
	r := rc.records[0]
	rc.records = rc.records[1:]
	return r, true
}

// Drain removes and returns all records.
func (rc *Recording) Drain() []Record {
	rs := rc.records
	rc.records = nil
	return rs
}

// DrainTypes removes all records and returns their types.
func (rc *Recording) DrainTypes() []RecordTypes {
	rs := rc.Drain()
	ts := make([]RecordTypes, len(rs))
	for i, r := range rs {
		ts[i] = r.Type
	}
	return ts
}

// Clear removes all records.
func (rc *Recording) Clear() { rc.records = nil }

// Recorder wraps a widget and records every call the render root makes
// on it into its [Recording] before forwarding the call.
type Recorder[W core.Widget] struct {
	Inner     W
	Recording *Recording
}

// NewRecorder wraps the given widget in a new [Recorder] with a new
// recording.
func NewRecorder[W core.Widget](w W) *Recorder[W] {
	return &Recorder[W]{Inner: w, Recording: &Recording{}}
}

// Inner returns a handle for the wrapped widget of a recorder handle.
func Inner[W core.Widget](m core.WidgetMut[*Recorder[W]]) core.WidgetMut[W] {
	return core.WidgetMut[W]{Ctx: m.Ctx, Widget: m.Widget.Inner}
}

func (r *Recorder[W]) RegisterChildren(ctx *core.RegisterCtx) {
	r.Recording.add(RecordRegisterChildren, "")
	r.Inner.RegisterChildren(ctx)
}

func (r *Recorder[W]) OnPointerEvent(ctx *core.EventCtx, props properties.Ref, e *events.PointerEvent) {
	r.Recording.add(RecordPointerEvent, e.Type.String())
	r.Inner.OnPointerEvent(ctx, props, e)
}

func (r *Recorder[W]) OnTextEvent(ctx *core.EventCtx, props properties.Ref, e *events.TextEvent) {
	r.Recording.add(RecordTextEvent, e.Type.String())
	r.Inner.OnTextEvent(ctx, props, e)
}

func (r *Recorder[W]) OnAccessEvent(ctx *core.EventCtx, props properties.Ref, e *events.AccessEvent) {
	r.Recording.add(RecordAccessEvent, e.Action.String())
	r.Inner.OnAccessEvent(ctx, props, e)
}

func (r *Recorder[W]) OnAnimFrame(ctx *core.UpdateCtx, props properties.Ref, interval time.Duration) {
	r.Recording.add(RecordAnimFrame, interval.String())
	r.Inner.OnAnimFrame(ctx, props, interval)
}

func (r *Recorder[W]) Update(ctx *core.UpdateCtx, props properties.Ref, u events.Update) {
	r.Recording.add(RecordUpdate, u.String())
	r.Inner.Update(ctx, props, u)
}

func (r *Recorder[W]) PropertyChanged(ctx *core.UpdateCtx, property reflect.Type) {
	r.Recording.add(RecordPropertyChanged, property.String())
	r.Inner.PropertyChanged(ctx, property)
}

func (r *Recorder[W]) Layout(ctx *core.LayoutCtx, props properties.Ref, bc core.BoxConstraints) math32.Vector2 {
	r.Recording.add(RecordLayout, bc.String())
	return r.Inner.Layout(ctx, props, bc)
}

func (r *Recorder[W]) Compose(ctx *core.ComposeCtx) {
	r.Recording.add(RecordCompose, "")
	r.Inner.Compose(ctx)
}

func (r *Recorder[W]) Paint(ctx *core.PaintCtx, props properties.Ref, sc *paint.Scene) {
	r.Recording.add(RecordPaint, "")
	r.Inner.Paint(ctx, props, sc)
}

func (r *Recorder[W]) AccessRole() access.Role { return r.Inner.AccessRole() }

func (r *Recorder[W]) Accessibility(ctx *core.AccessCtx, props properties.Ref, node *access.Node) {
	r.Recording.add(RecordAccessibility, "")
	r.Inner.Accessibility(ctx, props, node)
}

func (r *Recorder[W]) Children() []tree.NodeID { return r.Inner.Children() }

func (r *Recorder[W]) AcceptsPointerInteraction() bool { return r.Inner.AcceptsPointerInteraction() }

func (r *Recorder[W]) AcceptsFocus() bool { return r.Inner.AcceptsFocus() }

func (r *Recorder[W]) AcceptsTextInput() bool { return r.Inner.AcceptsTextInput() }
