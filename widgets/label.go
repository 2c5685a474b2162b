// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"image/color"

	"cogentcore.org/arbor/access"
	"cogentcore.org/arbor/core"
	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/paint"
	"cogentcore.org/arbor/properties"
)

// Label is a single line of non-interactive text.
type Label struct {
	core.WidgetBase

	// Text is the text of the label.
	Text string

	// Color is the color of the text. If it is zero,
	// the TextColor property is used.
	Color color.RGBA

	metrics paint.TextMetrics
}

// NewLabel returns a new label with the given text.
func NewLabel(text string) *Label {
	return &Label{Text: text}
}

// SetColor sets [Label.Color] before the label is inserted.
func (lb *Label) SetColor(c color.RGBA) *Label {
	lb.Color = c
	return lb
}

// SetLabelText changes the text of the label.
func SetLabelText(m core.WidgetMut[*Label], text string) {
	if m.Widget.Text == text {
		return
	}
	m.Widget.Text = text
	m.Ctx.RequestLayout()
	m.Ctx.RequestRender()
}

// SetLabelColor changes the text color of the label.
func SetLabelColor(m core.WidgetMut[*Label], c color.RGBA) {
	m.Widget.Color = c
	m.Ctx.RequestPaintOnly()
}

func (lb *Label) Layout(ctx *core.LayoutCtx, props properties.Ref, bc core.BoxConstraints) math32.Vector2 {
	in := insets(props)
	lb.metrics = paint.MeasureText(lb.Text)
	size := bc.Constrain(lb.metrics.Size.Add(in.Size()))
	ctx.SetBaselineOffset(size.Y - in.Top - lb.metrics.Baseline)
	return size
}

func (lb *Label) Paint(ctx *core.PaintCtx, props properties.Ref, sc *paint.Scene) {
	in := insets(props)
	pos := in.Pos().Add(math32.Vec2(0, lb.metrics.Baseline))
	sc.DrawText(pos, lb.Text, textColor(props, lb.Color))
}

func (lb *Label) AccessRole() access.Role { return access.RoleLabel }

func (lb *Label) Accessibility(ctx *core.AccessCtx, props properties.Ref, node *access.Node) {
	node.Label = lb.Text
}

// AcceptsPointerInteraction returns false, so that pointer events go
// to the widget containing the label.
func (lb *Label) AcceptsPointerInteraction() bool { return false }

func (lb *Label) Fingerprint() uint64 {
	return hashString(lb.Text) ^ uint64(lb.Color.R)<<24 ^ uint64(lb.Color.G)<<16 ^ uint64(lb.Color.B)<<8 ^ uint64(lb.Color.A)
}
