// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"image/color"

	"cogentcore.org/arbor/access"
	"cogentcore.org/arbor/core"
	"cogentcore.org/arbor/events"
	"cogentcore.org/arbor/events/key"
	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/paint"
	"cogentcore.org/arbor/properties"
	"cogentcore.org/arbor/tree"
)

// ButtonPressed is the action submitted by a [Button] when it is pressed.
type ButtonPressed struct {

	// Button is the pointer button used, or [events.NoButton]
	// for keyboard and accessibility presses.
	Button events.Buttons
}

// State colors painted over a [Button] background.
var (
	ButtonHoveredColor = color.RGBA{0, 0, 0, 20}
	ButtonPressedColor = color.RGBA{0, 0, 0, 60}
	ButtonFocusColor   = color.RGBA{0, 90, 200, 255}
)

// Button is a pressable widget showing a [Label]. It submits
// a [ButtonPressed] action when clicked, when Enter or Space is pressed
// while it has focus, and on the click accessibility action.
type Button struct {
	core.WidgetBase

	label   *core.WidgetPod
	pressed bool
}

// NewButton returns a new button with the given text.
func NewButton(text string) *Button {
	return NewButtonWithLabel(NewLabel(text))
}

// NewButtonWithLabel returns a new button showing the given label.
func NewButtonWithLabel(lb *Label) *Button {
	return &Button{label: core.NewWidgetPod(lb)}
}

// IsPressed returns whether a pointer button is held down on the button.
func (bt *Button) IsPressed() bool { return bt.pressed }

// SetButtonText changes the text of the label of the button.
func SetButtonText(m core.WidgetMut[*Button], text string) {
	ButtonLabel(m, func(lm core.WidgetMut[*Label]) {
		SetLabelText(lm, text)
	})
}

// ButtonLabel calls fun with a handle for the label of the button.
func ButtonLabel(m core.WidgetMut[*Button], fun func(lm core.WidgetMut[*Label])) {
	core.EditChildAs(m.Ctx, m.Widget.label, fun)
}

func (bt *Button) press(ctx *core.EventCtx, but events.Buttons) {
	ctx.SubmitAction(ButtonPressed{Button: but})
	ctx.SetHandled()
}

func (bt *Button) OnPointerEvent(ctx *core.EventCtx, props properties.Ref, e *events.PointerEvent) {
	switch e.Type {
	case events.PointerDown:
		ctx.CapturePointer()
		bt.pressed = true
		ctx.RequestPaintOnly()
		ctx.SetHandled()
	case events.PointerUp:
		if bt.pressed && ctx.IsHovered() {
			bt.press(ctx, e.Button)
		}
		bt.pressed = false
		ctx.RequestPaintOnly()
		ctx.SetHandled()
	}
}

func (bt *Button) OnTextEvent(ctx *core.EventCtx, props properties.Ref, e *events.TextEvent) {
	if e.Type != events.KeyDown {
		return
	}
	switch e.Code {
	case key.CodeReturnEnter, key.CodeSpacebar:
		bt.press(ctx, events.NoButton)
	}
}

func (bt *Button) OnAccessEvent(ctx *core.EventCtx, props properties.Ref, e *events.AccessEvent) {
	if ctx.IsTarget() && e.Action == access.ActionClick {
		bt.press(ctx, events.NoButton)
	}
}

func (bt *Button) Update(ctx *core.UpdateCtx, props properties.Ref, u events.Update) {
	switch u.Type {
	case events.HoveredChanged, events.FocusChanged, events.DisabledChanged:
		if u.Type == events.DisabledChanged && u.Value {
			bt.pressed = false
		}
		ctx.RequestPaintOnly()
	}
}

func (bt *Button) RegisterChildren(ctx *core.RegisterCtx) {
	ctx.RegisterChild(bt.label)
}

func (bt *Button) Children() []tree.NodeID { return core.PodIDs(bt.label) }

func (bt *Button) Layout(ctx *core.LayoutCtx, props properties.Ref, bc core.BoxConstraints) math32.Vector2 {
	in := insets(props)
	ls := ctx.RunLayout(bt.label, bc.Shrink(in.Size()).Loosen())
	size := bc.Constrain(ls.Add(in.Size()))
	// center the label in any extra space
	inner := size.Sub(in.Size())
	pos := in.Pos().Add(inner.Sub(ls).MulScalar(0.5).Max(math32.Vector2{}))
	ctx.PlaceChild(bt.label, pos)
	ctx.SetBaselineOffset(size.Y - pos.Y - ls.Y + ctx.ChildBaselineOffset(bt.label))
	return size
}

func (bt *Button) Paint(ctx *core.PaintCtx, props properties.Ref, sc *paint.Scene) {
	r := math32.B2FromSize(ctx.Size())
	switch {
	case ctx.IsDisabled():
	case bt.pressed:
		sc.FillRect(r, ButtonPressedColor)
	case ctx.IsHovered():
		sc.FillRect(r, ButtonHoveredColor)
	}
	if ctx.IsFocused() {
		sc.StrokeRect(r, 1, 1, 1, 1, ButtonFocusColor)
	}
}

func (bt *Button) AccessRole() access.Role { return access.RoleButton }

func (bt *Button) Accessibility(ctx *core.AccessCtx, props properties.Ref, node *access.Node) {
	if !ctx.IsDisabled() {
		node.AddAction(access.ActionClick)
	}
}

func (bt *Button) AcceptsFocus() bool { return true }
