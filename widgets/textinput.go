// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"image/color"
	"slices"

	"github.com/rivo/uniseg"

	"cogentcore.org/arbor/access"
	"cogentcore.org/arbor/core"
	"cogentcore.org/arbor/events"
	"cogentcore.org/arbor/events/key"
	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/paint"
	"cogentcore.org/arbor/properties"
)

// TextChanged is the action submitted by a [TextInput] after
// each edit by the user.
type TextChanged struct {
	Text string
}

// TextEntered is the action submitted by a [TextInput] when
// Enter is pressed.
type TextEntered struct {
	Text string
}

// Colors used by [TextInput].
var (
	PlaceholderColor = color.RGBA{120, 120, 120, 255}
	CursorColor      = color.RGBA{0, 0, 0, 255}
)

// DefaultTextInputWidth is the width a [TextInput] takes when it is
// not constrained.
var DefaultTextInputWidth float32 = 150

// TextInput is a single-line text editor. The cursor moves and deletes
// by grapheme clusters, so that combining sequences and emoji are
// edited as single characters.
type TextInput struct {
	core.WidgetBase

	// Placeholder is shown in place of the text when it is empty.
	Placeholder string

	text string

	// cursor is the byte offset of the cursor in text,
	// always on a grapheme cluster boundary.
	cursor int

	metrics paint.TextMetrics
}

// NewTextInput returns a new empty text input.
func NewTextInput() *TextInput { return &TextInput{} }

// SetPlaceholder sets [TextInput.Placeholder] before the input is inserted.
func (ti *TextInput) SetPlaceholder(p string) *TextInput {
	ti.Placeholder = p
	return ti
}

// SetText sets the text before the input is inserted,
// with the cursor at its end.
func (ti *TextInput) SetText(text string) *TextInput {
	ti.text, ti.cursor = text, len(text)
	return ti
}

// Text returns the current text.
func (ti *TextInput) Text() string { return ti.text }

// Cursor returns the byte offset of the cursor in the text.
func (ti *TextInput) Cursor() int { return ti.cursor }

// SetTextInputText replaces the text of the input, moving the cursor
// to its end. It does not submit [TextChanged].
func SetTextInputText(m core.WidgetMut[*TextInput], text string) {
	if m.Widget.text == text {
		return
	}
	m.Widget.SetText(text)
	m.Ctx.RequestRender()
}

// SetTextInputPlaceholder changes the placeholder of the input.
func SetTextInputPlaceholder(m core.WidgetMut[*TextInput], p string) {
	m.Widget.Placeholder = p
	m.Ctx.RequestRender()
}

// graphemeBounds returns the byte offsets of the grapheme cluster
// boundaries of s, including 0 and len(s).
func graphemeBounds(s string) []int {
	bounds := []int{0}
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		_, to := gr.Positions()
		bounds = append(bounds, to)
	}
	return bounds
}

// prevBoundary returns the grapheme boundary before i, or 0.
func prevBoundary(s string, i int) int {
	bounds := graphemeBounds(s)
	j, _ := slices.BinarySearch(bounds, i)
	if j == 0 {
		return 0
	}
	return bounds[j-1]
}

// nextBoundary returns the grapheme boundary after i, or len(s).
func nextBoundary(s string, i int) int {
	bounds := graphemeBounds(s)
	j, found := slices.BinarySearch(bounds, i)
	if found {
		j++
	}
	if j >= len(bounds) {
		return len(s)
	}
	return bounds[j]
}

// insert inserts text at the cursor.
func (ti *TextInput) insert(text string) {
	ti.text = ti.text[:ti.cursor] + text + ti.text[ti.cursor:]
	ti.cursor += len(text)
}

// edited requests the passes an edit needs and reports it.
func (ti *TextInput) edited(ctx *core.EventCtx) {
	ctx.RequestRender()
	ctx.SubmitAction(TextChanged{Text: ti.text})
}

func (ti *TextInput) OnTextEvent(ctx *core.EventCtx, props properties.Ref, e *events.TextEvent) {
	switch e.Type {
	case events.ImeCommit, events.Paste:
		if e.Text == "" {
			return
		}
		ti.insert(e.Text)
		ti.edited(ctx)
		ctx.SetHandled()
		return
	case events.KeyDown:
	default:
		return
	}
	moved := true
	switch e.Code {
	case key.CodeRune, key.CodeSpacebar:
		if e.Rune == 0 || e.Mods.HasAny(key.Control, key.Meta) {
			return
		}
		ti.insert(string(e.Rune))
		ti.edited(ctx)
	case key.CodeBackspace:
		if ti.cursor == 0 {
			break
		}
		p := prevBoundary(ti.text, ti.cursor)
		ti.text = ti.text[:p] + ti.text[ti.cursor:]
		ti.cursor = p
		ti.edited(ctx)
	case key.CodeDelete:
		if ti.cursor == len(ti.text) {
			break
		}
		n := nextBoundary(ti.text, ti.cursor)
		ti.text = ti.text[:ti.cursor] + ti.text[n:]
		ti.edited(ctx)
	case key.CodeLeftArrow:
		ti.cursor = prevBoundary(ti.text, ti.cursor)
	case key.CodeRightArrow:
		ti.cursor = nextBoundary(ti.text, ti.cursor)
	case key.CodeHome:
		ti.cursor = 0
	case key.CodeEnd:
		ti.cursor = len(ti.text)
	case key.CodeReturnEnter:
		ctx.SubmitAction(TextEntered{Text: ti.text})
		moved = false
	default:
		return
	}
	if moved {
		ctx.RequestPaintOnly()
	}
	ctx.SetHandled()
}

func (ti *TextInput) OnPointerEvent(ctx *core.EventCtx, props properties.Ref, e *events.PointerEvent) {
	if e.Type != events.PointerDown || e.Button != events.Left {
		return
	}
	if !ctx.IsFocused() {
		ctx.RequestFocus()
	}
	x := e.Pos.X - ctx.WindowOrigin().X - insets(props).Left
	ti.cursor = ti.cursorAt(x)
	ctx.RequestPaintOnly()
	ctx.SetHandled()
}

// cursorAt returns the grapheme boundary closest to the horizontal
// offset x from the start of the text.
func (ti *TextInput) cursorAt(x float32) int {
	best, bestDist := 0, math32.Infinity
	for _, b := range graphemeBounds(ti.text) {
		if d := math32.Abs(paint.RuneOffset(ti.text, b) - x); d < bestDist {
			best, bestDist = b, d
		}
	}
	return best
}

func (ti *TextInput) OnAccessEvent(ctx *core.EventCtx, props properties.Ref, e *events.AccessEvent) {
	if !ctx.IsTarget() || e.Action != access.ActionSetValue {
		return
	}
	ti.text, ti.cursor = e.Data, len(e.Data)
	ti.edited(ctx)
	ctx.SetHandled()
}

func (ti *TextInput) Update(ctx *core.UpdateCtx, props properties.Ref, u events.Update) {
	if u.Type == events.FocusChanged {
		ctx.RequestPaintOnly()
	}
}

func (ti *TextInput) Layout(ctx *core.LayoutCtx, props properties.Ref, bc core.BoxConstraints) math32.Vector2 {
	in := insets(props)
	ti.metrics = paint.MeasureText("M")
	size := bc.Constrain(math32.Vec2(DefaultTextInputWidth, ti.metrics.Size.Y+in.Size().Y))
	ctx.SetBaselineOffset(size.Y - in.Top - ti.metrics.Baseline)
	return size
}

func (ti *TextInput) Paint(ctx *core.PaintCtx, props properties.Ref, sc *paint.Scene) {
	in := insets(props)
	pos := in.Pos().Add(math32.Vec2(0, ti.metrics.Baseline))
	if ti.text == "" {
		sc.DrawText(pos, ti.Placeholder, PlaceholderColor)
	} else {
		sc.DrawText(pos, ti.text, textColor(props, color.RGBA{}))
	}
	if ctx.IsFocused() {
		x := in.Left + paint.RuneOffset(ti.text, ti.cursor)
		sc.FillRect(math32.B2(x, in.Top, x+1, in.Top+ti.metrics.Size.Y), CursorColor)
	}
}

func (ti *TextInput) AccessRole() access.Role { return access.RoleTextInput }

func (ti *TextInput) Accessibility(ctx *core.AccessCtx, props properties.Ref, node *access.Node) {
	node.Label = ti.Placeholder
	node.Value = ti.text
	if !ctx.IsDisabled() {
		node.AddAction(access.ActionSetValue)
	}
}

func (ti *TextInput) AcceptsFocus() bool { return true }

func (ti *TextInput) AcceptsTextInput() bool { return true }

func (ti *TextInput) Fingerprint() uint64 {
	return hashString(ti.text) ^ hashString(ti.Placeholder) ^ uint64(ti.cursor)
}
