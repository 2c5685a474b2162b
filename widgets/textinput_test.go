// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/arbor/access"
	"cogentcore.org/arbor/core"
	"cogentcore.org/arbor/coretest"
	"cogentcore.org/arbor/events/key"
	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/tree"
)

// newInputHarness returns a harness with a focused text input.
func newInputHarness(t *testing.T) (*coretest.Harness, *TextInput, tree.NodeID) {
	ti := NewTextInput()
	h := coretest.New(NewColumn().WithChildPod(tag("input", ti)))
	id := h.WidgetByTag("input")
	h.MouseClickOn(id)
	require.Equal(t, id, h.FocusedWidget())
	return h, ti, id
}

func TestTextInputLayout(t *testing.T) {
	h := coretest.New(NewColumn().WithChildPod(tag("input", NewTextInput())))
	st := h.WidgetState(h.WidgetByTag("input"))
	assert.Equal(t, math32.Vec2(DefaultTextInputWidth, 13), st.Size())
	assert.Equal(t, float32(2), st.BaselineOffset())
}

func TestTextInputTyping(t *testing.T) {
	h, ti, _ := newInputHarness(t)
	h.KeyboardType("hi")
	assert.Equal(t, "hi", ti.Text())
	assert.Equal(t, 2, ti.Cursor())
	assert.Equal(t, []any{TextChanged{"h"}, TextChanged{"hi"}}, actions(h))

	assert.True(t, h.KeyPress(key.CodeReturnEnter, '\r'))
	assert.Equal(t, []any{TextEntered{"hi"}}, actions(h))

	h.SetModifiers(key.Control)
	assert.False(t, h.KeyPress(key.CodeRune, 'a'), "shortcuts are left to ancestors")
	h.SetModifiers()
	assert.Equal(t, "hi", ti.Text())
}

func TestTextInputGraphemes(t *testing.T) {
	h, ti, _ := newInputHarness(t)

	// e followed by a combining acute accent is one character
	h.KeyboardType("ae\u0301")
	assert.Equal(t, 4, ti.Cursor())
	assert.True(t, h.KeyPress(key.CodeBackspace, 0))
	assert.Equal(t, "a", ti.Text())
	assert.Equal(t, 1, ti.Cursor())

	// a regional indicator pair is one flag
	h.KeyPress(key.CodeBackspace, 0)
	assert.True(t, h.ImeCommit("a\U0001F1EB\U0001F1F7b"))
	assert.Equal(t, 10, ti.Cursor())
	h.KeyPress(key.CodeLeftArrow, 0)
	assert.Equal(t, 9, ti.Cursor())
	h.KeyPress(key.CodeLeftArrow, 0)
	assert.Equal(t, 1, ti.Cursor())
	h.KeyPress(key.CodeLeftArrow, 0)
	h.KeyPress(key.CodeLeftArrow, 0)
	assert.Equal(t, 0, ti.Cursor())
	h.KeyPress(key.CodeRightArrow, 0)
	assert.Equal(t, 1, ti.Cursor())

	assert.True(t, h.KeyPress(key.CodeDelete, 0))
	assert.Equal(t, "ab", ti.Text())
	assert.Equal(t, 1, ti.Cursor())

	h.KeyPress(key.CodeEnd, 0)
	assert.Equal(t, 2, ti.Cursor())
	h.KeyPress(key.CodeHome, 0)
	assert.Equal(t, 0, ti.Cursor())
	h.KeyPress(key.CodeBackspace, 0)
	assert.Equal(t, "ab", ti.Text(), "nothing before the cursor")
}

func TestGraphemeBounds(t *testing.T) {
	assert.Equal(t, []int{0}, graphemeBounds(""))
	assert.Equal(t, []int{0, 1, 2}, graphemeBounds("ab"))
	assert.Equal(t, []int{0, 3}, graphemeBounds("e\u0301"))
	assert.Equal(t, 0, prevBoundary("ab", 0))
	assert.Equal(t, 2, nextBoundary("ab", 2))
	assert.Equal(t, 3, nextBoundary("e\u0301x", 0))
}

func TestTextInputClickCursor(t *testing.T) {
	ti := NewTextInput().SetText("hello")
	h := coretest.New(NewColumn().WithChildPod(tag("input", ti)))
	h.MouseMove(math32.Vec2(15, 5))
	h.MouseClick()
	assert.Equal(t, 2, ti.Cursor(), "glyphs are 7 wide")
	assert.Empty(t, actions(h))
}

func TestTextInputIme(t *testing.T) {
	h, _, id := newInputHarness(t)
	active, r := h.ImeArea()
	assert.True(t, active)
	assert.Equal(t, h.WidgetState(id).WindowRect(), r)

	h.FocusOn(0)
	active, _ = h.ImeArea()
	assert.False(t, active)
}

func TestTextInputAccess(t *testing.T) {
	ti := NewTextInput().SetPlaceholder("Name")
	h := coretest.New(NewColumn().WithChildPod(tag("input", ti)))
	id := h.WidgetByTag("input")

	assert.True(t, h.AccessAction(id, access.ActionSetValue, "Ada"))
	assert.Equal(t, "Ada", ti.Text())
	assert.Equal(t, []any{TextChanged{"Ada"}}, actions(h))

	h.Redraw()
	node := h.AccessTree().Node(id)
	require.NotNil(t, node)
	assert.Equal(t, access.RoleTextInput, node.Role)
	assert.Equal(t, "Name", node.Label)
	assert.Equal(t, "Ada", node.Value)
	assert.True(t, node.SupportsAction(access.ActionSetValue))
}

func TestSetTextInputText(t *testing.T) {
	h, ti, id := newInputHarness(t)
	h.Redraw()
	h.EditWidget(id, func(m core.WidgetMut[core.Widget]) {
		SetTextInputText(core.Downcast[*TextInput](m), "abc")
	})
	assert.Equal(t, "abc", ti.Text())
	assert.Equal(t, 3, ti.Cursor())
	assert.Empty(t, actions(h))
	assert.True(t, h.IsRedrawRequested())

	h.Redraw()
	assert.Equal(t, []string{"abc"}, h.Scene().Texts())
	h.EditWidget(id, func(m core.WidgetMut[core.Widget]) {
		SetTextInputText(core.Downcast[*TextInput](m), "")
		SetTextInputPlaceholder(core.Downcast[*TextInput](m), "empty")
	})
	h.Redraw()
	assert.Equal(t, []string{"empty"}, h.Scene().Texts())
}
