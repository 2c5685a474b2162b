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
	"cogentcore.org/arbor/events"
	"cogentcore.org/arbor/events/key"
	"cogentcore.org/arbor/math32"
)

func newButtonHarness() (*coretest.Harness, *Button) {
	bt := NewButton("OK")
	h := coretest.New(NewColumn().WithChildPod(tag("ok", bt)))
	return h, bt
}

func TestButtonClick(t *testing.T) {
	h, bt := newButtonHarness()
	id := h.WidgetByTag("ok")
	assert.Equal(t, math32.B2(0, 0, 14, 13), h.WidgetState(id).WindowRect())

	h.MouseMoveTo(id)
	assert.Equal(t, id, h.HoveredWidget(), "the label does not take the pointer")
	h.MouseButtonPress(events.Left)
	assert.True(t, bt.IsPressed())
	assert.Empty(t, actions(h))

	h.MouseButtonRelease(events.Left)
	assert.False(t, bt.IsPressed())
	assert.Equal(t, []any{ButtonPressed{Button: events.Left}}, actions(h))
}

func TestButtonReleaseOutside(t *testing.T) {
	h, bt := newButtonHarness()
	h.MouseMoveTo(h.WidgetByTag("ok"))
	h.MouseButtonPress(events.Left)
	h.MouseMove(math32.Vec2(200, 200))
	assert.True(t, bt.IsPressed(), "captured")

	h.MouseButtonRelease(events.Left)
	assert.False(t, bt.IsPressed())
	assert.Empty(t, actions(h))
}

func TestButtonKeyboard(t *testing.T) {
	h, _ := newButtonHarness()
	id := h.WidgetByTag("ok")

	assert.False(t, h.KeyPress(key.CodeReturnEnter, '\r'), "not focused")
	h.Tab()
	assert.Equal(t, id, h.FocusedWidget())

	assert.True(t, h.KeyPress(key.CodeReturnEnter, '\r'))
	assert.True(t, h.KeyPress(key.CodeSpacebar, ' '))
	assert.False(t, h.KeyPress(key.CodeRune, 'a'))
	assert.Equal(t, []any{ButtonPressed{}, ButtonPressed{}}, actions(h))
}

func TestButtonAccess(t *testing.T) {
	h, _ := newButtonHarness()
	id := h.WidgetByTag("ok")
	_, upd := h.Redraw()

	node := upd.Node(id)
	require.NotNil(t, node)
	assert.Equal(t, access.RoleButton, node.Role)
	assert.True(t, node.SupportsAction(access.ActionClick))
	assert.True(t, node.Focusable)
	require.Len(t, node.Children, 1)
	assert.Equal(t, "OK", h.AccessTree().Node(node.Children[0]).Label)

	assert.True(t, h.AccessAction(id, access.ActionClick, ""))
	assert.Equal(t, []any{ButtonPressed{}}, actions(h))
}

func TestButtonDisabled(t *testing.T) {
	h, _ := newButtonHarness()
	id := h.WidgetByTag("ok")
	h.EditWidget(id, func(m core.WidgetMut[core.Widget]) {
		m.Ctx.SetDisabled(true)
	})
	h.MouseClickOn(id)
	assert.Empty(t, actions(h))
	assert.True(t, h.WidgetState(id).IsDisabled())
}

func TestSetButtonText(t *testing.T) {
	h, _ := newButtonHarness()
	id := h.WidgetByTag("ok")
	h.EditWidget(id, func(m core.WidgetMut[core.Widget]) {
		SetButtonText(core.Downcast[*Button](m), "Cancel")
	})
	assert.Equal(t, math32.Vec2(42, 13), h.WidgetState(id).Size())

	h.Redraw()
	assert.Contains(t, h.Scene().Texts(), "Cancel")
}
