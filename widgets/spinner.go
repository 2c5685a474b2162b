// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"image/color"
	"time"

	"cogentcore.org/arbor/access"
	"cogentcore.org/arbor/core"
	"cogentcore.org/arbor/events"
	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/paint"
	"cogentcore.org/arbor/properties"
)

// spinnerDots is the number of dots drawn around a [Spinner].
const spinnerDots = 8

// DefaultSpinnerSize is the size a [Spinner] takes when it is
// not constrained.
var DefaultSpinnerSize float32 = 32

// Spinner is an animated indicator of indeterminate progress. It asks
// for an animation frame on every frame while it is running.
type Spinner struct {
	core.WidgetBase

	// Color is the color of the dots. If it is zero,
	// the TextColor property is used.
	Color color.RGBA

	// Period is the time of one revolution.
	Period time.Duration

	phase   time.Duration
	stopped bool
}

// NewSpinner returns a new running spinner.
func NewSpinner() *Spinner { return &Spinner{Period: time.Second} }

// SetColor sets [Spinner.Color] before the spinner is inserted.
func (sp *Spinner) SetColor(c color.RGBA) *Spinner {
	sp.Color = c
	return sp
}

// Phase returns the fraction of the current revolution, in [0, 1).
func (sp *Spinner) Phase() float32 {
	if sp.Period <= 0 {
		return 0
	}
	return float32(sp.phase) / float32(sp.Period)
}

// IsRunning returns whether the spinner is animating.
func (sp *Spinner) IsRunning() bool { return !sp.stopped }

// SetSpinnerColor changes the color of the spinner.
func SetSpinnerColor(m core.WidgetMut[*Spinner], c color.RGBA) {
	m.Widget.Color = c
	m.Ctx.RequestPaintOnly()
}

// SetSpinnerRunning starts or stops the animation of the spinner.
func SetSpinnerRunning(m core.WidgetMut[*Spinner], running bool) {
	if m.Widget.stopped != running {
		return
	}
	m.Widget.stopped = !running
	if running {
		m.Ctx.RequestAnimFrame()
	}
}

func (sp *Spinner) Update(ctx *core.UpdateCtx, props properties.Ref, u events.Update) {
	if u.Type == events.WidgetAdded && !sp.stopped {
		ctx.RequestAnimFrame()
	}
}

func (sp *Spinner) OnAnimFrame(ctx *core.UpdateCtx, props properties.Ref, interval time.Duration) {
	if sp.stopped {
		return
	}
	if sp.Period > 0 {
		sp.phase = (sp.phase + interval) % sp.Period
	}
	ctx.RequestPaintOnly()
	ctx.RequestAnimFrame()
}

func (sp *Spinner) Layout(ctx *core.LayoutCtx, props properties.Ref, bc core.BoxConstraints) math32.Vector2 {
	return bc.Constrain(math32.Vector2Scalar(DefaultSpinnerSize))
}

func (sp *Spinner) Paint(ctx *core.PaintCtx, props properties.Ref, sc *paint.Scene) {
	size := ctx.Size()
	c := textColor(props, sp.Color)
	radius := min(size.X, size.Y) / 2
	dot := max(radius/4, 1)
	center := size.MulScalar(0.5)
	lead := int(sp.Phase() * spinnerDots)
	for i := range spinnerDots {
		angle := 2 * math32.Pi * float32(i) / spinnerDots
		p := center.Add(math32.Vec2(math32.Sin(angle), -math32.Cos(angle)).MulScalar(radius - dot))
		// the leading dot is opaque and the ones behind it fade out
		age := (lead - i + spinnerDots) % spinnerDots
		dc := c
		dc.A = uint8(int(c.A) * (spinnerDots - age) / spinnerDots)
		sc.FillRect(math32.B2(p.X-dot/2, p.Y-dot/2, p.X+dot/2, p.Y+dot/2), dc)
	}
}

func (sp *Spinner) AccessRole() access.Role { return access.RoleProgressIndicator }

func (sp *Spinner) AcceptsPointerInteraction() bool { return false }
