// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"time"

	"cogentcore.org/arbor/math32"
)

// WindowEvent is an event about the window itself.
// It is one of [Resize], [Rescale] or [AnimFrame].
type WindowEvent interface {
	isWindowEvent()
}

// Resize is sent when the window size changes.
type Resize struct {
	Size math32.Vector2
}

// Rescale is sent when the window scale factor changes.
type Rescale struct {
	Scale float32
}

// AnimFrame is a frame tick; Elapsed is the time since the last tick.
type AnimFrame struct {
	Elapsed time.Duration
}

func (Resize) isWindowEvent()    {}
func (Rescale) isWindowEvent()   {}
func (AnimFrame) isWindowEvent() {}
