// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/arbor/access"
	"cogentcore.org/arbor/tree"
)

// AccessEvent is an action requested by assistive technology
// on a specific widget.
type AccessEvent struct {
	Target tree.NodeID
	Action access.Action

	// Data is the action payload, such as the new value for
	// [access.ActionSetValue].
	Data string
}

func (ev *AccessEvent) String() string {
	return fmt.Sprintf("Access{Target: %v, Action: %v, Data: %q}", ev.Target, ev.Action, ev.Data)
}
