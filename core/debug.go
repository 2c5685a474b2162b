// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"cogentcore.org/arbor/base/iox/tomlx"
	"cogentcore.org/arbor/base/iox/yamlx"
)

// DebugSettings are the currently active debugging settings.
var DebugSettings = &DebugSettingsData{
	CheckConsistency: debugBuild,
}

// DebugSettingsData is the data type for debugging settings.
type DebugSettingsData struct {

	// Print a trace of requests that mark widgets for another pass
	UpdateTrace bool `toml:"UpdateTrace" yaml:"UpdateTrace"`

	// Print a trace of the registration pass, including inserted and
	// removed widgets
	RegisterTrace bool `toml:"RegisterTrace" yaml:"RegisterTrace"`

	// Print a trace of all layouts
	LayoutTrace bool `toml:"LayoutTrace" yaml:"LayoutTrace"`

	// Print a trace of the widgets that repaint their fragment
	PaintTrace bool `toml:"PaintTrace" yaml:"PaintTrace"`

	// Print a trace of event dispatch
	EventTrace bool `toml:"EventTrace" yaml:"EventTrace"`

	// Print a trace of focus changes
	FocusTrace bool `toml:"FocusTrace" yaml:"FocusTrace"`

	// Check that registered children match [Widget.Children] and that
	// mutations of a [Fingerprinter] request a pass. It is on by default
	// in builds without the release tag.
	CheckConsistency bool `toml:"CheckConsistency" yaml:"CheckConsistency"`
}

// Open loads the settings from the given TOML or YAML file,
// chosen by its extension.
func (db *DebugSettingsData) Open(filename string) error {
	switch filepath.Ext(filename) {
	case ".yaml", ".yml":
		return yamlx.Open(db, filename)
	default:
		return tomlx.Open(db, filename)
	}
}

// Save saves the settings to the given TOML or YAML file,
// chosen by its extension.
func (db *DebugSettingsData) Save(filename string) error {
	switch filepath.Ext(filename) {
	case ".yaml", ".yml":
		return yamlx.Save(db, filename)
	default:
		return tomlx.Save(db, filename)
	}
}

// debugPanicf reports a runtime condition that the render root can
// recover from: it panics in builds without the release tag, and logs
// an error otherwise so that the caller can clamp and continue.
func debugPanicf(format string, args ...any) {
	msg := "core: " + fmt.Sprintf(format, args...)
	if debugBuild {
		panic(msg)
	}
	slog.Error(msg)
}
