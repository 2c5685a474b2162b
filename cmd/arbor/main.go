// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command arbor drives the reference widgets without a window: it can
// render them to an image, print their accessibility tree, and write
// the debug settings file that the render root reads.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"cogentcore.org/arbor/base/errors"
	"cogentcore.org/arbor/base/logx"
	"cogentcore.org/arbor/core"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options are the flags shared by all commands.
type options struct {
	settings string
	verbose  bool
	width    float32
	height   float32
	scale    float32
	text     string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "arbor",
		Short:        "Render the arbor reference widgets headlessly",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				logx.UserLevel = slog.LevelDebug
			}
			logx.SetDefaultLogger()
			if opts.settings != "" {
				// a missing settings file leaves the defaults in place
				errors.Log(core.DebugSettings.Open(opts.settings))
			}
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.settings, "debug-settings", "", "TOML or YAML file with the debug settings to use")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug messages")
	pf.Float32Var(&opts.width, "width", 400, "window width")
	pf.Float32Var(&opts.height, "height", 300, "window height")
	pf.Float32Var(&opts.scale, "scale", 1, "window scale factor")
	pf.StringVar(&opts.text, "text", "", "text to type into the name input before rendering")

	cmd.AddCommand(newRenderCmd(opts), newAccessCmd(opts), newSettingsCmd())
	return cmd
}
