// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"cogentcore.org/arbor/access"
	"cogentcore.org/arbor/base/iox/imagex"
	"cogentcore.org/arbor/core"
	"cogentcore.org/arbor/coretest"
	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/properties"
	"cogentcore.org/arbor/styles"
	"cogentcore.org/arbor/tree"
	"cogentcore.org/arbor/widgets"
)

// newDemo returns the demo form.
func newDemo() core.Widget {
	framed := &properties.Properties{}
	properties.Insert(framed, styles.NewPadding(4))
	properties.Insert(framed, styles.NewBorderWidth(1))

	buttons := widgets.NewRow().SetGap(8).SetCrossAlign(widgets.CrossBaseline).
		WithChildPod(core.NewTaggedPod("ok", widgets.NewButton("OK")).WithProperties(framed)).
		WithChildPod(core.NewTaggedPod("cancel", widgets.NewButton("Cancel")).WithProperties(framed.Clone())).
		WithFlexSpacer(1).
		WithChild(widgets.NewSpinner())

	return widgets.NewColumn().SetGap(8).
		WithChild(widgets.NewLabel("Arbor").SetColor(color.RGBA{0, 90, 200, 255})).
		WithChild(widgets.NewLabel("Name")).
		WithChildPod(core.NewTaggedPod("name", widgets.NewTextInput().SetPlaceholder("Your name")).WithProperties(framed.Clone())).
		WithChild(widgets.NewSizedBoxWith(buttons).SetWidth(math32.Infinity))
}

// newHarness returns a harness running the demo with the given options,
// with opts.text typed into the name input.
func newHarness(opts *options) *coretest.Harness {
	h := coretest.NewWithOptions(newDemo(), core.Options{
		Size:  math32.Vec2(opts.width, opts.height),
		Scale: opts.scale,
	})
	if opts.text != "" {
		h.MouseClickOn(h.WidgetByTag("name"))
		h.KeyboardType(opts.text)
		h.FocusOn(0)
	}
	return h
}

func newRenderCmd(opts *options) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the demo form to an image file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h := newHarness(opts)
			img := h.RenderImage()
			if err := imagex.Save(img, out); err != nil {
				return err
			}
			slog.Info("rendered demo", "file", out, "size", img.Bounds().Size())
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "arbor.png", "image file to write; the format follows the extension")
	return cmd
}

func newAccessCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "access",
		Short: "Print the accessibility tree of the demo form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h := newHarness(opts)
			_, upd := h.Redraw()
			printAccess(cmd.OutOrStdout(), h.AccessTree(), upd.Root, 0)
			return nil
		},
	}
}

// printAccess prints the node with the given id and its descendants,
// one per line, indented by depth.
func printAccess(w io.Writer, at *access.Tree, id tree.NodeID, depth int) {
	n := at.Node(id)
	if n == nil {
		return
	}
	line := fmt.Sprintf("%s%v %v", strings.Repeat("  ", depth), n.Role, n.Bounds)
	if n.Label != "" {
		line += fmt.Sprintf(" label=%q", n.Label)
	}
	if n.Value != "" {
		line += fmt.Sprintf(" value=%q", n.Value)
	}
	if len(n.Actions) > 0 {
		line += fmt.Sprintf(" actions=%v", n.Actions)
	}
	fmt.Fprintln(w, line)
	for _, c := range n.Children {
		printAccess(w, at, c, depth+1)
	}
}

func newSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settings FILE",
		Short: "Write the current debug settings to a TOML or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return core.DebugSettings.Save(args[0])
		},
	}
}
