// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/arbor/math32"
)

func TestDebugSettingsSaveOpen(t *testing.T) {
	for _, name := range []string{"debug.toml", "debug.yaml"} {
		t.Run(name, func(t *testing.T) {
			fn := filepath.Join(t.TempDir(), name)
			want := &DebugSettingsData{LayoutTrace: true, CheckConsistency: true}
			require.NoError(t, want.Save(fn))
			got := &DebugSettingsData{}
			require.NoError(t, got.Open(fn))
			assert.Equal(t, want, got)
		})
	}
}

func TestDebugSettingsOpenMissing(t *testing.T) {
	db := &DebugSettingsData{}
	assert.Error(t, db.Open(filepath.Join(t.TempDir(), "missing.toml")))
}

func TestMetrics(t *testing.T) {
	rr, _, _ := twoBoxes(nil)
	m := rr.Metrics()
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Nodes))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.WidgetVisits.WithLabelValues(passLayout)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.PassRuns.WithLabelValues(passPaint)))

	rr.Redraw()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PassRuns.WithLabelValues(passPaint)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.WidgetVisits.WithLabelValues(passPaint)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.WidgetVisits.WithLabelValues(passAccess)))

	rr.EditRootWidget(func(m WidgetMut[Widget]) {
		addChild(Downcast[*box](m), NewWidgetPod(&box{name: "c", size: math32.Vec2(1, 1)}))
	})
	assert.Equal(t, 4.0, testutil.ToFloat64(m.Nodes))
	n, err := testutil.GatherAndCount(m.Registry)
	require.NoError(t, err)
	assert.Positive(t, n)
}
