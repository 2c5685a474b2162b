// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Name  string
	Trace bool
	Depth int
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.toml")
	in := settings{Name: "arbor", Trace: true, Depth: 3}
	require.NoError(t, Save(&in, fn))
	var out settings
	require.NoError(t, Open(&out, fn))
	assert.Equal(t, in, out)
	assert.Error(t, Open(&out, filepath.Join(t.TempDir(), "missing.toml")))
}
