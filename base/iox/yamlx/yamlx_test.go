// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Name  string `yaml:"name"`
	Trace bool   `yaml:"trace"`
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.yaml")
	in := settings{Name: "arbor", Trace: true}
	require.NoError(t, Save(&in, fn))
	var out settings
	require.NoError(t, Open(&out, fn))
	assert.Equal(t, in, out)
}
