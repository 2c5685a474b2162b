// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !release

package core

// debugBuild is whether recoverable consistency failures panic.
const debugBuild = true
