// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// TestingT is an interface wrapper around *testing.T
type TestingT interface {
	Errorf(format string, args ...any)
}

// UpdateTestImages indicates whether to update currently saved test
// images in [Assert] instead of comparing against them. It is set
// when the environment variable ARBOR_UPDATE_TESTDATA is "true".
var UpdateTestImages = os.Getenv("ARBOR_UPDATE_TESTDATA") == "true"

// Tolerance is the per-channel difference allowed by [Assert].
var Tolerance = 1

func closeUint8(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

// CompareColors returns whether the two colors are within tol
// of each other on every channel.
func CompareColors(a, b color.RGBA, tol int) bool {
	return closeUint8(a.R, b.R, tol) && closeUint8(a.G, b.G, tol) &&
		closeUint8(a.B, b.B, tol) && closeUint8(a.A, b.A, tol)
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// DiffImage returns the difference between two images,
// with pixels having the abs of the difference between pixels.
func DiffImage(a, b image.Image) *image.RGBA {
	ab := a.Bounds()
	di := image.NewRGBA(ab)
	for y := ab.Min.Y; y < ab.Max.Y; y++ {
		for x := ab.Min.X; x < ab.Max.X; x++ {
			ac := color.RGBAModel.Convert(a.At(x, y)).(color.RGBA)
			bc := color.RGBAModel.Convert(b.At(x, y)).(color.RGBA)
			di.SetRGBA(x, y, color.RGBA{absDiff(ac.R, bc.R), absDiff(ac.G, bc.G), absDiff(ac.B, bc.B), 255})
		}
	}
	return di
}

// Assert asserts that the given image is equivalent to the image
// stored at the given filename in the testdata directory, with ".png"
// added to the filename if there is no extension. If it is not, it
// fails the test with an error and saves .fail and .diff images next
// to the expected one. If there is no image at the given filename,
// it creates it.
func Assert(t TestingT, img image.Image, filename string) {
	filename = filepath.Join("testdata", filename)
	if filepath.Ext(filename) == "" {
		filename += ".png"
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0750); err != nil {
		t.Errorf("imagex.Assert: error making testdata directory: %v", err)
	}
	ext := filepath.Ext(filename)
	failFilename := strings.TrimSuffix(filename, ext) + ".fail" + ext
	diffFilename := strings.TrimSuffix(filename, ext) + ".diff" + ext

	if UpdateTestImages {
		if err := Save(img, filename); err != nil {
			t.Errorf("imagex.Assert: error saving updated image: %v", err)
		}
		os.RemoveAll(failFilename)
		os.RemoveAll(diffFilename)
		return
	}

	want, _, err := Open(filename)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("imagex.Assert: error opening saved image: %v", err)
			return
		}
		if err := Save(img, filename); err != nil {
			t.Errorf("imagex.Assert: error saving new image: %v", err)
		}
		return
	}

	failed := false
	if img.Bounds() != want.Bounds() {
		t.Errorf("imagex.Assert: expected bounds %v for %s, but got %v; see %s", want.Bounds(), filename, img.Bounds(), failFilename)
		failed = true
	} else {
		b := img.Bounds()
	outer:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
				exp := color.RGBAModel.Convert(want.At(x, y)).(color.RGBA)
				if !CompareColors(got, exp, Tolerance) {
					t.Errorf("imagex.Assert: image for %s is not the same as expected; see %s; expected %v at (%d, %d), but got %v", filename, failFilename, exp, x, y, got)
					failed = true
					break outer
				}
			}
		}
	}
	if !failed {
		os.RemoveAll(failFilename)
		os.RemoveAll(diffFilename)
		return
	}
	if err := Save(img, failFilename); err != nil {
		t.Errorf("imagex.Assert: error saving fail image: %v", err)
	}
	if err := Save(DiffImage(img, want), diffFilename); err != nil {
		t.Errorf("imagex.Assert: error saving diff image: %v", err)
	}
}
