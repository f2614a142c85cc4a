// seehuhn.de/go/fontdedup - deduplicate glyphs across font files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package testfont writes the Go fonts to disk for use as test fixtures.
//
// The Go fonts share their Latin coverage: two different family members
// (for example Go Regular and Go Bold) provide shape variants for the
// shared code points, while two copies of the same file provide true
// duplicates.
package testfont

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Write stores data as dir/name and returns the full path.
func Write(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, data, 0644)
	if err != nil {
		t.Fatal(err)
	}
	return path
}

// Regular writes a copy of Go Regular to dir.
func Regular(t *testing.T, dir string) string {
	return Write(t, dir, "goregular.ttf", goregular.TTF)
}

// RegularCopy writes a second, byte-identical copy of Go Regular under
// the given name.
func RegularCopy(t *testing.T, dir, name string) string {
	return Write(t, dir, name, goregular.TTF)
}

// Bold writes a copy of Go Bold to dir.
func Bold(t *testing.T, dir string) string {
	return Write(t, dir, "gobold.ttf", gobold.TTF)
}

// Mono writes a copy of Go Mono to dir.
func Mono(t *testing.T, dir string) string {
	return Write(t, dir, "gomono.ttf", gomono.TTF)
}
