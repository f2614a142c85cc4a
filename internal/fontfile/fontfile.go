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

// Package fontfile opens font files via seehuhn.de/go/sfnt and maps
// failures onto the error kinds of the root package.
package fontfile

import (
	"bytes"
	"errors"
	"io/fs"
	"os"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"

	"seehuhn.de/go/fontdedup"
)

// Open reads and parses the font file at path.
//
// A missing file yields a [fontdedup.NotFoundError], an unparsable file a
// [fontdedup.InvalidFormatError].  Other I/O failures are returned as-is.
func Open(path string) (*sfnt.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &fontdedup.NotFoundError{Path: path}
		}
		return nil, err
	}
	font, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, &fontdedup.InvalidFormatError{Path: path, Err: err}
	}
	return font, nil
}

// BestCmap returns the font's preferred cmap subtable, or nil if the font
// has no usable character map.  A missing cmap is not an error: such
// fonts simply map no code points.
func BestCmap(font *sfnt.Font) cmap.Subtable {
	if font.CMapTable == nil {
		return nil
	}
	subtable, err := font.CMapTable.GetBest()
	if err != nil {
		return nil
	}
	return subtable
}

// Codepoints returns the set of code points the subtable maps to a glyph.
// The result is empty (never nil) for a nil subtable.
func Codepoints(subtable cmap.Subtable) map[rune]bool {
	cps := make(map[rune]bool)
	if subtable == nil {
		return cps
	}
	low, high := subtable.CodeRange()
	for c := low; c <= high; c++ {
		if subtable.Lookup(c) != 0 {
			cps[c] = true
		}
	}
	return cps
}

// FamilyName returns the font's family name, or "Unknown" if the name
// table has no decodable family record.
func FamilyName(font *sfnt.Font) string {
	if font.FamilyName == "" {
		return "Unknown"
	}
	return font.FamilyName
}
