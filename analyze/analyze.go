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

// Package analyze surveys font files and finds code points shared between
// fonts.
package analyze

import (
	"slices"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/fontdedup"
	"seehuhn.de/go/fontdedup/internal/fontfile"
)

// Survey parses the font file at path and extracts its metadata: family
// name, total glyph count and the set of mapped code points.
//
// Survey returns a [fontdedup.NotFoundError] if the path does not exist,
// and a [fontdedup.InvalidFormatError] if the file is not an OpenType or
// TrueType font.
func Survey(path string) (*fontdedup.FontInfo, error) {
	font, err := fontfile.Open(path)
	if err != nil {
		return nil, err
	}

	info := &fontdedup.FontInfo{
		Path:       path,
		FamilyName: fontfile.FamilyName(font),
		GlyphCount: font.NumGlyphs(),
		Codepoints: fontfile.Codepoints(fontfile.BestCmap(font)),
	}
	fontdedup.Logger().Debug("surveyed font",
		"path", path,
		"family", info.FamilyName,
		"glyphs", info.GlyphCount,
		"codepoints", len(info.Codepoints))
	return info, nil
}

// Glyphs lists every mapped glyph of the font at path, in ascending code
// point order.  Fonts without a usable cmap yield an empty list.
func Glyphs(path string) ([]fontdedup.GlyphInfo, error) {
	font, err := fontfile.Open(path)
	if err != nil {
		return nil, err
	}

	subtable := fontfile.BestCmap(font)
	cps := maps.Keys(fontfile.Codepoints(subtable))
	slices.Sort(cps)

	glyphs := make([]fontdedup.GlyphInfo, 0, len(cps))
	for _, c := range cps {
		gid := subtable.Lookup(c)
		glyphs = append(glyphs, fontdedup.GlyphInfo{
			Codepoint: c,
			Name:      font.GlyphName(gid),
			GID:       gid,
			Width:     font.GlyphWidthPDF(gid),
		})
	}
	return glyphs, nil
}

// FindDuplicates surveys all given fonts and reports every code point
// which is mapped by more than one of them.  The font lists in the report
// preserve the order of the paths argument.
func FindDuplicates(paths []string) (*fontdedup.DuplicateReport, error) {
	if len(paths) == 0 {
		return nil, &fontdedup.InvalidInputError{
			Reason: "at least one font file is required",
		}
	}

	report := &fontdedup.DuplicateReport{
		Duplicates: make(map[rune][]string),
	}
	byCodepoint := make(map[rune][]string)
	for _, path := range paths {
		info, err := Survey(path)
		if err != nil {
			return nil, err
		}
		report.Fonts = append(report.Fonts, info)
		for c := range info.Codepoints {
			byCodepoint[c] = append(byCodepoint[c], path)
		}
	}

	for c, fonts := range byCodepoint {
		if len(fonts) > 1 {
			report.Duplicates[c] = fonts
		}
	}
	return report, nil
}

// SharedCodepoints returns the code points mapped by at least two of the
// surveyed fonts.
func SharedCodepoints(fonts []*fontdedup.FontInfo) map[rune]bool {
	count := make(map[rune]int)
	for _, info := range fonts {
		for c := range info.Codepoints {
			count[c]++
		}
	}
	shared := make(map[rune]bool)
	for c, n := range count {
		if n > 1 {
			shared[c] = true
		}
	}
	return shared
}
