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

// Package validate checks the structure and glyph coverage of generated
// font files.
package validate

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"seehuhn.de/go/fontdedup"
	"seehuhn.de/go/fontdedup/internal/fontfile"
	"seehuhn.de/go/fontdedup/internal/sfntdir"
)

// requiredTables must all be present in a structurally valid font.
var requiredTables = []string{"cmap", "head", "hhea", "hmtx", "maxp", "name", "post"}

// Format checks that the file at path is a structurally valid font: the
// file exists and is non-empty, all required tables and an outline table
// are present, and the "head" magic number matches.  An empty or missing
// character map is reported as a warning, not an error.
func Format(path string) *fontdedup.ValidationResult {
	res := &fontdedup.ValidationResult{IsValid: true}

	stat, err := os.Stat(path)
	if err != nil {
		return invalid(fmt.Sprintf("file does not exist: %s", path))
	}
	if stat.Size() == 0 {
		return invalid(fmt.Sprintf("file is empty: %s", path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return invalid(fmt.Sprintf("cannot read file %s: %v", path, err))
	}
	dir, err := sfntdir.Decode(data)
	if err != nil {
		return invalid(fmt.Sprintf("cannot parse font file %s: %v", path, err))
	}

	var missing []string
	for _, tag := range requiredTables {
		if !dir.Has(tag) {
			missing = append(missing, tag)
		}
	}
	if len(missing) > 0 {
		res.Errors = append(res.Errors,
			"missing required tables: "+strings.Join(missing, ", "))
	}

	if !dir.Has("glyf") && !dir.Has("CFF ") && !dir.Has("CFF2") {
		res.Errors = append(res.Errors,
			"no glyph outline data (glyf or CFF table)")
	}

	if magic, ok := dir.HeadMagic(); ok && magic != sfntdir.HeadMagicNumber {
		res.Errors = append(res.Errors,
			fmt.Sprintf("invalid head table magic number: %#08x", magic))
	}

	// Presence of the cmap table does not guarantee a usable mapping.
	font, err := fontfile.Open(path)
	if err != nil {
		res.Errors = append(res.Errors,
			fmt.Sprintf("cannot parse font file %s: %v", path, err))
	} else if subtable := fontfile.BestCmap(font); subtable == nil {
		res.Warnings = append(res.Warnings,
			"character map is missing or unreadable")
	} else if len(fontfile.Codepoints(subtable)) == 0 {
		res.Warnings = append(res.Warnings,
			"character map contains no Unicode mappings")
	}

	res.IsValid = len(res.Errors) == 0
	return res
}

// GlyphCoverage checks that every expected code point is mapped by the
// font at path and that the mapped glyph actually exists.  Format
// validation runs first and short-circuits on failure.  All missing and
// inaccessible code points are collected, not just the first.
func GlyphCoverage(path string, expected map[rune]bool) *fontdedup.ValidationResult {
	res := Format(path)
	if !res.IsValid {
		return res
	}

	font, err := fontfile.Open(path)
	if err != nil {
		return invalid(fmt.Sprintf("cannot open font file %s: %v", path, err))
	}
	subtable := fontfile.BestCmap(font)
	if subtable == nil {
		res.IsValid = false
		res.Errors = append(res.Errors, "cannot read the character map")
		return res
	}

	cps := make([]rune, 0, len(expected))
	for c := range expected {
		cps = append(cps, c)
	}
	slices.Sort(cps)

	var missing []rune
	var inaccessible []string
	for _, c := range cps {
		gid := subtable.Lookup(c)
		if gid == 0 {
			missing = append(missing, c)
		} else if int(gid) >= font.NumGlyphs() {
			inaccessible = append(inaccessible,
				fmt.Sprintf("U+%04X -> %s", c, font.GlyphName(gid)))
		}
	}

	if len(missing) > 0 {
		shown := make([]string, 0, len(missing))
		for _, c := range missing {
			shown = append(shown, fmt.Sprintf("U+%04X", c))
		}
		res.Errors = append(res.Errors,
			"code points not mapped by the font: "+truncated(shown, 10, 5))
	}
	if len(inaccessible) > 0 {
		res.Errors = append(res.Errors,
			"glyphs not accessible in the font: "+truncated(inaccessible, 5, 3))
	}

	res.IsValid = len(res.Errors) == 0
	return res
}

// truncated joins the items, abbreviating long lists for readability
// while reporting the true total count.
func truncated(items []string, limit, head int) string {
	if len(items) <= limit {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s ... (%d total)",
		strings.Join(items[:head], ", "), len(items))
}

func invalid(msg string) *fontdedup.ValidationResult {
	return &fontdedup.ValidationResult{
		IsValid: false,
		Errors:  []string{msg},
	}
}
