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

package shape

import (
	"bytes"
	"slices"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/fontdedup"
	"seehuhn.de/go/fontdedup/analyze"
	"seehuhn.de/go/fontdedup/internal/fontfile"
)

// Similarity compares two glyph outlines and returns a score in [0, 1].
//
// The shipped policy is strict: 1.0 if the serialized outline data is
// byte-identical, 0.0 otherwise.  Outline data is vector geometry, free of
// rendering effects such as hinting or antialiasing, so any byte
// difference reflects a real design difference.  There is no partial
// credit for nearly identical outlines.
func Similarity(a, b *fontdedup.GlyphOutline) float64 {
	if bytes.Equal(a.Data, b.Data) {
		return 1.0
	}
	return 0.0
}

// FindVariants surveys the given fonts, extracts outlines for every code
// point mapped by at least two of them, and classifies each such code
// point as a true duplicate (all outlines byte-identical) or a shape
// variant.
//
// The threshold must lie in [0, 1].  It is accepted for API compatibility
// and threaded into the report, but the current comparator is strict
// equality and classification does not depend on it; see [Similarity].
//
// If limit is positive and more than limit code points are shared, only
// the numerically smallest limit code points are analyzed.  This keeps
// run time bounded on large CJK font sets, at the cost of possibly
// missing variants above the cut-off.  Pass 0 for no cap.
func FindVariants(paths []string, threshold float64, limit int) (*fontdedup.VariantReport, error) {
	if len(paths) == 0 {
		return nil, &fontdedup.InvalidInputError{
			Reason: "at least one font file is required",
		}
	}
	if threshold < 0 || threshold > 1 {
		return nil, &fontdedup.InvalidInputError{
			Reason: "similarity threshold must be between 0.0 and 1.0",
		}
	}

	var infos []*fontdedup.FontInfo
	for _, path := range paths {
		info, err := analyze.Survey(path)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}

	shared := maps.Keys(analyze.SharedCodepoints(infos))
	slices.Sort(shared)
	if limit > 0 && len(shared) > limit {
		shared = shared[:limit]
	}

	// Open every font once for the whole batch.  Re-parsing per code
	// point would cost O(codepoints * fonts) table parses.
	opened := make(map[string]*sfnt.Font)
	for _, path := range paths {
		font, err := fontfile.Open(path)
		if err != nil {
			return nil, err
		}
		opened[path] = font
	}

	report := &fontdedup.VariantReport{
		Fonts:          infos,
		TrueDuplicates: make(map[rune][]string),
	}
	for _, c := range shared {
		variant, duplicated := classify(infos, opened, c)
		if variant != nil {
			report.Variants = append(report.Variants, variant)
		} else if duplicated != nil {
			report.TrueDuplicates[c] = duplicated
		}
	}

	fontdedup.Logger().Debug("shape analysis finished",
		"fonts", len(paths),
		"shared", len(shared),
		"variants", len(report.Variants),
		"duplicates", len(report.TrueDuplicates))
	return report, nil
}

// classify extracts the outlines of one shared code point from every font
// mapping it and compares them pairwise.  It returns a variant if any
// pair differs, or the list of fonts if all outlines are identical.  Both
// results are nil if fewer than two outlines could be extracted.
func classify(infos []*fontdedup.FontInfo, opened map[string]*sfnt.Font, c rune) (*fontdedup.ShapeVariant, []string) {
	var outlines []*fontdedup.GlyphOutline
	for _, info := range infos {
		if !info.Codepoints[c] {
			continue
		}
		// The cmap can claim coverage the glyph table does not back up;
		// skip such fonts rather than failing the whole analysis.
		if o := outlineFromFont(opened[info.Path], info.Path, c); o != nil {
			outlines = append(outlines, o)
		}
	}
	if len(outlines) < 2 {
		return nil, nil
	}

	fonts := make([]string, len(outlines))
	for i, o := range outlines {
		fonts[i] = o.FontPath
	}

	scores := make(map[fontdedup.FontPair]float64)
	hasVariant := false
	for i := range outlines {
		for j := i + 1; j < len(outlines); j++ {
			s := Similarity(outlines[i], outlines[j])
			scores[fontdedup.FontPair{First: fonts[i], Second: fonts[j]}] = s
			if s < 1.0 {
				hasVariant = true
			}
		}
	}

	if hasVariant {
		return &fontdedup.ShapeVariant{
			Codepoint: c,
			Fonts:     fonts,
			Scores:    scores,
		}, nil
	}
	return nil, fonts
}
