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

// Package report renders the result structures of this module as
// human-readable text.
package report

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/fontdedup"
)

// maxListedCodepoints bounds the number of code points listed
// individually in a report section.
const maxListedCodepoints = 20

// Analysis renders an analysis report.  The concrete type of r selects
// the layout: a plain duplicate listing for [fontdedup.DuplicateReport],
// or the variant/duplicate breakdown for [fontdedup.VariantReport].
func Analysis(r fontdedup.AnalysisReport) string {
	switch r := r.(type) {
	case *fontdedup.DuplicateReport:
		return duplicateReport(r)
	case *fontdedup.VariantReport:
		return variantReport(r)
	default:
		panic(fmt.Sprintf("unexpected report type %T", r))
	}
}

func duplicateReport(r *fontdedup.DuplicateReport) string {
	b := &strings.Builder{}
	heading(b, "Font Analysis Report")
	fontList(b, r.Fonts)

	fmt.Fprintf(b, "Duplicate code points: %d\n", len(r.Duplicates))
	listCodepoints(b, r.Duplicates)
	return b.String()
}

func variantReport(r *fontdedup.VariantReport) string {
	b := &strings.Builder{}
	heading(b, "Shape Analysis Report")
	fontList(b, r.Fonts)

	fmt.Fprintf(b, "Shape variants: %d\n", len(r.Variants))
	for i, v := range r.Variants {
		if i == maxListedCodepoints {
			fmt.Fprintf(b, "  ... (%d total)\n", len(r.Variants))
			break
		}
		fmt.Fprintf(b, "  %s: %s\n", codepointLabel(v.Codepoint),
			strings.Join(baseNames(v.Fonts), ", "))
	}
	b.WriteString("\n")

	fmt.Fprintf(b, "True duplicates (identical outlines): %d\n", len(r.TrueDuplicates))
	listCodepoints(b, r.TrueDuplicates)
	return b.String()
}

// Dedup renders a deduplication result.  For a
// [fontdedup.ShapeAwareResult] the preserved shape variants are listed in
// addition to the per-font keep/remove counts.
func Dedup(res fontdedup.DedupResult) string {
	b := &strings.Builder{}
	heading(b, "Deduplication Report")

	kept := res.KeptGlyphs()
	removed := res.RemovedGlyphs()
	paths := maps.Keys(kept)
	slices.Sort(paths)
	for _, path := range paths {
		fmt.Fprintf(b, "  %s: %d kept, %d removed\n",
			baseName(path), len(kept[path]), len(removed[path]))
	}
	b.WriteString("\n")

	if r, ok := res.(*fontdedup.ShapeAwareResult); ok {
		fmt.Fprintf(b, "Preserved shape variants: %d\n", len(r.PreservedVariants))
		for i, v := range r.PreservedVariants {
			if i == maxListedCodepoints {
				fmt.Fprintf(b, "  ... (%d total)\n", len(r.PreservedVariants))
				break
			}
			fmt.Fprintf(b, "  %s: kept in %s\n", codepointLabel(v.Codepoint),
				strings.Join(baseNames(v.Fonts), ", "))
		}
	}
	return b.String()
}

// Validation renders a validation result as one line per finding.
func Validation(res *fontdedup.ValidationResult) string {
	b := &strings.Builder{}
	if res.IsValid {
		b.WriteString("  valid\n")
	} else {
		b.WriteString("  INVALID\n")
	}
	for _, msg := range res.Errors {
		fmt.Fprintf(b, "  error: %s\n", msg)
	}
	for _, msg := range res.Warnings {
		fmt.Fprintf(b, "  warning: %s\n", msg)
	}
	return b.String()
}

// FileSizes renders a before/after size comparison.
func FileSizes(originalSize, newSize int64) string {
	saved := originalSize - newSize
	pct := 0.0
	if originalSize > 0 {
		pct = 100 * float64(saved) / float64(originalSize)
	}
	return fmt.Sprintf("%d -> %d bytes (%.1f%% saved)", originalSize, newSize, pct)
}

func heading(b *strings.Builder, title string) {
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func fontList(b *strings.Builder, fonts []*fontdedup.FontInfo) {
	fmt.Fprintf(b, "Fonts analyzed: %d\n", len(fonts))
	for _, info := range fonts {
		fmt.Fprintf(b, "  %s: %q, %d glyphs, %d code points\n",
			baseName(info.Path), info.FamilyName, info.GlyphCount,
			len(info.Codepoints))
	}
	b.WriteString("\n")
}

func listCodepoints(b *strings.Builder, m map[rune][]string) {
	cps := maps.Keys(m)
	slices.Sort(cps)
	for i, c := range cps {
		if i == maxListedCodepoints {
			fmt.Fprintf(b, "  ... (%d total)\n", len(cps))
			break
		}
		fmt.Fprintf(b, "  %s: %s\n", codepointLabel(c),
			strings.Join(baseNames(m[c]), ", "))
	}
}

func codepointLabel(c rune) string {
	name := runenames.Name(c)
	if name == "" {
		return fmt.Sprintf("U+%04X", c)
	}
	return fmt.Sprintf("U+%04X (%s)", c, name)
}

func baseName(path string) string {
	idx := strings.LastIndexAny(path, `/\`)
	return path[idx+1:]
}

func baseNames(paths []string) []string {
	names := make([]string, len(paths))
	for i, path := range paths {
		names[i] = baseName(path)
	}
	return names
}
