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

// Package dedup decides, per code point, which font of a prioritized set
// keeps its glyph.
//
// There are two engines.  [Basic] treats every shared code point as a
// duplicate and assigns it to the highest-priority font containing it.
// [ShapeAware] first classifies shared code points by outline equality
// and keeps shape variants in every font that draws them differently.
package dedup

import (
	"slices"

	"seehuhn.de/go/fontdedup"
	"seehuhn.de/go/fontdedup/analyze"
	"seehuhn.de/go/fontdedup/shape"
)

// ResolveOrder returns the definitive font priority order, highest first.
//
// With a nil priority the input order is the priority order.  Otherwise
// the result lists the priority entries which occur in fonts, in priority
// order, followed by the remaining fonts in their original relative order.
// Priority entries naming fonts outside the input are ignored.
func ResolveOrder(fonts []string, priority []string) []string {
	if priority == nil {
		return fonts
	}

	inInput := make(map[string]bool, len(fonts))
	for _, path := range fonts {
		inInput[path] = true
	}

	var order []string
	for _, path := range priority {
		if inInput[path] {
			order = append(order, path)
		}
	}
	for _, path := range fonts {
		if !slices.Contains(order, path) {
			order = append(order, path)
		}
	}
	return order
}

// Engine is a deduplication engine, one of [Basic] or [ShapeAware].
// Callers needing the extra fields of a shape-aware result type-switch on
// the returned [fontdedup.DedupResult].
type Engine interface {
	Run(fonts []string, unicodeRanges, excludeRanges []fontdedup.Range) (fontdedup.DedupResult, error)

	isEngine()
}

var (
	_ Engine = (*Basic)(nil)
	_ Engine = (*ShapeAware)(nil)
)

func (*Basic) isEngine()      {}
func (*ShapeAware) isEngine() {}

// Basic deduplicates by code point identity alone.
//
// Priority optionally lists fonts in priority order, highest first; fonts
// not listed are appended in input order, see [ResolveOrder].
type Basic struct {
	Priority []string
}

// Run implements [Engine].
func (e *Basic) Run(fonts []string, unicodeRanges, excludeRanges []fontdedup.Range) (fontdedup.DedupResult, error) {
	res, err := e.Deduplicate(fonts, unicodeRanges, excludeRanges)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Deduplicate partitions every (font, code point) pair of the input into
// kept and removed.
//
// Code points inside one of the excludeRanges are always kept.  If
// unicodeRanges is non-nil, code points outside all of its ranges are not
// subject to deduplication and are kept as well.  Every other code point
// is kept by the highest-priority font containing it and removed from all
// others.
func (e *Basic) Deduplicate(fonts []string, unicodeRanges, excludeRanges []fontdedup.Range) (*fontdedup.Result, error) {
	if len(fonts) == 0 {
		return nil, &fontdedup.InvalidInputError{
			Reason: "at least one font file is required",
		}
	}
	return partition(fonts, e.Priority, unicodeRanges, excludeRanges, nil)
}

// ShapeAware deduplicates like [Basic], but preserves shape variants:
// code points whose outlines differ between fonts are kept in every font
// containing them.
//
// Threshold is passed through to the outline comparator.  The shipped
// comparator is strict byte equality and ignores the granularity, see
// [seehuhn.de/go/fontdedup/shape.Similarity]; the field must still lie in
// [0, 1].
type ShapeAware struct {
	Priority  []string
	Threshold float64
}

// Run implements [Engine].
func (e *ShapeAware) Run(fonts []string, unicodeRanges, excludeRanges []fontdedup.Range) (fontdedup.DedupResult, error) {
	res, err := e.Deduplicate(fonts, unicodeRanges, excludeRanges)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Deduplicate partitions every (font, code point) pair of the input into
// kept and removed, keeping shape variants everywhere.
//
// Classification considers all code points shared by at least two of the
// input fonts; no analysis cap applies here, unlike the standalone
// [seehuhn.de/go/fontdedup/shape.FindVariants] entry point.
func (e *ShapeAware) Deduplicate(fonts []string, unicodeRanges, excludeRanges []fontdedup.Range) (*fontdedup.ShapeAwareResult, error) {
	if len(fonts) == 0 {
		return nil, &fontdedup.InvalidInputError{
			Reason: "at least one font file is required",
		}
	}

	report, err := shape.FindVariants(fonts, e.Threshold, 0)
	if err != nil {
		return nil, err
	}
	variants := make(map[rune]*fontdedup.ShapeVariant, len(report.Variants))
	for _, v := range report.Variants {
		variants[v.Codepoint] = v
	}

	res, err := partition(fonts, e.Priority, unicodeRanges, excludeRanges, variants)
	if err != nil {
		return nil, err
	}

	// Record each variant which actually protected a kept code point,
	// once, in code point order.
	var preserved []*fontdedup.ShapeVariant
	similarity := make(map[rune]map[fontdedup.FontPair]float64)
	cps := make([]rune, 0, len(variants))
	for c := range variants {
		cps = append(cps, c)
	}
	slices.Sort(cps)
	for _, c := range cps {
		v := variants[c]
		if !protectedByVariant(v, unicodeRanges, excludeRanges) {
			continue
		}
		preserved = append(preserved, v)
		similarity[c] = v.Scores
	}

	return &fontdedup.ShapeAwareResult{
		Result:            *res,
		PreservedVariants: preserved,
		Similarity:        similarity,
	}, nil
}

// protectedByVariant reports whether the variant's code point reached the
// variant-preservation rule, rather than being kept by an exclude range
// or by falling outside the deduplication scope.
func protectedByVariant(v *fontdedup.ShapeVariant, unicodeRanges, excludeRanges []fontdedup.Range) bool {
	if fontdedup.InRanges(excludeRanges, v.Codepoint) {
		return false
	}
	if unicodeRanges != nil && !fontdedup.InRanges(unicodeRanges, v.Codepoint) {
		return false
	}
	return true
}

// partition runs the per-code-point decision over all fonts in priority
// order.  The variants map may be nil for basic deduplication.
//
// The outcome does not depend on the iteration order over a single font's
// code points: the range checks are pure per-code-point predicates, and
// the claimed set only ever grows, with at most one claim per code point.
func partition(fonts []string, priority []string, unicodeRanges, excludeRanges []fontdedup.Range, variants map[rune]*fontdedup.ShapeVariant) (*fontdedup.Result, error) {
	order := ResolveOrder(fonts, priority)

	codepoints := make(map[string]map[rune]bool, len(fonts))
	for _, path := range fonts {
		info, err := analyze.Survey(path)
		if err != nil {
			return nil, err
		}
		codepoints[path] = info.Codepoints
	}

	res := &fontdedup.Result{
		Kept:    make(map[string]map[rune]bool, len(fonts)),
		Removed: make(map[string]map[rune]bool, len(fonts)),
	}
	for _, path := range fonts {
		res.Kept[path] = make(map[rune]bool)
		res.Removed[path] = make(map[rune]bool)
	}

	claimed := make(map[rune]bool)
	for _, path := range order {
		for c := range codepoints[path] {
			switch {
			case fontdedup.InRanges(excludeRanges, c):
				// Exclusion dominates all other rules.
				res.Kept[path][c] = true
			case unicodeRanges != nil && !fontdedup.InRanges(unicodeRanges, c):
				// Outside the deduplication scope.
				res.Kept[path][c] = true
			case variants != nil && variants[c] != nil:
				// Shape variants stay in every font and never enter the
				// claimed set, so they cannot shadow other code points.
				res.Kept[path][c] = true
			case !claimed[c]:
				res.Kept[path][c] = true
				claimed[c] = true
			default:
				res.Removed[path][c] = true
			}
		}
	}

	fontdedup.Logger().Debug("deduplication finished",
		"fonts", len(fonts),
		"claimed", len(claimed))
	return res, nil
}
