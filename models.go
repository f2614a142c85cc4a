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

package fontdedup

import "seehuhn.de/go/sfnt/glyph"

// FontInfo describes one surveyed font file.
//
// The Path identifies the font throughout this module.  Codepoints is the
// key set of the font's best cmap subtable; it may be empty if the font
// has no usable character map.
type FontInfo struct {
	Path       string
	FamilyName string
	GlyphCount int
	Codepoints map[rune]bool
}

// GlyphInfo identifies a single mapped glyph in a font.  Width is the
// advance width in PDF glyph space units (1/1000 em).
type GlyphInfo struct {
	Codepoint rune
	Name      string
	GID       glyph.ID
	Width     float64
}

// BBox is a glyph outline bounding box in font units.
type BBox struct {
	XMin, YMin, XMax, YMax float64
}

// GlyphOutline is the recorded outline of one glyph.
//
// Data is a canonical serialization of the glyph's path commands: equal
// bytes imply an identical command sequence.  Outlines are extracted on
// demand and not cached.
type GlyphOutline struct {
	Codepoint rune
	FontPath  string
	Data      []byte
	BBox      BBox
}

// FontPair is an unordered pair of fonts, stored in input list order.
type FontPair struct {
	First, Second string
}

// ShapeVariant records a code point which two or more fonts draw
// differently.  Fonts lists the fonts sharing the code point, in input
// order; Scores holds the pairwise outline similarity for each font pair.
type ShapeVariant struct {
	Codepoint rune
	Fonts     []string
	Scores    map[FontPair]float64
}

// DuplicateReport lists code points which occur in more than one of the
// analyzed fonts, without regard to glyph shape.
type DuplicateReport struct {
	Fonts      []*FontInfo
	Duplicates map[rune][]string
}

// VariantReport is the outcome of shape-aware analysis: shared code
// points partitioned into true duplicates (identical outlines everywhere)
// and shape variants.
type VariantReport struct {
	Fonts          []*FontInfo
	Variants       []*ShapeVariant
	TrueDuplicates map[rune][]string
}

// AnalysisReport is the interface satisfied by [DuplicateReport] and
// [VariantReport].  Consumers dispatch on the concrete type.
type AnalysisReport interface {
	isAnalysisReport()
}

func (*DuplicateReport) isAnalysisReport() {}
func (*VariantReport) isAnalysisReport()   {}

// Result describes a deduplication outcome.  For every input font,
// each of the font's original code points appears in exactly one of
// Kept[path] and Removed[path].
type Result struct {
	Kept    map[string]map[rune]bool
	Removed map[string]map[rune]bool
}

// ShapeAwareResult extends [Result] with the shape variants which were
// preserved in all fonts, and the pairwise similarity scores gathered
// while classifying shared code points.
type ShapeAwareResult struct {
	Result
	PreservedVariants []*ShapeVariant
	Similarity        map[rune]map[FontPair]float64
}

// DedupResult is the interface satisfied by [Result] and
// [ShapeAwareResult].  Consumers needing more than the kept/removed sets
// dispatch on the concrete type.
type DedupResult interface {
	KeptGlyphs() map[string]map[rune]bool
	RemovedGlyphs() map[string]map[rune]bool

	isDedupResult()
}

// KeptGlyphs returns, per font path, the code points the font retains.
func (r *Result) KeptGlyphs() map[string]map[rune]bool { return r.Kept }

// RemovedGlyphs returns, per font path, the code points stripped from the
// font.
func (r *Result) RemovedGlyphs() map[string]map[rune]bool { return r.Removed }

func (r *Result) isDedupResult() {}

// ValidationResult is the outcome of checking an output font.
type ValidationResult struct {
	IsValid  bool
	Errors   []string
	Warnings []string
}
