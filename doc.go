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

// Package fontdedup removes duplicate glyphs from sets of TrueType and
// OpenType font files.
//
// Given several fonts with overlapping Unicode coverage, the engine in
// seehuhn.de/go/fontdedup/dedup decides, per code point, which font keeps
// its glyph; the subsetter in seehuhn.de/go/fontdedup/subset then writes
// slimmed copies of the input fonts.  Fonts are identified by their file
// path throughout; two handles referring to the same path are the same
// font.
//
// The optional shape-aware mode compares glyph outlines byte-for-byte
// across fonts.  Code points whose outlines differ between fonts (for
// example regional Han variants sharing one code point) are kept in every
// font that draws them differently, instead of being collapsed onto the
// highest-priority font.
//
// This package holds the data model shared by the sub-packages:
//
//   - [FontInfo] describes one surveyed font file.
//   - [GlyphOutline] is a glyph's serialized outline, used for shape
//     comparison.
//   - [ShapeVariant] records a code point drawn differently by two or
//     more fonts.
//   - [Result] and [ShapeAwareResult] are the two deduplication outcomes;
//     both implement the sealed [DedupResult] interface.
//   - [ValidationResult] is returned by the output validator.
package fontdedup
