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

// Package subset writes copies of font files reduced to a chosen set of
// code points.
package subset

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/fontdedup"
	"seehuhn.de/go/fontdedup/internal/fontfile"
)

// Subset writes a copy of the font at srcPath to outPath, keeping only
// the glyphs reachable from the given code points plus .notdef.  Parent
// directories of outPath are created as needed.  The output path is
// returned.
//
// Code points outside the Unicode scalar range are silently dropped from
// the retain set.  Code points the source font does not map are ignored;
// use [seehuhn.de/go/fontdedup/validate.GlyphCoverage] to verify the
// result against an expected set.
//
// Name records and the font's original timestamps are carried over
// unchanged.  OpenType layout tables index glyphs by position and are not
// re-indexed by the subsetting library, so they are dropped from the
// output rather than left pointing at the wrong glyphs.
func Subset(srcPath string, keep map[rune]bool, outPath string) (string, error) {
	font, err := fontfile.Open(srcPath)
	if err != nil {
		return "", err
	}

	cps := make([]rune, 0, len(keep))
	for c := range keep {
		if c >= 0 && c <= unicode.MaxRune {
			cps = append(cps, c)
		}
	}
	slices.Sort(cps)

	subtable := fontfile.BestCmap(font)

	// Glyph 0 stays first; remaining glyphs are numbered in code point
	// order so the output is deterministic.
	glyphs := []glyph.ID{0}
	newGID := map[glyph.ID]glyph.ID{0: 0}
	encoding := make(map[rune]glyph.ID)
	for _, c := range cps {
		if subtable == nil {
			break
		}
		gid := subtable.Lookup(c)
		if gid == 0 || int(gid) >= font.NumGlyphs() {
			continue
		}
		ng, ok := newGID[gid]
		if !ok {
			ng = glyph.ID(len(glyphs))
			glyphs = append(glyphs, gid)
			newGID[gid] = ng
		}
		encoding[c] = ng
	}

	font.CMapTable = nil
	font.Gdef = nil
	font.Gsub = nil
	font.Gpos = nil
	out := font.Subset(glyphs)
	out.CMapTable = makeCmap(encoding)

	if dir := filepath.Dir(outPath); dir != "." {
		err = os.MkdirAll(dir, 0755)
		if err != nil {
			return "", err
		}
	}
	fd, err := os.Create(outPath)
	if err != nil {
		return "", err
	}
	_, err = out.Write(fd)
	if err != nil {
		fd.Close()
		return "", err
	}
	err = fd.Close()
	if err != nil {
		return "", err
	}

	fontdedup.Logger().Debug("wrote subset font",
		"src", srcPath,
		"out", outPath,
		"glyphs", len(glyphs))
	return outPath, nil
}

// makeCmap builds the character map of the subset font.  Code points in
// the basic multilingual plane fit a format 4 subtable; if any
// supplementary code point is retained, a format 12 subtable is used for
// the whole mapping instead.
func makeCmap(encoding map[rune]glyph.ID) cmap.Table {
	needWide := false
	for c := range encoding {
		if c > 0xFFFF {
			needWide = true
			break
		}
	}

	if needWide {
		sub := cmap.Format12{}
		for c, gid := range encoding {
			sub[uint32(c)] = gid
		}
		return cmap.Table{
			{PlatformID: 3, EncodingID: 10}: sub.Encode(0),
		}
	}

	sub := cmap.Format4{}
	for c, gid := range encoding {
		sub[uint16(c)] = gid
	}
	return cmap.Table{
		{PlatformID: 3, EncodingID: 1}: sub.Encode(0),
	}
}

// Batch applies [Subset] to every font of a deduplication result.  Output
// files are written to outDir under the name "{stem}{suffix}{ext}" and
// processed in sorted path order.  The list of written files is returned.
// If two source fonts would map to the same output file, Batch returns a
// [fontdedup.InvalidInputError] before writing anything.
func Batch(res fontdedup.DedupResult, outDir, suffix string) ([]string, error) {
	err := os.MkdirAll(outDir, 0755)
	if err != nil {
		return nil, err
	}

	kept := res.KeptGlyphs()
	paths := maps.Keys(kept)
	slices.Sort(paths)

	// Source fonts in different directories can share a base name;
	// refuse to overwrite one output with another.
	target := make(map[string]string, len(paths))
	for _, srcPath := range paths {
		outPath := filepath.Join(outDir, outputName(srcPath, suffix))
		if prev, ok := target[outPath]; ok {
			return nil, &fontdedup.InvalidInputError{
				Reason: fmt.Sprintf("fonts %q and %q both map to output file %q",
					prev, srcPath, outPath),
			}
		}
		target[outPath] = srcPath
	}

	var written []string
	for _, srcPath := range paths {
		outPath := filepath.Join(outDir, outputName(srcPath, suffix))
		_, err := Subset(srcPath, kept[srcPath], outPath)
		if err != nil {
			return nil, err
		}
		written = append(written, outPath)
	}
	return written, nil
}

// OutputName returns the file name used by [Batch] for a source font.
func OutputName(srcPath, suffix string) string {
	return outputName(srcPath, suffix)
}

func outputName(srcPath, suffix string) string {
	base := filepath.Base(srcPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return stem + suffix + ext
}
