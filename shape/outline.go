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

// Package shape extracts glyph outlines and classifies shared code points
// as true duplicates or shape variants.
package shape

import (
	"bytes"
	"strconv"

	geompath "seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/fontdedup"
	"seehuhn.de/go/fontdedup/internal/fontfile"
)

// ExtractOutline extracts the outline of the glyph mapped to codepoint in
// the font at path.
//
// The result is nil, with no error, if the font does not map the code
// point or the mapped glyph does not exist.  Missing and unparsable font
// files yield the same errors as [seehuhn.de/go/fontdedup/analyze.Survey].
func ExtractOutline(path string, codepoint rune) (*fontdedup.GlyphOutline, error) {
	font, err := fontfile.Open(path)
	if err != nil {
		return nil, err
	}
	return outlineFromFont(font, path, codepoint), nil
}

// outlineFromFont extracts an outline from an already opened font.
func outlineFromFont(font *sfnt.Font, path string, codepoint rune) *fontdedup.GlyphOutline {
	subtable := fontfile.BestCmap(font)
	if subtable == nil {
		return nil
	}
	gid := subtable.Lookup(codepoint)
	if gid == 0 {
		return nil
	}
	// The cmap may reference glyphs beyond the glyph table.
	if int(gid) >= font.NumGlyphs() || font.Outlines == nil {
		return nil
	}

	data, bbox := encodePath(font.Outlines.Path(gid))
	return &fontdedup.GlyphOutline{
		Codepoint: codepoint,
		FontPath:  path,
		Data:      data,
		BBox:      bbox,
	}
}

// encodePath serializes a glyph path into a canonical byte form and
// computes the bounding box over all command coordinates.  The encoding
// is deterministic for identical command sequences, so byte equality of
// two encodings implies equality of the underlying commands.
func encodePath(p geompath.Path) ([]byte, fontdedup.BBox) {
	var buf bytes.Buffer
	var bbox fontdedup.BBox
	empty := true

	grow := func(points []vec.Vec2) {
		for _, pt := range points {
			if empty {
				bbox = fontdedup.BBox{XMin: pt.X, YMin: pt.Y, XMax: pt.X, YMax: pt.Y}
				empty = false
				continue
			}
			bbox.XMin = min(bbox.XMin, pt.X)
			bbox.YMin = min(bbox.YMin, pt.Y)
			bbox.XMax = max(bbox.XMax, pt.X)
			bbox.YMax = max(bbox.YMax, pt.Y)
		}
	}
	emit := func(op byte, points []vec.Vec2) {
		buf.WriteByte(op)
		for _, pt := range points {
			buf.WriteByte(' ')
			buf.WriteString(strconv.FormatFloat(pt.X, 'g', -1, 64))
			buf.WriteByte(' ')
			buf.WriteString(strconv.FormatFloat(pt.Y, 'g', -1, 64))
		}
		buf.WriteByte('\n')
		grow(points)
	}

	for cmd, points := range p {
		switch cmd {
		case geompath.CmdMoveTo:
			emit('M', points[:1])
		case geompath.CmdLineTo:
			emit('L', points[:1])
		case geompath.CmdQuadTo:
			emit('Q', points[:2])
		case geompath.CmdCubeTo:
			emit('C', points[:3])
		case geompath.CmdClose:
			emit('Z', nil)
		}
	}

	return buf.Bytes(), bbox
}
