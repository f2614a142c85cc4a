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
	"errors"
	"testing"

	"seehuhn.de/go/fontdedup"
	"seehuhn.de/go/fontdedup/internal/testfont"
)

func TestExtractOutline(t *testing.T) {
	dir := t.TempDir()
	path := testfont.Regular(t, dir)

	outline, err := ExtractOutline(path, 'A')
	if err != nil {
		t.Fatal(err)
	}
	if outline == nil {
		t.Fatal("no outline for U+0041")
	}
	if outline.Codepoint != 'A' || outline.FontPath != path {
		t.Errorf("wrong outline metadata: %+v", outline)
	}
	if len(outline.Data) == 0 {
		t.Error("empty outline data")
	}
	bbox := outline.BBox
	if bbox.XMin >= bbox.XMax || bbox.YMin >= bbox.YMax {
		t.Errorf("degenerate bounding box %+v", bbox)
	}
}

func TestExtractOutlineUnmapped(t *testing.T) {
	dir := t.TempDir()
	path := testfont.Regular(t, dir)

	// Go Regular has no CJK glyphs.
	outline, err := ExtractOutline(path, 0x4E00)
	if err != nil {
		t.Fatal(err)
	}
	if outline != nil {
		t.Errorf("got outline for unmapped code point: %+v", outline)
	}
}

func TestSimilarity(t *testing.T) {
	dir := t.TempDir()
	regular := testfont.Regular(t, dir)
	copyPath := testfont.RegularCopy(t, dir, "copy.ttf")
	bold := testfont.Bold(t, dir)

	a1, err := ExtractOutline(regular, 'A')
	if err != nil {
		t.Fatal(err)
	}
	a2, err := ExtractOutline(copyPath, 'A')
	if err != nil {
		t.Fatal(err)
	}
	a3, err := ExtractOutline(bold, 'A')
	if err != nil {
		t.Fatal(err)
	}

	if s := Similarity(a1, a1); s != 1.0 {
		t.Errorf("Similarity(x, x) = %g, want 1.0", s)
	}
	if s := Similarity(a1, a2); s != 1.0 {
		t.Errorf("identical fonts: Similarity = %g, want 1.0", s)
	}
	if s := Similarity(a1, a3); s != 0.0 {
		t.Errorf("regular vs. bold: Similarity = %g, want 0.0", s)
	}
	if Similarity(a1, a3) != Similarity(a3, a1) {
		t.Error("Similarity is not symmetric")
	}
}

func TestFindVariants(t *testing.T) {
	dir := t.TempDir()
	regular := testfont.Regular(t, dir)
	bold := testfont.Bold(t, dir)

	rep, err := FindVariants([]string{regular, bold}, 1.0, 0)
	if err != nil {
		t.Fatal(err)
	}

	var variantA *fontdedup.ShapeVariant
	for _, v := range rep.Variants {
		if v.Codepoint == 'A' {
			variantA = v
		}
	}
	if variantA == nil {
		t.Fatal("U+0041 not reported as a shape variant")
	}
	if len(variantA.Fonts) != 2 {
		t.Errorf("variant lists %d fonts, want 2", len(variantA.Fonts))
	}
	pair := fontdedup.FontPair{First: regular, Second: bold}
	if s := variantA.Scores[pair]; s != 0.0 {
		t.Errorf("variant score = %g, want 0.0", s)
	}
	if rep.TrueDuplicates['A'] != nil {
		t.Error("U+0041 reported as both variant and true duplicate")
	}
}

func TestFindVariantsTrueDuplicates(t *testing.T) {
	dir := t.TempDir()
	font1 := testfont.Regular(t, dir)
	font2 := testfont.RegularCopy(t, dir, "copy.ttf")

	rep, err := FindVariants([]string{font1, font2}, 1.0, 0)
	if err != nil {
		t.Fatal(err)
	}

	if len(rep.Variants) != 0 {
		t.Errorf("identical fonts produced %d variants", len(rep.Variants))
	}
	if len(rep.TrueDuplicates) == 0 {
		t.Fatal("identical fonts produced no true duplicates")
	}
	fonts := rep.TrueDuplicates['A']
	if len(fonts) != 2 {
		t.Errorf("U+0041 duplicated in %d fonts, want 2", len(fonts))
	}
}

func TestFindVariantsLimit(t *testing.T) {
	dir := t.TempDir()
	regular := testfont.Regular(t, dir)
	bold := testfont.Bold(t, dir)

	rep, err := FindVariants([]string{regular, bold}, 1.0, 3)
	if err != nil {
		t.Fatal(err)
	}
	total := len(rep.Variants) + len(rep.TrueDuplicates)
	if total > 3 {
		t.Errorf("analyzed %d code points, want at most 3", total)
	}

	full, err := FindVariants([]string{regular, bold}, 1.0, 0)
	if err != nil {
		t.Fatal(err)
	}
	fullTotal := len(full.Variants) + len(full.TrueDuplicates)
	if fullTotal <= 3 {
		t.Fatalf("fonts share only %d code points, test needs more", fullTotal)
	}
}

func TestFindVariantsBadInput(t *testing.T) {
	dir := t.TempDir()
	path := testfont.Regular(t, dir)

	var invalid *fontdedup.InvalidInputError
	_, err := FindVariants(nil, 1.0, 0)
	if !errors.As(err, &invalid) {
		t.Errorf("empty font list: got %v, want *InvalidInputError", err)
	}
	_, err = FindVariants([]string{path}, 1.5, 0)
	if !errors.As(err, &invalid) {
		t.Errorf("threshold out of range: got %v, want *InvalidInputError", err)
	}
	_, err = FindVariants([]string{path}, -0.1, 0)
	if !errors.As(err, &invalid) {
		t.Errorf("negative threshold: got %v, want *InvalidInputError", err)
	}
}
