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

package subset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/fontdedup"
	"seehuhn.de/go/fontdedup/analyze"
	"seehuhn.de/go/fontdedup/internal/sfntdir"
	"seehuhn.de/go/fontdedup/internal/testfont"
	"seehuhn.de/go/fontdedup/validate"
)

func TestSubsetRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := testfont.Regular(t, dir)
	out := filepath.Join(dir, "out", "subset.ttf")

	keep := map[rune]bool{'A': true, 'B': true, 'x': true}
	written, err := Subset(src, keep, out)
	if err != nil {
		t.Fatal(err)
	}
	if written != out {
		t.Errorf("wrote to %q, want %q", written, out)
	}

	info, err := analyze.Survey(out)
	if err != nil {
		t.Fatal(err)
	}
	// The subset maps exactly the retained code points.
	if d := cmp.Diff(keep, info.Codepoints); d != "" {
		t.Errorf("subset code points differ (-want +got):\n%s", d)
	}

	res := validate.GlyphCoverage(out, keep)
	if !res.IsValid {
		t.Errorf("subset font fails validation: %v", res.Errors)
	}

	fi, err := os.Stat(src)
	if err != nil {
		t.Fatal(err)
	}
	fo, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if fo.Size() >= fi.Size() {
		t.Errorf("subset font is not smaller: %d >= %d bytes",
			fo.Size(), fi.Size())
	}
}

// TestSubsetRequiredTables checks that subset output is a complete font
// file, not just the minimal table set needed for embedding: the name and
// post tables in particular must survive.
func TestSubsetRequiredTables(t *testing.T) {
	dir := t.TempDir()
	src := testfont.Regular(t, dir)
	out := filepath.Join(dir, "subset.ttf")

	_, err := Subset(src, map[rune]bool{'A': true}, out)
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	tables, err := sfntdir.Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	for _, tag := range []string{"cmap", "head", "hhea", "hmtx", "maxp", "name", "post"} {
		if !tables.Has(tag) {
			t.Errorf("table %q missing from subset font", tag)
		}
	}

	res := validate.Format(out)
	if !res.IsValid {
		t.Errorf("subset font fails format validation: %v", res.Errors)
	}
}

func TestSubsetIgnoresUnmapped(t *testing.T) {
	dir := t.TempDir()
	src := testfont.Regular(t, dir)
	out := filepath.Join(dir, "subset.ttf")

	// U+4E00 is not in Go Regular and must be silently skipped.
	keep := map[rune]bool{'A': true, 0x4E00: true}
	_, err := Subset(src, keep, out)
	if err != nil {
		t.Fatal(err)
	}

	info, err := analyze.Survey(out)
	if err != nil {
		t.Fatal(err)
	}
	if !info.Codepoints['A'] {
		t.Error("retained code point U+0041 is missing")
	}
	if info.Codepoints[0x4E00] {
		t.Error("unmapped code point U+4E00 appeared in the subset")
	}
}

func TestSubsetMissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := Subset("no-such-font.ttf", map[rune]bool{'A': true},
		filepath.Join(dir, "out.ttf"))
	var notFound *fontdedup.NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("got %v, want *NotFoundError", err)
	}
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	font1 := testfont.Regular(t, dir)
	font2 := testfont.Bold(t, dir)
	outDir := filepath.Join(dir, "out")

	res := &fontdedup.Result{
		Kept: map[string]map[rune]bool{
			font1: {'A': true, 'B': true},
			font2: {'C': true},
		},
		Removed: map[string]map[rune]bool{
			font1: {'C': true},
			font2: {'A': true, 'B': true},
		},
	}

	written, err := Batch(res, outDir, "_dedup")
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		filepath.Join(outDir, "gobold_dedup.ttf"),
		filepath.Join(outDir, "goregular_dedup.ttf"),
	}
	if d := cmp.Diff(want, written); d != "" {
		t.Errorf("output files differ (-want +got):\n%s", d)
	}

	info, err := analyze.Survey(written[1])
	if err != nil {
		t.Fatal(err)
	}
	if !info.Codepoints['A'] || !info.Codepoints['B'] || info.Codepoints['C'] {
		t.Errorf("wrong code points in %s: %v", written[1], info.Codepoints)
	}
}

func TestBatchNameCollision(t *testing.T) {
	dir := t.TempDir()
	for _, sub := range []string{"one", "two"} {
		err := os.MkdirAll(filepath.Join(dir, sub), 0755)
		if err != nil {
			t.Fatal(err)
		}
	}
	font1 := testfont.Regular(t, filepath.Join(dir, "one"))
	font2 := testfont.RegularCopy(t, filepath.Join(dir, "two"), "goregular.ttf")
	outDir := filepath.Join(dir, "out")

	res := &fontdedup.Result{
		Kept: map[string]map[rune]bool{
			font1: {'A': true},
			font2: {'B': true},
		},
		Removed: map[string]map[rune]bool{
			font1: {},
			font2: {},
		},
	}

	_, err := Batch(res, outDir, "_dedup")
	var invalid *fontdedup.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("got %v, want *InvalidInputError", err)
	}
	if _, statErr := os.Stat(filepath.Join(outDir, "goregular_dedup.ttf")); statErr == nil {
		t.Error("colliding output file was written anyway")
	}
}

func TestOutputName(t *testing.T) {
	cases := []struct {
		src, suffix, want string
	}{
		{"fonts/goregular.ttf", "_dedup", "goregular_dedup.ttf"},
		{"a.otf", "_dedup", "a_dedup.otf"},
		{"noext", "_x", "noext_x"},
	}
	for _, test := range cases {
		if got := OutputName(test.src, test.suffix); got != test.want {
			t.Errorf("OutputName(%q, %q) = %q, want %q",
				test.src, test.suffix, got, test.want)
		}
	}
}
