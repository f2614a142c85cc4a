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

package validate

import (
	"fmt"
	"strings"
	"testing"

	"seehuhn.de/go/fontdedup/internal/testfont"
)

func TestFormatValid(t *testing.T) {
	dir := t.TempDir()
	path := testfont.Regular(t, dir)

	res := Format(path)
	if !res.IsValid {
		t.Fatalf("Go Regular fails validation: %v", res.Errors)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", res.Warnings)
	}
}

func TestFormatMissingFile(t *testing.T) {
	res := Format("no-such-file.ttf")
	if res.IsValid {
		t.Fatal("missing file validates")
	}
	if !containsSubstring(res.Errors, "does not exist") {
		t.Errorf("wrong errors: %v", res.Errors)
	}
}

func TestFormatEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := testfont.Write(t, dir, "empty.ttf", nil)

	res := Format(path)
	if res.IsValid {
		t.Fatal("empty file validates")
	}
	if !containsSubstring(res.Errors, "is empty") {
		t.Errorf("wrong errors: %v", res.Errors)
	}
}

func TestFormatGarbage(t *testing.T) {
	dir := t.TempDir()
	path := testfont.Write(t, dir, "garbage.ttf",
		[]byte("this is not a font file at all, not even close"))

	res := Format(path)
	if res.IsValid {
		t.Fatal("garbage file validates")
	}
}

func TestGlyphCoverage(t *testing.T) {
	dir := t.TempDir()
	path := testfont.Regular(t, dir)

	expected := map[rune]bool{'A': true, 'z': true, '0': true}
	res := GlyphCoverage(path, expected)
	if !res.IsValid {
		t.Errorf("coverage check failed: %v", res.Errors)
	}
}

func TestGlyphCoverageMissing(t *testing.T) {
	dir := t.TempDir()
	path := testfont.Regular(t, dir)

	// Plane 16 code points are certainly not in Go Regular.
	expected := map[rune]bool{'A': true, 0x10FF00: true}
	res := GlyphCoverage(path, expected)
	if res.IsValid {
		t.Fatal("missing code point passes coverage check")
	}
	if !containsSubstring(res.Errors, "U+10FF00") {
		t.Errorf("missing code point not named: %v", res.Errors)
	}
}

func TestGlyphCoverageTruncation(t *testing.T) {
	dir := t.TempDir()
	path := testfont.Regular(t, dir)

	// 12 missing code points exceed the list limit, so the message
	// shows the first five and the total.
	expected := make(map[rune]bool)
	for i := 0; i < 12; i++ {
		expected[rune(0x10FF00+i)] = true
	}
	res := GlyphCoverage(path, expected)
	if res.IsValid {
		t.Fatal("missing code points pass coverage check")
	}
	if !containsSubstring(res.Errors, "(12 total)") {
		t.Errorf("truncated list does not report the total: %v", res.Errors)
	}
	if containsSubstring(res.Errors, "U+10FF06") {
		t.Errorf("truncated list shows too many entries: %v", res.Errors)
	}
}

func TestTruncated(t *testing.T) {
	var items []string
	for i := 0; i < 7; i++ {
		items = append(items, fmt.Sprintf("x%d", i))
	}

	if got := truncated(items[:3], 5, 3); got != "x0, x1, x2" {
		t.Errorf("short list: got %q", got)
	}
	want := "x0, x1, x2 ... (7 total)"
	if got := truncated(items, 5, 3); got != want {
		t.Errorf("long list: got %q, want %q", got, want)
	}
}

func containsSubstring(msgs []string, substr string) bool {
	for _, msg := range msgs {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}
