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

import (
	"strconv"
	"strings"
	"unicode"
)

// Range is an inclusive code point range.  Ranges supplied to the engine
// may overlap and need not be sorted.
type Range struct {
	Lo, Hi rune
}

// Contains reports whether c lies within the range.
func (r Range) Contains(c rune) bool {
	return c >= r.Lo && c <= r.Hi
}

// InRanges reports whether any of the ranges contains c.
func InRanges(ranges []Range, c rune) bool {
	for _, r := range ranges {
		if r.Contains(c) {
			return true
		}
	}
	return false
}

// ParseRange parses a code point range of the form "START-END", where
// both bounds are decimal or 0x-prefixed hexadecimal numbers, for example
// "0x4E00-0x9FFF".  Bounds must satisfy 0 <= START <= END <= 0x10FFFF.
func ParseRange(s string) (Range, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return Range{}, &InvalidInputError{
			Reason: "range " + strconv.Quote(s) + " is missing the \"-\" separator",
		}
	}
	start, err := parseCodepoint(lo)
	if err != nil {
		return Range{}, &InvalidInputError{
			Reason: "range " + strconv.Quote(s) + " has a malformed start value",
		}
	}
	end, err := parseCodepoint(hi)
	if err != nil {
		return Range{}, &InvalidInputError{
			Reason: "range " + strconv.Quote(s) + " has a malformed end value",
		}
	}
	if start > end {
		return Range{}, &InvalidInputError{
			Reason: "range " + strconv.Quote(s) + " has start > end",
		}
	}
	return Range{Lo: start, Hi: end}, nil
}

func parseCodepoint(s string) (rune, error) {
	s = strings.TrimSpace(s)
	base := 10
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		s = rest
		base = 16
	}
	v, err := strconv.ParseInt(s, base, 32)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > unicode.MaxRune {
		return 0, &InvalidInputError{
			Reason: "code point out of range: " + s,
		}
	}
	return rune(v), nil
}
