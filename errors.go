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

// NotFoundError indicates that an input font file does not exist.
type NotFoundError struct {
	Path string
}

func (err *NotFoundError) Error() string {
	return "font file not found: " + err.Path
}

// InvalidFormatError indicates that a file could not be parsed as an
// OpenType or TrueType font.
type InvalidFormatError struct {
	Path string
	Err  error
}

func (err *InvalidFormatError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	return "not a valid font file: " + err.Path + middle
}

func (err *InvalidFormatError) Unwrap() error {
	return err.Err
}

// InvalidInputError indicates that a caller-supplied argument is outside
// its allowed domain, for example an empty font list, a similarity
// threshold outside [0, 1], or a malformed code point range.
type InvalidInputError struct {
	Reason string
}

func (err *InvalidInputError) Error() string {
	return "invalid input: " + err.Reason
}
