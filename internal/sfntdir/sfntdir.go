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

// Package sfntdir reads the table directory of an sfnt font file.
//
// Only the directory structure itself is decoded; table contents are left
// to seehuhn.de/go/sfnt.  The structural validator uses this package to
// check table presence and the "head" magic number without having to
// fully parse the font.
package sfntdir

import (
	"encoding/binary"
	"errors"
)

// HeadMagicNumber is the value required in the magicNumber field of every
// valid "head" table.
const HeadMagicNumber = 0x5F0F3CF5

var errMalformed = errors.New("sfntdir: malformed table directory")

// Record locates one table within the font file.
type Record struct {
	Offset uint32
	Length uint32
}

// Directory is the decoded table directory of an sfnt file.
type Directory struct {
	ScalerType uint32
	Tables     map[string]Record

	data []byte
}

// Decode parses the table directory from a complete font file.
func Decode(data []byte) (*Directory, error) {
	if len(data) < 12 {
		return nil, errMalformed
	}
	scalerType := binary.BigEndian.Uint32(data[0:4])
	numTables := int(binary.BigEndian.Uint16(data[4:6]))
	if len(data) < 12+16*numTables {
		return nil, errMalformed
	}

	dir := &Directory{
		ScalerType: scalerType,
		Tables:     make(map[string]Record, numTables),
		data:       data,
	}
	for i := 0; i < numTables; i++ {
		rec := data[12+16*i : 12+16*(i+1)]
		tag := string(rec[0:4])
		offset := binary.BigEndian.Uint32(rec[8:12])
		length := binary.BigEndian.Uint32(rec[12:16])
		if int64(offset)+int64(length) > int64(len(data)) {
			return nil, errMalformed
		}
		dir.Tables[tag] = Record{Offset: offset, Length: length}
	}
	return dir, nil
}

// Has reports whether the directory lists a table with the given tag.
func (dir *Directory) Has(tag string) bool {
	_, ok := dir.Tables[tag]
	return ok
}

// HeadMagic returns the magicNumber field of the "head" table.  The
// second return value is false if the table is absent or too short.
func (dir *Directory) HeadMagic() (uint32, bool) {
	rec, ok := dir.Tables["head"]
	if !ok || rec.Length < 16 {
		return 0, false
	}
	// version, fontRevision and checkSumAdjustment precede magicNumber.
	return binary.BigEndian.Uint32(dir.data[rec.Offset+12 : rec.Offset+16]), true
}
