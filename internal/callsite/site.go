package callsite

import (
	"encoding/binary"
	"fmt"
	"go/token"
	"path/filepath"
)

// Site identifies one macro invocation within a compilation.
type Site struct {
	// File is the base name of the source file. Only files in the same
	// directory share a package scope, so the directory is not part of the
	// identity.
	File string
	// Line is the 1-based line of the macro name.
	Line int
	// Column is the 1-based byte column of the macro name.
	Column int
}

// FromPosition builds a Site from a go/token position.
func FromPosition(pos token.Position) Site {
	return Site{
		File:   filepath.Base(pos.Filename),
		Line:   pos.Line,
		Column: pos.Column,
	}
}

// Bytes returns the canonical encoding of the site:
//
//	uint16 len(File) | File | uint32 Line | uint32 Column
//
// All integers are big-endian. The length prefix keeps the encoding
// injective.
func (s Site) Bytes() []byte {
	buf := make([]byte, 0, 2+len(s.File)+4+4)
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(s.File)))
	buf = append(buf, s.File...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(s.Line))
	buf = binary.BigEndian.AppendUint32(buf, uint32(s.Column))

	return buf
}

// String returns the site in file:line:col form.
func (s Site) String() string {
	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
}
