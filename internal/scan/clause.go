package scan

import (
	"bytes"
	"go/scanner"
	"go/token"
)

// PackageClause locates the package clause of src. It returns the clause's
// line and the offset just past the newline that ends it. ok is false when
// src has no package clause or nothing follows it.
func PackageClause(filename string, src []byte) (line, end int, ok bool) {
	fset := token.NewFileSet()
	file := fset.AddFile(filename, -1, len(src))

	var s scanner.Scanner
	s.Init(file, src, nil, 0)

	for {
		pos, tok, lit := s.Scan()
		switch tok {
		case token.EOF:
			return 0, 0, false
		case token.PACKAGE:
			line = fset.Position(pos).Line
			continue
		case token.IDENT:
			if line == 0 {
				return 0, 0, false
			}

			after := file.Offset(pos) + len(lit)

			nl := bytes.IndexByte(src[after:], '\n')
			if nl < 0 || after+nl+1 == len(src) {
				return 0, 0, false
			}

			return line, after + nl + 1, true
		default:
			return 0, 0, false
		}
	}
}
