package scan

import (
	"fmt"
	"go/scanner"
	"go/token"

	"exclusive/internal/callsite"
	"exclusive/internal/diagnostic"
	"exclusive/internal/expand"
)

// DefaultMacro is the macro name recognized when none is configured.
const DefaultMacro = "exclusive"

// Invocation is one `macro! { ... }` occurrence.
type Invocation struct {
	// Site is the call-site identity used for name allocation.
	Site callsite.Site
	// Pos is the full position of the macro name.
	Pos token.Position
	// Scope is the scope the invocation expands into.
	Scope expand.Scope
	// Start and End delimit the whole invocation as byte offsets [Start, End).
	Start, End int
	// BodyStart and BodyEnd delimit the code between the braces.
	BodyStart, BodyEnd int
	// BodyPos is the position of BodyStart, EndPos the position of End.
	BodyPos, EndPos token.Position
	// Nested holds invocations inside the body, in source order.
	Nested []Invocation
}

// Body returns the invocation's code from src.
func (inv Invocation) Body(src []byte) []byte {
	return src[inv.BodyStart:inv.BodyEnd]
}

// Count returns the number of invocations including nested ones.
func Count(invs []Invocation) int {
	n := len(invs)
	for _, inv := range invs {
		n += Count(inv.Nested)
	}

	return n
}

type frame struct {
	// inv is nil for an ordinary brace.
	inv *Invocation
}

type state int

const (
	stateNone state = iota
	stateName
	stateBang
)

// Scan returns the top-level invocations found in src. Nested invocations are
// attached to their enclosing invocation. filename is used for positions and
// call-site identity.
func Scan(filename string, src []byte, macro string) ([]Invocation, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	if !token.IsIdentifier(macro) {
		diags.AddError(diagnostic.CodeInvalidMacroName,
			fmt.Sprintf("macro name %q is not a valid identifier", macro), token.Position{Filename: filename})

		return nil, diags
	}

	fset := token.NewFileSet()
	file := fset.AddFile(filename, -1, len(src))

	var s scanner.Scanner
	s.Init(file, src, func(pos token.Position, msg string) {
		diags.AddError(diagnostic.CodeScanError, msg, pos)
	}, 0)

	var (
		out     []Invocation
		stack   []frame
		st      state
		nameLit string
		namePos token.Pos
		prevTok token.Token
	)

	missingBody := func() {
		diags.AddError(diagnostic.CodeMissingBody,
			fmt.Sprintf("%s! must be followed by a { ... } body", macro), fset.Position(namePos))
	}

	open := func(lbrace token.Pos) {
		scope := expand.ScopePackage
		if len(stack) > 0 {
			scope = expand.ScopeFunction
		}

		position := fset.Position(namePos)
		inv := &Invocation{
			Site:      callsite.FromPosition(position),
			Pos:       position,
			Scope:     scope,
			Start:     file.Offset(namePos),
			BodyStart: file.Offset(lbrace) + 1,
			BodyPos:   fset.Position(lbrace + 1),
		}
		stack = append(stack, frame{inv: inv})
	}

	closeInvocation := func(inv *Invocation, rbrace token.Pos) {
		inv.BodyEnd = file.Offset(rbrace)
		inv.End = inv.BodyEnd + 1
		inv.EndPos = fset.Position(rbrace + 1)

		for i := len(stack) - 1; i >= 0; i-- {
			if parent := stack[i].inv; parent != nil {
				parent.Nested = append(parent.Nested, *inv)
				return
			}
		}

		out = append(out, *inv)
	}

	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}

		switch st {
		case stateName:
			st = stateNone
			if tok == token.NOT {
				st = stateBang
				prevTok = tok

				continue
			}
		case stateBang:
			st = stateNone
			switch {
			case nameLit == macro && tok == token.LBRACE:
				open(pos)
				prevTok = tok

				continue
			case nameLit == macro:
				missingBody()
			case tok == token.LBRACE && similar(nameLit, macro):
				diags.AddWarning(diagnostic.CodeSimilarName,
					fmt.Sprintf("%s! is not expanded; did you mean %s!?", nameLit, macro), fset.Position(namePos))
			}
		case stateNone:
		}

		switch tok {
		case token.LBRACE:
			stack = append(stack, frame{})
		case token.RBRACE:
			if len(stack) == 0 {
				diags.AddError(diagnostic.CodeUnmatchedBrace, "unmatched }", fset.Position(pos))
				break
			}

			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if top.inv != nil {
				closeInvocation(top.inv, pos)
			}
		case token.IDENT:
			if prevTok != token.PERIOD {
				st = stateName
				nameLit = lit
				namePos = pos
			}
		}

		prevTok = tok
	}

	if st == stateBang && nameLit == macro {
		missingBody()
	}

	for _, f := range stack {
		if f.inv != nil {
			diags.AddError(diagnostic.CodeUnterminated,
				fmt.Sprintf("unterminated %s! invocation", macro), f.inv.Pos)
		}
	}

	return out, diags
}
