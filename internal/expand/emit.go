package expand

import "exclusive/internal/callsite"

// Emit wraps body in a never-called function value bound to name.
//
// The result is `var name func() = func() { body }`. In ScopeFunction a
// non-blank name is followed by `; _ = name`.
func Emit(name, body string, scope Scope) []Token {
	tokens := []Token{
		Keyword("var"),
		Ident(name),
		Keyword("func"),
		Group(DelimParen),
		Punct("="),
		Keyword("func"),
		Group(DelimParen),
		Group(DelimBrace, Block(body)),
	}

	if scope == ScopeFunction && name != callsite.Placeholder {
		tokens = append(tokens,
			Punct(";"),
			Ident(callsite.Placeholder),
			Punct("="),
			Ident(name),
		)
	}

	return tokens
}

// Expand allocates a name for site and emits the wrapper around body.
func Expand(site callsite.Site, body string, scope Scope, mode callsite.Mode) []Token {
	return Emit(callsite.Allocate(site, mode), body, scope)
}
