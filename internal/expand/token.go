package expand

import "strings"

// Token is one element of an expansion.
type Token struct {
	Kind Kind
	// Text is the spelling of keywords, identifiers and punctuation, or the
	// verbatim caller code of a block token.
	Text string
	// Delim and Children are set for group tokens only.
	Delim    Delim
	Children []Token
}

// Keyword returns a keyword token.
func Keyword(text string) Token { return Token{Kind: KindKeyword, Text: text} }

// Ident returns an identifier token.
func Ident(text string) Token { return Token{Kind: KindIdent, Text: text} }

// Punct returns a punctuation token.
func Punct(text string) Token { return Token{Kind: KindPunct, Text: text} }

// Block returns a token carrying caller code verbatim.
func Block(code string) Token { return Token{Kind: KindBlock, Text: code} }

// Group returns a delimited group around children.
func Group(delim Delim, children ...Token) Token {
	return Token{Kind: KindGroup, Delim: delim, Children: children}
}

// Render returns the source text of tokens. Block tokens are written
// verbatim, except for trailing indentation before a closing brace; the rest
// is spaced so that gofmt can normalize it.
func Render(tokens []Token) string {
	var sb strings.Builder
	render(&sb, tokens)

	return sb.String()
}

func render(sb *strings.Builder, tokens []Token) {
	for i, tok := range tokens {
		if i > 0 && needsSpace(tokens[i-1], tok) {
			sb.WriteByte(' ')
		}

		switch tok.Kind {
		case KindGroup:
			sb.WriteString(tok.Delim.open())
			if tok.Delim == DelimBrace && len(tok.Children) > 0 {
				renderBody(sb, Render(tok.Children))
			} else {
				render(sb, tok.Children)
			}
			sb.WriteString(tok.Delim.close())
		default:
			sb.WriteString(tok.Text)
		}
	}
}

// renderBody writes a brace group's content on lines of its own. A trailing
// line comment in the body must not swallow the closing brace, and the
// indentation that preceded the original closing brace is dropped.
func renderBody(sb *strings.Builder, inner string) {
	inner = strings.TrimRight(inner, " \t")

	if !strings.HasPrefix(inner, "\n") {
		sb.WriteByte('\n')
	}

	sb.WriteString(inner)

	if inner != "" && !strings.HasSuffix(inner, "\n") {
		sb.WriteByte('\n')
	}
}

func needsSpace(prev, next Token) bool {
	switch {
	case next.Kind == KindGroup && next.Delim == DelimParen:
		return false
	case next.Kind == KindPunct && next.Text == ";":
		return false
	case prev.Kind == KindBlock || next.Kind == KindBlock:
		return false
	}

	return true
}
