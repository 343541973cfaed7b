package expand

//go:generate go tool stringer -type=Kind -output=kind_string.go
//go:generate go tool stringer -type=Scope -linecomment -output=scope_string.go

// Kind classifies a Token.
type Kind int

const (
	_ Kind = iota // zero value is an invalid Kind

	KindKeyword
	KindIdent
	KindPunct
	KindGroup
	KindBlock
)

// Delim is the delimiter pair of a group token.
type Delim int

const (
	DelimNone Delim = iota
	DelimParen
	DelimBrace
)

func (d Delim) open() string {
	switch d {
	case DelimParen:
		return "("
	case DelimBrace:
		return "{"
	default:
		return ""
	}
}

func (d Delim) close() string {
	switch d {
	case DelimParen:
		return ")"
	case DelimBrace:
		return "}"
	default:
		return ""
	}
}

// Scope is the kind of block an invocation appears in.
type Scope int

const (
	// ScopePackage is the top level of a file.
	ScopePackage Scope = iota // package
	// ScopeFunction is any block inside a function body.
	ScopeFunction // function
)
