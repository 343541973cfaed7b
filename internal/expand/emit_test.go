package expand

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exclusive/internal/callsite"
)

// typeCheck parses and type-checks src as a single-file package.
func typeCheck(t *testing.T, src string) *types.Package {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "gen.go", src, parser.ParseComments)
	require.NoError(t, err, "source:\n%s", src)

	conf := types.Config{}
	pkg, err := conf.Check("p", fset, []*ast.File{file}, nil)
	require.NoError(t, err, "source:\n%s", src)

	return pkg
}

func TestEmit_PackageScope(t *testing.T) {
	got := Render(Emit("_EXCLUSIVE_01", "const x = 1", ScopePackage))

	assert.Equal(t, "var _EXCLUSIVE_01 func() = func() {\nconst x = 1\n}", got)
}

func TestEmit_FunctionScope(t *testing.T) {
	got := Render(Emit("_EXCLUSIVE_01", "x := 1\n_ = x", ScopeFunction))

	assert.Equal(t, "var _EXCLUSIVE_01 func() = func() {\nx := 1\n_ = x\n}; _ = _EXCLUSIVE_01", got)
}

func TestEmit_PlaceholderHasNoBlankUse(t *testing.T) {
	for _, scope := range []Scope{ScopePackage, ScopeFunction} {
		got := Render(Emit(callsite.Placeholder, "", scope))
		assert.Equal(t, "var _ func() = func() {\n}", got, "scope %s", scope)
	}
}

func TestEmit_TokenSequence(t *testing.T) {
	tokens := Emit("name", "body", ScopePackage)
	require.Len(t, tokens, 8)

	kinds := make([]Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}

	assert.Equal(t, []Kind{
		KindKeyword, KindIdent, KindKeyword, KindGroup,
		KindPunct, KindKeyword, KindGroup, KindGroup,
	}, kinds)

	body := tokens[7]
	assert.Equal(t, DelimBrace, body.Delim)
	require.Len(t, body.Children, 1)
	assert.Equal(t, Block("body"), body.Children[0])
}

func TestExpand_Compiles(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		scope Scope
		mode  callsite.Mode
	}{
		{name: "empty package", body: "", scope: ScopePackage, mode: callsite.ModeHash},
		{name: "empty function", body: "", scope: ScopeFunction, mode: callsite.ModeHash},
		{name: "statements", body: "x := 20\ny := 30\n_, _ = x, y", scope: ScopeFunction, mode: callsite.ModeHash},
		{name: "trailing line comment", body: " // this never runs", scope: ScopePackage, mode: callsite.ModeHash},
		{name: "placeholder package", body: "panic(1)", scope: ScopePackage, mode: callsite.ModePlaceholder},
		{name: "placeholder function", body: "panic(1)", scope: ScopeFunction, mode: callsite.ModePlaceholder},
	}

	site := callsite.Site{File: "checks.exgo", Line: 3, Column: 1}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl := Render(Expand(site, tt.body, tt.scope, tt.mode))

			src := "package p\n\n" + decl + "\n"
			if tt.scope == ScopeFunction {
				src = "package p\n\nfunc f() {\n" + decl + "\n}\n"
			}

			typeCheck(t, src)
		})
	}
}

func TestExpand_DistinctSitesInOneBlock(t *testing.T) {
	a := Render(Expand(callsite.Site{File: "c.exgo", Line: 2, Column: 2}, "x := 1\n_ = x", ScopeFunction, callsite.ModeHash))
	b := Render(Expand(callsite.Site{File: "c.exgo", Line: 5, Column: 2}, "x := 2\n_ = x", ScopeFunction, callsite.ModeHash))

	typeCheck(t, "package p\n\nfunc f() {\n"+a+"\n"+b+"\n}\n")

	pa := Render(Expand(callsite.Site{File: "c.exgo", Line: 8, Column: 1}, "", ScopePackage, callsite.ModeHash))
	pb := Render(Expand(callsite.Site{File: "c.exgo", Line: 9, Column: 1}, "", ScopePackage, callsite.ModeHash))

	typeCheck(t, "package p\n\n"+pa+"\n"+pb+"\n")
}

func TestExpand_SameSiteCollides(t *testing.T) {
	site := callsite.Site{File: "c.exgo", Line: 2, Column: 2}
	a := Render(Expand(site, "", ScopePackage, callsite.ModeHash))

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "gen.go", "package p\n\n"+a+"\n"+a+"\n", 0)
	require.NoError(t, err)

	_, err = (&types.Config{}).Check("p", fset, []*ast.File{file}, nil)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "redeclared"), err.Error())
}

func TestExpand_PlaceholderScopes(t *testing.T) {
	site := callsite.Site{File: "c.exgo", Line: 1, Column: 1}
	decl := Render(Expand(site, "", ScopeFunction, callsite.ModePlaceholder))

	typeCheck(t, "package p\n\nfunc f() {\n"+decl+"\n"+decl+"\n}\n\nfunc g() {\n"+decl+"\n}\n")
}

func TestRender_BodyNewlines(t *testing.T) {
	assert.Equal(t, "var n func() = func() {\n\tx()\n}", Render(Emit("n", "\n\tx()\n", ScopePackage)))
	assert.Equal(t, "var n func() = func() {\n x() // c\n}", Render(Emit("n", " x() // c", ScopePackage)))
	assert.Equal(t, "var n func() = func() {\n\t\tx()\n}", Render(Emit("n", "\n\t\tx()\n\t", ScopePackage)))
}

func TestExpand_PassThroughFidelity(t *testing.T) {
	body := "a := 20\n\tb := 30\n\t// keep me\n\t_ = a * b"
	decl := Render(Expand(callsite.Site{File: "c.exgo", Line: 1, Column: 1}, body, ScopePackage, callsite.ModeHash))

	assert.Contains(t, decl, body)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "KindBlock", KindBlock.String())
	assert.Equal(t, "KindKeyword", KindKeyword.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
}

func TestScope_String(t *testing.T) {
	assert.Equal(t, "package", ScopePackage.String())
	assert.Equal(t, "function", ScopeFunction.String())
	assert.Equal(t, "Scope(7)", Scope(7).String())
}
