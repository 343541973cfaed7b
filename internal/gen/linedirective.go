package gen

import (
	"fmt"
	"go/token"
	"strings"
)

// Generated code carries //line directives so the compiler reports positions
// in the macro source. A directive always sits on a line of its own, in
// column 1, and positions the line that follows it.

// writeLineDirective writes a directive placing the next line of output at
// line:col of file. next is the text that will follow. When it opens with a
// comment, a blank line is put in between: gofmt moves directives to the end
// of a doc comment, which would shift every line after it.
func writeLineDirective(sb *strings.Builder, file string, line, col int, next string) {
	if startsWithComment(next) {
		if line < 2 {
			return
		}

		fmt.Fprintf(sb, "//line %s:%d:1\n\n", file, line-1)

		return
	}

	fmt.Fprintf(sb, "//line %s:%d:%d\n", file, line, col)
}

func startsWithComment(s string) bool {
	s = strings.TrimLeft(s, " \t")

	return strings.HasPrefix(s, "//") || strings.HasPrefix(s, "/*")
}

// mapBody prefixes an invocation body with a directive for its first line.
// pos is the position right after the opening brace.
func mapBody(file string, pos token.Position, body string) string {
	if strings.TrimSpace(body) == "" {
		return body
	}

	line, col := pos.Line, pos.Column

	rest, ok := strings.CutPrefix(body, "\n")
	if ok {
		line++
		col = 1
	}

	var sb strings.Builder
	sb.WriteByte('\n')
	writeLineDirective(&sb, file, line, col, rest)
	sb.WriteString(rest)

	return sb.String()
}

// restoreLines writes a directive after an expansion so the source that
// follows keeps its own positions. pos is where the invocation ended and rest
// the source after it. It returns the number of bytes of rest consumed.
func restoreLines(sb *strings.Builder, file string, pos token.Position, rest string) int {
	if strings.TrimSpace(rest) == "" {
		return 0
	}

	sb.WriteByte('\n')

	if next, ok := strings.CutPrefix(rest, "\n"); ok {
		writeLineDirective(sb, file, pos.Line+1, 1, next)
		return 1
	}

	writeLineDirective(sb, file, pos.Line, pos.Column, rest)

	return 0
}
