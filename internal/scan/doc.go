// Package scan locates macro invocations in a source file.
//
// An invocation is the macro name immediately followed by `!` and a brace
// delimited body:
//
//	exclusive! {
//		// any code
//	}
//
// Source is tokenized with go/scanner, so occurrences inside comments and
// string literals are ignored. Bodies are located by brace matching only and
// are never parsed.
package scan
