// Package expand builds the declaration that replaces one macro invocation.
//
// An expansion is a token sequence equivalent to
//
//	var <name> func() = func() { <body> }
//
// The body is carried verbatim in a block token and is never parsed. In
// function scope a named binding is followed by a blank use so that Go's
// unused-variable check accepts it without the function ever being called.
package expand
