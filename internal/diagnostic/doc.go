// Package diagnostic provides positioned errors and warnings for the
// expansion pipeline.
//
// The macro body is never validated here; diagnostics cover only the
// structure needed to find invocations (balanced braces, a terminated
// body) and configuration problems.
package diagnostic
