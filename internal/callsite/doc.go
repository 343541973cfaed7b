// Package callsite derives collision-free declaration names from the source
// position of a macro invocation.
//
// A Site is serialized explicitly (file base name, line, column) rather than
// from its in-memory layout, so names are stable across platforms and
// toolchain versions.
package callsite
