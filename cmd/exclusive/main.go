// Package main provides the CLI entrypoint for exclusive.
//
// exclusive expands `exclusive! { ... }` invocations in .exgo files into
// uniquely named, never-called function values, so that independent uses
// in one scope never declare the same identifier twice:
//   - gen: write <name>_exclusive.go next to every <name>.exgo
//   - check: fail when generated files are missing or out of date
//   - expand: print the expansion of a single file
package main

import "exclusive/internal/cli"

func main() {
	cli.Execute()
}
