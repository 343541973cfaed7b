// Package config loads the optional exclusive.yaml project file.
//
// Example:
//
//	version: "1"
//	mode: hash            # or placeholder
//	macro: exclusive
//	extension: .exgo
//	output_suffix: _exclusive.go
package config
