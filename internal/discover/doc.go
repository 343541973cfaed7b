// Package discover resolves command-line patterns to macro source files.
package discover
