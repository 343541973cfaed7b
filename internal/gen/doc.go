// Package gen turns macro source files into ordinary Go files.
//
// Each invocation found by package scan is replaced, innermost first, by the
// declaration built by package expand. The result gets a generated-code
// header and is formatted with golang.org/x/tools/imports. Generation is
// deterministic: the same input always yields the same bytes.
package gen
