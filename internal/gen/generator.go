package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
	"golang.org/x/tools/imports"

	"exclusive/internal/callsite"
	"exclusive/internal/config"
	"exclusive/internal/diagnostic"
	"exclusive/internal/expand"
	"exclusive/internal/scan"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Mode selects hash-derived names or the blank identifier.
	Mode callsite.Mode
	// Macro is the invocation name to expand.
	Macro string
	// Extension of macro source files, stripped from output names.
	Extension string
	// OutputSuffix is appended to the stripped source name.
	OutputSuffix string
	// OutputDir overrides where files are written. Empty means next to
	// each source file.
	OutputDir string
	// DumpTokens logs every emitted token sequence at debug level.
	DumpTokens bool
	// NoSidecar suppresses the unformatted sidecar written when formatting
	// fails.
	NoSidecar bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Mode:         callsite.ModeHash,
		Macro:        scan.DefaultMacro,
		Extension:    config.DefaultExtension,
		OutputSuffix: config.DefaultOutputSuffix,
	}
}

// ConfigFrom builds a GeneratorConfig from a project config file.
func ConfigFrom(c *config.Config) GeneratorConfig {
	return GeneratorConfig{
		Mode:         c.Mode,
		Macro:        c.Macro,
		Extension:    c.Extension,
		OutputSuffix: c.OutputSuffix,
	}
}

// Generator expands macro source files.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "checks_exclusive.go").
	Filename string
	// Dir is the directory of the source file.
	Dir string
	// Source is the path of the macro source file.
	Source string
	// Content is the formatted Go source code.
	Content []byte
	// Invocations is the number of expanded invocations, nested included.
	Invocations int
	// Diagnostics holds the scan warnings and one info per expansion.
	Diagnostics diagnostic.Diagnostics
}

// Path returns where the file is written when outputDir is used as an
// override (empty means f.Dir).
func (f GeneratedFile) Path(outputDir string) string {
	if outputDir == "" {
		return filepath.Join(f.Dir, f.Filename)
	}

	return filepath.Join(outputDir, f.Filename)
}

// OutputName returns the generated file name for a macro source path. The
// output suffix goes before any _test, _GOOS or _GOARCH suffix, so
// x_test.exgo becomes x_exclusive_test.go and keeps its meaning.
func (g *Generator) OutputName(path string) string {
	base := filepath.Base(path)

	stem, ok := strings.CutSuffix(base, g.config.Extension)
	if !ok {
		stem = strings.TrimSuffix(base, filepath.Ext(base))
	}

	name, constraint := splitConstraintSuffix(stem)

	return name + strings.TrimSuffix(g.config.OutputSuffix, ".go") + constraint + ".go"
}

// lineFile is the file name //line directives use for filename. A relative
// name is resolved by the compiler against the generated file's directory.
func (g *Generator) lineFile(filename string) string {
	base := filepath.Base(filename)
	if g.config.OutputDir == "" {
		return base
	}

	outDir, err := filepath.Abs(g.config.OutputDir)
	if err != nil {
		return base
	}

	source, err := filepath.Abs(filename)
	if err != nil {
		return base
	}

	rel, err := filepath.Rel(outDir, source)
	if err != nil {
		return base
	}

	return filepath.ToSlash(rel)
}

// Generate reads and expands every source file, in order.
func (g *Generator) Generate(sources []string) ([]GeneratedFile, error) {
	var files []GeneratedFile

	for _, path := range sources {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		file, err := g.GenerateFile(path, src)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", path, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// GenerateFile expands the invocations in src. filename provides positions
// and call-site identity. When formatting fails the unformatted file is
// returned alongside the error.
func (g *Generator) GenerateFile(filename string, src []byte) (*GeneratedFile, error) {
	invs, diags := scan.Scan(filename, src, g.config.Macro)
	for _, w := range diags.Warnings {
		log.Warn(w.String())
	}

	if err := diags.Error(); err != nil {
		return nil, err
	}

	file := &GeneratedFile{
		Filename:    g.OutputName(filename),
		Dir:         filepath.Dir(filename),
		Source:      filename,
		Invocations: scan.Count(invs),
	}
	file.Diagnostics.Merge(diags)

	log.Debugf("%s: %d invocation(s), mode %s", filename, file.Invocations, g.config.Mode)

	sp := &splicer{
		config:   g.config,
		src:      src,
		lineFile: g.lineFile(filename),
		diags:    &file.Diagnostics,
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "// Code generated by exclusive from %s. DO NOT EDIT.\n\n", filepath.Base(filename))

	start := 0
	if line, end, ok := scan.PackageClause(filename, src); ok && (len(invs) == 0 || end <= invs[0].Start) {
		buf.Write(src[:end])
		writeLineDirective(&buf, sp.lineFile, line+1, 1, string(src[end:]))
		start = end
	}

	buf.WriteString(sp.splice(start, len(src), invs))

	content := []byte(buf.String())

	formatted, err := imports.Process(file.Filename, content, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		if !g.config.NoSidecar {
			outDir := g.config.OutputDir
			if outDir == "" {
				outDir = file.Dir
			}

			if derr := writeDebugUnformatted(outDir, file.Filename, content); derr != nil {
				log.Debugf("writing unformatted sidecar: %v", derr)
			}
		}

		file.Content = content

		return file, fmt.Errorf("formatting code: %w", err)
	}

	file.Content = formatted

	return file, nil
}

// splicer rewrites one source file.
type splicer struct {
	config   GeneratorConfig
	src      []byte
	lineFile string
	diags    *diagnostic.Diagnostics
}

// splice copies src[start:end], replacing each invocation with its
// expansion. Nested invocations are expanded before their parent so the
// parent wraps already expanded code.
func (sp *splicer) splice(start, end int, invs []scan.Invocation) string {
	var sb strings.Builder

	cur := start
	for _, inv := range invs {
		sb.Write(sp.src[cur:inv.Start])

		body := sp.splice(inv.BodyStart, inv.BodyEnd, inv.Nested)
		body = mapBody(sp.lineFile, inv.BodyPos, body)
		tokens := expand.Expand(inv.Site, body, inv.Scope, sp.config.Mode)

		sp.diags.AddInfo(diagnostic.CodeExpanded,
			fmt.Sprintf("%s! expanded as %s in %s scope", sp.config.Macro,
				callsite.Allocate(inv.Site, sp.config.Mode), inv.Scope), inv.Pos)

		if sp.config.DumpTokens && log.IsLevelEnabled(log.DebugLevel) {
			log.Debugf("%s (%s):\n%s", inv.Site, inv.Scope, spew.Sdump(tokens))
		}

		sb.WriteString(expand.Render(tokens))

		cur = inv.End
		cur += restoreLines(&sb, sp.lineFile, inv.EndPos, string(sp.src[cur:end]))
	}

	sb.Write(sp.src[cur:end])

	return sb.String()
}
