package config

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"exclusive/internal/callsite"
	"exclusive/internal/scan"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "exclusive.yaml"

// Defaults for optional fields.
const (
	DefaultExtension    = ".exgo"
	DefaultOutputSuffix = "_exclusive.go"
)

// Config is the content of an exclusive.yaml file.
type Config struct {
	Version string `yaml:"version"`
	// Mode selects hash-derived names or the blank identifier.
	Mode callsite.Mode `yaml:"mode"`
	// Macro is the invocation name, "exclusive" by default.
	Macro string `yaml:"macro,omitempty"`
	// Extension of macro source files.
	Extension string `yaml:"extension,omitempty"`
	// OutputSuffix replaces Extension in generated file names.
	OutputSuffix string `yaml:"output_suffix,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	var c Config
	applyDefaults(&c)

	return &c
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// LoadOptional loads path, falling back to Default when the file does not
// exist.
func LoadOptional(path string) (*Config, error) {
	c, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	return c, err
}

// Parse parses YAML data into a Config and validates it.
func Parse(data []byte) (*Config, error) {
	var c Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err := dec.Decode(&c)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.Version == "" {
		c.Version = "1"
	}

	if c.Macro == "" {
		c.Macro = scan.DefaultMacro
	}

	if c.Extension == "" {
		c.Extension = DefaultExtension
	}

	if c.OutputSuffix == "" {
		c.OutputSuffix = DefaultOutputSuffix
	}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if c.Version != "1" {
		return fmt.Errorf("unsupported config version %q", c.Version)
	}

	if !token.IsIdentifier(c.Macro) {
		return fmt.Errorf("macro %q is not a valid Go identifier", c.Macro)
	}

	if !strings.HasPrefix(c.Extension, ".") || c.Extension == "." {
		return fmt.Errorf("extension %q must start with a dot", c.Extension)
	}

	if c.Extension == ".go" {
		return errors.New("extension must not be .go")
	}

	if !strings.HasSuffix(c.OutputSuffix, ".go") {
		return fmt.Errorf("output_suffix %q must end in .go", c.OutputSuffix)
	}

	return nil
}

// Marshal serializes a Config to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}
