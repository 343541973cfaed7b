package callsite

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Mode selects how Allocate names declarations.
type Mode int

const (
	// ModeHash encodes the call site into the name.
	ModeHash Mode = iota
	// ModePlaceholder binds every declaration to the blank identifier.
	ModePlaceholder
)

// String returns the configuration spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeHash:
		return "hash"
	case ModePlaceholder:
		return "placeholder"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "hash" or "placeholder". The empty string is ModeHash.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "hash":
		return ModeHash, nil
	case "placeholder":
		return ModePlaceholder, nil
	default:
		return ModeHash, fmt.Errorf("unknown mode %q (want hash or placeholder)", s)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	parsed, err := ParseMode(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}

	*m = parsed

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m Mode) MarshalYAML() (any, error) {
	return m.String(), nil
}
