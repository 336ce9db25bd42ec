package ujs

import (
	"fmt"
	"strings"
)

// Goal selects the grammar a source text is parsed with.
type Goal int

const (
	// Script is the goal of classic scripts: sloppy mode by default,
	// no import or export declarations.
	Script Goal = iota
	// Module is the goal of ES modules: always strict, with import and
	// export declarations.
	Module
)

// String returns "script" or "module".
func (g Goal) String() string {
	if g == Module {
		return "module"
	}
	return "script"
}

// MarshalText implements encoding.TextMarshaler.
func (g Goal) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts "script"
// and "module" in any case.
func (g *Goal) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "script":
		*g = Script
	case "module":
		*g = Module
	default:
		return fmt.Errorf("unknown goal %q (want script or module)", text)
	}
	return nil
}

// Config holds options for Parse and Generate.
type Config struct {
	// Goal is the grammar to parse with (default: Script).
	Goal Goal

	// Locations records the source span of every node. The spans are
	// available from Program.Location.
	Locations bool

	// Pretty selects the indented output of PrettyCodeGen when the
	// program is printed with Generate.
	Pretty bool
}

// defaultConfig is used when a nil Config is passed.
var defaultConfig = Config{}
