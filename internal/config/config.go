// Package config loads the two platform/mode knobs spec §9 leaves as Open
// Questions into a single TOML document, the way the teacher loads its own
// settings through base/iox/tomlx: a plain struct decoded with
// github.com/pelletier/go-toml/v2, no bespoke parser.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/viewlang/core/resolve"
)

// Config resolves spec §9's two Open Questions:
//   - whether Pass A visibility violations are errors or warnings
//     (resolve.Options.LegacyMode)
//   - whether losing focus mid-composition auto-commits the IME preedit
//     (windowadapter.WindowAdapter.AutoCommitsIMEOnFocusOut)
//
// Both default to the strict/non-legacy behavior when absent from the TOML
// document, matching spec §9's framing of legacy mode as an opt-in escape
// hatch rather than a default.
type Config struct {
	LegacyMode              bool `toml:"legacy_mode"`
	IMEAutoCommitOnFocusOut bool `toml:"ime_auto_commit_on_focus_out"`
}

// Default returns the strict, non-legacy configuration used when no config
// file is present.
func Default() Config {
	return Config{}
}

// ResolveOptions projects Config onto resolve.Options.
func (c Config) ResolveOptions() resolve.Options {
	return resolve.Options{LegacyMode: c.LegacyMode}
}

// Read decodes a Config from r.
func Read(r io.Reader) (Config, error) {
	var c Config
	dec := toml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return c, nil
}

// Open reads and decodes a Config from a TOML file on disk. A missing file
// is not an error: it yields Default().
func Open(filename string) (Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: open %s: %w", filename, err)
	}
	defer f.Close()
	return Read(f)
}

// Write encodes c to w as TOML, indenting tables the same way the teacher's
// tomlx.NewEncoder does.
func Write(c Config, w io.Writer) error {
	enc := toml.NewEncoder(w).SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return nil
}

// Save writes c to filename as TOML.
func Save(c Config, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", filename, err)
	}
	defer f.Close()
	return Write(c, f)
}
