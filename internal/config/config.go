// Package config loads the optional TOML file holding defaults for the
// wasm2glulx command line.
package config

import (
	"bytes"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/tetratelabs/wasm2glulx/internal/compiler"
)

// File is the contents of a configuration file. Unset keys keep the compiler
// defaults.
type File struct {
	GlkAreaSize      *uint32 `toml:"glk_area_size"`
	StackSize        *uint32 `toml:"stack_size"`
	TableGrowthLimit *uint32 `toml:"table_growth_limit"`
	Text             *bool   `toml:"text"`
}

// Load reads and parses the file at path. Unknown keys are an error, since
// they are most likely misspellings.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}
	return Parse(data)
}

// Parse parses the contents of a configuration file.
func Parse(data []byte) (*File, error) {
	var f File
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}
	return &f, nil
}

// Apply returns cfg with every key set in f applied to it.
func (f *File) Apply(cfg *compiler.Config) *compiler.Config {
	if f.GlkAreaSize != nil {
		cfg = cfg.WithGlkAreaSize(*f.GlkAreaSize)
	}
	if f.StackSize != nil {
		cfg = cfg.WithStackSize(*f.StackSize)
	}
	if f.TableGrowthLimit != nil {
		cfg = cfg.WithTableGrowthLimit(*f.TableGrowthLimit)
	}
	if f.Text != nil {
		cfg = cfg.WithText(*f.Text)
	}
	return cfg
}
