// Package config loads the driver settings used by the REPL and the CLI.
// Settings files are YAML unless their name ends in .toml.
package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"

	"github.com/pontaoski/monkey/parser"
)

// DefaultPath is where the CLI looks for settings when --config is not given.
const DefaultPath = ".monkey.yml"

type Mode string

const (
	// ModeTokens prints every token of a line.
	ModeTokens Mode = "tokens"
	// ModeAST parses a line and prints the program or its diagnostics.
	ModeAST Mode = "ast"
)

type Settings struct {
	Prompt   string `yaml:"prompt" toml:"prompt"`
	Mode     Mode   `yaml:"mode" toml:"mode"`
	Quit     string `yaml:"quit" toml:"quit"`
	MaxDepth int    `yaml:"max_depth" toml:"max_depth"`
	History  string `yaml:"history,omitempty" toml:"history"`
}

func Default() Settings {
	return Settings{
		Prompt:   ">> ",
		Mode:     ModeAST,
		Quit:     "q",
		MaxDepth: parser.DefaultMaxDepth,
	}
}

func (s Settings) Validate() error {
	switch s.Mode {
	case ModeTokens, ModeAST:
	default:
		return fmt.Errorf("unknown mode %q, expected %q or %q", s.Mode, ModeTokens, ModeAST)
	}
	if s.Quit == "" {
		return fmt.Errorf("quit sentinel must not be empty")
	}
	if s.MaxDepth < 1 || s.MaxDepth > parser.MaxDepthLimit {
		return fmt.Errorf("max_depth must be between 1 and %d, got %d", parser.MaxDepthLimit, s.MaxDepth)
	}
	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load reads the settings at path. Keys missing from the file keep their
// default values.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return s, tracerr.Wrap(err)
	}

	if isTOML(path) {
		err = toml.Unmarshal(data, &s)
	} else {
		err = yaml.Unmarshal(data, &s)
	}
	if err != nil {
		return s, tracerr.Wrap(fmt.Errorf("reading %s: %w", path, err))
	}

	if err := s.Validate(); err != nil {
		return s, tracerr.Wrap(fmt.Errorf("%s: %w", path, err))
	}
	return s, nil
}

// LoadOrDefault is Load, except that a missing file yields Default().
func LoadOrDefault(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Write stores s at path in the format implied by its extension.
func Write(path string, s Settings) error {
	var (
		out []byte
		err error
	)

	if isTOML(path) {
		var b strings.Builder
		err = toml.NewEncoder(&b).Encode(s)
		out = []byte(b.String())
	} else {
		out, err = yaml.Marshal(s)
	}
	if err != nil {
		return tracerr.Wrap(err)
	}

	return tracerr.Wrap(ioutil.WriteFile(path, out, 0644))
}
