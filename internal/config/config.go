// Package config loads the settings of the errchain CLI from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/xgx-io/errchain"
)

// maxMaxLen caps max_len so a typo cannot turn every message into a
// multi-megabyte allocation.
const maxMaxLen = 1 << 20

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds renderer and factory settings.
type Config struct {
	MaxLen  int    `yaml:"max_len"`
	Header  string `yaml:"header"`
	Trailer string `yaml:"trailer"`
	Metrics bool   `yaml:"metrics"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		MaxLen:  errchain.MaxLen,
		Trailer: "\n",
	}
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.MaxLen < 1 || c.MaxLen > maxMaxLen {
		return fmt.Errorf("%w: max_len must be between 1 and %d, got %d", ErrInvalid, maxMaxLen, c.MaxLen)
	}
	return nil
}

// FactoryOptions returns the errchain options implied by c.
func (c Config) FactoryOptions() []errchain.Option {
	return []errchain.Option{errchain.WithMaxLen(c.MaxLen)}
}
