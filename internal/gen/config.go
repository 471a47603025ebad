// config.go — generation config for errchain-gen.
//
// A config arrives either from CLI flags or from a .errchain.yaml file
// (strict decoding; unknown keys are an error). Validate normalizes defaults
// so Generate only ever sees a fully specified config.
package gen

import (
	"fmt"
	"go/token"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Variant selects how a type's cause chain is rendered.
type Variant string

const (
	// VariantInline renders the chain as one ": "-joined string.
	VariantInline Variant = "inline"
	// VariantArray renders the chain as an array of strings with an inline
	// fallback for sinks without structured-value support.
	VariantArray Variant = "array"
)

// Sink names a logging framework the generated methods target.
type Sink string

const (
	SinkSlog    Sink = "slog"
	SinkZap     Sink = "zap"
	SinkZerolog Sink = "zerolog"
	SinkLogr    Sink = "logr"
)

// Config describes one generated file.
type Config struct {
	// Package is the package the generated file belongs to.
	Package string `yaml:"package"`
	// Output is the file path to write (default errchain_gen.go).
	Output string `yaml:"output"`
	// Types lists the error types to attach methods to.
	Types []TypeConfig `yaml:"types"`
}

// TypeConfig describes one error type.
type TypeConfig struct {
	Name string `yaml:"name"`
	// Variant defaults to inline.
	Variant Variant `yaml:"variant"`
	// Sinks defaults to [slog]. zap and zerolog require the array variant.
	Sinks []Sink `yaml:"sinks"`
	// Value attaches methods to a value receiver instead of a pointer one.
	Value bool `yaml:"value"`
}

// LoadConfig reads a yaml config file with strict field checking.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the config and fills in defaults in place.
func (c *Config) Validate() error {
	if c.Package == "" {
		return fmt.Errorf("package name is required")
	}
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("package name %q is not a valid identifier", c.Package)
	}
	if c.Output == "" {
		c.Output = "errchain_gen.go"
	}
	if len(c.Types) == 0 {
		return fmt.Errorf("at least one type is required")
	}
	for i := range c.Types {
		if err := c.Types[i].validate(); err != nil {
			return err
		}
	}
	return nil
}

func (t *TypeConfig) validate() error {
	if t.Name == "" {
		return fmt.Errorf("type name is required")
	}
	if !token.IsIdentifier(t.Name) {
		return fmt.Errorf("type name %q is not a valid identifier", t.Name)
	}
	switch t.Variant {
	case "":
		t.Variant = VariantInline
	case VariantInline, VariantArray:
	default:
		return fmt.Errorf("type %s: unknown variant %q (want inline or array)", t.Name, t.Variant)
	}
	if len(t.Sinks) == 0 {
		t.Sinks = []Sink{SinkSlog}
	}
	for _, s := range t.Sinks {
		switch s {
		case SinkSlog, SinkLogr:
		case SinkZap, SinkZerolog:
			if t.Variant != VariantArray {
				return fmt.Errorf("type %s: sink %s requires the array variant", t.Name, s)
			}
		default:
			return fmt.Errorf("type %s: unknown sink %q (want slog, zap, zerolog or logr)", t.Name, s)
		}
	}
	return nil
}

// uses reports whether the type targets the given sink.
func (t TypeConfig) uses(s Sink) bool { return slices.Contains(t.Sinks, s) }
