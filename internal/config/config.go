// Package config loads the component-store project file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"component-store/internal/gen"
	"component-store/internal/plan"
)

// DefaultFile is the project file looked up when no path is given.
const DefaultFile = "component-store.yaml"

// Config is the project file layout.
type Config struct {
	// Schema is the path of the component schema.
	Schema string `yaml:"schema"`
	// Output is the directory generated files are written to.
	Output string `yaml:"output"`
	// Package is the generated package name.
	Package string `yaml:"package"`
	// Filename is the generated file name.
	Filename string `yaml:"filename"`
	// Aggregate is the aggregate store type name.
	Aggregate string `yaml:"aggregate"`
	// Constructor is the aggregate constructor name.
	Constructor string `yaml:"constructor,omitempty"`
	// RuntimeImport is the import path of the runtime index package.
	RuntimeImport string `yaml:"runtime_import"`
	// ComponentImport is the import path of the component types, if not local.
	ComponentImport string `yaml:"component_import,omitempty"`
	// Concurrent selects the mutex-guarded runtime index.
	Concurrent bool `yaml:"concurrent"`
	// Comments toggles doc comments in generated code. Defaults to true.
	Comments *bool `yaml:"comments,omitempty"`
	// Accessors toggles aggregate forwarding methods. Defaults to true.
	Accessors *bool `yaml:"accessors,omitempty"`
	// LogMode is "development" or "production".
	LogMode string `yaml:"log_mode"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var c Config

	applyDefaults(&c)

	return &c
}

// LoadFile loads and parses a YAML project file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// LoadOptional loads path, or DefaultFile when path is empty. A missing
// DefaultFile yields the defaults; a missing explicit path is an error.
func LoadOptional(path string) (*Config, error) {
	if path != "" {
		return LoadFile(path)
	}

	c, err := LoadFile(DefaultFile)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	return c, err
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var c Config

	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	return &c, nil
}

// Marshal serializes a Config to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	def := gen.DefaultGeneratorConfig()

	if c.Output == "" {
		c.Output = def.OutputDir
	}

	if c.Package == "" {
		c.Package = def.PackageName
	}

	if c.Filename == "" {
		c.Filename = def.Filename
	}

	if c.Aggregate == "" {
		c.Aggregate = plan.DefaultAggregateName
	}

	if c.RuntimeImport == "" {
		c.RuntimeImport = def.RuntimeImport
	}

	if c.Comments == nil {
		c.Comments = boolPtr(def.GenerateComments)
	}

	if c.Accessors == nil {
		c.Accessors = boolPtr(def.GenerateAccessors)
	}

	if c.LogMode == "" {
		c.LogMode = "development"
	}
}

// PlanOptions returns the synthesis options described by the config.
func (c *Config) PlanOptions() plan.Options {
	return plan.Options{AggregateName: c.Aggregate, ConstructorName: c.Constructor}
}

// GeneratorConfig returns the emitter configuration described by the config.
func (c *Config) GeneratorConfig() gen.GeneratorConfig {
	return gen.GeneratorConfig{
		PackageName:       c.Package,
		OutputDir:         c.Output,
		Filename:          c.Filename,
		RuntimeImport:     c.RuntimeImport,
		ComponentImport:   c.ComponentImport,
		Concurrent:        c.Concurrent,
		GenerateComments:  c.Comments == nil || *c.Comments,
		GenerateAccessors: c.Accessors == nil || *c.Accessors,
		Source:            c.Schema,
	}
}

func boolPtr(b bool) *bool {
	return &b
}
