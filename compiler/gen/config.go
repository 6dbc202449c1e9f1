package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

const (
	defaultHeader  = "Code generated by specgen. DO NOT EDIT."
	defaultRuntime = "github.com/syssam/specgen"
	// ConfigFile is the name of the configuration file looked up by the CLI.
	ConfigFile = "specgen.yaml"
)

// Config holds the global configuration of a generation run.
type Config struct {
	// Specs are the spec files to compile, relative to the working directory.
	Specs []string `yaml:"specs,omitempty"`
	// Target is the output directory of generated files.
	Target string `yaml:"target,omitempty"`
	// Package is the import path of Target. Backends emitting Go code
	// derive the import path of every module from it.
	Package string `yaml:"package,omitempty"`
	// Header is the comment added at the top of generated files.
	Header string `yaml:"header,omitempty"`
	// Runtime is the import path of the runtime package.
	Runtime string `yaml:"runtime,omitempty"`
	// Workers bounds the number of modules rendered in parallel.
	Workers int `yaml:"workers,omitempty"`
	// Backends are the names of the backends to run.
	Backends []string `yaml:"backends,omitempty"`
}

// DefaultConfig returns a Config with default settings.
func DefaultConfig() *Config {
	return &Config{
		Header:   defaultHeader,
		Runtime:  defaultRuntime,
		Backends: []string{"go"},
	}
}

// HeaderComment returns the configured header or the default one.
func (c *Config) HeaderComment() string {
	if c.Header == "" {
		return defaultHeader
	}
	return c.Header
}

// RuntimePath returns the import path of the runtime package.
func (c *Config) RuntimePath() string {
	if c.Runtime == "" {
		return defaultRuntime
	}
	return c.Runtime
}

// WorkerCount returns the number of parallel workers, GOMAXPROCS by default.
func (c *Config) WorkerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// LoadConfigFile reads a YAML configuration file over the defaults.
// Unknown keys are rejected.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	c := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, NewConfigError(path, nil, err.Error())
	}
	if c.Workers < 0 {
		return nil, NewConfigError("workers", c.Workers, "must not be negative")
	}
	return c, nil
}
