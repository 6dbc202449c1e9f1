package gen

import (
	"errors"
	"slices"
	"strings"
)

// Option configures code generation.
type Option func(*Config) error

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithPackage sets the import path the generated packages live under.
// For example: "github.com/org/project/model". The Go package of module
// "include/base" is then "github.com/org/project/model/include/base".
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		if strings.HasSuffix(pkg, "/") || strings.Contains(pkg, " ") {
			return NewConfigError("Package", pkg, "not a valid import path")
		}
		c.Package = pkg
		return nil
	}
}

// WithTarget sets the output directory.
// The directory where generated code will be written.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithWorkers sets the number of modules rendered in parallel.
// Zero means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return NewConfigError("Workers", n, "must not be negative")
		}
		c.Workers = n
		return nil
	}
}

// WithBackends sets the names of the backends to run, e.g. "go".
func WithBackends(names ...string) Option {
	return func(c *Config) error {
		if len(names) == 0 {
			return NewConfigError("Backends", nil, "at least one backend is required")
		}
		var backends []string
		for _, name := range names {
			if name == "" {
				return NewConfigError("Backends", names, "backend name cannot be empty")
			}
			if !slices.Contains(backends, name) {
				backends = append(backends, name)
			}
		}
		c.Backends = backends
		return nil
	}
}

// WithRuntimePackage sets the import path of the runtime package the
// generated code calls into.
func WithRuntimePackage(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return NewConfigError("Runtime", nil, "runtime package cannot be empty")
		}
		c.Runtime = path
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config from DefaultConfig with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := DefaultConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
