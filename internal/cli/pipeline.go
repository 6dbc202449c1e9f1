package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/pflag"

	"github.com/syssam/specgen/compiler/gen"
	"github.com/syssam/specgen/compiler/gen/golang"
	"github.com/syssam/specgen/compiler/gen/jsonschema"
	"github.com/syssam/specgen/compiler/load"
	"github.com/syssam/specgen/compiler/resolve"
)

// loadConfig reads the configuration file named by the --config flag, or
// specgen.yaml when present, and falls back to the defaults.
func loadConfig(opts *RootOptions) (*gen.Config, error) {
	if opts.Config != "" {
		return gen.LoadConfigFile(opts.Config)
	}
	if _, err := os.Stat(gen.ConfigFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return gen.DefaultConfig(), nil
		}
		return nil, err
	}
	return gen.LoadConfigFile(gen.ConfigFile)
}

// specFiles returns the spec files given as arguments, or the configured ones.
func specFiles(cfg *gen.Config, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if len(cfg.Specs) > 0 {
		return cfg.Specs, nil
	}
	return nil, gen.NewConfigError("specs", nil, "no spec files given")
}

// compile loads the spec files and links them into a graph.
func compile(files []string) (*resolve.Graph, error) {
	mods, err := load.Files(files...)
	if err != nil {
		return nil, err
	}
	return resolve.Resolve(mods...)
}

// backends returns the configured backends.
func backends(cfg *gen.Config) ([]gen.Backend, error) {
	var out []gen.Backend
	for _, name := range cfg.Backends {
		switch name {
		case "go":
			out = append(out, golang.New(cfg))
		case "jsonschema":
			out = append(out, jsonschema.New(cfg))
		default:
			return nil, gen.NewConfigError("backend", name, fmt.Sprintf("unknown backend, want one of %v", BackendNames))
		}
	}
	return out, nil
}

// BackendNames lists the backends accepted by --backend.
var BackendNames = []string{"go", "jsonschema"}

// flagOptions returns the options of the flags set on the command line.
func flagOptions(flags *pflag.FlagSet, o *generateOptions) []gen.Option {
	var opts []gen.Option
	if flags.Changed("out") {
		opts = append(opts, gen.WithTarget(o.out))
	}
	if flags.Changed("package") {
		opts = append(opts, gen.WithPackage(o.pkg))
	}
	if flags.Changed("backend") {
		opts = append(opts, gen.WithBackends(o.backends...))
	}
	if flags.Changed("workers") {
		opts = append(opts, gen.WithWorkers(o.workers))
	}
	if flags.Changed("header") {
		opts = append(opts, gen.WithHeader(o.header))
	}
	return opts
}
