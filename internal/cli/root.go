// Package cli implements the specgen command line.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syssam/specgen/compiler/gen"
	"github.com/syssam/specgen/compiler/load"
	"github.com/syssam/specgen/compiler/resolve"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	// Config is the path of the configuration file. When empty,
	// specgen.yaml is read from the working directory if present.
	Config string

	logger *zap.Logger
}

// NewRootCommand creates the root command of the specgen CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "specgen",
		Short: "specgen - schema compiler",
		Long: `Compile data model specs into serialization code.

Spec files declare structs, tagged unions, newtypes and constants once.
specgen resolves them across modules and generates matching serializers
and deserializers for every target backend.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(opts.Verbose)
			if err != nil {
				return err
			}
			opts.logger = l
			gen.SetLogger(l)
			load.SetLogger(l)
			resolve.SetLogger(l)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVarP(&opts.Config, "config", "c", "", "configuration file (default ./"+gen.ConfigFile+")")

	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewExplainCommand(opts))

	return cmd
}

// newLogger returns a development logger at debug level when verbose,
// and a production logger at warn level otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	return cfg.Build()
}

// Logger returns the logger installed by the root command, or a no-op
// logger before it ran.
func (o *RootOptions) Logger() *zap.Logger {
	if o.logger == nil {
		return zap.NewNop()
	}
	return o.logger
}
