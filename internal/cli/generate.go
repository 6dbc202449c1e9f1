package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syssam/specgen/compiler/gen"
)

type generateOptions struct {
	out      string
	pkg      string
	header   string
	backends []string
	workers  int
	watch    bool
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	o := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [spec-file...]",
		Short: "Generate code from spec files",
		Long: `Generate serialization code for the given spec files and every file
they include. Without arguments, the specs listed in the configuration
file are used. Flags override configuration file values.`,
		Example: `  specgen generate --out ./model --package example.com/app/model spec/example.yaml
  specgen generate --backend go,jsonschema --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rootOpts)
			if err != nil {
				return err
			}
			if err := cfg.ApplyAll(flagOptions(cmd.Flags(), o)...); err != nil {
				return err
			}
			files, err := specFiles(cfg, args)
			if err != nil {
				return err
			}
			run := func(ctx context.Context) error {
				n, err := generate(ctx, cfg, files)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "generated %d files in %s\n", n, cfg.Target)
				return nil
			}
			if !o.watch {
				return run(cmd.Context())
			}
			return watch(cmd.Context(), rootOpts.Logger(), files, cfg.Target, func(ctx context.Context) {
				if err := run(ctx); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
				}
			})
		},
	}

	cmd.Flags().StringVarP(&o.out, "out", "o", "", "output directory")
	cmd.Flags().StringVarP(&o.pkg, "package", "p", "", "import path of the output directory")
	cmd.Flags().StringVar(&o.header, "header", "", "header comment of generated files")
	cmd.Flags().StringSliceVarP(&o.backends, "backend", "b", nil, fmt.Sprintf("backends to run %v (default [go])", BackendNames))
	cmd.Flags().IntVarP(&o.workers, "workers", "w", 0, "modules rendered in parallel (default GOMAXPROCS)")
	cmd.Flags().BoolVar(&o.watch, "watch", false, "regenerate when spec files change")

	return cmd
}

// generate runs the whole pipeline once and returns the number of files
// written.
func generate(ctx context.Context, cfg *gen.Config, files []string) (int, error) {
	if cfg.Target == "" {
		return 0, gen.NewConfigError("target", nil, "no output directory given (--out)")
	}
	g, err := compile(files)
	if err != nil {
		return 0, err
	}
	bs, err := backends(cfg)
	if err != nil {
		return 0, err
	}
	out, err := gen.NewGenerator(g, cfg).WithBackend(bs...).Render(ctx)
	if err != nil {
		return 0, err
	}
	if err := gen.WriteFiles(cfg.Target, out); err != nil {
		return 0, err
	}
	gen.Logger().Info("generation done",
		zap.Int("modules", len(g.Modules)),
		zap.Int("files", len(out)),
	)
	return len(out), nil
}
