package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syssam/specgen/compiler/encoding"
	"github.com/syssam/specgen/compiler/resolve"
)

// NewExplainCommand creates the explain command.
func NewExplainCommand(rootOpts *RootOptions) *cobra.Command {
	var module string

	cmd := &cobra.Command{
		Use:   "explain [spec-file...]",
		Short: "Print the wire contract of every declaration",
		Long: `Print how values of every declaration are encoded, and the decode
failures each one may produce.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rootOpts)
			if err != nil {
				return err
			}
			files, err := specFiles(cfg, args)
			if err != nil {
				return err
			}
			g, err := compile(files)
			if err != nil {
				return err
			}
			mods := g.Modules
			if module != "" {
				m := g.Module(module)
				if m == nil {
					return fmt.Errorf("module %q not found", module)
				}
				mods = []*resolve.Module{m}
			}
			for i, m := range mods {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				fmt.Fprint(cmd.OutOrStdout(), encoding.Describe(m))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&module, "module", "m", "", "only explain this module")

	return cmd
}
