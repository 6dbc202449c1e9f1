package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [spec-file...]",
		Short: "Check spec files without generating code",
		Long: `Load, validate and link the given spec files and every file they
include. All compile errors are reported; nothing is written.`,
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
			decls := 0
			for _, m := range g.Modules {
				decls += len(m.Decls)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d modules, %d declarations\n", len(g.Modules), decls)
			return nil
		},
	}
}
