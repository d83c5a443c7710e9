package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"buildspec/internal/app"
	"buildspec/internal/printer"
)

func newConcretizeCommand(cfg *RootConfig) *cobra.Command {
	var tree bool
	cmd := &cobra.Command{
		Use:   "concretize <spec-file>",
		Short: "Parse, normalize, and concretize a spec",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cfg)
			if err != nil {
				return err
			}
			spec, err := svc.LoadNormalizeConcretize(cmd.Context(), args[0])
			if err != nil {
				app.EmitHints(svc.Hints(err))
				return fmt.Errorf("%s", errorMessage(err))
			}
			if tree {
				fmt.Fprint(cmd.OutOrStdout(), printer.PrintTree(spec))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), printer.Print(spec))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&tree, "tree", false, "print as an indented dependency tree")
	return cmd
}
