package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newPrintCommand re-prints a spec file's canonical or tree form
// without normalizing or concretizing it — a read-only inspection
// command grounded on internal/cli/inspect.go's shape (teacher).
func newPrintCommand(cfg *RootConfig) *cobra.Command {
	var tree bool
	cmd := &cobra.Command{
		Use:   "print <spec-file>",
		Short: "Print a spec file's canonical text or tree form as parsed, without normalizing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cfg)
			if err != nil {
				return err
			}
			text, err := svc.SpecText.Read(args[0])
			if err != nil {
				return err
			}
			spec, err := svc.ParseText(cmd.Context(), text)
			if err != nil {
				return fmt.Errorf("%s", errorMessage(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), svc.Print(cmd.Context(), spec, tree))
			return nil
		},
	}
	cmd.Flags().BoolVar(&tree, "tree", false, "print as an indented dependency tree")
	return cmd
}
