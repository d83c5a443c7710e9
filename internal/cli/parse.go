package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"buildspec/internal/app"
	"buildspec/internal/printer"
)

func newParseCommand(cfg *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <spec-file>",
		Short: "Parse spec text and print its canonical form",
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
				app.EmitHints(svc.Hints(err))
				return fmt.Errorf("%s", errorMessage(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), printer.Print(spec))
			return nil
		},
	}
}
