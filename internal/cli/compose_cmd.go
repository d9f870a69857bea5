package cli

import (
	"fmt"

	"github.com/alexanderramin/cutsheet/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newComposeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "compose FILE",
		Short: "Preview the description and work performed for a ticket file",
		Long: `Reads a YAML or JSON ticket file and prints the composed description,
the recommended equipment and the work performed lines without saving.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			draft, err := app.Import.LoadDraft(ctx, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tickets.Compose(ctx, draft)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatComposed(t))
			return nil
		},
	}
}
