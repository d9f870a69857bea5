package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cutsheet/internal/catalog"
	"github.com/alexanderramin/cutsheet/internal/cli/formatter"
	"github.com/alexanderramin/cutsheet/internal/domain"
	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse work types and their form fields",
	}
	cmd.AddCommand(newCatalogListCmd(), newCatalogShowCmd())
	return cmd
}

func pickCatalog(performed bool) *catalog.Catalog {
	if performed {
		return catalog.Performed()
	}
	return catalog.Dispatch()
}

func newCatalogListCmd() *cobra.Command {
	var performed bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List work types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCatalog(pickCatalog(performed)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&performed, "performed", false, "Show the work-performed catalog")
	return cmd
}

func newCatalogShowCmd() *cobra.Command {
	var performed bool

	cmd := &cobra.Command{
		Use:   "show TYPE",
		Short: "Show the fields of a work type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseWorkType(strings.ToUpper(args[0]))
			if err != nil {
				return err
			}
			out, err := formatter.FormatFieldSpecs(pickCatalog(performed), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&performed, "performed", false, "Show the work-performed fields")
	return cmd
}
