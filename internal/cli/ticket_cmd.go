package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/cutsheet/internal/cli/formatter"
	"github.com/alexanderramin/cutsheet/internal/domain"
	"github.com/alexanderramin/cutsheet/internal/export"
	"github.com/alexanderramin/cutsheet/internal/repository"
	"github.com/spf13/cobra"
)

func newTicketCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ticket",
		Short: "Manage saved tickets",
	}

	cmd.AddCommand(
		newTicketSaveCmd(app),
		newTicketListCmd(app),
		newTicketShowCmd(app),
		newTicketDeleteCmd(app),
		newTicketExportCmd(app),
	)

	return cmd
}

func newTicketSaveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "save FILE",
		Short: "Compose a ticket file and save it under a new number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Import.ImportTicket(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved ticket %s for %s (%d work items)\n",
				formatter.Bold(t.DisplayID()), t.Customer, len(t.Items))
			return nil
		},
	}
}

func newTicketListCmd(app *App) *cobra.Command {
	var customer string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved tickets, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}
			tickets, err := app.Tickets.List(cmd.Context(), repository.TicketFilter{
				Customer: customer,
				Limit:    limit,
			})
			if err != nil {
				return err
			}
			if len(tickets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No tickets found."))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTicketList(tickets, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&customer, "customer", "", "Only tickets whose customer contains this text")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of tickets (0 for all)")
	return cmd
}

func newTicketShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show REF",
		Short: "Show a ticket by number or ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Tickets.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTicket(t, app.now()))
			return nil
		},
	}
}

func newTicketDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete REF",
		Short: "Delete a ticket and its work items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := app.Tickets.Get(ctx, args[0])
			if err != nil {
				return err
			}
			if !yes {
				msg := fmt.Sprintf("Delete ticket %s for %s? [y/N] ", t.DisplayID(), t.Customer)
				if !promptYesNoWithDefaultIO(cmd.InOrStdin(), cmd.OutOrStdout(), msg, false) {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}
			if err := app.Tickets.Delete(ctx, t.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted ticket %s\n", t.DisplayID())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newTicketExportCmd(app *App) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export REF...",
		Short: "Export tickets as CSV or JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "csv" && format != "json" {
				return fmt.Errorf("unknown format %q (want csv or json)", format)
			}

			ctx := cmd.Context()
			tickets := make([]*domain.Ticket, 0, len(args))
			for _, ref := range args {
				t, err := app.Tickets.Get(ctx, ref)
				if err != nil {
					return err
				}
				tickets = append(tickets, t)
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}

			var err error
			if format == "csv" {
				err = export.WriteCSV(w, tickets)
			} else {
				err = export.WriteJSON(w, tickets, app.now())
			}
			if err != nil {
				return fmt.Errorf("exporting tickets: %w", err)
			}
			if output != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d tickets to %s\n", len(tickets), output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "Output format: csv or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}
