package cli

import (
	"time"

	"github.com/alexanderramin/cutsheet/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tickets service.TicketService
	Import  service.ImportService

	// IsInteractive reports whether stdin is a terminal. Batch commands
	// fall back to forms only when it returns true.
	IsInteractive func() bool
	Now           func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "cutsheet" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "cutsheet",
		Short:         "Concrete cutting job tickets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCatalogCmd(),
		newComposeCmd(app),
		newTicketCmd(app),
		newBatchCmd(app),
	)

	return root
}
