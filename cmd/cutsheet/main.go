package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/cutsheet/internal/cli"
	"github.com/alexanderramin/cutsheet/internal/config"
	"github.com/alexanderramin/cutsheet/internal/db"
	"github.com/alexanderramin/cutsheet/internal/idgen"
	"github.com/alexanderramin/cutsheet/internal/repository"
	"github.com/alexanderramin/cutsheet/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Defaults, then ~/.cutsheet/config.toml (or CUTSHEET_CONFIG), then env.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	ticketRepo := repository.NewSQLiteTicketRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	numbers := func() (string, error) {
		return idgen.TicketNumberWith(cfg.TicketPrefix, cfg.NumberLength)
	}

	tickets := service.NewTicketService(ticketRepo, uow, numbers, observers...)
	app := &cli.App{
		Tickets: tickets,
		Import:  service.NewImportService(tickets, observers...),
	}

	// Forms only run when a person is at the keyboard.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
