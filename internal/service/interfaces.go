package service

import (
	"context"

	"github.com/alexanderramin/cutsheet/internal/domain"
	"github.com/alexanderramin/cutsheet/internal/importer"
	"github.com/alexanderramin/cutsheet/internal/repository"
)

// NumberFunc returns a fresh ticket number.
type NumberFunc func() (string, error)

type TicketService interface {
	// Compose builds the unsaved ticket for a draft: description,
	// recommendations and finalized work items.
	Compose(ctx context.Context, d *importer.Draft) (*domain.Ticket, error)
	// Save composes the draft and stores it under a new ticket number.
	Save(ctx context.Context, d *importer.Draft) (*domain.Ticket, error)
	// Get resolves ref as a ticket number first, then as an ID.
	Get(ctx context.Context, ref string) (*domain.Ticket, error)
	List(ctx context.Context, f repository.TicketFilter) ([]*domain.Ticket, error)
	Delete(ctx context.Context, ref string) error
}

type ImportService interface {
	// LoadDraft reads, validates and converts a ticket file.
	LoadDraft(ctx context.Context, path string) (*importer.Draft, error)
	// ImportTicket loads the file and saves it as a new ticket.
	ImportTicket(ctx context.Context, path string) (*domain.Ticket, error)
}
