package repository

import (
	"context"

	"github.com/alexanderramin/cutsheet/internal/domain"
)

// TicketFilter narrows List. Zero values match everything.
type TicketFilter struct {
	Customer string
	Limit    int
}

type TicketRepo interface {
	// Create stores the ticket and its work items.
	Create(ctx context.Context, t *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	// GetByNumber matches the ticket number case-insensitively.
	GetByNumber(ctx context.Context, number string) (*domain.Ticket, error)
	// List returns ticket headers, newest first. Items are not loaded.
	List(ctx context.Context, f TicketFilter) ([]*domain.Ticket, error)
	Delete(ctx context.Context, id string) error
}
