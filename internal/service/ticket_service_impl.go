package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cutsheet/internal/compose"
	"github.com/alexanderramin/cutsheet/internal/db"
	"github.com/alexanderramin/cutsheet/internal/domain"
	"github.com/alexanderramin/cutsheet/internal/importer"
	"github.com/alexanderramin/cutsheet/internal/recommend"
	"github.com/alexanderramin/cutsheet/internal/repository"
	"github.com/google/uuid"
)

// maxNumberAttempts bounds retries when a generated number is already taken.
const maxNumberAttempts = 5

type ticketService struct {
	tickets  repository.TicketRepo
	uow      db.UnitOfWork
	numbers  NumberFunc
	observer UseCaseObserver
	now      func() time.Time
}

func NewTicketService(
	tickets repository.TicketRepo,
	uow db.UnitOfWork,
	numbers NumberFunc,
	observers ...UseCaseObserver,
) TicketService {
	return &ticketService{
		tickets:  tickets,
		uow:      uow,
		numbers:  numbers,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC().Truncate(time.Second) },
	}
}

func (s *ticketService) Compose(ctx context.Context, d *importer.Draft) (*domain.Ticket, error) {
	if d == nil {
		return nil, fmt.Errorf("composing ticket: no draft")
	}
	t := &domain.Ticket{
		Customer:        d.Customer,
		JobSite:         d.JobSite,
		ScheduledDate:   d.ScheduledDate,
		WorkTypes:       append([]domain.WorkTypeID(nil), d.Selected...),
		Description:     compose.Description(d.Selected, d.Details),
		Recommendations: recommend.Recommend(d.Selected, d.Details),
	}
	if d.Order != nil {
		t.Items = d.Order.Items()
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("composing ticket: %w", err)
	}
	return t, nil
}

func (s *ticketService) Save(ctx context.Context, d *importer.Draft) (ticket *domain.Ticket, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "save-ticket",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	var t *domain.Ticket
	t, err = s.Compose(ctx, d)
	if err != nil {
		return nil, err
	}
	fields["customer"] = t.Customer
	fields["work_types"] = len(t.WorkTypes)
	fields["items"] = len(t.Items)

	now := s.now()
	t.ID = uuid.New().String()
	t.CreatedAt = now
	t.UpdatedAt = now

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTickets := repository.NewSQLiteTicketRepo(tx)

		number, err := s.freeNumber(ctx, txTickets)
		if err != nil {
			return err
		}
		t.Number = number

		if err := txTickets.Create(ctx, t); err != nil {
			return fmt.Errorf("creating ticket: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["number"] = t.Number
	return t, nil
}

func (s *ticketService) freeNumber(ctx context.Context, tickets repository.TicketRepo) (string, error) {
	for range maxNumberAttempts {
		n, err := s.numbers()
		if err != nil {
			return "", fmt.Errorf("allocating ticket number: %w", err)
		}
		_, err = tickets.GetByNumber(ctx, n)
		if errors.Is(err, domain.ErrNotFound) {
			return n, nil
		}
		if err != nil {
			return "", fmt.Errorf("allocating ticket number: %w", err)
		}
	}
	return "", fmt.Errorf("allocating ticket number: %d attempts collided", maxNumberAttempts)
}

func (s *ticketService) Get(ctx context.Context, ref string) (*domain.Ticket, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("ticket reference is required")
	}
	t, err := s.tickets.GetByNumber(ctx, ref)
	if errors.Is(err, domain.ErrNotFound) {
		t, err = s.tickets.GetByID(ctx, ref)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *ticketService) List(ctx context.Context, f repository.TicketFilter) ([]*domain.Ticket, error) {
	return s.tickets.List(ctx, f)
}

func (s *ticketService) Delete(ctx context.Context, ref string) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"ref": ref}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "delete-ticket",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	var t *domain.Ticket
	t, err = s.Get(ctx, ref)
	if err != nil {
		return err
	}
	return s.tickets.Delete(ctx, t.ID)
}
