package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/cutsheet/internal/domain"
	"github.com/alexanderramin/cutsheet/internal/importer"
)

type importService struct {
	tickets  TicketService
	observer UseCaseObserver
}

func NewImportService(tickets TicketService, observers ...UseCaseObserver) ImportService {
	return &importService{
		tickets:  tickets,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) LoadDraft(ctx context.Context, path string) (*importer.Draft, error) {
	f, err := importer.LoadTicketFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading ticket file: %w", err)
	}
	if errs := importer.ValidateTicketFile(f); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	d, err := importer.Convert(f)
	if err != nil {
		return nil, fmt.Errorf("converting ticket file: %w", err)
	}
	return d, nil
}

func (s *importService) ImportTicket(ctx context.Context, path string) (ticket *domain.Ticket, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"path": path}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-ticket",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	var d *importer.Draft
	d, err = s.LoadDraft(ctx, path)
	if err != nil {
		return nil, err
	}
	ticket, err = s.tickets.Save(ctx, d)
	if err != nil {
		return nil, err
	}
	fields["number"] = ticket.Number
	return ticket, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("ticket file validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
