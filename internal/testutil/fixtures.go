package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/cutsheet/internal/domain"
	"github.com/google/uuid"
)

var testNumberCounter atomic.Int64

type TicketOption func(*domain.Ticket)

func WithNumber(n string) TicketOption {
	return func(t *domain.Ticket) {
		t.Number = n
	}
}

func WithJobSite(s string) TicketOption {
	return func(t *domain.Ticket) {
		t.JobSite = s
	}
}

func WithScheduledDate(d time.Time) TicketOption {
	return func(t *domain.Ticket) {
		t.ScheduledDate = &d
	}
}

func WithCreatedAt(at time.Time) TicketOption {
	return func(t *domain.Ticket) {
		t.CreatedAt = at
		t.UpdatedAt = at
	}
}

// WithItems replaces the default work items.
func WithItems(items ...domain.WorkItem) TicketOption {
	return func(t *domain.Ticket) {
		t.Items = items
	}
}

// NewTestTicket returns a ticket with one core drilling item and a unique
// number.
func NewTestTicket(customer string, opts ...TicketOption) *domain.Ticket {
	now := time.Now().UTC().Truncate(time.Second)
	t := &domain.Ticket{
		ID:          uuid.New().String(),
		Number:      fmt.Sprintf("T-TEST%02d", testNumberCounter.Add(1)),
		Customer:    customer,
		WorkTypes:   []domain.WorkTypeID{domain.CoreDrilling},
		Description: "CORE DRILLING",
		Items:       []domain.WorkItem{NewTestCoreDrillItem(`4"`, 8, 3)},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewTestCoreDrillItem returns a finalized CORE_DRILLING item with one hole
// configuration.
func NewTestCoreDrillItem(bit string, depth float64, qty int) domain.WorkItem {
	return domain.WorkItem{
		WorkType: domain.CoreDrilling,
		Quantity: float64(qty),
		Unit:     domain.UnitHoles,
		Details: domain.CoreDrillingDetails{Holes: []domain.HoleConfig{
			{BitSize: bit, DepthInches: depth, Quantity: qty},
		}},
	}
}

// NewTestSawItem returns a finalized linear-mode sawing item.
func NewTestSawItem(id domain.WorkTypeID, lf, depth float64) domain.WorkItem {
	return domain.WorkItem{
		WorkType: id,
		Quantity: lf,
		Unit:     domain.UnitLinearFeet,
		Details: domain.SawingDetails{Cuts: []domain.SawingCut{{
			InputMode:  domain.InputLinear,
			LinearFeet: lf,
			CutDepth:   depth,
			BladesUsed: []string{`24"`},
		}}},
	}
}
