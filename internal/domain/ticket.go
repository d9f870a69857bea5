package domain

import (
	"fmt"
	"time"
)

// Ticket is a finalized job ticket: the composed description and
// recommendations for the dispatched work plus the work actually performed.
type Ticket struct {
	ID              string
	Number          string
	Customer        string
	JobSite         string
	ScheduledDate   *time.Time
	WorkTypes       []WorkTypeID
	Description     string
	Recommendations []string
	Items           []WorkItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DisplayID returns the ticket number, or a truncated ID when no number
// has been assigned.
func (t *Ticket) DisplayID() string {
	if t.Number != "" {
		return t.Number
	}
	if len(t.ID) > 8 {
		return t.ID[:8]
	}
	return t.ID
}

// Validate checks the fields required before a ticket is stored.
func (t *Ticket) Validate() error {
	if t.Customer == "" {
		return fmt.Errorf("customer is required")
	}
	if len(t.WorkTypes) == 0 && len(t.Items) == 0 {
		return fmt.Errorf("ticket has no work")
	}
	for i := range t.Items {
		if err := t.Items[i].CheckDetails(); err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
	}
	return nil
}
