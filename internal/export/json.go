package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/cutsheet/internal/compose"
	"github.com/alexanderramin/cutsheet/internal/domain"
)

type jsonExport struct {
	ExportedAt string       `json:"exported_at"`
	Count      int          `json:"count"`
	Tickets    []jsonTicket `json:"tickets"`
}

type jsonTicket struct {
	Number          string     `json:"number"`
	ID              string     `json:"id"`
	Customer        string     `json:"customer"`
	JobSite         string     `json:"job_site,omitempty"`
	ScheduledDate   string     `json:"scheduled_date,omitempty"`
	WorkTypes       []string   `json:"work_types"`
	Description     string     `json:"description"`
	Recommendations []string   `json:"recommendations"`
	WorkPerformed   []string   `json:"work_performed"`
	Items           []jsonItem `json:"items"`
	CreatedAt       string     `json:"created_at"`
}

type jsonItem struct {
	WorkType        string          `json:"work_type"`
	Quantity        float64         `json:"quantity"`
	Unit            string          `json:"unit"`
	Notes           string          `json:"notes,omitempty"`
	DetailsCategory string          `json:"details_category,omitempty"`
	Details         json.RawMessage `json:"details,omitempty"`
}

// WriteJSON writes tickets as one indented JSON document stamped with now.
func WriteJSON(w io.Writer, tickets []*domain.Ticket, now time.Time) error {
	out := jsonExport{
		ExportedAt: now.UTC().Format(time.RFC3339),
		Count:      len(tickets),
		Tickets:    make([]jsonTicket, 0, len(tickets)),
	}

	for _, t := range tickets {
		jt := jsonTicket{
			Number:          t.Number,
			ID:              t.ID,
			Customer:        t.Customer,
			JobSite:         t.JobSite,
			WorkTypes:       make([]string, 0, len(t.WorkTypes)),
			Description:     t.Description,
			Recommendations: append([]string{}, t.Recommendations...),
			WorkPerformed:   []string{},
			Items:           make([]jsonItem, 0, len(t.Items)),
			CreatedAt:       t.CreatedAt.UTC().Format(time.RFC3339),
		}
		if t.ScheduledDate != nil {
			jt.ScheduledDate = t.ScheduledDate.Format(dateLayout)
		}
		for _, id := range t.WorkTypes {
			jt.WorkTypes = append(jt.WorkTypes, string(id))
		}
		for _, it := range t.Items {
			category, data, err := domain.MarshalDetails(it.Details)
			if err != nil {
				return fmt.Errorf("ticket %s: %w", t.DisplayID(), err)
			}
			jt.Items = append(jt.Items, jsonItem{
				WorkType:        string(it.WorkType),
				Quantity:        it.Quantity,
				Unit:            string(it.Unit),
				Notes:           it.Notes,
				DetailsCategory: string(category),
				Details:         data,
			})
			jt.WorkPerformed = append(jt.WorkPerformed, compose.ItemLine(it))
		}
		out.Tickets = append(out.Tickets, jt)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
