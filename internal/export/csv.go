// Package export writes stored tickets as CSV or JSON.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/alexanderramin/cutsheet/internal/compose"
	"github.com/alexanderramin/cutsheet/internal/domain"
)

const dateLayout = "2006-01-02"

var csvHeader = []string{"Ticket", "Customer", "Job Site", "Scheduled", "Work Type", "Quantity", "Unit", "Notes", "Summary"}

// WriteCSV writes one row per work item. A ticket with no items still gets
// one row so it shows up in the sheet.
func WriteCSV(w io.Writer, tickets []*domain.Ticket) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, t := range tickets {
		scheduled := ""
		if t.ScheduledDate != nil {
			scheduled = t.ScheduledDate.Format(dateLayout)
		}
		prefix := []string{t.DisplayID(), t.Customer, t.JobSite, scheduled}

		if len(t.Items) == 0 {
			if err := cw.Write(append(prefix, "", "", "", "", "")); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
			continue
		}
		for _, it := range t.Items {
			row := append(append([]string(nil), prefix...),
				string(it.WorkType),
				domain.FormatQuantity(it.Quantity),
				string(it.Unit),
				it.Notes,
				compose.ItemLine(it),
			)
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
