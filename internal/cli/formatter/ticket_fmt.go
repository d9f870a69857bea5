package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cutsheet/internal/compose"
	"github.com/alexanderramin/cutsheet/internal/domain"
)

// FormatTicketList renders stored tickets as a table.
func FormatTicketList(tickets []*domain.Ticket, now time.Time) string {
	rows := make([][]string, 0, len(tickets))
	for _, t := range tickets {
		work := make([]string, 0, len(t.WorkTypes))
		for _, id := range t.WorkTypes {
			work = append(work, id.Title())
		}
		site := t.JobSite
		if site == "" {
			site = Dim("--")
		}
		rows = append(rows, []string{
			Bold(t.DisplayID()),
			t.Customer,
			site,
			ScheduleLabel(t.ScheduledDate, now),
			strings.Join(work, ", "),
		})
	}
	return RenderTable([]string{"TICKET", "CUSTOMER", "JOB SITE", "SCHEDULED", "WORK"}, rows)
}

// FormatTicket renders one ticket with its description, recommendations
// and work performed.
func FormatTicket(t *domain.Ticket, now time.Time) string {
	var info strings.Builder
	fmt.Fprintf(&info, "%s %s\n", Dim("Customer: "), t.Customer)
	if t.JobSite != "" {
		fmt.Fprintf(&info, "%s %s\n", Dim("Job Site: "), t.JobSite)
	}
	fmt.Fprintf(&info, "%s %s\n", Dim("Scheduled:"), ScheduleLabel(t.ScheduledDate, now))
	if !t.CreatedAt.IsZero() {
		fmt.Fprintf(&info, "%s %s\n", Dim("Created:  "), t.CreatedAt.Format("Jan 2, 2006 15:04"))
	}
	fmt.Fprintf(&info, "%s %s", Dim("ID:       "), TruncID(t.ID))

	return RenderBox("Ticket "+t.DisplayID(), info.String()) + "\n\n" + FormatComposed(t)
}

// FormatComposed renders the composed parts of a ticket.
func FormatComposed(t *domain.Ticket) string {
	var b strings.Builder

	if t.Description != "" {
		b.WriteString(Header("Description"))
		b.WriteString("\n")
		b.WriteString(t.Description)
		b.WriteString("\n\n")
	}

	if len(t.Recommendations) > 0 {
		b.WriteString(Header("Recommended Equipment"))
		b.WriteString("\n")
		for _, r := range t.Recommendations {
			fmt.Fprintf(&b, "  • %s\n", r)
		}
		b.WriteString("\n")
	}

	if len(t.Items) > 0 {
		b.WriteString(Header("Work Performed"))
		b.WriteString("\n")
		for _, it := range t.Items {
			fmt.Fprintf(&b, "  %s\n", compose.ItemLine(it))
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
