package compose

import (
	"fmt"

	"github.com/alexanderramin/cutsheet/internal/aggregate"
	"github.com/alexanderramin/cutsheet/internal/domain"
)

// WorkPerformed summarizes committed work items, one line per item in
// order, e.g. "CORE DRILLING: 12 holes" or `SLAB SAWING: 142.5 LF @ 6" deep`.
func WorkPerformed(order *domain.WorkOrder) []string {
	items := order.Items()
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, ItemLine(it))
	}
	return out
}

// ItemLine renders one committed work item.
func ItemLine(it domain.WorkItem) string {
	line := it.WorkType.Title()
	switch {
	case it.Unit == domain.UnitEach && it.Quantity == 0:
	case it.Unit == "":
		line += ": " + domain.FormatQuantity(it.Quantity)
	default:
		line += fmt.Sprintf(": %s %s", domain.FormatQuantity(it.Quantity), it.Unit)
	}
	if d, ok := it.Details.(domain.SawingDetails); ok {
		if depth := aggregate.MaxCutDepth(d.Cuts); depth > 0 {
			line += fmt.Sprintf(` @ %s" deep`, domain.FormatQuantity(depth))
		}
	}
	if it.Notes != "" {
		line += " (" + it.Notes + ")"
	}
	return line
}
