package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cutsheet/internal/catalog"
	"github.com/alexanderramin/cutsheet/internal/domain"
)

const dateLayout = "2006-01-02"

// Batch kinds accepted in work_performed[].batch.kind.
const (
	BatchMultiCut    = "multicut"
	BatchChainsaw    = "chainsaw"
	BatchBreakRemove = "break-remove"
	BatchJackhammer  = "jackhammer"
	BatchBrokk       = "brokk"
)

// batchFits reports whether a batch kind may be used on a work type.
func batchFits(kind string, id domain.WorkTypeID) bool {
	switch kind {
	case BatchMultiCut:
		return id.IsMultiCut()
	case BatchChainsaw:
		return id.IsChainsaw()
	case BatchBreakRemove:
		return id == domain.BreakAndRemove
	case BatchJackhammer:
		return id == domain.JackHammering
	case BatchBrokk:
		return id == domain.Brokk
	}
	return false
}

// ValidateTicketFile checks the ticket file for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateTicketFile(f *TicketFile) []error {
	var errs []error

	errs = append(errs, validateTicket(&f.Ticket)...)
	errs = append(errs, validateDispatch(f.Dispatch)...)
	errs = append(errs, validateWorkPerformed(f.WorkPerformed)...)

	if len(f.Dispatch) == 0 && len(f.WorkPerformed) == 0 {
		errs = append(errs, fmt.Errorf("ticket file has no dispatch or work_performed entries"))
	}
	return errs
}

func validateTicket(t *TicketImport) []error {
	var errs []error
	if strings.TrimSpace(t.Customer) == "" {
		errs = append(errs, fmt.Errorf("ticket.customer is required"))
	}
	if t.ScheduledDate != nil {
		if _, err := time.Parse(dateLayout, *t.ScheduledDate); err != nil {
			errs = append(errs, fmt.Errorf("ticket.scheduled_date: invalid date format %q (expected YYYY-MM-DD)", *t.ScheduledDate))
		}
	}
	return errs
}

func validateDispatch(entries []DispatchImport) []error {
	var errs []error
	cat := catalog.Dispatch()
	seen := make(map[string]bool)

	for i, d := range entries {
		prefix := fmt.Sprintf("dispatch[%d]", i)
		if d.Type == "" {
			errs = append(errs, fmt.Errorf("%s.type is required", prefix))
			continue
		}
		if seen[d.Type] {
			errs = append(errs, fmt.Errorf("%s.type: duplicate work type %q", prefix, d.Type))
		}
		seen[d.Type] = true

		id := domain.WorkTypeID(d.Type)
		if !cat.Has(id) {
			errs = append(errs, fmt.Errorf("%s.type: unknown dispatch work type %q", prefix, d.Type))
			continue
		}
		for name := range d.Fields {
			if _, ok := cat.Field(id, name); !ok {
				errs = append(errs, fmt.Errorf("%s.fields.%s: unknown field for %s", prefix, name, d.Type))
			}
		}
	}
	return errs
}

func validateWorkPerformed(items []WorkItemImport) []error {
	var errs []error
	cat := catalog.Performed()

	for i, wi := range items {
		prefix := fmt.Sprintf("work_performed[%d]", i)
		if wi.Type == "" {
			errs = append(errs, fmt.Errorf("%s.type is required", prefix))
			continue
		}
		id := domain.WorkTypeID(wi.Type)
		caps, err := domain.Classify(id)
		if err != nil || !cat.Has(id) {
			errs = append(errs, fmt.Errorf("%s.type: unknown performed work type %q", prefix, wi.Type))
			continue
		}

		if wi.Quantity != nil && *wi.Quantity < 0 {
			errs = append(errs, fmt.Errorf("%s.quantity must be >= 0", prefix))
		}
		if len(wi.Holes) > 0 && caps.Category != domain.CategoryCoreDrilling {
			errs = append(errs, fmt.Errorf("%s.holes: %s does not take holes", prefix, wi.Type))
		}
		if (len(wi.Cuts) > 0 || wi.CutType != "") && caps.Category != domain.CategorySawing {
			errs = append(errs, fmt.Errorf("%s.cuts: %s does not take cuts", prefix, wi.Type))
		}
		if wi.CutType != "" && !domain.ValidCutTypes[wi.CutType] {
			errs = append(errs, fmt.Errorf("%s.cut_type: invalid value %q", prefix, wi.CutType))
		}
		for j, h := range wi.Holes {
			errs = append(errs, validateHole(fmt.Sprintf("%s.holes[%d]", prefix, j), h)...)
		}
		for j, c := range wi.Cuts {
			errs = append(errs, validateCut(fmt.Sprintf("%s.cuts[%d]", prefix, j), c)...)
		}
		if wi.Batch != nil {
			errs = append(errs, validateBatch(prefix+".batch", id, wi.Batch)...)
		}
	}
	return errs
}

func validateHole(prefix string, h HoleImport) []error {
	var errs []error
	if strings.TrimSpace(h.BitSize) == "" {
		errs = append(errs, fmt.Errorf("%s.bit_size is required", prefix))
	}
	if h.DepthInches < 0 {
		errs = append(errs, fmt.Errorf("%s.depth_inches must be >= 0", prefix))
	}
	if h.Quantity < 1 {
		errs = append(errs, fmt.Errorf("%s.quantity must be >= 1", prefix))
	}
	return errs
}

func validateCut(prefix string, c CutImport) []error {
	var errs []error
	switch domain.InputMode(c.InputMode) {
	case domain.InputLinear:
		if c.LinearFeet < 0 {
			errs = append(errs, fmt.Errorf("%s.linear_feet must be >= 0", prefix))
		}
		if c.CutDepth < 0 {
			errs = append(errs, fmt.Errorf("%s.cut_depth must be >= 0", prefix))
		}
	case domain.InputArea:
		if len(c.Areas) == 0 {
			errs = append(errs, fmt.Errorf("%s.areas: area mode needs at least one area", prefix))
		}
		for k, a := range c.Areas {
			ap := fmt.Sprintf("%s.areas[%d]", prefix, k)
			for _, d := range []struct {
				name string
				v    float64
			}{{"length", a.Length}, {"width", a.Width}, {"depth", a.Depth}} {
				if d.v <= 0 {
					errs = append(errs, fmt.Errorf("%s.%s must be > 0", ap, d.name))
				}
			}
			if a.Quantity < 1 {
				errs = append(errs, fmt.Errorf("%s.quantity must be >= 1", ap))
			}
		}
	default:
		errs = append(errs, fmt.Errorf("%s.input_mode: invalid value %q", prefix, c.InputMode))
	}
	if len(nonBlank(c.Blades)) == 0 {
		errs = append(errs, fmt.Errorf("%s.blades: at least one blade is required", prefix))
	}
	return errs
}

func validateBatch(prefix string, id domain.WorkTypeID, b *BatchImport) []error {
	var errs []error
	if !batchFits(b.Kind, id) {
		errs = append(errs, fmt.Errorf("%s.kind: %q batch does not apply to %s", prefix, b.Kind, id))
		return errs
	}
	if len(b.Entries) == 0 {
		errs = append(errs, fmt.Errorf("%s.entries: batch has no entries", prefix))
	}
	for i, e := range b.Entries {
		ep := fmt.Sprintf("%s.entries[%d]", prefix, i)
		var required []string
		switch b.Kind {
		case BatchMultiCut, BatchChainsaw:
			if e.Cuts < 1 {
				errs = append(errs, fmt.Errorf("%s.cuts must be >= 1", ep))
			}
			required = []string{"length", "depth"}
		case BatchBreakRemove, BatchJackhammer:
			required = []string{"length", "width"}
		case BatchBrokk:
			required = []string{"length", "width", "thickness"}
		}
		for _, name := range required {
			if e.value(name) <= 0 {
				errs = append(errs, fmt.Errorf("%s.%s must be > 0", ep, name))
			}
		}
	}
	if (b.Kind == BatchMultiCut || b.Kind == BatchChainsaw) && len(nonBlank(b.Blades)) == 0 {
		errs = append(errs, fmt.Errorf("%s.blades: at least one blade is required", prefix))
	}
	return errs
}

func (e BatchEntryImport) value(name string) float64 {
	switch name {
	case "length":
		return e.Length
	case "width":
		return e.Width
	case "depth":
		return e.Depth
	case "thickness":
		return e.Thickness
	}
	return 0
}

func nonBlank(ss []string) []string {
	var out []string
	for _, s := range ss {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
