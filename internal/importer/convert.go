package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cutsheet/internal/aggregate"
	"github.com/alexanderramin/cutsheet/internal/catalog"
	"github.com/alexanderramin/cutsheet/internal/detail"
	"github.com/alexanderramin/cutsheet/internal/domain"
	"github.com/alexanderramin/cutsheet/internal/quickentry"
	"gopkg.in/yaml.v3"
)

// Draft is a ticket file converted into engine types, ready to be composed
// and saved.
type Draft struct {
	Customer      string
	JobSite       string
	ScheduledDate *time.Time
	Selected      []domain.WorkTypeID
	Details       map[domain.WorkTypeID]*detail.Record
	Order         *domain.WorkOrder
}

// Convert transforms a validated TicketFile into a Draft.
// Call ValidateTicketFile first; Convert assumes the file is valid but still
// reports field values that do not fit their catalog spec.
func Convert(f *TicketFile) (*Draft, error) {
	d := &Draft{
		Customer: strings.TrimSpace(f.Ticket.Customer),
		JobSite:  strings.TrimSpace(f.Ticket.JobSite),
		Details:  make(map[domain.WorkTypeID]*detail.Record),
		Order:    domain.NewWorkOrder(),
	}
	if f.Ticket.ScheduledDate != nil {
		t, err := time.Parse(dateLayout, *f.Ticket.ScheduledDate)
		if err != nil {
			return nil, fmt.Errorf("parsing scheduled_date: %w", err)
		}
		d.ScheduledDate = &t
	}

	for i, di := range f.Dispatch {
		id := domain.WorkTypeID(di.Type)
		rec, err := convertDispatch(id, di.Fields)
		if err != nil {
			return nil, fmt.Errorf("dispatch[%d]: %w", i, err)
		}
		d.Selected = append(d.Selected, id)
		d.Details[id] = rec
	}

	for i, wi := range f.WorkPerformed {
		item, err := convertWorkItem(wi)
		if err != nil {
			return nil, fmt.Errorf("work_performed[%d]: %w", i, err)
		}
		if _, err := aggregate.Commit(d.Order, item); err != nil {
			return nil, fmt.Errorf("work_performed[%d]: %w", i, err)
		}
	}
	return d, nil
}

func convertDispatch(id domain.WorkTypeID, fields map[string]yaml.Node) (*detail.Record, error) {
	rec, err := detail.NewFromCatalog(catalog.Dispatch(), id)
	if err != nil {
		return nil, err
	}
	for _, spec := range rec.Specs() {
		node, ok := fields[spec.Name]
		if !ok {
			continue
		}
		v, err := decodeValue(spec, &node)
		if err != nil {
			return nil, fmt.Errorf("fields.%s: %w", spec.Name, err)
		}
		if err := rec.SetField(spec.Name, v); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// decodeValue decodes a raw field node into the value type its spec expects.
func decodeValue(spec catalog.FieldSpec, n *yaml.Node) (detail.Value, error) {
	switch spec.Kind {
	case catalog.KindMultiSelect:
		if n.Kind == yaml.ScalarNode {
			return detail.Choices{n.Value}, nil
		}
		var c []string
		if err := n.Decode(&c); err != nil {
			return nil, err
		}
		return detail.Choices(c), nil
	case catalog.KindStructuredList:
		switch spec.List {
		case catalog.ListHole:
			var h []detail.HoleSpec
			if err := n.Decode(&h); err != nil {
				return nil, err
			}
			return detail.Holes(h), nil
		case catalog.ListCut:
			var c []detail.CutSpec
			if err := n.Decode(&c); err != nil {
				return nil, err
			}
			return detail.Cuts(c), nil
		case catalog.ListArea:
			var a []detail.AreaSpec
			if err := n.Decode(&a); err != nil {
				return nil, err
			}
			return detail.Areas(a), nil
		}
		return nil, fmt.Errorf("%w: unknown list kind %q", detail.ErrFieldKind, spec.List)
	case catalog.KindYesNo:
		if n.Kind == yaml.ScalarNode && n.Tag == "!!bool" {
			var b bool
			if err := n.Decode(&b); err != nil {
				return nil, err
			}
			if b {
				return detail.Text("Yes"), nil
			}
			return detail.Text("No"), nil
		}
	}
	if n.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("%w: %s field needs a single value", detail.ErrFieldKind, spec.Kind)
	}
	return detail.Text(n.Value), nil
}

func convertWorkItem(wi WorkItemImport) (domain.WorkItem, error) {
	id := domain.WorkTypeID(wi.Type)
	caps, err := domain.Classify(id)
	if err != nil {
		return domain.WorkItem{}, err
	}
	item := domain.WorkItem{WorkType: id, Notes: wi.Notes}
	if wi.Quantity != nil {
		item.Quantity = *wi.Quantity
	}

	switch caps.Category {
	case domain.CategoryCoreDrilling:
		holes := make([]domain.HoleConfig, 0, len(wi.Holes))
		for _, h := range wi.Holes {
			holes = append(holes, domain.HoleConfig{
				BitSize:          strings.TrimSpace(h.BitSize),
				DepthInches:      h.DepthInches,
				Quantity:         h.Quantity,
				AboveFiveFeet:    h.AboveFiveFeet,
				PlasticSetup:     h.PlasticSetup,
				CutSteel:         h.CutSteel,
				SteelEncountered: h.SteelEncountered,
			})
		}
		item.Details = domain.CoreDrillingDetails{Holes: holes}

	case domain.CategorySawing:
		cuts := make([]domain.SawingCut, 0, len(wi.Cuts)+1)
		for _, c := range wi.Cuts {
			cuts = append(cuts, convertCut(c))
		}
		if wi.Batch != nil {
			cut, err := batchCut(wi.Batch)
			if err != nil {
				return domain.WorkItem{}, fmt.Errorf("batch: %w", err)
			}
			cuts = append(cuts, cut)
		}
		item.Details = domain.SawingDetails{Cuts: cuts, CutType: domain.CutType(wi.CutType)}

	case domain.CategoryGeneral:
		if wi.Batch != nil {
			folded, err := batchItem(id, wi.Batch)
			if err != nil {
				return domain.WorkItem{}, fmt.Errorf("batch: %w", err)
			}
			folded.Notes = joinNotes(wi.Notes, folded.Notes)
			if wi.Duration != "" {
				g := folded.Details.(domain.GeneralDetails)
				g.Duration = wi.Duration
				folded.Details = g
			}
			return folded, nil
		}
		item.Details = domain.GeneralDetails{Duration: wi.Duration, Equipment: wi.Equipment}
	}
	return item, nil
}

func convertCut(c CutImport) domain.SawingCut {
	cut := domain.SawingCut{
		InputMode:        domain.InputMode(c.InputMode),
		LinearFeet:       c.LinearFeet,
		CutDepth:         c.CutDepth,
		BladesUsed:       nonBlank(c.Blades),
		CutSteel:         c.CutSteel,
		Overcut:          c.Overcut,
		SteelEncountered: c.SteelEncountered,
		ChainsawFinish: domain.ChainsawFinish{
			Chainsawed:          c.Chainsawed,
			ChainsawAreas:       c.ChainsawAreas,
			ChainsawWidthInches: c.ChainsawWidthInches,
		},
	}
	for _, a := range c.Areas {
		cut.Areas = append(cut.Areas, domain.CutArea{
			Length:           a.Length,
			Width:            a.Width,
			Depth:            a.Depth,
			Quantity:         a.Quantity,
			CutSteel:         a.CutSteel,
			Overcut:          a.Overcut,
			SteelEncountered: a.SteelEncountered,
		})
	}
	return cut
}

// BatchWorkItem folds a standalone quick-entry batch into an uncommitted
// work item for id.
func BatchWorkItem(id domain.WorkTypeID, b *BatchImport) (domain.WorkItem, error) {
	if !batchFits(b.Kind, id) {
		return domain.WorkItem{}, fmt.Errorf("%s batch does not apply to %s", b.Kind, id)
	}
	if !id.IsSawing() {
		return batchItem(id, b)
	}
	cut, err := batchCut(b)
	if err != nil {
		return domain.WorkItem{}, err
	}
	return domain.WorkItem{
		WorkType: id,
		Details:  domain.SawingDetails{Cuts: []domain.SawingCut{cut}},
	}, nil
}

// batchCut folds a multicut or chainsaw batch into one linear-mode cut.
func batchCut(b *BatchImport) (domain.SawingCut, error) {
	var total quickentry.LinearTotal
	switch b.Kind {
	case BatchMultiCut:
		var batch quickentry.MultiCutBatch
		for i, e := range b.Entries {
			if err := batch.Add(quickentry.CutEntry{NumCuts: e.Cuts, LengthFeet: e.Length, DepthInches: e.Depth}); err != nil {
				return domain.SawingCut{}, fmt.Errorf("entries[%d]: %w", i, err)
			}
		}
		t, err := quickentry.FoldMultiCut(&batch)
		if err != nil {
			return domain.SawingCut{}, err
		}
		total = t
	case BatchChainsaw:
		var batch quickentry.ChainsawBatch
		for i, e := range b.Entries {
			if err := batch.Add(quickentry.ChainsawEntry{NumCuts: e.Cuts, LengthInches: e.Length, DepthInches: e.Depth}); err != nil {
				return domain.SawingCut{}, fmt.Errorf("entries[%d]: %w", i, err)
			}
		}
		t, err := quickentry.FoldChainsaw(&batch)
		if err != nil {
			return domain.SawingCut{}, err
		}
		total = t
	default:
		return domain.SawingCut{}, fmt.Errorf("%q is not a cut batch", b.Kind)
	}
	return total.Cut(b.Blades)
}

// batchItem folds an area or brokk batch into a complete work item.
func batchItem(id domain.WorkTypeID, b *BatchImport) (domain.WorkItem, error) {
	switch b.Kind {
	case BatchBreakRemove, BatchJackhammer:
		var batch quickentry.AreaBatch
		for i, e := range b.Entries {
			if err := batch.Add(quickentry.AreaEntry{Length: e.Length, Width: e.Width}); err != nil {
				return domain.WorkItem{}, fmt.Errorf("entries[%d]: %w", i, err)
			}
		}
		t, err := quickentry.FoldArea(&batch)
		if err != nil {
			return domain.WorkItem{}, err
		}
		return t.Item(id, b.RemovalMethod, b.Equipment)
	case BatchBrokk:
		var batch quickentry.BrokkBatch
		for i, e := range b.Entries {
			if err := batch.Add(quickentry.BrokkEntry{Length: e.Length, Width: e.Width, ThicknessInches: e.Thickness}); err != nil {
				return domain.WorkItem{}, fmt.Errorf("entries[%d]: %w", i, err)
			}
		}
		t, err := quickentry.FoldBrokk(&batch)
		if err != nil {
			return domain.WorkItem{}, err
		}
		return t.Item(b.Equipment), nil
	}
	return domain.WorkItem{}, fmt.Errorf("%q is not an area batch", b.Kind)
}

func joinNotes(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "; ")
}
