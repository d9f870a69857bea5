package quickentry

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cutsheet/internal/aggregate"
	"github.com/alexanderramin/cutsheet/internal/domain"
)

// LinearTotal is a folded cut batch: total linear feet and the deepest cut.
type LinearTotal struct {
	LinearFeet float64
	CutDepth   float64
	Entries    int
}

// AreaTotal is a folded break-and-remove or jackhammer batch.
type AreaTotal struct {
	SquareFeet float64
	Entries    int
}

// BrokkTotal is a folded brokk batch. AverageThickness is reported next to
// the area and is never summed.
type BrokkTotal struct {
	SquareFeet       float64
	AverageThickness float64
	Entries          int
}

// FoldMultiCut sums count x length in feet; depth is the max across rows.
func FoldMultiCut(b *MultiCutBatch) (LinearTotal, error) {
	rows, err := b.rows()
	if err != nil {
		return LinearTotal{}, err
	}
	var t LinearTotal
	for _, r := range rows {
		t.LinearFeet += float64(r.NumCuts) * r.LengthFeet
		t.CutDepth = max(t.CutDepth, r.DepthInches)
	}
	t.Entries = len(rows)
	return t, nil
}

// FoldChainsaw sums count x length in inches and converts once to feet;
// depth is the max across rows.
func FoldChainsaw(b *ChainsawBatch) (LinearTotal, error) {
	rows, err := b.rows()
	if err != nil {
		return LinearTotal{}, err
	}
	var inches float64
	var t LinearTotal
	for _, r := range rows {
		inches += float64(r.NumCuts) * r.LengthInches
		t.CutDepth = max(t.CutDepth, r.DepthInches)
	}
	t.LinearFeet = aggregate.InchesToFeet(inches)
	t.Entries = len(rows)
	return t, nil
}

// FoldArea sums length x width in square feet.
func FoldArea(b *AreaBatch) (AreaTotal, error) {
	rows, err := b.rows()
	if err != nil {
		return AreaTotal{}, err
	}
	var t AreaTotal
	for _, r := range rows {
		t.SquareFeet += r.Length * r.Width
	}
	t.Entries = len(rows)
	return t, nil
}

// FoldBrokk sums length x width and averages thickness.
func FoldBrokk(b *BrokkBatch) (BrokkTotal, error) {
	rows, err := b.rows()
	if err != nil {
		return BrokkTotal{}, err
	}
	var t BrokkTotal
	var thickness float64
	for _, r := range rows {
		t.SquareFeet += r.Length * r.Width
		thickness += r.ThicknessInches
	}
	t.AverageThickness = thickness / float64(len(rows))
	t.Entries = len(rows)
	return t, nil
}

// Cut turns the total into a linear-mode sawing cut.
func (t LinearTotal) Cut(blades []string) (domain.SawingCut, error) {
	var used []string
	for _, b := range blades {
		if b = strings.TrimSpace(b); b != "" {
			used = append(used, b)
		}
	}
	if len(used) == 0 {
		return domain.SawingCut{}, domain.ErrNoBlades
	}
	return domain.SawingCut{
		InputMode:  domain.InputLinear,
		LinearFeet: t.LinearFeet,
		CutDepth:   t.CutDepth,
		BladesUsed: used,
	}, nil
}

// Item turns an area total into a work item for id. The removal method and
// equipment go into the notes text, not a numeric field.
func (t AreaTotal) Item(id domain.WorkTypeID, removalMethod, equipment string) (domain.WorkItem, error) {
	caps, err := domain.Classify(id)
	if err != nil {
		return domain.WorkItem{}, err
	}
	if caps.Category != domain.CategoryGeneral {
		return domain.WorkItem{}, fmt.Errorf("%w: %s does not take an area total", domain.ErrDetailsMismatch, id)
	}
	var notes []string
	if removalMethod != "" {
		notes = append(notes, "Removal method: "+removalMethod)
	}
	if equipment != "" {
		notes = append(notes, "Equipment: "+equipment)
	}
	return domain.WorkItem{
		WorkType: id,
		Quantity: t.SquareFeet,
		Unit:     domain.UnitSquareFeet,
		Notes:    strings.Join(notes, "; "),
		Details:  domain.GeneralDetails{Equipment: equipment},
	}, nil
}

// Item turns a brokk total into a BROKK work item.
func (t BrokkTotal) Item(equipment string) domain.WorkItem {
	notes := fmt.Sprintf(`Average thickness: %s"`, domain.FormatQuantity(t.AverageThickness))
	if equipment != "" {
		notes += "; Equipment: " + equipment
	}
	return domain.WorkItem{
		WorkType: domain.Brokk,
		Quantity: t.SquareFeet,
		Unit:     domain.UnitSquareFeet,
		Notes:    notes,
		Details:  domain.GeneralDetails{Equipment: equipment},
	}
}
