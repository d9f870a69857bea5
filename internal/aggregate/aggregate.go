// Package aggregate computes canonical quantities from structured work
// details. Every function is pure; missing optional data counts as zero.
package aggregate

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cutsheet/internal/domain"
)

const inchesPerFoot = 12.0

// InchesToFeet converts inches to feet.
func InchesToFeet(in float64) float64 {
	return in / inchesPerFoot
}

// TotalHoles sums the quantity of every hole entry.
func TotalHoles(holes []domain.HoleConfig) int {
	total := 0
	for _, h := range holes {
		total += h.Quantity
	}
	return total
}

// Perimeter is the linear feet cut around one rectangular opening.
func Perimeter(a domain.CutArea) float64 {
	return 2*a.Length + 2*a.Width
}

// AreaLinearFeet is the perimeter of the area times its quantity.
func AreaLinearFeet(a domain.CutArea) float64 {
	return Perimeter(a) * float64(a.Quantity)
}

// DeriveCut returns cut with LinearFeet and CutDepth filled in. For area
// mode cuts, linear feet is the sum of AreaLinearFeet and the depth comes
// from the first area: all areas within one cut share a depth. Linear mode
// cuts are returned unchanged.
func DeriveCut(cut domain.SawingCut) domain.SawingCut {
	if cut.InputMode != domain.InputArea {
		return cut
	}
	var lf float64
	for _, a := range cut.Areas {
		lf += AreaLinearFeet(a)
	}
	cut.LinearFeet = lf
	cut.CutDepth = 0
	if len(cut.Areas) > 0 {
		cut.CutDepth = cut.Areas[0].Depth
	}
	return cut
}

// TotalLinearFeet sums the linear feet of every cut, deriving area mode
// cuts first.
func TotalLinearFeet(cuts []domain.SawingCut) float64 {
	var total float64
	for _, c := range cuts {
		total += DeriveCut(c).LinearFeet
	}
	return total
}

// MaxCutDepth is the deepest cut in the list.
func MaxCutDepth(cuts []domain.SawingCut) float64 {
	var deepest float64
	for _, c := range cuts {
		if d := DeriveCut(c).CutDepth; d > deepest {
			deepest = d
		}
	}
	return deepest
}

// CanonicalQuantity computes the authoritative quantity of item. Core
// drilling and sawing quantities are always derived from details; general
// work keeps the quantity already set (typically a folded quick-entry total).
func CanonicalQuantity(item domain.WorkItem) (float64, domain.Unit, error) {
	caps, err := domain.Classify(item.WorkType)
	if err != nil {
		return 0, "", err
	}
	switch d := item.Details.(type) {
	case domain.CoreDrillingDetails:
		return float64(TotalHoles(d.Holes)), caps.Unit, nil
	case domain.SawingDetails:
		return TotalLinearFeet(d.Cuts), caps.Unit, nil
	}
	return item.Quantity, caps.Unit, nil
}

// Finalize returns item with derived cuts, a recomputed quantity and unit,
// and trimmed notes. It fails when the details variant does not belong to
// the work type or an entry is invalid.
func Finalize(item domain.WorkItem) (domain.WorkItem, error) {
	if err := item.CheckDetails(); err != nil {
		return domain.WorkItem{}, err
	}
	switch d := item.Details.(type) {
	case domain.CoreDrillingDetails:
		for i, h := range d.Holes {
			if err := h.Validate(); err != nil {
				return domain.WorkItem{}, fmt.Errorf("%s holes[%d]: %w", item.WorkType, i, err)
			}
		}
	case domain.SawingDetails:
		cuts := make([]domain.SawingCut, len(d.Cuts))
		for i, c := range d.Cuts {
			if err := c.Validate(); err != nil {
				return domain.WorkItem{}, fmt.Errorf("%s cuts[%d]: %w", item.WorkType, i, err)
			}
			cuts[i] = DeriveCut(c)
		}
		d.Cuts = cuts
		item.Details = d
	}
	q, unit, err := CanonicalQuantity(item)
	if err != nil {
		return domain.WorkItem{}, err
	}
	if q < 0 {
		return domain.WorkItem{}, fmt.Errorf("%w: %s quantity %v", domain.ErrInvalidDimension, item.WorkType, q)
	}
	item.Quantity = q
	item.Unit = unit
	item.Notes = strings.TrimSpace(item.Notes)
	return item, nil
}

// Commit finalizes item and stores it in order, replacing any existing item
// of the same work type. The stored item is returned.
func Commit(order *domain.WorkOrder, item domain.WorkItem) (domain.WorkItem, error) {
	final, err := Finalize(item)
	if err != nil {
		return domain.WorkItem{}, err
	}
	order.Put(final)
	return final, nil
}
