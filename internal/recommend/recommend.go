// Package recommend suggests equipment for the selected work.
package recommend

import (
	"strings"

	"github.com/alexanderramin/cutsheet/internal/catalog"
	"github.com/alexanderramin/cutsheet/internal/detail"
	"github.com/alexanderramin/cutsheet/internal/domain"
)

var equipment = map[domain.WorkTypeID][]string{
	domain.CoreDrilling:       {"Core Drill", "Drill Stand", "Wet Vac", "Water Tank"},
	domain.WallCutting:        {"Wall Saw", "Hydraulic Power Pack", "Wall Saw Track", "Water Tank"},
	domain.SlabSawing:         {"Walk-Behind Slab Saw", "Water Tank", "Slurry Vac"},
	domain.HandSawing:         {"Hand Saw", "Water Tank", "Slurry Vac"},
	domain.WireSawing:         {"Wire Saw", "Hydraulic Power Pack", "Diamond Wire"},
	domain.ChainSaw:           {"Chain Saw", "Hydraulic Power Pack", "Water Tank"},
	domain.ConcreteDemolition: {"Jackhammer", "Air Compressor", "Skid Steer", "Dumpster"},
	domain.BreakAndRemove:     {"Jackhammer", "Air Compressor", "Wheelbarrow"},
	domain.JackHammering:      {"Jackhammer", "Air Compressor"},
	domain.Brokk:              {"Brokk", "Equipment Trailer"},
	domain.GPRScanning:        {"GPR Scanner", "Marking Paint"},
}

// Equipment returns the static suggestions for one work type.
func Equipment(id domain.WorkTypeID) []string {
	return append([]string(nil), equipment[id]...)
}

// Recommend returns deduplicated equipment suggestions ordered by work type
// and then by table order. Core drilling also gets one core bit per distinct
// hole diameter.
func Recommend(selected []domain.WorkTypeID, details map[domain.WorkTypeID]*detail.Record) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(s string) {
		if seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}
	for _, id := range selected {
		for _, s := range equipment[id] {
			add(s)
		}
		if id == domain.CoreDrilling {
			for _, d := range Diameters(details[id]) {
				add(d + `" Core Bit`)
			}
		}
	}
	return out
}

// Diameters lists the distinct hole diameters of a core drilling record in
// first-seen order, without inch marks.
func Diameters(rec *detail.Record) []string {
	if rec == nil {
		return nil
	}
	var out []string
	seen := make(map[string]bool)
	for _, h := range rec.Holes(catalog.FieldHoles) {
		d := normalizeDiameter(h.Diameter)
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}

func normalizeDiameter(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, `"`)
	return strings.TrimSpace(s)
}
