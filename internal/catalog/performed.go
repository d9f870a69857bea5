package catalog

import "github.com/alexanderramin/cutsheet/internal/domain"

func sawingFields() []FieldSpec {
	return []FieldSpec{
		list(FieldCuts, "Cuts", ListCut),
		single("cut_type", "Cut Type", "wet", "dry"),
		text(FieldNotes, "Notes"),
	}
}

var performed = newCatalog("work performed", []entry{
	{
		id:     domain.CoreDrilling,
		header: "CORE DRILLING",
		fields: []FieldSpec{
			list(FieldHoles, "Holes", ListHole),
			text(FieldNotes, "Notes"),
		},
	},
	{id: domain.WallCutting, header: "WALL SAWING", fields: sawingFields()},
	{id: domain.SlabSawing, header: "SLAB SAWING", fields: sawingFields()},
	{id: domain.HandSawing, header: "HAND SAWING", fields: sawingFields()},
	{id: domain.WireSawing, header: "WIRE SAWING", fields: sawingFields()},
	{id: domain.ChainSaw, header: "CHAIN SAW", fields: sawingFields()},
	{
		id:     domain.BreakAndRemove,
		header: "BREAK & REMOVE",
		fields: []FieldSpec{
			single("removal_method", "Removal Method", "Jackhammer", "Brokk", "Skid Steer", "Hand Removal"),
			single("equipment", "Equipment", "60lb Breaker", "90lb Breaker", "Brokk 170", "Bobcat"),
			text(FieldNotes, "Notes"),
		},
	},
	{
		id:     domain.JackHammering,
		header: "JACK HAMMERING",
		fields: []FieldSpec{
			single("equipment", "Equipment", "30lb Chipping Hammer", "60lb Breaker", "90lb Breaker"),
			text(FieldNotes, "Notes"),
		},
	},
	{
		id:     domain.Brokk,
		header: "BROKK",
		fields: []FieldSpec{
			single("equipment", "Equipment", "Brokk 110", "Brokk 170", "Brokk 300"),
			text(FieldNotes, "Notes"),
		},
	},
	{
		id:     domain.ConcreteDemolition,
		header: "CONCRETE DEMOLITION",
		fields: []FieldSpec{
			text("duration", "Duration"),
			text("equipment", "Equipment"),
			text(FieldNotes, "Notes"),
		},
	},
	{
		id:     domain.GPRScanning,
		header: "GPR SCANNING",
		fields: []FieldSpec{
			text("duration", "Duration"),
			yesNo("report_required", "Report Required"),
			text("report_email", "Report Email").when("report_required", "Yes"),
			text(FieldNotes, "Notes"),
		},
	},
})

// Performed returns the catalog used when recording work done on site.
func Performed() *Catalog { return performed }
