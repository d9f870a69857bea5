package catalog

import "github.com/alexanderramin/cutsheet/internal/domain"

// Field names shared by the compositor and recommender.
const (
	FieldLocations = "locations"
	FieldHoles     = "holes"
	FieldCuts      = "cuts"
	FieldAreas     = "areas"
	FieldNotes     = "notes"
)

var dispatch = newCatalog("dispatch", []entry{
	{
		id:     domain.CoreDrilling,
		header: "CORE DRILLING",
		fields: []FieldSpec{
			multi(FieldLocations, "Locations", "Floor", "Wall", "Ceiling", "Deck", "Foundation"),
			list(FieldHoles, "Holes", ListHole),
			single("access", "Access", "Ground Level", "Ladder/Lift"),
			single("lift_type", "Lift Type", "Step Ladder", "Extension Ladder", "Scissor Lift", "Boom Lift").
				when("access", "Ladder/Lift"),
			yesNo("water_control", "Water Control Required"),
			text(FieldNotes, "Notes"),
		},
	},
	{
		id:     domain.WallCutting,
		header: "WALL SAWING",
		fields: []FieldSpec{
			list(FieldCuts, "Cuts", ListCut),
			single("wall_material", "Wall Material", "Concrete", "Block", "Brick", "Tilt-Up"),
			yesNo("haul_off", "Haul Off"),
			text("haul_off_location", "Haul Off Location").when("haul_off", "Yes"),
			text(FieldNotes, "Notes"),
		},
	},
	{
		id:     domain.SlabSawing,
		header: "SLAB SAWING",
		fields: []FieldSpec{
			list(FieldCuts, "Cuts", ListCut),
			single("cut_type", "Cut Type", "Wet", "Dry"),
			multi("slab_type", "Slab Type", "On Grade", "Elevated", "Post-Tension", "Asphalt"),
			text(FieldNotes, "Notes"),
		},
	},
	{
		id:     domain.HandSawing,
		header: "HAND SAWING",
		fields: []FieldSpec{
			list(FieldCuts, "Cuts", ListCut),
			single("cut_type", "Cut Type", "Wet", "Dry"),
			text(FieldNotes, "Notes"),
		},
	},
	{
		id:     domain.WireSawing,
		header: "WIRE SAWING",
		fields: []FieldSpec{
			list(FieldCuts, "Cuts", ListCut),
			text(FieldNotes, "Notes"),
		},
	},
	{
		id:     domain.ConcreteDemolition,
		header: "CONCRETE DEMOLITION",
		fields: []FieldSpec{
			list(FieldAreas, "Areas", ListArea),
			single("removal_method", "Removal Method", "Jackhammer", "Brokk", "Skid Steer", "Hand Removal"),
			yesNo("haul_off", "Haul Off"),
			text("haul_off_location", "Haul Off Location").when("haul_off", "Yes"),
			text(FieldNotes, "Notes"),
		},
	},
	{
		id:     domain.GPRScanning,
		header: "GPR SCANNING - LOCATE EMBEDDED OBJECTS PRIOR TO CUTTING",
		fields: []FieldSpec{
			multi("scan_targets", "Scan For", "Rebar", "Conduit", "Post-Tension Cables", "Voids"),
			yesNo("report_required", "Report Required"),
			text("report_email", "Report Email").when("report_required", "Yes"),
			text(FieldNotes, "Notes"),
		},
	},
})

// Dispatch returns the catalog used when scheduling a job.
func Dispatch() *Catalog { return dispatch }
