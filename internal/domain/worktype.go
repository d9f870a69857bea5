package domain

import "fmt"

// WorkTypeID identifies a kind of work. Values are stable strings stored on
// tickets and used as catalog keys.
type WorkTypeID string

const (
	CoreDrilling       WorkTypeID = "CORE_DRILLING"
	WallCutting        WorkTypeID = "WALL_CUTTING"
	SlabSawing         WorkTypeID = "SLAB_SAWING"
	HandSawing         WorkTypeID = "HAND_SAWING"
	WireSawing         WorkTypeID = "WIRE_SAWING"
	ConcreteDemolition WorkTypeID = "CONCRETE_DEMOLITION"
	GPRScanning        WorkTypeID = "GPR_SCANNING"
	ChainSaw           WorkTypeID = "CHAIN_SAW"
	BreakAndRemove     WorkTypeID = "BREAK_AND_REMOVE"
	JackHammering      WorkTypeID = "JACK_HAMMERING"
	Brokk              WorkTypeID = "BROKK"
)

// Capabilities are the static classification flags of a work type.
type Capabilities struct {
	Sawing       bool
	CoreDrilling bool
	Chainsaw     bool
	MultiCut     bool
	Demolition   bool
	Scanning     bool
	Unit         Unit
	Category     DetailsCategory
	Title        string
}

// capabilities is the classification table. Every saw subtype is Sawing and
// core drilling never is; only CHAIN_SAW is Chainsaw. MultiCut marks the saws
// whose cuts can be batched as count x length x depth rows.
var capabilities = map[WorkTypeID]Capabilities{
	CoreDrilling:       {CoreDrilling: true, Unit: UnitHoles, Category: CategoryCoreDrilling, Title: "CORE DRILLING"},
	WallCutting:        {Sawing: true, MultiCut: true, Unit: UnitLinearFeet, Category: CategorySawing, Title: "WALL SAWING"},
	SlabSawing:         {Sawing: true, MultiCut: true, Unit: UnitLinearFeet, Category: CategorySawing, Title: "SLAB SAWING"},
	HandSawing:         {Sawing: true, MultiCut: true, Unit: UnitLinearFeet, Category: CategorySawing, Title: "HAND SAWING"},
	WireSawing:         {Sawing: true, Unit: UnitLinearFeet, Category: CategorySawing, Title: "WIRE SAWING"},
	ChainSaw:           {Sawing: true, Chainsaw: true, Unit: UnitLinearFeet, Category: CategorySawing, Title: "CHAIN SAW"},
	ConcreteDemolition: {Demolition: true, Unit: UnitSquareFeet, Category: CategoryGeneral, Title: "CONCRETE DEMOLITION"},
	BreakAndRemove:     {Demolition: true, Unit: UnitSquareFeet, Category: CategoryGeneral, Title: "BREAK & REMOVE"},
	JackHammering:      {Demolition: true, Unit: UnitSquareFeet, Category: CategoryGeneral, Title: "JACK HAMMERING"},
	Brokk:              {Demolition: true, Unit: UnitSquareFeet, Category: CategoryGeneral, Title: "BROKK"},
	GPRScanning:        {Scanning: true, Unit: UnitEach, Category: CategoryGeneral, Title: "GPR SCANNING"},
}

// AllWorkTypes lists every known work type in display order.
var AllWorkTypes = []WorkTypeID{
	CoreDrilling, WallCutting, SlabSawing, HandSawing, WireSawing, ChainSaw,
	ConcreteDemolition, BreakAndRemove, JackHammering, Brokk, GPRScanning,
}

// Classify returns the capability flags of id.
func Classify(id WorkTypeID) (Capabilities, error) {
	c, ok := capabilities[id]
	if !ok {
		return Capabilities{}, fmt.Errorf("%w: %q", ErrUnknownWorkType, string(id))
	}
	return c, nil
}

// ParseWorkType validates s as a known work type identifier.
func ParseWorkType(s string) (WorkTypeID, error) {
	id := WorkTypeID(s)
	if _, err := Classify(id); err != nil {
		return "", err
	}
	return id, nil
}

func (id WorkTypeID) IsSawing() bool       { return capabilities[id].Sawing }
func (id WorkTypeID) IsCoreDrilling() bool { return capabilities[id].CoreDrilling }
func (id WorkTypeID) IsChainsaw() bool     { return capabilities[id].Chainsaw }
func (id WorkTypeID) IsMultiCut() bool     { return capabilities[id].MultiCut }

// Title is the upper-case display name, or the raw id for unknown types.
func (id WorkTypeID) Title() string {
	if c, ok := capabilities[id]; ok {
		return c.Title
	}
	return string(id)
}
