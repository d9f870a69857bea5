package domain

// Unit is the canonical quantity unit of a work type.
type Unit string

const (
	UnitHoles      Unit = "holes"
	UnitLinearFeet Unit = "LF"
	UnitSquareFeet Unit = "SF"
	UnitEach       Unit = "EA"
)

// DetailsCategory selects which Details variant a work type carries.
type DetailsCategory string

const (
	CategoryCoreDrilling DetailsCategory = "core_drilling"
	CategorySawing       DetailsCategory = "sawing"
	CategoryGeneral      DetailsCategory = "general"
)

// InputMode says whether a sawing cut was entered as linear feet or derived
// from rectangular areas.
type InputMode string

const (
	InputLinear InputMode = "linear"
	InputArea   InputMode = "area"
)

// ValidInputModes is the canonical set of accepted input mode strings.
var ValidInputModes = map[string]bool{
	"linear": true, "area": true,
}

type CutType string

const (
	CutWet CutType = "wet"
	CutDry CutType = "dry"
)

// ValidCutTypes is the canonical set of accepted cut type strings.
var ValidCutTypes = map[string]bool{
	"wet": true, "dry": true,
}
