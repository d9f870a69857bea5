package domain

import (
	"fmt"
	"strings"
)

// HoleConfig counts identical holes of one bit size and depth. Different
// bit size/depth combinations are separate entries and are never merged.
type HoleConfig struct {
	BitSize          string  `json:"bit_size"`
	DepthInches      float64 `json:"depth_inches"`
	Quantity         int     `json:"quantity"`
	AboveFiveFeet    bool    `json:"above_five_feet,omitempty"`
	PlasticSetup     bool    `json:"plastic_setup,omitempty"`
	CutSteel         bool    `json:"cut_steel,omitempty"`
	SteelEncountered string  `json:"steel_encountered,omitempty"`
}

func (h HoleConfig) Validate() error {
	if strings.TrimSpace(h.BitSize) == "" {
		return fmt.Errorf("bit size is required")
	}
	if h.DepthInches < 0 {
		return fmt.Errorf("%w: depth %v", ErrInvalidDimension, h.DepthInches)
	}
	if h.Quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}
	return nil
}

// ChainsawFinish records chainsaw work done to finish the corners of a cut.
type ChainsawFinish struct {
	Chainsawed          bool    `json:"chainsawed,omitempty"`
	ChainsawAreas       int     `json:"chainsaw_areas,omitempty"`
	ChainsawWidthInches float64 `json:"chainsaw_width_inches,omitempty"`
}

// CutArea is Quantity identical rectangular openings. Length and width are
// in feet, depth in inches.
type CutArea struct {
	Length           float64 `json:"length"`
	Width            float64 `json:"width"`
	Depth            float64 `json:"depth"`
	Quantity         int     `json:"quantity"`
	CutSteel         bool    `json:"cut_steel,omitempty"`
	Overcut          bool    `json:"overcut,omitempty"`
	SteelEncountered string  `json:"steel_encountered,omitempty"`
	ChainsawFinish
}

func (a CutArea) Validate() error {
	for _, d := range []struct {
		name string
		v    float64
	}{{"length", a.Length}, {"width", a.Width}, {"depth", a.Depth}} {
		if d.v <= 0 {
			return fmt.Errorf("%w: %s %v", ErrInvalidDimension, d.name, d.v)
		}
	}
	if a.Quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}
	return nil
}

// SawingCut is one committed sawing entry. In area mode LinearFeet and
// CutDepth are derived from Areas and must not be edited directly; in linear
// mode they are the entered values.
type SawingCut struct {
	InputMode        InputMode `json:"input_mode"`
	LinearFeet       float64   `json:"linear_feet"`
	CutDepth         float64   `json:"cut_depth"`
	Areas            []CutArea `json:"areas,omitempty"`
	BladesUsed       []string  `json:"blades_used"`
	CutSteel         bool      `json:"cut_steel,omitempty"`
	Overcut          bool      `json:"overcut,omitempty"`
	SteelEncountered string    `json:"steel_encountered,omitempty"`
	ChainsawFinish
}

func (c SawingCut) Validate() error {
	switch c.InputMode {
	case InputLinear:
		if c.LinearFeet < 0 || c.CutDepth < 0 {
			return fmt.Errorf("%w: linear feet and depth must not be negative", ErrInvalidDimension)
		}
	case InputArea:
		if len(c.Areas) == 0 {
			return fmt.Errorf("area mode cut needs at least one area")
		}
		for i, a := range c.Areas {
			if err := a.Validate(); err != nil {
				return fmt.Errorf("areas[%d]: %w", i, err)
			}
		}
	default:
		return fmt.Errorf("invalid input mode %q", c.InputMode)
	}
	if len(c.BladesUsed) == 0 {
		return ErrNoBlades
	}
	return nil
}

// Details is the typed payload of a work item. The variant is fixed by the
// work type's DetailsCategory.
type Details interface {
	Category() DetailsCategory
}

type CoreDrillingDetails struct {
	Holes []HoleConfig `json:"holes"`
}

type SawingDetails struct {
	Cuts    []SawingCut `json:"cuts"`
	CutType CutType     `json:"cut_type,omitempty"`
}

type GeneralDetails struct {
	Duration  string `json:"duration,omitempty"`
	Equipment string `json:"equipment,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

func (CoreDrillingDetails) Category() DetailsCategory { return CategoryCoreDrilling }
func (SawingDetails) Category() DetailsCategory       { return CategorySawing }
func (GeneralDetails) Category() DetailsCategory      { return CategoryGeneral }

// WorkItem is one unit of work performed on a ticket. Quantity is the
// canonical total, always recomputed from Details on commit.
type WorkItem struct {
	WorkType WorkTypeID
	Quantity float64
	Unit     Unit
	Notes    string
	Details  Details
}

// CheckDetails reports whether the details variant fits the work type.
// Nil details are always accepted.
func (w *WorkItem) CheckDetails() error {
	caps, err := Classify(w.WorkType)
	if err != nil {
		return err
	}
	if w.Details == nil {
		return nil
	}
	if w.Details.Category() != caps.Category {
		return fmt.Errorf("%w: %s carries %s details, want %s",
			ErrDetailsMismatch, w.WorkType, w.Details.Category(), caps.Category)
	}
	return nil
}
