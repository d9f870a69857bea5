package detail

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cutsheet/internal/catalog"
	"github.com/alexanderramin/cutsheet/internal/domain"
)

// Value is the content of one field: Text, Choices, Holes, Cuts or Areas.
type Value interface {
	isEmpty() bool
	clone() Value
}

// Text holds text, single-select and yes/no fields.
type Text string

// Choices is an ordered set of selected options.
type Choices []string

type Holes []HoleSpec

type Cuts []CutSpec

type Areas []AreaSpec

func (t Text) isEmpty() bool    { return strings.TrimSpace(string(t)) == "" }
func (c Choices) isEmpty() bool { return len(c) == 0 }
func (h Holes) isEmpty() bool   { return len(h) == 0 }
func (c Cuts) isEmpty() bool    { return len(c) == 0 }
func (a Areas) isEmpty() bool   { return len(a) == 0 }

func (t Text) clone() Value    { return t }
func (c Choices) clone() Value { return append(Choices(nil), c...) }
func (h Holes) clone() Value   { return append(Holes(nil), h...) }
func (c Cuts) clone() Value    { return append(Cuts(nil), c...) }
func (a Areas) clone() Value   { return append(Areas(nil), a...) }

// Entry is one structured sub-record that can be appended to a list field.
type Entry interface {
	ListKind() catalog.ListKind
	Validate() error
}

// HoleSpec asks for Quantity identical holes. Diameter and Depth are kept as
// entered (e.g. `1-1/4"`).
type HoleSpec struct {
	Quantity      int    `json:"quantity" yaml:"quantity"`
	Diameter      string `json:"diameter" yaml:"diameter"`
	Depth         string `json:"depth" yaml:"depth"`
	AboveFiveFeet bool   `json:"above_five_feet,omitempty" yaml:"above_five_feet,omitempty"`
}

// CutSpec is a requested cut. Which fields matter depends on the work type:
// wall cuts use Quantity/Dimensions/Thickness, slab and hand cuts use either
// the area fields or LinearFeet, and wire cuts only Description.
type CutSpec struct {
	Quantity      int              `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	Dimensions    string           `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
	Thickness     string           `json:"thickness,omitempty" yaml:"thickness,omitempty"`
	Mode          domain.InputMode `json:"mode,omitempty" yaml:"mode,omitempty"`
	LinearFeet    float64          `json:"linear_feet,omitempty" yaml:"linear_feet,omitempty"`
	Length        float64          `json:"length,omitempty" yaml:"length,omitempty"`
	Width         float64          `json:"width,omitempty" yaml:"width,omitempty"`
	Removing      bool             `json:"removing,omitempty" yaml:"removing,omitempty"`
	RemovalMethod string           `json:"removal_method,omitempty" yaml:"removal_method,omitempty"`
	Equipment     string           `json:"equipment,omitempty" yaml:"equipment,omitempty"`
	Description   string           `json:"description,omitempty" yaml:"description,omitempty"`
}

// AreaSpec is one demolition area.
type AreaSpec struct {
	Volume    string `json:"volume" yaml:"volume"`
	Thickness string `json:"thickness" yaml:"thickness"`
	Material  string `json:"material" yaml:"material"`
}

func (HoleSpec) ListKind() catalog.ListKind { return catalog.ListHole }
func (CutSpec) ListKind() catalog.ListKind  { return catalog.ListCut }
func (AreaSpec) ListKind() catalog.ListKind { return catalog.ListArea }

func (h HoleSpec) Validate() error {
	if h.Quantity < 1 {
		return fmt.Errorf("hole quantity must be at least 1")
	}
	if err := positiveMeasure("hole diameter", h.Diameter); err != nil {
		return err
	}
	return positiveMeasure("hole depth", h.Depth)
}

// Validate checks the measurements a cut renders with. Area cuts need a
// length, width and thickness; linear cuts need linear feet and a thickness;
// wall cuts need dimensions or linear feet plus a thickness. A cut described
// only in words is accepted as is.
func (c CutSpec) Validate() error {
	if c.Quantity < 0 {
		return fmt.Errorf("cut quantity must not be negative")
	}
	if c.Mode != "" && !domain.ValidInputModes[string(c.Mode)] {
		return fmt.Errorf("invalid cut mode %q", c.Mode)
	}
	if c.LinearFeet < 0 {
		return fmt.Errorf("%w: linear feet %v", domain.ErrInvalidDimension, c.LinearFeet)
	}

	switch {
	case c.Mode == domain.InputArea:
		if c.Length <= 0 || c.Width <= 0 {
			return fmt.Errorf("%w: area cuts need a positive length and width", domain.ErrInvalidDimension)
		}
	case c.Mode == domain.InputLinear:
		if c.LinearFeet <= 0 {
			return fmt.Errorf("%w: linear cuts need positive linear feet", domain.ErrInvalidDimension)
		}
	case strings.TrimSpace(c.Description) != "":
		if strings.TrimSpace(c.Thickness) == "" {
			return nil
		}
	default:
		if c.LinearFeet == 0 && strings.TrimSpace(c.Dimensions) == "" {
			return fmt.Errorf("%w: cut needs dimensions or linear feet", domain.ErrInvalidDimension)
		}
	}
	return positiveMeasure("cut thickness", c.Thickness)
}

func (a AreaSpec) Validate() error {
	if strings.TrimSpace(a.Volume) == "" {
		return fmt.Errorf("area volume is required")
	}
	return positiveMeasure("area thickness", a.Thickness)
}
