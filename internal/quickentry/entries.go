package quickentry

// CutEntry is a multi-cut row for slab, wall and hand saws. Length is in
// feet, depth in inches.
type CutEntry struct {
	NumCuts     int
	LengthFeet  float64
	DepthInches float64
}

// ChainsawEntry is a chainsaw row. Length and depth are in inches.
type ChainsawEntry struct {
	NumCuts      int
	LengthInches float64
	DepthInches  float64
}

// AreaEntry is a break-and-remove or jackhammer row in feet.
type AreaEntry struct {
	Length float64
	Width  float64
}

// BrokkEntry is a brokk row: length and width in feet, thickness in inches.
type BrokkEntry struct {
	Length          float64
	Width           float64
	ThicknessInches float64
}

func (e CutEntry) Validate() error {
	if err := positive("cuts", float64(e.NumCuts)); err != nil {
		return err
	}
	if err := positive("length", e.LengthFeet); err != nil {
		return err
	}
	return positive("depth", e.DepthInches)
}

func (e ChainsawEntry) Validate() error {
	if err := positive("cuts", float64(e.NumCuts)); err != nil {
		return err
	}
	if err := positive("length", e.LengthInches); err != nil {
		return err
	}
	return positive("depth", e.DepthInches)
}

func (e AreaEntry) Validate() error {
	if err := positive("length", e.Length); err != nil {
		return err
	}
	return positive("width", e.Width)
}

func (e BrokkEntry) Validate() error {
	if err := positive("length", e.Length); err != nil {
		return err
	}
	if err := positive("width", e.Width); err != nil {
		return err
	}
	return positive("thickness", e.ThicknessInches)
}

type (
	MultiCutBatch = Batch[CutEntry]
	ChainsawBatch = Batch[ChainsawEntry]
	AreaBatch     = Batch[AreaEntry]
	BrokkBatch    = Batch[BrokkEntry]
)
