package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// TicketFile is the top-level structure of a ticket file.
type TicketFile struct {
	Ticket        TicketImport     `yaml:"ticket"`
	Dispatch      []DispatchImport `yaml:"dispatch"`
	WorkPerformed []WorkItemImport `yaml:"work_performed"`
}

// TicketImport holds the ticket header.
type TicketImport struct {
	Customer      string  `yaml:"customer"`
	JobSite       string  `yaml:"job_site"`
	ScheduledDate *string `yaml:"scheduled_date,omitempty"`
}

// DispatchImport is one selected work type and its dispatch field values.
// Field values are decoded against the catalog spec during conversion.
type DispatchImport struct {
	Type   string               `yaml:"type"`
	Fields map[string]yaml.Node `yaml:"fields,omitempty"`
}

// WorkItemImport is one performed work item.
type WorkItemImport struct {
	Type      string       `yaml:"type"`
	Notes     string       `yaml:"notes,omitempty"`
	Quantity  *float64     `yaml:"quantity,omitempty"`
	Holes     []HoleImport `yaml:"holes,omitempty"`
	Cuts      []CutImport  `yaml:"cuts,omitempty"`
	CutType   string       `yaml:"cut_type,omitempty"`
	Duration  string       `yaml:"duration,omitempty"`
	Equipment string       `yaml:"equipment,omitempty"`
	Batch     *BatchImport `yaml:"batch,omitempty"`
}

// HoleImport is one hole configuration.
type HoleImport struct {
	BitSize          string  `yaml:"bit_size"`
	DepthInches      float64 `yaml:"depth_inches"`
	Quantity         int     `yaml:"quantity"`
	AboveFiveFeet    bool    `yaml:"above_five_feet,omitempty"`
	PlasticSetup     bool    `yaml:"plastic_setup,omitempty"`
	CutSteel         bool    `yaml:"cut_steel,omitempty"`
	SteelEncountered string  `yaml:"steel_encountered,omitempty"`
}

// CutImport is one sawing cut. Areas are used in area mode, LinearFeet and
// CutDepth in linear mode.
type CutImport struct {
	InputMode           string       `yaml:"input_mode"`
	LinearFeet          float64      `yaml:"linear_feet,omitempty"`
	CutDepth            float64      `yaml:"cut_depth,omitempty"`
	Areas               []AreaImport `yaml:"areas,omitempty"`
	Blades              []string     `yaml:"blades"`
	CutSteel            bool         `yaml:"cut_steel,omitempty"`
	Overcut             bool         `yaml:"overcut,omitempty"`
	SteelEncountered    string       `yaml:"steel_encountered,omitempty"`
	Chainsawed          bool         `yaml:"chainsawed,omitempty"`
	ChainsawAreas       int          `yaml:"chainsaw_areas,omitempty"`
	ChainsawWidthInches float64      `yaml:"chainsaw_width_inches,omitempty"`
}

// AreaImport is one rectangular opening: feet for length and width, inches
// for depth.
type AreaImport struct {
	Length           float64 `yaml:"length"`
	Width            float64 `yaml:"width"`
	Depth            float64 `yaml:"depth"`
	Quantity         int     `yaml:"quantity"`
	CutSteel         bool    `yaml:"cut_steel,omitempty"`
	Overcut          bool    `yaml:"overcut,omitempty"`
	SteelEncountered string  `yaml:"steel_encountered,omitempty"`
}

// BatchImport is a quick-entry batch folded into the work item on import.
type BatchImport struct {
	Kind          string             `yaml:"kind"`
	Entries       []BatchEntryImport `yaml:"entries"`
	Blades        []string           `yaml:"blades,omitempty"`
	RemovalMethod string             `yaml:"removal_method,omitempty"`
	Equipment     string             `yaml:"equipment,omitempty"`
}

// BatchEntryImport is one batch row. Which fields apply depends on the
// batch kind: cuts/length/depth for cut batches, length/width for area
// batches and length/width/thickness for brokk.
type BatchEntryImport struct {
	Cuts      int     `yaml:"cuts,omitempty"`
	Length    float64 `yaml:"length,omitempty"`
	Width     float64 `yaml:"width,omitempty"`
	Depth     float64 `yaml:"depth,omitempty"`
	Thickness float64 `yaml:"thickness,omitempty"`
}

// LoadTicketFile reads and parses a ticket file. Files ending in .json are
// converted to YAML first so both formats share one decoder.
func LoadTicketFile(path string) (*TicketFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		var raw any
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing ticket file: %w", err)
		}
		if data, err = yaml.Marshal(raw); err != nil {
			return nil, fmt.Errorf("parsing ticket file: %w", err)
		}
	}
	return ParseTicketFile(data)
}

// ParseTicketFile decodes a YAML ticket file.
func ParseTicketFile(data []byte) (*TicketFile, error) {
	var f TicketFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing ticket file: %w", err)
	}
	return &f, nil
}
