// Package compose renders detail records into the human-readable work
// description stored on a ticket.
package compose

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cutsheet/internal/catalog"
	"github.com/alexanderramin/cutsheet/internal/detail"
	"github.com/alexanderramin/cutsheet/internal/domain"
)

// BlockSeparator sits between the blocks of two selected work types.
const BlockSeparator = "\n---\n\n"

const aboveFiveFeetSuffix = " (Above 5ft - Ladder/Lift Required)"

// Description renders one block per selected work type, in selection order.
// Each block is a header line followed by one line per entry of every
// non-empty, visible field. It never mutates its inputs.
func Description(selected []domain.WorkTypeID, details map[domain.WorkTypeID]*detail.Record) string {
	blocks := make([]string, 0, len(selected))
	for _, id := range selected {
		blocks = append(blocks, block(id, details[id]))
	}
	return strings.Join(blocks, BlockSeparator)
}

func block(id domain.WorkTypeID, rec *detail.Record) string {
	header, err := catalog.Dispatch().Header(id)
	if err != nil {
		header = id.Title()
	}
	if rec == nil {
		return header
	}

	lines := []string{""}
	for _, f := range catalog.Visible(rec.Fields(), rec) {
		if id == domain.CoreDrilling && f.Name == catalog.FieldLocations {
			header = "CORE DRILLING ON " + strings.Join(rec.Choices(f.Name), "/")
			continue
		}
		lines = append(lines, fieldLines(id, f, rec)...)
	}
	lines[0] = header
	return strings.Join(lines, "\n")
}

func fieldLines(id domain.WorkTypeID, f catalog.FieldSpec, rec *detail.Record) []string {
	v, _ := rec.Get(f.Name)
	switch v := v.(type) {
	case detail.Holes:
		out := make([]string, 0, len(v))
		for _, h := range v {
			out = append(out, holeLine(h))
		}
		return out
	case detail.Cuts:
		var out []string
		for _, c := range v {
			if line := cutLine(id, c); line != "" {
				out = append(out, line)
			}
		}
		return out
	case detail.Areas:
		out := make([]string, 0, len(v))
		for i, a := range v {
			out = append(out, fmt.Sprintf("Area %d: %s @ %s - %s", i+1, a.Volume, a.Thickness, a.Material))
		}
		return out
	case detail.Choices:
		return []string{f.Label + ": " + strings.Join(v, ", ")}
	case detail.Text:
		return []string{f.Label + ": " + strings.TrimSpace(string(v))}
	}
	return nil
}

func holeLine(h detail.HoleSpec) string {
	line := fmt.Sprintf("%d holes @ %s diameter x %s deep", h.Quantity, h.Diameter, h.Depth)
	if h.AboveFiveFeet {
		line += aboveFiveFeetSuffix
	}
	return line
}

func cutLine(id domain.WorkTypeID, c detail.CutSpec) string {
	switch id {
	case domain.WireSawing:
		return strings.TrimSpace(c.Description)
	case domain.WallCutting:
		return fmt.Sprintf("%d cuts @ %s x %s thick", c.Quantity, c.Dimensions, c.Thickness) + removalSuffix(c)
	}
	if c.Mode == domain.InputArea {
		return fmt.Sprintf(`%s - %s' L x %s' W x %s" thick`,
			areaCount(c.Quantity),
			domain.FormatQuantity(c.Length),
			domain.FormatQuantity(c.Width),
			bareInches(c.Thickness)) + removalSuffix(c)
	}
	word := "thick"
	if id == domain.HandSawing {
		word = "deep"
	}
	return fmt.Sprintf(`%s LF x %s" %s`, domain.FormatQuantity(c.LinearFeet), bareInches(c.Thickness), word) + removalSuffix(c)
}

func removalSuffix(c detail.CutSpec) string {
	if !c.Removing {
		return ""
	}
	s := " - Remove"
	if c.RemovalMethod != "" {
		s += " via " + c.RemovalMethod
	}
	if c.Equipment != "" {
		s += " w/ " + c.Equipment
	}
	return s
}

func areaCount(n int) string {
	if n <= 1 {
		return "1 area"
	}
	return fmt.Sprintf("%d areas", n)
}

// bareInches strips a trailing inch mark so one can be added back uniformly.
func bareInches(s string) string {
	return strings.TrimSuffix(strings.TrimSpace(s), `"`)
}
