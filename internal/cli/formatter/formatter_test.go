package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/cutsheet/internal/catalog"
	"github.com/alexanderramin/cutsheet/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestRelativeDateFrom(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"today", now, "Today"},
		{"tomorrow", now.AddDate(0, 0, 1), "Tomorrow"},
		{"yesterday", now.AddDate(0, 0, -1), "Yesterday"},
		{"days ahead", now.AddDate(0, 0, 5), "In 5d"},
		{"weeks ahead", now.AddDate(0, 0, 21), "In 3w"},
		{"days ago", now.AddDate(0, 0, -3), "3d ago"},
		{"weeks ago", now.AddDate(0, 0, -28), "4w ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDateFrom(tt.in, now))
		})
	}
}

func TestScheduleLabel_Unscheduled(t *testing.T) {
	assert.Contains(t, ScheduleLabel(nil, now), "--")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "LONGER"}, [][]string{{"wide value", "x"}, {"b"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Index(lines[0], "LONGER"), strings.Index(lines[2], "x"))
	assert.Empty(t, RenderTable(nil, nil))
}

func TestFormatTicketList(t *testing.T) {
	d := now.AddDate(0, 0, 3)
	tickets := []*domain.Ticket{
		{Number: "T-AAA222", Customer: "Acme", ScheduledDate: &d, WorkTypes: []domain.WorkTypeID{domain.CoreDrilling, domain.SlabSawing}},
		{ID: "0123456789abcdef", Customer: "Beta"},
	}
	out := FormatTicketList(tickets, now)
	assert.Contains(t, out, "T-AAA222")
	assert.Contains(t, out, "CORE DRILLING, SLAB SAWING")
	assert.Contains(t, out, "In 3d")
	assert.Contains(t, out, "01234567")
}

func TestFormatComposed(t *testing.T) {
	tk := &domain.Ticket{
		Description:     "CORE DRILLING ON Floor\n2 holes",
		Recommendations: []string{"Core drill", `4" bit`},
		Items: []domain.WorkItem{
			{WorkType: domain.CoreDrilling, Quantity: 2, Unit: domain.UnitHoles},
			{WorkType: domain.GPRScanning, Unit: domain.UnitEach},
		},
	}
	out := FormatComposed(tk)
	assert.Contains(t, out, "DESCRIPTION")
	assert.Contains(t, out, "2 holes")
	assert.Contains(t, out, `• 4" bit`)
	assert.Contains(t, out, "CORE DRILLING: 2 holes")
	assert.Contains(t, out, "  GPR SCANNING\n")
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.False(t, strings.HasSuffix(out, "\n\n"))
}

func TestFormatComposed_SkipsEmptySections(t *testing.T) {
	out := FormatComposed(&domain.Ticket{Description: "WIRE SAWING"})
	assert.NotContains(t, out, "RECOMMENDED")
	assert.NotContains(t, out, "WORK PERFORMED")
}

func TestFormatFieldSpecs(t *testing.T) {
	out, err := FormatFieldSpecs(catalog.Dispatch(), domain.CoreDrilling)
	require.NoError(t, err)
	assert.Contains(t, out, catalog.FieldHoles)
	assert.Contains(t, out, "hole entries")
	assert.Contains(t, out, "access = Ladder/Lift")

	_, err = FormatFieldSpecs(catalog.Dispatch(), "NOPE")
	assert.ErrorIs(t, err, domain.ErrUnknownWorkType)
}
