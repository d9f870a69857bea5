package importer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/cutsheet/internal/aggregate"
	"github.com/alexanderramin/cutsheet/internal/detail"
	"github.com/alexanderramin/cutsheet/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_FullFile(t *testing.T) {
	f, err := ParseTicketFile([]byte(fullTicketYAML))
	require.NoError(t, err)
	require.Empty(t, ValidateTicketFile(f))

	d, err := Convert(f)
	require.NoError(t, err)

	assert.Equal(t, "Acme Builders", d.Customer)
	assert.Equal(t, "12 Main St", d.JobSite)
	require.NotNil(t, d.ScheduledDate)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), *d.ScheduledDate)
	assert.Equal(t, []domain.WorkTypeID{domain.CoreDrilling, domain.SlabSawing}, d.Selected)

	core := d.Details[domain.CoreDrilling]
	require.NotNil(t, core)
	assert.Equal(t, []string{"Floor", "Wall"}, core.Choices("locations"))
	assert.Equal(t, []detail.HoleSpec{{Quantity: 4, Diameter: `4"`, Depth: `8"`}}, core.Holes("holes"))
	assert.Equal(t, "Ground Level", core.Text("access"))
	assert.Equal(t, "Yes", core.Text("water_control"))

	slab := d.Details[domain.SlabSawing]
	require.NotNil(t, slab)
	require.Len(t, slab.Cuts("cuts"), 1)
	assert.Equal(t, 120.0, slab.Cuts("cuts")[0].LinearFeet)
	assert.Equal(t, []string{"On Grade"}, slab.Choices("slab_type"))

	require.Equal(t, 3, d.Order.Len())

	drill, ok := d.Order.Get(domain.CoreDrilling)
	require.True(t, ok)
	assert.Equal(t, 5.0, drill.Quantity)
	assert.Equal(t, domain.UnitHoles, drill.Unit)

	saw, ok := d.Order.Get(domain.SlabSawing)
	require.True(t, ok)
	assert.Equal(t, 40.0, saw.Quantity)
	assert.Equal(t, domain.UnitLinearFeet, saw.Unit)
	sd := saw.Details.(domain.SawingDetails)
	assert.Equal(t, domain.CutWet, sd.CutType)
	require.Len(t, sd.Cuts, 1)
	assert.Equal(t, 8.0, sd.Cuts[0].CutDepth)
	assert.Equal(t, []string{`24"`}, sd.Cuts[0].BladesUsed)

	demo, ok := d.Order.Get(domain.BreakAndRemove)
	require.True(t, ok)
	assert.Equal(t, 58.0, demo.Quantity)
	assert.Equal(t, domain.UnitSquareFeet, demo.Unit)
	assert.Equal(t, "Removal method: Skid Steer", demo.Notes)
}

func TestConvert_MinimalFile(t *testing.T) {
	d, err := Convert(minimalFile())
	require.NoError(t, err)

	assert.Nil(t, d.ScheduledDate)
	assert.Equal(t, []domain.WorkTypeID{domain.GPRScanning}, d.Selected)
	assert.NotNil(t, d.Details[domain.GPRScanning])
	assert.Equal(t, 0, d.Order.Len())
}

func TestConvert_AreaModeCutIsDerived(t *testing.T) {
	f := &TicketFile{
		Ticket: TicketImport{Customer: "Acme"},
		WorkPerformed: []WorkItemImport{{
			Type: "SLAB_SAWING",
			Cuts: []CutImport{{
				InputMode: "area",
				Areas:     []AreaImport{{Length: 4, Width: 3, Depth: 6, Quantity: 2}},
				Blades:    []string{`24"`},
			}},
		}},
	}

	d, err := Convert(f)
	require.NoError(t, err)

	it, ok := d.Order.Get(domain.SlabSawing)
	require.True(t, ok)
	// 2 openings of 4x3 ft: perimeter 14 each.
	assert.Equal(t, 28.0, it.Quantity)
	assert.Equal(t, 6.0, it.Details.(domain.SawingDetails).Cuts[0].CutDepth)
}

func TestConvert_LaterItemReplacesEarlier(t *testing.T) {
	f := &TicketFile{
		Ticket: TicketImport{Customer: "Acme"},
		WorkPerformed: []WorkItemImport{
			{Type: "CORE_DRILLING", Holes: []HoleImport{{BitSize: `2"`, Quantity: 5}}},
			{Type: "GPR_SCANNING", Quantity: floatPtr(1)},
			{Type: "CORE_DRILLING", Holes: []HoleImport{{BitSize: `2"`, Quantity: 3}}},
		},
	}

	d, err := Convert(f)
	require.NoError(t, err)

	items := d.Order.Items()
	require.Len(t, items, 2)
	assert.Equal(t, domain.CoreDrilling, items[0].WorkType)
	assert.Equal(t, 3.0, items[0].Quantity)
}

func TestConvert_BrokkBatchKeepsUserNotes(t *testing.T) {
	f := &TicketFile{
		Ticket: TicketImport{Customer: "Acme"},
		WorkPerformed: []WorkItemImport{{
			Type:  "BROKK",
			Notes: "north wall",
			Batch: &BatchImport{
				Kind:      BatchBrokk,
				Equipment: "Brokk 170",
				Entries: []BatchEntryImport{
					{Length: 10, Width: 10, Thickness: 6},
					{Length: 5, Width: 4, Thickness: 10},
				},
			},
		}},
	}

	d, err := Convert(f)
	require.NoError(t, err)

	it, ok := d.Order.Get(domain.Brokk)
	require.True(t, ok)
	assert.Equal(t, 120.0, it.Quantity)
	assert.Equal(t, `north wall; Average thickness: 8"; Equipment: Brokk 170`, it.Notes)
}

func TestConvert_ChainsawBatch(t *testing.T) {
	f := &TicketFile{
		Ticket: TicketImport{Customer: "Acme"},
		WorkPerformed: []WorkItemImport{{
			Type: "CHAIN_SAW",
			Batch: &BatchImport{
				Kind:    BatchChainsaw,
				Blades:  []string{"chain"},
				Entries: []BatchEntryImport{{Cuts: 4, Length: 18, Depth: 10}, {Cuts: 2, Length: 12, Depth: 12}},
			},
		}},
	}

	d, err := Convert(f)
	require.NoError(t, err)

	it, ok := d.Order.Get(domain.ChainSaw)
	require.True(t, ok)
	// (4*18 + 2*12) / 12 = 8 ft
	assert.Equal(t, 8.0, it.Quantity)
}

func TestConvert_BadFieldValue(t *testing.T) {
	f, err := ParseTicketFile([]byte(`
ticket: {customer: Acme}
dispatch:
  - type: CORE_DRILLING
    fields:
      access: Helicopter
`))
	require.NoError(t, err)

	_, err = Convert(f)
	require.Error(t, err)
	assert.True(t, errors.Is(err, detail.ErrFieldKind))
	assert.Contains(t, err.Error(), "dispatch[0]")
}

func TestConvert_ListWhereScalarExpected(t *testing.T) {
	f, err := ParseTicketFile([]byte(`
ticket: {customer: Acme}
dispatch:
  - type: WIRE_SAWING
    fields:
      notes: [a, b]
`))
	require.NoError(t, err)

	_, err = Convert(f)
	assert.ErrorIs(t, err, detail.ErrFieldKind)
}

func TestConvert_BatchWithInvalidDimension(t *testing.T) {
	f := &TicketFile{
		Ticket: TicketImport{Customer: "Acme"},
		WorkPerformed: []WorkItemImport{{
			Type:  "JACK_HAMMERING",
			Batch: &BatchImport{Kind: BatchJackhammer, Entries: []BatchEntryImport{{Length: 3, Width: -1}}},
		}},
	}

	_, err := Convert(f)
	assert.ErrorIs(t, err, domain.ErrInvalidDimension)
}

func TestLoadTicketFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ticket.json")
	data := `{
	"ticket": {"customer": "Acme", "job_site": "Dock 4"},
	"dispatch": [
		{"type": "GPR_SCANNING", "fields": {"scan_targets": ["Rebar", "Voids"], "report_required": true}}
	],
	"work_performed": [
		{"type": "CORE_DRILLING", "holes": [{"bit_size": "3\"", "depth_inches": 10, "quantity": 6}]}
	]
}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	f, err := LoadTicketFile(path)
	require.NoError(t, err)
	require.Empty(t, ValidateTicketFile(f))

	d, err := Convert(f)
	require.NoError(t, err)

	gpr := d.Details[domain.GPRScanning]
	assert.Equal(t, []string{"Rebar", "Voids"}, gpr.Choices("scan_targets"))
	assert.Equal(t, "Yes", gpr.Text("report_required"))

	it, ok := d.Order.Get(domain.CoreDrilling)
	require.True(t, ok)
	assert.Equal(t, 6.0, it.Quantity)
}

func TestLoadTicketFile_Errors(t *testing.T) {
	_, err := LoadTicketFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = LoadTicketFile(path)
	assert.ErrorContains(t, err, "parsing ticket file")
}

func TestBatchWorkItem(t *testing.T) {
	tests := []struct {
		name    string
		id      domain.WorkTypeID
		batch   BatchImport
		wantQty float64
		wantErr error
	}{
		{
			name: "multicut on wall saw",
			id:   domain.WallCutting,
			batch: BatchImport{Kind: BatchMultiCut, Blades: []string{"24\""},
				Entries: []BatchEntryImport{{Cuts: 2, Length: 10, Depth: 6}, {Cuts: 1, Length: 5, Depth: 8}}},
			wantQty: 25,
		},
		{
			name: "jackhammer area",
			id:   domain.JackHammering,
			batch: BatchImport{Kind: BatchJackhammer,
				Entries: []BatchEntryImport{{Length: 4, Width: 3}}},
			wantQty: 12,
		},
		{
			name:    "empty brokk batch",
			id:      domain.Brokk,
			batch:   BatchImport{Kind: BatchBrokk},
			wantErr: domain.ErrEmptyBatch,
		},
		{
			name: "multicut without blades",
			id:   domain.SlabSawing,
			batch: BatchImport{Kind: BatchMultiCut,
				Entries: []BatchEntryImport{{Cuts: 1, Length: 10, Depth: 4}}},
			wantErr: domain.ErrNoBlades,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := BatchWorkItem(tt.id, &tt.batch)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			final, err := aggregate.Finalize(item)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantQty, final.Quantity, 1e-9)
		})
	}
}

func TestBatchWorkItem_KindMustFitType(t *testing.T) {
	tests := []struct {
		name string
		id   domain.WorkTypeID
		kind string
	}{
		{"multicut on chain saw", domain.ChainSaw, BatchMultiCut},
		{"multicut on wire saw", domain.WireSawing, BatchMultiCut},
		{"multicut on core drilling", domain.CoreDrilling, BatchMultiCut},
		{"chainsaw on wall saw", domain.WallCutting, BatchChainsaw},
		{"brokk on jack hammering", domain.JackHammering, BatchBrokk},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BatchWorkItem(tt.id, &BatchImport{Kind: tt.kind})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "does not apply to "+string(tt.id))
		})
	}
}

func TestBatchFits_MultiCutSaws(t *testing.T) {
	for _, id := range domain.AllWorkTypes {
		want := id == domain.WallCutting || id == domain.SlabSawing || id == domain.HandSawing
		assert.Equal(t, want, batchFits(BatchMultiCut, id), string(id))
	}
}
