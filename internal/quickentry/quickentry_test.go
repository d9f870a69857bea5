package quickentry

import (
	"errors"
	"testing"

	"github.com/alexanderramin/cutsheet/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldChainsaw_ConvertsInchesOnce(t *testing.T) {
	var b ChainsawBatch
	require.NoError(t, b.Add(ChainsawEntry{NumCuts: 2, LengthInches: 48, DepthInches: 10}))
	require.NoError(t, b.Add(ChainsawEntry{NumCuts: 1, LengthInches: 24, DepthInches: 12}))

	total, err := FoldChainsaw(&b)
	require.NoError(t, err)
	assert.Equal(t, 10.0, total.LinearFeet)
	assert.Equal(t, 12.0, total.CutDepth, "depth is the max, not a sum or an average")
	assert.Equal(t, 2, total.Entries)
}

func TestFoldMultiCut_NoConversion(t *testing.T) {
	var b MultiCutBatch
	require.NoError(t, b.Add(CutEntry{NumCuts: 3, LengthFeet: 10, DepthInches: 4}))
	require.NoError(t, b.Add(CutEntry{NumCuts: 2, LengthFeet: 7.5, DepthInches: 6}))
	require.NoError(t, b.Add(CutEntry{NumCuts: 1, LengthFeet: 1, DepthInches: 5}))

	total, err := FoldMultiCut(&b)
	require.NoError(t, err)
	assert.Equal(t, 46.0, total.LinearFeet)
	assert.Equal(t, 6.0, total.CutDepth)
}

func TestFoldArea_Jackhammer(t *testing.T) {
	var b AreaBatch
	require.NoError(t, b.Add(AreaEntry{Length: 10, Width: 8}))
	require.NoError(t, b.Add(AreaEntry{Length: 5, Width: 5}))

	total, err := FoldArea(&b)
	require.NoError(t, err)
	assert.Equal(t, 105.0, total.SquareFeet)
}

func TestFoldBrokk_AveragesThickness(t *testing.T) {
	var b BrokkBatch
	require.NoError(t, b.Add(BrokkEntry{Length: 10, Width: 10, ThicknessInches: 6}))
	require.NoError(t, b.Add(BrokkEntry{Length: 4, Width: 5, ThicknessInches: 10}))

	total, err := FoldBrokk(&b)
	require.NoError(t, err)
	assert.Equal(t, 120.0, total.SquareFeet)
	assert.Equal(t, 8.0, total.AverageThickness)
}

func TestFold_EmptyBatch(t *testing.T) {
	_, err := FoldMultiCut(&MultiCutBatch{})
	assert.ErrorIs(t, err, domain.ErrEmptyBatch)
	_, err = FoldChainsaw(&ChainsawBatch{})
	assert.ErrorIs(t, err, domain.ErrEmptyBatch)
	_, err = FoldArea(&AreaBatch{})
	assert.ErrorIs(t, err, domain.ErrEmptyBatch)
	_, err = FoldBrokk(&BrokkBatch{})
	assert.ErrorIs(t, err, domain.ErrEmptyBatch)
}

func TestAdd_RejectsInvalidDimensions(t *testing.T) {
	tests := []struct {
		name  string
		add   func() error
		field string
	}{
		{"zero length", func() error { var b AreaBatch; return b.Add(AreaEntry{Length: 0, Width: 3}) }, "length"},
		{"negative width", func() error { var b AreaBatch; return b.Add(AreaEntry{Length: 3, Width: -1}) }, "width"},
		{"zero cuts", func() error { var b MultiCutBatch; return b.Add(CutEntry{LengthFeet: 3, DepthInches: 4}) }, "cuts"},
		{"zero depth", func() error { var b ChainsawBatch; return b.Add(ChainsawEntry{NumCuts: 1, LengthInches: 3}) }, "depth"},
		{"zero thickness", func() error { var b BrokkBatch; return b.Add(BrokkEntry{Length: 1, Width: 1}) }, "thickness"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.add()
			require.ErrorIs(t, err, domain.ErrInvalidDimension)
			var de *DimensionError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.field, de.Field)
		})
	}
}

func TestAdd_InvalidRowNotKept(t *testing.T) {
	var b AreaBatch
	require.NoError(t, b.Add(AreaEntry{Length: 2, Width: 2}))
	require.Error(t, b.Add(AreaEntry{Length: 0, Width: 2}))
	assert.Equal(t, 1, b.Len())
}

func TestRemove(t *testing.T) {
	var b AreaBatch
	require.NoError(t, b.Add(AreaEntry{Length: 1, Width: 1}))
	require.NoError(t, b.Add(AreaEntry{Length: 2, Width: 2}))
	require.NoError(t, b.Remove(0))
	assert.Equal(t, []AreaEntry{{Length: 2, Width: 2}}, b.Entries())
	assert.Error(t, b.Remove(3))
}

func TestFold_DoesNotMutate(t *testing.T) {
	var b ChainsawBatch
	require.NoError(t, b.Add(ChainsawEntry{NumCuts: 1, LengthInches: 12, DepthInches: 2}))
	before := b.Entries()
	first, err := FoldChainsaw(&b)
	require.NoError(t, err)
	second, err := FoldChainsaw(&b)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, before, b.Entries())
}

func TestLinearTotal_Cut(t *testing.T) {
	cut, err := LinearTotal{LinearFeet: 10, CutDepth: 12}.Cut([]string{" ", `36" Bar`})
	require.NoError(t, err)
	assert.Equal(t, domain.InputLinear, cut.InputMode)
	assert.Equal(t, 10.0, cut.LinearFeet)
	assert.Equal(t, 12.0, cut.CutDepth)
	assert.Equal(t, []string{`36" Bar`}, cut.BladesUsed)

	_, err = LinearTotal{LinearFeet: 1}.Cut([]string{"  "})
	assert.ErrorIs(t, err, domain.ErrNoBlades)
}

func TestAreaTotal_Item(t *testing.T) {
	item, err := AreaTotal{SquareFeet: 105}.Item(domain.BreakAndRemove, "Jackhammer", "60lb Breaker")
	require.NoError(t, err)
	assert.Equal(t, 105.0, item.Quantity)
	assert.Equal(t, "Removal method: Jackhammer; Equipment: 60lb Breaker", item.Notes)

	item, err = AreaTotal{SquareFeet: 12}.Item(domain.JackHammering, "", "")
	require.NoError(t, err)
	assert.Empty(t, item.Notes)

	_, err = AreaTotal{SquareFeet: 12}.Item(domain.SlabSawing, "", "")
	assert.ErrorIs(t, err, domain.ErrDetailsMismatch)
}

func TestBrokkTotal_Item(t *testing.T) {
	item := BrokkTotal{SquareFeet: 120, AverageThickness: 8}.Item("Brokk 170")
	assert.Equal(t, domain.Brokk, item.WorkType)
	assert.Equal(t, `Average thickness: 8"; Equipment: Brokk 170`, item.Notes)
}
