package recommend

import (
	"strings"
	"testing"

	"github.com/alexanderramin/cutsheet/internal/catalog"
	"github.com/alexanderramin/cutsheet/internal/detail"
	"github.com/alexanderramin/cutsheet/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func holes(t *testing.T, diameters ...string) *detail.Record {
	t.Helper()
	r, err := detail.NewFromCatalog(catalog.Dispatch(), domain.CoreDrilling)
	require.NoError(t, err)
	for _, d := range diameters {
		require.NoError(t, r.AppendToList("holes", detail.HoleSpec{Quantity: 1, Diameter: d, Depth: `6"`}))
	}
	return r
}

func bits(list []string) []string {
	var out []string
	for _, s := range list {
		if strings.HasSuffix(s, " Core Bit") {
			out = append(out, s)
		}
	}
	return out
}

func TestRecommend_DistinctCoreBits(t *testing.T) {
	got := Recommend([]domain.WorkTypeID{domain.CoreDrilling}, map[domain.WorkTypeID]*detail.Record{
		domain.CoreDrilling: holes(t, `2"`, `2"`, `4"`),
	})
	assert.Equal(t, []string{`2" Core Bit`, `4" Core Bit`}, bits(got))
}

func TestRecommend_DiameterNormalization(t *testing.T) {
	got := Diameters(holes(t, `1-1/4"`, "1-1/4", ` 1-1/4 " `, "6"))
	assert.Equal(t, []string{"1-1/4", "6"}, got)
}

func TestRecommend_DedupesAcrossTypesInOrder(t *testing.T) {
	got := Recommend([]domain.WorkTypeID{domain.SlabSawing, domain.CoreDrilling, domain.HandSawing}, map[domain.WorkTypeID]*detail.Record{
		domain.CoreDrilling: holes(t, `3"`),
	})
	assert.Equal(t, []string{
		"Walk-Behind Slab Saw", "Water Tank", "Slurry Vac",
		"Core Drill", "Drill Stand", "Wet Vac", `3" Core Bit`,
		"Hand Saw",
	}, got)
}

func TestRecommend_NoDetails(t *testing.T) {
	got := Recommend([]domain.WorkTypeID{domain.CoreDrilling, domain.GPRScanning}, nil)
	assert.Equal(t, []string{"Core Drill", "Drill Stand", "Wet Vac", "Water Tank", "GPR Scanner", "Marking Paint"}, got)
	assert.Empty(t, Recommend(nil, nil))
}

func TestEquipment_ReturnsCopy(t *testing.T) {
	e := Equipment(domain.Brokk)
	e[0] = "changed"
	assert.Equal(t, "Brokk", Equipment(domain.Brokk)[0])
}
