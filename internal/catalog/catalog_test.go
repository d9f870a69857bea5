package catalog

import (
	"testing"

	"github.com/alexanderramin/cutsheet/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeValues map[string]string

func (f fakeValues) Text(name string) string { return f[name] }

func TestFieldSpecs_UnknownWorkType(t *testing.T) {
	_, err := Dispatch().FieldSpecs("TRENCHING")
	require.ErrorIs(t, err, domain.ErrUnknownWorkType)

	_, err = Performed().Header("TRENCHING")
	require.ErrorIs(t, err, domain.ErrUnknownWorkType)
}

func TestCatalogs_AreDistinct(t *testing.T) {
	assert.True(t, Dispatch().Has(domain.ConcreteDemolition))
	assert.False(t, Dispatch().Has(domain.ChainSaw), "chain saw is a work-performed item only")
	assert.True(t, Performed().Has(domain.ChainSaw))

	_, ok := Dispatch().Field(domain.CoreDrilling, FieldLocations)
	assert.True(t, ok)
	_, ok = Performed().Field(domain.CoreDrilling, FieldLocations)
	assert.False(t, ok, "performed core drilling has no locations field")
}

func TestFieldSpecs_ReturnsCopy(t *testing.T) {
	specs, err := Dispatch().FieldSpecs(domain.CoreDrilling)
	require.NoError(t, err)
	specs[0].Label = "mutated"

	again, err := Dispatch().FieldSpecs(domain.CoreDrilling)
	require.NoError(t, err)
	assert.Equal(t, "Locations", again[0].Label)
}

func TestCatalogs_OnlyKnownWorkTypes(t *testing.T) {
	for _, c := range []*Catalog{Dispatch(), Performed()} {
		for _, id := range c.WorkTypes() {
			_, err := domain.Classify(id)
			assert.NoError(t, err, "%s catalog registers unclassified %s", c.Name(), id)
		}
	}
}

func TestCatalogs_ConditionsPointAtScalarSiblings(t *testing.T) {
	for _, c := range []*Catalog{Dispatch(), Performed()} {
		for _, id := range c.WorkTypes() {
			specs, err := c.FieldSpecs(id)
			require.NoError(t, err)
			for _, f := range specs {
				if f.Condition == nil {
					continue
				}
				sib, ok := c.Field(id, f.Condition.Field)
				require.True(t, ok, "%s.%s depends on missing %s", id, f.Name, f.Condition.Field)
				assert.Contains(t, []InputKind{KindSingleSelect, KindYesNo, KindText}, sib.Kind)
				assert.True(t, sib.Allows(f.Condition.Value), "%s.%s condition value not selectable", id, f.Name)
			}
		}
	}
}

func TestVisible_SuppressesConditionalFields(t *testing.T) {
	tests := []struct {
		name    string
		catalog *Catalog
		id      domain.WorkTypeID
		values  fakeValues
		field   string
		visible bool
	}{
		{"dispatch hidden when sibling empty", Dispatch(), domain.WallCutting, fakeValues{}, "haul_off_location", false},
		{"dispatch hidden when sibling differs", Dispatch(), domain.WallCutting, fakeValues{"haul_off": "No"}, "haul_off_location", false},
		{"dispatch shown when sibling matches", Dispatch(), domain.WallCutting, fakeValues{"haul_off": "Yes"}, "haul_off_location", true},
		{"performed hidden", Performed(), domain.GPRScanning, fakeValues{"report_required": "No"}, "report_email", false},
		{"performed shown", Performed(), domain.GPRScanning, fakeValues{"report_required": "Yes"}, "report_email", true},
		{"unconditional always shown", Dispatch(), domain.WallCutting, fakeValues{}, "wall_material", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specs, err := tt.catalog.FieldSpecs(tt.id)
			require.NoError(t, err)
			var names []string
			for _, f := range Visible(specs, tt.values) {
				names = append(names, f.Name)
			}
			if tt.visible {
				assert.Contains(t, names, tt.field)
			} else {
				assert.NotContains(t, names, tt.field)
			}
		})
	}
}

func TestFieldSpec_Allows(t *testing.T) {
	f := single("cut_type", "Cut Type", "Wet", "Dry")
	assert.True(t, f.Allows("Wet"))
	assert.False(t, f.Allows("wet"))
	assert.True(t, yesNo("x", "X").Allows("No"))
	assert.False(t, yesNo("x", "X").Allows("maybe"))
	assert.True(t, text("x", "X").Allows("anything"))
}
