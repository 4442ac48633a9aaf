package filters_test

import (
	"testing"

	"github.com/SatpalInfilogix/kular-fashion-web/filters"
	"github.com/SatpalInfilogix/kular-fashion-web/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullDefinition() models.FacetDefinition {
	return models.FacetDefinition{
		ProductTypes: []models.FacetOption{{ID: "coats", Name: "Coats"}, {ID: "knitwear", Name: "Knitwear"}},
		Sizes:        []models.FacetOption{{ID: "s", Name: "S"}, {ID: "m", Name: "M"}},
		Colors:       []models.ColorOption{{ID: "navy", ColorCode: "#001f3f"}},
		Price:        models.PriceRange{Min: 10, Max: 200},
	}
}

func TestToggleSymmetricDifference(t *testing.T) {
	s := filters.New(fullDefinition(), models.EmptySelection(), nil)

	s.Toggle(filters.FacetSizes, "m")
	assert.Equal(t, []string{"m"}, s.Selected().Sizes)

	s.Toggle(filters.FacetSizes, "s")
	assert.Equal(t, []string{"m", "s"}, s.Selected().Sizes)

	// Toggling again removes, preserving the order of the rest.
	s.Toggle(filters.FacetSizes, "m")
	assert.Equal(t, []string{"s"}, s.Selected().Sizes)
}

func TestToggleIsInvolution(t *testing.T) {
	s := filters.New(fullDefinition(), models.EmptySelection(), nil)
	before := s.Selected()

	s.Toggle(filters.FacetProductTypes, "coats")
	s.Toggle(filters.FacetProductTypes, "coats")

	assert.ElementsMatch(t, before.ProductTypes, s.Selected().ProductTypes)
}

func TestToggleUnknownFacetIsIgnored(t *testing.T) {
	var fired int
	s := filters.New(fullDefinition(), models.EmptySelection(), func(filters.Facet, models.SelectedFilters) { fired++ })

	s.Toggle(filters.Facet("bogus"), "x")
	assert.Zero(t, fired)
}

func TestSetPriceRangeReplacesBothBounds(t *testing.T) {
	s := filters.New(fullDefinition(), models.SelectedFilters{Price: models.PriceRange{Min: 10, Max: 50}}, nil)

	s.SetPriceRange(20, 80)
	assert.Equal(t, models.PriceRange{Min: 20, Max: 80}, s.Selected().Price)
}

func TestDisplayPriceMaxResolvesSentinel(t *testing.T) {
	s := filters.New(fullDefinition(), models.EmptySelection(), nil)

	s.SetPriceRange(10, models.NoPriceCap)
	assert.Equal(t, float64(200), s.DisplayPriceMax(), "no user cap shows the facet maximum")

	s.SetPriceRange(10, 90)
	assert.Equal(t, float64(90), s.DisplayPriceMax())
}

func TestChangeCallbackFiresPerMutation(t *testing.T) {
	type change struct {
		facet    filters.Facet
		selected models.SelectedFilters
	}
	var changes []change
	s := filters.New(fullDefinition(), models.EmptySelection(), func(f filters.Facet, sel models.SelectedFilters) {
		changes = append(changes, change{f, sel})
	})

	s.Toggle(filters.FacetColors, "navy")
	s.SetPriceRange(15, 60)

	require.Len(t, changes, 2)
	assert.Equal(t, filters.FacetColors, changes[0].facet)
	assert.Equal(t, []string{"navy"}, changes[0].selected.Colors)
	assert.Equal(t, filters.FacetPrice, changes[1].facet)
	assert.Equal(t, models.PriceRange{Min: 15, Max: 60}, changes[1].selected.Price)
}

func TestResetClearsEverythingAndReportsEveryFacet(t *testing.T) {
	var facets []filters.Facet
	s := filters.New(fullDefinition(), models.SelectedFilters{
		Sizes: []string{"m"},
		Price: models.PriceRange{Min: 20, Max: 80},
	}, func(f filters.Facet, _ models.SelectedFilters) { facets = append(facets, f) })

	s.Reset()

	assert.Empty(t, s.Selected().Sizes)
	assert.Equal(t, models.EmptySelection().Price, s.Selected().Price)
	assert.ElementsMatch(t, filters.Facets, facets)
}

func TestShouldShowSectionHidesTrivialGroups(t *testing.T) {
	tests := []struct {
		name  string
		def   models.FacetDefinition
		facet filters.Facet
		want  bool
	}{
		{"product types with options", fullDefinition(), filters.FacetProductTypes, true},
		{"empty product types", models.FacetDefinition{}, filters.FacetProductTypes, false},
		{"empty sizes", models.FacetDefinition{}, filters.FacetSizes, false},
		{"empty colors", models.FacetDefinition{}, filters.FacetColors, false},
		{"price with spread", fullDefinition(), filters.FacetPrice, true},
		{"degenerate price range", models.FacetDefinition{Price: models.PriceRange{Min: 50, Max: 50}}, filters.FacetPrice, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := filters.New(tt.def, models.EmptySelection(), nil)
			assert.Equal(t, tt.want, s.ShouldShowSection(tt.facet))
		})
	}
}

func TestSectionsOpenByDefault(t *testing.T) {
	s := filters.New(fullDefinition(), models.EmptySelection(), nil)
	for _, f := range filters.Facets {
		assert.True(t, s.IsOpen(f), "facet %s should start open", f)
	}

	s.ToggleSection(filters.FacetSizes)
	assert.False(t, s.IsOpen(filters.FacetSizes))
	s.ToggleSection(filters.FacetSizes)
	assert.True(t, s.IsOpen(filters.FacetSizes))
}
