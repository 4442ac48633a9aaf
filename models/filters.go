package models

// FacetDefinition is the universe of selectable filters for a product
// listing. It is supplied by the commerce API, never owned by the sidebar.
type FacetDefinition struct {
	ProductTypes []FacetOption `json:"product_types"`
	Sizes        []FacetOption `json:"sizes"`
	Colors       []ColorOption `json:"colors"`
	Price        PriceRange    `json:"price"`
}

// FacetOption represents a single selectable filter option
type FacetOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ColorOption carries a swatch code instead of a display name
type ColorOption struct {
	ID        string `json:"id"`
	ColorCode string `json:"color_code"`
}

// PriceRange represents min and max price
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SelectedFilters is the shopper's current selection. ID slices keep
// insertion order; order carries no semantic weight. Price.Max == -1 means
// the shopper has not chosen an upper cap and the facet maximum applies.
type SelectedFilters struct {
	ProductTypes []string   `json:"product_types"`
	Sizes        []string   `json:"sizes"`
	Colors       []string   `json:"colors"`
	Price        PriceRange `json:"price"`
}

// NoPriceCap is the sentinel upper bound for "no user-chosen cap".
const NoPriceCap float64 = -1

// EmptySelection returns a selection with nothing chosen and an uncapped
// price range.
func EmptySelection() SelectedFilters {
	return SelectedFilters{
		ProductTypes: []string{},
		Sizes:        []string{},
		Colors:       []string{},
		Price:        PriceRange{Min: 0, Max: NoPriceCap},
	}
}
