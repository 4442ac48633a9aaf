// Package filters holds the product-listing sidebar state. It is a
// controlled component: the facet universe comes from outside, every
// selection change is reported through one callback, and the sidebar never
// fetches or filters anything itself. Desktop and mobile shells share this
// one controller.
package filters

import (
	"github.com/SatpalInfilogix/kular-fashion-web/models"
)

// Facet names the four filter groups. Values double as the callback key.
type Facet string

const (
	FacetProductTypes Facet = "product_types"
	FacetSizes        Facet = "sizes"
	FacetColors       Facet = "colors"
	FacetPrice        Facet = "price"
)

// Facets in display order.
var Facets = []Facet{FacetProductTypes, FacetSizes, FacetColors, FacetPrice}

// ChangeFunc receives every selection mutation, keyed by facet name. The
// parent owns the source-of-truth selection.
type ChangeFunc func(facet Facet, selected models.SelectedFilters)

// Sidebar is the filter sidebar state container.
type Sidebar struct {
	def      models.FacetDefinition
	selected models.SelectedFilters
	open     map[Facet]bool
	onChange ChangeFunc
}

// New builds a sidebar over the given facet universe with every group open.
func New(def models.FacetDefinition, selected models.SelectedFilters, onChange ChangeFunc) *Sidebar {
	open := make(map[Facet]bool, len(Facets))
	for _, f := range Facets {
		open[f] = true
	}
	return &Sidebar{def: def, selected: selected, open: open, onChange: onChange}
}

// ToggleSection flips a group's open/closed flag. Pure presentation state;
// no change callback fires.
func (s *Sidebar) ToggleSection(f Facet) {
	s.open[f] = !s.open[f]
}

func (s *Sidebar) IsOpen(f Facet) bool { return s.open[f] }

// Toggle applies symmetric-difference selection to a categorical facet:
// an already-selected id is removed, a new id is appended.
func (s *Sidebar) Toggle(f Facet, id string) {
	switch f {
	case FacetProductTypes:
		s.selected.ProductTypes = toggleSelection(s.selected.ProductTypes, id)
	case FacetSizes:
		s.selected.Sizes = toggleSelection(s.selected.Sizes, id)
	case FacetColors:
		s.selected.Colors = toggleSelection(s.selected.Colors, id)
	default:
		return
	}
	s.emit(f)
}

// SetPriceRange replaces both bounds atomically from slider output. A max
// of models.NoPriceCap means no user-chosen cap.
func (s *Sidebar) SetPriceRange(min, max float64) {
	s.selected.Price = models.PriceRange{Min: min, Max: max}
	s.emit(FacetPrice)
}

// Reset clears the whole selection and reports every facet.
func (s *Sidebar) Reset() {
	s.selected = models.EmptySelection()
	for _, f := range Facets {
		s.emit(f)
	}
}

// ShouldShowSection hides trivial groups: no options for categorical
// facets, min == max for price.
func (s *Sidebar) ShouldShowSection(f Facet) bool {
	switch f {
	case FacetProductTypes:
		return len(s.def.ProductTypes) > 0
	case FacetSizes:
		return len(s.def.Sizes) > 0
	case FacetColors:
		return len(s.def.Colors) > 0
	case FacetPrice:
		return s.def.Price.Min != s.def.Price.Max
	}
	return false
}

// Selected returns the current selection.
func (s *Sidebar) Selected() models.SelectedFilters { return s.selected }

// DisplayPriceMax resolves the sentinel: with no user-chosen cap the facet
// maximum is shown.
func (s *Sidebar) DisplayPriceMax() float64 {
	if s.selected.Price.Max > models.NoPriceCap {
		return s.selected.Price.Max
	}
	return s.def.Price.Max
}

func (s *Sidebar) emit(f Facet) {
	if s.onChange != nil {
		s.onChange(f, s.selected)
	}
}

func toggleSelection(selected []string, id string) []string {
	for i, v := range selected {
		if v == id {
			return append(append([]string{}, selected[:i]...), selected[i+1:]...)
		}
	}
	return append(append([]string{}, selected...), id)
}
