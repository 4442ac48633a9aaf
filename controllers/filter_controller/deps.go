package filter_controller

import (
	"context"
	"errors"
	"log"

	content_cache "github.com/SatpalInfilogix/kular-fashion-web/cache"
	"github.com/SatpalInfilogix/kular-fashion-web/commerce"
	"github.com/SatpalInfilogix/kular-fashion-web/filters"
	"github.com/SatpalInfilogix/kular-fashion-web/models"
	"github.com/SatpalInfilogix/kular-fashion-web/session"
)

// SelectedFiltersKey is the session key holding the shopper's sidebar
// selection between page loads.
const SelectedFiltersKey = "selectedFilters"

var (
	store  session.Store
	client *commerce.Client
)

// Init wires the filter controllers. Called once from main.
func Init(s session.Store, c *commerce.Client) {
	store = s
	client = c
}

// facetDefinition returns the facet universe, served from the in-process
// cache when fresh.
func facetDefinition(ctx context.Context) (models.FacetDefinition, error) {
	if def, ok := content_cache.GetFacets(); ok {
		return def, nil
	}
	def, err := client.FilterMetadata(ctx)
	if err != nil {
		return models.FacetDefinition{}, err
	}
	content_cache.SetFacets(*def)
	return *def, nil
}

// selectedFilters reads the shopper's saved selection, defaulting to an
// empty one.
func selectedFilters(ctx context.Context, sessionID string) models.SelectedFilters {
	var selected models.SelectedFilters
	if err := session.GetJSON(ctx, store, sessionID, SelectedFiltersKey, &selected); err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			log.Printf("[filters] resetting malformed selection: %v", err)
		}
		return models.EmptySelection()
	}
	if selected.ProductTypes == nil {
		selected.ProductTypes = []string{}
	}
	if selected.Sizes == nil {
		selected.Sizes = []string{}
	}
	if selected.Colors == nil {
		selected.Colors = []string{}
	}
	return selected
}

// persistSelection is the sidebar change callback: the session is the
// parent that owns the source-of-truth selection.
func persistSelection(ctx context.Context, sessionID string) filters.ChangeFunc {
	return func(facet filters.Facet, selected models.SelectedFilters) {
		if err := session.SetJSON(ctx, store, sessionID, SelectedFiltersKey, selected); err != nil {
			log.Printf("[filters] failed to persist %s selection: %v", facet, err)
		}
	}
}
