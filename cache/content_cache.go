package content_cache

import (
	"sync"
	"time"

	"github.com/SatpalInfilogix/kular-fashion-web/models"
)

const TTL = 5 * time.Minute

// ── Home page content cache ──────────────────────────────────────────────────
// Marketing content changes rarely; the home page is the hottest route.
// One entry covers hero, featured categories, testimonials and brands.

type homeEntry struct {
	content   models.HomeContent
	fetchedAt time.Time
}

var (
	homeMu    sync.RWMutex
	homeCache *homeEntry
)

func GetHome() (models.HomeContent, bool) {
	homeMu.RLock()
	defer homeMu.RUnlock()
	if homeCache != nil && time.Since(homeCache.fetchedAt) < TTL {
		return homeCache.content, true
	}
	return models.HomeContent{}, false
}

func SetHome(content models.HomeContent) {
	homeMu.Lock()
	defer homeMu.Unlock()
	homeCache = &homeEntry{content: content, fetchedAt: time.Now()}
}

// ── Filter metadata cache ────────────────────────────────────────────────────
// The facet universe comes from the commerce API; caching it keeps the
// sidebar endpoints off the backend for repeat visits.

type facetEntry struct {
	def       models.FacetDefinition
	fetchedAt time.Time
}

var (
	facetMu    sync.RWMutex
	facetCache *facetEntry
)

func GetFacets() (models.FacetDefinition, bool) {
	facetMu.RLock()
	defer facetMu.RUnlock()
	if facetCache != nil && time.Since(facetCache.fetchedAt) < TTL {
		return facetCache.def, true
	}
	return models.FacetDefinition{}, false
}

func SetFacets(def models.FacetDefinition) {
	facetMu.Lock()
	defer facetMu.Unlock()
	facetCache = &facetEntry{def: def, fetchedAt: time.Now()}
}

// ── Invalidate everything (call when content is reseeded) ────────────────────

func Invalidate() {
	homeMu.Lock()
	homeCache = nil
	homeMu.Unlock()

	facetMu.Lock()
	facetCache = nil
	facetMu.Unlock()
}
