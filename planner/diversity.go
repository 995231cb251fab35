package planner

import (
	"strings"

	"roamio/catalog"
	"roamio/models"
)

// Coarse venue categories tracked for cross-day diversity. Classification
// shares the keyword heuristic the time-slot fit uses.
var coarseCategories = []struct {
	name  string
	words []string
}{
	{"cafe", []string{"cafe", "coffee", "ca phe"}},
	{"restaurant", []string{"restaurant", "food", "eatery", "diner", "buffet", "nha hang", "quan an", "pho", "bun", "banh mi"}},
	{"temple", []string{"temple", "pagoda", "shrine", "church", "cathedral", "chua", "den ", "nha tho"}},
	{"museum", []string{"museum", "gallery", "exhibition", "bao tang"}},
	{"market", []string{"market", "bazaar", "cho "}},
	{"walking-street", []string{"walking street", "promenade", "pedestrian", "bridge", "pho di bo", "cau "}},
	{"park", []string{"park", "garden", "beach", "mountain", "lake", "waterfall", "island", "cong vien", "vuon", "bai bien", "nui", "ho ", "thac", "dao "}},
}

// CoarseCategory classifies a venue into one of the tracked categories,
// falling back to the catalog category or "other".
func CoarseCategory(v models.Venue) string {
	text := catalog.Normalize(v.Name+" "+v.Description) + " "
	for _, c := range coarseCategories {
		for _, w := range c.words {
			if strings.Contains(text, w) {
				return c.name
			}
		}
	}
	if v.Category == models.VenueCategoryRestaurant {
		return "restaurant"
	}
	return "other"
}

// SelectionContext is the request-scoped anti-repetition state for one
// itinerary being assembled. It is never shared across requests and is
// deliberately carried across days, not reset per day.
type SelectionContext struct {
	used       map[string]struct{}
	categories map[string]int
	fallbacks  int
}

func NewSelectionContext() *SelectionContext {
	return &SelectionContext{
		used:       make(map[string]struct{}),
		categories: make(map[string]int),
	}
}

// Used reports whether the venue id was already selected in this itinerary.
func (sc *SelectionContext) Used(id string) bool {
	_, ok := sc.used[id]
	return ok
}

// Add records a selected venue. A venue id is added at most once.
func (sc *SelectionContext) Add(v models.Venue) {
	if _, ok := sc.used[v.VenueID]; ok {
		return
	}
	sc.used[v.VenueID] = struct{}{}
	sc.categories[CoarseCategory(v)]++
}

// UsedCount returns how many distinct venues are selected so far.
func (sc *SelectionContext) UsedCount() int {
	return len(sc.used)
}

// DiversityBonus rewards category novelty and penalizes repetition:
// +15 for a first occurrence, +5 for a second, -10 from the third on.
func (sc *SelectionContext) DiversityBonus(v models.Venue) float64 {
	switch sc.categories[CoarseCategory(v)] {
	case 0:
		return 15
	case 1:
		return 5
	default:
		return -10
	}
}
