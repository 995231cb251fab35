package planner

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"roamio/catalog"
	"roamio/models"
)

// CandidatePool is the region-filtered venue pool for one itinerary.
type CandidatePool struct {
	Attractions []models.Venue
	Restaurants []models.Venue
	Lodging     []models.Venue
}

// ForSlot returns the candidates matching a slot's semantic type.
func (p CandidatePool) ForSlot(t SlotType) []models.Venue {
	switch t {
	case SlotBreakfast, SlotLunch, SlotDinner:
		return p.Restaurants
	default:
		return p.Attractions
	}
}

// All returns every schedulable candidate (lodging is picked separately).
func (p CandidatePool) All() []models.Venue {
	all := make([]models.Venue, 0, len(p.Attractions)+len(p.Restaurants))
	all = append(all, p.Attractions...)
	all = append(all, p.Restaurants...)
	return all
}

// Empty reports whether nothing schedulable was found for the destination.
func (p CandidatePool) Empty() bool {
	return len(p.Attractions) == 0 && len(p.Restaurants) == 0
}

// MatchVenue finds a pool venue whose name matches the given title by
// normalized substring in either direction.
func (p CandidatePool) MatchVenue(title string) (models.Venue, bool) {
	needle := catalog.Normalize(title)
	if needle == "" {
		return models.Venue{}, false
	}
	for _, v := range append(p.All(), p.Lodging...) {
		name := catalog.Normalize(v.Name)
		if name == "" {
			continue
		}
		if strings.Contains(name, needle) || strings.Contains(needle, name) {
			return v, true
		}
	}
	return models.Venue{}, false
}

// Generic placeholder activities used only when the catalog gives the
// scheduler nothing. Destination-keyed variants take precedence.
type fallbackActivity struct {
	Title       string
	Description string
}

var genericFallbacks = []fallbackActivity{
	{"Walking street stroll", "Wander the local walking street and soak up the evening bustle."},
	{"Rooftop cafe break", "Find a rooftop cafe with a view and try the local coffee."},
	{"Night market visit", "Browse the stalls of the nearest night market for street food and souvenirs."},
	{"Local restaurant meal", "Pick a busy local restaurant and order the house specialty."},
}

var destinationFallbacks = map[string][]fallbackActivity{
	"da-nang": {
		{"Han River promenade walk", "Stroll the Han riverside and watch the Dragon Bridge light up."},
		{"My Khe beach break", "Relax on My Khe beach or grab a seafront coffee."},
		{"Son Tra night market", "Sample grilled seafood and sweet soups at the night market."},
		{"Mi Quang tasting", "Order mi quang noodles at a busy local eatery."},
	},
	"hanoi": {
		{"Old Quarter walk", "Weave through the 36 streets of the Old Quarter."},
		{"Egg coffee stop", "Duck into a hidden cafe for Hanoi's famous egg coffee."},
		{"Hoan Kiem lake loop", "Circle Hoan Kiem lake and watch the evening crowds."},
		{"Bun cha dinner", "Find a charcoal-smoked bun cha spot for dinner."},
	},
	"ho-chi-minh": {
		{"Nguyen Hue walking street", "Join the crowds on the Nguyen Hue pedestrian boulevard."},
		{"Rooftop bar view", "Catch the skyline from a rooftop bar over District 1."},
		{"Ben Thanh night stalls", "Graze the food stalls around Ben Thanh after dark."},
		{"Com tam supper", "Order broken-rice com tam at a sidewalk eatery."},
	},
}

// fallbackFor picks a placeholder for a destination, rotated by day
// index and per-request use count so consecutive picks never repeat.
func fallbackFor(destination string, dayIdx, useCount int) fallbackActivity {
	table := genericFallbacks
	if region, ok := catalog.Resolve(destination); ok {
		if t, found := destinationFallbacks[region.ID]; found {
			table = t
		}
	}
	return table[(dayIdx+useCount)%len(table)]
}

type dayParams struct {
	date        time.Time
	dayIdx      int
	days        int
	destination string
	weather     string
	budget      BudgetPlan
	travelers   int
	budgetAware bool
}

// fillDay runs the per-day slot state machine: for each slot in order,
// pick the top-scoring unused candidate, relaxing to the whole pool and
// finally to placeholder activities. The SelectionContext persists
// across days so a venue used on day 1 never resurfaces on day 3.
func (e *Engine) fillDay(pool CandidatePool, sel *SelectionContext, p dayParams) models.DaySchedule {
	day := models.DaySchedule{
		Date:       p.date.Format("2006-01-02"),
		Activities: []models.Activity{},
	}

	scoreBudget := 0.0
	if p.budgetAware {
		scoreBudget = p.budget.Total
	}
	rng := rand.New(rand.NewSource(int64(p.dayIdx) + 1))

	for _, slot := range TemplateFor(p.dayIdx) {
		ctx := ScoreContext{
			Weather:  p.weather,
			Budget:   scoreBudget,
			Slot:     slot,
			Distance: e.Distance,
		}

		candidates := eligible(pool.ForSlot(slot.Type), sel)
		if len(candidates) == 0 {
			// Relax to any unused candidate; shuffle with the day-keyed
			// source so variety stays reproducible.
			candidates = eligible(pool.All(), sel)
			rng.Shuffle(len(candidates), func(i, j int) {
				candidates[i], candidates[j] = candidates[j], candidates[i]
			})
		}

		if len(candidates) == 0 {
			fb := fallbackFor(p.destination, p.dayIdx, sel.fallbacks)
			sel.fallbacks++
			day.Activities = append(day.Activities, models.Activity{
				Time:        slot.Start,
				Type:        "activity",
				Title:       fb.Title,
				Description: fb.Description,
				Location:    p.destination,
				Cost:        0,
				Duration:    slot.Duration(),
			})
			continue
		}

		chosen := pickBest(candidates, ctx, sel)
		sel.Add(chosen)

		var allowance float64
		if slot.IsMeal() {
			allowance = p.budget.MealAllowance(p.days, mealSlotsPerDay, p.travelers)
		} else {
			allowance = p.budget.AttractionAllowance(p.days, attractionSlotsPerDay, p.travelers)
		}

		day.Activities = append(day.Activities, models.Activity{
			Time:        slot.Start,
			Type:        chosen.Category,
			Title:       chosen.Name,
			Description: chosen.Description,
			Location:    venueLocation(chosen, p.destination),
			Cost:        ActivityCost(chosen, allowance, p.travelers),
			Duration:    slot.Duration(),
			VenueID:     chosen.VenueID,
		})
	}

	return day
}

const (
	mealSlotsPerDay       = 3
	attractionSlotsPerDay = 3
)

func eligible(venues []models.Venue, sel *SelectionContext) []models.Venue {
	out := make([]models.Venue, 0, len(venues))
	for _, v := range venues {
		if !sel.Used(v.VenueID) {
			out = append(out, v)
		}
	}
	return out
}

// pickBest ranks by score plus diversity bonus; ties break on higher
// rating, then on input order so output stays reproducible.
func pickBest(candidates []models.Venue, ctx ScoreContext, sel *SelectionContext) models.Venue {
	type scored struct {
		venue models.Venue
		score float64
	}
	ranked := make([]scored, 0, len(candidates))
	for _, v := range candidates {
		ranked = append(ranked, scored{v, Score(v, ctx) + sel.DiversityBonus(v)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].venue.Rating > ranked[j].venue.Rating
	})
	return ranked[0].venue
}

func venueLocation(v models.Venue, destination string) string {
	if v.Address != "" {
		return v.Address
	}
	if v.City != "" {
		return v.City
	}
	return destination
}

// pickLodging selects the single lodging venue reused across the whole
// stay. Affordable venues come first, then rating, then catalog order.
func pickLodging(lodging []models.Venue, nightly float64) (models.Venue, bool) {
	if len(lodging) == 0 {
		return models.Venue{}, false
	}
	affordable := func(v models.Venue) bool {
		return v.IsFree || v.Price == nil || *v.Price <= nightly
	}
	ranked := make([]models.Venue, len(lodging))
	copy(ranked, lodging)
	sort.SliceStable(ranked, func(i, j int) bool {
		ai, aj := affordable(ranked[i]), affordable(ranked[j])
		if ai != aj {
			return ai
		}
		return ranked[i].Rating > ranked[j].Rating
	})
	return ranked[0], true
}
