package planner

import (
	"strings"

	"roamio/catalog"
	"roamio/models"
)

// DistanceFunc supplies the distance from the traveler's base to a
// venue, when a geodesy provider is wired. ok=false means unknown.
type DistanceFunc func(v models.Venue) (km float64, ok bool)

// ScoreContext carries the per-slot inputs to one candidate evaluation.
// It is rebuilt for every slot, never cached across slots.
type ScoreContext struct {
	Weather  string  // models.Weather* class
	Budget   float64 // total trip budget; 0 disables budget fit
	Slot     TimeSlot
	Distance DistanceFunc
}

// Venue setting classes for weather fit.
const (
	settingOutdoor = "outdoor"
	settingIndoor  = "indoor"
	settingNeutral = "neutral"
)

var outdoorWords = []string{
	"park", "garden", "beach", "mountain", "lake", "waterfall", "trail",
	"walking street", "bridge", "island", "bay", "river",
	"cong vien", "bai bien", "nui", "thac", "cau", "dao", "song",
}

var indoorWords = []string{
	"museum", "gallery", "mall", "aquarium", "theater", "theatre",
	"cinema", "spa", "exhibition",
	"bao tang", "trung tam thuong mai",
}

// slotAffinity lists the coarse categories that fit each non-meal slot.
// Meal slots want restaurants and cafes regardless of this table.
var slotAffinity = map[SlotType][]string{
	SlotMorning:   {"temple", "museum", "park"},
	SlotAfternoon: {"park", "museum", "market", "walking-street"},
	SlotEvening:   {"walking-street", "market", "cafe"},
}

// Score computes the desirability of a venue for one slot. Pure function
// of its inputs; identical inputs always produce the identical score.
func Score(v models.Venue, ctx ScoreContext) float64 {
	total := weatherFit(v, ctx.Weather)
	total += budgetFit(v, ctx.Budget)
	total += distanceFit(v, ctx.Distance)
	total += ratingFit(v)
	total += slotFit(v, ctx.Slot)
	return total
}

// weatherFit scores 0-30. Outdoor venues want clear skies, indoor venues
// want rain, neutral venues sit at a flat mid value.
func weatherFit(v models.Venue, condition string) float64 {
	switch classifySetting(v) {
	case settingOutdoor:
		switch condition {
		case models.WeatherSunny:
			return 30
		case models.WeatherCloudy:
			return 20
		case models.WeatherRainy:
			return 5
		default:
			return 22
		}
	case settingIndoor:
		switch condition {
		case models.WeatherRainy:
			return 30
		case models.WeatherCloudy:
			return 22
		case models.WeatherSunny:
			return 15
		default:
			return 20
		}
	default:
		return 18
	}
}

// budgetFit scores 0-25 by the venue price's share of the trip budget.
// Free venues always score the maximum.
func budgetFit(v models.Venue, budget float64) float64 {
	if v.IsFree || v.Price == nil {
		return 25
	}
	if budget <= 0 {
		return 15 // budget awareness disabled
	}
	ratio := *v.Price / budget
	switch {
	case ratio <= 0.05:
		return 25
	case ratio <= 0.10:
		return 20
	case ratio <= 0.20:
		return 15
	case ratio <= 0.30:
		return 10
	default:
		return 5
	}
}

// distanceFit scores 0-20, banded decay when a provider is wired and a
// constant placeholder otherwise.
func distanceFit(v models.Venue, distance DistanceFunc) float64 {
	if distance == nil {
		return 10
	}
	km, ok := distance(v)
	if !ok {
		return 10
	}
	switch {
	case km <= 1:
		return 20
	case km <= 3:
		return 16
	case km <= 5:
		return 12
	case km <= 10:
		return 8
	default:
		return 4
	}
}

// ratingFit scores 0-15, linear in rating/5.
func ratingFit(v models.Venue) float64 {
	rating := clamp(v.Rating, 0, 5)
	return rating / 5 * 15
}

// slotFit scores 0-10. Unmatched venues get a low non-zero floor so no
// slot is unfillable purely on vocabulary.
func slotFit(v models.Venue, slot TimeSlot) float64 {
	category := CoarseCategory(v)
	if slot.IsMeal() {
		if category == "restaurant" || category == "cafe" {
			return 10
		}
		return 3
	}
	for _, want := range slotAffinity[slot.Type] {
		if category == want {
			return 10
		}
	}
	return 3
}

func classifySetting(v models.Venue) string {
	text := catalog.Normalize(v.Name + " " + v.Description)
	for _, w := range indoorWords {
		if strings.Contains(text, w) {
			return settingIndoor
		}
	}
	for _, w := range outdoorWords {
		if strings.Contains(text, w) {
			return settingOutdoor
		}
	}
	return settingNeutral
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
