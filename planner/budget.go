package planner

import (
	"math"

	"roamio/models"
)

// Default envelope split of the trip budget.
const (
	FoodShare       = 0.40
	LodgingShare    = 0.30
	AttractionShare = 0.20
	OtherShare      = 0.10
)

// BudgetPlan is the trip budget split into category envelopes. All
// figures are whole currency units.
type BudgetPlan struct {
	Total       float64
	Food        float64
	Lodging     float64
	Attractions float64
	Other       float64
}

// AllocateBudget splits the total into the four envelopes.
func AllocateBudget(total float64) BudgetPlan {
	if total < 0 {
		total = 0
	}
	return BudgetPlan{
		Total:       total,
		Food:        math.Round(total * FoodShare),
		Lodging:     math.Round(total * LodgingShare),
		Attractions: math.Round(total * AttractionShare),
		Other:       math.Round(total * OtherShare),
	}
}

// MealAllowance is the per-person figure for one meal slot: the food
// envelope divided across days, meal slots, and travelers.
func (b BudgetPlan) MealAllowance(days, mealSlots, travelers int) float64 {
	return perPersonShare(b.Food, days, mealSlots, travelers)
}

// AttractionAllowance is the per-person figure for one attraction slot.
func (b BudgetPlan) AttractionAllowance(days, attractionSlots, travelers int) float64 {
	return perPersonShare(b.Attractions, days, attractionSlots, travelers)
}

// NightlyLodging is the whole-trip lodging envelope divided across
// nights. Lodging is booked as one unit, so travelers do not divide it.
func (b BudgetPlan) NightlyLodging(days int) float64 {
	if days < 1 {
		days = 1
	}
	return math.Round(b.Lodging / float64(days))
}

func perPersonShare(envelope float64, days, slots, travelers int) float64 {
	if days < 1 {
		days = 1
	}
	if slots < 1 {
		slots = 1
	}
	if travelers < 1 {
		travelers = 1
	}
	return math.Round(envelope / float64(days) / float64(slots) / float64(travelers))
}

// ActivityCost computes the whole-party cost of visiting a venue given
// the per-person slot allowance. Free venues always cost 0; priced
// venues are capped at the allowance so the envelopes hold.
func ActivityCost(v models.Venue, perPerson float64, travelers int) float64 {
	if v.IsFree {
		return 0
	}
	if travelers < 1 {
		travelers = 1
	}
	cost := perPerson
	if v.Price != nil && *v.Price < cost {
		cost = *v.Price
	}
	return math.Round(cost * float64(travelers))
}

// LodgingCost is the per-night cost for the selected lodging, capped at
// the nightly envelope share.
func LodgingCost(v models.Venue, nightly float64) float64 {
	if v.IsFree {
		return 0
	}
	if v.Price != nil && *v.Price < nightly {
		return math.Round(*v.Price)
	}
	return math.Round(nightly)
}
