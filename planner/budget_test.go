package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roamio/models"
)

func TestAllocateBudget(t *testing.T) {
	plan := AllocateBudget(1000000)

	assert.Equal(t, 400000.0, plan.Food)
	assert.Equal(t, 300000.0, plan.Lodging)
	assert.Equal(t, 200000.0, plan.Attractions)
	assert.Equal(t, 100000.0, plan.Other)

	sum := plan.Food + plan.Lodging + plan.Attractions + plan.Other
	assert.InDelta(t, plan.Total, sum, 2)
}

func TestAllocateBudgetNegative(t *testing.T) {
	plan := AllocateBudget(-500)
	assert.Equal(t, 0.0, plan.Total)
	assert.Equal(t, 0.0, plan.Food)
}

func TestMealAllowance(t *testing.T) {
	plan := AllocateBudget(6000000)
	// food 2.4M over 3 days, 3 meals, 2 travelers
	assert.Equal(t, 133333.0, plan.MealAllowance(3, 3, 2))
	// degenerate inputs guard to 1
	assert.Equal(t, plan.Food, plan.MealAllowance(0, 0, 0))
}

func TestAttractionAllowance(t *testing.T) {
	plan := AllocateBudget(6000000)
	// attractions 1.2M over 3 days, 3 slots, 2 travelers
	assert.Equal(t, 66667.0, plan.AttractionAllowance(3, 3, 2))
}

func TestNightlyLodging(t *testing.T) {
	plan := AllocateBudget(6000000)
	assert.Equal(t, 600000.0, plan.NightlyLodging(3))
	assert.Equal(t, plan.Lodging, plan.NightlyLodging(0))
}

func TestActivityCost(t *testing.T) {
	free := testVenue("a1", "City Square", models.VenueCategoryAttraction, nil, 4.0)
	assert.Equal(t, 0.0, ActivityCost(free, 100000, 4))

	cheap := testVenue("a2", "Small Museum", models.VenueCategoryAttraction, price(30000), 4.0)
	assert.Equal(t, 60000.0, ActivityCost(cheap, 100000, 2))

	// price above the allowance is capped per person
	pricey := testVenue("a3", "Theme Park", models.VenueCategoryAttraction, price(850000), 4.4)
	assert.Equal(t, 200000.0, ActivityCost(pricey, 100000, 2))

	assert.Equal(t, 30000.0, ActivityCost(cheap, 100000, 0))
}

func TestLodgingCost(t *testing.T) {
	hotel := testVenue("l1", "Riverside Hotel", models.VenueCategoryLodging, price(550000), 4.2)
	assert.Equal(t, 550000.0, LodgingCost(hotel, 600000))

	resort := testVenue("l2", "Beachfront Resort", models.VenueCategoryLodging, price(2500000), 4.9)
	assert.Equal(t, 600000.0, LodgingCost(resort, 600000))

	homestay := testVenue("l3", "Friend Homestay", models.VenueCategoryLodging, nil, 4.0)
	assert.Equal(t, 0.0, LodgingCost(homestay, 600000))
}
