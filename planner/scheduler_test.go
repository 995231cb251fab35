package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamio/models"
)

func TestTemplateForRotates(t *testing.T) {
	assert.Equal(t, TemplateFor(0), TemplateFor(3))
	assert.NotEqual(t, TemplateFor(0)[0].Start, TemplateFor(1)[0].Start)
	assert.Equal(t, TemplateFor(0), TemplateFor(-1))

	for day := 0; day < 3; day++ {
		slots := TemplateFor(day)
		require.Len(t, slots, 6)
		assert.Equal(t, SlotBreakfast, slots[0].Type)
		assert.Equal(t, SlotLunch, slots[2].Type)
		assert.Equal(t, SlotDinner, slots[4].Type)
	}
}

func TestSlotDuration(t *testing.T) {
	cases := []struct {
		start, end, want string
	}{
		{"08:00", "09:00", "1h"},
		{"14:00", "17:00", "3h"},
		{"12:00", "12:30", "30m"},
		{"18:30", "20:00", "1h30m"},
		{"bogus", "09:00", "1h"},
		{"10:00", "09:00", "1h"},
	}
	for _, tc := range cases {
		s := TimeSlot{Start: tc.start, End: tc.end}
		assert.Equal(t, tc.want, s.Duration(), "%s-%s", tc.start, tc.end)
	}
}

func TestMatchVenue(t *testing.T) {
	pool := CandidatePool{
		Attractions: []models.Venue{
			testVenue("a1", "Chùa Linh Ứng", models.VenueCategoryAttraction, nil, 4.8),
			testVenue("a2", "Dragon Bridge", models.VenueCategoryAttraction, nil, 4.7),
		},
		Lodging: []models.Venue{
			testVenue("l1", "Riverside Hotel", models.VenueCategoryLodging, price(550000), 4.2),
		},
	}

	v, ok := pool.MatchVenue("Linh Ung")
	require.True(t, ok)
	assert.Equal(t, "a1", v.VenueID)

	// model output often pads the name; matching works both directions
	v, ok = pool.MatchVenue("Visit the famous Dragon Bridge at night")
	require.True(t, ok)
	assert.Equal(t, "a2", v.VenueID)

	v, ok = pool.MatchVenue("Riverside Hotel")
	require.True(t, ok)
	assert.Equal(t, "l1", v.VenueID)

	_, ok = pool.MatchVenue("Eiffel Tower")
	assert.False(t, ok)

	_, ok = pool.MatchVenue("")
	assert.False(t, ok)
}

func TestFillDayFallbacksOnEmptyPool(t *testing.T) {
	e := &Engine{}
	sel := NewSelectionContext()
	day := e.fillDay(CandidatePool{}, sel, dayParams{
		date:        time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		dayIdx:      0,
		days:        2,
		destination: "Đà Nẵng",
		weather:     models.WeatherNeutral,
		budget:      AllocateBudget(2000000),
		travelers:   2,
	})

	require.Len(t, day.Activities, 6)
	for i, act := range day.Activities {
		assert.Empty(t, act.VenueID)
		assert.Equal(t, 0.0, act.Cost)
		assert.Equal(t, "activity", act.Type)
		if i > 0 {
			assert.NotEqual(t, day.Activities[i-1].Title, act.Title)
		}
	}
	// destination-specific placeholders, not the generic table
	assert.Equal(t, "Han River promenade walk", day.Activities[0].Title)
}

func TestFillDayFallbacksGenericForUnknownDestination(t *testing.T) {
	e := &Engine{}
	day := e.fillDay(CandidatePool{}, NewSelectionContext(), dayParams{
		date:        time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		destination: "Atlantis",
		weather:     models.WeatherNeutral,
		budget:      AllocateBudget(2000000),
		travelers:   1,
	})
	require.Len(t, day.Activities, 6)
	assert.Equal(t, genericFallbacks[0].Title, day.Activities[0].Title)
}

func TestFillDayUniqueAcrossDays(t *testing.T) {
	e := &Engine{}
	pool := poolFrom(daNangCatalog())
	sel := NewSelectionContext()
	budget := AllocateBudget(6000000)

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		day := e.fillDay(pool, sel, dayParams{
			date:        time.Date(2026, 4, 10+i, 0, 0, 0, 0, time.UTC),
			dayIdx:      i,
			days:        3,
			destination: "Đà Nẵng",
			weather:     models.WeatherSunny,
			budget:      budget,
			travelers:   2,
			budgetAware: true,
		})
		for _, act := range day.Activities {
			if act.VenueID == "" {
				continue
			}
			assert.False(t, seen[act.VenueID], "venue %s scheduled twice", act.VenueID)
			seen[act.VenueID] = true
		}
	}
}

func TestPickLodgingPrefersAffordable(t *testing.T) {
	cheap := testVenue("l1", "Riverside Hotel", models.VenueCategoryLodging, price(550000), 4.2)
	fancy := testVenue("l2", "Beachfront Resort", models.VenueCategoryLodging, price(2500000), 4.9)

	chosen, ok := pickLodging([]models.Venue{fancy, cheap}, 600000)
	require.True(t, ok)
	assert.Equal(t, "l1", chosen.VenueID)

	// nothing affordable, highest rating wins
	chosen, ok = pickLodging([]models.Venue{cheap, fancy}, 100000)
	require.True(t, ok)
	assert.Equal(t, "l2", chosen.VenueID)

	_, ok = pickLodging(nil, 600000)
	assert.False(t, ok)
}
