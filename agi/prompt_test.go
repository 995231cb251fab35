package agi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamio/models"
)

func TestRender(t *testing.T) {
	spec := PromptSpec{
		Destination: "Đà Nẵng",
		Days:        3,
		Budget:      6000000,
		Travelers:   2,
		Weather:     "rainy",
		Tags:        []string{"food", "history"},
		Candidates: []CandidateSummary{
			{ID: "a1", Name: "Dragon Bridge", Category: "attraction", IsFree: true, Rating: 4.7},
			{ID: "r1", Name: "Madame Lan", Category: "restaurant", Price: 150000, Rating: 4.2, Blurb: "Central Vietnamese classics"},
		},
	}

	prompt, err := spec.Render()
	require.NoError(t, err)

	assert.Contains(t, prompt, "3-day itinerary for Đà Nẵng")
	assert.Contains(t, prompt, "rainy")
	assert.Contains(t, prompt, "food, history")
	assert.Contains(t, prompt, "a1 | Dragon Bridge | attraction | free | 4.7")
	assert.Contains(t, prompt, "r1 | Madame Lan | restaurant | 150000 | 4.2 | Central Vietnamese classics")
	assert.Contains(t, prompt, `{"days":[{"day":1,"activities":`)
}

func TestRenderOmitsEmptySections(t *testing.T) {
	spec := PromptSpec{Destination: "Hanoi", Days: 2, Budget: 1000000, Travelers: 1}

	prompt, err := spec.Render()
	require.NoError(t, err)

	assert.NotContains(t, prompt, "Current weather")
	assert.NotContains(t, prompt, "Traveler interests")
}

func TestSummarizeTrimsBlurb(t *testing.T) {
	long := strings.Repeat("Bãi biển ", 30)
	venues := []models.Venue{
		{VenueID: "a1", Name: "My Khe", Category: "attraction", IsFree: true, Rating: 4.6, Description: long},
		{VenueID: "r1", Name: "Quan An", Category: "restaurant", Rating: 4.0},
	}

	out := Summarize(venues)
	require.Len(t, out, 2)

	assert.Len(t, []rune(out[0].Blurb), 80)
	assert.True(t, strings.HasPrefix(long, out[0].Blurb))
	assert.Equal(t, 0.0, out[1].Price)
	assert.Empty(t, out[1].Blurb)
}
