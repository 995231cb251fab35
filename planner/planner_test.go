package planner

import (
	"context"
	"fmt"

	"roamio/models"
)

// fakeCatalog serves a fixed in-memory pool keyed by category.
type fakeCatalog struct {
	venues map[string][]models.Venue
	err    error
}

func (f *fakeCatalog) FindVenues(ctx context.Context, destination, category string, limit int) ([]models.Venue, error) {
	if f.err != nil {
		return nil, f.err
	}
	venues := f.venues[category]
	if len(venues) > limit {
		venues = venues[:limit]
	}
	return venues, nil
}

type fakeWeather struct {
	condition string
	err       error
}

func (f *fakeWeather) Current(ctx context.Context, city string) (string, error) {
	if f.err != nil {
		return models.WeatherNeutral, f.err
	}
	return f.condition, nil
}

func price(x float64) *float64 { return &x }

func testVenue(id, name, category string, p *float64, rating float64) models.Venue {
	return models.Venue{
		VenueID:     id,
		Name:        name,
		Category:    category,
		Price:       p,
		IsFree:      p == nil,
		Rating:      rating,
		City:        "Đà Nẵng",
		RegionID:    "da-nang",
		Description: name,
	}
}

// daNangCatalog builds a pool deep enough to fill a three-day trip
// without slot relaxation.
func daNangCatalog() *fakeCatalog {
	attractions := []models.Venue{
		testVenue("a1", "Dragon Bridge", models.VenueCategoryAttraction, nil, 4.7),
		testVenue("a2", "My Khe Beach", models.VenueCategoryAttraction, nil, 4.6),
		testVenue("a3", "Marble Mountains", models.VenueCategoryAttraction, price(40000), 4.5),
		testVenue("a4", "Museum of Cham Sculpture", models.VenueCategoryAttraction, price(60000), 4.3),
		testVenue("a5", "Linh Ung Pagoda", models.VenueCategoryAttraction, nil, 4.8),
		testVenue("a6", "Han Market", models.VenueCategoryAttraction, nil, 4.0),
		testVenue("a7", "Son Tra Peninsula", models.VenueCategoryAttraction, nil, 4.6),
		testVenue("a8", "Ba Na Hills", models.VenueCategoryAttraction, price(850000), 4.4),
		testVenue("a9", "Asia Park", models.VenueCategoryAttraction, price(200000), 4.1),
		testVenue("a10", "Con Market", models.VenueCategoryAttraction, nil, 3.9),
	}
	restaurants := make([]models.Venue, 0, 10)
	for i := 1; i <= 10; i++ {
		restaurants = append(restaurants, testVenue(
			fmt.Sprintf("r%d", i),
			fmt.Sprintf("Quan An Local Restaurant %d", i),
			models.VenueCategoryRestaurant,
			price(float64(50000+i*10000)),
			3.5+float64(i%5)*0.3,
		))
	}
	lodging := []models.Venue{
		testVenue("l1", "Riverside Hotel", models.VenueCategoryLodging, price(550000), 4.2),
		testVenue("l2", "Beachfront Resort", models.VenueCategoryLodging, price(2500000), 4.9),
	}
	return &fakeCatalog{venues: map[string][]models.Venue{
		models.VenueCategoryAttraction: attractions,
		models.VenueCategoryRestaurant: restaurants,
		models.VenueCategoryLodging:    lodging,
	}}
}

func daNangRequest() models.ItineraryRequest {
	return models.ItineraryRequest{
		Destination: "Đà Nẵng",
		StartDate:   "2026-04-10",
		EndDate:     "2026-04-12",
		Budget:      6000000,
		Travelers:   2,
		BudgetAware: true,
	}
}

func poolFrom(f *fakeCatalog) CandidatePool {
	return CandidatePool{
		Attractions: f.venues[models.VenueCategoryAttraction],
		Restaurants: f.venues[models.VenueCategoryRestaurant],
		Lodging:     f.venues[models.VenueCategoryLodging],
	}
}
