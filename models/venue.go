package models

// Venue categories as stored in the catalog.
const (
	VenueCategoryAttraction = "attraction"
	VenueCategoryRestaurant = "restaurant"
	VenueCategoryLodging    = "lodging"
)

// Venue is a catalog record; the planner only reads it.
type Venue struct {
	VenueID     string   `json:"venueid" bson:"venueid"`
	Name        string   `json:"name" bson:"name"`
	Category    string   `json:"category" bson:"category"`
	Price       *float64 `json:"price,omitempty" bson:"price,omitempty"` // nil means "check is_free"
	IsFree      bool     `json:"is_free" bson:"is_free"`
	Rating      float64  `json:"rating" bson:"rating"` // 0-5
	Address     string   `json:"address" bson:"address"`
	City        string   `json:"city,omitempty" bson:"city,omitempty"`
	RegionID    string   `json:"region_id,omitempty" bson:"region_id,omitempty"`
	Description string   `json:"description" bson:"description"`
	Tags        []string `json:"tags,omitempty" bson:"tags,omitempty"`
}

// Coarse weather condition classes consumed by venue scoring.
const (
	WeatherSunny   = "sunny"
	WeatherRainy   = "rainy"
	WeatherCloudy  = "cloudy"
	WeatherNeutral = "neutral"
)
