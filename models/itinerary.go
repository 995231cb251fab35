package models

import "time"

// ItineraryRequest carries the constraints for one composition run.
// It is created per call and never persisted.
type ItineraryRequest struct {
	Destination   string   `json:"destination"`
	StartDate     string   `json:"start_date"` // YYYY-MM-DD
	EndDate       string   `json:"end_date"`   // YYYY-MM-DD, inclusive
	Budget        float64  `json:"budget"`
	Travelers     int      `json:"travelers"`
	Tags          []string `json:"tags,omitempty"`
	WeatherAware  bool     `json:"weather_aware"`
	BudgetAware   bool     `json:"budget_aware"`
	UseGenerative bool     `json:"use_generative"`
	// Premium comes from the JWT role claim, never from the request body.
	Premium bool `json:"-"`
}

type Activity struct {
	Time        string  `json:"time" bson:"time"`
	Type        string  `json:"type" bson:"type"` // attraction | restaurant | lodging | activity
	Title       string  `json:"title" bson:"title"`
	Description string  `json:"description" bson:"description"`
	Location    string  `json:"location" bson:"location"`
	Cost        float64 `json:"cost" bson:"cost"`
	Duration    string  `json:"duration" bson:"duration"`
	// VenueID is empty when a generic fallback activity filled the slot.
	VenueID string `json:"venueid,omitempty" bson:"venueid,omitempty"`
}

type DaySchedule struct {
	Date       string     `json:"date" bson:"date"`
	Activities []Activity `json:"activities" bson:"activities"`
}

// Itinerary is a transient computation result until the user confirms it.
type Itinerary struct {
	ItineraryID     string        `json:"itineraryid" bson:"itineraryid,omitempty"`
	UserID          string        `json:"user_id" bson:"user_id"`
	Destination     string        `json:"destination" bson:"destination"`
	StartDate       string        `json:"start_date" bson:"start_date"`
	EndDate         string        `json:"end_date" bson:"end_date"`
	Budget          float64       `json:"budget" bson:"budget"`
	Travelers       int           `json:"travelers" bson:"travelers"`
	DayCount        int           `json:"day_count" bson:"day_count"`
	TotalCost       float64       `json:"total_cost" bson:"total_cost"`
	DailyAverage    float64       `json:"daily_average" bson:"daily_average"`
	TotalActivities int           `json:"total_activities" bson:"total_activities"`
	Source          string        `json:"source" bson:"source"` // deterministic | generative
	Status          string        `json:"status" bson:"status"` // Draft | Confirmed
	Days            []DaySchedule `json:"days" bson:"days"`
	Deleted         bool          `json:"-" bson:"deleted,omitempty"`
	CreatedAt       time.Time     `json:"created_at" bson:"created_at"`
}
