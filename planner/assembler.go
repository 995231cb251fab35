package planner

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"roamio/agi"
	"roamio/models"
)

// Day caps on itinerary length.
const (
	FreeTierDayCap = 5
	PremiumDayCap  = 14
)

const poolLimit = 50

// VenueSource is the catalog adapter surface the engine consumes.
type VenueSource interface {
	FindVenues(ctx context.Context, destination, category string, limit int) ([]models.Venue, error)
}

// WeatherSource supplies a coarse current condition for a city.
type WeatherSource interface {
	Current(ctx context.Context, city string) (string, error)
}

// PlanGenerator is the optional generative model. The engine functions
// fully when it is absent or failing.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, spec agi.PromptSpec) (string, error)
}

// Engine drives itinerary composition. All mutable state is scoped to a
// single call; an Engine value is safe for concurrent requests.
type Engine struct {
	Venues    VenueSource
	Weather   WeatherSource
	Generator PlanGenerator
	Distance  DistanceFunc
}

func NewEngine(venues VenueSource, weather WeatherSource) *Engine {
	return &Engine{Venues: venues, Weather: weather}
}

// ValidationError rejects a request before any scoring runs.
type ValidationError struct {
	Reason    string `json:"reason"`
	Field     string `json:"field,omitempty"`
	Cap       int    `json:"cap,omitempty"`
	Requested int    `json:"requested,omitempty"`
}

func (e *ValidationError) Error() string {
	if e.Cap > 0 {
		return fmt.Sprintf("%s (requested %d, cap %d)", e.Reason, e.Requested, e.Cap)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return e.Reason
}

// ComposeItinerary is the single entry point: it validates the request,
// builds the candidate pool, and produces a complete itinerary through
// either the generative path (validated and recovered) or the
// deterministic slot scheduler.
func (e *Engine) ComposeItinerary(ctx context.Context, req models.ItineraryRequest) (*models.Itinerary, error) {
	days, start, err := validateRequest(&req)
	if err != nil {
		return nil, err
	}

	pool := e.buildPool(ctx, req.Destination)
	condition := e.currentWeather(ctx, req)

	if req.UseGenerative && e.Generator != nil {
		spec := promptSpec(req, days, condition, pool)
		raw, genErr := e.Generator.GeneratePlan(ctx, spec)
		if genErr != nil {
			log.Printf("planner: generative model unavailable, using deterministic path: %v", genErr)
		} else {
			it := e.recoverGenerative(raw, pool, req, days, start, condition)
			return it, nil
		}
	}

	return e.composeDeterministic(pool, req, days, start, condition), nil
}

// ValidateGenerativeOutput runs the recovery pipeline over raw model
// output against a known candidate pool, falling back internally to the
// deterministic path. It never surfaces a recovery failure.
func (e *Engine) ValidateGenerativeOutput(ctx context.Context, raw string, pool CandidatePool, req models.ItineraryRequest) (*models.Itinerary, error) {
	days, start, err := validateRequest(&req)
	if err != nil {
		return nil, err
	}
	condition := e.currentWeather(ctx, req)
	return e.recoverGenerative(raw, pool, req, days, start, condition), nil
}

// validateRequest normalizes the request in place and returns the
// requested day count and parsed start date.
func validateRequest(req *models.ItineraryRequest) (int, time.Time, error) {
	if req.Destination == "" {
		return 0, time.Time{}, &ValidationError{Reason: "destination is required", Field: "destination"}
	}
	if req.Budget <= 0 {
		return 0, time.Time{}, &ValidationError{Reason: "budget must be positive", Field: "budget"}
	}
	if req.Travelers < 1 {
		req.Travelers = 1
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return 0, time.Time{}, &ValidationError{Reason: "invalid date, want YYYY-MM-DD", Field: "start_date"}
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return 0, time.Time{}, &ValidationError{Reason: "invalid date, want YYYY-MM-DD", Field: "end_date"}
	}
	if end.Before(start) {
		return 0, time.Time{}, &ValidationError{Reason: "end_date before start_date", Field: "end_date"}
	}

	days := int(end.Sub(start).Hours()/24) + 1

	cap := FreeTierDayCap
	if req.Premium {
		cap = PremiumDayCap
	}
	if days > cap {
		reason := "upgrade required for trips longer than the free tier cap"
		if req.Premium {
			reason = "day span exceeds the maximum supported trip length"
		}
		return 0, time.Time{}, &ValidationError{Reason: reason, Field: "end_date", Cap: cap, Requested: days}
	}

	return days, start, nil
}

// buildPool queries the catalog per category. A failing lookup degrades
// to an empty category, never an abort.
func (e *Engine) buildPool(ctx context.Context, destination string) CandidatePool {
	var pool CandidatePool
	if e.Venues == nil {
		return pool
	}
	fetch := func(category string) []models.Venue {
		venues, err := e.Venues.FindVenues(ctx, destination, category, poolLimit)
		if err != nil {
			log.Printf("planner: catalog lookup failed for %s/%s: %v", destination, category, err)
			return nil
		}
		return venues
	}
	pool.Attractions = fetch(models.VenueCategoryAttraction)
	pool.Restaurants = fetch(models.VenueCategoryRestaurant)
	pool.Lodging = fetch(models.VenueCategoryLodging)
	return pool
}

// currentWeather resolves the weather condition, degrading to neutral on
// any provider failure or when weather awareness is off.
func (e *Engine) currentWeather(ctx context.Context, req models.ItineraryRequest) string {
	if !req.WeatherAware || e.Weather == nil {
		return models.WeatherNeutral
	}
	condition, err := e.Weather.Current(ctx, req.Destination)
	if err != nil {
		log.Printf("planner: weather unavailable for %q, using neutral: %v", req.Destination, err)
		return models.WeatherNeutral
	}
	return condition
}

// composeDeterministic runs the slot scheduler across all days with one
// shared SelectionContext, then derives the summary strictly from the
// accepted activities.
func (e *Engine) composeDeterministic(pool CandidatePool, req models.ItineraryRequest, days int, start time.Time, condition string) *models.Itinerary {
	budget := AllocateBudget(req.Budget)
	sel := NewSelectionContext()

	nightly := budget.NightlyLodging(days)
	lodging, hasLodging := pickLodging(pool.Lodging, nightly)

	schedule := make([]models.DaySchedule, 0, days)
	for i := 0; i < days; i++ {
		day := e.fillDay(pool, sel, dayParams{
			date:        start.AddDate(0, 0, i),
			dayIdx:      i,
			days:        days,
			destination: req.Destination,
			weather:     condition,
			budget:      budget,
			travelers:   req.Travelers,
			budgetAware: req.BudgetAware,
		})
		if hasLodging {
			day.Activities = append(day.Activities, models.Activity{
				Time:        "22:00",
				Type:        models.VenueCategoryLodging,
				Title:       lodging.Name,
				Description: lodging.Description,
				Location:    venueLocation(lodging, req.Destination),
				Cost:        LodgingCost(lodging, nightly),
				Duration:    "overnight",
				VenueID:     lodging.VenueID,
			})
		}
		schedule = append(schedule, day)
	}

	return e.finalize(req, days, start, schedule, "deterministic")
}

// finalize assembles the itinerary envelope; totals come only from the
// final accepted activities, never from upstream numbers.
func (e *Engine) finalize(req models.ItineraryRequest, days int, start time.Time, schedule []models.DaySchedule, source string) *models.Itinerary {
	var totalCost float64
	var totalActivities int
	for _, day := range schedule {
		for _, act := range day.Activities {
			totalCost += act.Cost
			totalActivities++
		}
	}

	dailyAverage := 0.0
	if days > 0 {
		dailyAverage = math.Round(totalCost/float64(days)*100) / 100
	}

	return &models.Itinerary{
		Destination:     req.Destination,
		StartDate:       start.Format("2006-01-02"),
		EndDate:         start.AddDate(0, 0, days-1).Format("2006-01-02"),
		Budget:          req.Budget,
		Travelers:       req.Travelers,
		DayCount:        days,
		TotalCost:       totalCost,
		DailyAverage:    dailyAverage,
		TotalActivities: totalActivities,
		Source:          source,
		Status:          "Draft",
		Days:            schedule,
	}
}

// promptSpec builds the generative briefing from the candidate pool.
func promptSpec(req models.ItineraryRequest, days int, condition string, pool CandidatePool) agi.PromptSpec {
	candidates := agi.Summarize(pool.All())
	candidates = append(candidates, agi.Summarize(pool.Lodging)...)
	weather := ""
	if condition != models.WeatherNeutral {
		weather = condition
	}
	return agi.PromptSpec{
		Destination: req.Destination,
		Days:        days,
		Budget:      req.Budget,
		Travelers:   req.Travelers,
		Weather:     weather,
		Tags:        req.Tags,
		Candidates:  candidates,
	}
}
