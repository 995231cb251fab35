package planner

import (
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"roamio/catalog"
	"roamio/models"
)

// Wire shape expected from the generative model.
type genPlan struct {
	Days []genDay `json:"days"`
}

type genDay struct {
	Day        int           `json:"day"`
	Activities []genActivity `json:"activities"`
}

type genActivity struct {
	Time        string  `json:"time"`
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Cost        float64 `json:"cost"`
	Duration    string  `json:"duration"`
}

// parseStrategy is one stage of the recovery pipeline. Stages run in
// order; the first success wins. No stage throws to decide control flow.
type parseStrategy struct {
	name  string
	parse func(raw string) (*genPlan, error)
}

func parseStrategies() []parseStrategy {
	return []parseStrategy{
		{"strict", parseStrict},
		{"lenient", parseLenient},
		{"bracket", parseBracket},
	}
}

func parseStrict(raw string) (*genPlan, error) {
	var plan genPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

var trailingCommas = regexp.MustCompile(`,\s*([}\]])`)

// parseLenient strips markdown fences, invalid encoding artifacts and
// trailing commas before parsing.
func parseLenient(raw string) (*genPlan, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```JSON", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.ToValidUTF8(cleaned, "")
	cleaned = trailingCommas.ReplaceAllString(cleaned, "$1")
	cleaned = strings.TrimSpace(cleaned)
	return parseStrict(cleaned)
}

// parseBracket extracts the largest balanced brace block and parses only
// that, rescuing outputs wrapped in prose.
func parseBracket(raw string) (*genPlan, error) {
	block := largestBraceBlock(raw)
	if block == "" {
		return nil, fmt.Errorf("no brace-delimited block found")
	}
	return parseLenient(block)
}

// largestBraceBlock scans for the longest balanced {...} substring,
// honoring string literals and escapes.
func largestBraceBlock(s string) string {
	best := ""
	for start := 0; start < len(s); start++ {
		if s[start] != '{' {
			continue
		}
		depth := 0
		inString := false
		escaped := false
		for i := start; i < len(s); i++ {
			c := s[i]
			if escaped {
				escaped = false
				continue
			}
			if c == '\\' && inString {
				escaped = true
				continue
			}
			if c == '"' {
				inString = !inString
				continue
			}
			if inString {
				continue
			}
			switch c {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					if i+1-start > len(best) {
						best = s[start : i+1]
					}
					start = i // skip past this block
					i = len(s)
				}
			}
		}
	}
	return best
}

// Recognizable placeholder titles a model invents when it has nothing
// real to say.
var mockTitles = []string{
	"free activity", "unspecified", "placeholder", "to be decided",
	"tbd", "open slot", "hoat dong tu do",
}

func isMockEntry(title string) bool {
	needle := catalog.Normalize(title)
	if needle == "" {
		return true
	}
	for _, m := range mockTitles {
		if strings.Contains(needle, m) {
			return true
		}
	}
	return false
}

// recoverGenerative treats raw model output as untrusted: it tries each
// parse strategy in order, filters fabricated entries, cross-checks
// every survivor against the candidate pool, refills emptied days with
// the deterministic scheduler, and discards the whole result in favor of
// the deterministic path when nothing real survives.
func (e *Engine) recoverGenerative(raw string, pool CandidatePool, req models.ItineraryRequest, days int, start time.Time, condition string) *models.Itinerary {
	var plan *genPlan
	for _, strategy := range parseStrategies() {
		parsed, err := strategy.parse(raw)
		if err != nil {
			log.Printf("planner: %s parse failed: %v", strategy.name, err)
			continue
		}
		if len(parsed.Days) == 0 {
			log.Printf("planner: %s parse produced no days", strategy.name)
			continue
		}
		plan = parsed
		break
	}

	if plan == nil {
		log.Println("planner: all parse strategies exhausted; using deterministic path")
		return e.composeDeterministic(pool, req, days, start, condition)
	}

	// Clamp the model's invented day count to the requested range.
	dayCount := len(plan.Days)
	if dayCount > days {
		dayCount = days
	}

	// A plan where every entry is a placeholder or matches nothing in
	// the catalog is fabricated wholesale; discard it.
	if !hasRealEntry(plan, pool) {
		log.Println("planner: generative output contains only mock entries; using deterministic path")
		return e.composeDeterministic(pool, req, days, start, condition)
	}

	budget := AllocateBudget(req.Budget)
	sel := NewSelectionContext()

	schedule := make([]models.DaySchedule, 0, dayCount)
	for i := 0; i < dayCount; i++ {
		day := models.DaySchedule{
			Date:       start.AddDate(0, 0, i).Format("2006-01-02"),
			Activities: []models.Activity{},
		}

		for _, act := range plan.Days[i].Activities {
			if isMockEntry(act.Title) {
				continue
			}
			venue, ok := pool.MatchVenue(act.Title)
			if !ok {
				continue
			}
			if venue.Category != models.VenueCategoryLodging && sel.Used(venue.VenueID) {
				continue // uniqueness holds on the generative path too
			}
			sel.Add(venue)
			day.Activities = append(day.Activities, acceptedActivity(act, venue, budget, dayCount, req))
		}

		// Dropping fabrications may have emptied the day; refill it.
		if len(day.Activities) == 0 {
			day = e.fillDay(pool, sel, dayParams{
				date:        start.AddDate(0, 0, i),
				dayIdx:      i,
				days:        dayCount,
				destination: req.Destination,
				weather:     condition,
				budget:      budget,
				travelers:   req.Travelers,
				budgetAware: req.BudgetAware,
			})
		}

		schedule = append(schedule, day)
	}

	return e.finalize(req, dayCount, start, schedule, "generative")
}

func hasRealEntry(plan *genPlan, pool CandidatePool) bool {
	for _, day := range plan.Days {
		for _, act := range day.Activities {
			if isMockEntry(act.Title) {
				continue
			}
			if _, ok := pool.MatchVenue(act.Title); ok {
				return true
			}
		}
	}
	return false
}

// acceptedActivity rebuilds a surviving model entry around the matched
// catalog venue; cost always comes from the allocator, never from the
// model's own number.
func acceptedActivity(act genActivity, venue models.Venue, budget BudgetPlan, days int, req models.ItineraryRequest) models.Activity {
	var cost float64
	switch venue.Category {
	case models.VenueCategoryRestaurant:
		cost = ActivityCost(venue, budget.MealAllowance(days, mealSlotsPerDay, req.Travelers), req.Travelers)
	case models.VenueCategoryLodging:
		cost = LodgingCost(venue, budget.NightlyLodging(days))
	default:
		cost = ActivityCost(venue, budget.AttractionAllowance(days, attractionSlotsPerDay, req.Travelers), req.Travelers)
	}

	when := act.Time
	if when == "" {
		when = "09:00"
	}
	duration := act.Duration
	if duration == "" {
		duration = "2h"
	}
	description := act.Description
	if description == "" {
		description = venue.Description
	}

	return models.Activity{
		Time:        when,
		Type:        venue.Category,
		Title:       venue.Name,
		Description: description,
		Location:    venueLocation(venue, req.Destination),
		Cost:        cost,
		Duration:    duration,
		VenueID:     venue.VenueID,
	}
}
