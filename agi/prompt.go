package agi

import (
	"strings"
	"text/template"

	"roamio/models"
)

// CandidateSummary is the one-line briefing of a catalog venue handed to
// the model. Scoring and assembly never depend on this rendering.
type CandidateSummary struct {
	ID       string
	Name     string
	Category string
	Price    float64
	IsFree   bool
	Rating   float64
	Blurb    string
}

// PromptSpec holds everything the plan prompt needs. Rendering is a
// separate template step so business logic stays free of wording concerns.
type PromptSpec struct {
	Destination string
	Days        int
	Budget      float64
	Travelers   int
	Weather     string
	Tags        []string
	Candidates  []CandidateSummary
}

// The point guidance below deliberately stays a loose approximation of
// the numeric scoring model; it only biases the model's choices.
var planTemplate = template.Must(template.New("plan").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(`You are a travel planner. Create a {{.Days}}-day itinerary for {{.Destination}} for {{.Travelers}} traveler(s) with a total budget of {{printf "%.0f" .Budget}}.
{{- if .Weather}}
Current weather is {{.Weather}}; prefer indoor venues in rain and outdoor venues in clear weather.
{{- end}}
{{- if .Tags}}
Traveler interests: {{join .Tags ", "}}.
{{- end}}

Favour venues roughly like this: well rated places are worth about 20 points, cheap or free ones about 15, weather-suitable ones about 10. These points are a rough guide, not a formula.

Use ONLY venues from this list (id | name | category | price | rating):
{{- range .Candidates}}
- {{.ID}} | {{.Name}} | {{.Category}} | {{if .IsFree}}free{{else}}{{printf "%.0f" .Price}}{{end}} | {{printf "%.1f" .Rating}}{{if .Blurb}} | {{.Blurb}}{{end}}
{{- end}}

Each day needs breakfast, lunch and dinner at restaurants plus morning, afternoon and evening attraction visits. Never repeat a venue across the whole trip.

Return ONLY a JSON object, no markdown, in exactly this shape:
{"days":[{"day":1,"activities":[{"time":"08:00","type":"restaurant","title":"venue name","description":"...","location":"...","cost":0,"duration":"1h"}]}]}
`))

// Render produces the prompt text for the spec.
func (s PromptSpec) Render() (string, error) {
	var b strings.Builder
	if err := planTemplate.Execute(&b, s); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Summarize converts catalog venues into candidate summaries, trimming
// descriptions so the prompt stays small.
func Summarize(venues []models.Venue) []CandidateSummary {
	out := make([]CandidateSummary, 0, len(venues))
	for _, v := range venues {
		price := 0.0
		if v.Price != nil {
			price = *v.Price
		}
		blurb := v.Description
		if runes := []rune(blurb); len(runes) > 80 {
			blurb = string(runes[:80])
		}
		out = append(out, CandidateSummary{
			ID:       v.VenueID,
			Name:     v.Name,
			Category: v.Category,
			Price:    price,
			IsFree:   v.IsFree,
			Rating:   v.Rating,
			Blurb:    blurb,
		})
	}
	return out
}
