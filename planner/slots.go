package planner

import (
	"fmt"
	"time"
)

type SlotType string

const (
	SlotBreakfast SlotType = "breakfast"
	SlotMorning   SlotType = "morning"
	SlotLunch     SlotType = "lunch"
	SlotAfternoon SlotType = "afternoon"
	SlotDinner    SlotType = "dinner"
	SlotEvening   SlotType = "evening"
)

// TimeSlot is one named window of a day. A day is an ordered sequence of
// these; the scheduler fills them first to last.
type TimeSlot struct {
	Index int
	Start string // HH:MM
	End   string // HH:MM
	Type  SlotType
}

// Three slightly different daily templates, rotated across the trip so
// a multi-day schedule does not read identically every day.
var dayTemplates = [][]TimeSlot{
	{
		{0, "08:00", "09:00", SlotBreakfast},
		{1, "09:30", "11:30", SlotMorning},
		{2, "12:00", "13:00", SlotLunch},
		{3, "14:00", "17:00", SlotAfternoon},
		{4, "18:00", "19:30", SlotDinner},
		{5, "20:00", "22:00", SlotEvening},
	},
	{
		{0, "07:30", "08:30", SlotBreakfast},
		{1, "09:00", "11:00", SlotMorning},
		{2, "11:30", "12:30", SlotLunch},
		{3, "13:30", "16:30", SlotAfternoon},
		{4, "18:30", "20:00", SlotDinner},
		{5, "20:30", "22:30", SlotEvening},
	},
	{
		{0, "08:30", "09:30", SlotBreakfast},
		{1, "10:00", "12:00", SlotMorning},
		{2, "12:30", "13:30", SlotLunch},
		{3, "15:00", "17:30", SlotAfternoon},
		{4, "19:00", "20:30", SlotDinner},
		{5, "21:00", "22:30", SlotEvening},
	},
}

// TemplateFor returns the slot sequence for a zero-based day index.
func TemplateFor(dayIdx int) []TimeSlot {
	if dayIdx < 0 {
		dayIdx = 0
	}
	return dayTemplates[dayIdx%len(dayTemplates)]
}

// IsMeal reports whether the slot wants a restaurant.
func (s TimeSlot) IsMeal() bool {
	return s.Type == SlotBreakfast || s.Type == SlotLunch || s.Type == SlotDinner
}

// Duration renders the slot length, e.g. "1h" or "2h30m".
func (s TimeSlot) Duration() string {
	start, err1 := time.Parse("15:04", s.Start)
	end, err2 := time.Parse("15:04", s.End)
	if err1 != nil || err2 != nil || !end.After(start) {
		return "1h"
	}
	d := end.Sub(start)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}
