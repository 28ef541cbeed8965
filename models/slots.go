package models

import "time"

// TimeSlot is a candidate bookable window produced by the availability
// calculator. End is always Start plus Duration minutes.
type TimeSlot struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration int       `json:"duration"` // minutes
}

// CalendarEvent is a read-only view of an event owned by the external
// calendar system.
type CalendarEvent struct {
	ID      string    `json:"id"`
	Summary string    `json:"summary,omitempty"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}
