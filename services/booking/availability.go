package booking

import (
	"time"

	"storabook/config"
	"storabook/models"
)

// ComputeSlots generates the bookable slots between rangeStart and rangeEnd
// given the working-hours policy and the events already on the calendar.
// Pure and deterministic: the same inputs always yield the same slots, in
// chronological order. An inverted range yields no slots rather than an
// error.
func ComputeSlots(rangeStart, rangeEnd time.Time, policy config.WorkingHoursPolicy, events []models.CalendarEvent, now time.Time) []models.TimeSlot {
	slots := []models.TimeSlot{}
	if !rangeStart.Before(rangeEnd) {
		return slots
	}

	loc := rangeStart.Location()
	duration := time.Duration(policy.BookingDuration) * time.Minute
	interval := time.Duration(policy.SlotInterval) * time.Minute
	buffer := time.Duration(policy.Buffer) * time.Minute

	day := time.Date(rangeStart.Year(), rangeStart.Month(), rangeStart.Day(), 0, 0, 0, 0, loc)
	for ; day.Before(rangeEnd); day = day.AddDate(0, 0, 1) {
		if policy.WeekendDays[day.Weekday()] {
			continue
		}

		windowStart := time.Date(day.Year(), day.Month(), day.Day(), policy.StartHour, 0, 0, 0, loc)
		windowEnd := time.Date(day.Year(), day.Month(), day.Day(), policy.EndHour, 0, 0, 0, loc)
		if windowEnd.After(rangeEnd) {
			windowEnd = rangeEnd
		}

		// Today never offers slots already in the past: clamp the window
		// start forward to the next interval boundary at or after now.
		if sameDay(day, now) && now.After(windowStart) {
			windowStart = nextIntervalBoundary(now, policy.SlotInterval)
		}
		// Honor a range start inside the working window, e.g. the minimum
		// notice cutoff, keeping candidates on the interval grid.
		if rangeStart.After(windowStart) {
			windowStart = nextIntervalBoundary(rangeStart, policy.SlotInterval)
		}

		for t := windowStart; !t.Add(duration).After(windowEnd); t = t.Add(interval) {
			candidateEnd := t.Add(duration)
			if slotFree(t, candidateEnd, events, buffer) {
				slots = append(slots, models.TimeSlot{
					Start:    t,
					End:      candidateEnd,
					Duration: policy.BookingDuration,
				})
			}
		}
	}
	return slots
}

// slotFree reports whether the candidate interval avoids every existing
// event once the event is expanded by the buffer on both sides.
func slotFree(start, end time.Time, events []models.CalendarEvent, buffer time.Duration) bool {
	for _, ev := range events {
		bufferedStart := ev.Start.Add(-buffer)
		bufferedEnd := ev.End.Add(buffer)
		if start.Before(bufferedEnd) && end.After(bufferedStart) {
			return false
		}
	}
	return true
}

// nextIntervalBoundary rounds t up to the next multiple of interval minutes
// at or after t, relative to t's midnight.
func nextIntervalBoundary(t time.Time, intervalMinutes int) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	elapsed := int(t.Sub(midnight).Minutes())
	rounded := ((elapsed + intervalMinutes - 1) / intervalMinutes) * intervalMinutes
	boundary := midnight.Add(time.Duration(rounded) * time.Minute)
	if boundary.Before(t) {
		boundary = boundary.Add(time.Duration(intervalMinutes) * time.Minute)
	}
	return boundary
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// fallbackHours is the degraded hour-aligned slot list served when the
// calendar dependency is unreachable. Noon is left out for the lunch break.
var fallbackHours = []int{9, 10, 11, 13, 14, 15, 16}

// FallbackSlots returns the fixed hourly slot list for a day. Used only
// when existing events cannot be fetched; the computed schedule is the
// canonical behavior.
func FallbackSlots(day time.Time, policy config.WorkingHoursPolicy) []models.TimeSlot {
	slots := make([]models.TimeSlot, 0, len(fallbackHours))
	for _, h := range fallbackHours {
		start := time.Date(day.Year(), day.Month(), day.Day(), h, 0, 0, 0, day.Location())
		slots = append(slots, models.TimeSlot{
			Start:    start,
			End:      start.Add(time.Duration(policy.BookingDuration) * time.Minute),
			Duration: policy.BookingDuration,
		})
	}
	return slots
}
