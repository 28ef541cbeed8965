package booking

import (
	"testing"
	"time"

	"storabook/config"
	"storabook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy() config.WorkingHoursPolicy {
	return config.WorkingHoursPolicy{
		StartHour:          9,
		EndHour:            17,
		SlotInterval:       30,
		BookingDuration:    60,
		Buffer:             15,
		MinNoticeHours:     24,
		AdvanceBookingDays: 14,
		WeekendDays: map[time.Weekday]bool{
			time.Saturday: true,
			time.Sunday:   true,
		},
	}
}

// 2026-09-07 is a Monday.
func monday(hour, min int) time.Time {
	return time.Date(2026, 9, 7, hour, min, 0, 0, time.UTC)
}

func TestComputeSlotsEmptyCalendar(t *testing.T) {
	rangeStart := monday(0, 0)
	rangeEnd := rangeStart.AddDate(0, 0, 1)
	now := rangeStart.AddDate(0, 0, -3)

	slots := ComputeSlots(rangeStart, rangeEnd, testPolicy(), nil, now)

	// 09:00 through 16:00 on a 30-minute grid, last start leaving room for
	// the full hour.
	require.Len(t, slots, 15)
	assert.Equal(t, monday(9, 0), slots[0].Start)
	assert.Equal(t, monday(10, 0), slots[0].End)
	assert.Equal(t, monday(16, 0), slots[len(slots)-1].Start)
	assert.Equal(t, monday(17, 0), slots[len(slots)-1].End)
	for _, s := range slots {
		assert.Equal(t, 60, s.Duration)
	}
}

func TestComputeSlotsBufferedEventBlocksNeighbors(t *testing.T) {
	rangeStart := monday(0, 0)
	rangeEnd := rangeStart.AddDate(0, 0, 1)
	now := rangeStart.AddDate(0, 0, -3)
	events := []models.CalendarEvent{
		{ID: "ev1", Start: monday(10, 0), End: monday(11, 0)},
	}

	slots := ComputeSlots(rangeStart, rangeEnd, testPolicy(), events, now)

	// The 15-minute buffer blocks everything touching 09:45-11:15, so the
	// 09:00 candidate (ending 10:00) is out and the first free start is 11:30.
	require.NotEmpty(t, slots)
	assert.Equal(t, monday(11, 30), slots[0].Start)
	assert.Equal(t, monday(16, 0), slots[len(slots)-1].Start)
	assert.Len(t, slots, 10)
	for _, s := range slots {
		assert.False(t, s.Start.Before(monday(11, 15)), "slot %v overlaps buffered event", s.Start)
	}
}

func TestComputeSlotsZeroBufferAllowsBackToBack(t *testing.T) {
	policy := testPolicy()
	policy.Buffer = 0
	rangeStart := monday(0, 0)
	rangeEnd := rangeStart.AddDate(0, 0, 1)
	now := rangeStart.AddDate(0, 0, -3)
	events := []models.CalendarEvent{
		{ID: "ev1", Start: monday(10, 0), End: monday(11, 0)},
	}

	slots := ComputeSlots(rangeStart, rangeEnd, policy, events, now)

	require.NotEmpty(t, slots)
	assert.Equal(t, monday(9, 0), slots[0].Start, "abutting slot should be free without buffer")
	assert.Equal(t, monday(11, 0), slots[1].Start)
}

func TestComputeSlotsSkipsWeekends(t *testing.T) {
	// 2026-09-05 is a Saturday.
	saturday := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	now := saturday.AddDate(0, 0, -3)

	slots := ComputeSlots(saturday, saturday.AddDate(0, 0, 1), testPolicy(), nil, now)
	assert.Empty(t, slots)

	// A range spanning the weekend into Monday yields only Monday slots.
	slots = ComputeSlots(saturday, saturday.AddDate(0, 0, 3), testPolicy(), nil, now)
	for _, s := range slots {
		assert.Equal(t, time.Monday, s.Start.Weekday())
	}
}

func TestComputeSlotsTodayClampedToNextBoundary(t *testing.T) {
	rangeStart := monday(0, 0)
	rangeEnd := rangeStart.AddDate(0, 0, 1)
	now := monday(10, 12)

	slots := ComputeSlots(rangeStart, rangeEnd, testPolicy(), nil, now)

	require.NotEmpty(t, slots)
	assert.Equal(t, monday(10, 30), slots[0].Start, "past slots must not be offered")
}

func TestComputeSlotsMidDayRangeStart(t *testing.T) {
	rangeStart := monday(10, 17)
	rangeEnd := monday(0, 0).AddDate(0, 0, 1)
	now := monday(0, 0).AddDate(0, 0, -1)

	slots := ComputeSlots(rangeStart, rangeEnd, testPolicy(), nil, now)

	require.NotEmpty(t, slots)
	assert.Equal(t, monday(10, 30), slots[0].Start, "slots stay on the interval grid past the cutoff")
}

func TestComputeSlotsInvertedRange(t *testing.T) {
	rangeStart := monday(0, 0)
	slots := ComputeSlots(rangeStart, rangeStart.AddDate(0, 0, -1), testPolicy(), nil, rangeStart)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestComputeSlotsDeterministic(t *testing.T) {
	rangeStart := monday(0, 0)
	rangeEnd := rangeStart.AddDate(0, 0, 1)
	now := rangeStart.AddDate(0, 0, -3)
	events := []models.CalendarEvent{
		{ID: "a", Start: monday(9, 30), End: monday(10, 30)},
		{ID: "b", Start: monday(14, 0), End: monday(15, 0)},
	}

	first := ComputeSlots(rangeStart, rangeEnd, testPolicy(), events, now)
	second := ComputeSlots(rangeStart, rangeEnd, testPolicy(), events, now)
	assert.Equal(t, first, second)

	for i := 1; i < len(first); i++ {
		assert.True(t, first[i-1].Start.Before(first[i].Start), "slots must be chronological")
	}
}

func TestNextIntervalBoundary(t *testing.T) {
	assert.Equal(t, monday(10, 30), nextIntervalBoundary(monday(10, 12), 30))
	assert.Equal(t, monday(10, 0), nextIntervalBoundary(monday(10, 0), 30), "exact boundary stays put")
	assert.Equal(t, monday(11, 0), nextIntervalBoundary(monday(10, 31), 30))
}

func TestFallbackSlots(t *testing.T) {
	day := monday(0, 0)
	slots := FallbackSlots(day, testPolicy())

	require.Len(t, slots, 7)
	assert.Equal(t, monday(9, 0), slots[0].Start)
	// Noon is skipped for the lunch break.
	for _, s := range slots {
		assert.NotEqual(t, 12, s.Start.Hour())
		assert.Equal(t, s.Start.Add(time.Hour), s.End)
	}
	assert.Equal(t, monday(16, 0), slots[len(slots)-1].Start)
}
