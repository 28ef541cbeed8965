package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storabook/utils"

	"go.uber.org/zap"
)

const (
	slotCachePrefix = "slots:"
	slotCacheTTL    = 60 * time.Second
)

// GetAvailableSlots computes the bookable slots for a date (YYYY-MM-DD).
// Existing events come from the calendar port; when the calendar is
// unreachable the fixed hourly fallback is served and flagged as degraded.
func (s *DefaultBookingService) GetAvailableSlots(ctx context.Context, date string) (*AvailableSlotsResult, error) {
	logger := utils.GetLogger()

	day, err := time.ParseInLocation("2006-01-02", date, s.location())
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("invalid date: %v", err))
	}

	now := s.now().In(s.location())

	// Dates beyond the advance-booking window have no bookable slots.
	maxDay := now.AddDate(0, 0, s.Policy.AdvanceBookingDays)
	if day.After(maxDay) {
		return &AvailableSlotsResult{Slots: nil}, nil
	}

	if cached := s.cachedSlots(ctx, date); cached != nil {
		return cached, nil
	}

	rangeStart := day
	rangeEnd := day.AddDate(0, 0, 1)

	// Minimum-notice clamp: nothing inside the notice window is bookable.
	notice := now.Add(time.Duration(s.Policy.MinNoticeHours) * time.Hour)
	if rangeStart.Before(notice) {
		rangeStart = notice
	}
	if !rangeStart.Before(rangeEnd) {
		return &AvailableSlotsResult{Slots: nil}, nil
	}

	// Pad the listing range by the buffer so events straddling the day's
	// edges still block slots.
	buffer := time.Duration(s.Policy.Buffer) * time.Minute
	events, err := s.Calendar.ListEvents(ctx, day.Add(-buffer), rangeEnd.Add(buffer))
	if err != nil {
		logger.Warn("availability: calendar unreachable, serving fixed fallback slots",
			zap.String("date", date), zap.Error(err))
		return &AvailableSlotsResult{
			Slots:    FallbackSlots(day, s.Policy),
			Degraded: true,
		}, nil
	}

	result := &AvailableSlotsResult{
		Slots: ComputeSlots(rangeStart, rangeEnd, s.Policy, events, now),
	}
	s.storeSlots(ctx, date, result)
	return result, nil
}

func (s *DefaultBookingService) cachedSlots(ctx context.Context, date string) *AvailableSlotsResult {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, slotCachePrefix+date).Result()
	if err != nil {
		return nil
	}
	var result AvailableSlotsResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil
	}
	return &result
}

func (s *DefaultBookingService) storeSlots(ctx context.Context, date string, result *AvailableSlotsResult) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, slotCachePrefix+date, data, slotCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("availability: failed to cache slots",
			zap.String("date", date), zap.Error(err))
	}
}
