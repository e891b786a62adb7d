package discovery

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"goodrunss/models"
)

const (
	// bookingHistoryWindow is how many recent bookings the pattern miner reads.
	bookingHistoryWindow = 20

	// Defaults when the caller has no booking history.
	defaultPreferredHour = 18
	defaultPreferredDay  = time.Saturday

	maxRecommendations = 5

	usualTimePriority = 100
	fallbackPriority  = 80
	fallbackHour      = "20:00"
)

// SmartSlotRecommendations mines the caller's last bookings for their habitual
// start hour and weekday, then projects booking slots over the next 7 days.
// A fixed "Available tonight" fallback for the current date is always
// appended, so the result is never empty.
func (s *DefaultDiscoveryService) SmartSlotRecommendations(ctx context.Context, callerID string) (*models.SlotRecommendationSet, error) {
	bookings, err := s.BookingRepo.GetRecentByPlayer(callerID, bookingHistoryWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve booking history: %w", err)
	}

	now := time.Now()
	pattern := minePattern(bookings)
	recs := buildRecommendations(pattern, now)

	return &models.SlotRecommendationSet{
		Recommendations: recs,
		UserPattern: models.BookingPattern{
			PreferredHour: strconv.Itoa(pattern.hour),
			PreferredDay:  pattern.day.String()[:3],
		},
	}, nil
}

type bookingPattern struct {
	hour int
	day  time.Weekday
}

// minePattern finds the modal start hour and weekday by simple frequency
// count. Ties break toward the earlier hour and the earlier weekday (Sunday
// first), so the result is deterministic regardless of input order.
func minePattern(bookings []models.Booking) bookingPattern {
	pattern := bookingPattern{hour: defaultPreferredHour, day: defaultPreferredDay}
	if len(bookings) == 0 {
		return pattern
	}

	var hourCounts [24]int
	var dayCounts [7]int
	for _, b := range bookings {
		hourCounts[b.StartTime.Hour()]++
		dayCounts[b.StartTime.Weekday()]++
	}

	best := 0
	for h, n := range hourCounts {
		if n > best {
			best = n
			pattern.hour = h
		}
	}
	best = 0
	for d, n := range dayCounts {
		if n > best {
			best = n
			pattern.day = time.Weekday(d)
		}
	}
	return pattern
}

// buildRecommendations projects 7 calendar days forward; each day landing on
// the preferred weekday becomes a "Your usual time" entry. The fallback is
// appended after, and the list is truncated to 5 in construction order
// without re-sorting by priority.
func buildRecommendations(pattern bookingPattern, now time.Time) []models.SlotRecommendation {
	var recs []models.SlotRecommendation

	for i := 1; i <= 7; i++ {
		day := now.AddDate(0, 0, i)
		if day.Weekday() != pattern.day {
			continue
		}
		recs = append(recs, models.SlotRecommendation{
			Date:     day.Format("2006-01-02"),
			Time:     fmt.Sprintf("%02d:00", pattern.hour),
			Reason:   "Your usual time",
			Priority: usualTimePriority,
		})
	}

	recs = append(recs, models.SlotRecommendation{
		Date:     now.Format("2006-01-02"),
		Time:     fallbackHour,
		Reason:   "Available tonight",
		Priority: fallbackPriority,
	})

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
