package budget

import (
	"fmt"
	"time"

	"github.com/avdberg/Budget-Planner-Backend/internal/model"
)

// DefaultRollingWindowDays is the trailing window applied to the trend
// series when the caller does not pick one.
const DefaultRollingWindowDays = 30

// BuildTrend produces the rolling daily trend series: transactions are
// summed per (day, type), each type's series is reindexed to a continuous
// daily calendar spanning its observed min..max day with zero-amount gap
// days, and a trailing rolling sum of windowDays is applied per type
// independently. Without the reindex a rolling sum would silently skip
// missing days instead of treating them as zero-spend days.
//
// Output is ordered by type (income first) then day. The first windowDays-1
// rows of each type's series carry a partial sum and are marked WarmUp so
// callers can hide them.
func BuildTrend(transactions []model.Transaction, windowDays int) ([]model.TrendPoint, error) {
	if windowDays < 1 {
		return nil, fmt.Errorf("rolling window must be at least one day, got %d", windowDays)
	}

	type series struct {
		daily    map[time.Time]float64
		min, max time.Time
	}
	byType := make(map[model.TransactionType]*series)

	for _, t := range transactions {
		day, err := t.Day()
		if err != nil {
			return nil, fmt.Errorf("build trend: %w", err)
		}
		s, ok := byType[t.Type]
		if !ok {
			s = &series{daily: make(map[time.Time]float64), min: day, max: day}
			byType[t.Type] = s
		}
		s.daily[day] += t.Amount
		if day.Before(s.min) {
			s.min = day
		}
		if day.After(s.max) {
			s.max = day
		}
	}

	var points []model.TrendPoint
	for _, transactionType := range model.TransactionTypes {
		s, ok := byType[transactionType]
		if !ok {
			continue
		}

		// Continuous daily calendar over the observed span; gaps become
		// zero-amount days before the rolling sum is applied.
		var amounts []float64
		var days []time.Time
		for day := s.min; !day.After(s.max); day = day.AddDate(0, 0, 1) {
			days = append(days, day)
			amounts = append(amounts, s.daily[day])
		}

		var rolling float64
		for i := range amounts {
			rolling += amounts[i]
			if i >= windowDays {
				rolling -= amounts[i-windowDays]
			}
			points = append(points, model.TrendPoint{
				Day:    days[i],
				Type:   transactionType,
				Amount: rolling,
				WarmUp: i < windowDays-1,
			})
		}
	}
	return points, nil
}
