// Package itinerary turns a bundle of independently-sourced result sets into
// an ordered day-by-day plan. Synthesis is a pure function: identical bundles
// always produce identical output, and every read recomputes from scratch —
// day plans carry no identity across calls beyond their day number.
package itinerary

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/itinerolabs/itinero/internal/domain"
)

// ErrInvalidDayCount indicates the bundle's date range does not describe at
// least one day. This is a caller contract violation, not missing data.
var ErrInvalidDayCount = errors.New("date range day count must be positive")

// DayPlan is one derived day of the itinerary. Pointer fields are nil when
// the underlying result set had nothing left for this slot.
type DayPlan struct {
	DayNumber  int
	Date       time.Time
	IsFirstDay bool
	IsLastDay  bool

	Weather      *domain.DailyForecast
	MorningPOI   *domain.Attraction
	AfternoonPOI *domain.Attraction
	DiningPick   *domain.Restaurant
	HiddenGem    *domain.HiddenGem

	ArrivalNote   string
	DepartureNote string
	FreeDay       bool

	DailySpendUSD float64
}

// Synthesize derives the full day-by-day plan from a bundle.
//
// Per day i (0-based):
//   - weather is the forecast entry matching the date exactly, no interpolation
//   - attractions are consumed two per day in list order, no reuse, no
//     wraparound; exhausted lists leave later slots empty
//   - dining picks cycle through the list (i mod len)
//   - hidden gems land on odd indices only (2nd, 4th, ... day), cycling
//     floor(i/2) mod len
//
// Missing bundle fields are normal and never an error; the only validated
// input is the day count.
func Synthesize(b domain.Bundle) ([]DayPlan, error) {
	dayCount := b.DateRange.DayCount
	if dayCount <= 0 {
		return nil, fmt.Errorf("synthesizing %d days: %w", dayCount, ErrInvalidDayCount)
	}

	dailySpend := dailySpendEstimate(b.Budget, dayCount)

	days := make([]DayPlan, 0, dayCount)
	for i := 0; i < dayCount; i++ {
		day := DayPlan{
			DayNumber:     i + 1,
			Date:          b.DateRange.Start.AddDate(0, 0, i),
			IsFirstDay:    i == 0,
			IsLastDay:     i == dayCount-1,
			DailySpendUSD: dailySpend,
		}

		day.Weather = forecastFor(b.ForecastSeries, day.Date)

		if idx := 2 * i; idx < len(b.PointsOfInterest) {
			day.MorningPOI = &b.PointsOfInterest[idx]
		}
		if idx := 2*i + 1; idx < len(b.PointsOfInterest) {
			day.AfternoonPOI = &b.PointsOfInterest[idx]
		}

		if len(b.DiningOptions) > 0 {
			day.DiningPick = &b.DiningOptions[i%len(b.DiningOptions)]
		}

		if i%2 == 1 && len(b.HiddenGems) > 0 {
			day.HiddenGem = &b.HiddenGems[(i/2)%len(b.HiddenGems)]
		}

		if day.IsFirstDay {
			day.ArrivalNote = arrivalNote(b)
		}
		if day.IsLastDay {
			day.DepartureNote = "Departure day — check out and head home"
		}

		day.FreeDay = !day.IsFirstDay && !day.IsLastDay &&
			day.MorningPOI == nil && day.AfternoonPOI == nil && day.DiningPick == nil

		days = append(days, day)
	}

	return days, nil
}

// forecastFor returns the forecast entry whose date matches target (same
// calendar day), or nil when the series has a gap there.
func forecastFor(series []domain.DailyForecast, target time.Time) *domain.DailyForecast {
	ty, tm, td := target.Date()
	for i := range series {
		y, m, d := series[i].Date.Date()
		if y == ty && m == tm && d == td {
			return &series[i]
		}
	}
	return nil
}

// arrivalNote composes the first day's implicit arrival note from whatever
// transport and lodging recommendations exist. Empty when neither does.
func arrivalNote(b domain.Bundle) string {
	var parts []string
	if b.HasTransport() {
		t := b.RecommendedTransport
		if len(t.Carriers) > 0 {
			parts = append(parts, "Arrive via "+strings.Join(t.Carriers, "/"))
		} else {
			parts = append(parts, "Arrive at your destination")
		}
	}
	if b.HasLodging() {
		parts = append(parts, "check in at "+b.RecommendedLodging.Name)
	}
	return strings.Join(parts, ", ")
}

// dailySpendEstimate spreads the non-transport, non-lodging budget across
// the trip. Zero when no budget summary was produced.
func dailySpendEstimate(budget *domain.BudgetSummary, dayCount int) float64 {
	if budget == nil {
		return 0
	}
	nonFixed := budget.Breakdown.FoodUSD + budget.Breakdown.ActivitiesUSD
	if nonFixed <= 0 {
		return 0
	}
	return nonFixed / float64(dayCount)
}
