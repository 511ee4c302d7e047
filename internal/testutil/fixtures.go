package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/itinerolabs/itinero/internal/domain"
)

// Bundle options
type BundleOption func(*domain.Bundle)

func WithForecasts(forecasts ...domain.DailyForecast) BundleOption {
	return func(b *domain.Bundle) {
		b.ForecastSeries = forecasts
	}
}

func WithTransport(priceUSD float64, carriers ...string) BundleOption {
	return func(b *domain.Bundle) {
		b.RecommendedTransport = &domain.TransportOption{
			PriceUSD: priceUSD,
			Carriers: carriers,
		}
	}
}

func WithLodging(name string, totalRate float64) BundleOption {
	return func(b *domain.Bundle) {
		b.RecommendedLodging = &domain.LodgingOption{
			Name:      name,
			TotalRate: totalRate,
			Rating:    4.2,
		}
	}
}

func WithAttractions(names ...string) BundleOption {
	return func(b *domain.Bundle) {
		b.PointsOfInterest = nil
		for _, n := range names {
			b.PointsOfInterest = append(b.PointsOfInterest, domain.Attraction{Name: n, Rating: 4.5})
		}
	}
}

func WithRestaurants(names ...string) BundleOption {
	return func(b *domain.Bundle) {
		b.DiningOptions = nil
		for _, n := range names {
			b.DiningOptions = append(b.DiningOptions, domain.Restaurant{Name: n, Rating: 4.0})
		}
	}
}

func WithHiddenGems(names ...string) BundleOption {
	return func(b *domain.Bundle) {
		b.HiddenGems = nil
		for _, n := range names {
			b.HiddenGems = append(b.HiddenGems, domain.HiddenGem{Name: n, Source: "reddit", MentionCount: 3})
		}
	}
}

func WithBudget(totalBudget, estimated float64) BundleOption {
	return func(b *domain.Bundle) {
		status := domain.BudgetUnder
		if estimated > totalBudget {
			status = domain.BudgetOver
		}
		b.Budget = &domain.BudgetSummary{
			Breakdown: domain.CostBreakdown{
				TransportUSD:  estimated * 0.4,
				LodgingUSD:    estimated * 0.3,
				FoodUSD:       estimated * 0.2,
				ActivitiesUSD: estimated * 0.1,
			},
			EstimatedTotalUSD: estimated,
			TotalBudgetUSD:    totalBudget,
			RemainingUSD:      totalBudget - estimated,
			Status:            status,
		}
	}
}

// NewTestBundle builds a bundle covering dayCount days starting at a fixed
// date, so synthesis output is stable across test runs.
func NewTestBundle(dayCount int, opts ...BundleOption) domain.Bundle {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	b := domain.Bundle{
		DateRange: domain.DateRange{
			Start:    start,
			End:      start.AddDate(0, 0, dayCount-1),
			DayCount: dayCount,
		},
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Session options
type SessionOption func(*domain.Session)

func WithRevision(rev int) SessionOption {
	return func(s *domain.Session) {
		s.Revision = rev
	}
}

func WithSummary(summary string) SessionOption {
	return func(s *domain.Session) {
		s.NarrativeSummary = summary
	}
}

func WithChatHistory(msgs ...domain.ChatMessage) SessionOption {
	return func(s *domain.Session) {
		s.ChatHistory = msgs
	}
}

func NewTestSession(destination string, bundle domain.Bundle, opts ...SessionOption) *domain.Session {
	now := time.Now().UTC().Truncate(time.Second)
	s := &domain.Session{
		ID:          uuid.New().String(),
		Origin:      "London",
		Destination: destination,
		Bundle:      bundle,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewTestChatMessage builds a chat message with a unique ID.
func NewTestChatMessage(role domain.ChatRole, text string) domain.ChatMessage {
	return domain.ChatMessage{
		ID:        uuid.New().String(),
		Role:      role,
		Text:      text,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}
