package itinerary

import (
	"testing"
	"time"

	"github.com/itinerolabs/itinero/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2026, 9, n, 0, 0, 0, 0, time.UTC)
}

func makeBundle(dayCount int) domain.Bundle {
	return domain.Bundle{
		DateRange: domain.DateRange{
			Start:    day(1),
			End:      day(dayCount),
			DayCount: dayCount,
		},
	}
}

func makePOIs(n int) []domain.Attraction {
	pois := make([]domain.Attraction, n)
	for i := range pois {
		pois[i] = domain.Attraction{Name: string(rune('A' + i)), Rating: 4.0}
	}
	return pois
}

func TestSynthesize_LengthMatchesDayCount(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 14} {
		days, err := Synthesize(makeBundle(n))
		require.NoError(t, err)
		assert.Len(t, days, n)
	}
}

func TestSynthesize_InvalidDayCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		b := makeBundle(3)
		b.DateRange.DayCount = n
		_, err := Synthesize(b)
		assert.ErrorIs(t, err, ErrInvalidDayCount)
	}
}

func TestSynthesize_DatesAndBoundaryFlags(t *testing.T) {
	days, err := Synthesize(makeBundle(3))
	require.NoError(t, err)

	assert.Equal(t, day(1), days[0].Date)
	assert.Equal(t, day(2), days[1].Date)
	assert.Equal(t, day(3), days[2].Date)

	assert.True(t, days[0].IsFirstDay)
	assert.False(t, days[0].IsLastDay)
	assert.False(t, days[1].IsFirstDay)
	assert.False(t, days[1].IsLastDay)
	assert.True(t, days[2].IsLastDay)
}

func TestSynthesize_WeatherGapLeavesDayWithoutForecast(t *testing.T) {
	b := makeBundle(3)
	b.ForecastSeries = []domain.DailyForecast{
		{Date: day(1), AvgTempC: 21, DominantCondition: "sunny"},
		{Date: day(3), AvgTempC: 17, DominantCondition: "rain", RainProbability: 0.8},
	}

	days, err := Synthesize(b)
	require.NoError(t, err)

	require.NotNil(t, days[0].Weather)
	assert.Equal(t, "sunny", days[0].Weather.DominantCondition)
	assert.Nil(t, days[1].Weather, "day 2 has no forecast entry and must not be interpolated")
	require.NotNil(t, days[2].Weather)
	assert.Equal(t, "rain", days[2].Weather.DominantCondition)
}

func TestSynthesize_POIsTwoPerDayNoWraparound(t *testing.T) {
	b := makeBundle(3)
	b.PointsOfInterest = makePOIs(4)
	b.DiningOptions = []domain.Restaurant{{Name: "Trattoria"}}

	days, err := Synthesize(b)
	require.NoError(t, err)

	require.NotNil(t, days[0].MorningPOI)
	require.NotNil(t, days[0].AfternoonPOI)
	assert.Equal(t, "A", days[0].MorningPOI.Name)
	assert.Equal(t, "B", days[0].AfternoonPOI.Name)
	assert.Equal(t, "C", days[1].MorningPOI.Name)
	assert.Equal(t, "D", days[1].AfternoonPOI.Name)

	assert.Nil(t, days[2].MorningPOI, "POIs are exhausted, no wraparound")
	assert.Nil(t, days[2].AfternoonPOI)
	assert.False(t, days[2].FreeDay, "a dining pick prevents the free-day marker")
}

func TestSynthesize_OddPOICountSplitsDay(t *testing.T) {
	b := makeBundle(2)
	b.PointsOfInterest = makePOIs(3)

	days, err := Synthesize(b)
	require.NoError(t, err)

	require.NotNil(t, days[1].MorningPOI)
	assert.Equal(t, "C", days[1].MorningPOI.Name)
	assert.Nil(t, days[1].AfternoonPOI)
}

func TestSynthesize_DiningCycles(t *testing.T) {
	b := makeBundle(5)
	b.DiningOptions = []domain.Restaurant{{Name: "Ropa Vieja"}, {Name: "Noodle Bar"}}

	days, err := Synthesize(b)
	require.NoError(t, err)

	for i, d := range days {
		require.NotNil(t, d.DiningPick, "dining never absent when options exist")
		want := b.DiningOptions[i%2].Name
		assert.Equal(t, want, d.DiningPick.Name)
	}
	// Cycle property: day i and day i+k share the same pick.
	assert.Equal(t, days[0].DiningPick.Name, days[2].DiningPick.Name)
	assert.Equal(t, days[1].DiningPick.Name, days[3].DiningPick.Name)
}

func TestSynthesize_HiddenGemsOnEvenDaysOnly(t *testing.T) {
	b := makeBundle(5)
	b.HiddenGems = []domain.HiddenGem{{Name: "Rooftop Cafe", Source: "reddit"}}

	days, err := Synthesize(b)
	require.NoError(t, err)

	assert.Nil(t, days[0].HiddenGem)
	require.NotNil(t, days[1].HiddenGem, "gem on day 2")
	assert.Nil(t, days[2].HiddenGem)
	require.NotNil(t, days[3].HiddenGem, "gem on day 4")
	assert.Nil(t, days[4].HiddenGem)
}

func TestSynthesize_HiddenGemsCycle(t *testing.T) {
	b := makeBundle(8)
	b.HiddenGems = []domain.HiddenGem{{Name: "First"}, {Name: "Second"}}

	days, err := Synthesize(b)
	require.NoError(t, err)

	require.NotNil(t, days[1].HiddenGem)
	assert.Equal(t, "First", days[1].HiddenGem.Name)
	require.NotNil(t, days[3].HiddenGem)
	assert.Equal(t, "Second", days[3].HiddenGem.Name)
	require.NotNil(t, days[5].HiddenGem)
	assert.Equal(t, "First", days[5].HiddenGem.Name, "gems cycle once exhausted")
}

func TestSynthesize_ArrivalAndDepartureNotes(t *testing.T) {
	b := makeBundle(3)
	b.RecommendedTransport = &domain.TransportOption{
		PriceUSD: 420, Carriers: []string{"Iberia"},
	}
	b.RecommendedLodging = &domain.LodgingOption{Name: "Hotel Mirador", TotalRate: 600}

	days, err := Synthesize(b)
	require.NoError(t, err)

	assert.Contains(t, days[0].ArrivalNote, "Iberia")
	assert.Contains(t, days[0].ArrivalNote, "Hotel Mirador")
	assert.Empty(t, days[1].ArrivalNote)
	assert.NotEmpty(t, days[2].DepartureNote, "departure note is unconditional on the last day")
	assert.Empty(t, days[0].DepartureNote)
}

func TestSynthesize_ZeroPricedTransportMeansNoneAvailable(t *testing.T) {
	b := makeBundle(2)
	b.RecommendedTransport = &domain.TransportOption{PriceUSD: 0, Carriers: []string{"Ghost Air"}}

	days, err := Synthesize(b)
	require.NoError(t, err)
	assert.Empty(t, days[0].ArrivalNote)
}

func TestSynthesize_FreeDayMarker(t *testing.T) {
	days, err := Synthesize(makeBundle(4))
	require.NoError(t, err)

	assert.False(t, days[0].FreeDay, "first day is never a free day")
	assert.True(t, days[1].FreeDay)
	assert.True(t, days[2].FreeDay)
	assert.False(t, days[3].FreeDay, "last day is never a free day")
}

func TestSynthesize_Deterministic(t *testing.T) {
	b := makeBundle(4)
	b.PointsOfInterest = makePOIs(5)
	b.DiningOptions = []domain.Restaurant{{Name: "A"}, {Name: "B"}, {Name: "C"}}
	b.HiddenGems = []domain.HiddenGem{{Name: "Gem"}}
	b.ForecastSeries = []domain.DailyForecast{{Date: day(2), AvgTempC: 20}}

	first, err := Synthesize(b)
	require.NoError(t, err)
	second, err := Synthesize(b)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSynthesize_DailySpendEstimate(t *testing.T) {
	b := makeBundle(4)
	b.Budget = &domain.BudgetSummary{
		Breakdown: domain.CostBreakdown{FoodUSD: 200, ActivitiesUSD: 200, TransportUSD: 500},
	}

	days, err := Synthesize(b)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, days[0].DailySpendUSD, 0.001,
		"transport spend is excluded from the per-day estimate")
	assert.InDelta(t, days[0].DailySpendUSD, days[3].DailySpendUSD, 0.001)
}

func TestSynthesize_EmptyBundleStillProducesDays(t *testing.T) {
	days, err := Synthesize(makeBundle(3))
	require.NoError(t, err)
	require.Len(t, days, 3)
	for _, d := range days {
		assert.Nil(t, d.Weather)
		assert.Nil(t, d.MorningPOI)
		assert.Nil(t, d.DiningPick)
		assert.Nil(t, d.HiddenGem)
	}
}
