package planner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itinerolabs/itinero/internal/domain"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Endpoint = endpoint
	cfg.PlanTimeoutMs = 2000
	cfg.ChatTimeoutMs = 2000
	cfg.MaxRetries = 0
	return cfg
}

func samplePlanDTO() travelPlanDTO {
	return travelPlanDTO{
		SessionID:   "sess-123",
		Destination: "Lisbon",
		Dates:       dateRangeDTO{StartDate: "2026-09-01", EndDate: "2026-09-04", NumDays: 4},
		Weather: &weatherDTO{
			DailyForecasts: []dailyForecastDTO{
				{Date: "2026-09-01", AvgTempC: 24.5, DominantCondition: "sunny", MaxRainProbability: 0.1},
			},
		},
		Transport: &transportDTO{
			Recommended: &flightOptionDTO{
				PriceUSD: 420, Airlines: []string{"TAP"}, TotalDurationMinutes: 150, Stops: 0,
				Legs: []flightLegDTO{{Airline: "TAP", FlightNumber: "TP1", DepartureAirport: "LHR", ArrivalAirport: "LIS", DurationMinutes: 150}},
			},
		},
		Hotel: &hotelDTO{
			Recommended: &hotelOptionDTO{Name: "Hotel Alfama", TotalRateUSD: 480, RatePerNightUSD: 160, Rating: 4.4},
		},
		Discovery: &discoveryDTO{
			Attractions: []attractionDTO{{Name: "Belem Tower", Rating: 4.6, Type: "landmark", IsOutdoor: true}},
			Restaurants: []restaurantDTO{{Name: "Taberna", Rating: 4.3, Type: "portuguese", PriceLevel: "$$"}},
			HiddenGems:  []hiddenGemDTO{{Name: "LX Factory", Source: "reddit", Mentions: 12}},
		},
		Budget: &budgetDTO{
			Breakdown:         costBreakdownDTO{TransportUSD: 420, HotelUSD: 480, FoodUSD: 200, ActivitiesUSD: 100},
			EstimatedTotalUSD: 1200, TotalBudgetUSD: 1500, RemainingBudgetUSD: 300,
			Status: "under",
		},
		LLMSummary: "Four sunny days in Lisbon.",
	}
}

func TestClient_FetchPlan_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/plan", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req planRequestDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Lisbon", req.Destination)
		assert.Equal(t, "2026-09-01", req.StartDate)
		assert.Equal(t, "standard", req.TravelStyle)
		assert.Equal(t, "auto", req.Origin)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(samplePlanDTO())
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	result, err := client.FetchPlan(context.Background(), domain.PlanRequest{
		Destination: "Lisbon",
		StartDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		BudgetUSD:   1500,
	})

	require.NoError(t, err)
	assert.Equal(t, "sess-123", result.SessionID)
	assert.Equal(t, "Four sunny days in Lisbon.", result.NarrativeSummary)
	assert.Equal(t, 4, result.Bundle.DateRange.DayCount)
	require.Len(t, result.Bundle.ForecastSeries, 1)
	assert.Equal(t, "sunny", result.Bundle.ForecastSeries[0].DominantCondition)
	require.NotNil(t, result.Bundle.RecommendedTransport)
	assert.Equal(t, []string{"TAP"}, result.Bundle.RecommendedTransport.Carriers)
	require.NotNil(t, result.Bundle.RecommendedLodging)
	assert.Equal(t, "Hotel Alfama", result.Bundle.RecommendedLodging.Name)
	require.NotNil(t, result.Bundle.Budget)
	assert.Equal(t, domain.BudgetUnder, result.Bundle.Budget.Status)
}

func TestClient_SendChatTurn_NoPlanUpdate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)

		var req chatRequestDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "sess-123", req.SessionID)
		assert.Equal(t, "what about museums?", req.Message)

		json.NewEncoder(w).Encode(chatResponseDTO{
			SessionID: "sess-123",
			Reply:     "Here are some museums.",
		})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	result, err := client.SendChatTurn(context.Background(), "sess-123", "what about museums?")

	require.NoError(t, err)
	assert.Equal(t, "Here are some museums.", result.Reply)
	assert.Nil(t, result.Bundle)
}

func TestClient_SendChatTurn_WithPlanUpdate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		plan := samplePlanDTO()
		json.NewEncoder(w).Encode(chatResponseDTO{
			SessionID:   "sess-123",
			Reply:       "Updated your plan.",
			UpdatedPlan: &plan,
		})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	result, err := client.SendChatTurn(context.Background(), "sess-123", "make it cheaper")

	require.NoError(t, err)
	require.NotNil(t, result.Bundle)
	assert.Equal(t, 4, result.Bundle.DateRange.DayCount)
	assert.Len(t, result.Bundle.PointsOfInterest, 1)
}

func TestClient_EndSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/session/sess-123", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	assert.NoError(t, client.EndSession(context.Background(), "sess-123"))
}

func TestClient_FetchPlan_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.PlanTimeoutMs = 50

	client := NewClient(cfg, NoopObserver{})
	_, err := client.FetchPlan(context.Background(), domain.PlanRequest{Destination: "Lisbon"})

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestClient_FetchPlan_Unavailable(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1") // nothing listening

	client := NewClient(cfg, NoopObserver{})
	_, err := client.FetchPlan(context.Background(), domain.PlanRequest{Destination: "Lisbon"})

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_FetchPlan_BadResponseNotRetried(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 2

	client := NewClient(cfg, NoopObserver{})
	_, err := client.FetchPlan(context.Background(), domain.PlanRequest{Destination: "Lisbon"})

	assert.ErrorIs(t, err, ErrBadResponse)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestClient_FetchPlan_RetryOnTransientError(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("internal error"))
			return
		}
		json.NewEncoder(w).Encode(samplePlanDTO())
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1

	client := NewClient(cfg, NoopObserver{})
	result, err := client.FetchPlan(context.Background(), domain.PlanRequest{Destination: "Lisbon"})

	require.NoError(t, err)
	assert.Equal(t, "sess-123", result.SessionID)
	assert.Equal(t, 2, attempts)
}

func TestClient_FetchPlan_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("bad request"))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.FetchPlan(context.Background(), domain.PlanRequest{Destination: "Lisbon"})

	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrRetryExhausted)
}

func TestClient_Available(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	assert.True(t, client.Available(context.Background()))

	down := NewClient(testConfig("http://127.0.0.1:1"), NoopObserver{})
	assert.False(t, down.Available(context.Background()))
}

func TestClient_ObserverCalled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatResponseDTO{SessionID: "sess-123", Reply: "ok"})
	}))
	defer srv.Close()

	var captured CallEvent
	obs := &captureObserver{fn: func(e CallEvent) { captured = e }}

	client := NewClient(testConfig(srv.URL), obs)
	_, err := client.SendChatTurn(context.Background(), "sess-123", "hi")

	require.NoError(t, err)
	assert.Equal(t, "chat_turn", captured.Op)
	assert.Equal(t, "sess-123", captured.SessionID)
	assert.True(t, captured.Success)
	assert.GreaterOrEqual(t, captured.LatencyMs, int64(0))
}

func TestClient_ObserverTimeoutErrorCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.ChatTimeoutMs = 50

	var captured CallEvent
	obs := &captureObserver{fn: func(e CallEvent) { captured = e }}
	client := NewClient(cfg, obs)

	_, err := client.SendChatTurn(context.Background(), "sess-123", "hi")

	assert.ErrorIs(t, err, ErrTimeout)
	assert.False(t, captured.Success)
	assert.Equal(t, "TIMEOUT", captured.ErrorCode)
}

type captureObserver struct {
	fn func(CallEvent)
}

func (o *captureObserver) OnCallComplete(e CallEvent) { o.fn(e) }
