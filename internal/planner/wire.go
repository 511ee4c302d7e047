package planner

import (
	"time"

	"github.com/itinerolabs/itinero/internal/domain"
)

// Wire DTOs for the planning service JSON API. Dates travel as
// YYYY-MM-DD strings; the mappers below convert to and from domain types.

const wireDateLayout = "2006-01-02"

type planRequestDTO struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	BudgetUSD   float64  `json:"budget_usd"`
	Origin      string   `json:"origin"`
	TravelStyle string   `json:"travel_style"`
	Preferences []string `json:"preferences"`
	Dislikes    []string `json:"dislikes"`
}

type dateRangeDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	NumDays   int    `json:"num_days"`
}

type dailyForecastDTO struct {
	Date               string  `json:"date"`
	AvgTempC           float64 `json:"avg_temp_c"`
	DominantCondition  string  `json:"dominant_condition"`
	MaxRainProbability float64 `json:"max_rain_probability"`
	Summary            string  `json:"summary"`
}

type weatherDTO struct {
	DailyForecasts []dailyForecastDTO `json:"daily_forecasts"`
	OutdoorViable  bool               `json:"outdoor_viable"`
	Summary        string             `json:"summary"`
}

type flightLegDTO struct {
	Airline          string `json:"airline"`
	FlightNumber     string `json:"flight_number"`
	DepartureAirport string `json:"departure_airport"`
	ArrivalAirport   string `json:"arrival_airport"`
	DepartureTime    string `json:"departure_time"`
	ArrivalTime      string `json:"arrival_time"`
	DurationMinutes  int    `json:"duration_minutes"`
}

type flightOptionDTO struct {
	PriceUSD             float64        `json:"price_usd"`
	Airlines             []string       `json:"airlines"`
	TotalDurationMinutes int            `json:"total_duration_minutes"`
	Stops                int            `json:"stops"`
	Legs                 []flightLegDTO `json:"legs"`
}

type transportDTO struct {
	Recommended *flightOptionDTO `json:"recommended"`
}

type hotelOptionDTO struct {
	Name            string  `json:"name"`
	TotalRateUSD    float64 `json:"total_rate_usd"`
	RatePerNightUSD float64 `json:"rate_per_night_usd"`
	Rating          float64 `json:"rating"`
}

type hotelDTO struct {
	Recommended *hotelOptionDTO `json:"recommended"`
}

type attractionDTO struct {
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	IsOutdoor   bool    `json:"is_outdoor"`
}

type hiddenGemDTO struct {
	Name     string `json:"name"`
	Source   string `json:"source"`
	Snippet  string `json:"snippet"`
	Mentions int    `json:"mentions"`
}

type restaurantDTO struct {
	Name       string  `json:"name"`
	Rating     float64 `json:"rating"`
	Type       string  `json:"type"`
	PriceLevel string  `json:"price_level"`
	Address    string  `json:"address"`
}

type discoveryDTO struct {
	Attractions []attractionDTO `json:"attractions"`
	HiddenGems  []hiddenGemDTO  `json:"hidden_gems"`
	Restaurants []restaurantDTO `json:"restaurants"`
}

type costBreakdownDTO struct {
	TransportUSD  float64 `json:"transport_usd"`
	HotelUSD      float64 `json:"hotel_usd"`
	FoodUSD       float64 `json:"food_usd"`
	ActivitiesUSD float64 `json:"activities_usd"`
}

type budgetDTO struct {
	Breakdown          costBreakdownDTO `json:"breakdown"`
	EstimatedTotalUSD  float64          `json:"estimated_total_usd"`
	TotalBudgetUSD     float64          `json:"total_budget_usd"`
	RemainingBudgetUSD float64          `json:"remaining_budget_usd"`
	Status             string           `json:"status"`
	Suggestions        []string         `json:"suggestions"`
}

type travelPlanDTO struct {
	SessionID   string        `json:"session_id"`
	Destination string        `json:"destination"`
	Dates       dateRangeDTO  `json:"dates"`
	Weather     *weatherDTO   `json:"weather"`
	Transport   *transportDTO `json:"transport"`
	Hotel       *hotelDTO     `json:"hotel"`
	Discovery   *discoveryDTO `json:"discovery"`
	Budget      *budgetDTO    `json:"budget"`
	LLMSummary  string        `json:"llm_summary"`
}

type chatRequestDTO struct {
	SessionID string `json:"session_id,omitempty"`
	Message   string `json:"message"`
}

type chatResponseDTO struct {
	SessionID   string         `json:"session_id"`
	Reply       string         `json:"reply"`
	UpdatedPlan *travelPlanDTO `json:"updated_plan"`
}

// ── mapping ──────────────────────────────────────────────────────────────────

func toPlanRequestDTO(req domain.PlanRequest) planRequestDTO {
	style := req.TravelStyle
	if style == "" {
		style = domain.StyleStandard
	}
	origin := req.Origin
	if origin == "" {
		origin = "auto"
	}
	return planRequestDTO{
		Destination: req.Destination,
		StartDate:   req.StartDate.Format(wireDateLayout),
		EndDate:     req.EndDate.Format(wireDateLayout),
		BudgetUSD:   req.BudgetUSD,
		Origin:      origin,
		TravelStyle: string(style),
		Preferences: req.Preferences,
		Dislikes:    req.Dislikes,
	}
}

// bundleFromDTO maps a wire plan into a domain bundle. Missing sections map
// to nil/empty fields; they are a normal condition, never an error here.
func bundleFromDTO(dto *travelPlanDTO) domain.Bundle {
	var b domain.Bundle

	b.DateRange = domain.DateRange{
		Start:    parseWireDate(dto.Dates.StartDate),
		End:      parseWireDate(dto.Dates.EndDate),
		DayCount: dto.Dates.NumDays,
	}

	if dto.Weather != nil {
		for _, f := range dto.Weather.DailyForecasts {
			b.ForecastSeries = append(b.ForecastSeries, domain.DailyForecast{
				Date:              parseWireDate(f.Date),
				AvgTempC:          f.AvgTempC,
				DominantCondition: f.DominantCondition,
				RainProbability:   f.MaxRainProbability,
				Note:              f.Summary,
			})
		}
	}

	if dto.Transport != nil && dto.Transport.Recommended != nil {
		r := dto.Transport.Recommended
		opt := domain.TransportOption{
			PriceUSD:             r.PriceUSD,
			Carriers:             r.Airlines,
			TotalDurationMinutes: r.TotalDurationMinutes,
			StopCount:            r.Stops,
		}
		for _, leg := range r.Legs {
			opt.Legs = append(opt.Legs, domain.TransportLeg{
				Carrier:          leg.Airline,
				FlightNumber:     leg.FlightNumber,
				DepartureAirport: leg.DepartureAirport,
				ArrivalAirport:   leg.ArrivalAirport,
				DepartureTime:    leg.DepartureTime,
				ArrivalTime:      leg.ArrivalTime,
				DurationMinutes:  leg.DurationMinutes,
			})
		}
		b.RecommendedTransport = &opt
	}

	if dto.Hotel != nil && dto.Hotel.Recommended != nil {
		r := dto.Hotel.Recommended
		b.RecommendedLodging = &domain.LodgingOption{
			Name:         r.Name,
			RatePerNight: r.RatePerNightUSD,
			TotalRate:    r.TotalRateUSD,
			Rating:       r.Rating,
		}
	}

	if dto.Discovery != nil {
		for _, a := range dto.Discovery.Attractions {
			b.PointsOfInterest = append(b.PointsOfInterest, domain.Attraction{
				Name:        a.Name,
				Rating:      a.Rating,
				Description: a.Description,
				Category:    a.Type,
				IsOutdoor:   a.IsOutdoor,
			})
		}
		for _, g := range dto.Discovery.HiddenGems {
			b.HiddenGems = append(b.HiddenGems, domain.HiddenGem{
				Name:         g.Name,
				Source:       g.Source,
				Snippet:      g.Snippet,
				MentionCount: g.Mentions,
			})
		}
		for _, r := range dto.Discovery.Restaurants {
			b.DiningOptions = append(b.DiningOptions, domain.Restaurant{
				Name:      r.Name,
				Rating:    r.Rating,
				Category:  r.Type,
				PriceTier: r.PriceLevel,
				Address:   r.Address,
			})
		}
	}

	if dto.Budget != nil {
		b.Budget = &domain.BudgetSummary{
			Breakdown: domain.CostBreakdown{
				TransportUSD:  dto.Budget.Breakdown.TransportUSD,
				LodgingUSD:    dto.Budget.Breakdown.HotelUSD,
				FoodUSD:       dto.Budget.Breakdown.FoodUSD,
				ActivitiesUSD: dto.Budget.Breakdown.ActivitiesUSD,
			},
			EstimatedTotalUSD: dto.Budget.EstimatedTotalUSD,
			TotalBudgetUSD:    dto.Budget.TotalBudgetUSD,
			RemainingUSD:      dto.Budget.RemainingBudgetUSD,
			Status:            domain.BudgetStatus(dto.Budget.Status),
			Suggestions:       dto.Budget.Suggestions,
		}
	}

	return b
}

func parseWireDate(s string) time.Time {
	t, err := time.Parse(wireDateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
