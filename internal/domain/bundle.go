package domain

import "time"

// DateRange is the authoritative source of itinerary length.
// DayCount is derived from the travel dates when the plan is requested and
// is never altered by the contents of the other bundle fields.
type DateRange struct {
	Start    time.Time
	End      time.Time
	DayCount int
}

// DailyForecast is one entry of the forecast series, keyed by date.
type DailyForecast struct {
	Date              time.Time
	AvgTempC          float64
	DominantCondition string
	RainProbability   float64
	Note              string
}

// TransportLeg is a single segment of the recommended transport option.
type TransportLeg struct {
	Carrier          string
	FlightNumber     string
	DepartureAirport string
	ArrivalAirport   string
	DepartureTime    string
	ArrivalTime      string
	DurationMinutes  int
}

// TransportOption is the recommended way to reach the destination.
// A nil pointer or a zero price means "none available".
type TransportOption struct {
	PriceUSD             float64
	Carriers             []string
	TotalDurationMinutes int
	StopCount            int
	Legs                 []TransportLeg
}

// LodgingOption is the recommended place to stay.
// A nil pointer or a zero total rate means "none available".
type LodgingOption struct {
	Name         string
	RatePerNight float64
	TotalRate    float64
	Rating       float64
}

// Attraction is a point of interest at the destination.
type Attraction struct {
	Name        string
	Rating      float64
	Description string
	Category    string
	IsOutdoor   bool
}

// Restaurant is a dining option at the destination.
type Restaurant struct {
	Name      string
	Rating    float64
	Category  string
	PriceTier string
	Address   string
}

// HiddenGem is a lesser-known spot surfaced from community mentions.
type HiddenGem struct {
	Name         string
	Source       string
	Snippet      string
	MentionCount int
}

// CostBreakdown splits the estimated trip cost by category.
type CostBreakdown struct {
	TransportUSD  float64
	LodgingUSD    float64
	FoodUSD       float64
	ActivitiesUSD float64
}

// BudgetSummary is the cost estimate produced upstream.
type BudgetSummary struct {
	Breakdown         CostBreakdown
	EstimatedTotalUSD float64
	TotalBudgetUSD    float64
	RemainingUSD      float64
	Status            BudgetStatus
	Suggestions       []string
}

// Bundle is the aggregate of independently-sourced result sets a plan is
// synthesized from. Every field except DateRange may be absent or empty
// without invalidating the rest; synthesis degrades per field.
type Bundle struct {
	DateRange            DateRange
	ForecastSeries       []DailyForecast
	RecommendedTransport *TransportOption
	RecommendedLodging   *LodgingOption
	PointsOfInterest     []Attraction
	DiningOptions        []Restaurant
	HiddenGems           []HiddenGem
	Budget               *BudgetSummary
}

// HasTransport reports whether the bundle carries a usable transport option.
func (b Bundle) HasTransport() bool {
	return b.RecommendedTransport != nil && b.RecommendedTransport.PriceUSD > 0
}

// HasLodging reports whether the bundle carries a usable lodging option.
func (b Bundle) HasLodging() bool {
	return b.RecommendedLodging != nil && b.RecommendedLodging.TotalRate > 0
}
