package domain

import (
	"fmt"
	"time"
)

// PlanRequest is everything the upstream planning service needs to produce
// a bundle: where, when, how much, and taste.
type PlanRequest struct {
	Origin      string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	BudgetUSD   float64
	TravelStyle TravelStyle
	Preferences []string
	Dislikes    []string
}

// Validate checks the fields the client owns before the request goes out.
func (r *PlanRequest) Validate() error {
	if r.Destination == "" {
		return fmt.Errorf("destination is required")
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return fmt.Errorf("start and end dates are required")
	}
	if r.EndDate.Before(r.StartDate) {
		return fmt.Errorf("end date %s is before start date %s",
			r.EndDate.Format("2006-01-02"), r.StartDate.Format("2006-01-02"))
	}
	if r.BudgetUSD <= 0 {
		return fmt.Errorf("budget must be positive")
	}
	if r.TravelStyle != "" && !ValidTravelStyles[string(r.TravelStyle)] {
		return fmt.Errorf("unknown travel style %q", r.TravelStyle)
	}
	return nil
}

// Days returns the trip length in days, minimum 1.
func (r *PlanRequest) Days() int {
	d := int(r.EndDate.Sub(r.StartDate).Hours() / 24)
	if d < 1 {
		return 1
	}
	return d
}
