package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/itinerolabs/itinero/internal/domain"
)

const draftDateLayout = "2006-01-02"

// planDraft accumulates trip request fields across the setup views.
type planDraft struct {
	Origin      string
	Destination string
	StartDate   string
	EndDate     string
	Budget      string
	Style       string
	Preferences string
	Dislikes    string
}

func newPlanDraft() *planDraft {
	return &planDraft{Style: string(domain.StyleStandard)}
}

// toRequest converts the draft into a validated plan request.
func (d *planDraft) toRequest() (domain.PlanRequest, error) {
	start, err := time.Parse(draftDateLayout, strings.TrimSpace(d.StartDate))
	if err != nil {
		return domain.PlanRequest{}, fmt.Errorf("start date must be YYYY-MM-DD")
	}
	end, err := time.Parse(draftDateLayout, strings.TrimSpace(d.EndDate))
	if err != nil {
		return domain.PlanRequest{}, fmt.Errorf("end date must be YYYY-MM-DD")
	}
	budget, err := strconv.ParseFloat(strings.TrimSpace(d.Budget), 64)
	if err != nil {
		return domain.PlanRequest{}, fmt.Errorf("budget must be a number")
	}

	req := domain.PlanRequest{
		Origin:      strings.TrimSpace(d.Origin),
		Destination: strings.TrimSpace(d.Destination),
		StartDate:   start,
		EndDate:     end,
		BudgetUSD:   budget,
		TravelStyle: domain.TravelStyle(d.Style),
		Preferences: splitList(d.Preferences),
		Dislikes:    splitList(d.Dislikes),
	}
	if err := req.Validate(); err != nil {
		return domain.PlanRequest{}, err
	}
	return req, nil
}

// splitList turns a comma-separated field into a trimmed slice.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
