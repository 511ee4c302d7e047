package formatter

import (
	"fmt"
	"strings"

	"github.com/itinerolabs/itinero/internal/domain"
	"github.com/itinerolabs/itinero/internal/itinerary"
)

// FormatDayPlans renders a full day-by-day itinerary.
func FormatDayPlans(days []itinerary.DayPlan) string {
	var b strings.Builder
	for i, day := range days {
		b.WriteString(FormatDayPlan(day))
		if i < len(days)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatDayPlan renders a single day of the itinerary.
func FormatDayPlan(day itinerary.DayPlan) string {
	var b strings.Builder

	title := fmt.Sprintf("Day %d", day.DayNumber)
	b.WriteString(StyleHeader.Render(title))
	b.WriteString("  " + Dim(DayDate(day.Date)))
	if day.FreeDay {
		b.WriteString("  " + StyleBlue.Render("~ free day"))
	}
	b.WriteString("\n")

	if day.Weather != nil {
		b.WriteString(fmt.Sprintf("  %s %s, %.0f°C",
			ConditionIcon(day.Weather.DominantCondition),
			day.Weather.DominantCondition,
			day.Weather.AvgTempC,
		))
		if day.Weather.RainProbability >= 0.5 {
			b.WriteString("  " + StyleBlue.Render(fmt.Sprintf("%.0f%% rain", day.Weather.RainProbability*100)))
		}
		b.WriteString("\n")
	}

	if day.ArrivalNote != "" {
		b.WriteString("  " + StyleGreen.Render("→ ") + day.ArrivalNote + "\n")
	}

	if day.MorningPOI != nil {
		b.WriteString("  " + Dim("morning   ") + poiLine(*day.MorningPOI) + "\n")
	}
	if day.AfternoonPOI != nil {
		b.WriteString("  " + Dim("afternoon ") + poiLine(*day.AfternoonPOI) + "\n")
	}
	if day.DiningPick != nil {
		b.WriteString("  " + Dim("dining    ") + diningLine(*day.DiningPick) + "\n")
	}
	if day.HiddenGem != nil {
		b.WriteString("  " + Dim("gem       ") + gemLine(*day.HiddenGem) + "\n")
	}

	if day.DepartureNote != "" {
		b.WriteString("  " + StyleYellow.Render("← ") + day.DepartureNote + "\n")
	}
	if day.DailySpendUSD > 0 {
		b.WriteString("  " + Dim(fmt.Sprintf("est. daily spend %s", Money(day.DailySpendUSD))) + "\n")
	}

	return b.String()
}

func poiLine(a domain.Attraction) string {
	line := Bold(a.Name) + " " + Rating(a.Rating)
	if a.Category != "" {
		line += " " + Dim(a.Category)
	}
	return line
}

func diningLine(r domain.Restaurant) string {
	line := Bold(r.Name) + " " + Rating(r.Rating)
	if r.PriceTier != "" {
		line += " " + StyleGreen.Render(r.PriceTier)
	}
	return line
}

func gemLine(g domain.HiddenGem) string {
	line := Bold(g.Name)
	if g.MentionCount > 0 {
		line += " " + Dim(fmt.Sprintf("(%d mentions via %s)", g.MentionCount, g.Source))
	}
	return line
}

// FormatTripHeader renders the session overview shown above the itinerary.
func FormatTripHeader(s *domain.Session) string {
	var b strings.Builder

	route := s.Destination
	if s.Origin != "" {
		route = s.Origin + " → " + s.Destination
	}
	b.WriteString(StylePurple.Render(route))
	if dates := TripDates(s.Bundle.DateRange.Start, s.Bundle.DateRange.End); dates != "" {
		b.WriteString("  " + Dim(dates))
	}
	b.WriteString("  " + Dim(fmt.Sprintf("rev %d", s.Revision)))
	b.WriteString("\n")

	if s.Bundle.HasTransport() {
		t := s.Bundle.RecommendedTransport
		b.WriteString(fmt.Sprintf("%s %s, %s, %s\n",
			Dim("transport"),
			strings.Join(t.Carriers, "/"),
			FormatMinutes(t.TotalDurationMinutes),
			Money(t.PriceUSD),
		))
	}
	if s.Bundle.HasLodging() {
		l := s.Bundle.RecommendedLodging
		b.WriteString(fmt.Sprintf("%s %s %s, %s total\n",
			Dim("lodging  "),
			Bold(l.Name),
			Rating(l.Rating),
			Money(l.TotalRate),
		))
	}
	if s.Bundle.Budget != nil {
		bud := s.Bundle.Budget
		b.WriteString(fmt.Sprintf("%s %s of %s estimated  %s\n",
			Dim("budget   "),
			Money(bud.EstimatedTotalUSD),
			Money(bud.TotalBudgetUSD),
			BudgetPill(bud.Status),
		))
	}

	if s.NarrativeSummary != "" {
		b.WriteString("\n" + StyleFg.Render(s.NarrativeSummary) + "\n")
	}

	return b.String()
}

// FormatSessionRows builds table rows for the session list.
func FormatSessionRows(sessions []*domain.Session) ([]string, [][]string) {
	headers := []string{"ID", "TRIP", "DAYS", "REV", "UPDATED"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		route := s.Destination
		if s.Origin != "" {
			route = s.Origin + " → " + s.Destination
		}
		rows = append(rows, []string{
			TruncID(s.ID),
			route,
			fmt.Sprintf("%d", s.Bundle.DateRange.DayCount),
			fmt.Sprintf("%d", s.Revision),
			Dim(HumanTimestamp(s.UpdatedAt)),
		})
	}
	return headers, rows
}
