package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/itinerolabs/itinero/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// BudgetPill returns a colored indicator for a budget status.
func BudgetPill(status domain.BudgetStatus) string {
	switch status {
	case domain.BudgetUnder:
		return StyleGreen.Render("● UNDER BUDGET")
	case domain.BudgetBalanced:
		return StyleYellow.Render("● ON BUDGET")
	case domain.BudgetOver:
		return StyleRed.Render("● OVER BUDGET")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// ConditionIcon returns a weather glyph for a dominant condition string.
func ConditionIcon(condition string) string {
	switch strings.ToLower(condition) {
	case "sunny", "clear":
		return StyleYellow.Render("☀")
	case "cloudy", "overcast", "partly cloudy":
		return StyleDim.Render("☁")
	case "rain", "rainy", "drizzle", "showers":
		return StyleBlue.Render("☂")
	case "snow", "snowy":
		return StyleFg.Render("❄")
	case "storm", "thunderstorm":
		return StyleRed.Render("⚡")
	default:
		return StyleDim.Render("·")
	}
}

// Rating renders a star rating such as "4.5★".
func Rating(r float64) string {
	if r <= 0 {
		return StyleDim.Render("--")
	}
	return StyleYellow.Render(fmt.Sprintf("%.1f★", r))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
