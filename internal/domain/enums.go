package domain

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

type TravelStyle string

const (
	StyleAffordable TravelStyle = "affordable"
	StyleStandard   TravelStyle = "standard"
	StylePremium    TravelStyle = "premium"
	StyleLuxury     TravelStyle = "luxury"
)

type BudgetStatus string

const (
	BudgetOver     BudgetStatus = "over"
	BudgetUnder    BudgetStatus = "under"
	BudgetBalanced BudgetStatus = "balanced"
)

// ValidTravelStyles is the canonical set of accepted travel style strings.
var ValidTravelStyles = map[string]bool{
	"affordable": true, "standard": true, "premium": true, "luxury": true,
}
