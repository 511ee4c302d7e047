package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/itinerolabs/itinero/internal/domain"
)

// planFetchingMsg tells the setup view a fetch is underway.
type planFetchingMsg struct{}

// planFetchedMsg carries the result of the upstream plan fetch back to the
// setup view.
type planFetchedMsg struct {
	session *domain.Session
	err     error
}

// tripDetailsView wraps a huh.Form collecting dates, budget, style, and
// taste. Completing the form pops back to the setup view and kicks off the
// upstream fetch.
type tripDetailsView struct {
	state *SharedState
	draft *planDraft
	form  *huh.Form
}

func newTripDetailsView(state *SharedState, draft *planDraft) *tripDetailsView {
	validDate := func(s string) error {
		if _, err := time.Parse(draftDateLayout, strings.TrimSpace(s)); err != nil {
			return fmt.Errorf("use YYYY-MM-DD")
		}
		return nil
	}
	validBudget := func(s string) error {
		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || n <= 0 {
			return fmt.Errorf("enter a positive amount")
		}
		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start date").
				Placeholder("2026-09-01").
				Validate(validDate).
				Value(&draft.StartDate),
			huh.NewInput().
				Title("End date").
				Placeholder("2026-09-05").
				Validate(validDate).
				Value(&draft.EndDate),
			huh.NewInput().
				Title("Budget (USD)").
				Placeholder("1500").
				Validate(validBudget).
				Value(&draft.Budget),
			huh.NewSelect[string]().
				Title("Travel style").
				Options(
					huh.NewOption("Affordable", string(domain.StyleAffordable)),
					huh.NewOption("Standard", string(domain.StyleStandard)),
					huh.NewOption("Premium", string(domain.StylePremium)),
					huh.NewOption("Luxury", string(domain.StyleLuxury)),
				).
				Value(&draft.Style),
			huh.NewInput().
				Title("Preferences").
				Placeholder("food, history, beaches").
				Value(&draft.Preferences),
			huh.NewInput().
				Title("Dislikes").
				Placeholder("crowds, museums").
				Value(&draft.Dislikes),
		),
	)

	return &tripDetailsView{state: state, draft: draft, form: form}
}

func (v *tripDetailsView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *tripDetailsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Escape cancels the form and returns to the setup view.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, popView()
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		fetch := fetchPlanCmd(v.state, v.draft)
		return v, func() tea.Msg {
			return wizardCompleteMsg{nextCmd: tea.Batch(cmd, fetch)}
		}
	}

	return v, cmd
}

func (v *tripDetailsView) View() string {
	return v.form.View()
}

func (v *tripDetailsView) ID() ViewID    { return ViewForm }
func (v *tripDetailsView) Title() string { return "Details" }
func (v *tripDetailsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// fetchPlanCmd validates the draft and requests a plan from the upstream
// service, delivering the outcome as a planFetchedMsg.
func fetchPlanCmd(state *SharedState, draft *planDraft) tea.Cmd {
	started := func() tea.Msg { return planFetchingMsg{} }
	fetch := func() tea.Msg {
		req, err := draft.toRequest()
		if err != nil {
			return planFetchedMsg{err: err}
		}
		sess, err := state.App.Plans.CreatePlan(context.Background(), req)
		return planFetchedMsg{session: sess, err: err}
	}
	return tea.Batch(started, fetch)
}
