package cli

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/itinerolabs/itinero/internal/cli/formatter"
)

// itineraryView renders the active session's trip header and day-by-day
// plan. The day plans are derived on demand from the current bundle, so a
// sessionUpdatedMsg only needs to trigger a re-render.
type itineraryView struct {
	state *SharedState
	vp    viewport.Model
	ready bool
	err   error
}

func newItineraryView(state *SharedState) *itineraryView {
	v := &itineraryView{state: state}
	v.vp = viewport.New(80, state.ContentHeight())
	v.refresh()
	return v
}

// refresh re-derives the rendered plan from the active session.
func (v *itineraryView) refresh() {
	s := v.state.ActiveSession
	if s == nil {
		v.vp.SetContent(formatter.Dim("No active session."))
		return
	}

	days, err := v.state.App.Sessions.DayPlans(s)
	if err != nil {
		v.err = err
		v.vp.SetContent(formatter.StyleRed.Render("Could not derive the itinerary: " + err.Error()))
		return
	}
	v.err = nil
	v.vp.SetContent(formatter.FormatTripHeader(s) + "\n" + formatter.FormatDayPlans(days))
}

func (v *itineraryView) Init() tea.Cmd { return nil }

func (v *itineraryView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		v.ready = true
		return v, nil

	case sessionUpdatedMsg:
		v.refresh()
		return v, nil

	case tea.KeyMsg:
		if msg.String() == "c" && v.state.ActiveSession != nil {
			return v, pushView(newChatView(v.state))
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *itineraryView) View() string {
	return v.vp.View()
}

func (v *itineraryView) ID() ViewID { return ViewItinerary }

func (v *itineraryView) Title() string {
	if s := v.state.ActiveSession; s != nil {
		return s.Destination
	}
	return "Itinerary"
}

func (v *itineraryView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chat")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}
