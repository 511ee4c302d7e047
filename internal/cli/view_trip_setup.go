package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/itinerolabs/itinero/internal/cli/formatter"
)

// tripSetupView collects the origin and destination with location selectors.
// Committed or free-text values flow into the shared plan request draft;
// once a destination exists, Enter advances to the trip details form.
type tripSetupView struct {
	state *SharedState
	draft *planDraft

	origin      locationSelector
	destination locationSelector
	focusIdx    int // 0 = origin, 1 = destination

	fetching bool
	errText  string
}

func newTripSetupView(state *SharedState, draft *planDraft) *tripSetupView {
	v := &tripSetupView{state: state, draft: draft}

	v.origin = newLocationSelector("From", draft.Origin, func(val string) {
		draft.Origin = val
	})
	v.destination = newLocationSelector("To  ", draft.Destination, func(val string) {
		draft.Destination = val
	})

	// The header occupies two rows; origin renders right below it.
	v.origin.SetPosition(0, 2)
	v.destination.SetPosition(0, 3)

	return v
}

func (v *tripSetupView) Init() tea.Cmd {
	return v.origin.Focus()
}

func (v *tripSetupView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if v.fetching {
			return v, nil
		}
		return v.handleKey(msg)

	case planFetchingMsg:
		v.fetching = true
		v.errText = ""
		return v, nil

	case planFetchedMsg:
		v.fetching = false
		if msg.err != nil {
			v.errText = msg.err.Error()
			return v, nil
		}
		v.state.ActiveSession = msg.session
		return v, replaceView(newItineraryView(v.state))

	case tea.MouseMsg:
		var cmds []tea.Cmd
		var cmd tea.Cmd
		v.origin, cmd = v.origin.Update(msg)
		cmds = append(cmds, cmd)
		v.destination, cmd = v.destination.Update(msg)
		cmds = append(cmds, cmd)
		return v, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	if v.focusIdx == 0 {
		v.origin, cmd = v.origin.Update(msg)
	} else {
		v.destination, cmd = v.destination.Update(msg)
	}
	return v, cmd
}

func (v *tripSetupView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	focused := v.focusedSelector()

	switch msg.Type {
	case tea.KeyEsc:
		if focused.Open() {
			break // selector closes itself, keep the view
		}
		return v, popView()

	case tea.KeyTab:
		v.switchFocus()
		return v, v.focusedSelector().Focus()

	case tea.KeyEnter:
		if focused.Open() {
			break // selector consumes the commit
		}
		if v.focusIdx == 0 {
			v.switchFocus()
			return v, v.focusedSelector().Focus()
		}
		if strings.TrimSpace(v.draft.Destination) == "" {
			v.errText = "A destination is required."
			return v, nil
		}
		v.errText = ""
		return v, pushView(newTripDetailsView(v.state, v.draft))
	}

	var cmd tea.Cmd
	if v.focusIdx == 0 {
		v.origin, cmd = v.origin.Update(msg)
	} else {
		v.destination, cmd = v.destination.Update(msg)
	}

	// The destination selector sits right under the origin's dropdown, so
	// its hit-test row shifts as the origin opens and closes.
	v.destination.SetPosition(0, 2+v.origin.Height())

	return v, cmd
}

func (v *tripSetupView) focusedSelector() *locationSelector {
	if v.focusIdx == 0 {
		return &v.origin
	}
	return &v.destination
}

func (v *tripSetupView) switchFocus() {
	v.focusedSelector().Blur()
	v.focusIdx = 1 - v.focusIdx
}

func (v *tripSetupView) View() string {
	var b strings.Builder
	b.WriteString(v.origin.View())
	b.WriteString("\n")
	b.WriteString(v.destination.View())
	b.WriteString("\n")
	if v.fetching {
		b.WriteString("\n" + formatter.Dim("Building your itinerary...") + "\n")
	}
	if v.errText != "" {
		b.WriteString("\n" + formatter.StyleRed.Render(v.errText) + "\n")
	}
	return b.String()
}

func (v *tripSetupView) ID() ViewID    { return ViewTripSetup }
func (v *tripSetupView) Title() string { return "New Trip" }
func (v *tripSetupView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch field")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}
