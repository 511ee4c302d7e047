package cli

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/itinerolabs/itinero/internal/cli/formatter"
	"github.com/itinerolabs/itinero/internal/domain"
)

// sessionListView is an interactive browser over saved sessions. Enter
// loads the selected session's full history and opens its itinerary.
type sessionListView struct {
	state    *SharedState
	sessions []*domain.Session
	cursor   int
	errText  string
}

// sessionLoadedMsg carries a fully hydrated session picked from the list.
type sessionLoadedMsg struct {
	session *domain.Session
	err     error
}

func newSessionListView(state *SharedState, sessions []*domain.Session) *sessionListView {
	return &sessionListView{state: state, sessions: sessions}
}

func (v *sessionListView) Init() tea.Cmd { return nil }

func (v *sessionListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyDown:
			if v.cursor < len(v.sessions)-1 {
				v.cursor++
			}
			return v, nil
		case tea.KeyUp:
			if v.cursor > 0 {
				v.cursor--
			}
			return v, nil
		case tea.KeyEnter:
			if len(v.sessions) == 0 {
				return v, nil
			}
			id := v.sessions[v.cursor].ID
			app := v.state.App
			return v, func() tea.Msg {
				s, err := app.Sessions.GetByID(context.Background(), id)
				return sessionLoadedMsg{session: s, err: err}
			}
		}

	case sessionLoadedMsg:
		if msg.err != nil {
			v.errText = msg.err.Error()
			return v, nil
		}
		v.state.ActiveSession = msg.session
		return v, pushView(newItineraryView(v.state))
	}

	return v, nil
}

func (v *sessionListView) View() string {
	if len(v.sessions) == 0 {
		return formatter.Dim("No saved trips. Run \"itinero plan\" to start one.")
	}

	headers, rows := formatter.FormatSessionRows(v.sessions)
	for i := range rows {
		if i == v.cursor {
			rows[i][0] = formatter.StylePurple.Render("▸ " + rows[i][0])
		} else {
			rows[i][0] = "  " + rows[i][0]
		}
	}

	out := formatter.RenderTable(headers, rows)
	if v.errText != "" {
		out += "\n" + formatter.StyleRed.Render(v.errText)
	}
	return out
}

func (v *sessionListView) ID() ViewID    { return ViewSessionList }
func (v *sessionListView) Title() string { return "Trips" }
func (v *sessionListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "select")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}
