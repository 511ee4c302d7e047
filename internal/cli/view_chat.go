package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/itinerolabs/itinero/internal/cli/formatter"
	"github.com/itinerolabs/itinero/internal/domain"
	"github.com/itinerolabs/itinero/internal/service"
)

// chatTurnMsg delivers the outcome of one upstream chat turn.
type chatTurnMsg struct {
	outcome *service.ChatOutcome
	err     error
}

// chatView is the conversational refinement surface for the active session.
// One turn is outstanding at a time; while it runs the input stays live but
// submissions are rejected until the reply lands.
type chatView struct {
	state *SharedState
	input textinput.Model

	messages []string
	waiting  bool
}

func newChatView(state *SharedState) *chatView {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	v := &chatView{state: state, input: ti}

	if s := state.ActiveSession; s != nil {
		for _, m := range s.ChatHistory {
			v.messages = append(v.messages, renderChatMessage(m.Role, m.Text))
		}
	}

	return v
}

func renderChatMessage(role domain.ChatRole, text string) string {
	if role == domain.RoleUser {
		return formatter.Dim("You: ") + text
	}
	return formatter.StylePurple.Render("planner: ") + text
}

// ── tea.Model interface ──────────────────────────────────────────────────────

func (v *chatView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *chatView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return v, popView()
		}

		if msg.Type == tea.KeyEnter {
			input := strings.TrimSpace(v.input.Value())
			if input == "" {
				return v, nil
			}
			return v.handleInput(input)
		}

		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd

	case chatTurnMsg:
		return v.handleTurnResult(msg)

	case sessionUpdatedMsg:
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *chatView) View() string {
	var b strings.Builder

	for _, msg := range v.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}

	if v.waiting {
		b.WriteString(formatter.Dim("thinking...") + "\n")
	}

	prompt := formatter.StylePurple.Render("chat") + formatter.Dim("> ")
	b.WriteString(prompt)
	b.WriteString(v.input.View())

	return b.String()
}

// ── View interface ───────────────────────────────────────────────────────────

func (v *chatView) ID() ViewID    { return ViewChat }
func (v *chatView) Title() string { return "Chat" }
func (v *chatView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

// ── input handling ───────────────────────────────────────────────────────────

func (v *chatView) handleInput(input string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(input) {
	case "/quit", "/exit", "/q":
		return v, popView()
	}

	if v.waiting {
		v.messages = append(v.messages,
			formatter.Dim("Still working on the previous request..."))
		return v, nil
	}

	s := v.state.ActiveSession
	if s == nil {
		return v, popView()
	}

	v.input.Reset()
	v.messages = append(v.messages, renderChatMessage(domain.RoleUser, input))
	v.waiting = true

	sessionID := s.ID
	app := v.state.App
	return v, func() tea.Msg {
		outcome, err := app.Plans.SendMessage(context.Background(), sessionID, input)
		return chatTurnMsg{outcome: outcome, err: err}
	}
}

func (v *chatView) handleTurnResult(msg chatTurnMsg) (tea.Model, tea.Cmd) {
	v.waiting = false

	if msg.err != nil {
		// The failed turn never touched the session; only an inline error
		// is shown and the conversation stays usable.
		v.messages = append(v.messages,
			formatter.StyleRed.Render("The planner could not answer: "+msg.err.Error()))
		return v, nil
	}

	v.messages = append(v.messages, renderChatMessage(domain.RoleAssistant, msg.outcome.Reply))

	if msg.outcome.PlanUpdated {
		v.messages = append(v.messages, formatter.StyleGreen.Render("✓ Plan updated."))
	}

	session := msg.outcome.Session
	return v, func() tea.Msg { return sessionUpdatedMsg{session: session} }
}
