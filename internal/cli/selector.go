package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/itinerolabs/itinero/internal/cli/formatter"
	"github.com/itinerolabs/itinero/internal/places"
)

// selectorMaxCandidates caps the dropdown length.
const selectorMaxCandidates = 8

// noHighlight marks the "no candidate highlighted" state.
const noHighlight = -1

// locationSelector is a text input with a ranked-search dropdown.
//
// It is either closed (plain text input) or open over a candidate list with
// at most one highlighted entry. Free text is always a valid value: every
// edit and every commit notifies onChange synchronously, so the caller can
// reconstruct the value without reaching into the widget.
type locationSelector struct {
	input      textinput.Model
	label      string
	onChange   func(string)
	open       bool
	candidates []places.Place
	highlight  int

	// Top-left cell of the widget on screen, set by the parent view after
	// layout. Used for pointer hit testing.
	originX, originY int
	width            int
}

func newLocationSelector(label, initial string, onChange func(string)) locationSelector {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 60
	ti.Width = 32
	ti.SetValue(initial)

	return locationSelector{
		input:     ti,
		label:     label,
		onChange:  onChange,
		highlight: noHighlight,
		width:     40,
	}
}

// SetPosition registers the widget's top-left screen cell for hit testing.
func (s *locationSelector) SetPosition(x, y int) {
	s.originX = x
	s.originY = y
}

// Focus gives keyboard focus to the input. Gaining focus with non-empty
// text opens the dropdown.
func (s *locationSelector) Focus() tea.Cmd {
	cmd := s.input.Focus()
	if !s.open && strings.TrimSpace(s.input.Value()) != "" {
		s.openDropdown()
	}
	return cmd
}

// Blur removes focus and closes the dropdown.
func (s *locationSelector) Blur() {
	s.input.Blur()
	s.close()
}

func (s *locationSelector) Focused() bool { return s.input.Focused() }

// Open reports whether the dropdown is showing.
func (s *locationSelector) Open() bool { return s.open }

// Value returns the current free-text value.
func (s *locationSelector) Value() string { return s.input.Value() }

// Update processes one message. Key messages are only meaningful while the
// selector is focused; mouse messages are handled regardless of focus so an
// outside click can close the dropdown.
func (s locationSelector) Update(msg tea.Msg) (locationSelector, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !s.input.Focused() {
			return s, nil
		}
		return s.handleKey(msg)

	case tea.MouseMsg:
		return s.handleMouse(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s locationSelector) handleKey(msg tea.KeyMsg) (locationSelector, tea.Cmd) {
	switch msg.Type {
	case tea.KeyDown:
		if !s.open {
			// Moving down on a closed widget with text opens it without
			// selecting anything.
			if strings.TrimSpace(s.input.Value()) != "" {
				s.openDropdown()
			}
			return s, nil
		}
		s.moveHighlight(1)
		return s, nil

	case tea.KeyUp:
		if s.open {
			s.moveHighlight(-1)
		}
		return s, nil

	case tea.KeyEnter:
		if s.open && s.highlight != noHighlight && s.highlight < len(s.candidates) {
			s.commit(s.candidates[s.highlight])
			return s, nil
		}
		if s.open {
			s.close()
			return s, nil
		}
		return s, nil

	case tea.KeyEsc:
		// Cancel: close without altering the text value.
		s.close()
		return s, nil
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before {
		s.notify(s.input.Value())
		s.openDropdown()
	}
	return s, cmd
}

func (s locationSelector) handleMouse(msg tea.MouseMsg) (locationSelector, tea.Cmd) {
	row, inside := s.hitCandidate(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		// Hovering a candidate moves the highlight without committing.
		if s.open && inside {
			s.highlight = row
		}
		return s, nil

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return s, nil
		}
		if s.open && inside {
			// Commit on pointer-down so an outside-click close cannot race
			// ahead of the click itself.
			s.commit(s.candidates[row])
			return s, nil
		}
		if !s.withinBounds(msg.X, msg.Y) {
			s.close()
		}
		return s, nil
	}

	return s, nil
}

// ── state transitions ────────────────────────────────────────────────────────

// openDropdown recomputes candidates for the current text and resets the
// highlight.
func (s *locationSelector) openDropdown() {
	s.candidates = places.Search(s.input.Value(), selectorMaxCandidates)
	s.highlight = noHighlight
	s.open = true
}

func (s *locationSelector) close() {
	s.open = false
	s.candidates = nil
	s.highlight = noHighlight
}

func (s *locationSelector) moveHighlight(delta int) {
	n := len(s.candidates)
	if n == 0 {
		return
	}
	if s.highlight == noHighlight {
		if delta > 0 {
			s.highlight = 0
		} else {
			s.highlight = n - 1
		}
		return
	}
	s.highlight = (s.highlight + delta + n) % n
}

// commit writes the candidate's canonical display value, notifies the
// caller, and closes the dropdown.
func (s *locationSelector) commit(p places.Place) {
	display := p.DisplayValue()
	s.input.SetValue(display)
	s.input.CursorEnd()
	s.notify(display)
	s.close()
}

func (s *locationSelector) notify(value string) {
	if s.onChange != nil {
		s.onChange(value)
	}
}

// ── pointer geometry ─────────────────────────────────────────────────────────

// hitCandidate maps a screen cell to a candidate row. The input occupies the
// widget's first line; candidates follow one per line.
func (s *locationSelector) hitCandidate(x, y int) (int, bool) {
	if !s.open {
		return 0, false
	}
	row := y - s.originY - 1
	if row < 0 || row >= len(s.candidates) {
		return 0, false
	}
	if x < s.originX || x >= s.originX+s.width {
		return 0, false
	}
	return row, true
}

// withinBounds reports whether the cell falls inside the widget: the input
// line plus the open candidate list.
func (s *locationSelector) withinBounds(x, y int) bool {
	height := 1
	if s.open {
		height += len(s.candidates)
	}
	if y < s.originY || y >= s.originY+height {
		return false
	}
	return x >= s.originX && x < s.originX+s.width
}

// ── rendering ────────────────────────────────────────────────────────────────

func (s *locationSelector) View() string {
	var b strings.Builder

	label := formatter.Dim(s.label + " ")
	b.WriteString(label)
	b.WriteString(s.input.View())

	if s.open {
		for i, c := range s.candidates {
			b.WriteString("\n")
			line := "  " + c.DisplayValue() + " " + formatter.Dim(c.Region)
			if i == s.highlight {
				line = formatter.StylePurple.Render("▸ "+c.DisplayValue()) + " " + formatter.Dim(c.Region)
			}
			b.WriteString(line)
		}
	}

	return b.String()
}

// Height returns the number of terminal rows the widget currently occupies.
func (s *locationSelector) Height() int {
	if s.open {
		return 1 + len(s.candidates)
	}
	return 1
}
