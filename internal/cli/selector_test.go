package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSelector(t *testing.T, initial string) (*locationSelector, *[]string) {
	t.Helper()
	var changes []string
	sel := newLocationSelector("To", initial, func(v string) {
		changes = append(changes, v)
	})
	return &sel, &changes
}

func typeRunes(sel *locationSelector, s string) {
	for _, r := range s {
		updated, _ := sel.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		*sel = updated
	}
}

func sendKey(sel *locationSelector, k tea.KeyType) {
	updated, _ := sel.Update(tea.KeyMsg{Type: k})
	*sel = updated
}

func sendMouse(sel *locationSelector, msg tea.MouseMsg) {
	updated, _ := sel.Update(msg)
	*sel = updated
}

func TestSelector_StartsClosed(t *testing.T) {
	sel, _ := newTestSelector(t, "Lisbon")
	assert.False(t, sel.Open())
	assert.Equal(t, "Lisbon", sel.Value())
}

func TestSelector_TypingOpensAndNotifies(t *testing.T) {
	sel, changes := newTestSelector(t, "")
	sel.Focus()

	typeRunes(sel, "lis")

	assert.True(t, sel.Open())
	assert.NotEmpty(t, sel.candidates)
	// Every keystroke propagated the raw text immediately.
	assert.Equal(t, []string{"l", "li", "lis"}, *changes)
	// Recomputing candidates resets the highlight to none.
	assert.Equal(t, noHighlight, sel.highlight)
}

func TestSelector_FocusWithTextOpens(t *testing.T) {
	sel, _ := newTestSelector(t, "lisbon")

	sel.Focus()

	assert.True(t, sel.Open())
	require.NotEmpty(t, sel.candidates)
	assert.Equal(t, "Lisbon", sel.candidates[0].City)
}

func TestSelector_DownOnClosedOpensWithoutSelecting(t *testing.T) {
	sel, _ := newTestSelector(t, "lisbon")
	sel.input.Focus() // focus without triggering the open-on-focus path

	sendKey(sel, tea.KeyDown)

	assert.True(t, sel.Open())
	assert.Equal(t, noHighlight, sel.highlight)
}

func TestSelector_NavigationWrapsCircularly(t *testing.T) {
	sel, _ := newTestSelector(t, "")
	sel.Focus()
	typeRunes(sel, "l")
	require.True(t, sel.Open())
	n := len(sel.candidates)
	require.Greater(t, n, 1)

	sendKey(sel, tea.KeyDown)
	assert.Equal(t, 0, sel.highlight)

	// Walk off the end: wraps to the first candidate.
	for i := 0; i < n; i++ {
		sendKey(sel, tea.KeyDown)
	}
	assert.Equal(t, 0, sel.highlight)

	// And back up from the first: wraps to the last.
	sendKey(sel, tea.KeyUp)
	assert.Equal(t, n-1, sel.highlight)
}

func TestSelector_UpFromNoneHighlightsLast(t *testing.T) {
	sel, _ := newTestSelector(t, "")
	sel.Focus()
	typeRunes(sel, "l")
	require.True(t, sel.Open())

	sendKey(sel, tea.KeyUp)
	assert.Equal(t, len(sel.candidates)-1, sel.highlight)
}

func TestSelector_EnterCommitsHighlighted(t *testing.T) {
	sel, changes := newTestSelector(t, "")
	sel.Focus()
	typeRunes(sel, "lisbon")
	require.True(t, sel.Open())

	sendKey(sel, tea.KeyDown)
	sendKey(sel, tea.KeyEnter)

	assert.False(t, sel.Open())
	assert.Equal(t, "Lisbon (LIS)", sel.Value())
	assert.Equal(t, "Lisbon (LIS)", (*changes)[len(*changes)-1])
	assert.Empty(t, sel.candidates, "commit discards the candidate list")
}

func TestSelector_EnterWithoutHighlightJustCloses(t *testing.T) {
	sel, changes := newTestSelector(t, "")
	sel.Focus()
	typeRunes(sel, "lis")
	require.True(t, sel.Open())
	before := len(*changes)

	sendKey(sel, tea.KeyEnter)

	assert.False(t, sel.Open())
	assert.Equal(t, "lis", sel.Value(), "free text survives as the value")
	assert.Len(t, *changes, before, "closing is not a commit")
}

func TestSelector_EscClosesWithoutAlteringText(t *testing.T) {
	sel, _ := newTestSelector(t, "")
	sel.Focus()
	typeRunes(sel, "lisb")
	require.True(t, sel.Open())

	sendKey(sel, tea.KeyEsc)

	assert.False(t, sel.Open())
	assert.Equal(t, "lisb", sel.Value())
}

func TestSelector_HoverMovesHighlight(t *testing.T) {
	sel, _ := newTestSelector(t, "")
	sel.SetPosition(0, 0)
	sel.Focus()
	typeRunes(sel, "l")
	require.True(t, sel.Open())
	require.Greater(t, len(sel.candidates), 1)

	// Candidate rows start one line below the input.
	sendMouse(sel, tea.MouseMsg{X: 4, Y: 2, Action: tea.MouseActionMotion})

	assert.Equal(t, 1, sel.highlight)
	assert.True(t, sel.Open(), "hover never commits")
}

func TestSelector_PointerPressCommitsCandidate(t *testing.T) {
	sel, changes := newTestSelector(t, "")
	sel.SetPosition(0, 0)
	sel.Focus()
	typeRunes(sel, "lisbon")
	require.True(t, sel.Open())
	require.NotEmpty(t, sel.candidates)

	sendMouse(sel, tea.MouseMsg{X: 4, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	assert.False(t, sel.Open())
	assert.Equal(t, "Lisbon (LIS)", sel.Value())
	assert.Equal(t, "Lisbon (LIS)", (*changes)[len(*changes)-1])
}

func TestSelector_OutsideClickCloses(t *testing.T) {
	sel, _ := newTestSelector(t, "")
	sel.SetPosition(0, 0)
	sel.Focus()
	typeRunes(sel, "lis")
	require.True(t, sel.Open())

	sendMouse(sel, tea.MouseMsg{X: 70, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	assert.False(t, sel.Open())
	assert.Equal(t, "lis", sel.Value())
}

func TestSelector_CandidateCap(t *testing.T) {
	sel, _ := newTestSelector(t, "")
	sel.Focus()
	typeRunes(sel, "a")

	assert.LessOrEqual(t, len(sel.candidates), selectorMaxCandidates)
}
