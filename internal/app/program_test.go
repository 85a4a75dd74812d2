package app

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/shelf/internal/ui/action"
	"github.com/llehouerou/shelf/internal/ui/filterbar"
	"github.com/llehouerou/shelf/internal/ui/testutil"
	"github.com/llehouerou/shelf/internal/view"
)

// runProgram drives m through the bubbletea runtime: msgs are delivered in
// order from another goroutine, then the program quits.
func runProgram(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	p := tea.NewProgram(m,
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)
	go func() {
		for _, msg := range msgs {
			p.Send(msg)
		}
		p.Quit()
	}()

	final, err := p.Run()
	require.NoError(t, err)
	out, ok := final.(Model)
	require.True(t, ok)
	out.Close()
	return out
}

func keystrokes(text string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(text))
	for _, r := range text {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

func TestProgram_FilterFollowsKeystrokes(t *testing.T) {
	for range 20 {
		m := New(Options{Fetcher: &fakeFetcher{items: products()}, NotificationDuration: time.Millisecond})

		msgs := []tea.Msg{tea.WindowSizeMsg{Width: 120, Height: 30}, testutil.Key("/")}
		msgs = append(msgs, keystrokes("clothingx")...)
		msgs = append(msgs, testutil.Key("backspace"))

		final := runProgram(t, m, msgs...)

		require.Equal(t, "clothing", final.filter.Value())
		require.Equal(t, final.filter.Value(), final.State().FilterText)
		s := final.State()
		assert.Equal(t, ids(view.Derive(s.Collection, s.FilterText, s.Sort)), ids(s.Derived))
	}
}

func TestProgram_SortAndFilterBurst(t *testing.T) {
	m := New(Options{Fetcher: &fakeFetcher{items: products()}, NotificationDuration: time.Millisecond})

	msgs := keystrokes("pp")
	msgs = append(msgs, testutil.Key("/"))
	msgs = append(msgs, keystrokes("men")...)
	msgs = append(msgs, testutil.Key("esc"), testutil.Key("3"))

	final := runProgram(t, m, msgs...)

	s := final.State()
	assert.Equal(t, FocusList, final.focus)
	assert.Equal(t, "men", s.FilterText, "keys after esc are not typed into the filter")
	assert.Equal(t, view.SortConfig{Key: view.SortCategory, Dir: view.Ascending}, s.Sort)
	if s.Phase == view.PhaseReady {
		assert.Equal(t, []int64{3, 1, 2}, ids(s.Derived))
	}
}

func TestFilter_LateDoneKeepsReopenedFilter(t *testing.T) {
	m := loaded(t, &fakeFetcher{items: products()})

	next, _ := m.Update(testutil.Key("/"))
	m = next.(Model) //nolint:forcetypeassert // test
	next, _ = m.Update(testutil.Key("esc"))
	m = next.(Model) //nolint:forcetypeassert // test
	require.Equal(t, FocusList, m.focus, "focus moves back without waiting for Done")

	next, _ = m.Update(testutil.Key("/"))
	m = next.(Model) //nolint:forcetypeassert // test
	m = step(t, m, action.Msg{Source: "filterbar", Action: filterbar.Done{}})
	assert.Equal(t, FocusFilter, m.focus)
	assert.True(t, m.filter.IsFocused())
}
