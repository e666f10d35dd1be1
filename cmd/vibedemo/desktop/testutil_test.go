package desktop

import (
	"errors"
	"testing"
	"time"

	"vibedemo/cmd/vibedemo/ui"
	"vibedemo/internal/clock"
	"vibedemo/internal/demo"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

var errClipboard = errors.New("clipboard unavailable")

type testRig struct {
	clock  *clock.FakeClock
	copied []string
	fail   bool
}

// NewTestModel builds a desktop on a fake clock with a recording
// clipboard.
func NewTestModel(t *testing.T, script demo.Script) (Model, *testRig) {
	t.Helper()
	rig := &testRig{clock: clock.Fake(time.Date(2025, 10, 21, 10, 45, 0, 0, time.UTC))}
	m, err := New(Options{
		Script:    script,
		Styles:    ui.NewStyles(ui.LightTheme()),
		Mouse:     true,
		Clock:     rig.clock,
		SessionID: "desk",
		Copier: demo.CopierFunc(func(text string) error {
			if rig.fail {
				return errClipboard
			}
			rig.copied = append(rig.copied, text)
			return nil
		}),
	})
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return m, rig
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// typeText sends s as a single runes key press.
func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func press(t *testing.T, m Model, keys ...tea.KeyType) Model {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, tea.KeyMsg{Type: k})
	}
	return m
}

// toExperience types the trigger and accepts the first project type.
func toExperience(t *testing.T, m Model) Model {
	t.Helper()
	m = typeText(t, m, "vibe")
	m = press(t, m, tea.KeyEnter, tea.KeyEnter)
	require.Equal(t, demo.PhaseExperienceType, m.session.Phase())
	return m
}

// time20s is past every built-in delay.
const time20s = 20 * time.Second
