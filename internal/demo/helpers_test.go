package demo

import (
	"errors"
	"testing"
	"time"

	"vibedemo/internal/clock"

	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, 10, 21, 10, 45, 23, 0, time.UTC)

// newTestSession returns a session on a fake clock with a clipboard that
// records what was copied.
func newTestSession(t *testing.T, script Script) (*Session, *clock.FakeClock, *[]string) {
	t.Helper()
	fc := clock.Fake(epoch)
	var copied []string
	s, err := New(script,
		WithClock(fc),
		WithSessionID("test-session"),
		WithCopier(CopierFunc(func(text string) error {
			copied = append(copied, text)
			return nil
		})),
	)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s, fc, &copied
}

// toExperience drives a fresh session to the experience-type choice.
func toExperience(t *testing.T, s *Session) {
	t.Helper()
	require.True(t, s.SubmitLine("vibe"))
	require.True(t, s.CommitSelection())
	require.Equal(t, PhaseExperienceType, s.Phase())
}

// longestDelay is past every timer either built-in script schedules.
func longestDelay(script Script) time.Duration {
	return script.ProvisioningDelay + script.AutoAdvanceDelay +
		script.AssistantDelay + script.ShareIndicatorDelay + time.Second
}

var errNoClipboard = errors.New("no clipboard utilities available")

func clockForTest() *clock.FakeClock { return clock.Fake(epoch) }
