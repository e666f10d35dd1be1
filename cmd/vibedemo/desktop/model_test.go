package desktop

import (
	"strings"
	"testing"

	"vibedemo/internal/demo"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// WINDOW SIZE MESSAGE TESTS
// =============================================================================

func TestUpdate_WindowSize(t *testing.T) {
	t.Parallel()
	m, _ := NewTestModel(t, demo.GuidedScript())

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 120-iconColumnWidth-4, m.viewport.Width)
}

func TestUpdate_WindowSize_Degenerate(t *testing.T) {
	t.Parallel()
	m, _ := NewTestModel(t, demo.GuidedScript())

	assert.NotPanics(t, func() {
		m = update(t, m, tea.WindowSizeMsg{Width: 0, Height: 0})
		_ = m.View()
		m = update(t, m, tea.WindowSizeMsg{Width: -1, Height: -1})
		_ = m.View()
	})
}

// =============================================================================
// TERMINAL
// =============================================================================

func TestKeyboardEndToEnd(t *testing.T) {
	t.Parallel()
	script := demo.GuidedScript()
	m, rig := NewTestModel(t, script)
	seed := m.session.TranscriptLen()

	m = typeText(t, m, "Vibe")
	assert.Equal(t, "Vibe", m.session.Snapshot().PendingInput)
	m = press(t, m, tea.KeyEnter)
	assert.Equal(t, seed+4, m.session.TranscriptLen())
	assert.Equal(t, demo.PhaseProjectType, m.session.Phase())
	assert.Empty(t, m.termInput.Value())

	m = press(t, m, tea.KeyEnter)
	assert.Equal(t, demo.PhaseExperienceType, m.session.Phase())

	m = press(t, m, tea.KeyDown, tea.KeyDown)
	assert.Equal(t, 2, m.session.Snapshot().Selection)

	m = press(t, m, tea.KeyEnter)
	assert.Equal(t, demo.PhaseProvisioning, m.session.Phase())
	assert.Contains(t, ansi.Strip(m.renderTranscript()), provisioningNotice)

	rig.clock.Advance(script.ProvisioningDelay)
	assert.Equal(t, demo.PhaseIdle, m.session.Phase())

	rig.clock.Advance(script.AutoAdvanceDelay)
	w := m.session.Snapshot().Windows
	assert.False(t, w.Terminal)
	assert.True(t, w.Editor)
	assert.Equal(t, focusEditor, m.focus())
}

func TestUnknownCommand(t *testing.T) {
	t.Parallel()
	m, _ := NewTestModel(t, demo.ClassicScript())

	m = typeText(t, m, "LS")
	m = press(t, m, tea.KeyEnter)

	snap := m.session.Snapshot()
	assert.Equal(t, demo.PhaseIdle, snap.Phase)
	assert.Empty(t, snap.PendingInput)
	assert.Contains(t, snap.Transcript, demo.Line{Kind: demo.LineOutput, Text: "zsh: command not found: ls"})
}

func TestSelectionVimKeys(t *testing.T) {
	t.Parallel()
	m, _ := NewTestModel(t, demo.ClassicScript())
	m = toExperience(t, m)

	m = typeText(t, m, "j")
	assert.Equal(t, 1, m.session.Snapshot().Selection)
	m = typeText(t, m, "k")
	m = typeText(t, m, "k")
	assert.Equal(t, 2, m.session.Snapshot().Selection)
	m = press(t, m, tea.KeyUp)
	assert.Equal(t, 1, m.session.Snapshot().Selection)
}

func TestDisabledOptionShowsNotice(t *testing.T) {
	t.Parallel()
	m, _ := NewTestModel(t, demo.ClassicScript())
	m = typeText(t, m, "vibe")
	m = press(t, m, tea.KeyEnter, tea.KeyDown, tea.KeyEnter)

	snap := m.session.Snapshot()
	assert.Equal(t, demo.PhaseProjectType, snap.Phase)
	assert.Equal(t, demo.ClassicScript().UnavailableLine, snap.Transcript[len(snap.Transcript)-1].Text)
	assert.Contains(t, ansi.Strip(m.renderTranscript()), "Continuing on something (coming soon)")
}

func TestClearKeyCancelsProvisioning(t *testing.T) {
	t.Parallel()
	script := demo.ClassicScript()
	m, rig := NewTestModel(t, script)
	m = toExperience(t, m)
	m = press(t, m, tea.KeyEnter)
	require.Equal(t, demo.PhaseProvisioning, m.session.Phase())

	m = press(t, m, tea.KeyCtrlL)
	rig.clock.Advance(script.ProvisioningDelay)

	snap := m.session.Snapshot()
	assert.Equal(t, demo.PhaseIdle, snap.Phase)
	assert.Len(t, snap.Transcript, 2)
}

func TestResetKey(t *testing.T) {
	t.Parallel()
	m, rig := NewTestModel(t, demo.GuidedScript())
	initial := m.session.Snapshot()

	m = toExperience(t, m)
	m = press(t, m, tea.KeyEnter, tea.KeyCtrlO)
	m = typeText(t, m, "half a prompt")
	m.statusMessage = "stale"

	m = press(t, m, tea.KeyCtrlR)
	rig.clock.Advance(time20s)

	assert.Equal(t, initial, m.session.Snapshot())
	assert.Empty(t, m.prompt.Value())
	assert.Empty(t, m.statusMessage)
	assert.Equal(t, focusTerminal, m.focus())
}

func TestQuitKey(t *testing.T) {
	t.Parallel()
	m, _ := NewTestModel(t, demo.GuidedScript())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.(Model).View())
}

// =============================================================================
// EDITOR
// =============================================================================

func TestAssistantPrompt(t *testing.T) {
	t.Parallel()
	script := demo.ClassicScript()
	m, rig := NewTestModel(t, script)

	m = press(t, m, tea.KeyCtrlO)
	require.Equal(t, focusEditor, m.focus())

	m = typeText(t, m, "make the heading larger")
	assert.Equal(t, "make the heading larger", m.session.Snapshot().AssistantDraft)
	m = press(t, m, tea.KeyEnter)
	assert.Empty(t, m.prompt.Value())

	rig.clock.Advance(script.AssistantDelay)
	snap := m.session.Snapshot()
	require.Len(t, snap.Assistant, 2)
	assert.Equal(t, demo.ArtifactStorefrontHeading, snap.Artifact)
}

func TestBlankPromptIgnored(t *testing.T) {
	t.Parallel()
	m, _ := NewTestModel(t, demo.ClassicScript())
	m = press(t, m, tea.KeyCtrlO)
	m = typeText(t, m, "   ")
	m = press(t, m, tea.KeyEnter)

	assert.Empty(t, m.session.Snapshot().Assistant)
	assert.Zero(t, m.session.PendingTimers())
}

func TestCustomizeKey(t *testing.T) {
	t.Parallel()

	t.Run("guided", func(t *testing.T) {
		m, _ := NewTestModel(t, demo.GuidedScript())
		m = press(t, m, tea.KeyCtrlO, tea.KeyCtrlE)
		assert.True(t, m.session.Snapshot().CustomizeMode)
	})

	t.Run("classic", func(t *testing.T) {
		m, _ := NewTestModel(t, demo.ClassicScript())
		m = press(t, m, tea.KeyCtrlO, tea.KeyCtrlE)
		assert.False(t, m.session.Snapshot().CustomizeMode)
	})
}

// =============================================================================
// OVERLAYS
// =============================================================================

func TestSearchOverlay(t *testing.T) {
	t.Parallel()
	m, _ := NewTestModel(t, demo.GuidedScript())
	m = press(t, m, tea.KeyCtrlO)

	m = press(t, m, tea.KeyCtrlF)
	require.True(t, m.session.Snapshot().Windows.Search)
	assert.Equal(t, focusSearch, m.focus())

	m = typeText(t, m, "term")
	assert.Len(t, searchResults(m.search.Value(), true), 1)
	m = press(t, m, tea.KeyEnter)

	w := m.session.Snapshot().Windows
	assert.False(t, w.Search)
	assert.True(t, w.Terminal)
	assert.False(t, w.Editor)
}

func TestSearchDisabledInClassic(t *testing.T) {
	t.Parallel()
	m, _ := NewTestModel(t, demo.ClassicScript())
	m = press(t, m, tea.KeyCtrlF, tea.KeyCtrlG)

	w := m.session.Snapshot().Windows
	assert.False(t, w.Search)
	assert.False(t, w.Messaging)
}

func TestMessagingOverlay(t *testing.T) {
	t.Parallel()
	script := demo.GuidedScript()
	m, rig := NewTestModel(t, script)

	m = press(t, m, tea.KeyCtrlG)
	require.Equal(t, focusMessaging, m.focus())

	m = typeText(t, m, "come see my sandbox")
	m = press(t, m, tea.KeyEnter)
	assert.Equal(t, demo.MessagingState{Sent: "come see my sandbox", IsSent: true}, m.session.Snapshot().Messaging)

	m = press(t, m, tea.KeyCtrlY)
	assert.Equal(t, []string{"https://vibe.example.dev/s/desk"}, rig.copied)
	assert.True(t, m.session.Snapshot().ShareCopied)
	assert.Contains(t, ansi.Strip(m.View()), "Copied!")

	rig.clock.Advance(script.ShareIndicatorDelay)
	assert.False(t, m.session.Snapshot().ShareCopied)

	m = press(t, m, tea.KeyEsc)
	assert.False(t, m.session.Snapshot().Windows.Messaging)
}

func TestShareCopyFailure(t *testing.T) {
	t.Parallel()
	m, rig := NewTestModel(t, demo.GuidedScript())
	rig.fail = true

	m = press(t, m, tea.KeyCtrlG)
	before := ansi.Strip(m.View())
	status := m.statusMessage

	m = press(t, m, tea.KeyCtrlY)

	assert.False(t, m.session.Snapshot().ShareCopied)
	assert.Equal(t, status, m.statusMessage)
	assert.Equal(t, before, ansi.Strip(m.View()))
	assert.Empty(t, rig.copied)
}

func TestEscClosesTopmostFirst(t *testing.T) {
	t.Parallel()
	m, _ := NewTestModel(t, demo.GuidedScript())
	m = press(t, m, tea.KeyCtrlF, tea.KeyCtrlG)

	m = press(t, m, tea.KeyEsc)
	w := m.session.Snapshot().Windows
	assert.False(t, w.Messaging)
	assert.True(t, w.Search)

	m = press(t, m, tea.KeyEsc)
	assert.False(t, m.session.Snapshot().Windows.Search)
}

// =============================================================================
// MOUSE
// =============================================================================

func TestClickZones(t *testing.T) {
	t.Parallel()
	m, _ := NewTestModel(t, demo.ClassicScript())
	m = typeText(t, m, "vibe")
	m = press(t, m, tea.KeyEnter)

	m = m.clickZone(optionZoneID(0))
	require.Equal(t, demo.PhaseExperienceType, m.session.Phase())
	m = m.clickZone(optionZoneID(1))
	assert.Equal(t, demo.PhaseProvisioning, m.session.Phase())
	assert.Contains(t, m.session.Snapshot().Transcript, demo.Line{Kind: demo.LineCommand, Text: "> Retail experience"})

	m = m.clickZone(zoneTermMinimize)
	w := m.session.Snapshot().Windows
	assert.False(t, w.Terminal)
	assert.True(t, w.Editor)

	m = m.clickZone(zoneBrowserClose)
	assert.False(t, m.session.Snapshot().Windows.BrowserVisible())

	m = m.clickZone(zoneIconDisk)
	assert.Equal(t, demo.PhaseIdle, m.session.Phase())
	assert.Equal(t, demo.Windows{Terminal: true, Browser: true}, m.session.Snapshot().Windows)
}

func TestClickMessagingZones(t *testing.T) {
	t.Parallel()
	m, rig := NewTestModel(t, demo.GuidedScript())

	m = m.clickZone(zoneIconMessages)
	require.True(t, m.session.Snapshot().Windows.Messaging)
	require.True(t, m.message.Focused(), "opening the overlay by click focuses its draft")
	m = typeText(t, m, "hi")
	m = m.clickZone(zoneMessageSend)
	assert.True(t, m.session.Snapshot().Messaging.IsSent)

	m = m.clickZone(zoneMessageShare)
	assert.Len(t, rig.copied, 1)

	m = m.clickZone(zoneMessageClose)
	assert.False(t, m.session.Snapshot().Windows.Messaging)
}

func TestClickSearchResult(t *testing.T) {
	t.Parallel()
	m, _ := NewTestModel(t, demo.GuidedScript())
	m = m.clickZone(zoneMenuSearch)
	require.True(t, m.session.Snapshot().Windows.Search)

	// Empty query lists Cursor, Terminal, Messages.
	m = m.clickZone(searchZoneID(2))
	w := m.session.Snapshot().Windows
	assert.False(t, w.Search)
	assert.True(t, w.Messaging)
}

func TestMouseDisabled(t *testing.T) {
	t.Parallel()
	m, _ := NewTestModel(t, demo.GuidedScript())
	m.mouse = false

	next, cmd := m.Update(tea.MouseMsg{X: 1, Y: 2, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	assert.Nil(t, cmd)
	assert.Equal(t, m.session.Snapshot(), next.(Model).session.Snapshot())
}

func TestZoneIndex(t *testing.T) {
	t.Parallel()
	i, ok := zoneIndex(optionZoneID(12), zoneOptionPrefix)
	assert.True(t, ok)
	assert.Equal(t, 12, i)

	_, ok = zoneIndex("option-x", zoneOptionPrefix)
	assert.False(t, ok)
	_, ok = zoneIndex(zoneIconDisk, zoneOptionPrefix)
	assert.False(t, ok)
}

// =============================================================================
// MESSAGES
// =============================================================================

func TestTimerMsgRunsCallback(t *testing.T) {
	t.Parallel()
	m, _ := NewTestModel(t, demo.GuidedScript())

	fired := false
	_, cmd := m.Update(timerMsg{fire: func() { fired = true }})
	assert.True(t, fired)
	assert.NotNil(t, cmd, "must keep waiting for the next timer")
}

func TestScriptReloadStagesUntilReset(t *testing.T) {
	t.Parallel()
	m, _ := NewTestModel(t, demo.GuidedScript())
	classic := demo.ClassicScript()

	m = update(t, m, ScriptReloadedMsg{Script: classic})
	assert.Contains(t, m.statusMessage, "ctrl+r")
	assert.Equal(t, demo.VariantGuided, m.session.Snapshot().Variant)
	assert.True(t, m.keys.Search.Enabled())

	m = press(t, m, tea.KeyCtrlR)
	assert.Equal(t, demo.VariantClassic, m.session.Snapshot().Variant)
	assert.False(t, m.keys.Search.Enabled())
	assert.False(t, m.keys.Customize.Enabled())
}

func TestScriptReloadError(t *testing.T) {
	t.Parallel()
	m, _ := NewTestModel(t, demo.GuidedScript())

	m = update(t, m, ScriptReloadedMsg{Err: errClipboard})
	assert.True(t, strings.HasPrefix(m.statusMessage, "Config reload failed"))

	bad := demo.ClassicScript()
	bad.Trigger = ""
	m = update(t, m, ScriptReloadedMsg{Script: bad})
	assert.True(t, strings.HasPrefix(m.statusMessage, "Config reload rejected"))
}

// =============================================================================
// VIEW
// =============================================================================

func TestViewShowsDesktop(t *testing.T) {
	t.Parallel()
	m, _ := NewTestModel(t, demo.GuidedScript())
	m = update(t, m, tea.WindowSizeMsg{Width: 140, Height: 45})

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Macintosh HD")
	assert.Contains(t, view, "Projects")
	assert.Contains(t, view, "Messages")
	assert.Contains(t, view, ShellPrompt)
	assert.Contains(t, view, "Last login: Tue Oct 21 10:45:23 on ttys001")
}

func TestViewClassicHasNoOverlayIcons(t *testing.T) {
	t.Parallel()
	m, _ := NewTestModel(t, demo.ClassicScript())
	m = update(t, m, tea.WindowSizeMsg{Width: 140, Height: 45})

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Macintosh HD")
	assert.NotContains(t, view, "Messages")
}

func TestViewEditorShowsArtifact(t *testing.T) {
	t.Parallel()
	m, _ := NewTestModel(t, demo.GuidedScript())
	m = update(t, m, tea.WindowSizeMsg{Width: 160, Height: 50})
	m = press(t, m, tea.KeyCtrlO)

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Welcome back, Supper Club")
	assert.Contains(t, view, "Cursor Agent")
	assert.Contains(t, view, "Customize sandbox")
}

func TestHelpToggle(t *testing.T) {
	t.Parallel()
	m, _ := NewTestModel(t, demo.GuidedScript())

	m = press(t, m, tea.KeyF1)
	assert.True(t, m.showHelp)
	m = press(t, m, tea.KeyEsc)
	assert.False(t, m.showHelp)
}
