// Package desktop is the interactive host for the vibe-coding demo. It
// renders a demo.Session as a simulated desktop in the terminal and maps
// keys and clicks onto session operations.
package desktop

import (
	"fmt"

	"vibedemo/internal/demo"
	"vibedemo/internal/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"
)

// New creates the desktop model and its session.
func New(opts Options) (Model, error) {
	var sessionOpts []demo.SessionOption
	log := logging.Get(logging.CategoryInput)
	if opts.Logger != nil {
		sessionOpts = append(sessionOpts, demo.WithLogger(opts.Logger))
		log = opts.Logger.Named(string(logging.CategoryInput))
	}

	loop := demo.NewLoop()
	if opts.Clock != nil {
		sessionOpts = append(sessionOpts, demo.WithClock(opts.Clock))
	} else {
		sessionOpts = append(sessionOpts, demo.WithDispatcher(loop.Dispatch))
	}
	if opts.Copier != nil {
		sessionOpts = append(sessionOpts, demo.WithCopier(opts.Copier))
	}
	if opts.SessionID != "" {
		sessionOpts = append(sessionOpts, demo.WithSessionID(opts.SessionID))
	}

	session, err := demo.New(opts.Script, sessionOpts...)
	if err != nil {
		loop.Close()
		return Model{}, fmt.Errorf("failed to create session: %w", err)
	}

	termInput := textinput.New()
	termInput.Prompt = ""
	termInput.Placeholder = "type vibe and press enter"

	prompt := textarea.New()
	prompt.Placeholder = "Plan, search, build anything"
	prompt.ShowLineNumbers = false
	prompt.SetHeight(2)
	prompt.CharLimit = 500
	prompt.KeyMap.InsertNewline.SetEnabled(false)

	search := textinput.New()
	search.Prompt = "🔍 "
	search.Placeholder = "Spotlight Search"

	message := textinput.New()
	message.Prompt = "› "
	message.Placeholder = "iMessage"

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = opts.Styles.Spinner

	m := Model{
		session:   session,
		loop:      loop,
		log:       log,
		styles:    opts.Styles,
		keys:      defaultKeyMap(),
		help:      help.New(),
		zones:     zone.New(),
		mouse:     opts.Mouse,
		termInput: termInput,
		prompt:    prompt,
		search:    search,
		message:   message,
		spinner:   sp,
		viewport:  viewport.New(80, 10),
		width:     100,
		height:    30,
	}
	m.applyScript(session.Script())
	m.layout()
	m.refresh()
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForTimer(m.loop), m.spinner.Tick, textinput.Blink)
}

// Session returns the underlying session.
func (m Model) Session() *demo.Session { return m.session }

// Close tears the session down and releases the timer loop.
func (m Model) Close() {
	m.session.Close()
	m.loop.Close()
	m.zones.Close()
}

// waitForTimer blocks until the session dispatches a timer callback.
func waitForTimer(loop *demo.Loop) tea.Cmd {
	return func() tea.Msg {
		select {
		case fn := <-loop.Next():
			return timerMsg{fire: fn}
		case <-loop.Done():
			return nil
		}
	}
}

// applyScript picks up the variant's affordances after New or a reset
// that swapped the script.
func (m *Model) applyScript(script demo.Script) {
	m.script = script
	m.keys.applyScript(script.Overlays, script.CustomizeEnabled)
}

// =============================================================================
// LAYOUT
// =============================================================================

// windowSizes returns the outer size of each visible window.
func (m Model) windowSizes() (mainWidth, termHeight, editorHeight int) {
	mainWidth = m.width - iconColumnWidth
	body := m.height - menuBarHeight - footerHeight
	if m.showHelp {
		body -= 4
	}
	if mainWidth < minWidth {
		mainWidth = minWidth
	}
	if body < minHeight {
		body = minHeight
	}

	w := m.session.Snapshot().Windows
	switch {
	case w.Terminal && w.Editor:
		termHeight = body / 2
		editorHeight = body - termHeight
	case w.Terminal:
		termHeight = body
	case w.Editor:
		editorHeight = body
	}
	return mainWidth, termHeight, editorHeight
}

// paneWidths splits the editor pair between browser and Cursor panes.
func (m Model) paneWidths(mainWidth int, browser bool) (browserWidth, cursorWidth int) {
	if !browser {
		return 0, mainWidth
	}
	browserWidth = mainWidth * 3 / 5
	return browserWidth, mainWidth - browserWidth
}

// layout resizes the sub-components for the current window size.
func (m *Model) layout() {
	mainWidth, termHeight, _ := m.windowSizes()

	// Border (2) + padding (2); title bar (1) + border (2).
	m.viewport.Width = max(mainWidth-4, 1)
	m.viewport.Height = max(termHeight-3, 1)
	m.termInput.Width = max(m.viewport.Width-len(ShellPrompt)-2, 1)

	_, cursorWidth := m.paneWidths(mainWidth, m.session.Snapshot().Windows.Browser)
	m.prompt.SetWidth(max(cursorWidth-4, 10))
	m.help.Width = m.width

	wrap := max(cursorWidth-6, 20)
	style := "light"
	if m.styles.Theme.IsDark {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		m.log.Warn("markdown renderer unavailable", zap.Error(err))
		renderer = nil
	}
	m.renderer = renderer
}

// refresh re-projects the session into the viewport and moves keyboard
// focus to whichever surface owns it now.
func (m *Model) refresh() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()

	snap := m.session.Snapshot()
	focus := m.focus()
	setFocus(&m.termInput, focus == focusTerminal && snap.Phase == demo.PhaseIdle)
	setFocus(&m.search, focus == focusSearch)
	setFocus(&m.message, focus == focusMessaging)
	if focus == focusEditor {
		m.prompt.Focus()
	} else {
		m.prompt.Blur()
	}
}

func setFocus(in *textinput.Model, focused bool) {
	if focused {
		in.Focus()
		return
	}
	in.Blur()
}

// focus returns the surface that owns text and selection keys.
func (m Model) focus() focusTarget {
	w := m.session.Snapshot().Windows
	switch {
	case w.Messaging && m.script.Overlays:
		return focusMessaging
	case w.Search && m.script.Overlays:
		return focusSearch
	case w.Editor:
		return focusEditor
	case w.Terminal:
		return focusTerminal
	}
	return focusDesktop
}
