package desktop

import (
	"vibedemo/internal/demo"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width, 0)
		m.height = max(msg.Height, 0)
		m.layout()

	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.handleKeyMsg(msg)
		cmds = append(cmds, cmd)

	case tea.MouseMsg:
		if !m.mouse {
			return m, nil
		}
		var cmd tea.Cmd
		m, cmd = m.handleMouseMsg(msg)
		cmds = append(cmds, cmd)

	case timerMsg:
		before := m.session.Snapshot().Windows
		if msg.fire != nil {
			msg.fire()
		}
		if before != m.session.Snapshot().Windows {
			m.layout()
		}
		cmds = append(cmds, waitForTimer(m.loop))

	case ScriptReloadedMsg:
		if msg.Err != nil {
			m.statusMessage = "Config reload failed: " + msg.Err.Error()
			break
		}
		if err := m.session.StageScript(msg.Script); err != nil {
			m.statusMessage = "Config reload rejected: " + err.Error()
			break
		}
		m.statusMessage = "Config reloaded. Press ctrl+r to restart with it."
		m.log.Info("script staged from config reload", zap.String("variant", string(msg.Script.Variant)))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.quitting {
		return m, tea.Quit
	}
	m.refresh()
	return m, tea.Batch(cmds...)
}

// restart is the full reset: the session and every host-local field.
func (m Model) restart() Model {
	m.session.Reset()
	m.applyScript(m.session.Script())
	m.termInput.Reset()
	m.prompt.Reset()
	m.search.Reset()
	m.message.Reset()
	m.statusMessage = ""
	m.showHelp = false
	m.layout()
	return m
}

// openWindow runs a window operation and re-lays out if the set of
// visible windows changed.
func (m Model) openWindow(op func()) Model {
	before := m.session.Snapshot().Windows
	op()
	if before != m.session.Snapshot().Windows {
		m.layout()
	}
	return m
}

// submitTerminal sends the terminal input line to the script engine.
func (m Model) submitTerminal() Model {
	line := m.termInput.Value()
	m.termInput.Reset()
	m.session.SubmitLine(line)
	return m
}

// submitPrompt sends the assistant prompt box.
func (m Model) submitPrompt() Model {
	if m.session.SubmitPrompt(m.prompt.Value()) {
		m.prompt.Reset()
	}
	return m
}

// submitSearch acts on the spotlight query: the first matching result
// opens, and the overlay closes.
func (m Model) submitSearch() Model {
	results := searchResults(m.search.Value(), m.script.Overlays)
	if len(results) == 0 {
		return m
	}
	return m.openSearchResult(results[0])
}

func (m Model) openSearchResult(r searchResult) Model {
	m = m.openWindow(func() {
		m.session.Hide(demo.WindowSearch)
		r.open(m.session)
	})
	m.search.Reset()
	return m
}

// sendMessage sends the messaging overlay draft.
func (m Model) sendMessage() Model {
	m.session.SetMessageDraft(m.message.Value())
	if m.session.SendMessage() {
		m.message.Reset()
	}
	return m
}

// copyShareLink copies the share link. A failed copy is logged by the
// session and leaves the view as is.
func (m Model) copyShareLink() Model {
	m.session.CopyShareLink()
	return m
}
