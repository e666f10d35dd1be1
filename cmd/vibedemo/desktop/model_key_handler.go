package desktop

import (
	"vibedemo/internal/demo"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// handleKeyMsg processes all keyboard input for Update. Global shortcuts
// are checked first; everything else goes to the focused surface.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	focus := m.focus()
	m.log.Debug("key", zap.String("key", msg.String()), zap.Stringer("focus", focus))

	// Global Keybindings
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		return m.restart(), nil

	case key.Matches(msg, m.keys.Clear):
		if focus == focusTerminal {
			m.session.Clear()
			m.termInput.Reset()
		}
		return m, nil

	case key.Matches(msg, m.keys.Projects):
		return m.openWindow(m.session.OpenProjectsShortcut), nil

	case key.Matches(msg, m.keys.Terminal):
		return m.openWindow(m.session.OpenTerminalShortcut), nil

	case key.Matches(msg, m.keys.Search):
		m.session.Toggle(demo.WindowSearch)
		m.search.Reset()
		return m, nil

	case key.Matches(msg, m.keys.Messaging):
		m.session.Toggle(demo.WindowMessaging)
		return m, nil

	case key.Matches(msg, m.keys.Customize):
		m.session.Customize()
		m.prompt.Reset()
		return m, nil

	case key.Matches(msg, m.keys.Share):
		return m.copyShareLink(), nil

	case key.Matches(msg, m.keys.Close):
		return m.closeTopmost(), nil

	case msg.Type == tea.KeyF1:
		m.showHelp = !m.showHelp
		m.layout()
		return m, nil
	}

	switch focus {
	case focusMessaging:
		return m.handleMessagingKey(msg)
	case focusSearch:
		return m.handleSearchKey(msg)
	case focusEditor:
		return m.handleEditorKey(msg)
	case focusTerminal:
		return m.handleTerminalKey(msg)
	}

	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		m.layout()
	}
	return m, nil
}

// closeTopmost closes messaging, then search, then the help panel.
func (m Model) closeTopmost() Model {
	w := m.session.Snapshot().Windows
	switch {
	case w.Messaging:
		m.session.Hide(demo.WindowMessaging)
	case w.Search:
		m.session.Hide(demo.WindowSearch)
		m.search.Reset()
	case m.showHelp:
		m.showHelp = false
		m.layout()
	}
	return m
}

func (m Model) handleTerminalKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.session.Phase() {
	case demo.PhaseIdle:
		if key.Matches(msg, m.keys.Enter) {
			return m.submitTerminal(), nil
		}
		var cmd tea.Cmd
		m.termInput, cmd = m.termInput.Update(msg)
		m.session.SetPendingInput(m.termInput.Value())
		return m, cmd

	case demo.PhaseProjectType, demo.PhaseExperienceType:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.session.MoveSelection(demo.Previous)
		case key.Matches(msg, m.keys.Down):
			m.session.MoveSelection(demo.Next)
		case key.Matches(msg, m.keys.Enter):
			m.session.Activate()
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.layout()
		}
		return m, nil
	}

	// Provisioning: the script runs on its own.
	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		m.layout()
	}
	return m, nil
}

func (m Model) handleEditorKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Enter) {
		return m.submitPrompt(), nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	m.session.SetAssistantDraft(m.prompt.Value())
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Enter) {
		return m.submitSearch(), nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) handleMessagingKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Enter) {
		return m.sendMessage(), nil
	}
	var cmd tea.Cmd
	m.message, cmd = m.message.Update(msg)
	m.session.SetMessageDraft(m.message.Value())
	return m, cmd
}
