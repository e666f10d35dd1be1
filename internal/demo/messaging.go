package demo

import "strings"

type messenger struct {
	state MessagingState
}

func (m *messenger) reset() { m.state = MessagingState{} }

func (m *messenger) setDraft(text string) { m.state.Draft = text }

func (m *messenger) send() bool {
	if strings.TrimSpace(m.state.Draft) == "" {
		return false
	}
	m.state.Sent = m.state.Draft
	m.state.IsSent = true
	m.state.Draft = ""
	return true
}
