package demo

import "strings"

// assistant owns the chat transcript, draft, customize flag and the
// artifact shown in the browser pane.
type assistant struct {
	script *Script

	transcript []Message
	draft      string
	customize  bool
	artifact   ArtifactID
}

func newAssistant(script *Script) *assistant {
	a := &assistant{script: script}
	a.reset()
	return a
}

func (a *assistant) reset() {
	a.transcript = nil
	a.draft = ""
	a.customize = false
	a.artifact = a.script.DefaultArtifact
}

// submit appends the user's prompt. The reply is scheduled by the session.
func (a *assistant) submit(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	a.transcript = append(a.transcript, Message{Speaker: SpeakerUser, Text: text})
	a.draft = ""
	return true
}

// reply appends the canned response for the current mode and swaps the
// artifact. Customize mode is consumed by the reply.
func (a *assistant) reply() {
	text, artifact := a.script.AssistantReply, a.script.ReplyArtifact
	if a.customize {
		text, artifact = a.script.CustomizeReply, a.script.CustomizeArtifact
		a.customize = false
	}
	a.transcript = append(a.transcript, Message{Speaker: SpeakerAssistant, Text: text})
	a.artifact = artifact
}

func (a *assistant) enterCustomize() bool {
	if !a.script.CustomizeEnabled {
		return false
	}
	a.transcript = nil
	a.customize = true
	return true
}
