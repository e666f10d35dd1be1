package demo

import "fmt"

// terminal owns the transcript, phase, selection index and pending
// input. Only the script engine and navigator operations on Session
// touch it.
type terminal struct {
	script *Script

	transcript   []Line
	phase        Phase
	selection    int
	pendingInput string
}

func newTerminal(script *Script) *terminal {
	t := &terminal{script: script}
	t.reset()
	return t
}

func (t *terminal) reset() {
	t.transcript = cloneLines(t.script.Seed)
	t.phase = PhaseIdle
	t.selection = 0
	t.pendingInput = ""
}

func (t *terminal) append(lines ...Line) {
	t.transcript = append(t.transcript, lines...)
}

func (t *terminal) setPhase(p Phase) {
	t.phase = p
	t.selection = 0
}

// options returns the option list for the current phase.
func (t *terminal) options() []Option {
	switch t.phase {
	case PhaseProjectType:
		return t.script.ProjectTypes
	case PhaseExperienceType:
		return t.script.ExperienceTypes
	default:
		return nil
	}
}

// submit handles a line typed while idle. Returns false when the call
// violated its precondition or the line was blank.
func (t *terminal) submit(text string) (recognized, ok bool) {
	if t.phase != PhaseIdle {
		return false, false
	}
	t.pendingInput = ""
	normalized := normalize(text)
	if normalized == "" {
		return false, false
	}

	if normalized == t.script.normalizedTrigger() {
		t.append(t.script.StartLines...)
		t.append(prompt(t.script.ProjectPrompt))
		t.setPhase(PhaseProjectType)
		return true, true
	}

	t.append(
		output(""),
		output(fmt.Sprintf(t.script.UnknownCommand, normalized)),
		output(""),
	)
	return false, true
}

// move wraps the selection in either direction.
func (t *terminal) move(dir Direction) bool {
	n := len(t.options())
	if !t.phase.Choosing() || n == 0 {
		return false
	}
	delta := 1
	if dir == Previous {
		delta = -1
	}
	t.selection = (t.selection + delta + n) % n
	return true
}

// commitResult tells the session what side effects a commit needs.
type commitResult int

const (
	commitRejected commitResult = iota
	commitUnavailable
	commitAdvanced
	commitProvisioning
)

func (t *terminal) commit() commitResult {
	opts := t.options()
	if !t.phase.Choosing() || len(opts) == 0 {
		return commitRejected
	}
	selected := opts[t.selection]
	if selected.Disabled {
		t.append(output(t.script.UnavailableLine))
		return commitUnavailable
	}

	switch t.phase {
	case PhaseProjectType:
		t.append(
			command("> "+selected.Label),
			prompt(t.script.ExperiencePrompt),
		)
		t.setPhase(PhaseExperienceType)
		return commitAdvanced

	case PhaseExperienceType:
		t.append(command("> " + selected.Label))
		t.append(t.script.PreparingLines...)
		t.setPhase(PhaseProvisioning)
		return commitProvisioning
	}
	return commitRejected
}

// complete appends the completion lines and returns to idle.
func (t *terminal) complete() {
	t.append(t.script.CompleteLines...)
	t.setPhase(PhaseIdle)
}

// clear restricts a reset to transcript and phase.
func (t *terminal) clear() bool {
	if t.phase != PhaseIdle && !t.script.ClearAnyPhase {
		return false
	}
	t.reset()
	return true
}
