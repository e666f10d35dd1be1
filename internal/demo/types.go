package demo

// =============================================================================
// TERMINAL TRANSCRIPT
// =============================================================================

// LineKind tags a transcript line for styling.
type LineKind string

const (
	LineCommand LineKind = "command" // Echo of something the viewer chose or typed
	LineOutput  LineKind = "output"  // Regular terminal output
	LinePrompt  LineKind = "prompt"  // A scripted question awaiting a selection
)

// Line is one row of the terminal transcript.
type Line struct {
	Kind LineKind `yaml:"kind"`
	Text string   `yaml:"text"`
}

func output(text string) Line  { return Line{Kind: LineOutput, Text: text} }
func command(text string) Line { return Line{Kind: LineCommand, Text: text} }
func prompt(text string) Line  { return Line{Kind: LinePrompt, Text: text} }

// Phase is the terminal script's state. Exactly one is active.
type Phase string

const (
	PhaseIdle           Phase = "idle"
	PhaseProjectType    Phase = "choosing-project-type"
	PhaseExperienceType Phase = "choosing-experience-type"
	PhaseProvisioning   Phase = "provisioning"
)

// Choosing reports whether the phase presents an option list.
func (p Phase) Choosing() bool {
	return p == PhaseProjectType || p == PhaseExperienceType
}

// Option is one entry of a guided selection list.
type Option struct {
	Label    string `yaml:"label"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// Direction moves the selection cursor.
type Direction int

const (
	Next Direction = iota
	Previous
)

// String returns the display name for the direction
func (d Direction) String() string {
	if d == Previous {
		return "previous"
	}
	return "next"
}

// =============================================================================
// WINDOWS
// =============================================================================

// Window names one top-level surface of the simulated desktop.
type Window int

const (
	WindowTerminal Window = iota
	WindowEditor          // Editor + browser pair
	WindowBrowser         // Browser pane, nested under the editor pair
	WindowSearch          // Spotlight-style search overlay
	WindowMessaging       // Messaging overlay
)

func (w Window) String() string {
	names := []string{"terminal", "editor", "browser", "search", "messaging"}
	if int(w) >= 0 && int(w) < len(names) {
		return names[w]
	}
	return "unknown"
}

// Windows holds independent visibility flags. Several may be true at once.
type Windows struct {
	Terminal  bool `yaml:"terminal"`
	Editor    bool `yaml:"editor"`
	Browser   bool `yaml:"browser"`
	Search    bool `yaml:"search"`
	Messaging bool `yaml:"messaging"`
}

// BrowserVisible reports whether the browser pane is actually on screen.
func (w Windows) BrowserVisible() bool {
	return w.Editor && w.Browser
}

// =============================================================================
// ASSISTANT, MESSAGING, SHARE
// =============================================================================

// Speaker identifies who produced an assistant transcript entry.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// Message is one entry of the assistant transcript.
type Message struct {
	Speaker Speaker `yaml:"speaker"`
	Text    string  `yaml:"text"`
}

// ArtifactID selects which static screenshot the browser pane shows.
// Hosts resolve it; the core never looks inside.
type ArtifactID string

// MessagingState is the simulated chat send flow.
type MessagingState struct {
	Draft  string `yaml:"draft"`
	Sent   string `yaml:"sent"`
	IsSent bool   `yaml:"is_sent"`
}

// =============================================================================
// SNAPSHOT
// =============================================================================

// Snapshot is a read-only copy of the session for renderers. Slices are
// copies; mutating them does not affect the session.
type Snapshot struct {
	SessionID string  `yaml:"session_id"`
	Variant   Variant `yaml:"variant"`

	Transcript   []Line   `yaml:"transcript"`
	Phase        Phase    `yaml:"phase"`
	Selection    int      `yaml:"selection"`
	Options      []Option `yaml:"options,omitempty"`
	PendingInput string   `yaml:"pending_input,omitempty"`

	Windows Windows `yaml:"windows"`

	Assistant      []Message  `yaml:"assistant,omitempty"`
	AssistantDraft string     `yaml:"assistant_draft,omitempty"`
	CustomizeMode  bool       `yaml:"customize_mode"`
	Artifact       ArtifactID `yaml:"artifact"`

	Messaging MessagingState `yaml:"messaging"`

	ShareURL    string `yaml:"share_url"`
	ShareCopied bool   `yaml:"share_copied"`

	PendingTimers int `yaml:"pending_timers"`
}
