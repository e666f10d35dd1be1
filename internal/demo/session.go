// Package demo implements the presentation state machine behind the
// scripted vibe-coding desktop demo.
//
// A Session holds all view state for one run: the terminal script, the
// window flags, the assistant chat, the messaging draft and the share
// link. Hosts call its operations from a single goroutine and render
// Snapshot. Timers are scheduled on an injected clock and delivered back
// to that goroutine through a Dispatcher, so a reset cancels them
// cleanly.
package demo

import (
	"errors"

	"vibedemo/internal/clock"
	"vibedemo/internal/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session is the single view-state record. It is not safe for
// concurrent use; all calls, including dispatched timer callbacks, must
// happen on one goroutine.
type Session struct {
	script Script
	staged *Script
	id     string
	logs   loggers
	copier Copier
	timers *timerTable
	closed bool

	term      *terminal
	windows   windowSet
	assistant *assistant
	messenger messenger
	share     shareLink
}

// ErrNoDispatcher is returned by New when timers would fire on a clock
// goroutine with nowhere to deliver them.
var ErrNoDispatcher = errors.New("a dispatcher is required with a real clock")

// loggers holds one logger per component so each maps to its own
// logging category.
type loggers struct {
	session   *zap.Logger
	script    *zap.Logger
	windows   *zap.Logger
	assistant *zap.Logger
	messaging *zap.Logger
	share     *zap.Logger
}

// newLoggers derives component loggers from base. A nil base uses the
// process-wide categories from internal/logging.
func newLoggers(base *zap.Logger, sessionID string) loggers {
	get := func(c logging.Category) *zap.Logger {
		if base != nil {
			return base.Named(string(c)).With(zap.String("session", sessionID))
		}
		return logging.Get(c).With(zap.String("session", sessionID))
	}
	return loggers{
		session:   get(logging.CategorySession),
		script:    get(logging.CategoryScript),
		windows:   get(logging.CategoryWindows),
		assistant: get(logging.CategoryAssistant),
		messaging: get(logging.CategoryMessaging),
		share:     get(logging.CategoryShare),
	}
}

// SessionOption configures a Session.
type SessionOption func(*sessionOptions)

type sessionOptions struct {
	clock     clock.Clock
	dispatch  Dispatcher
	logger    *zap.Logger
	copier    Copier
	sessionID string
}

// WithClock sets the time source. Defaults to clock.Real().
func WithClock(c clock.Clock) SessionOption {
	return func(o *sessionOptions) { o.clock = c }
}

// WithDispatcher sets how timer callbacks reach the owning goroutine.
// Required unless the clock is advanced manually (clock.FakeClock), in
// which case callbacks already run on the caller and are run inline.
func WithDispatcher(d Dispatcher) SessionOption {
	return func(o *sessionOptions) { o.dispatch = d }
}

// WithLogger sets the base logger; each component logs under a child
// named after its category. Defaults to the internal/logging categories.
func WithLogger(l *zap.Logger) SessionOption {
	return func(o *sessionOptions) { o.logger = l }
}

// WithCopier sets the clipboard used for the share link. Defaults to
// SystemClipboard.
func WithCopier(c Copier) SessionOption {
	return func(o *sessionOptions) { o.copier = c }
}

// WithSessionID fixes the session id used in the share URL.
func WithSessionID(id string) SessionOption {
	return func(o *sessionOptions) { o.sessionID = id }
}

// New creates a session at the login banner. The script must be valid.
func New(script Script, opts ...SessionOption) (*Session, error) {
	if err := script.Validate(); err != nil {
		return nil, err
	}

	o := sessionOptions{
		clock:  clock.Real(),
		copier: SystemClipboard,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.dispatch == nil {
		if _, ok := o.clock.(manualClock); !ok {
			return nil, ErrNoDispatcher
		}
		o.dispatch = inlineDispatch
	}
	if o.sessionID == "" {
		o.sessionID = uuid.New().String()
	}

	s := &Session{
		script: script,
		id:     o.sessionID,
		logs:   newLoggers(o.logger, o.sessionID),
		copier: o.copier,
	}
	s.timers = newTimerTable(o.clock, o.dispatch, s.logs.session)
	s.term = newTerminal(&s.script)
	s.assistant = newAssistant(&s.script)
	s.windows.reset()
	s.share.url = shareURL(s.script.ShareBaseURL, s.id)

	s.logs.session.Info("session created", zap.String("variant", string(script.Variant)))
	return s, nil
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Script returns the active script.
func (s *Session) Script() Script { return s.script }

// =============================================================================
// TERMINAL SCRIPT ENGINE
// =============================================================================

// SetPendingInput records the raw text being typed at the idle prompt.
func (s *Session) SetPendingInput(text string) {
	if s.term.phase != PhaseIdle {
		return
	}
	s.term.pendingInput = text
}

// SubmitLine handles a line entered at the idle prompt. Returns false if
// the terminal is not idle or the line is blank.
func (s *Session) SubmitLine(text string) bool {
	if s.closed {
		return false
	}
	recognized, ok := s.term.submit(text)
	if !ok {
		s.logs.script.Debug("submit ignored", zap.String("phase", string(s.term.phase)))
		return false
	}
	s.logs.script.Info("line submitted",
		zap.String("input", normalize(text)),
		zap.Bool("recognized", recognized),
		zap.String("phase", string(s.term.phase)))
	return true
}

// CommitSelection accepts the highlighted option. Returns false outside
// a choosing phase and for disabled options.
func (s *Session) CommitSelection() bool {
	if s.closed {
		return false
	}
	from := s.term.phase
	selection := s.term.selection
	switch s.term.commit() {
	case commitRejected:
		s.logs.script.Debug("commit ignored", zap.String("phase", string(from)))
		return false
	case commitUnavailable:
		s.logs.script.Info("disabled option committed",
			zap.String("phase", string(from)),
			zap.Int("selection", selection))
		return false
	case commitProvisioning:
		s.startProvisioning()
	}
	s.logs.script.Info("selection committed",
		zap.String("from", string(from)),
		zap.String("to", string(s.term.phase)),
		zap.Int("selection", selection))
	return true
}

func (s *Session) startProvisioning() {
	// At most one provisioning timer may be outstanding.
	s.timers.cancelKind(timerProvisioning)
	s.timers.schedule(timerProvisioning, s.script.ProvisioningDelay, s.completeProvisioning)
}

func (s *Session) completeProvisioning() {
	s.term.complete()
	s.logs.script.Info("provisioning complete")
	if s.script.AutoAdvanceDelay > 0 {
		s.timers.schedule(timerAutoAdvance, s.script.AutoAdvanceDelay, func() {
			s.windows.openProjects()
			s.logs.script.Info("auto-advanced to editor")
		})
	}
}

// =============================================================================
// NAVIGATOR
// =============================================================================

// MoveSelection moves the highlighted option, wrapping at both ends.
func (s *Session) MoveSelection(dir Direction) bool {
	if s.closed || !s.term.move(dir) {
		return false
	}
	s.logs.script.Debug("selection moved",
		zap.Stringer("direction", dir),
		zap.Int("selection", s.term.selection))
	return true
}

// Activate commits the highlighted option.
func (s *Session) Activate() bool { return s.CommitSelection() }

// Choose highlights option index and commits it, as a pointer click
// does. Out-of-range indexes are rejected.
func (s *Session) Choose(index int) bool {
	if s.closed || !s.term.phase.Choosing() {
		return false
	}
	if index < 0 || index >= len(s.term.options()) {
		return false
	}
	s.term.selection = index
	return s.CommitSelection()
}

// Clear is the ctrl+l interrupt: transcript and phase return to the
// login banner. Windows, assistant and messaging are untouched. In
// variants that allow clearing mid-script, an outstanding provisioning
// timer is cancelled so its lines never appear.
func (s *Session) Clear() bool {
	if s.closed {
		return false
	}
	from := s.term.phase
	if !s.term.clear() {
		s.logs.script.Debug("clear ignored", zap.String("phase", string(from)))
		return false
	}
	cancelled := s.timers.cancelKind(timerProvisioning)
	s.logs.script.Info("terminal cleared",
		zap.String("from", string(from)),
		zap.Int("cancelled_timers", cancelled))
	return true
}

// =============================================================================
// SESSION RESET AND TEARDOWN
// =============================================================================

// Reset returns every component to its initial state and cancels all
// timers. A script staged with StageScript takes effect here.
func (s *Session) Reset() {
	if s.closed {
		return
	}
	cancelled := s.timers.cancelAll()
	if s.staged != nil {
		s.script = *s.staged
		s.staged = nil
		s.share.url = shareURL(s.script.ShareBaseURL, s.id)
		s.logs.session.Info("staged script applied", zap.String("variant", string(s.script.Variant)))
	}
	s.term.reset()
	s.windows.reset()
	s.assistant.reset()
	s.messenger.reset()
	s.share.copied = false
	s.logs.session.Info("session reset", zap.Int("cancelled_timers", cancelled))
}

// StageScript queues a replacement script for the next Reset. Swapping
// mid-run would strand the current phase.
func (s *Session) StageScript(script Script) error {
	if err := script.Validate(); err != nil {
		return err
	}
	s.staged = &script
	return nil
}

// Close cancels all timers. The session ignores further operations.
func (s *Session) Close() {
	if s.closed {
		return
	}
	cancelled := s.timers.cancelAll()
	s.closed = true
	s.logs.session.Info("session closed", zap.Int("cancelled_timers", cancelled))
}

// PendingTimers returns the number of outstanding one-shot timers.
func (s *Session) PendingTimers() int { return s.timers.count() }

// Provisioning reports whether a provisioning completion is outstanding.
func (s *Session) Provisioning() bool {
	return s.timers.countKind(timerProvisioning) > 0
}

// =============================================================================
// WINDOW VISIBILITY
// =============================================================================

// Show makes a window visible.
func (s *Session) Show(w Window) { s.setWindow(w, true) }

// Hide hides a window.
func (s *Session) Hide(w Window) { s.setWindow(w, false) }

// Toggle flips a window's visibility.
func (s *Session) Toggle(w Window) {
	if s.windows.toggle(w) {
		s.logs.windows.Debug("window toggled", zap.Stringer("window", w))
	}
}

func (s *Session) setWindow(w Window, visible bool) {
	if s.windows.set(w, visible) {
		s.logs.windows.Debug("window set", zap.Stringer("window", w), zap.Bool("visible", visible))
	}
}

// OpenProjectsShortcut hides the terminal and shows the editor pair.
func (s *Session) OpenProjectsShortcut() {
	s.windows.openProjects()
	s.logs.windows.Debug("projects shortcut")
}

// OpenTerminalShortcut shows the terminal and hides the editor pair and
// both overlays.
func (s *Session) OpenTerminalShortcut() {
	s.windows.openTerminal()
	s.logs.windows.Debug("terminal shortcut")
}

// MinimizeTerminal is the terminal's yellow traffic light.
func (s *Session) MinimizeTerminal() { s.OpenProjectsShortcut() }

// =============================================================================
// ASSISTANT
// =============================================================================

// SetAssistantDraft records the text in the assistant prompt box.
func (s *Session) SetAssistantDraft(text string) { s.assistant.draft = text }

// SubmitPrompt sends text to the simulated assistant. The canned reply
// arrives after the script's assistant delay. Blank text is ignored.
func (s *Session) SubmitPrompt(text string) bool {
	if s.closed || !s.assistant.submit(text) {
		return false
	}
	s.timers.schedule(timerAssistant, s.script.AssistantDelay, func() {
		s.assistant.reply()
		s.logs.assistant.Info("assistant replied", zap.String("artifact", string(s.assistant.artifact)))
	})
	s.logs.assistant.Info("prompt submitted", zap.Bool("customize", s.assistant.customize))
	return true
}

// Customize starts the customize-sandbox sub-flow: the assistant
// transcript is cleared and the next reply uses the customize copy.
func (s *Session) Customize() bool {
	if s.closed || !s.assistant.enterCustomize() {
		return false
	}
	// A reply still in flight belongs to the cleared conversation.
	s.timers.cancelKind(timerAssistant)
	s.logs.assistant.Info("customize mode entered")
	return true
}

// =============================================================================
// MESSAGING AND SHARE
// =============================================================================

// SetMessageDraft records the messaging overlay draft.
func (s *Session) SetMessageDraft(text string) { s.messenger.setDraft(text) }

// SendMessage moves the draft to the sent slot. Blank drafts are ignored.
func (s *Session) SendMessage() bool {
	if s.closed || !s.messenger.send() {
		return false
	}
	s.logs.messaging.Info("message sent", zap.Int("length", len(s.messenger.state.Sent)))
	return true
}

// ShareURL returns the link for this session.
func (s *Session) ShareURL() string { return s.share.url }

// CopyShareLink copies the share URL to the clipboard. Failure is logged
// and leaves state untouched; success raises the copied indicator until
// the script's share indicator delay elapses.
func (s *Session) CopyShareLink() bool {
	if s.closed {
		return false
	}
	if err := s.copier.Copy(s.share.url); err != nil {
		s.logs.share.Warn("share link copy failed", zap.Error(err))
		return false
	}
	s.share.copied = true
	s.timers.cancelKind(timerShareIndicator)
	s.timers.schedule(timerShareIndicator, s.script.ShareIndicatorDelay, func() {
		s.share.copied = false
	})
	s.logs.share.Info("share link copied")
	return true
}

// =============================================================================
// SNAPSHOT
// =============================================================================

// Snapshot returns a copy of the view state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		SessionID:      s.id,
		Variant:        s.script.Variant,
		Transcript:     cloneLines(s.term.transcript),
		Phase:          s.term.phase,
		Selection:      s.term.selection,
		Options:        append([]Option(nil), s.term.options()...),
		PendingInput:   s.term.pendingInput,
		Windows:        s.windows.flags,
		Assistant:      append([]Message(nil), s.assistant.transcript...),
		AssistantDraft: s.assistant.draft,
		CustomizeMode:  s.assistant.customize,
		Artifact:       s.assistant.artifact,
		Messaging:      s.messenger.state,
		ShareURL:       s.share.url,
		ShareCopied:    s.share.copied,
		PendingTimers:  s.timers.count(),
	}
}

// Phase returns the current terminal phase.
func (s *Session) Phase() Phase { return s.term.phase }

// TranscriptLen returns the number of transcript lines.
func (s *Session) TranscriptLen() int { return len(s.term.transcript) }
