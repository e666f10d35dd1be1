package desktop

import (
	"vibedemo/cmd/vibedemo/ui"
	"vibedemo/internal/clock"
	"vibedemo/internal/demo"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"
)

const (
	iconColumnWidth = 16
	menuBarHeight   = 1
	footerHeight    = 1
	minWidth        = 40
	minHeight       = 12

	// ShellPrompt is the idle prompt of the simulated terminal.
	ShellPrompt = "john.intrater@john-intrater-CQ2TQF7VVF ~ %"

	provisioningNotice = "Setting up your environment. This will likely take 3-5 minutes."
)

// =============================================================================
// CONFIGURATION
// =============================================================================

// Options configures a desktop Model.
type Options struct {
	Script demo.Script
	Styles ui.Styles
	Mouse  bool

	// Logger replaces the logging categories; the session and input
	// routing log under named children of it.
	Logger *zap.Logger

	// Copier overrides the system clipboard.
	Copier demo.Copier

	// Clock overrides the real clock. A non-nil Clock must run its
	// callbacks on the Update goroutine (clock.FakeClock under test), so
	// the session dispatches them inline instead of through the loop.
	Clock clock.Clock

	// SessionID fixes the share link id.
	SessionID string
}

// focusTarget is the surface that receives text and selection keys.
// Overlays win over windows: messaging, search, editor, terminal.
type focusTarget int

const (
	focusDesktop focusTarget = iota
	focusTerminal
	focusEditor
	focusSearch
	focusMessaging
)

// String returns the display name for the focus target
func (f focusTarget) String() string {
	names := []string{"desktop", "terminal", "editor", "search", "messaging"}
	if int(f) < len(names) {
		return names[f]
	}
	return "unknown"
}

// Zone ids for clickable regions.
const (
	zoneIconDisk     = "icon-disk"
	zoneIconProjects = "icon-projects"
	zoneIconTerminal = "icon-terminal"
	zoneIconMessages = "icon-messages"
	zoneMenuSearch   = "menu-search"
	zoneTermClose    = "term-close"
	zoneTermMinimize = "term-minimize"
	zoneEditorClose  = "editor-close"
	zoneBrowserClose = "browser-close"
	zoneCustomize    = "customize"
	zoneSearchClose  = "search-close"
	zoneMessageSend  = "message-send"
	zoneMessageShare = "message-share"
	zoneMessageClose = "message-close"
	zoneOptionPrefix = "option-"
	zoneSearchPrefix = "search-result-"
)

// =============================================================================
// MESSAGES
// =============================================================================

// timerMsg carries a session timer callback onto the Update goroutine.
type timerMsg struct {
	fire func()
}

// ScriptReloadedMsg reports a config reload. The script is staged and
// takes effect on the next restart.
type ScriptReloadedMsg struct {
	Script demo.Script
	Err    error
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the bubbletea model projecting a demo.Session onto a
// simulated desktop.
type Model struct {
	session *demo.Session
	loop    *demo.Loop
	script  demo.Script
	log     *zap.Logger

	styles   ui.Styles
	keys     keyMap
	help     help.Model
	zones    *zone.Manager
	renderer *glamour.TermRenderer
	mouse    bool

	termInput textinput.Model
	prompt    textarea.Model
	search    textinput.Model
	message   textinput.Model
	spinner   spinner.Model
	viewport  viewport.Model

	width  int
	height int

	showHelp      bool
	statusMessage string
	quitting      bool
}
