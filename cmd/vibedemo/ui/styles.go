// Package ui provides the visual styling for the vibedemo desktop.
// A simulated macOS desktop: menu bar, icons, and windows with traffic
// lights, in a light and a dark palette.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette
var (
	// Light Mode Colors
	LightDesktop    = lipgloss.Color("#d9e2ec") // Wallpaper
	LightMenuBar    = lipgloss.Color("#f4f5f6")
	LightForeground = lipgloss.Color("#1f2933")
	LightWindow     = lipgloss.Color("#ffffff")
	LightBorder     = lipgloss.Color("#bcccdc")
	LightMuted      = lipgloss.Color("#7b8794")
	LightAccent     = lipgloss.Color("#2f80ed")

	// Dark Mode Colors
	DarkDesktop    = lipgloss.Color("#102a43")
	DarkMenuBar    = lipgloss.Color("#1f2933")
	DarkForeground = lipgloss.Color("#f0f4f8")
	DarkWindow     = lipgloss.Color("#1e1e1e") // Terminal.app dark
	DarkBorder     = lipgloss.Color("#3e4c59")
	DarkMuted      = lipgloss.Color("#9aa5b1")
	DarkAccent     = lipgloss.Color("#56ccf2")

	// Traffic lights (same in both modes)
	Close    = lipgloss.Color("#ff5f57")
	Minimize = lipgloss.Color("#febc2e")
	Zoom     = lipgloss.Color("#28c840")

	// Semantic Colors
	Success = lipgloss.Color("#28c840")
	Warning = lipgloss.Color("#febc2e")
)

// Theme holds the current color scheme
type Theme struct {
	Desktop    lipgloss.Color
	MenuBar    lipgloss.Color
	Foreground lipgloss.Color
	Window     lipgloss.Color
	Border     lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Desktop:    LightDesktop,
		MenuBar:    LightMenuBar,
		Foreground: LightForeground,
		Window:     LightWindow,
		Border:     LightBorder,
		Muted:      LightMuted,
		Accent:     LightAccent,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Desktop:    DarkDesktop,
		MenuBar:    DarkMenuBar,
		Foreground: DarkForeground,
		Window:     DarkWindow,
		Border:     DarkBorder,
		Muted:      DarkMuted,
		Accent:     DarkAccent,
		IsDark:     true,
	}
}

// DetectTheme asks the terminal for its background color.
func DetectTheme() Theme {
	if termenv.HasDarkBackground() {
		return DarkTheme()
	}
	return LightTheme()
}

// ThemeFor resolves a configured theme name: light, dark, or auto.
func ThemeFor(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Desktop
	Desktop      lipgloss.Style
	MenuBar      lipgloss.Style
	MenuBarItem  lipgloss.Style
	Icon         lipgloss.Style
	IconLabel    lipgloss.Style
	Footer       lipgloss.Style
	Notification lipgloss.Style

	// Window chrome
	Window      lipgloss.Style
	TitleBar    lipgloss.Style
	WindowTitle lipgloss.Style
	CloseDot    lipgloss.Style
	MinDot      lipgloss.Style
	ZoomDot     lipgloss.Style

	// Terminal
	Command        lipgloss.Style
	Output         lipgloss.Style
	PromptLine     lipgloss.Style
	ShellPrompt    lipgloss.Style
	OptionCursor   lipgloss.Style
	Option         lipgloss.Style
	OptionSelected lipgloss.Style
	OptionDisabled lipgloss.Style
	Spinner        lipgloss.Style

	// Editor pair
	Pane          lipgloss.Style
	PaneTitle     lipgloss.Style
	UserMessage   lipgloss.Style
	AgentResponse lipgloss.Style
	Link          lipgloss.Style
	Artifact      lipgloss.Style

	// Overlays
	Overlay     lipgloss.Style
	SentMessage lipgloss.Style
	Badge       lipgloss.Style
	Muted       lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Desktop: lipgloss.NewStyle().
			Background(theme.Desktop).
			Foreground(theme.Foreground),

		MenuBar: lipgloss.NewStyle().
			Background(theme.MenuBar).
			Foreground(theme.Foreground).
			Padding(0, 1),

		MenuBarItem: lipgloss.NewStyle().
			Background(theme.MenuBar).
			Foreground(theme.Foreground).
			Padding(0, 1),

		Icon: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Align(lipgloss.Center).
			Width(14),

		IconLabel: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Align(lipgloss.Center).
			Width(14),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Notification: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Background(theme.Window).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Warning).
			Padding(0, 1),

		Window: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Background(theme.Window),

		TitleBar: lipgloss.NewStyle().
			Foreground(theme.Muted),

		WindowTitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Bold(true),

		CloseDot: lipgloss.NewStyle().Foreground(Close),
		MinDot:   lipgloss.NewStyle().Foreground(Minimize),
		ZoomDot:  lipgloss.NewStyle().Foreground(Zoom),

		Command: lipgloss.NewStyle().
			Foreground(theme.Accent),

		Output: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		PromptLine: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true).
			MarginTop(1),

		ShellPrompt: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		OptionCursor: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Option: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		OptionSelected: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		OptionDisabled: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Strikethrough(true),

		Spinner: lipgloss.NewStyle().
			Foreground(theme.Accent),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		PaneTitle: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		UserMessage: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Background(theme.MenuBar).
			Padding(0, 1),

		AgentResponse: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(theme.Accent),

		Link: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Underline(true),

		Artifact: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Background(theme.Window).
			Padding(1, 2),

		SentMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(theme.Accent).
			Padding(0, 1),

		Badge: lipgloss.NewStyle().
			Background(Success).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles for the detected terminal theme
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// TrafficLights renders the three window buttons.
func (s Styles) TrafficLights() string {
	return s.CloseDot.Render("●") + " " + s.MinDot.Render("●") + " " + s.ZoomDot.Render("●")
}

// RenderDivider returns a horizontal divider
func (s Styles) RenderDivider(width int) string {
	if width < 0 {
		width = 0
	}
	return s.Muted.Render(strings.Repeat("─", width))
}
