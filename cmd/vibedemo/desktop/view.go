package desktop

import (
	"fmt"
	"strings"

	"vibedemo/internal/demo"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	snap := m.session.Snapshot()

	bodyHeight := max(m.height-menuBarHeight-footerHeight, minHeight)
	if m.showHelp {
		bodyHeight -= 4
	}

	var body string
	if overlay := m.renderOverlay(snap); overlay != "" {
		body = lipgloss.Place(max(m.width, minWidth), bodyHeight, lipgloss.Center, lipgloss.Center, overlay)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderIcons(bodyHeight), m.renderWindows(snap))
	}
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	view := lipgloss.JoinVertical(lipgloss.Left,
		m.renderMenuBar(),
		body,
		m.renderFooter(),
	)
	return m.zones.Scan(view)
}

// =============================================================================
// DESKTOP CHROME
// =============================================================================

func (m Model) renderMenuBar() string {
	left := m.styles.MenuBarItem.Bold(true).Render("") +
		m.styles.MenuBarItem.Render("Terminal  File  Edit  View  Window  Help")

	right := m.styles.MenuBarItem.Render("Tue Oct 21  10:45 AM")
	if m.script.Overlays {
		right = m.zones.Mark(zoneMenuSearch, m.styles.MenuBarItem.Render("🔍")) + right
	}

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return left + m.styles.MenuBar.Padding(0).Render(strings.Repeat(" ", gap)) + right
}

func (m Model) renderIcons(height int) string {
	icon := func(id, glyph, label string) string {
		return m.zones.Mark(id, lipgloss.JoinVertical(lipgloss.Center,
			m.styles.Icon.Render(glyph),
			m.styles.IconLabel.Render(label),
			"",
		))
	}

	icons := []string{
		icon(zoneIconDisk, "[▤]", "Macintosh HD"),
		icon(zoneIconProjects, "[▣]", "Projects"),
	}
	if m.script.Overlays {
		icons = append(icons,
			icon(zoneIconTerminal, "[>_]", "Terminal"),
			icon(zoneIconMessages, "[…]", "Messages"),
		)
	}
	return lipgloss.NewStyle().
		Width(iconColumnWidth).
		Height(height).
		Render(lipgloss.JoinVertical(lipgloss.Left, icons...))
}

func (m Model) renderFooter() string {
	if m.statusMessage != "" {
		return m.styles.Footer.Render(ansi.Truncate(m.statusMessage, max(m.width-2, 0), "…"))
	}
	h := m.help
	h.ShowAll = m.showHelp
	return m.styles.Footer.Render(h.View(m.keys))
}

// titleBar renders traffic lights and a centered title. Only the close
// and minimize lights are clickable.
func (m Model) titleBar(width int, title, closeZone, minZone string) string {
	lights := m.zones.Mark(closeZone, m.styles.CloseDot.Render("●")) + " "
	if minZone != "" {
		lights += m.zones.Mark(minZone, m.styles.MinDot.Render("●"))
	} else {
		lights += m.styles.MinDot.Render("●")
	}
	lights += " " + m.styles.ZoomDot.Render("●")

	titleWidth := max(width-lipgloss.Width(lights)-1, 0)
	return lights + " " + m.styles.WindowTitle.Width(titleWidth).Align(lipgloss.Center).Render(title)
}

// =============================================================================
// WINDOWS
// =============================================================================

func (m Model) renderWindows(snap demo.Snapshot) string {
	mainWidth, termHeight, editorHeight := m.windowSizes()

	var windows []string
	if snap.Windows.Terminal {
		windows = append(windows, m.renderTerminal(mainWidth, termHeight))
	}
	if snap.Windows.Editor {
		windows = append(windows, m.renderEditor(snap, mainWidth, editorHeight))
	}
	if len(windows) == 0 {
		return m.styles.Muted.Width(mainWidth).Align(lipgloss.Center).
			Render("\n\nDouble-click Projects to open Cursor, or press ctrl+t for the terminal.")
	}
	return lipgloss.JoinVertical(lipgloss.Left, windows...)
}

func (m Model) renderTerminal(width, height int) string {
	inner := max(width-2, 1)
	title := fmt.Sprintf("john.intrater — -zsh — %d×%d", m.viewport.Width, m.viewport.Height)
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.titleBar(inner, title, zoneTermClose, zoneTermMinimize),
		lipgloss.NewStyle().Padding(0, 1).Render(m.viewport.View()),
	)
	return m.styles.Window.Width(inner).Height(max(height-2, 1)).Render(content)
}

// renderTranscript builds the terminal viewport content: the transcript
// followed by whatever the current phase is waiting for.
func (m Model) renderTranscript() string {
	snap := m.session.Snapshot()
	width := max(m.viewport.Width, 1)

	var b strings.Builder
	for _, line := range snap.Transcript {
		b.WriteString(ansi.Truncate(m.renderLine(line), width, "…"))
		b.WriteString("\n")
	}

	switch snap.Phase {
	case demo.PhaseIdle:
		b.WriteString(m.styles.ShellPrompt.Render(ShellPrompt) + " " + m.termInput.View())

	case demo.PhaseProjectType, demo.PhaseExperienceType:
		for i, opt := range snap.Options {
			b.WriteString(m.zones.Mark(optionZoneID(i), m.renderOption(opt, i == snap.Selection)))
			b.WriteString("\n")
		}
		b.WriteString(m.styles.Muted.Render("Use ↑/↓ to move, enter to select"))

	case demo.PhaseProvisioning:
		b.WriteString(m.spinner.View() + " " + m.styles.Output.Render(provisioningNotice))
	}
	return b.String()
}

func (m Model) renderLine(line demo.Line) string {
	switch line.Kind {
	case demo.LineCommand:
		return m.styles.Command.Render(line.Text)
	case demo.LinePrompt:
		return m.styles.PromptLine.Render(line.Text)
	default:
		return m.styles.Output.Render(line.Text)
	}
}

func (m Model) renderOption(opt demo.Option, selected bool) string {
	cursor := "  "
	style := m.styles.Option
	if selected {
		cursor = m.styles.OptionCursor.Render("❯ ")
		style = m.styles.OptionSelected
	}
	label := opt.Label
	if opt.Disabled {
		style = m.styles.OptionDisabled
		label += " (coming soon)"
	}
	return cursor + style.Render(label)
}

func (m Model) renderEditor(snap demo.Snapshot, width, height int) string {
	inner := max(width-2, 1)
	bodyHeight := max(height-3, 1)
	browserWidth, cursorWidth := m.paneWidths(inner, snap.Windows.Browser)

	var panes []string
	if snap.Windows.Browser {
		browser := lipgloss.JoinVertical(lipgloss.Left,
			m.zones.Mark(zoneBrowserClose, m.styles.CloseDot.Render("×"))+" "+m.styles.PaneTitle.Render("Preview"),
			renderArtifact(m.styles, snap.Artifact, max(browserWidth-4, 1)),
		)
		panes = append(panes, m.styles.Pane.Width(max(browserWidth-2, 1)).Height(bodyHeight-2).Render(browser))
	}
	panes = append(panes, m.styles.Pane.Width(max(cursorWidth-2, 1)).Height(bodyHeight-2).
		Render(m.renderCursorPane(snap, max(cursorWidth-4, 1))))

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.titleBar(inner, "Cursor — supper-club", zoneEditorClose, ""),
		lipgloss.JoinHorizontal(lipgloss.Top, panes...),
	)
	return m.styles.Window.Width(inner).Height(max(height-2, 1)).Render(content)
}

func (m Model) renderCursorPane(snap demo.Snapshot, width int) string {
	parts := []string{m.styles.PaneTitle.Render("Cursor Agent")}

	if len(snap.Assistant) == 0 {
		welcome := "Ask the agent to change the storefront, e.g. \"make the heading larger\"."
		if snap.CustomizeMode {
			welcome = "Describe your brand and the agent will customize this sandbox."
		}
		parts = append(parts, m.styles.Muted.Width(width).Render(welcome))
	}
	for _, msg := range snap.Assistant {
		if msg.Speaker == demo.SpeakerUser {
			parts = append(parts, m.styles.UserMessage.Width(width).Render(msg.Text))
			continue
		}
		parts = append(parts, m.styles.AgentResponse.Render(m.renderMarkdown(msg.Text)))
	}

	if m.script.CustomizeEnabled && !snap.CustomizeMode {
		parts = append(parts, m.zones.Mark(zoneCustomize, m.styles.Link.Render("Customize sandbox")))
	}
	parts = append(parts, "", m.prompt.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderMarkdown renders an assistant reply, falling back to the raw
// text if glamour is unavailable or fails.
func (m Model) renderMarkdown(text string) string {
	if m.renderer == nil {
		return text
	}
	out, err := m.renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimSpace(out)
}

// =============================================================================
// OVERLAYS
// =============================================================================

func (m Model) renderOverlay(snap demo.Snapshot) string {
	if !m.script.Overlays {
		return ""
	}
	switch {
	case snap.Windows.Messaging:
		return m.renderMessaging(snap)
	case snap.Windows.Search:
		return m.renderSearch()
	}
	return ""
}

func (m Model) renderSearch() string {
	rows := []string{
		m.zones.Mark(zoneSearchClose, m.styles.CloseDot.Render("×")) + " " + m.search.View(),
		"",
	}
	results := searchResults(m.search.Value(), true)
	if len(results) == 0 {
		rows = append(rows, m.styles.Muted.Render("No results"))
	}
	for i, r := range results {
		row := m.styles.Option.Render(r.Name) + "  " + m.styles.Muted.Render(r.Kind)
		if i == 0 {
			row = m.styles.OptionCursor.Render("❯ ") + row
		} else {
			row = "  " + row
		}
		rows = append(rows, m.zones.Mark(searchZoneID(i), row))
	}
	return m.styles.Overlay.Width(48).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderMessaging(snap demo.Snapshot) string {
	rows := []string{
		m.zones.Mark(zoneMessageClose, m.styles.CloseDot.Render("×")) + " " +
			m.styles.PaneTitle.Render("Messages") + m.styles.Muted.Render("  To: Team"),
		"",
	}
	if snap.Messaging.IsSent {
		rows = append(rows,
			lipgloss.PlaceHorizontal(44, lipgloss.Right, m.styles.SentMessage.Render(snap.Messaging.Sent)),
			lipgloss.PlaceHorizontal(44, lipgloss.Right, m.styles.Muted.Render("Delivered")),
		)
	} else {
		rows = append(rows, m.styles.Muted.Render("Share your sandbox with the team."))
	}

	share := m.zones.Mark(zoneMessageShare, m.styles.Link.Render("Copy link"))
	if snap.ShareCopied {
		share += " " + m.styles.Badge.Render("Copied!")
	}

	rows = append(rows,
		"",
		m.message.View(),
		"",
		m.zones.Mark(zoneMessageSend, m.styles.SentMessage.Render("Send"))+"   "+share,
		m.styles.Muted.Render(ansi.Truncate(snap.ShareURL, 44, "…")),
	)
	return m.styles.Overlay.Width(48).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
