package desktop

import (
	"fmt"
	"strconv"
	"strings"

	"vibedemo/internal/demo"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// clickOrder lists fixed zones topmost first, so an overlay swallows a
// click before the window under it sees it.
var clickOrder = []string{
	zoneMessageSend, zoneMessageShare, zoneMessageClose,
	zoneSearchClose,
	zoneCustomize, zoneEditorClose, zoneBrowserClose,
	zoneTermMinimize, zoneTermClose,
	zoneMenuSearch,
	zoneIconDisk, zoneIconProjects, zoneIconTerminal, zoneIconMessages,
}

// handleMouseMsg resolves a left-button release to the zone under it.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionRelease {
		return m, nil
	}
	for _, id := range m.clickableZones() {
		z := m.zones.Get(id)
		if z != nil && z.InBounds(msg) {
			return m.clickZone(id), nil
		}
	}
	return m, nil
}

// clickableZones returns every zone id the current frame can contain,
// topmost first.
func (m Model) clickableZones() []string {
	ids := make([]string, 0, len(clickOrder)+8)
	for i := range searchResults(m.search.Value(), m.script.Overlays) {
		ids = append(ids, searchZoneID(i))
	}
	ids = append(ids, clickOrder...)
	for i := range m.session.Snapshot().Options {
		ids = append(ids, optionZoneID(i))
	}
	return ids
}

// clickZone performs the action bound to a zone id and moves focus to
// whatever surface it opened.
func (m Model) clickZone(id string) Model {
	m.log.Debug("click", zap.String("zone", id))
	m = m.applyClick(id)
	m.refresh()
	return m
}

func (m Model) applyClick(id string) Model {

	switch id {
	case zoneIconDisk:
		return m.restart()
	case zoneIconProjects:
		return m.openWindow(m.session.OpenProjectsShortcut)
	case zoneIconTerminal:
		return m.openWindow(m.session.OpenTerminalShortcut)
	case zoneIconMessages:
		m.session.Toggle(demo.WindowMessaging)
		return m
	case zoneMenuSearch:
		m.session.Toggle(demo.WindowSearch)
		m.search.Reset()
		return m
	case zoneTermMinimize:
		return m.openWindow(m.session.MinimizeTerminal)
	case zoneTermClose:
		return m.openWindow(func() { m.session.Hide(demo.WindowTerminal) })
	case zoneEditorClose:
		return m.openWindow(func() { m.session.Hide(demo.WindowEditor) })
	case zoneBrowserClose:
		return m.openWindow(func() { m.session.Hide(demo.WindowBrowser) })
	case zoneCustomize:
		m.session.Customize()
		m.prompt.Reset()
		return m
	case zoneSearchClose:
		m.session.Hide(demo.WindowSearch)
		m.search.Reset()
		return m
	case zoneMessageSend:
		return m.sendMessage()
	case zoneMessageShare:
		return m.copyShareLink()
	case zoneMessageClose:
		m.session.Hide(demo.WindowMessaging)
		return m
	}

	if i, ok := zoneIndex(id, zoneOptionPrefix); ok {
		m.session.Choose(i)
		return m
	}
	if i, ok := zoneIndex(id, zoneSearchPrefix); ok {
		results := searchResults(m.search.Value(), m.script.Overlays)
		if i < len(results) {
			return m.openSearchResult(results[i])
		}
	}
	return m
}

func zoneIndex(id, prefix string) (int, bool) {
	if !strings.HasPrefix(id, prefix) {
		return 0, false
	}
	i, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
	if err != nil {
		return 0, false
	}
	return i, true
}

func optionZoneID(i int) string { return fmt.Sprintf("%s%d", zoneOptionPrefix, i) }
func searchZoneID(i int) string { return fmt.Sprintf("%s%d", zoneSearchPrefix, i) }
