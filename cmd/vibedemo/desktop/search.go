package desktop

import (
	"strings"

	"vibedemo/internal/demo"
)

// searchResult is one spotlight hit. The query never reaches the
// session; only the chosen result does.
type searchResult struct {
	Name string
	Kind string
	open func(*demo.Session)
}

var spotlightItems = []searchResult{
	{Name: "Cursor", Kind: "Application", open: (*demo.Session).OpenProjectsShortcut},
	{Name: "Terminal", Kind: "Application", open: (*demo.Session).OpenTerminalShortcut},
	{Name: "Messages", Kind: "Application", open: func(s *demo.Session) { s.Show(demo.WindowMessaging) }},
}

// searchResults filters the spotlight items by a case-insensitive
// substring match. An empty query lists everything.
func searchResults(query string, overlays bool) []searchResult {
	if !overlays {
		return nil
	}
	q := strings.ToLower(strings.TrimSpace(query))
	var out []searchResult
	for _, item := range spotlightItems {
		if q == "" || strings.Contains(strings.ToLower(item.Name), q) {
			out = append(out, item)
		}
	}
	return out
}
