package desktop

import (
	"strings"

	"vibedemo/cmd/vibedemo/ui"
	"vibedemo/internal/demo"

	"github.com/charmbracelet/lipgloss"
)

// artifactURL is what the fake browser's address bar shows.
const artifactURL = "localhost:3000/retail"

var storefrontCatalog = []string{
	"[ Heirloom Tomatoes  $6 ]  [ Sourdough Loaf  $9 ]",
	"[ Burrata            $12]  [ Olive Oil 500ml $18]",
}

// renderArtifact draws a text screenshot for an artifact id. Unknown ids
// fall back to the plain storefront.
func renderArtifact(s ui.Styles, id demo.ArtifactID, width int) string {
	heading := s.PaneTitle.Render("Welcome back, Supper Club")
	banner := "Fresh picks for this week"
	accent := s.Theme.Accent

	switch id {
	case demo.ArtifactStorefrontHeading:
		heading = s.PaneTitle.
			Border(lipgloss.DoubleBorder(), false, false, true, false).
			BorderForeground(accent).
			Render(strings.ToUpper("Welcome back, Supper Club"))
	case demo.ArtifactStorefrontCustomized:
		heading = s.Badge.Render("Welcome back, Supper Club")
		banner = "Your brand. Your catalog. Live in the sandbox."
		accent = ui.Success
	}

	nav := s.Muted.Render("Shop   Recipes   Orders   Account")
	catalog := lipgloss.NewStyle().Foreground(accent).Render(strings.Join(storefrontCatalog, "\n"))

	body := lipgloss.JoinVertical(lipgloss.Left,
		s.Muted.Render("◀ ▶ ⟳  "+artifactURL),
		s.RenderDivider(max(width-2, 0)),
		nav,
		"",
		heading,
		s.Artifact.Render(banner),
		"",
		catalog,
	)
	return lipgloss.NewStyle().Width(max(width, 1)).Render(body)
}
