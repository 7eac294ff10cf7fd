package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriComplete/internal/branding"
	"github.com/Rorical/RoriComplete/internal/models"
	"github.com/Rorical/RoriComplete/ui/styles"
)

var keyHelp = [][2]string{
	{"ctrl+d", "process the prompt"},
	{"ctrl+l", "clear prompt and history"},
	{"ctrl+s", "toggle settings"},
	{"tab", "switch between editor and history"},
	{"↑/↓ enter", "pick a completion from history"},
	{"ctrl+x", "dismiss the first alert"},
	{"ctrl+n", "open the navigation menu"},
	{"f1 / f2", "complete / about"},
	{"ctrl+c", "quit"},
}

func RenderAbout(info models.ApplicationInfo, profile, version string, width int) string {
	rows := []string{
		RenderPageHeader("About", "About this app!"),
		"",
		fmt.Sprintf("Name:     %s", branding.Title(info)),
		fmt.Sprintf("Logo:     %s", info.Logo.OrElse("(bundled)")),
		fmt.Sprintf("Favicon:  %s", info.Favicon.OrElse("(none)")),
		fmt.Sprintf("Profile:  %s", profile),
		fmt.Sprintf("Version:  %s", version),
		"",
		styles.PageTitleStyle().Render("Keys"),
	}
	for _, k := range keyHelp {
		rows = append(rows, fmt.Sprintf("  %-10s %s", k[0], k[1]))
	}
	return styles.PanelStyle(width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
