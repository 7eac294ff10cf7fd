package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriComplete/internal/models"
	"github.com/Rorical/RoriComplete/internal/nav"
	"github.com/Rorical/RoriComplete/ui/styles"
)

// RenderNavbar draws the shell: inline links on wide terminals, a hamburger
// with a collapsible menu on narrow ones. Disabled routes keep their slot
// but render blank.
func RenderNavbar(shell *nav.Shell, info models.ApplicationInfo, width int) string {
	logo := RenderBranding(info, width)

	if nav.LayoutFor(width) == nav.LayoutInline {
		links := make([]string, 0, len(shell.Routes()))
		for _, r := range shell.Routes() {
			links = append(links, renderLink(r, r.Key == shell.Active()))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Center, links...)
		return lipgloss.JoinHorizontal(lipgloss.Center, logo, row)
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Center, styles.NavLinkStyle(false).Render("☰"), logo)
	if !shell.MenuOpen() {
		return bar
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, renderMenu(shell))
}

func renderLink(r models.Route, active bool) string {
	if !r.Enabled {
		return styles.NavLinkStyle(false).Render(strings.Repeat(" ", lipgloss.Width(r.Title)))
	}
	return styles.NavLinkStyle(active).Render(r.Title)
}

func renderMenu(shell *nav.Shell) string {
	anchor, _ := shell.Anchor()
	items := make([]string, 0, len(shell.Routes()))
	for i, r := range shell.Routes() {
		title := r.Title
		if !r.Enabled {
			title = strings.Repeat(" ", lipgloss.Width(r.Title))
		}
		items = append(items, styles.MenuItemStyle(i == anchor && r.Enabled).Render(" "+title+" "))
	}
	return styles.MenuStyle().Render(lipgloss.JoinVertical(lipgloss.Left, items...))
}
