package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriComplete/internal/models"
	"github.com/Rorical/RoriComplete/ui/styles"
)

// RenderSettings draws the settings drawer with the backend record dump
func RenderSettings(info models.BackendInfo, format string, width, height int) string {
	dump, err := DumpInfo(info, format)
	if err != nil {
		dump = err.Error()
	}
	return styles.DrawerStyle(width, height).Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.ButtonStyle(true, false, styles.SecondaryColor()).Render("Close Settings (esc)"),
		styles.PageTitleStyle().Render("Open AI Settings"),
		styles.DumpStyle().Render(dump),
	))
}
