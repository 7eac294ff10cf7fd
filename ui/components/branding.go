package components

import (
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriComplete/internal/branding"
	"github.com/Rorical/RoriComplete/internal/models"
	"github.com/Rorical/RoriComplete/ui/styles"
)

// RenderBranding draws the application logo box. Without a logo the bundled
// banner is used.
func RenderBranding(info models.ApplicationInfo, width int) string {
	preset := branding.PresetFor(info.Logo, width)
	style := styles.LogoStyle(preset)

	logo, ok := info.Logo.Get()
	if !ok {
		return style.Render(branding.DefaultLogo())
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		"["+filepath.Base(logo)+"]",
		branding.Title(info),
	))
}
