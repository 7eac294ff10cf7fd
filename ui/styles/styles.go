package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriComplete/internal/branding"
)

var (
	accent    = lipgloss.Color("62")
	primary   = lipgloss.Color("39")
	secondary = lipgloss.Color("141")
	muted     = lipgloss.Color("241")
	danger    = lipgloss.Color("203")
	surface   = lipgloss.Color("235")
)

func InputStyle(width int, focused bool) lipgloss.Style {
	border := muted
	if focused {
		border = accent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(max(width-4, 10))
}

func StatusStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(muted).
		Background(surface).
		Padding(0, 1).
		Width(width)
}

func LogoStyle(p branding.Preset) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(secondary).
		Bold(true).
		Padding(p.PadY, p.PadX).
		MaxHeight(p.MaxHeight)
}

func NavLinkStyle(active bool) lipgloss.Style {
	s := lipgloss.NewStyle().MarginLeft(2).Padding(0, 1)
	if active {
		return s.Foreground(primary).Bold(true).Underline(true)
	}
	return s.Foreground(lipgloss.Color("252"))
}

func MenuStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(accent).
		Padding(0, 1)
}

func MenuItemStyle(highlighted bool) lipgloss.Style {
	if highlighted {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(primary)
	}
	return lipgloss.NewStyle()
}

func PageTitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(primary).MarginTop(1)
}

func SubtitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(muted)
}

func ButtonStyle(enabled, filled bool, color lipgloss.Color) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 2).MarginRight(1)
	switch {
	case !enabled:
		return s.Foreground(lipgloss.Color("238")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238"))
	case filled:
		return s.Foreground(lipgloss.Color("0")).Background(color).Bold(true).Border(lipgloss.RoundedBorder()).BorderForeground(color)
	default:
		return s.Foreground(color).Border(lipgloss.RoundedBorder()).BorderForeground(color)
	}
}

func PrimaryColor() lipgloss.Color   { return primary }
func SecondaryColor() lipgloss.Color { return secondary }

func AlertStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(danger).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(danger).
		Padding(0, 1).
		Width(max(width-2, 10))
}

func PanelStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().Padding(0, 1).Width(width)
}

func DividerStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color("238"))
}

func HistoryQueryStyle(selected, cursor bool) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	if selected {
		s = s.Foreground(primary)
	}
	if cursor {
		s = s.Reverse(true)
	}
	return s
}

func HistoryTextStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(muted)
}

func DumpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
}

func HintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(muted).Italic(true).Padding(1, 1)
}

func DrawerStyle(width, height int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(secondary).
		Padding(0, 1).
		Width(width).
		Height(height)
}
