package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriComplete/ui/styles"
)

// StatusLine is the bottom bar: a message on the left, session facts on the right
type StatusLine struct {
	Text        string
	Loading     bool
	LoadingDots int
	Profile     string
	Model       string
}

func RenderStatus(s StatusLine, width int) string {
	left := s.Text
	if s.Loading {
		left += strings.Repeat(".", s.LoadingDots)
	}

	var facts []string
	if s.Profile != "" {
		facts = append(facts, s.Profile)
	}
	if s.Model != "" {
		facts = append(facts, s.Model)
	}
	right := strings.Join(append(facts, "^C quit"), " · ")

	// inner width excludes the bar's horizontal padding
	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return styles.StatusStyle(width).Render(left)
	}
	return styles.StatusStyle(width).Render(left + strings.Repeat(" ", gap) + right)
}
