package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriComplete/internal/models"
	"github.com/Rorical/RoriComplete/ui/styles"
)

const EmptyHint = "No completions generated yet. Type something and press ctrl+d to get started."

// WorkspaceView is everything the complete page needs to draw itself
type WorkspaceView struct {
	BackendType    string
	Errors         []string
	CanSubmit      bool
	CanClear       bool
	Processing     bool
	Spinner        string
	Editor         string
	EditorFocused  bool
	Timeline       []models.Interaction
	Cursor         int
	HistoryFocused bool
	SelectedID     string
	Detail         string
	Width          int
}

func RenderWorkspace(v WorkspaceView) string {
	sections := []string{
		RenderPageHeader("Complete", fmt.Sprintf("Generate completions using Open AI (via %s).", v.BackendType)),
	}
	if alerts := RenderAlerts(v.Errors, v.Width); alerts != "" {
		sections = append(sections, alerts)
	}
	sections = append(sections,
		RenderButtons(v.CanSubmit, v.CanClear, v.Processing, v.Spinner),
		RenderInput(v.Editor, v.EditorFocused, v.Width),
	)

	if len(v.Timeline) == 0 {
		sections = append(sections, styles.HintStyle().Render(EmptyHint))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	half := max(v.Width/2-1, 20)
	history := RenderHistory(v.Timeline, v.Cursor, v.SelectedID, v.HistoryFocused, half)
	detail := styles.PanelStyle(half).Render(v.Detail)
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
		styles.DividerStyle().Render(history),
		detail,
	))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func RenderPageHeader(title, subtitle string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.PageTitleStyle().Render(title),
		styles.SubtitleStyle().Render(subtitle),
	)
}

// RenderAlerts draws one dismissible alert per error, or "" when there are none
func RenderAlerts(errors []string, width int) string {
	if len(errors) == 0 {
		return ""
	}
	alerts := make([]string, 0, len(errors))
	for i, e := range errors {
		hint := ""
		if i == 0 {
			hint = "  (ctrl+x to dismiss)"
		}
		alerts = append(alerts, styles.AlertStyle(width).Render("✕ "+e+hint))
	}
	return lipgloss.JoinVertical(lipgloss.Left, alerts...)
}

func RenderButtons(canSubmit, canClear, processing bool, spinner string) string {
	process := "Process"
	if processing {
		process = spinner + " Processing"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.ButtonStyle(canSubmit, true, styles.PrimaryColor()).Render(process+" ^D"),
		styles.ButtonStyle(canClear, false, styles.PrimaryColor()).Render("Clear ^L"),
		styles.ButtonStyle(true, false, styles.SecondaryColor()).Render("Settings ^S"),
	)
}

// RenderHistory lists interactions most recent first
func RenderHistory(timeline []models.Interaction, cursor int, selectedID string, focused bool, width int) string {
	var b strings.Builder
	b.WriteString(styles.PageTitleStyle().Render("Generated completions:"))
	b.WriteString("\n")
	for i, it := range timeline {
		query := styles.HistoryQueryStyle(it.ID == selectedID, focused && i == cursor).Render(truncate(it.Query, width-2))
		text := styles.HistoryTextStyle().Render(truncate("  "+oneLine(it.Response.Text()), width-2))
		b.WriteString(query + "\n" + text + "\n")
	}
	return styles.PanelStyle(width).Render(strings.TrimRight(b.String(), "\n"))
}

// RenderDetail draws the selected response: its text, then the raw dump
func RenderDetail(text, dump string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		text,
		"",
		styles.DumpStyle().Render(dump),
	)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, width int) string {
	if width <= 1 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width-1 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
