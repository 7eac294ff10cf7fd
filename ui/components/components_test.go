package components

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Rorical/RoriComplete/internal/branding"
	"github.com/Rorical/RoriComplete/internal/config"
	"github.com/Rorical/RoriComplete/internal/models"
	"github.com/Rorical/RoriComplete/internal/nav"
)

var sample = models.Completion{
	ID:      "cmpl-1",
	Object:  "text_completion",
	Model:   "m",
	Choices: []models.Choice{{Index: 0, Text: "pong", FinishReason: "stop"}},
	Usage:   models.Usage{TotalTokens: 3},
}

func TestDumpCompletionJSON(t *testing.T) {
	out, err := DumpCompletion(sample, config.DumpJSON)
	require.NoError(t, err)

	var decoded models.Completion
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, sample, decoded)
	assert.Contains(t, out, "\n  \"id\"")
}

func TestDumpCompletionYAML(t *testing.T) {
	out, err := DumpCompletion(sample, config.DumpYAML)
	require.NoError(t, err)
	assert.Contains(t, out, "text: pong")
}

func TestDumpCompletionTOML(t *testing.T) {
	out, err := DumpCompletion(sample, config.DumpTOML)
	require.NoError(t, err)
	assert.Contains(t, out, "[[choices]]")

	var decoded models.Completion
	_, err = toml.Decode(out, &decoded)
	require.NoError(t, err)
	assert.Equal(t, sample, decoded)
}

func TestDumpInfoJSONEscapesValues(t *testing.T) {
	info := models.BackendInfo{{Key: "type", Value: "openai"}, {Key: "note", Value: "a\"b\nc"}}

	out, err := DumpInfo(info, config.DumpJSON)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"type\": \"openai\",\n  \"note\": \"a\\\"b\\nc\"\n}", out)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "a\"b\nc", decoded["note"])
}

func TestDumpInfoKeepsOrder(t *testing.T) {
	info := models.BackendInfo{{Key: "type", Value: "openai"}, {Key: "base_url", Value: "https://x"}}

	out, err := DumpInfo(info, config.DumpJSON)
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "type"), strings.Index(out, "base_url"))
	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "openai", decoded["type"])

	out, err = DumpInfo(info, config.DumpYAML)
	require.NoError(t, err)
	var node map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &node))
	assert.Equal(t, "https://x", node["base_url"])

	out, err = DumpInfo(info, config.DumpTOML)
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "type"), strings.Index(out, "base_url"))
	var table map[string]string
	_, err = toml.Decode(out, &table)
	require.NoError(t, err)
	assert.Equal(t, "https://x", table["base_url"])

	out, err = DumpInfo(nil, config.DumpJSON)
	require.NoError(t, err)
	assert.Equal(t, "{}", out)
}

func TestRenderBrandingFallsBackToDefaultLogo(t *testing.T) {
	out := RenderBranding(models.ApplicationInfo{}, 100)
	assert.Contains(t, out, strings.Split(branding.DefaultLogo(), "\n")[0])
}

func TestRenderBrandingWithLogo(t *testing.T) {
	out := RenderBranding(models.ApplicationInfo{Name: "Acme", Logo: models.Some("assets/acme.png")}, 100)
	assert.Contains(t, out, "[acme.png]")
	assert.Contains(t, out, "Acme")
}

func TestRenderNavbarInlineHidesDisabledRoutes(t *testing.T) {
	shell := nav.NewShell(nav.DefaultRoutes())
	out := RenderNavbar(shell, models.ApplicationInfo{}, 120)

	assert.Contains(t, out, "Complete")
	assert.Contains(t, out, "About")
	assert.NotContains(t, out, "Settings")
	assert.NotContains(t, out, "☰")
}

func TestRenderNavbarMenu(t *testing.T) {
	shell := nav.NewShell(nav.DefaultRoutes())
	closed := RenderNavbar(shell, models.ApplicationInfo{}, 60)
	assert.Contains(t, closed, "☰")
	assert.NotContains(t, closed, "About")

	shell.Open()
	open := RenderNavbar(shell, models.ApplicationInfo{}, 60)
	assert.Contains(t, open, "About")
	assert.NotContains(t, open, "Settings")
}

func TestRenderWorkspaceEmptyHint(t *testing.T) {
	out := RenderWorkspace(WorkspaceView{BackendType: "openai", Width: 100})
	assert.Contains(t, out, "No completions generated yet.")
	assert.NotContains(t, out, "Generated completions:")
	assert.Contains(t, out, "via openai")
}

func TestRenderWorkspaceHistoryMostRecentFirst(t *testing.T) {
	older := models.Interaction{ID: "1", Query: "first", Response: sample}
	newer := models.Interaction{ID: "2", Query: "second", Response: sample}
	out := RenderWorkspace(WorkspaceView{
		Timeline:   []models.Interaction{newer, older},
		SelectedID: "2",
		Detail:     RenderDetail("pong", "{}"),
		Width:      120,
	})

	assert.NotContains(t, out, "No completions generated yet.")
	assert.Contains(t, out, "Generated completions:")
	assert.Less(t, strings.Index(out, "second"), strings.Index(out, "first"))
}

func TestRenderAlerts(t *testing.T) {
	assert.Equal(t, "", RenderAlerts(nil, 80))
	out := RenderAlerts([]string{"boom", "bang"}, 80)
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "bang")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefghij", 5))
}

func TestRenderMarkdownNilRenderer(t *testing.T) {
	assert.Equal(t, "**x**", RenderMarkdown(nil, "**x**"))
}

func TestRenderStatusShowsSessionFacts(t *testing.T) {
	out := RenderStatus(StatusLine{Text: "Processing", Loading: true, LoadingDots: 2, Profile: "work", Model: "m-1"}, 80)
	assert.Contains(t, out, "Processing..")
	assert.Contains(t, out, "work · m-1 · ^C quit")

	narrow := RenderStatus(StatusLine{Text: "Ready", Profile: "work"}, 12)
	assert.Contains(t, narrow, "Ready")
	assert.NotContains(t, narrow, "quit")
}
