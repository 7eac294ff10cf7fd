package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Rorical/RoriComplete/internal/dispatcher"
	"github.com/Rorical/RoriComplete/internal/errlist"
	"github.com/Rorical/RoriComplete/internal/eventbus"
	"github.com/Rorical/RoriComplete/internal/models"
	"github.com/Rorical/RoriComplete/ui/components"
)

func newTestModel(t *testing.T) (*AppModel, *eventbus.EventBus) {
	t.Helper()
	eb := eventbus.NewEventBus()
	disp := dispatcher.NewEventDispatcher(eb)
	t.Cleanup(func() {
		disp.Stop()
		eb.Close()
	})
	m := newAppModel(createInitialAppModel(true), disp, errlist.New(), zap.NewNop(), "json", "default", "test")
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, eb
}

func typeText(m *AppModel, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestTypingUpdatesWorkspace(t *testing.T) {
	m, _ := newTestModel(t)

	assert.False(t, m.workspace.CanSubmit())
	typeText(m, "hello")
	assert.Equal(t, "hello", m.workspace.Content())
	assert.True(t, m.workspace.CanSubmit())
	assert.Contains(t, m.View(), components.EmptyHint)
}

func TestSubmitAndResultRoundTrip(t *testing.T) {
	m, eb := newTestModel(t)

	typeText(m, "ping")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	require.True(t, m.workspace.Processing())
	assert.Equal(t, eventbus.RequestCompletionEvent{Generation: 0, Prompt: "ping"}, <-eb.UIToCore())

	_, cmd := m.Update(dispatcher.CoreEventMsg{Event: eventbus.CompletionResultEvent{
		Generation: 0,
		Prompt:     "ping",
		Completion: models.Completion{ID: "cmpl-1", Choices: []models.Choice{{Text: "pong"}}},
	}})
	assert.NotNil(t, cmd)

	assert.False(t, m.workspace.Processing())
	require.Len(t, m.workspace.History(), 1)
	assert.Equal(t, "ping", m.workspace.Content())

	view := m.View()
	assert.Contains(t, view, "ping")
	assert.Contains(t, view, "cmpl-1")
	assert.NotContains(t, view, components.EmptyHint)
}

func TestClearResetsEditor(t *testing.T) {
	m, _ := newTestModel(t)

	typeText(m, "draft")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})

	assert.Equal(t, "", m.editor.Value())
	assert.Equal(t, "", m.workspace.Content())
	assert.False(t, m.workspace.CanClear())
}

func TestSettingsDrawer(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(dispatcher.CoreEventMsg{Event: eventbus.BackendInfoEvent{
		Info: models.BackendInfo{{Key: "type", Value: "openai"}, {Key: "model", Value: "m-1"}},
	}})

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.True(t, m.workspace.SettingsOpen())
	assert.Contains(t, m.View(), "m-1")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.workspace.SettingsOpen())
}

func TestAboutPage(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyF2})
	assert.Equal(t, models.AboutPage, m.appModel.Page)
	assert.NotContains(t, m.View(), components.EmptyHint)

	m.Update(tea.KeyMsg{Type: tea.KeyF1})
	assert.Equal(t, models.CompletePage, m.appModel.Page)
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, "Ready", createInitialAppModel(true).Status)
	assert.Contains(t, createInitialAppModel(false).Status, "profile add")
}

func TestMenuKeyOnWideTerminalKeepsTyping(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.False(t, m.shell.MenuOpen())

	typeText(m, "hello")
	assert.Equal(t, "hello", m.workspace.Content())
}
