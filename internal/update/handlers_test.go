package update

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Rorical/RoriComplete/internal/dispatcher"
	"github.com/Rorical/RoriComplete/internal/errlist"
	"github.com/Rorical/RoriComplete/internal/eventbus"
	"github.com/Rorical/RoriComplete/internal/models"
	"github.com/Rorical/RoriComplete/internal/nav"
	"github.com/Rorical/RoriComplete/internal/workspace"
)

func newDeps(t *testing.T) (Deps, *eventbus.EventBus) {
	t.Helper()
	eb := eventbus.NewEventBus()
	disp := dispatcher.NewEventDispatcher(eb)
	t.Cleanup(func() {
		disp.Stop()
		eb.Close()
	})
	return Deps{
		App:        &models.AppModel{Status: "Ready"},
		Workspace:  workspace.New(),
		Shell:      nav.NewShell(nav.DefaultRoutes()),
		Errors:     errlist.New(),
		Dispatcher: disp,
		Keys:       DefaultKeyMap(),
		Logger:     zap.NewNop(),
	}, eb
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestSubmitDispatchesRequest(t *testing.T) {
	d, eb := newDeps(t)
	d.Workspace.SetContent("ping")

	res := HandleKeyMsg(d, keyMsg(tea.KeyCtrlD))
	assert.True(t, res.Handled)
	assert.True(t, d.Workspace.Processing())
	assert.Equal(t, "Processing", d.App.Status)
	assert.Equal(t, eventbus.RequestCompletionEvent{Generation: 0, Prompt: "ping"}, <-eb.UIToCore())

	// a second submit while processing is ignored
	HandleKeyMsg(d, keyMsg(tea.KeyCtrlD))
	select {
	case ev := <-eb.UIToCore():
		t.Fatalf("unexpected event %#v", ev)
	default:
	}
}

func TestSubmitIgnoredOnEmptyDraft(t *testing.T) {
	d, eb := newDeps(t)
	HandleKeyMsg(d, keyMsg(tea.KeyCtrlD))
	assert.False(t, d.Workspace.Processing())
	assert.Len(t, eb.UIToCore(), 0)
}

func TestCompletionResultAppends(t *testing.T) {
	d, eb := newDeps(t)
	d.Workspace.SetContent("ping")
	HandleKeyMsg(d, keyMsg(tea.KeyCtrlD))
	<-eb.UIToCore()

	HandleCoreEvent(d, dispatcher.CoreEventMsg{Event: eventbus.CompletionResultEvent{
		Generation: 0,
		Prompt:     "ping",
		Completion: models.Completion{Choices: []models.Choice{{Text: "pong"}}},
	}})

	require.Len(t, d.Workspace.History(), 1)
	selected, ok := d.Workspace.Selected()
	require.True(t, ok)
	assert.Equal(t, "pong", selected.Response.Text())
	assert.False(t, d.Workspace.Processing())
}

func TestCompletionFailurePushesError(t *testing.T) {
	d, eb := newDeps(t)
	d.Workspace.SetContent("ping")
	HandleKeyMsg(d, keyMsg(tea.KeyCtrlD))
	<-eb.UIToCore()

	HandleCoreEvent(d, dispatcher.CoreEventMsg{Event: eventbus.CompletionResultEvent{
		Generation: 0,
		Prompt:     "ping",
		Err:        errors.New("boom"),
	}})

	assert.False(t, d.Workspace.Processing())
	assert.Equal(t, []string{"completion failed: boom"}, d.Errors.Errors())

	HandleKeyMsg(d, keyMsg(tea.KeyCtrlX))
	assert.Empty(t, d.Errors.Errors())
}

func TestClearCancelsInFlightRequest(t *testing.T) {
	d, eb := newDeps(t)
	d.Workspace.SetContent("ping")
	HandleKeyMsg(d, keyMsg(tea.KeyCtrlD))
	<-eb.UIToCore()

	res := HandleKeyMsg(d, keyMsg(tea.KeyCtrlL))
	assert.True(t, res.ResetEditor)
	assert.Equal(t, eventbus.CancelRequestEvent{Generation: 0}, <-eb.UIToCore())

	// the late response is stale
	HandleCoreEvent(d, dispatcher.CoreEventMsg{Event: eventbus.CompletionResultEvent{
		Generation: 0,
		Prompt:     "ping",
		Completion: models.Completion{Choices: []models.Choice{{Text: "late"}}},
	}})
	assert.Empty(t, d.Workspace.History())
	assert.Empty(t, d.Errors.Errors())
}

func TestClearIgnoredOnEmptyDraft(t *testing.T) {
	d, _ := newDeps(t)
	res := HandleKeyMsg(d, keyMsg(tea.KeyCtrlL))
	assert.False(t, res.ResetEditor)
}

func TestSettingsToggle(t *testing.T) {
	d, _ := newDeps(t)
	HandleKeyMsg(d, keyMsg(tea.KeyCtrlS))
	assert.True(t, d.Workspace.SettingsOpen())
	HandleKeyMsg(d, keyMsg(tea.KeyEsc))
	assert.False(t, d.Workspace.SettingsOpen())
}

func TestHistoryNavigationSelects(t *testing.T) {
	d, _ := newDeps(t)
	for _, prompt := range []string{"a", "b"} {
		d.Workspace.SetContent(prompt)
		ticket, _ := d.Workspace.Submit()
		d.Workspace.Complete(ticket, models.Completion{Choices: []models.Choice{{Text: prompt}}})
	}

	HandleKeyMsg(d, keyMsg(tea.KeyTab))
	assert.Equal(t, models.FocusHistory, d.App.Focus)

	HandleKeyMsg(d, keyMsg(tea.KeyDown))
	HandleKeyMsg(d, keyMsg(tea.KeyEnter))
	selected, _ := d.Workspace.Selected()
	assert.Equal(t, "a", selected.Query)

	HandleKeyMsg(d, keyMsg(tea.KeyDown))
	assert.Equal(t, 1, d.App.Cursor, "cursor stays on the last row")

	HandleKeyMsg(d, keyMsg(tea.KeyTab))
	assert.Equal(t, models.FocusEditor, d.App.Focus)
}

func TestEditorKeysAreForwarded(t *testing.T) {
	d, _ := newDeps(t)
	res := HandleKeyMsg(d, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	assert.False(t, res.Handled)
}

func TestMenuNavigation(t *testing.T) {
	d, _ := newDeps(t)

	HandleKeyMsg(d, keyMsg(tea.KeyCtrlN))
	assert.True(t, d.Shell.MenuOpen())

	HandleKeyMsg(d, keyMsg(tea.KeyDown))
	HandleKeyMsg(d, keyMsg(tea.KeyEnter))
	assert.False(t, d.Shell.MenuOpen())
	assert.Equal(t, models.AboutPage, d.App.Page)

	HandleKeyMsg(d, keyMsg(tea.KeyCtrlN))
	HandleKeyMsg(d, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")})
	assert.False(t, d.Shell.MenuOpen(), "other keys dismiss the menu")

	HandleKeyMsg(d, keyMsg(tea.KeyF1))
	assert.Equal(t, models.CompletePage, d.App.Page)
}

func TestMenuKeyIgnoredOnWideLayout(t *testing.T) {
	d, _ := newDeps(t)
	HandleWindowSizeMsg(d.App, d.Shell, tea.WindowSizeMsg{Width: 120, Height: 40})

	res := HandleKeyMsg(d, keyMsg(tea.KeyCtrlN))
	assert.True(t, res.Handled)
	assert.False(t, d.Shell.MenuOpen())

	res = HandleKeyMsg(d, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hello")})
	assert.False(t, res.Handled, "typing goes to the editor")
	assert.False(t, d.Shell.MenuOpen())
}

func TestWideningClosesMenu(t *testing.T) {
	d, _ := newDeps(t)
	HandleWindowSizeMsg(d.App, d.Shell, tea.WindowSizeMsg{Width: 60, Height: 40})

	HandleKeyMsg(d, keyMsg(tea.KeyCtrlN))
	require.True(t, d.Shell.MenuOpen())

	HandleWindowSizeMsg(d.App, d.Shell, tea.WindowSizeMsg{Width: nav.WideWidth, Height: 40})
	assert.False(t, d.Shell.MenuOpen())
	assert.Equal(t, nav.WideWidth, d.App.Width)
}

func TestAppInfoSetsWindowTitle(t *testing.T) {
	d, _ := newDeps(t)
	cmd := HandleCoreEvent(d, dispatcher.CoreEventMsg{Event: eventbus.AppInfoEvent{Info: models.ApplicationInfo{Name: "Acme"}}})
	assert.NotNil(t, cmd)
	assert.True(t, d.App.InfoLoaded)
	assert.Equal(t, "Acme", d.App.Info.Name)
}

func TestTick(t *testing.T) {
	app := &models.AppModel{}
	HandleTickMsg(app, true)
	HandleTickMsg(app, true)
	assert.Equal(t, 2, app.LoadingDots)
	HandleTickMsg(app, false)
	assert.Equal(t, 0, app.LoadingDots)
}
