package update

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Rorical/RoriComplete/internal/branding"
	"github.com/Rorical/RoriComplete/internal/dispatcher"
	"github.com/Rorical/RoriComplete/internal/errlist"
	"github.com/Rorical/RoriComplete/internal/eventbus"
	"github.com/Rorical/RoriComplete/internal/models"
	"github.com/Rorical/RoriComplete/internal/nav"
	"github.com/Rorical/RoriComplete/internal/workspace"
)

// Deps is the state the handlers transition. Everything is owned by the
// Bubble Tea update loop except Errors, which is shared.
type Deps struct {
	App        *models.AppModel
	Workspace  *workspace.Workspace
	Shell      *nav.Shell
	Errors     *errlist.List
	Dispatcher *dispatcher.EventDispatcher
	Keys       KeyMap
	Logger     *zap.Logger
}

// Result tells the caller what to do after a key was handled
type Result struct {
	Cmd         tea.Cmd
	Handled     bool // false: forward the key to the editor
	ResetEditor bool // the draft was cleared
}

// HandleKeyMsg applies a key press to the shell and workspace
func HandleKeyMsg(d Deps, msg tea.KeyMsg) Result {
	switch {
	case key.Matches(msg, d.Keys.Quit):
		return Result{Cmd: tea.Quit, Handled: true}
	case key.Matches(msg, d.Keys.Complete):
		navigate(d, "complete")
		return Result{Handled: true}
	case key.Matches(msg, d.Keys.About):
		navigate(d, "about")
		return Result{Handled: true}
	}

	if d.Shell.MenuOpen() {
		return handleMenuKey(d, msg)
	}
	if key.Matches(msg, d.Keys.Menu) {
		// the collapsible menu only exists in the narrow layout
		if nav.LayoutFor(d.App.Width) == nav.LayoutMenu {
			d.Shell.Open()
		}
		return Result{Handled: true}
	}

	if d.App.Page != models.CompletePage {
		return Result{Handled: true}
	}
	return handleWorkspaceKey(d, msg)
}

func handleMenuKey(d Deps, msg tea.KeyMsg) Result {
	switch {
	case key.Matches(msg, d.Keys.Up):
		d.Shell.Move(-1)
	case key.Matches(msg, d.Keys.Down):
		d.Shell.Move(1)
	case key.Matches(msg, d.Keys.Select):
		d.Shell.SelectAnchor()
		syncPage(d)
	default:
		// any other key dismisses the menu
		d.Shell.Close()
	}
	return Result{Handled: true}
}

func navigate(d Deps, route string) {
	d.Shell.Select(route)
	syncPage(d)
}

func syncPage(d Deps) {
	switch d.Shell.Active() {
	case "about":
		d.App.Page = models.AboutPage
	default:
		d.App.Page = models.CompletePage
	}
}

func handleWorkspaceKey(d Deps, msg tea.KeyMsg) Result {
	ws := d.Workspace

	switch {
	case key.Matches(msg, d.Keys.Submit):
		return Result{Cmd: submit(d), Handled: true}

	case key.Matches(msg, d.Keys.Clear):
		return clearWorkspace(d)

	case key.Matches(msg, d.Keys.Settings):
		ws.ToggleSettings()
		return Result{Handled: true}

	case key.Matches(msg, d.Keys.Close) && ws.SettingsOpen():
		ws.CloseSettings()
		return Result{Handled: true}

	case key.Matches(msg, d.Keys.Dismiss):
		if d.Errors.RemoveAt(0) {
			d.Logger.Debug("Alert dismissed")
		}
		return Result{Handled: true}

	case key.Matches(msg, d.Keys.SwitchFocus):
		if d.App.Focus == models.FocusEditor && ws.ShowHistory() {
			d.App.Focus = models.FocusHistory
		} else {
			d.App.Focus = models.FocusEditor
		}
		return Result{Handled: true}
	}

	if d.App.Focus == models.FocusHistory {
		return handleHistoryKey(d, msg)
	}
	return Result{}
}

func handleHistoryKey(d Deps, msg tea.KeyMsg) Result {
	n := len(d.Workspace.History())
	switch {
	case key.Matches(msg, d.Keys.Up):
		if d.App.Cursor > 0 {
			d.App.Cursor--
		}
	case key.Matches(msg, d.Keys.Down):
		if d.App.Cursor < n-1 {
			d.App.Cursor++
		}
	case key.Matches(msg, d.Keys.Select):
		d.Workspace.Select(d.App.Cursor)
	}
	return Result{Handled: true}
}

func submit(d Deps) tea.Cmd {
	ticket, ok := d.Workspace.Submit()
	if !ok {
		return nil
	}
	if err := d.Dispatcher.RequestCompletion(ticket.Generation, ticket.Prompt); err != nil {
		d.Workspace.Fail(ticket)
		d.Errors.Push("Error sending request: " + err.Error())
		d.App.Status = "Error sending request: " + err.Error()
		d.Logger.Error("Failed to dispatch completion", zap.Error(err))
		return nil
	}
	d.App.Status = "Processing"
	return nil
}

func clearWorkspace(d Deps) Result {
	wasProcessing := d.Workspace.Processing()
	stale, ok := d.Workspace.Clear()
	if !ok {
		return Result{Handled: true}
	}
	if wasProcessing {
		if err := d.Dispatcher.CancelRequest(stale); err != nil {
			d.Logger.Warn("Failed to cancel stale request", zap.Uint64("generation", stale), zap.Error(err))
		}
	}
	d.App.Cursor = 0
	d.App.Focus = models.FocusEditor
	d.App.Status = "Ready"
	return Result{Handled: true, ResetEditor: true}
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(d Deps, msg dispatcher.CoreEventMsg) tea.Cmd {
	switch event := msg.Event.(type) {
	case eventbus.AppInfoEvent:
		d.App.Info = event.Info
		d.App.InfoLoaded = true
		return tea.SetWindowTitle(branding.Title(event.Info))

	case eventbus.BackendInfoEvent:
		d.App.Backend = event.Info
		d.App.BackendLoaded = true

	case eventbus.CompletionResultEvent:
		ticket := workspace.Ticket{Generation: event.Generation, Prompt: event.Prompt}
		if event.Err != nil {
			if d.Workspace.Fail(ticket) {
				d.Errors.Push("completion failed: " + event.Err.Error())
				d.App.Status = "Error: " + event.Err.Error()
			}
			return nil
		}
		if d.Workspace.Complete(ticket, event.Completion) {
			d.App.Cursor = 0
			d.App.Status = "Ready"
		} else {
			d.Logger.Debug("Discarded stale completion", zap.Uint64("generation", event.Generation))
		}
	}

	return nil
}

type TickMsg time.Time

func TickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func HandleWindowSizeMsg(appModel *models.AppModel, shell *nav.Shell, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
	if nav.LayoutFor(sizeMsg.Width) == nav.LayoutInline {
		shell.Close()
	}
}

func HandleTickMsg(appModel *models.AppModel, processing bool) tea.Cmd {
	// Only handle UI animations - loading dots
	if processing {
		appModel.LoadingDots = (appModel.LoadingDots + 1) % 4
	} else {
		appModel.LoadingDots = 0
	}
	return TickCmd()
}
