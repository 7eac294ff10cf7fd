package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Rorical/RoriComplete/internal/branding"
	"github.com/Rorical/RoriComplete/internal/dispatcher"
	"github.com/Rorical/RoriComplete/internal/errlist"
	"github.com/Rorical/RoriComplete/internal/models"
	"github.com/Rorical/RoriComplete/internal/nav"
	"github.com/Rorical/RoriComplete/internal/update"
	"github.com/Rorical/RoriComplete/internal/workspace"
	"github.com/Rorical/RoriComplete/ui/components"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	editorRows    = 6
	// rows taken by navbar, header, buttons, editor and status bar
	chromeRows = 20
)

var pageKeys = key.NewBinding(key.WithKeys("pgup", "pgdown"))

type AppModel struct {
	appModel   models.AppModel
	workspace  *workspace.Workspace
	shell      *nav.Shell
	errors     *errlist.List
	dispatcher *dispatcher.EventDispatcher
	keys       update.KeyMap
	logger     *zap.Logger

	editor        textarea.Model
	detail        viewport.Model
	spinner       spinner.Model
	renderer      *glamour.TermRenderer
	rendererWidth int
	detailKey     string

	dumpFormat string
	profile    string
	version    string
}

func newAppModel(app models.AppModel, disp *dispatcher.EventDispatcher, errs *errlist.List, logger *zap.Logger, dumpFormat, profile, version string) *AppModel {
	editor := textarea.New()
	editor.Placeholder = "Type something here.."
	editor.ShowLineNumbers = false
	editor.CharLimit = 0
	editor.SetHeight(editorRows)
	editor.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &AppModel{
		appModel:   app,
		workspace:  workspace.New(),
		shell:      nav.NewShell(nav.DefaultRoutes()),
		errors:     errs,
		dispatcher: disp,
		keys:       update.DefaultKeyMap(),
		logger:     logger,
		editor:     editor,
		detail:     viewport.New(defaultWidth/2, defaultHeight-chromeRows),
		spinner:    sp,
		dumpFormat: dumpFormat,
		profile:    profile,
		version:    version,
	}
	m.resize()
	return m
}

func (m *AppModel) deps() update.Deps {
	return update.Deps{
		App:        &m.appModel,
		Workspace:  m.workspace,
		Shell:      m.shell,
		Errors:     m.errors,
		Dispatcher: m.dispatcher,
		Keys:       m.keys,
		Logger:     m.logger,
	}
}

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(branding.DefaultTitle),
		update.TickCmd(),
		m.spinner.Tick,
		textarea.Blink,
		m.dispatcher.ListenForCoreEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dispatcher.CoreEventMsg:
		// Handle core events and continue listening
		cmd := update.HandleCoreEvent(m.deps(), msg)
		m.refreshDetail()
		return m, tea.Batch(cmd, m.dispatcher.ListenForCoreEvents())

	case tea.WindowSizeMsg:
		update.HandleWindowSizeMsg(&m.appModel, m.shell, msg)
		m.resize()
		return m, nil

	case update.TickMsg:
		return m, update.HandleTickMsg(&m.appModel, m.workspace.Processing())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, pageKeys) {
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}

		res := update.HandleKeyMsg(m.deps(), msg)
		if res.ResetEditor {
			m.editor.Reset()
		}
		if res.Handled {
			m.syncFocus()
			m.refreshDetail()
			return m, res.Cmd
		}

		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		m.workspace.SetContent(m.editor.Value())
		return m, cmd
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *AppModel) syncFocus() {
	if m.appModel.Focus == models.FocusEditor && m.appModel.Page == models.CompletePage {
		m.editor.Focus()
	} else {
		m.editor.Blur()
	}
}

func (m *AppModel) width() int {
	if m.appModel.Width <= 0 {
		return defaultWidth
	}
	return m.appModel.Width
}

func (m *AppModel) height() int {
	if m.appModel.Height <= 0 {
		return defaultHeight
	}
	return m.appModel.Height
}

func (m *AppModel) resize() {
	width := m.width()
	m.editor.SetWidth(max(width-6, 10))
	m.detail.Width = max(width/2-3, 20)
	m.detail.Height = max(m.height()-chromeRows, 5)

	if m.rendererWidth != m.detail.Width {
		m.renderer = components.NewMarkdownRenderer(m.detail.Width)
		m.rendererWidth = m.detail.Width
		m.detailKey = ""
	}
	m.refreshDetail()
}

// refreshDetail re-renders the detail pane when the selection changed
func (m *AppModel) refreshDetail() {
	selected, ok := m.workspace.Selected()
	if !ok {
		if m.detailKey != "" {
			m.detail.SetContent("")
			m.detailKey = ""
		}
		return
	}
	if selected.ID == m.detailKey {
		return
	}

	dump, err := components.DumpCompletion(selected.Response, m.dumpFormat)
	if err != nil {
		m.logger.Error("Failed to dump completion", zap.Error(err))
		dump = err.Error()
	}
	text := components.RenderMarkdown(m.renderer, selected.Response.Text())
	m.detail.SetContent(components.RenderDetail(text, dump))
	m.detail.GotoTop()
	m.detailKey = selected.ID
}

func (m *AppModel) backendType() string {
	if kind, ok := m.appModel.Backend.Get("type"); ok {
		return kind
	}
	return "unknown"
}

func (m *AppModel) View() string {
	width := m.width()
	var b strings.Builder

	b.WriteString(components.RenderNavbar(m.shell, m.appModel.Info, width))
	b.WriteString("\n")

	switch m.appModel.Page {
	case models.AboutPage:
		b.WriteString(components.RenderAbout(m.appModel.Info, m.profile, m.version, width))
	default:
		b.WriteString(m.completeView(width))
	}

	b.WriteString("\n")
	status := m.appModel.Status
	if m.workspace.Processing() {
		status = "Processing"
	}
	model, _ := m.appModel.Backend.Get("model")
	b.WriteString(components.RenderStatus(components.StatusLine{
		Text:        status,
		Loading:     m.workspace.Processing(),
		LoadingDots: m.appModel.LoadingDots,
		Profile:     m.profile,
		Model:       model,
	}, width))

	return b.String()
}

func (m *AppModel) completeView(width int) string {
	ws := m.workspace
	selectedID := ""
	if selected, ok := ws.Selected(); ok {
		selectedID = selected.ID
	}

	body := components.RenderWorkspace(components.WorkspaceView{
		BackendType:    m.backendType(),
		Errors:         m.errors.Errors(),
		CanSubmit:      ws.CanSubmit(),
		CanClear:       ws.CanClear(),
		Processing:     ws.Processing(),
		Spinner:        m.spinner.View(),
		Editor:         m.editor.View(),
		EditorFocused:  m.appModel.Focus == models.FocusEditor,
		Timeline:       ws.Timeline(),
		Cursor:         m.appModel.Cursor,
		HistoryFocused: m.appModel.Focus == models.FocusHistory,
		SelectedID:     selectedID,
		Detail:         m.detail.View(),
		Width:          width,
	})

	if !ws.SettingsOpen() {
		return body
	}

	// The drawer covers half the screen on wide terminals, all of it otherwise
	height := max(m.height()-6, 5)
	if width < nav.WideWidth {
		return components.RenderSettings(m.appModel.Backend, m.dumpFormat, width-2, height)
	}
	half := width / 2
	left := lipgloss.NewStyle().Width(half).MaxWidth(half).Render(body)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, components.RenderSettings(m.appModel.Backend, m.dumpFormat, width-half-2, height))
}

// Summary is a one-line description used in logs
func (m *AppModel) Summary() string {
	return fmt.Sprintf("page=%d history=%d processing=%t errors=%d",
		m.appModel.Page, len(m.workspace.History()), m.workspace.Processing(), m.errors.Len())
}
