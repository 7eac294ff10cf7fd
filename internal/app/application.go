package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Rorical/RoriComplete/internal/backend"
	"github.com/Rorical/RoriComplete/internal/branding"
	"github.com/Rorical/RoriComplete/internal/config"
	"github.com/Rorical/RoriComplete/internal/core"
	"github.com/Rorical/RoriComplete/internal/dispatcher"
	"github.com/Rorical/RoriComplete/internal/errlist"
	"github.com/Rorical/RoriComplete/internal/eventbus"
	"github.com/Rorical/RoriComplete/internal/logging"
	"github.com/Rorical/RoriComplete/internal/models"
)

// Options control how the application is started
type Options struct {
	Debug   bool
	Version string
}

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	logger     *zap.Logger
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.CompletionService
	model      *AppModel
}

func NewApplication(opts Options) (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Dir(), opts.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	profile := cfg.Current()
	eb := eventbus.NewEventBus()
	disp := dispatcher.NewEventDispatcher(eb)
	client := backend.NewOpenAIClient(cfg)

	// The service is always created; an unconfigured client reports
	// ErrNotConfigured per request
	service := core.NewCompletionService(
		client,
		branding.NewProvider(profile.Branding),
		eb,
		logger,
		cfg.RequestTimeout(),
	)

	model := newAppModel(
		createInitialAppModel(client.Ready()),
		disp,
		errlist.New(),
		logger,
		profile.DumpFormat,
		cfg.ActiveProfile,
		opts.Version,
	)

	logger.Info("Application created",
		zap.String("profile", cfg.ActiveProfile),
		zap.String("model", profile.Model),
		zap.Bool("ready", client.Ready()))

	return &Application{
		config:     cfg,
		logger:     logger,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		model:      model,
	}, nil
}

func (app *Application) Start() error {
	app.service.Start()

	// Branding and backend info are requested once per session
	if err := app.dispatcher.FetchInfo(); err != nil {
		app.logger.Warn("Failed to request info", zap.Error(err))
	}

	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()

	app.logger.Info("Session ended", zap.String("state", app.model.Summary()))
	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()
	_ = app.logger.Sync()
}

func createInitialAppModel(ready bool) models.AppModel {
	status := "Ready"
	if !ready {
		status = "No API key configured. Run 'roricomplete profile add' to create a profile"
	}
	return models.AppModel{
		Status:       status,
		Page:         models.CompletePage,
		Focus:        models.FocusEditor,
		ServiceReady: ready,
	}
}
