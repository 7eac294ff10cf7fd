package core

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Rorical/RoriComplete/internal/backend"
	"github.com/Rorical/RoriComplete/internal/branding"
	"github.com/Rorical/RoriComplete/internal/eventbus"
)

// CompletionService performs every backend and branding call on behalf of
// the UI. Each request runs in its own goroutine under a context that is
// cancelled by CancelRequestEvent, by its timeout, or by Stop.
type CompletionService struct {
	client   backend.Client
	provider branding.Provider
	eventBus *eventbus.EventBus
	logger   *zap.Logger
	timeout  time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	infoOnce sync.Once

	mu       sync.Mutex
	inflight map[uint64]*request // Pending completions by generation

	retryInterval time.Duration // Wait between attempts to deliver a result
}

type request struct {
	cancel context.CancelFunc
}

func NewCompletionService(client backend.Client, provider branding.Provider, eb *eventbus.EventBus, logger *zap.Logger, timeout time.Duration) *CompletionService {
	ctx, cancel := context.WithCancel(context.Background())
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &CompletionService{
		client:   client,
		provider: provider,
		eventBus: eb,
		logger:   logger,
		timeout:  timeout,
		ctx:      ctx,
		cancel:   cancel,
		inflight: make(map[uint64]*request),

		retryInterval: 100 * time.Millisecond,
	}
}

// Start runs the core logic in a goroutine
func (cs *CompletionService) Start() {
	cs.wg.Add(1)
	go cs.eventLoop()
}

// Stop cancels every pending call and waits for the workers to exit
func (cs *CompletionService) Stop() {
	cs.cancel()
	cs.wg.Wait()
}

func (cs *CompletionService) eventLoop() {
	defer cs.wg.Done()
	for {
		select {
		case <-cs.ctx.Done():
			return
		case event, ok := <-cs.eventBus.UIToCore():
			if !ok {
				return
			}
			cs.handleUIEvent(event)
		}
	}
}

func (cs *CompletionService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.FetchInfoEvent:
		cs.infoOnce.Do(cs.fetchInfo)
	case eventbus.RequestCompletionEvent:
		cs.startCompletion(e)
	case eventbus.CancelRequestEvent:
		cs.cancelRequest(e.Generation)
	}
}

// fetchInfo loads branding and backend info concurrently, once per service
func (cs *CompletionService) fetchInfo() {
	ctx, cancel := context.WithTimeout(cs.ctx, cs.timeout)

	var g errgroup.Group
	g.Go(func() error {
		info, err := branding.Fetch(ctx, cs.provider)
		if err != nil {
			cs.logger.Warn("Branding fetch failed, using defaults", zap.Error(err))
		}
		cs.push(eventbus.AppInfoEvent{Info: info, Err: err})
		return nil
	})
	g.Go(func() error {
		info, err := cs.client.Info(ctx)
		if err != nil {
			cs.logger.Warn("Backend info fetch failed", zap.Error(err))
		}
		cs.push(eventbus.BackendInfoEvent{Info: info, Err: err})
		return nil
	})

	cs.wg.Add(1)
	go func() {
		defer cs.wg.Done()
		defer cancel()
		_ = g.Wait()
		cs.logger.Debug("Info fetch finished")
	}()
}

func (cs *CompletionService) startCompletion(e eventbus.RequestCompletionEvent) {
	ctx, cancel := context.WithTimeout(cs.ctx, cs.timeout)
	req := &request{cancel: cancel}

	cs.mu.Lock()
	if previous, ok := cs.inflight[e.Generation]; ok {
		previous.cancel()
	}
	cs.inflight[e.Generation] = req
	cs.mu.Unlock()

	cs.logger.Info("Completion requested", zap.Uint64("generation", e.Generation), zap.Int("prompt_len", len(e.Prompt)))

	cs.wg.Add(1)
	go func() {
		defer cs.wg.Done()
		defer cancel()

		completion, err := cs.client.Complete(ctx, e.Prompt)

		cs.mu.Lock()
		stale := errors.Is(ctx.Err(), context.Canceled)
		if cs.inflight[e.Generation] == req {
			delete(cs.inflight, e.Generation)
		}
		cs.mu.Unlock()

		if stale {
			cs.logger.Debug("Dropping cancelled completion", zap.Uint64("generation", e.Generation))
			return
		}
		if err != nil {
			cs.logger.Error("Completion failed", zap.Uint64("generation", e.Generation), zap.Error(err))
		} else {
			cs.logger.Info("Completion finished", zap.Uint64("generation", e.Generation), zap.String("id", completion.ID))
		}

		cs.deliver(eventbus.CompletionResultEvent{
			Generation: e.Generation,
			Prompt:     e.Prompt,
			Completion: completion,
			Err:        err,
		})
	}()
}

func (cs *CompletionService) cancelRequest(generation uint64) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if req, ok := cs.inflight[generation]; ok {
		req.cancel()
		delete(cs.inflight, generation)
		cs.logger.Info("Completion cancelled", zap.Uint64("generation", generation))
	}
}

// Pending reports how many completions are in flight
func (cs *CompletionService) Pending() int {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return len(cs.inflight)
}

func (cs *CompletionService) push(event eventbus.CoreEvent) {
	if err := cs.eventBus.SendToUI(event); err != nil {
		cs.logger.Error("Error sending event to UI", zap.Error(err))
	}
}

// deliver pushes a result event, retrying while the bus is full or its
// breaker is open. The UI leaves the processing state only when a result
// arrives, so a result is dropped only on shutdown.
func (cs *CompletionService) deliver(event eventbus.CoreEvent) {
	for attempt := 1; ; attempt++ {
		err := cs.eventBus.SendToUI(event)
		if err == nil {
			if attempt > 1 {
				cs.logger.Info("Result delivered after retry", zap.Int("attempts", attempt))
			}
			return
		}
		if errors.Is(err, eventbus.ErrClosed) {
			cs.logger.Warn("Event bus closed, result dropped", zap.Error(err))
			return
		}
		if attempt == 1 {
			cs.logger.Warn("Result delivery delayed", zap.Error(err))
		}

		select {
		case <-cs.ctx.Done():
			return
		case <-time.After(cs.retryInterval):
		}
	}
}
