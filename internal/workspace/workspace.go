package workspace

import (
	"time"

	"github.com/google/uuid"

	"github.com/Rorical/RoriComplete/internal/models"
)

// Ticket identifies one submitted request. A ticket whose generation no
// longer matches the workspace is stale and its result is discarded.
type Ticket struct {
	Generation uint64
	Prompt     string
}

// Workspace is the interaction-history state machine behind the complete page.
// It is owned by the UI update loop and is not safe for concurrent use.
type Workspace struct {
	content      string
	processing   bool
	history      []models.Interaction
	selected     int // index into history, -1 when nothing is selected
	settingsOpen bool
	generation   uint64

	now   func() time.Time
	newID func() string
}

func New() *Workspace {
	return &Workspace{
		history:  make([]models.Interaction, 0),
		selected: -1,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

func (w *Workspace) Content() string    { return w.content }
func (w *Workspace) Processing() bool   { return w.processing }
func (w *Workspace) SettingsOpen() bool { return w.settingsOpen }
func (w *Workspace) Generation() uint64 { return w.generation }

// SetContent replaces the draft prompt
func (w *Workspace) SetContent(content string) {
	w.content = content
}

func (w *Workspace) CanSubmit() bool {
	return w.content != "" && !w.processing
}

func (w *Workspace) CanClear() bool {
	return w.content != ""
}

// Submit enters the submitting state and returns the ticket for the request
// the caller must send. It returns false when the guard rejects the submit.
func (w *Workspace) Submit() (Ticket, bool) {
	if !w.CanSubmit() {
		return Ticket{}, false
	}
	w.processing = true
	return Ticket{Generation: w.generation, Prompt: w.content}, true
}

// Complete applies a successful response. Stale tickets are ignored and
// false is returned. The draft is intentionally left in place.
func (w *Workspace) Complete(t Ticket, resp models.Completion) bool {
	if !w.current(t) {
		return false
	}
	w.history = append(w.history, models.Interaction{
		ID:          w.newID(),
		Query:       t.Prompt,
		Response:    resp,
		CompletedAt: w.now(),
	})
	w.selected = len(w.history) - 1
	w.processing = false
	return true
}

// Fail returns the workspace to idle after a failed request. Stale tickets
// are ignored and false is returned.
func (w *Workspace) Fail(t Ticket) bool {
	if !w.current(t) {
		return false
	}
	w.processing = false
	return true
}

// Clear resets the draft, history and selection, and marks any in-flight
// request stale. The previous generation is returned so the caller can
// cancel the request it belongs to.
func (w *Workspace) Clear() (uint64, bool) {
	if !w.CanClear() {
		return 0, false
	}
	stale := w.generation
	w.generation++
	w.content = ""
	w.history = make([]models.Interaction, 0)
	w.selected = -1
	w.processing = false
	return stale, true
}

// Select points the detail view at the interaction shown at index in
// Timeline order.
func (w *Workspace) Select(index int) bool {
	n := len(w.history)
	if index < 0 || index >= n {
		return false
	}
	w.selected = n - 1 - index
	return true
}

func (w *Workspace) ToggleSettings() {
	w.settingsOpen = !w.settingsOpen
}

func (w *Workspace) CloseSettings() {
	w.settingsOpen = false
}

// Selected returns the interaction shown in the detail view
func (w *Workspace) Selected() (models.Interaction, bool) {
	if w.selected < 0 {
		return models.Interaction{}, false
	}
	return w.history[w.selected], true
}

// History returns interactions in completion order
func (w *Workspace) History() []models.Interaction {
	result := make([]models.Interaction, len(w.history))
	copy(result, w.history)
	return result
}

// Timeline returns interactions most recent first
func (w *Workspace) Timeline() []models.Interaction {
	n := len(w.history)
	result := make([]models.Interaction, n)
	for i, it := range w.history {
		result[n-1-i] = it
	}
	return result
}

func (w *Workspace) ShowHistory() bool {
	return len(w.history) > 0
}

func (w *Workspace) ShowEmptyHint() bool {
	return len(w.history) == 0
}

func (w *Workspace) current(t Ticket) bool {
	return w.processing && t.Generation == w.generation
}
