package widget

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Velesio/velesio-aiserver/internal/search"
	"github.com/Velesio/velesio-aiserver/internal/searchindex"
)

// Widget is one search widget instance. It owns the input value, the
// debounce handle, the visibility state and the selection index. All
// events go through Handle; debounced passes complete on the scheduler's
// goroutine and are reported through the OnUpdate callback.
type Widget struct {
	mu sync.Mutex

	items []searchindex.Item
	ready bool

	marker   search.Marker
	debounce time.Duration
	sched    Scheduler
	nav      Navigator
	onUpdate func(Snapshot)

	input    string
	state    State
	display  search.Display
	selected int

	pending Timer
	gen     uint64
}

// Option configures a Widget.
type Option func(*Widget)

// WithDebounce sets the typing-inactivity delay.
func WithDebounce(d time.Duration) Option {
	return func(w *Widget) { w.debounce = d }
}

// WithScheduler replaces the wall-clock scheduler.
func WithScheduler(s Scheduler) Option {
	return func(w *Widget) { w.sched = s }
}

// WithNavigator sets the navigation side effect.
func WithNavigator(n Navigator) Option {
	return func(w *Widget) { w.nav = n }
}

// WithMarker sets the highlight marker used for rendering.
func WithMarker(m search.Marker) Option {
	return func(w *Widget) { w.marker = m }
}

// WithOnUpdate registers a callback for snapshots produced by debounced passes.
func WithOnUpdate(fn func(Snapshot)) Option {
	return func(w *Widget) { w.onUpdate = fn }
}

// New creates an inert widget. Call Load or SetItems to activate it.
func New(opts ...Option) *Widget {
	w := &Widget{
		marker:   search.HTMLMarker,
		debounce: DefaultDebounce,
		sched:    realScheduler{},
		selected: NoSelection,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Load fetches the item list once. On failure the error is logged, the
// widget stays inert for its whole life and the error is returned.
func (w *Widget) Load(ctx context.Context, loader searchindex.Loader) error {
	items, err := loader.Load(ctx)
	if err != nil {
		slog.Error("failed to initialize search", "error", err)
		return err
	}
	w.SetItems(items)
	return nil
}

// SetItems activates the widget with an already loaded item list.
func (w *Widget) SetItems(items []searchindex.Item) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.ready {
		return
	}
	w.items = items
	w.ready = true
}

// Snapshot returns the current state.
func (w *Widget) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

// Handle applies one event and returns the resulting state. An inert
// widget ignores every event.
func (w *Widget) Handle(ev Event) Snapshot {
	w.mu.Lock()
	if !w.ready {
		snap := w.snapshotLocked()
		w.mu.Unlock()
		return snap
	}

	var navigateTo string
	switch ev := ev.(type) {
	case InputEvent:
		w.input = ev.Value
		w.cancelPendingLocked()
		query := strings.TrimSpace(ev.Value)
		if search.QueryTooShort(query) {
			w.hideLocked()
			break
		}
		w.scheduleLocked(query)

	case FocusEvent:
		query := strings.TrimSpace(w.input)
		if !search.QueryTooShort(query) {
			w.runLocked(query)
		}

	case KeyEvent:
		navigateTo = w.handleKeyLocked(ev.Key)

	case PointerEvent:
		if !ev.Inside {
			w.hideLocked()
		}

	case ResultClickEvent:
		if w.state == Visible && ev.Index >= 0 && ev.Index < len(w.display.Results) {
			navigateTo = w.display.Results[ev.Index].URL
		}
	}

	snap := w.snapshotLocked()
	w.mu.Unlock()

	if navigateTo != "" {
		w.navigate(navigateTo)
	}
	return snap
}

func (w *Widget) handleKeyLocked(k Key) string {
	switch k {
	case KeyEscape:
		w.hideLocked()
	case KeyArrowDown:
		n := len(w.display.Results)
		if w.state != Visible || n == 0 {
			return ""
		}
		w.selected = min(w.selected+1, n-1)
	case KeyArrowUp:
		if w.state != Visible || len(w.display.Results) == 0 {
			return ""
		}
		w.selected = max(w.selected-1, NoSelection)
	case KeyEnter:
		if w.state == Visible && w.selected >= 0 && w.selected < len(w.display.Results) {
			return w.display.Results[w.selected].URL
		}
	}
	return ""
}

func (w *Widget) navigate(url string) {
	if w.nav == nil {
		return
	}
	if err := w.nav.Navigate(url); err != nil {
		slog.Error("navigating to search result", "url", url, "error", err)
	}
}

// scheduleLocked arms a single debounced pass. The generation counter makes
// a timer that already fired but lost the race with a newer keystroke a no-op.
func (w *Widget) scheduleLocked(query string) {
	w.gen++
	gen := w.gen
	w.pending = w.sched.AfterFunc(w.debounce, func() {
		w.fire(gen, query)
	})
}

func (w *Widget) fire(gen uint64, query string) {
	w.mu.Lock()
	if gen != w.gen || w.pending == nil {
		w.mu.Unlock()
		return
	}
	w.pending = nil
	w.runLocked(query)
	snap := w.snapshotLocked()
	onUpdate := w.onUpdate
	w.mu.Unlock()

	if onUpdate != nil {
		onUpdate(snap)
	}
}

func (w *Widget) cancelPendingLocked() {
	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
	}
	w.gen++
}

// runLocked performs one search pass. Rendering always makes the panel
// visible, including the "no results" case, and clears the selection.
func (w *Widget) runLocked(query string) {
	results := search.Search(query, w.items)
	w.display = search.Render(results, query, w.marker)
	w.state = Visible
	w.selected = NoSelection
}

func (w *Widget) hideLocked() {
	w.state = Hidden
	w.selected = NoSelection
}

func (w *Widget) snapshotLocked() Snapshot {
	return Snapshot{
		Ready:    w.ready,
		State:    w.state,
		Query:    w.input,
		Display:  w.display,
		Selected: w.selected,
		Pending:  w.pending != nil,
	}
}
