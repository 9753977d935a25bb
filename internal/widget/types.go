package widget

import (
	"time"

	"github.com/Velesio/velesio-aiserver/internal/search"
)

// State is the visibility of the results panel.
type State int

const (
	Hidden State = iota
	Visible
)

func (s State) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

// NoSelection is the selection index when no result is selected.
const NoSelection = -1

// DefaultDebounce is the typing-inactivity delay before a search pass.
const DefaultDebounce = 300 * time.Millisecond

// Key is a navigation key understood by the widget.
type Key string

const (
	KeyEscape    Key = "Escape"
	KeyArrowDown Key = "ArrowDown"
	KeyArrowUp   Key = "ArrowUp"
	KeyEnter     Key = "Enter"
)

// Event is one of the interaction events the widget handles.
type Event interface {
	isEvent()
}

// InputEvent carries the full current value of the search input.
type InputEvent struct {
	Value string
}

// FocusEvent is sent when the search input gains focus.
type FocusEvent struct{}

// KeyEvent is a key press inside the search input.
type KeyEvent struct {
	Key Key
}

// PointerEvent is a click anywhere on the page. Inside reports whether it
// landed within the widget's bounds.
type PointerEvent struct {
	Inside bool
}

// ResultClickEvent is a click on a rendered result row.
type ResultClickEvent struct {
	Index int
}

func (InputEvent) isEvent()       {}
func (FocusEvent) isEvent()       {}
func (KeyEvent) isEvent()         {}
func (PointerEvent) isEvent()     {}
func (ResultClickEvent) isEvent() {}

// Snapshot is a copy of the widget state for presentation.
type Snapshot struct {
	Ready    bool
	State    State
	Query    string
	Display  search.Display
	Selected int
	Pending  bool
}

// SelectedResult returns the selected view, if any.
func (s Snapshot) SelectedResult() (search.ResultView, bool) {
	if s.State != Visible || s.Selected < 0 || s.Selected >= len(s.Display.Results) {
		return search.ResultView{}, false
	}
	return s.Display.Results[s.Selected], true
}

// Navigator performs the navigation side effect for a selected result.
type Navigator interface {
	Navigate(url string) error
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(url string) error

func (f NavigatorFunc) Navigate(url string) error { return f(url) }

// Timer is a pending scheduled call.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
