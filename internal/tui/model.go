// Package tui is a terminal front end for the search widget.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Velesio/velesio-aiserver/internal/search"
	"github.com/Velesio/velesio-aiserver/internal/searchindex"
	"github.com/Velesio/velesio-aiserver/internal/theme"
	"github.com/Velesio/velesio-aiserver/internal/widget"
)

// Marker wraps highlighted matches in control characters that the view
// replaces with the highlight style.
var Marker = search.Marker{Open: "\x01", Close: "\x02"}

const (
	headerHeight   = 1
	inputHeight    = 3
	resultsTop     = headerHeight + inputHeight
	linesPerResult = 3
	footerHeight   = 2
	sidebarWidth   = 26
	copiedFor      = 2 * time.Second
)

// ThemeStore reads and flips the persisted theme.
type ThemeStore interface {
	Get(ctx context.Context, clientID string) (theme.Theme, error)
	Toggle(ctx context.Context, clientID string) (theme.Theme, error)
}

// Options configures a Model.
type Options struct {
	ProjectName string
	Theme       theme.Theme
	Themes      ThemeStore
	ClientID    string
	Counts      map[searchindex.ItemType]int
	Unavailable bool
	// Copy writes text to the clipboard. Defaults to clipboard.WriteAll.
	Copy func(string) error
	// ResolveURL turns a result URL into the address shown and copied.
	ResolveURL func(string) string
}

type snapshotMsg struct {
	snap widget.Snapshot
}

type clearStatusMsg struct{}

// Model is the bubbletea model wrapping a widget.
type Model struct {
	w     *widget.Widget
	opts  Options
	snap  widget.Snapshot
	input textinput.Model
	keys  keyMap
	help  help.Model

	theme  theme.Theme
	styles Styles

	showSidebar bool
	status      string
	err         error

	width  int
	height int
}

// NewModel creates a model driving w.
func NewModel(w *widget.Widget, opts Options) Model {
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	if opts.ResolveURL == nil {
		opts.ResolveURL = func(u string) string { return u }
	}
	if opts.ProjectName == "" {
		opts.ProjectName = "Documentation"
	}

	ti := textinput.New()
	ti.Placeholder = "Search documentation..."
	ti.Prompt = "/ "
	ti.CharLimit = 200
	ti.Focus()

	t := opts.Theme
	if t != theme.Dark {
		t = theme.Light
	}

	return Model{
		w:      w,
		opts:   opts,
		snap:   w.Snapshot(),
		input:  ti,
		keys:   defaultKeyMap(),
		help:   help.New(),
		theme:  t,
		styles: StylesFor(t),
		width:  80,
		height: 24,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(m.mainWidth()-8, 10)
		return m, nil

	case snapshotMsg:
		m.snap = msg.snap
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Close):
		m.snap = m.w.Handle(widget.KeyEvent{Key: widget.KeyEscape})
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.snap = m.w.Handle(widget.KeyEvent{Key: widget.KeyArrowUp})
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.snap = m.w.Handle(widget.KeyEvent{Key: widget.KeyArrowDown})
		return m, nil

	case key.Matches(msg, m.keys.Open):
		m.snap = m.w.Handle(widget.KeyEvent{Key: widget.KeyEnter})
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		if m.input.Focused() {
			m.input.Blur()
			return m, nil
		}
		return m.focusInput()

	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Sidebar):
		m.showSidebar = !m.showSidebar
		m.input.Width = max(m.mainWidth()-8, 10)
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m.copySelected()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if !m.input.Focused() {
		return m, nil
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.snap = m.w.Handle(widget.InputEvent{Value: v})
	}
	return m, cmd
}

func (m Model) focusInput() (tea.Model, tea.Cmd) {
	cmd := m.input.Focus()
	m.snap = m.w.Handle(widget.FocusEvent{})
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	x := msg.X - m.mainOffset()
	y := msg.Y
	if x < 0 {
		m.snap = m.w.Handle(widget.PointerEvent{Inside: false})
		return m, nil
	}

	if y >= headerHeight && y < resultsTop {
		return m.focusInput()
	}

	if idx, ok := m.resultAt(y); ok {
		m.snap = m.w.Handle(widget.ResultClickEvent{Index: idx})
		return m, nil
	}

	inside := y < resultsTop+m.panelHeight()
	m.snap = m.w.Handle(widget.PointerEvent{Inside: inside})
	return m, nil
}

// resultAt maps a screen row to the index of the result drawn there.
func (m Model) resultAt(y int) (int, bool) {
	if m.snap.State != widget.Visible || m.snap.Display.Empty || y < resultsTop {
		return 0, false
	}
	first, last := m.visibleRange()
	idx := first + (y-resultsTop)/linesPerResult
	if idx >= last {
		return 0, false
	}
	return idx, true
}

func (m *Model) toggleTheme() {
	next := m.theme.Toggle()
	if m.opts.Themes != nil {
		t, err := m.opts.Themes.Toggle(context.Background(), m.opts.ClientID)
		if err != nil {
			slog.Error("toggling theme", "error", err)
			m.err = err
			return
		}
		next = t
	}
	m.err = nil
	m.theme = next
	m.styles = StylesFor(next)
}

func (m Model) copySelected() (tea.Model, tea.Cmd) {
	r, ok := m.snap.SelectedResult()
	if !ok {
		return m, nil
	}
	if err := m.opts.Copy(m.opts.ResolveURL(r.URL)); err != nil {
		slog.Error("copying link", "url", r.URL, "error", err)
		return m, nil
	}
	m.status = "Copied!"
	return m, tea.Tick(copiedFor, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m Model) mainOffset() int {
	if m.showSidebar {
		return sidebarWidth
	}
	return 0
}

func (m Model) mainWidth() int {
	return max(m.width-m.mainOffset(), 20)
}

// visibleRange returns the half-open range of results that fit on screen,
// scrolled so the selection stays visible.
func (m Model) visibleRange() (int, int) {
	n := len(m.snap.Display.Results)
	room := max((m.height-resultsTop-footerHeight)/linesPerResult, 1)
	first := 0
	if m.snap.Selected >= room {
		first = m.snap.Selected - room + 1
	}
	return first, min(first+room, n)
}

// panelHeight is the number of rows the results panel occupies.
func (m Model) panelHeight() int {
	if m.snap.State != widget.Visible {
		return 0
	}
	if m.snap.Display.Empty {
		return 1
	}
	first, last := m.visibleRange()
	return (last - first) * linesPerResult
}

func (m Model) View() string {
	s := m.styles
	width := m.mainWidth()

	var b strings.Builder
	b.WriteString(s.Header.Render(m.opts.ProjectName+" search") + "\n")
	b.WriteString(s.Input.Width(width-4).Render(m.input.View()) + "\n")

	switch {
	case m.opts.Unavailable:
		b.WriteString(s.Error.Render("Search is unavailable: the index could not be loaded.") + "\n")
	case m.snap.State != widget.Visible:
	case m.snap.Display.Empty:
		b.WriteString(s.Empty.Render(search.NoResultsText) + "\n")
	default:
		first, last := m.visibleRange()
		for i := first; i < last; i++ {
			b.WriteString(m.renderResult(m.snap.Display.Results[i], i == m.snap.Selected, width))
		}
	}

	used := resultsTop + m.panelHeight()
	if m.opts.Unavailable {
		used = resultsTop + 1
	}
	if pad := m.height - used - footerHeight; pad > 0 {
		b.WriteString(strings.Repeat("\n", pad))
	}

	switch {
	case m.err != nil:
		b.WriteString(s.Error.Render(m.err.Error()))
	case m.status != "":
		b.WriteString(s.Status.Render(m.status))
	}
	b.WriteString("\n" + m.help.View(m.keys))

	main := b.String()
	if !m.showSidebar {
		return main
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), main)
}

func (m Model) renderResult(r search.ResultView, selected bool, width int) string {
	s := m.styles
	titleStyle := s.Title
	prefix := "  "
	if selected {
		titleStyle = s.Selected
		prefix = "> "
	}

	title := prefix + renderMarked(r.Title, width-2, titleStyle.Render, s.Highlight.Render)
	meta := "  " + s.Meta.Render(fmt.Sprintf("%s • %s", r.TypeLabel, m.opts.ResolveURL(r.URL)))
	excerpt := "  " + renderMarked(r.Excerpt, width-2, s.Excerpt.Render, s.Highlight.Render)
	return title + "\n" + meta + "\n" + excerpt + "\n"
}

func (m Model) renderSidebar() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Collections") + "\n\n")
	for _, t := range searchindex.Types {
		fmt.Fprintf(&b, "%-17s %3d\n", search.TypeLabel(t), m.opts.Counts[t])
	}
	b.WriteString("\n" + m.styles.Meta.Render("theme: "+string(m.theme)))
	return m.styles.Sidebar.Width(sidebarWidth - 1).Height(max(m.height-1, 1)).Render(b.String())
}

// renderMarked styles text containing Marker pairs, drawing up to limit
// visible runes. Nested markers from overlapping tokens stay highlighted
// until the outermost one closes.
func renderMarked(text string, limit int, normal, highlight func(...string) string) string {
	var out, seg strings.Builder
	depth := 0
	flush := func() {
		if seg.Len() == 0 {
			return
		}
		if depth > 0 {
			out.WriteString(highlight(seg.String()))
		} else {
			out.WriteString(normal(seg.String()))
		}
		seg.Reset()
	}

	visible := strings.NewReplacer(Marker.Open, "", Marker.Close, "").Replace(text)
	if utf8.RuneCountInString(visible) <= limit {
		limit = 0
	}

	shown := 0
	for _, r := range text {
		switch string(r) {
		case Marker.Open:
			flush()
			depth++
			continue
		case Marker.Close:
			flush()
			if depth > 0 {
				depth--
			}
			continue
		}
		if limit > 0 && shown >= limit-1 {
			seg.WriteString("…")
			break
		}
		if r == '\n' || r == '\t' {
			r = ' '
		}
		seg.WriteRune(r)
		shown++
	}
	flush()
	return out.String()
}
