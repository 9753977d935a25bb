package tui

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Velesio/velesio-aiserver/internal/searchindex"
	"github.com/Velesio/velesio-aiserver/internal/theme"
	"github.com/Velesio/velesio-aiserver/internal/widget"
)

// ClientID is the preference key the terminal UI stores its theme under.
const ClientID = "terminal"

// Config wires the terminal UI to its collaborators.
type Config struct {
	ProjectName string
	Loader      searchindex.Loader
	// Debounce of zero disables the typing delay, as in the browser script.
	Debounce time.Duration
	Themes   ThemeStore
	// Navigate opens a selected result.
	Navigate   func(url string) error
	ResolveURL func(string) string
}

// programRef hands snapshots to a program that may not exist yet.
// Sends before Store are dropped.
type programRef struct {
	atomic.Pointer[tea.Program]
}

func (r *programRef) Send(msg tea.Msg) {
	if p := r.Load(); p != nil {
		p.Send(msg)
	}
}

// widgetOptions builds the widget configuration for cfg. A zero Debounce
// runs each search pass without delay.
func widgetOptions(cfg Config, send func(tea.Msg)) []widget.Option {
	opts := []widget.Option{
		widget.WithMarker(Marker),
		widget.WithDebounce(max(cfg.Debounce, 0)),
		widget.WithOnUpdate(func(s widget.Snapshot) { send(snapshotMsg{snap: s}) }),
	}
	if cfg.Navigate != nil {
		opts = append(opts, widget.WithNavigator(widget.NavigatorFunc(cfg.Navigate)))
	}
	return opts
}

// Run loads the index and blocks until the user quits.
func Run(ctx context.Context, cfg Config) error {
	var prog programRef
	w := widget.New(widgetOptions(cfg, prog.Send)...)

	mopts := Options{
		ProjectName: cfg.ProjectName,
		Themes:      cfg.Themes,
		ClientID:    ClientID,
		ResolveURL:  cfg.ResolveURL,
	}

	items, err := cfg.Loader.Load(ctx)
	if err != nil {
		slog.Error("failed to initialize search", "error", err)
		mopts.Unavailable = true
	} else {
		w.SetItems(items)
		mopts.Counts = searchindex.CountByType(items)
	}

	mopts.Theme = theme.Light
	if cfg.Themes != nil {
		t, err := cfg.Themes.Get(ctx, ClientID)
		if err != nil {
			slog.Warn("reading theme preference", "error", err)
		} else {
			mopts.Theme = t
		}
	}

	p := tea.NewProgram(NewModel(w, mopts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	prog.Store(p)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running terminal UI: %w", err)
	}
	return nil
}
