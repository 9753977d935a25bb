package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Velesio/velesio-aiserver/internal/widget"
)

type recordingScheduler struct {
	delays []time.Duration
	funcs  []func()
}

func (s *recordingScheduler) AfterFunc(d time.Duration, f func()) widget.Timer {
	s.delays = append(s.delays, d)
	s.funcs = append(s.funcs, f)
	return &manualTimer{}
}

func TestWidgetOptionsDebounce(t *testing.T) {
	tests := []struct {
		name     string
		debounce time.Duration
		want     time.Duration
	}{
		{"zero runs immediately", 0, 0},
		{"configured", 150 * time.Millisecond, 150 * time.Millisecond},
		{"negative treated as zero", -time.Second, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sent []tea.Msg
			sched := &recordingScheduler{}
			opts := widgetOptions(Config{Debounce: tt.debounce}, func(m tea.Msg) { sent = append(sent, m) })
			w := widget.New(append(opts, widget.WithScheduler(sched))...)
			w.SetItems(testItems)

			w.Handle(widget.InputEvent{Value: "setup"})
			require.Equal(t, []time.Duration{tt.want}, sched.delays)

			sched.funcs[0]()
			require.Len(t, sent, 1)
			msg, ok := sent[0].(snapshotMsg)
			require.True(t, ok)
			assert.Equal(t, widget.Visible, msg.snap.State)
		})
	}
}

func TestProgramRefDropsSendsBeforeStore(t *testing.T) {
	var ref programRef
	assert.NotPanics(t, func() { ref.Send(snapshotMsg{}) })
	assert.Nil(t, ref.Load())

	p := tea.NewProgram(nil)
	ref.Store(p)
	assert.Same(t, p, ref.Load())
}
