package tui

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

type snapshotRecorder struct {
	snaps []pong.Snapshot
}

func (r *snapshotRecorder) Publish(snap pong.Snapshot) {
	r.snaps = append(r.snaps, snap)
}

func newTestModel(t *testing.T, pub Publisher) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	return NewModel(pong.DefaultParams(), cfg, Options{
		HoldFor:   time.Millisecond,
		Publisher: pub,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func TestModelInitialView(t *testing.T) {
	m := newTestModel(t, nil)

	view := m.View()
	for _, want := range []string{"Player: 0 | Computer: 0", "Click to start"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if m.Match().State() != pong.StateAwaitingStart {
		t.Errorf("state = %v, expected awaiting_start", m.Match().State())
	}
}

func TestModelAcknowledgeStartsTickLoop(t *testing.T) {
	rec := &snapshotRecorder{}
	m := newTestModel(t, rec)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if cmd == nil {
		t.Fatal("starting the match should return the first tick command")
	}
	if m.Match().State() != pong.StatePlaying {
		t.Fatalf("state = %v, expected playing", m.Match().State())
	}

	// A second acknowledge during play must not start another loop.
	m, cmd = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if cmd != nil {
		t.Error("acknowledge during play should not schedule another tick")
	}

	m, cmd = update(t, m, TickMsg{Gen: m.sched.gen})
	if m.Match().Ticks() != 1 {
		t.Errorf("ticks = %d, expected 1", m.Match().Ticks())
	}
	if cmd == nil {
		t.Error("a tick should schedule the next one")
	}
	if len(rec.snaps) != 1 || rec.snaps[0].Tick != 1 {
		t.Errorf("published %d snapshots, expected one for tick 1", len(rec.snaps))
	}

	m, cmd = update(t, m, TickMsg{Gen: m.sched.gen - 1})
	if m.Match().Ticks() != 1 || cmd != nil {
		t.Error("stale ticks should be dropped")
	}
}

func TestModelKeyHold(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})

	m, cmd := update(t, m, runeKey('w'))
	if cmd == nil {
		t.Fatal("movement key should schedule its release")
	}
	if vy := m.Match().World().Player.VY; vy != -7 {
		t.Errorf("VY = %g, expected -7", vy)
	}

	m, _ = update(t, m, cmd())
	if vy := m.Match().World().Player.VY; vy != 0 {
		t.Errorf("VY after release = %g, expected 0", vy)
	}
}

func TestModelMouseMotionMovesPaddle(t *testing.T) {
	m := newTestModel(t, nil)

	// Before the match starts the pointer is ignored.
	m, _ = update(t, m, tea.MouseMsg{Y: 3, Action: tea.MouseActionMotion})
	if y := m.Match().World().Player.Y; y != 150 {
		t.Errorf("paddle y = %g before start, expected 150", y)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.MouseMsg{Y: 11, Action: tea.MouseActionMotion})

	// Row 11 is the middle of the 19 field rows starting at row 2.
	if y := m.Match().World().Player.Y; math.Abs(y-150) > 1e-9 {
		t.Errorf("paddle y = %g, expected 150", y)
	}
}

func TestModelResizeKeepsMatch(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, TickMsg{Gen: m.sched.gen})
	before := m.Match().World()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.Match().World() != before {
		t.Error("resizing should not change the world")
	}
	if m.screen.Width() != 120 {
		t.Errorf("screen width = %d, expected 120", m.screen.Width())
	}
}

func TestModelTooSmall(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 4})

	if !strings.Contains(m.View(), "too small") {
		t.Error("expected a too-small notice")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
	if m.sched.active {
		t.Error("quit should stop the tick loop")
	}
}
