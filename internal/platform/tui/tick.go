// Package tui provides the Bubble Tea frontend for pong. It owns the tick
// loop, maps terminal keys and mouse events to match input, and renders the
// field as a grid of cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. Gen identifies the
// registration that produced it; ticks from a cancelled registration are
// dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickScheduler implements pong.Scheduler on top of tea.Tick. The match calls
// Start and Stop synchronously from inside Update, so the scheduler only
// records the command to return; the model drains it afterwards.
type tickScheduler struct {
	interval time.Duration
	gen      uint64
	active   bool
	pending  tea.Cmd
}

func newTickScheduler(tickRate int) *tickScheduler {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &tickScheduler{interval: time.Second / time.Duration(tickRate)}
}

// Start registers the periodic tick. It is a no-op while already registered.
func (s *tickScheduler) Start() {
	if s.active {
		return
	}
	s.active = true
	s.gen++
	s.pending = s.tickCmd(s.gen)
}

// Stop cancels the periodic tick. A TickMsg already in flight is ignored.
func (s *tickScheduler) Stop() {
	if !s.active {
		return
	}
	s.active = false
	s.gen++
	s.pending = nil
}

// Current reports whether msg belongs to the live registration.
func (s *tickScheduler) Current(msg TickMsg) bool {
	return s.active && msg.Gen == s.gen
}

// Next returns the command for the following tick, or nil once stopped.
func (s *tickScheduler) Next() tea.Cmd {
	if !s.active {
		return nil
	}
	return s.tickCmd(s.gen)
}

// Drain returns and clears the command recorded by the last Start.
func (s *tickScheduler) Drain() tea.Cmd {
	cmd := s.pending
	s.pending = nil
	return cmd
}

func (s *tickScheduler) tickCmd(gen uint64) tea.Cmd {
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
