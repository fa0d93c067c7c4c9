package pong

import (
	"math"
	"testing"
)

type fakeDisplay struct {
	scores   [][2]int
	statuses []string
}

func (d *fakeDisplay) ShowScore(player, ai int) {
	d.scores = append(d.scores, [2]int{player, ai})
}

func (d *fakeDisplay) ShowStatus(msg string) {
	d.statuses = append(d.statuses, msg)
}

func (d *fakeDisplay) lastStatus() string {
	if len(d.statuses) == 0 {
		return ""
	}
	return d.statuses[len(d.statuses)-1]
}

func (d *fakeDisplay) lastScore() [2]int {
	if len(d.scores) == 0 {
		return [2]int{-1, -1}
	}
	return d.scores[len(d.scores)-1]
}

type fakeScheduler struct {
	starts int
	stops  int
	active bool
}

func (s *fakeScheduler) Start() {
	s.starts++
	s.active = true
}

func (s *fakeScheduler) Stop() {
	s.stops++
	s.active = false
}

type eventRecorder struct {
	events []Event
}

func (r *eventRecorder) HandleEvent(e Event) {
	r.events = append(r.events, e)
}

func newPlayingMatch(t *testing.T) (*Match, *fakeDisplay, *fakeScheduler) {
	t.Helper()

	display := &fakeDisplay{}
	sched := &fakeScheduler{}
	m := NewMatch(DefaultParams(), 42, display, sched)
	m.Acknowledge()

	if m.State() != StatePlaying {
		t.Fatalf("match should be playing after acknowledge, got %v", m.State())
	}
	return m, display, sched
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
