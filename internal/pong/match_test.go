package pong

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// scoreFor sets the ball up so the next tick puts it out on the scorer's
// winning side, away from both paddles.
func scoreFor(m *Match, scorer Side) {
	m.world.AI.Y = 300
	m.world.Player.Y = 300
	m.world.Ball.Y, m.world.Ball.DY = 20, 0
	if scorer == SidePlayer {
		m.world.Ball.X, m.world.Ball.DX = 786, 5
	} else {
		m.world.Ball.X, m.world.Ball.DX = 2, -5
	}
}

func TestNewMatchAwaitsStart(t *testing.T) {
	display := &fakeDisplay{}
	sched := &fakeScheduler{}
	m := NewMatch(DefaultParams(), 1, display, sched)

	if m.State() != StateAwaitingStart {
		t.Errorf("new match state = %v, expected awaiting_start", m.State())
	}
	if display.lastScore() != [2]int{0, 0} {
		t.Errorf("score display = %v, expected [0 0]", display.lastScore())
	}
	if display.lastStatus() != "Click to start" {
		t.Errorf("status = %q, expected %q", display.lastStatus(), "Click to start")
	}
	if sched.starts != 0 {
		t.Errorf("scheduler should not start before acknowledge, got %d starts", sched.starts)
	}

	before := m.World()
	m.world.Player.VY = 7
	if events := m.Tick(); events != nil {
		t.Errorf("tick before start should do nothing, got %v", events)
	}
	if m.world.Ball != before.Ball || m.world.Player.Y != before.Player.Y {
		t.Error("nothing should move before the match starts")
	}
}

func TestAcknowledgeStartsPlay(t *testing.T) {
	m, display, sched := newPlayingMatch(t)

	if sched.starts != 1 || !sched.active {
		t.Errorf("scheduler should be registered once, got %d starts", sched.starts)
	}
	if display.lastStatus() != "Game in progress..." {
		t.Errorf("status = %q, expected %q", display.lastStatus(), "Game in progress...")
	}

	// Clicking during play is ignored.
	statuses := len(display.statuses)
	m.Acknowledge()
	if m.State() != StatePlaying || len(display.statuses) != statuses || sched.starts != 1 {
		t.Error("acknowledge during play should be a no-op")
	}
}

func TestComputerPointPausesMatch(t *testing.T) {
	m, display, sched := newPlayingMatch(t)
	m.world.Ball = Ball{X: 5, Y: 100, DX: -5, DY: 0, Speed: 5}

	var scored bool
	for i := 0; i < 2 && !scored; i++ {
		for _, e := range m.Tick() {
			if e == (PointScored{Scorer: SideAI}) {
				scored = true
			}
		}
	}
	if !scored {
		t.Fatal("expected PointScored{Computer} within two ticks")
	}

	if player, ai := m.Scores(); player != 0 || ai != 1 {
		t.Errorf("scores = %d:%d, expected 0:1", player, ai)
	}
	if display.lastScore() != [2]int{0, 1} {
		t.Errorf("score display = %v, expected [0 1]", display.lastScore())
	}
	if m.State() != StatePointPause {
		t.Errorf("state = %v, expected point_pause", m.State())
	}
	if want := "Point! 0 : 1. Click to continue..."; display.lastStatus() != want {
		t.Errorf("status = %q, expected %q", display.lastStatus(), want)
	}

	b := m.world.Ball
	if b.X != 395 || b.Y != 195 {
		t.Errorf("ball should be served from (395, 195), got (%g, %g)", b.X, b.Y)
	}
	if math.Abs(b.DX) != 5 || math.Abs(b.DY) != 5 {
		t.Errorf("serve velocity (%g, %g), expected magnitude 5 per axis", b.DX, b.DY)
	}
	if sched.stops != 0 {
		t.Error("a point pause must keep the tick registered")
	}
}

func TestPointPauseFreezesEverything(t *testing.T) {
	m, _, _ := newPlayingMatch(t)
	scoreFor(m, SidePlayer)
	m.Tick()
	if m.State() != StatePointPause {
		t.Fatalf("state = %v, expected point_pause", m.State())
	}

	frozen := m.World()
	m.KeyDown(core.ActionUp)

	for i := 0; i < 10; i++ {
		if events := m.Tick(); events != nil {
			t.Fatalf("tick during pause returned %v", events)
		}
	}
	if m.world.Ball != frozen.Ball || m.world.Player.Y != frozen.Player.Y || m.world.AI.Y != frozen.AI.Y {
		t.Error("paddles and ball must not move during a point pause")
	}

	m.Acknowledge()
	if m.State() != StatePlaying {
		t.Errorf("acknowledge should resume play, got %v", m.State())
	}
	m.Tick()
	if m.world.Player.Y == frozen.Player.Y {
		t.Error("player paddle should move again after resuming")
	}
}

func TestFivePlayerPointsEndMatch(t *testing.T) {
	m, display, sched := newPlayingMatch(t)
	rec := &eventRecorder{}
	m.AddListener(rec)

	for point := 1; point <= 5; point++ {
		if m.State() == StatePointPause {
			m.Acknowledge()
		}
		scoreFor(m, SidePlayer)
		m.Tick()

		if player, _ := m.Scores(); player != point {
			t.Fatalf("after point %d player score = %d", point, player)
		}
		if point < 5 && m.State() != StatePointPause {
			t.Fatalf("after point %d state = %v, expected point_pause", point, m.State())
		}
	}

	if m.State() != StateMatchOver {
		t.Fatalf("state = %v, expected match_over", m.State())
	}
	if winner, over := m.Winner(); !over || winner != SidePlayer {
		t.Errorf("Winner() = %v, %v; expected Player, true", winner, over)
	}
	if sched.stops != 1 || sched.active {
		t.Errorf("periodic tick should be cancelled once, got %d stops", sched.stops)
	}
	if want := "Game over! Player wins! Click to restart..."; display.lastStatus() != want {
		t.Errorf("status = %q, expected %q", display.lastStatus(), want)
	}

	last := rec.events[len(rec.events)-1]
	if last != (MatchWon{Winner: SidePlayer}) {
		t.Errorf("last event = %v, expected MatchWon{Player}", last)
	}

	// Nothing runs once the match is over.
	before := m.World()
	m.PointerMove(10)
	if events := m.Tick(); events != nil {
		t.Errorf("tick after match over returned %v", events)
	}
	if m.world != before {
		t.Error("world must not change after match over")
	}
}

func TestMatchOverOnlyAtWinningScore(t *testing.T) {
	prm := DefaultParams()
	prm.WinScore = 3

	sequence := []Side{SideAI, SidePlayer, SideAI, SidePlayer, SidePlayer}
	display := &fakeDisplay{}
	m := NewMatch(prm, 5, display, &fakeScheduler{})
	m.Acknowledge()

	for i, scorer := range sequence {
		scoreFor(m, scorer)
		m.Tick()

		player, ai := m.Scores()
		over := m.State() == StateMatchOver
		if over != (max(player, ai) >= prm.WinScore) {
			t.Fatalf("point %d (%d:%d): match over = %v", i+1, player, ai, over)
		}
		if over {
			if i != len(sequence)-1 {
				t.Fatalf("match ended early at point %d", i+1)
			}
			break
		}
		m.Acknowledge()
	}

	if winner, _ := m.Winner(); winner != SidePlayer {
		t.Errorf("winner = %v, expected Player", winner)
	}
}

func TestComputerWinsMatch(t *testing.T) {
	m, display, _ := newPlayingMatch(t)

	for point := 0; point < 5; point++ {
		if m.State() == StatePointPause {
			m.Acknowledge()
		}
		scoreFor(m, SideAI)
		m.Tick()
	}

	if winner, over := m.Winner(); !over || winner != SideAI {
		t.Errorf("Winner() = %v, %v; expected Computer, true", winner, over)
	}
	if want := "Game over! Computer wins! Click to restart..."; display.lastStatus() != want {
		t.Errorf("status = %q, expected %q", display.lastStatus(), want)
	}
}

func TestRestartAfterMatchOver(t *testing.T) {
	m, display, sched := newPlayingMatch(t)
	for point := 0; point < 5; point++ {
		if m.State() == StatePointPause {
			m.Acknowledge()
		}
		scoreFor(m, SideAI)
		m.Tick()
	}
	if m.State() != StateMatchOver {
		t.Fatalf("state = %v, expected match_over", m.State())
	}

	statuses := len(display.statuses)
	starts := sched.starts
	m.Acknowledge()

	if player, ai := m.Scores(); player != 0 || ai != 0 {
		t.Errorf("restart should zero scores, got %d:%d", player, ai)
	}
	if display.lastScore() != [2]int{0, 0} {
		t.Errorf("score display = %v, expected [0 0]", display.lastScore())
	}
	if m.State() != StatePlaying {
		t.Errorf("state = %v, expected playing", m.State())
	}
	if sched.starts != starts+1 || !sched.active {
		t.Errorf("restart should register the tick again, got %d starts", sched.starts-starts)
	}

	got := display.statuses[statuses:]
	want := []string{"Click to start", "Game in progress..."}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("restart statuses = %q, expected %q", got, want)
	}
	if _, over := m.Winner(); over {
		t.Error("Winner() should report no winner after restart")
	}
}

func TestListenersReceiveStepEvents(t *testing.T) {
	m, _, _ := newPlayingMatch(t)
	rec := &eventRecorder{}
	m.AddListener(rec)

	m.world.Ball = Ball{X: 300, Y: 2, DX: 0, DY: -5, Speed: 5}
	m.Tick()

	if len(rec.events) != 1 || rec.events[0] != (WallBounce{}) {
		t.Errorf("listener events = %v, expected [WallBounce]", rec.events)
	}
}

func TestNilCollaborators(t *testing.T) {
	m := NewMatch(DefaultParams(), 1, nil, nil)
	m.SetLogger(nil)
	m.Acknowledge()
	scoreFor(m, SidePlayer)
	m.Tick()

	if m.State() != StatePointPause {
		t.Errorf("state = %v, expected point_pause", m.State())
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		StateAwaitingStart: "awaiting_start",
		StatePlaying:       "playing",
		StatePointPause:    "point_pause",
		StateMatchOver:     "match_over",
		State(42):          "unknown",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("State(%d).String() = %q, expected %q", int(s), s.String(), want)
		}
	}
}

func TestScoreText(t *testing.T) {
	if got := ScoreText(3, 1); got != "Player: 3 | Computer: 1" {
		t.Errorf("ScoreText(3, 1) = %q", got)
	}
}
