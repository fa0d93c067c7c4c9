package pong

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// State is the phase of a match.
type State int

const (
	StateAwaitingStart State = iota
	StatePlaying
	StatePointPause
	StateMatchOver
)

// String returns a stable name for the state, used in logs and snapshots.
func (s State) String() string {
	switch s {
	case StateAwaitingStart:
		return "awaiting_start"
	case StatePlaying:
		return "playing"
	case StatePointPause:
		return "point_pause"
	case StateMatchOver:
		return "match_over"
	default:
		return "unknown"
	}
}

// Display shows the score line and the status line.
type Display interface {
	ShowScore(player, ai int)
	ShowStatus(msg string)
}

// Scheduler drives Match.Tick at the display rate.
// Start registers the periodic tick and is a no-op while registered;
// Stop cancels it.
type Scheduler interface {
	Start()
	Stop()
}

// Listener receives every event produced by a tick.
type Listener interface {
	HandleEvent(e Event)
}

// Match owns the world and the state machine around it. All methods must be
// called from the single goroutine that drives the frontend.
type Match struct {
	world     World
	state     State
	winner    Side
	ticks     uint64
	rng       *rand.Rand
	display   Display
	scheduler Scheduler
	listeners []Listener
	logger    *log.Logger
}

// NewMatch creates a match waiting for its first acknowledge.
// A nil display or scheduler is replaced with a no-op.
func NewMatch(prm Params, seed int64, display Display, scheduler Scheduler) *Match {
	if display == nil {
		display = nopDisplay{}
	}
	if scheduler == nil {
		scheduler = nopScheduler{}
	}

	m := &Match{
		world:     NewWorld(prm),
		state:     StateAwaitingStart,
		rng:       rand.New(rand.NewSource(seed)),
		display:   display,
		scheduler: scheduler,
		logger:    log.New(io.Discard),
	}

	m.display.ShowScore(0, 0)
	m.display.ShowStatus(m.statusText())
	return m
}

// SetLogger replaces the match logger.
func (m *Match) SetLogger(l *log.Logger) {
	if l != nil {
		m.logger = l
	}
}

// AddListener registers a listener for tick events.
func (m *Match) AddListener(l Listener) {
	m.listeners = append(m.listeners, l)
}

// State returns the current match state.
func (m *Match) State() State {
	return m.state
}

// Scores returns the player and computer scores.
func (m *Match) Scores() (player, ai int) {
	return m.world.Player.Score, m.world.AI.Score
}

// Winner returns the winning side once the match is over.
func (m *Match) Winner() (Side, bool) {
	return m.winner, m.state == StateMatchOver
}

// World returns a copy of the entity state.
func (m *Match) World() World {
	return m.world
}

// Params returns the match constants.
func (m *Match) Params() Params {
	return m.world.Params
}

// Ticks returns the number of simulated ticks.
func (m *Match) Ticks() uint64 {
	return m.ticks
}

// Acknowledge handles the single user trigger. It starts the match, resumes
// after a point, or resets scores and restarts after the match is over.
func (m *Match) Acknowledge() {
	switch m.state {
	case StateAwaitingStart, StatePointPause:
		m.play()
	case StateMatchOver:
		m.restart()
	case StatePlaying:
		// Clicks during play mean nothing.
	}
}

// Tick runs one simulation step. Outside of Playing nothing moves, not even
// the player paddle.
func (m *Match) Tick() []Event {
	if m.state != StatePlaying {
		return nil
	}
	m.ticks++

	events := m.world.Step()
	for _, e := range events {
		m.emit(e)
		if p, ok := e.(PointScored); ok {
			if won := m.scorePoint(p.Scorer); won != nil {
				events = append(events, *won)
			}
		}
	}
	return events
}

func (m *Match) play() {
	m.transition(StatePlaying)
	m.scheduler.Start()
}

func (m *Match) restart() {
	m.world.Player.Score = 0
	m.world.AI.Score = 0
	m.display.ShowScore(0, 0)

	m.transition(StateAwaitingStart)
	m.play()
}

// scorePoint credits the scorer and serves again. It returns the MatchWon
// event when the point decided the match.
func (m *Match) scorePoint(scorer Side) *MatchWon {
	if scorer == SidePlayer {
		m.world.Player.Score++
	} else {
		m.world.AI.Score++
	}
	player, ai := m.Scores()
	m.display.ShowScore(player, ai)
	m.logger.Info("point scored", "scorer", scorer, "player", player, "computer", ai)

	m.world.ServeBall(m.rng)

	if max(player, ai) < m.world.Params.WinScore {
		m.transition(StatePointPause)
		return nil
	}

	m.winner = SideAI
	if player > ai {
		m.winner = SidePlayer
	}
	m.scheduler.Stop()
	m.transition(StateMatchOver)
	m.logger.Info("match over", "winner", m.winner, "player", player, "computer", ai, "ticks", m.ticks)

	won := MatchWon{Winner: m.winner}
	m.emit(won)
	return &won
}

func (m *Match) transition(next State) {
	m.logger.Debug("state transition", "from", m.state, "to", next)
	m.state = next
	m.display.ShowStatus(m.statusText())
}

func (m *Match) emit(e Event) {
	for _, l := range m.listeners {
		l.HandleEvent(e)
	}
}

type nopDisplay struct{}

func (nopDisplay) ShowScore(int, int) {}
func (nopDisplay) ShowStatus(string)  {}

type nopScheduler struct{}

func (nopScheduler) Start() {}
func (nopScheduler) Stop()  {}
