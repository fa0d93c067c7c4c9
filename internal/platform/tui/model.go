package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// Minimum terminal size that still fits the score, field and status rows.
const (
	minWidth  = 24
	minHeight = 8
)

// Publisher receives a snapshot after every simulated tick.
type Publisher interface {
	Publish(snap pong.Snapshot)
}

// Options configures a terminal match.
type Options struct {
	// HoldFor is how long a key counts as held after its last press or
	// repeat.
	HoldFor time.Duration

	Logger    *log.Logger
	Listeners []pong.Listener
	Publisher Publisher
}

// statusLine implements pong.Display by keeping the latest texts for View.
type statusLine struct {
	score  string
	status string
}

func (s *statusLine) ShowScore(player, ai int) {
	s.score = pong.ScoreText(player, ai)
}

func (s *statusLine) ShowStatus(msg string) {
	s.status = msg
}

// Model is the Bubble Tea model for one pong match.
type Model struct {
	match     *pong.Match
	sched     *tickScheduler
	line      *statusLine
	hold      *keyHold
	keys      KeyMap
	mapper    *KeyMapper
	help      help.Model
	screen    *core.Screen
	canvas    *fieldCanvas
	publisher Publisher
	config    core.RuntimeConfig
	quitting  bool
}

// NewModel creates a Bubble Tea model around a new match.
func NewModel(prm pong.Params, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.HoldFor <= 0 {
		opts.HoldFor = 300 * time.Millisecond
	}

	line := &statusLine{}
	sched := newTickScheduler(cfg.TickRate)
	match := pong.NewMatch(prm, cfg.Seed, line, sched)
	match.SetLogger(opts.Logger)
	for _, l := range opts.Listeners {
		match.AddListener(l)
	}

	keys := DefaultKeyMap()
	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1))

	m := Model{
		match:     match,
		sched:     sched,
		line:      line,
		hold:      newKeyHold(opts.HoldFor),
		keys:      keys,
		mapper:    NewKeyMapper(keys),
		help:      help.New(),
		screen:    screen,
		canvas:    newFieldCanvas(screen, prm.FieldW, prm.FieldH),
		publisher: opts.Publisher,
		config:    cfg,
	}
	m.layout(cfg.ScreenW, cfg.ScreenH)
	return m
}

// Match returns the match driven by the model.
func (m Model) Match() *pong.Match {
	return m.match
}

// Init sets the window title. The tick loop starts on the first acknowledge.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("pong")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case releaseMsg:
		if a, ok := m.hold.Release(msg); ok {
			m.match.KeyUp(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.layout(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mapper.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.sched.Stop()
		return m, tea.Quit
	case core.ActionAcknowledge:
		m.match.Acknowledge()
		return m, m.sched.Drain()
	case core.ActionUp:
		m.match.KeyDown(core.ActionUp)
		return m, m.hold.Press(core.ActionUp)
	case core.ActionDown:
		m.match.KeyDown(core.ActionDown)
		return m, m.hold.Press(core.ActionDown)
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout(m.config.ScreenW, m.config.ScreenH)
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion:
		m.match.PointerMove(m.canvas.FieldY(msg.Y))
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.match.Acknowledge()
			return m, m.sched.Drain()
		}
	}
	return m, nil
}

func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.sched.Current(msg) {
		return m, nil
	}

	m.match.Tick()
	if m.publisher != nil {
		m.publisher.Publish(m.match.Snapshot())
	}
	return m, m.sched.Next()
}

// layout sizes the screen buffer and the field box. The last terminal row
// is left for the help line.
func (m *Model) layout(width, height int) {
	helpRows := 1
	if m.help.ShowAll {
		helpRows = 3
	}
	rows := max(height-helpRows, 1)

	m.screen.Resize(width, rows)
	m.help.Width = width
	// Row 0 holds the score, the last screen row holds the status.
	m.canvas.SetBox(core.NewRect(0, 1, width, max(rows-2, 0)))
}

// render draws the current frame into the screen buffer.
func (m Model) render() {
	m.screen.Clear()
	if m.screen.Width() < minWidth || m.screen.Height() < minHeight-1 {
		m.screen.DrawTextCentered(0, "terminal too small", core.ColorRed)
		return
	}

	m.screen.DrawTextCentered(0, m.line.score, core.ColorBrightWhite)
	m.match.Draw(m.canvas)
	m.screen.DrawTextCentered(m.screen.Height()-1, m.line.status, statusColor(m.match.State()))
}

func statusColor(s pong.State) core.Color {
	switch s {
	case pong.StatePlaying:
		return core.ColorGreen
	case pong.StatePointPause:
		return core.ColorCyan
	case pong.StateMatchOver:
		return core.ColorYellow
	default:
		return core.ColorWhite
	}
}

// saveScreenshot writes the current frame as plain text under
// ~/.pong/screenshots.
func (m *Model) saveScreenshot() {
	m.render()

	dir := filepath.Join(os.Getenv("HOME"), ".pong", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("pong_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, the match continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts a terminal match and blocks until the player quits.
func Run(prm pong.Params, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(prm, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
