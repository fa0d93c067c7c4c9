package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// KeyMap holds the key bindings of a match.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Start      key.Binding
	Help       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Start, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Start},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "W"),
			key.WithHelp("↑/w", "paddle up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "S"),
			key.WithHelp("↓/s", "paddle down"),
		),
		Start: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space/click", "start/continue"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to match actions.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper over the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to an action. Keys without a match
// action (help, screenshot, unbound keys) map to ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Up):
		return core.ActionUp
	case key.Matches(msg, km.keys.Down):
		return core.ActionDown
	case key.Matches(msg, km.keys.Start):
		return core.ActionAcknowledge
	}
	return core.ActionNone
}

// releaseMsg ends a synthesized key hold.
type releaseMsg struct {
	seq uint64
}

// keyHold turns terminal key presses into press/release pairs. Terminals
// report repeats while a key is held but never its release, so a hold ends
// when no repeat arrives within holdFor.
type keyHold struct {
	holdFor time.Duration
	action  core.Action
	seq     uint64
}

func newKeyHold(holdFor time.Duration) *keyHold {
	return &keyHold{holdFor: holdFor}
}

// Press records a press (or repeat) of a and returns the command that
// delivers its release.
func (h *keyHold) Press(a core.Action) tea.Cmd {
	h.action = a
	h.seq++
	seq := h.seq
	return tea.Tick(h.holdFor, func(time.Time) tea.Msg {
		return releaseMsg{seq: seq}
	})
}

// Release returns the held action if msg is the release of the latest
// press. Releases superseded by a later press are ignored.
func (h *keyHold) Release(msg releaseMsg) (core.Action, bool) {
	if msg.seq != h.seq || h.action == core.ActionNone {
		return core.ActionNone, false
	}
	a := h.action
	h.action = core.ActionNone
	return a, true
}
