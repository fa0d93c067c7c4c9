package core

// Action represents a semantic input, abstracted from physical key presses
// and pointer clicks.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // W, Up arrow - paddle up
	ActionDown               // S, Down arrow - paddle down
	ActionAcknowledge        // Click, Space, Enter - start / continue / restart
	ActionQuit               // Q, Ctrl+C - leave the match
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionAcknowledge:
		return "Acknowledge"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
