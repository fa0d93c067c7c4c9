package pong

import "fmt"

// ScoreText formats the score line.
func ScoreText(player, ai int) string {
	return fmt.Sprintf("%s: %d | %s: %d", SidePlayer, player, SideAI, ai)
}

func (m *Match) statusText() string {
	switch m.state {
	case StateAwaitingStart:
		return "Click to start"
	case StatePlaying:
		return "Game in progress..."
	case StatePointPause:
		player, ai := m.Scores()
		return fmt.Sprintf("Point! %d : %d. Click to continue...", player, ai)
	case StateMatchOver:
		return fmt.Sprintf("Game over! %s wins! Click to restart...", m.winner)
	default:
		return ""
	}
}
