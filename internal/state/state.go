// Package state implements the game mode state machine: the current mode, a
// pending transition applied at the end of a frame, and the registry of rules
// and enter/exit hooks for each mode.
package state

// State is the game's current mode
type State int

const (
	Loading State = iota
	Menu
	Playing
	Paused
	GameOver
	Cleanup
)

// String returns the mode name
func (s State) String() string {
	switch s {
	case Loading:
		return "Loading"
	case Menu:
		return "Menu"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case GameOver:
		return "GameOver"
	case Cleanup:
		return "Cleanup"
	default:
		return "Unknown"
	}
}

// Setter requests a transition. The change takes effect at the end of the
// current frame.
type Setter interface {
	Set(next State)
	Current() State
}
