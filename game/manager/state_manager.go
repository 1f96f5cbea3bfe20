package manager

import (
	"dp-effects/game/types"
)

// StateManager owns the lifecycle of one grid game:
// NotStarted -> Running -> GameOver -> (restart) -> Running.
// Reset returns to NotStarted from anywhere.
type StateManager struct {
	state     types.State
	highScore int
	games     int
}

func NewStateManager() *StateManager {
	return &StateManager{state: types.NotStarted}
}

func (sm *StateManager) State() types.State {
	return sm.state
}

func (sm *StateManager) Running() bool {
	return sm.state == types.Running
}

// Begin enters Running. Legal from NotStarted and GameOver.
func (sm *StateManager) Begin() bool {
	if sm.state == types.Running {
		return false
	}
	sm.state = types.Running
	sm.games++
	return true
}

// End moves a running game to GameOver and records its score
func (sm *StateManager) End(score int) bool {
	if sm.state != types.Running {
		return false
	}
	sm.state = types.GameOver
	if score > sm.highScore {
		sm.highScore = score
	}
	return true
}

func (sm *StateManager) Reset() {
	sm.state = types.NotStarted
}

// GetHighScore returns the best score of this session. It is never persisted.
func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

// Games returns how many games were started this session
func (sm *StateManager) Games() int {
	return sm.games
}
