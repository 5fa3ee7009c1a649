package rules

// RunState is whether the game is being played or has ended.
type RunState string

const (
	// RunStateRunning represents a game in progress
	RunStateRunning RunState = "running"
	// RunStateGameOver represents a game that ended in a collision and is
	// waiting for a restart
	RunStateGameOver RunState = "game-over"
)
