package rules

const (
	// DeathCauseWallCollision is when the snake runs off the board
	DeathCauseWallCollision = "wall-collision"
	// DeathCauseSnakeSelfCollision is when the snake runs into its own body
	DeathCauseSnakeSelfCollision = "self-collision"
)
