package rules

import "github.com/snekimus/snek/board"

// checkForDeath looks at the snake with its updated coords and returns the
// cause of death, or an empty string if it survived. The wall check runs
// first and the body check overrides it.
func checkForDeath(size int32, s *board.Snake) string {
	cause := ""
	if deathByOutOfBounds(s.Head, size) {
		cause = DeathCauseWallCollision
	}

	if s.Collides() {
		cause = DeathCauseSnakeSelfCollision
	}
	return cause
}

func deathByOutOfBounds(head board.Point, size int32) bool {
	return !head.In(size)
}
