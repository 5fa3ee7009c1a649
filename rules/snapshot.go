package rules

import (
	"time"

	"github.com/snekimus/snek/board"
)

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	ID        string
	State     RunState
	Score     int
	Turn      int64
	Cause     string
	Head      board.Point
	Body      []board.Point
	Direction board.Direction
	Speed     time.Duration
	Food      board.Point
	GridSize  int32
}

// Snapshot copies the current game state.
func (g *Game) Snapshot() Snapshot {
	body := make([]board.Point, len(g.snake.Body))
	copy(body, g.snake.Body)
	return Snapshot{
		ID:        g.id,
		State:     g.state,
		Score:     g.score,
		Turn:      g.turn,
		Cause:     g.cause,
		Head:      g.snake.Head,
		Body:      body,
		Direction: g.snake.Direction,
		Speed:     g.snake.Speed,
		Food:      g.food,
		GridSize:  g.settings.GridSize,
	}
}
