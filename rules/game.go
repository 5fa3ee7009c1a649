package rules

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/snekimus/snek/board"
)

// Game owns the snake, the food and the score for a single player session.
// It is not safe for concurrent use; the host loop reads input, calls Update
// and renders from one goroutine.
type Game struct {
	settings Settings
	clock    Clock
	rng      Rand

	id       string
	state    RunState
	score    int
	turn     int64
	cause    string
	snake    *board.Snake
	food     board.Point
	lastTick time.Time
}

// SetDirection turns the snake as soon as the request arrives, so several
// requests between ticks each apply in turn. A request to reverse the
// current heading is ignored.
func (g *Game) SetDirection(d board.Direction) {
	if g.state != RunStateRunning {
		return
	}
	g.snake.SetDirection(d)
}

// Update ticks the game if the snake's speed interval has elapsed since the
// last tick. It reports whether a tick ran.
func (g *Game) Update() bool {
	if g.state != RunStateRunning {
		return false
	}
	now := g.clock.Now()
	if now.Sub(g.lastTick) < g.snake.Speed {
		return false
	}
	g.lastTick = now
	g.Tick()
	return true
}

// Restart begins a new game after a game over. It does nothing while the
// game is still running.
func (g *Game) Restart() {
	if g.state != RunStateGameOver {
		return
	}
	log.WithFields(log.Fields{
		"GameID": g.id,
		"Score":  g.score,
	}).Info("restarting game")
	g.snake.Reset()
	g.start()
}

// State returns whether the game is running or over.
func (g *Game) State() RunState {
	return g.state
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}
