package rules

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/snekimus/snek/board"
)

// Tick runs the game one tick and updates the state. It does nothing once
// the game is over.
func (g *Game) Tick() {
	if g.state != RunStateRunning {
		return
	}
	g.turn++
	ticksMetric.Inc()

	log.WithFields(log.Fields{
		"GameID": g.id,
		"Turn":   g.turn,
		"Move":   g.snake.Direction,
	}).Debug("move")

	// 1. update snake coords
	g.snake.Advance()

	// 2. grow the snake if it ate, otherwise shrink it back to its length
	if g.snake.Occupies(g.food) {
		g.eat()
	} else {
		g.snake.Shrink()
	}

	// 3. check for death
	//    a - wall collision
	//    b - self collision
	if cause := checkForDeath(g.settings.GridSize, g.snake); cause != "" {
		g.state = RunStateGameOver
		g.cause = cause
		deathsMetric.WithLabelValues(cause).Inc()
		log.WithFields(log.Fields{
			"GameID": g.id,
			"Turn":   g.turn,
			"Cause":  cause,
			"Score":  g.score,
		}).Info("game over")
	}
}

func (g *Game) eat() {
	eaten := g.food
	g.food = g.placeFood()
	g.score += g.settings.FoodScore
	g.snake.Speed = time.Duration(float64(g.snake.Speed) * g.settings.SpeedFactor)
	foodEatenMetric.Inc()

	log.WithFields(log.Fields{
		"GameID": g.id,
		"Turn":   g.turn,
		"Food":   eaten,
		"Score":  g.score,
		"Speed":  g.snake.Speed,
	}).Info("snake ate")
}

// placeFood picks the next food cell. Unless AvoidSnake is set the cell may
// be under the snake.
func (g *Game) placeFood() board.Point {
	size := g.settings.GridSize
	if g.settings.AvoidSnake {
		if p, ok := getUnoccupiedPoint(size, g.snake, g.rng); ok {
			return p
		}
	}
	return board.Point{
		X: int32(g.rng.Intn(int(size))),
		Y: int32(g.rng.Intn(int(size))),
	}
}

func getUnoccupiedPoint(size int32, snake *board.Snake, rng Rand) (board.Point, bool) {
	openPoints := getUnoccupiedPoints(size, snake)

	if len(openPoints) == 0 {
		return board.Point{}, false
	}

	return openPoints[rng.Intn(len(openPoints))], true
}

func getUnoccupiedPoints(size int32, snake *board.Snake) []board.Point {
	occupied := make(map[board.Point]bool, len(snake.Body)+1)
	occupied[snake.Head] = true
	for _, b := range snake.Body {
		occupied[b] = true
	}

	candidatePoints := make([]board.Point, 0, int(size)*int(size))
	for x := int32(0); x < size; x++ {
		for y := int32(0); y < size; y++ {
			p := board.Point{X: x, Y: y}
			if !occupied[p] {
				candidatePoints = append(candidatePoints, p)
			}
		}
	}

	return candidatePoints
}
