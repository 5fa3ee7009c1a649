package rules

import (
	"time"

	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
	"github.com/snekimus/snek/board"
)

// Defaults used for any zero valued Settings field. GridSize is capped at
// MaxGridSize.
const (
	DefaultGridSize    int32   = 16
	MaxGridSize        int32   = 256
	DefaultSpeedFactor float64 = 0.9
	DefaultFoodScore           = 100
)

// Settings tunes a game. Zero values fall back to the defaults.
type Settings struct {
	// GridSize is the width and height of the square board.
	GridSize int32
	// InitialSpeed is the tick interval at the start of a game.
	InitialSpeed time.Duration
	// SpeedFactor multiplies the tick interval each time food is eaten.
	SpeedFactor float64
	// FoodScore is added to the score for each food eaten.
	FoodScore int
	// AvoidSnake places new food only on cells the snake does not cover.
	AvoidSnake bool
}

func (s Settings) withDefaults() Settings {
	if s.GridSize <= 0 {
		s.GridSize = DefaultGridSize
	}
	if s.GridSize > MaxGridSize {
		s.GridSize = MaxGridSize
	}
	if s.InitialSpeed <= 0 {
		s.InitialSpeed = board.DefaultSpeed
	}
	if s.SpeedFactor <= 0 {
		s.SpeedFactor = DefaultSpeedFactor
	}
	if s.FoodScore <= 0 {
		s.FoodScore = DefaultFoodScore
	}
	return s
}

// Clock is the time source a game measures tick intervals against.
type Clock interface {
	Now() time.Time
}

// Rand draws uniform integers in [0, n). *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// SystemClock reads the wall clock's monotonic time.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

// NewGame creates a running game with a fresh snake and food.
func NewGame(settings Settings, clock Clock, rng Rand) *Game {
	settings = settings.withDefaults()
	g := &Game{
		settings: settings,
		clock:    clock,
		rng:      rng,
		snake:    board.NewSnake(settings.InitialSpeed),
	}
	g.start()
	return g
}

// start (re)initializes everything except the snake.
func (g *Game) start() {
	g.id = uuid.NewV4().String()
	g.state = RunStateRunning
	g.score = 0
	g.turn = 0
	g.cause = ""
	g.food = g.placeFood()
	g.lastTick = g.clock.Now()
	gamesMetric.Inc()

	log.WithFields(log.Fields{
		"GameID": g.id,
		"Size":   g.settings.GridSize,
		"Food":   g.food,
	}).Info("game started")
}
