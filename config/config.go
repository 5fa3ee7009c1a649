package config

import (
	"os"
	"strconv"
	"time"

	"github.com/snekimus/snek/rules"
	"golang.org/x/time/rate"
)

// Configuration variables. These aren't user facing but useful for tuning the
// feel of the game.
var (
	GridSize       = getEnvInt("SNEK_GRID_SIZE", int(rules.DefaultGridSize))
	SpeedMillis    = getEnvInt("SNEK_SPEED_MS", 300)
	SpeedFactorPct = getEnvInt("SNEK_SPEED_FACTOR_PCT", 90)
	FoodScore      = getEnvInt("SNEK_FOOD_SCORE", rules.DefaultFoodScore)
	FoodAvoidSnake = getEnvInt("SNEK_FOOD_AVOID_SNAKE", 0) != 0
	FrameRate      = rate.Limit(getEnvInt("SNEK_FRAME_RPS", 60))
	FrameBurstRate = getEnvInt("SNEK_FRAME_BURST", 1)
)

// Settings builds the game settings from the configuration variables.
func Settings() rules.Settings {
	return rules.Settings{
		GridSize:     int32(GridSize),
		InitialSpeed: time.Duration(SpeedMillis) * time.Millisecond,
		SpeedFactor:  float64(SpeedFactorPct) / 100,
		FoodScore:    FoodScore,
		AvoidSnake:   FoodAvoidSnake,
	}
}

// FrameLimiter paces the render loop.
func FrameLimiter() *rate.Limiter {
	return rate.NewLimiter(FrameRate, FrameBurstRate)
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil || (intVal <= 0 && defaults > 0) {
		return defaults
	}
	return int(intVal)
}
