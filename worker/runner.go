// Package worker runs games without a screen. Moves come from a MoveSource
// and time is stepped so every update lands on a tick.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/snekimus/snek/rules"
)

// DefaultMaxTurns bounds a run when no limit is given.
const DefaultMaxTurns = 10000

// StepClock is a manually advanced clock.
type StepClock struct {
	sync.Mutex
	now time.Time
}

// NewStepClock returns a clock starting at start.
func NewStepClock(start time.Time) *StepClock {
	return &StepClock{now: start}
}

// Now returns the current stepped time.
func (c *StepClock) Now() time.Time {
	c.Lock()
	defer c.Unlock()
	return c.now
}

// Step moves the clock forward by d.
func (c *StepClock) Step(d time.Duration) {
	c.Lock()
	defer c.Unlock()
	c.now = c.now.Add(d)
}

// Runner will run an individual game to completion. The game must have been
// created with clock. It returns the final snapshot once the game is over or
// maxTurns ticks have run.
func Runner(ctx context.Context, game *rules.Game, clock *StepClock, moves MoveSource, maxTurns int64) (rules.Snapshot, error) {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}

	for {
		snap := game.Snapshot()
		if snap.State == rules.RunStateGameOver {
			log.WithField("game", snap.ID).
				WithField("turn", snap.Turn).
				WithField("score", snap.Score).
				Info("ending game")
			return snap, nil
		}
		if snap.Turn >= maxTurns {
			log.WithField("game", snap.ID).
				WithField("turn", snap.Turn).
				Warn("turn limit reached")
			return snap, nil
		}

		select {
		case <-ctx.Done():
			return snap, errors.Wrap(ctx.Err(), "worker: run cancelled")
		default:
		}

		if move, ok := moves.NextMove(snap.Turn + 1); ok {
			game.SetDirection(move)
		}
		clock.Step(snap.Speed)
		if !game.Update() {
			return snap, errors.Errorf("worker: game %s did not tick at turn %d", snap.ID, snap.Turn+1)
		}
	}
}
