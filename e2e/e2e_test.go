package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/snekimus/snek/board"
	"github.com/snekimus/snek/rules"
	"github.com/snekimus/snek/worker"
	"github.com/stretchr/testify/require"
)

// sequence hands out food coordinates in order, repeating the last value.
type sequence struct {
	values []int
}

func (s *sequence) Intn(n int) int {
	v := s.values[0]
	if len(s.values) > 1 {
		s.values = s.values[1:]
	}
	return v % n
}

func play(t *testing.T, food []int, moves string) (*rules.Game, *worker.StepClock, rules.Snapshot) {
	clock := worker.NewStepClock(time.Unix(0, 0))
	game := rules.NewGame(rules.Settings{}, clock, &sequence{values: food})
	script, err := worker.ParseScript(moves)
	require.NoError(t, err)

	snap, err := worker.Runner(context.Background(), game, clock, script, 0)
	require.NoError(t, err)
	if t.Failed() {
		spew.Dump(snap)
	}
	return game, clock, snap
}

func TestEndToEnd_EatThenHitWall(t *testing.T) {
	// food at (0,2), then (3,2), then out of the way
	_, _, snap := play(t, []int{0, 2, 3, 2, 9, 9}, "..rrr")

	require.Equal(t, rules.RunStateGameOver, snap.State)
	require.Equal(t, rules.DeathCauseWallCollision, snap.Cause)
	require.Equal(t, 200, snap.Score)
	require.Len(t, snap.Body, 2)
	require.Equal(t, board.Point{X: 16, Y: 2}, snap.Head)
	require.Equal(t, 243*time.Millisecond, snap.Speed)
	require.Equal(t, int64(18), snap.Turn)
}

func TestEndToEnd_SelfCollision(t *testing.T) {
	// four food cells straight down from the origin grow the snake to 4
	_, _, snap := play(t, []int{0, 1, 0, 2, 0, 3, 0, 4, 9, 9}, "....rul")

	require.Equal(t, rules.RunStateGameOver, snap.State)
	require.Equal(t, rules.DeathCauseSnakeSelfCollision, snap.Cause)
	require.Equal(t, 400, snap.Score)
	require.Equal(t, board.Point{X: 0, Y: 3}, snap.Head)
	require.Equal(t, int64(7), snap.Turn)
	require.Contains(t, snap.Body, board.Point{X: 0, Y: 3})
}

func TestEndToEnd_ReversalIgnored(t *testing.T) {
	// heading down, an up request is dropped and the snake keeps going
	_, _, snap := play(t, []int{9, 9}, "u")

	require.Equal(t, rules.DeathCauseWallCollision, snap.Cause)
	require.Equal(t, board.Point{X: 0, Y: 16}, snap.Head)
}

func TestEndToEnd_Restart(t *testing.T) {
	game, clock, snap := play(t, []int{0, 2, 9, 9}, "")
	require.Equal(t, rules.RunStateGameOver, snap.State)
	require.Equal(t, 100, snap.Score)

	game.Restart()
	restarted := game.Snapshot()
	require.Equal(t, rules.RunStateRunning, restarted.State)
	require.Equal(t, 0, restarted.Score)
	require.Empty(t, restarted.Body)
	require.Equal(t, board.Point{}, restarted.Head)
	require.Equal(t, 300*time.Millisecond, restarted.Speed)
	require.NotEqual(t, snap.ID, restarted.ID)

	snap, err := worker.Runner(context.Background(), game, clock, worker.Script{}, 0)
	require.NoError(t, err)
	require.Equal(t, rules.RunStateGameOver, snap.State)
	require.Equal(t, int64(16), snap.Turn)
}
