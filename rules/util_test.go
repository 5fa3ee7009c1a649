package rules

import (
	"time"

	"github.com/snekimus/snek/board"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2018, 3, 1, 12, 0, 0, 0, time.UTC)}
}

// seqRand returns its values in order, repeating the last one forever.
type seqRand struct {
	values []int
	calls  int
}

func (r *seqRand) Intn(n int) int {
	r.calls++
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	if len(r.values) > 1 {
		r.values = r.values[1:]
	}
	return v % n
}

// newTestGame builds a running game with the snake and food placed by hand.
func newTestGame(head board.Point, dir board.Direction, body []board.Point, food board.Point) (*Game, *fakeClock) {
	clock := newFakeClock()
	g := NewGame(Settings{}, clock, &seqRand{values: []int{0}})
	g.snake.Head = head
	g.snake.Direction = dir
	g.snake.Body = body
	g.food = food
	return g, clock
}
