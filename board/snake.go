package board

import "time"

const (
	// DefaultSpeed is the tick interval a fresh snake moves at.
	DefaultSpeed = 300 * time.Millisecond
	// DefaultDirection is the heading a fresh snake starts with.
	DefaultDirection = Down
)

// Snake is the player controlled entity. Body holds the cells the head has
// vacated, most recent first, and never includes Head between ticks.
type Snake struct {
	Head      Point
	Direction Direction
	Speed     time.Duration
	Body      []Point

	initialSpeed time.Duration
}

// NewSnake returns a snake at the origin that will reset to the given speed.
// A non-positive speed means DefaultSpeed.
func NewSnake(speed time.Duration) *Snake {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	s := &Snake{initialSpeed: speed}
	s.Reset()
	return s
}

// Reset puts the snake back at the origin heading down with an empty body.
func (s *Snake) Reset() {
	if s.initialSpeed <= 0 {
		s.initialSpeed = DefaultSpeed
	}
	s.Head = Point{}
	s.Direction = DefaultDirection
	s.Speed = s.initialSpeed
	s.Body = nil
}

// SetDirection changes the heading unless d would reverse the snake onto
// itself, in which case it does nothing.
func (s *Snake) SetDirection(d Direction) {
	if d == s.Direction.Opposite() {
		return
	}
	s.Direction = d
}

// Advance moves the head 1 space in the current direction, advance does not
// remove the end point of the snake, that is done after the snake has eaten
func (s *Snake) Advance() {
	s.Body = append([]Point{s.Head}, s.Body...)
	s.Head = s.Head.Add(s.Direction.Delta())
}

// Shrink drops the oldest body segment.
func (s *Snake) Shrink() {
	if len(s.Body) == 0 {
		return
	}
	s.Body = s.Body[:len(s.Body)-1]
}

// Occupies reports whether the head is on p.
func (s *Snake) Occupies(p Point) bool {
	return s.Head.Equal(p)
}

// Collides reports whether the head overlaps any body segment.
func (s *Snake) Collides() bool {
	for _, b := range s.Body {
		if s.Occupies(b) {
			return true
		}
	}
	return false
}
