package worker

import (
	"github.com/pkg/errors"
	"github.com/snekimus/snek/board"
)

// MoveSource supplies the move requested before a given turn. ok is false
// when no move was requested.
type MoveSource interface {
	NextMove(turn int64) (move board.Direction, ok bool)
}

// Script is a fixed list of moves, one per turn. A nil entry means no input
// that turn.
type Script []*board.Direction

// ParseScript reads one move letter (u, d, l, r) per turn, with '.' for a
// turn without input. Whitespace is ignored.
func ParseScript(s string) (Script, error) {
	script := Script{}
	for i, c := range s {
		switch c {
		case ' ', '\t', '\n':
			continue
		case '.':
			script = append(script, nil)
			continue
		}
		d, err := board.ParseDirection(string(c))
		if err != nil {
			return nil, errors.Wrapf(err, "worker: bad move at offset %d", i)
		}
		script = append(script, &d)
	}
	return script, nil
}

// NextMove returns the scripted move for turn, counting from 1.
func (s Script) NextMove(turn int64) (board.Direction, bool) {
	i := turn - 1
	if i < 0 || i >= int64(len(s)) || s[i] == nil {
		return board.Up, false
	}
	return *s[i], true
}
