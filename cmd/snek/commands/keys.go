package commands

import (
	termbox "github.com/nsf/termbox-go"
	"github.com/snekimus/snek/board"
)

type action int

const (
	actionNone action = iota
	actionMove
	actionRestart
	actionQuit
	actionExit
)

var arrowKeys = map[termbox.Key]board.Direction{
	termbox.KeyArrowUp:    board.Up,
	termbox.KeyArrowDown:  board.Down,
	termbox.KeyArrowLeft:  board.Left,
	termbox.KeyArrowRight: board.Right,
}

var letterKeys = map[rune]board.Direction{
	'w': board.Up,
	's': board.Down,
	'a': board.Left,
	'd': board.Right,
	'k': board.Up,
	'j': board.Down,
	'h': board.Left,
	'l': board.Right,
}

// keyAction maps a terminal event onto a game action. actionQuit only takes
// effect at game over, actionExit leaves at any time.
func keyAction(ev termbox.Event) (action, board.Direction) {
	if ev.Type != termbox.EventKey {
		return actionNone, board.Up
	}
	if ev.Ch != 0 {
		if d, ok := letterKeys[ev.Ch]; ok {
			return actionMove, d
		}
		if ev.Ch == 'q' {
			return actionQuit, board.Up
		}
		return actionNone, board.Up
	}
	if d, ok := arrowKeys[ev.Key]; ok {
		return actionMove, d
	}
	switch ev.Key {
	case termbox.KeyEnter:
		return actionRestart, board.Up
	case termbox.KeyEsc:
		return actionQuit, board.Up
	case termbox.KeyCtrlC:
		return actionExit, board.Up
	}
	return actionNone, board.Up
}
