package commands

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
	"github.com/snekimus/snek/board"
	"github.com/snekimus/snek/rules"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	headColor    = termbox.ColorGreen
	bodyColor    = termbox.ColorCyan
	foodColor    = termbox.ColorYellow

	// each board cell is two terminal columns wide so it looks square
	cellWidth = 2
	left      = 2
	top       = 2
)

func render(snap rules.Snapshot) error {
	if err := termbox.Clear(defaultColor, defaultColor); err != nil {
		return err
	}

	renderTitle(snap)
	renderBoard(snap.GridSize)
	renderFood(snap.Food, snap.GridSize)
	renderSnake(snap)
	if snap.State == rules.RunStateGameOver {
		renderGameOver(snap)
	}

	return termbox.Flush()
}

func renderTitle(snap rules.Snapshot) {
	tbprint(left, top-1, defaultColor, defaultColor, fmt.Sprintf("SCORE: %d  TURN: %d", snap.Score, snap.Turn))
}

func renderSnake(snap rules.Snapshot) {
	for _, b := range snap.Body {
		setCell(b, snap.GridSize, bodyColor)
	}
	setCell(snap.Head, snap.GridSize, headColor)
}

func renderFood(food board.Point, size int32) {
	setCell(food, size, foodColor)
}

// setCell paints one board cell, skipping cells off the board.
func setCell(p board.Point, size int32, color termbox.Attribute) {
	if !p.In(size) {
		return
	}
	x := left + int(p.X)*cellWidth
	y := top + int(p.Y) + 1
	for i := 0; i < cellWidth; i++ {
		termbox.SetCell(x+i, y, ' ', color, color)
	}
}

func renderBoard(size int32) {
	width := int(size) * cellWidth
	bottom := top + int(size) + 1
	for i := top + 1; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', defaultColor, bgColor)
		termbox.SetCell(left+width, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left-1, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(left+width, top, '┐', defaultColor, bgColor)
	termbox.SetCell(left+width, bottom, '┘', defaultColor, bgColor)

	fill(left, top, width, 1, termbox.Cell{Ch: '─'})
	fill(left, bottom, width, 1, termbox.Cell{Ch: '─'})
}

func renderGameOver(snap rules.Snapshot) {
	y := top + int(snap.GridSize) + 3
	tbprint(left, y, termbox.ColorRed, defaultColor, fmt.Sprintf("Game Over (%s), score %d.", snap.Cause, snap.Score))
	tbprint(left, y+1, defaultColor, defaultColor, "Press [enter] to play again, [esc] to quit.")
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
