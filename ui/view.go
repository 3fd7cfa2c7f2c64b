package ui

import "github.com/jswensen/minefield/game"

type cellState int

const (
	cellCovered cellState = iota
	cellRevealed
	cellMine
)

type cellView struct {
	state    cellState
	adjacent int
}

// boardView is the pixel-side implementation of game.Renderer. Renderer
// calls arrive while the controller handles an event; the draw pass reads
// the view back every frame. Everything happens on the event loop.
type boardView struct {
	rows, columns int
	cells         [][]cellView

	score    string
	finished bool
	won      bool
}

func (view *boardView) BuildBoard(rows, columns int) {
	view.rows, view.columns = rows, columns
	view.cells = make([][]cellView, rows)
	for row := range view.cells {
		view.cells[row] = make([]cellView, columns)
	}
	view.finished = false
	view.won = false
}

func (view *boardView) RenderRevealed(pos game.Position, adjacentMines int) {
	if !view.contains(pos) {
		return
	}
	view.cells[pos.Row][pos.Col] = cellView{state: cellRevealed, adjacent: adjacentMines}
}

func (view *boardView) RenderMine(pos game.Position) {
	if !view.contains(pos) {
		return
	}
	view.cells[pos.Row][pos.Col] = cellView{state: cellMine}
}

func (view *boardView) UpdateScore(score string) {
	view.score = score
}

func (view *boardView) NotifyGameEnd(won bool) {
	view.finished = true
	view.won = won
}

func (view *boardView) contains(pos game.Position) bool {
	return pos.Row >= 0 && pos.Row < view.rows && pos.Col >= 0 && pos.Col < view.columns
}
