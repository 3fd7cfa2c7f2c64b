package game

import (
	"errors"
	"fmt"
)

// ErrNotInitialized is returned by MineField queries made before the first
// NewGame call.
var ErrNotInitialized = errors.New("no game in progress; call NewGame first")

// InvalidPositionError reports a position outside the board bounds.
type InvalidPositionError struct {
	Position      Position
	Rows, Columns int
}

func (err *InvalidPositionError) Error() string {
	return fmt.Sprintf("position %v out of range for %dx%d board",
		err.Position, err.Rows, err.Columns)
}

// InvalidFieldParamsError reports board parameters no field can be built from.
type InvalidFieldParamsError struct {
	Rows, Columns int
	NumMines      int
}

func (err *InvalidFieldParamsError) Error() string {
	switch {
	case err.Rows <= 0:
		return fmt.Sprintf("cannot create a board with %d rows", err.Rows)
	case err.Columns <= 0:
		return fmt.Sprintf("cannot create a board with %d columns", err.Columns)
	case err.NumMines < 0:
		return fmt.Sprintf("cannot create a board with %d mines", err.NumMines)
	default:
		return "cannot create board: unknown error"
	}
}
