package game

import (
	"fmt"
	"math/rand"
	"time"
)

// MineField owns the grid of mine/no-mine cells for one game and tracks how
// many cells have been examined. It knows nothing about game flow or
// rendering; Controller layers the rules on top.
type MineField struct {
	rows, columns int
	numMines      int

	grid     [][]bool
	examined int
	started  bool

	// layout, when non-nil, pins the mine placement NewGame restores
	// instead of sampling a fresh one.
	layout *FieldSnapshot
	rng    *rand.Rand
}

func NewMineField(config Config) (*MineField, error) {
	if config.Snapshot != nil {
		return config.Snapshot.RestoreField()
	}
	if config.Rows <= 0 || config.Columns <= 0 || config.NumMines < 0 {
		return nil, &InvalidFieldParamsError{
			Rows:     config.Rows,
			Columns:  config.Columns,
			NumMines: config.NumMines,
		}
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// More mines than cells degenerates to an all-mine board.
	numMines := config.NumMines
	if numMines > config.Rows*config.Columns {
		numMines = config.Rows * config.Columns
	}

	field := &MineField{
		rows:     config.Rows,
		columns:  config.Columns,
		numMines: numMines,
		grid:     make([][]bool, config.Rows),
		rng:      rand.New(rand.NewSource(seed)),
	}
	for row := range field.grid {
		field.grid[row] = make([]bool, config.Columns)
	}
	return field, nil
}

func (field *MineField) Rows() int {
	return field.rows
}

func (field *MineField) Columns() int {
	return field.columns
}

func (field *MineField) NumMines() int {
	return field.numMines
}

// SafeCells returns the number of cells not holding a mine.
func (field *MineField) SafeCells() int {
	return field.rows*field.columns - field.numMines
}

func (field *MineField) Examined() int {
	return field.examined
}

func (field *MineField) Contains(pos Position) bool {
	return pos.Row >= 0 && pos.Row < field.rows &&
		pos.Col >= 0 && pos.Col < field.columns
}

// NewGame resets the examined counter, clears the grid and places the mines
// again. Placement shuffles the flattened index space 0..rows*columns-1 and
// takes the first numMines entries, so every draw is unbiased and no index
// is picked twice. Index n maps to row n/columns, column n%columns.
func (field *MineField) NewGame() {
	field.examined = 0
	field.started = true
	for row := range field.grid {
		for col := range field.grid[row] {
			field.grid[row][col] = false
		}
	}

	if field.layout != nil {
		field.layout.restoreGrid(field.grid)
		return
	}

	numCells := field.rows * field.columns
	cellIndexes := make([]int, numCells)
	for i := range cellIndexes {
		cellIndexes[i] = i
	}
	field.rng.Shuffle(len(cellIndexes), func(i, j int) {
		cellIndexes[i], cellIndexes[j] = cellIndexes[j], cellIndexes[i]
	})
	for _, cellIdx := range cellIndexes[:field.numMines] {
		field.grid[cellIdx/field.columns][cellIdx%field.columns] = true
	}
}

// Score formats the current progress as "examined/total", where total is the
// number of safe cells. Pure read.
func (field *MineField) Score() string {
	return fmt.Sprintf("%d/%d", field.examined, field.SafeCells())
}

// CheckField reports whether pos holds a mine. When count is true the
// examined counter is incremented exactly once per call, whatever the
// outcome; non-counting checks are free and idempotent.
func (field *MineField) CheckField(pos Position, count bool) (bool, error) {
	if !field.started {
		return false, ErrNotInitialized
	}
	if !field.Contains(pos) {
		return false, &InvalidPositionError{
			Position: pos,
			Rows:     field.rows,
			Columns:  field.columns,
		}
	}
	if count {
		field.examined++
	}
	return field.grid[pos.Row][pos.Col], nil
}

// EmptyFieldsLeft returns the number of safe cells not yet examined. A
// negative result means the counting contract was violated upstream; callers
// should treat it as a bug, not a game state.
func (field *MineField) EmptyFieldsLeft() (int, error) {
	if !field.started {
		return 0, ErrNotInitialized
	}
	return field.SafeCells() - field.examined, nil
}

// CountAdjacentMines counts mines in the Moore neighborhood of pos: the up
// to 8 in-bounds cells around it, never pos itself. Result is 0..8.
func (field *MineField) CountAdjacentMines(pos Position) (int, error) {
	if !field.started {
		return 0, ErrNotInitialized
	}
	if !field.Contains(pos) {
		return 0, &InvalidPositionError{
			Position: pos,
			Rows:     field.rows,
			Columns:  field.columns,
		}
	}

	numMines := 0
	for _, neighbor := range field.Neighbors(pos) {
		if field.grid[neighbor.Row][neighbor.Col] {
			numMines++
		}
	}
	return numMines, nil
}

// Neighbors returns the in-bounds Moore neighborhood of pos.
func (field *MineField) Neighbors(pos Position) []Position {
	neighbors := make([]Position, 0, 8)
	for deltaRow := -1; deltaRow <= 1; deltaRow++ {
		for deltaCol := -1; deltaCol <= 1; deltaCol++ {
			if deltaRow == 0 && deltaCol == 0 {
				continue
			}
			neighbor := Position{Row: pos.Row + deltaRow, Col: pos.Col + deltaCol}
			if field.Contains(neighbor) {
				neighbors = append(neighbors, neighbor)
			}
		}
	}
	return neighbors
}

// Positions returns every position on the board, row-major.
func (field *MineField) Positions() []Position {
	positions := make([]Position, 0, field.rows*field.columns)
	for row := 0; row < field.rows; row++ {
		for col := 0; col < field.columns; col++ {
			positions = append(positions, Position{Row: row, Col: col})
		}
	}
	return positions
}
