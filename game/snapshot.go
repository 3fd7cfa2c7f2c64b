package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// FieldSnapshot is the YAML form of a board layout: one line of runes per
// row, 'O' for a mine and '#' for a safe cell. Snapshots pin a layout, so a
// field restored from one replays the same board on every NewGame.
type FieldSnapshot struct {
	Seed    int64  `yaml:"seed,omitempty"`
	Grid    string `yaml:"grid,flow"`
	Outcome string `yaml:"outcome,omitempty"`
	Score   string `yaml:"score,omitempty"`
}

const (
	snapshotMine = 'O'
	snapshotSafe = '#'
)

func (snapshot *FieldSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}
	return string(out)
}

func ParseFieldSnapshot(in []byte) (*FieldSnapshot, error) {
	snapshot := &FieldSnapshot{}
	if err := yaml.Unmarshal(in, snapshot); err != nil {
		return nil, err
	}
	if _, _, err := snapshot.gridSize(); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (snapshot *FieldSnapshot) gridSize() (rows, columns int, err error) {
	lines := strings.Split(strings.TrimRight(snapshot.Grid, "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return 0, 0, fmt.Errorf("snapshot grid is empty")
	}

	columns = len(lines[0])
	for i, line := range lines {
		if len(line) != columns {
			return 0, 0, fmt.Errorf("snapshot row %d has %d cells, want %d",
				i, len(line), columns)
		}
		for _, c := range line {
			if c != snapshotMine && c != snapshotSafe {
				return 0, 0, fmt.Errorf("unknown cell %q in snapshot row %d", c, i)
			}
		}
	}
	return len(lines), columns, nil
}

// RestoreField builds a MineField whose layout is pinned to the snapshot.
// The mine count is whatever the grid contains.
func (snapshot *FieldSnapshot) RestoreField() (*MineField, error) {
	rows, columns, err := snapshot.gridSize()
	if err != nil {
		return nil, err
	}

	numMines := strings.Count(snapshot.Grid, string(snapshotMine))

	field := &MineField{
		rows:     rows,
		columns:  columns,
		numMines: numMines,
		grid:     make([][]bool, rows),
		layout:   snapshot,
	}
	for row := range field.grid {
		field.grid[row] = make([]bool, columns)
	}
	return field, nil
}

func (snapshot *FieldSnapshot) restoreGrid(grid [][]bool) {
	lines := strings.Split(strings.TrimRight(snapshot.Grid, "\n"), "\n")
	for row, line := range lines {
		for col, c := range line {
			grid[row][col] = c == snapshotMine
		}
	}
}

// SnapshotField captures the mine layout of a field.
func SnapshotField(field *MineField) *FieldSnapshot {
	builder := strings.Builder{}
	for row := 0; row < field.rows; row++ {
		if row > 0 {
			builder.WriteByte('\n')
		}
		for col := 0; col < field.columns; col++ {
			if field.grid[row][col] {
				builder.WriteRune(snapshotMine)
			} else {
				builder.WriteRune(snapshotSafe)
			}
		}
	}
	return &FieldSnapshot{Grid: builder.String()}
}
