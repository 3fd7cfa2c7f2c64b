package game

type Config struct {
	Rows, Columns int
	NumMines      int

	// Seed for mine placement; 0 derives a seed from the wall clock.
	Seed int64

	// Snapshot to load the board layout from. When set, Rows, Columns,
	// NumMines and Seed are taken from the snapshot instead.
	Snapshot *FieldSnapshot

	// Path to a directory where snapshots of finished games are saved.
	// Empty disables replay saving.
	ReplayDir string
}

func NewConfig() Config {
	return Config{
		Rows:     10,
		Columns:  10,
		NumMines: 15,
	}
}
