package game

import "fmt"

// Position identifies a single cell on the board. Row and Col are
// zero-indexed from the top-left corner.
type Position struct {
	Row, Col int
}

func (pos Position) String() string {
	return fmt.Sprintf("(%v, %v)", pos.Row, pos.Col)
}
