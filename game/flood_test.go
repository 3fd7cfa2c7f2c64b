package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// lineNeighbors treats positions as a 1xN strip.
func lineNeighbors(length int) NeighborGetter {
	return func(pos Position) []Position {
		var neighbors []Position
		for _, col := range []int{pos.Col - 1, pos.Col + 1} {
			if col >= 0 && col < length {
				neighbors = append(neighbors, Position{Row: 0, Col: col})
			}
		}
		return neighbors
	}
}

func TestFloodVisitsEveryPositionExactlyOnce(t *testing.T) {
	visits := make(map[Position]int)

	flood(Position{0, 0}, lineNeighbors(6), func(pos Position) bool {
		visits[pos]++
		return true
	})

	assert.Len(t, visits, 6)
	for pos, count := range visits {
		assert.Equal(t, 1, count, "position %v", pos)
	}
}

func TestFloodStopsAtNonExpandingPositions(t *testing.T) {
	var visited []Position

	flood(Position{0, 0}, lineNeighbors(10), func(pos Position) bool {
		visited = append(visited, pos)
		return pos.Col < 3
	})

	// Columns 0..3 are reached; column 3 does not expand, so 4.. never are.
	assert.Len(t, visited, 4)
	assert.NotContains(t, visited, Position{0, 4})
}

func TestFloodTerminatesOnCyclicNeighborhoods(t *testing.T) {
	// Every position is its own neighborhood's center; without the visited
	// set this would loop forever.
	cyclic := func(pos Position) []Position {
		return []Position{{0, 0}, {0, 1}, {0, 2}}
	}

	visits := 0
	flood(Position{0, 0}, cyclic, func(pos Position) bool {
		visits++
		return true
	})

	assert.Equal(t, 3, visits)
}
