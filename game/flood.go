package game

import (
	"github.com/gammazero/deque"

	"github.com/jswensen/minefield/util/collections"
)

type NeighborGetter func(Position) []Position

// Visitor is invoked once per flooded position and reports whether the flood
// should keep expanding through that position's neighbors.
type Visitor func(Position) bool

// flood walks outward from start in breadth-first order using an explicit
// worklist and visited set, so it terminates on any region regardless of
// what the renderer does with already-revealed cells, and never recurses.
func flood(start Position, getNeighbors NeighborGetter, visit Visitor) {
	visited := make(collections.Set[Position])
	var pending deque.Deque

	visited.Add(start)
	pending.PushBack(start)

	for pending.Len() > 0 {
		pos := pending.PopFront().(Position)

		if !visit(pos) {
			continue
		}

		for _, neighbor := range getNeighbors(pos) {
			if visited.Contains(neighbor) {
				continue
			}
			visited.Add(neighbor)
			pending.PushBack(neighbor)
		}
	}
}
