package game

import (
	"github.com/jswensen/minefield/util/collections"
)

type GameState int

const (
	NotStarted GameState = iota
	InProgress
	Won
	Lost
)

func (state GameState) String() string {
	switch state {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Renderer is the presentation collaborator the controller drives. The
// controller never draws anything itself; implementations turn these calls
// into pixels (see the ui package) or record them (see the tests).
type Renderer interface {
	// BuildBoard allocates an interactive grid of the given size.
	BuildBoard(rows, columns int)
	// RenderRevealed shows a revealed safe cell with its adjacent-mine
	// count. Zero renders as a blank cell.
	RenderRevealed(pos Position, adjacentMines int)
	// RenderMine shows a revealed mine.
	RenderMine(pos Position)
	// UpdateScore displays the current "examined/total" score.
	UpdateScore(score string)
	// NotifyGameEnd displays the end-of-game outcome.
	NotifyGameEnd(won bool)
}

// Controller owns one MineField and runs the game flow: it turns each
// reveal request into a loss, a cascading auto-reveal, or a win check, and
// pushes the results to its Renderer.
type Controller struct {
	config   Config
	field    *MineField
	renderer Renderer

	state    GameState
	revealed collections.Set[Position]
}

func NewController(config Config, renderer Renderer) (*Controller, error) {
	field, err := NewMineField(config)
	if err != nil {
		return nil, err
	}
	return &Controller{
		config:   config,
		field:    field,
		renderer: renderer,
		state:    NotStarted,
		revealed: make(collections.Set[Position]),
	}, nil
}

func (controller *Controller) State() GameState {
	return controller.state
}

// GameOver reports whether no game is currently accepting reveals. True
// before the first RestartGame and after a terminal reveal.
func (controller *Controller) GameOver() bool {
	return controller.state != InProgress
}

func (controller *Controller) Score() string {
	return controller.field.Score()
}

func (controller *Controller) Rows() int {
	return controller.field.Rows()
}

func (controller *Controller) Columns() int {
	return controller.field.Columns()
}

// RestartGame begins a fresh game: it has the renderer rebuild the board,
// re-places the mines and pushes the initial score.
func (controller *Controller) RestartGame() {
	controller.state = InProgress
	controller.revealed = make(collections.Set[Position])

	controller.renderer.BuildBoard(controller.field.Rows(), controller.field.Columns())
	controller.field.NewGame()
	controller.renderer.UpdateScore(controller.field.Score())
}

// ExploreField handles one reveal request. Reveals outside an in-progress
// game and reveals of already-revealed cells are no-ops; out-of-range
// positions are an error.
func (controller *Controller) ExploreField(pos Position) error {
	if controller.state != InProgress {
		return nil
	}
	if !controller.field.Contains(pos) {
		return &InvalidPositionError{
			Position: pos,
			Rows:     controller.field.Rows(),
			Columns:  controller.field.Columns(),
		}
	}
	if controller.revealed.Contains(pos) {
		return nil
	}

	mine, err := controller.field.CheckField(pos, true)
	if err != nil {
		return err
	}
	controller.revealed.Add(pos)

	if mine {
		controller.endGame(false)
		return nil
	}

	adjacent, err := controller.field.CountAdjacentMines(pos)
	if err != nil {
		return err
	}
	controller.renderer.RenderRevealed(pos, adjacent)

	if adjacent == 0 {
		controller.cascadeFrom(pos)
	}

	if controller.state != InProgress {
		return nil
	}
	controller.renderer.UpdateScore(controller.field.Score())

	left, err := controller.field.EmptyFieldsLeft()
	if err != nil {
		return err
	}
	if left <= 0 {
		controller.endGame(true)
	}
	return nil
}

// cascadeFrom auto-reveals outward from a zero-adjacency cell. Each newly
// reached cell is revealed with a counting check, and the flood only keeps
// expanding through cells that are themselves zero-adjacency. The state is
// re-checked on every step so a terminal reveal aborts the rest of the
// cascade.
func (controller *Controller) cascadeFrom(origin Position) {
	flood(origin, controller.field.Neighbors, func(pos Position) bool {
		if controller.state != InProgress {
			return false
		}
		if pos == origin {
			// Revealed by the caller; only expand from it.
			return true
		}
		if controller.revealed.Contains(pos) {
			return false
		}

		mine, err := controller.field.CheckField(pos, true)
		if err != nil {
			return false
		}
		controller.revealed.Add(pos)

		if mine {
			// Unreachable with consistent zero-adjacency geometry,
			// but a mine hit still ends the game.
			controller.endGame(false)
			return false
		}

		adjacent, err := controller.field.CountAdjacentMines(pos)
		if err != nil {
			return false
		}
		controller.renderer.RenderRevealed(pos, adjacent)
		return adjacent == 0
	})
}

// UnexploredPositions returns the positions no reveal has reached yet.
func (controller *Controller) UnexploredPositions() []Position {
	all := make(collections.Set[Position])
	for _, pos := range controller.field.Positions() {
		all.Add(pos)
	}
	return all.Difference(controller.revealed).Values()
}

func (controller *Controller) endGame(won bool) {
	if won {
		controller.state = Won
	} else {
		controller.state = Lost
	}

	controller.revealAll()
	controller.renderer.NotifyGameEnd(won)
	controller.saveReplay()
}

// revealAll renders the whole board after a terminal reveal. Checks here are
// non-counting so revealing for display does not inflate the score.
func (controller *Controller) revealAll() {
	for _, pos := range controller.field.Positions() {
		mine, err := controller.field.CheckField(pos, false)
		if err != nil {
			return
		}
		if mine {
			controller.renderer.RenderMine(pos)
			continue
		}
		adjacent, err := controller.field.CountAdjacentMines(pos)
		if err != nil {
			return
		}
		controller.renderer.RenderRevealed(pos, adjacent)
	}
}
