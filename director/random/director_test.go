package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jswensen/minefield/game"
)

type nopRenderer struct{}

func (nopRenderer) BuildBoard(rows, columns int)                        {}
func (nopRenderer) RenderRevealed(pos game.Position, adjacentMines int) {}
func (nopRenderer) RenderMine(pos game.Position)                        {}
func (nopRenderer) UpdateScore(score string)                            {}
func (nopRenderer) NotifyGameEnd(won bool)                              {}

func newTestController(t *testing.T, grid string) *game.Controller {
	t.Helper()
	controller, err := game.NewController(game.Config{
		Snapshot: &game.FieldSnapshot{Grid: grid},
	}, nopRenderer{})
	require.NoError(t, err)
	controller.RestartGame()
	return controller
}

func TestDirectorWinsMineFreeBoard(t *testing.T) {
	controller := newTestController(t, "##\n##")

	director := &Director{}
	director.Start(controller)

	// Any reveal on a mine-free board cascades into a win.
	director.Act()
	assert.Equal(t, game.Won, controller.State())
}

func TestDirectorPlaysUntilGameOver(t *testing.T) {
	controller := newTestController(t, "O##O\n#OO#\nO##O")

	director := &Director{}
	director.Start(controller)

	for i := 0; i < 100 && !controller.GameOver(); i++ {
		director.Act()
	}
	assert.True(t, controller.GameOver())
}

func TestDirectorActBeforeStartIsNoOp(t *testing.T) {
	director := &Director{}
	assert.NotPanics(t, func() { director.Act() })
}

func TestDirectorActAfterEndIsNoOp(t *testing.T) {
	controller := newTestController(t, "O#")

	director := &Director{}
	director.Start(controller)
	director.End()

	assert.NotPanics(t, func() { director.Act() })
	assert.Equal(t, game.InProgress, controller.State())
}
