package random

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/jswensen/minefield/game"
)

// Director plays by revealing uniformly random unexplored cells. It has no
// strategy at all, which makes it a handy smoke tester for the game flow.
type Director struct {
	controller *game.Controller
}

func (director *Director) Start(controller *game.Controller) {
	director.controller = controller
}

func (director *Director) Act() {
	if director.controller == nil || director.controller.GameOver() {
		return
	}

	unexplored := director.controller.UnexploredPositions()
	if len(unexplored) == 0 {
		return
	}

	pos := unexplored[rand.Intn(len(unexplored))]
	logrus.WithField("position", pos).Debug("director reveals")

	if err := director.controller.ExploreField(pos); err != nil {
		logrus.WithError(err).Warn("director reveal failed")
	}
}

func (director *Director) End() {
	director.controller = nil
}
