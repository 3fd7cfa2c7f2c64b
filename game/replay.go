package game

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// saveReplay writes a snapshot of the finished board to the configured
// replay directory. Failures are logged, never fatal: replays are a
// convenience, not part of the game flow.
func (controller *Controller) saveReplay() {
	if controller.config.ReplayDir == "" {
		return
	}

	stat, err := os.Stat(controller.config.ReplayDir)
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.WithError(err).Error("cannot stat replay directory")
			return
		}
		if err := os.MkdirAll(controller.config.ReplayDir, 0777); err != nil {
			logrus.WithError(err).Error("cannot create replay directory")
			return
		}
	} else if !stat.Mode().IsDir() {
		logrus.Errorf("%s is not a directory; cannot save replays to it",
			controller.config.ReplayDir)
		return
	}

	snapshot := SnapshotField(controller.field)
	snapshot.Seed = controller.config.Seed
	snapshot.Outcome = controller.state.String()
	snapshot.Score = controller.field.Score()

	path := filepath.Join(controller.config.ReplayDir,
		replayFilename(controller.state, time.Now()))

	if err := os.WriteFile(path, []byte(snapshot.Serialize()), 0666); err != nil {
		logrus.WithError(err).Error("cannot write replay")
		return
	}
	logrus.WithField("path", path).Debug("saved replay")
}

func replayFilename(state GameState, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))

	switch state {
	case Won:
		filenameBuilder.WriteString("win")
	case Lost:
		filenameBuilder.WriteString("loss")
	default:
		filenameBuilder.WriteString("other")
	}
	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}
