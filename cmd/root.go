package cmd

import (
	"os"

	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jswensen/minefield/director/random"
	"github.com/jswensen/minefield/game"
	"github.com/jswensen/minefield/ui"
)

var uiConfig = ui.Config{Game: game.NewConfig()}
var useDirector = false
var logLevel = "info"

var rootCmd = &cobra.Command{
	Use:   "minefield",
	Short: "Play manual or computer-driven Minesweeper",
	Long: `minefield is a Minesweeper game which supports human- or
computer-driven playing.

Run with no arguments to play manually
	minefield

Use the director flag to make the computer play for you
	minefield --director
`,
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.WithError(err).Fatal("invalid log level")
		}
		logrus.SetLevel(level)

		if useDirector {
			uiConfig.Director = &random.Director{}
		}

		pixelgl.Run(func() {
			if err := ui.Run(uiConfig); err != nil {
				logrus.WithError(err).Fatal("game exited")
			}
		})
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntVarP(&uiConfig.Game.Rows, "rows", "r", 10, "Height of game board, in cells")
	rootCmd.Flags().IntVarP(&uiConfig.Game.Columns, "columns", "c", 10, "Width of game board, in cells")
	rootCmd.Flags().IntVarP(&uiConfig.Game.NumMines, "mines", "m", 15, "Number of mines to place in the game board")
	rootCmd.Flags().Int64VarP(&uiConfig.Game.Seed, "seed", "s", 0, "Mine placement seed (0 = time-based)")
	rootCmd.Flags().StringVar(&uiConfig.Game.ReplayDir, "replay-dir", "", "Directory to save finished-game snapshots to")
	rootCmd.Flags().BoolVarP(&useDirector, "director", "d", false, "Make the computer play")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}
