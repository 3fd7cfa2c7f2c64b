package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/jswensen/minefield/game"
)

const (
	cellWidth      = 24
	headerHeight   = 50
	minWindowWidth = 220
)

var numberColors = map[int]color.RGBA{
	1: colornames.Blue,
	2: colornames.Green,
	3: colornames.Red,
	4: colornames.Navy,
	5: colornames.Maroon,
	6: colornames.Teal,
	7: colornames.Black,
	8: colornames.Dimgray,
}

type Config struct {
	Game     game.Config
	Director game.Director

	// Delay between director moves. Zero means the default.
	DirectorInterval time.Duration
}

// Run opens the game window and processes events until it is closed. Must
// be called from within pixelgl.Run.
func Run(config Config) error {
	view := &boardView{}
	controller, err := game.NewController(config.Game, view)
	if err != nil {
		return err
	}

	cfg := pixelgl.WindowConfig{
		Title:  "minefield",
		Bounds: windowBounds(controller.Rows(), controller.Columns()),
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return err
	}

	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	headerText := text.New(pixel.V(0, 0), basicAtlas)
	cellText := text.New(pixel.V(0, 0), basicAtlas)
	imd := imdraw.New(nil)

	var startedAt time.Time
	var elapsed time.Duration

	startGame := func() {
		controller.RestartGame()
		if config.Director != nil {
			config.Director.Start(controller)
		}
		win.SetBounds(windowBounds(view.rows, view.columns))
		startedAt = time.Now()
		elapsed = 0
	}
	startGame()

	interval := config.DirectorInterval
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	lastAct := time.Now()

	var (
		frames = 0
		second = time.Tick(time.Second)
	)

	for !win.Closed() {
		win.Clear(colornames.Gainsboro)

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}

		if !controller.GameOver() {
			elapsed = time.Since(startedAt)
		}

		drawBoard(win, imd, cellText, view)
		drawHeader(win, headerText, view, elapsed)

		if controller.GameOver() {
			// Start a new game with Enter
			if win.JustPressed(pixelgl.KeyEnter) {
				startGame()
			}
		} else {
			if win.JustPressed(pixelgl.MouseButtonLeft) && win.MouseInsideWindow() {
				if pos, ok := screenToGridCoords(view, win.MousePosition()); ok {
					if err := controller.ExploreField(pos); err != nil {
						logrus.WithError(err).Warn("reveal rejected")
					}
				}
			}

			if config.Director != nil && time.Since(lastAct) >= interval {
				config.Director.Act()
				lastAct = time.Now()
			}
		}

		win.Update()
	}

	if config.Director != nil {
		config.Director.End()
	}
	return nil
}

func windowBounds(rows, columns int) pixel.Rect {
	return pixel.R(
		0, 0,
		math.Max(float64(columns*cellWidth), minWindowWidth),
		float64(rows*cellWidth+headerHeight),
	)
}

// cellRect returns the screen rectangle of a cell. Row 0 sits at the top of
// the board, while pixel's Y axis grows upward.
func cellRect(view *boardView, row, col int) pixel.Rect {
	min := pixel.V(float64(col*cellWidth), float64((view.rows-1-row)*cellWidth))
	return pixel.Rect{Min: min, Max: min.Add(pixel.V(cellWidth, cellWidth))}
}

func screenToGridCoords(view *boardView, pos pixel.Vec) (game.Position, bool) {
	gridPos := game.Position{
		Row: view.rows - 1 - int(pos.Y)/cellWidth,
		Col: int(pos.X) / cellWidth,
	}
	inBounds := pos.X >= 0 && pos.Y >= 0 &&
		gridPos.Row >= 0 && gridPos.Row < view.rows &&
		gridPos.Col >= 0 && gridPos.Col < view.columns
	return gridPos, inBounds
}

func drawBoard(win *pixelgl.Window, imd *imdraw.IMDraw, cellText *text.Text, view *boardView) {
	imd.Clear()
	for row := 0; row < view.rows; row++ {
		for col := 0; col < view.columns; col++ {
			rect := cellRect(view, row, col)

			switch view.cells[row][col].state {
			case cellCovered:
				imd.Color = colornames.Darkgray
			case cellRevealed:
				imd.Color = colornames.Whitesmoke
			case cellMine:
				imd.Color = colornames.Lightcoral
			}
			imd.Push(rect.Min.Add(pixel.V(1, 1)), rect.Max.Sub(pixel.V(1, 1)))
			imd.Rectangle(0) // 0 = filled

			if view.cells[row][col].state == cellMine {
				imd.Color = colornames.Black
				imd.Push(rect.Center())
				imd.Circle(cellWidth/4, 0)
			}
		}
	}
	imd.Draw(win)

	cellText.Clear()
	for row := 0; row < view.rows; row++ {
		for col := 0; col < view.columns; col++ {
			cell := view.cells[row][col]
			if cell.state != cellRevealed || cell.adjacent == 0 {
				continue
			}

			cellText.Color = numberColors[cell.adjacent]
			cellText.Dot = cellRect(view, row, col).Center().Add(pixel.V(-3, -4))
			fmt.Fprintf(cellText, "%d", cell.adjacent)
		}
	}
	cellText.Draw(win, pixel.IM)
}

func drawHeader(win *pixelgl.Window, headerText *text.Text, view *boardView, elapsed time.Duration) {
	topLeft := win.Bounds().Vertices()[1]

	headerText.Clear()
	headerText.Color = colornames.Black
	headerText.Dot = topLeft.Add(pixel.V(10, -30))
	fmt.Fprintf(headerText, "%s", view.score)

	if view.finished {
		if view.won {
			headerText.Color = colornames.Green
			fmt.Fprintf(headerText, "   WIN!")
		} else {
			headerText.Color = colornames.Red
			fmt.Fprintf(headerText, "   LOSE :(")
		}
	}

	headerText.Color = colornames.Darkcyan
	headerText.Dot = win.Bounds().Max.Add(pixel.V(-70, -30))
	fmt.Fprintf(headerText, "%4ds", int(elapsed.Seconds()))

	headerText.Draw(win, pixel.IM)
}
