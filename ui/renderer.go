package ui

import (
	"fmt"
	"strings"

	"classic-snake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	hudFontSize     = 16
	messageFontSize = 28
	flashFrames     = 12
)

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	offsetX      int32
	offsetY      int32
	flash        int
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// Alert flashes the board for a few frames.
func (r *Renderer) Alert() {
	r.flash = flashFrames
}

func (r *Renderer) Draw(s game.Snapshot) {
	r.UpdateDimensions()
	pal := paletteFor(s.DarkTheme)

	r.cellSize = int32(s.Grid.CellSize)
	boardWidth := int32(s.Grid.Columns()) * r.cellSize
	boardHeight := int32(s.Grid.Rows()) * r.cellSize
	r.offsetX = max((r.screenWidth-boardWidth)/2, 0)
	r.offsetY = max((r.screenHeight-boardHeight)/2, 0)

	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(pal.background)

	switch {
	case s.ShowingDifficulty:
		r.printMessage(pal, difficultyMessage(s))
		return
	case !s.Started:
		r.printMessage(pal, startMessage(s))
		return
	}

	if s.WrapAround {
		rl.DrawRectangleLines(r.offsetX-1, r.offsetY-1, boardWidth+2, boardHeight+2, pal.border)
	} else {
		rl.DrawRectangleLinesEx(
			rl.NewRectangle(float32(r.offsetX-3), float32(r.offsetY-3), float32(boardWidth+6), float32(boardHeight+6)),
			3, pal.border)
	}

	if s.HasFood {
		r.drawFood(s, pal)
	}
	r.drawSnake(s, pal)
	r.drawHUD(s, pal)

	if r.flash > 0 {
		rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, pal.flash)
		r.flash--
	}

	switch {
	case s.Paused:
		r.drawOverlay(pal)
		r.printMessage(pal, "Game Paused\nPress P to Resume")
	case s.Over:
		r.drawOverlay(pal)
		r.printMessage(pal, gameOverMessage(s))
	}
}

// drawFood pulses the food between half and full cell size.
func (r *Renderer) drawFood(s game.Snapshot, pal palette) {
	half := float32(r.cellSize) / 2
	radius := half / 2
	if s.PulseMax > 0 {
		radius += (half / 2) * float32(s.Pulse) / float32(s.PulseMax)
	}
	rl.DrawCircle(
		r.offsetX+int32(s.Food.X)+int32(half),
		r.offsetY+int32(s.Food.Y)+int32(half),
		radius, pal.food)
}

func (r *Renderer) drawSnake(s game.Snapshot, pal palette) {
	for i, p := range s.Snake {
		rec := rl.NewRectangle(
			float32(r.offsetX+int32(p.X)),
			float32(r.offsetY+int32(p.Y)),
			float32(r.cellSize), float32(r.cellSize))
		if i == 0 {
			rl.DrawRectangleRounded(rec, 0.5, 6, pal.head)
			continue
		}
		rl.DrawRectangleRounded(rec, 0.3, 4, segmentColor(i))
	}
}

func (r *Renderer) drawHUD(s game.Snapshot, pal palette) {
	rl.DrawText(fmt.Sprintf("Score: %d", s.Score), 10, 10, hudFontSize, pal.text)

	right := fmt.Sprintf("Best: %d", s.HighScore)
	if s.Mode == game.ModeDeluxe {
		wrap := "off"
		if s.WrapAround {
			wrap = "on"
		}
		right = fmt.Sprintf("Wrap: %s (W)  Theme (T)  %s", wrap, right)
	}
	width := rl.MeasureText(right, hudFontSize)
	rl.DrawText(right, r.screenWidth-width-10, 10, hudFontSize, pal.text)
}

func (r *Renderer) drawOverlay(pal palette) {
	rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, pal.overlay)
}

// printMessage centers each line horizontally, starting a third of the way down.
func (r *Renderer) printMessage(pal palette, message string) {
	y := r.screenHeight / 3
	for _, line := range strings.Split(message, "\n") {
		width := rl.MeasureText(line, messageFontSize)
		rl.DrawText(line, (r.screenWidth-width)/2, y, messageFontSize, pal.text)
		y += messageFontSize + 8
	}
}

func startMessage(s game.Snapshot) string {
	msg := "Press ENTER to Begin Game"
	if s.HighScore > 0 {
		msg += fmt.Sprintf("\nHigh Score: %d", s.HighScore)
	}
	return msg
}

func difficultyMessage(s game.Snapshot) string {
	return fmt.Sprintf("Select Difficulty\n1 - Easy (%s)\n2 - Normal (%s)\n3 - Hard (%s)",
		s.Difficulties[0], s.Difficulties[1], s.Difficulties[2])
}

func gameOverMessage(s game.Snapshot) string {
	msg := fmt.Sprintf("Your Score: %d\nHigh Score: %d", s.Score, s.HighScore)
	if h := s.History; h.GamesPlayed > 0 {
		msg += fmt.Sprintf("\nGames: %d  Avg: %.1f", h.GamesPlayed, h.AverageScore)
	}
	return msg + "\nPress ENTER to Reset"
}
