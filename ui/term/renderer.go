// Package term renders the game in a terminal with tcell.
package term

import (
	"fmt"
	"strings"

	"classic-snake/game"

	"github.com/gdamore/tcell/v2"
)

const (
	glyphHead     = '█'
	glyphBody     = '▒'
	glyphFoodBig  = '●'
	glyphFoodTiny = '•'
	flashFrames   = 3

	// The board starts below the HUD line.
	boardTop = 1
)

type theme struct {
	base   tcell.Style
	border tcell.Style
	head   tcell.Style
	body   tcell.Style
	food   tcell.Style
	flash  tcell.Style
}

var (
	darkTheme = theme{
		base:   tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
		border: tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGray),
		head:   tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorLime).Bold(true),
		body:   tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGreen),
		food:   tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorRed),
		flash:  tcell.StyleDefault.Background(tcell.ColorMaroon).Foreground(tcell.ColorWhite),
	}
	lightTheme = theme{
		base:   tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack),
		border: tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorSilver),
		head:   tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorDarkGreen).Bold(true),
		body:   tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorTeal),
		food:   tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorMaroon),
		flash:  tcell.StyleDefault.Background(tcell.ColorPink).Foreground(tcell.ColorBlack),
	}
)

// Renderer draws snapshots; every board cell is two terminal columns wide.
type Renderer struct {
	flash int
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Alert flashes the border for a few frames.
func (r *Renderer) Alert() {
	r.flash = flashFrames
}

func (r *Renderer) Draw(screen tcell.Screen, s game.Snapshot) {
	th := lightTheme
	if s.DarkTheme {
		th = darkTheme
	}
	screen.SetStyle(th.base)
	screen.Clear()

	cols, rows := s.Grid.Columns(), s.Grid.Rows()
	width := cols*2 + 2

	switch {
	case s.ShowingDifficulty:
		r.drawMessage(screen, th.base, width, rows, difficultyMessage(s))
		screen.Show()
		return
	case !s.Started:
		r.drawMessage(screen, th.base, width, rows, startMessage(s))
		screen.Show()
		return
	}

	drawText(screen, 0, 0, th.base, hudLine(s))

	borderStyle := th.border
	if r.flash > 0 {
		borderStyle = th.flash
		r.flash--
	}
	drawBorder(screen, borderStyle, cols, rows, s.WrapAround)

	cell := s.Grid.CellSize
	if s.HasFood {
		glyph := glyphFoodTiny
		if s.Pulse*2 >= s.PulseMax {
			glyph = glyphFoodBig
		}
		screen.SetContent(1+s.Food.X/cell*2, boardTop+1+s.Food.Y/cell, glyph, nil, th.food)
	}
	for i, p := range s.Snake {
		style, glyph := th.body, glyphBody
		if i == 0 {
			style, glyph = th.head, glyphHead
		}
		x, y := 1+p.X/cell*2, boardTop+1+p.Y/cell
		screen.SetContent(x, y, glyph, nil, style)
		screen.SetContent(x+1, y, glyph, nil, style)
	}

	switch {
	case s.Paused:
		r.drawMessage(screen, th.base, width, rows, "PAUSED\nP to resume")
	case s.Over:
		r.drawMessage(screen, th.base, width, rows, gameOverMessage(s))
	}
	screen.Show()
}

func drawBorder(screen tcell.Screen, style tcell.Style, cols, rows int, wrap bool) {
	horizontal, vertical := '─', '│'
	if wrap {
		horizontal, vertical = '┄', '┆'
	}
	right := cols*2 + 1
	bottom := boardTop + rows + 1

	screen.SetContent(0, boardTop, '┌', nil, style)
	screen.SetContent(right, boardTop, '┐', nil, style)
	screen.SetContent(0, bottom, '└', nil, style)
	screen.SetContent(right, bottom, '┘', nil, style)
	for x := 1; x < right; x++ {
		screen.SetContent(x, boardTop, horizontal, nil, style)
		screen.SetContent(x, bottom, horizontal, nil, style)
	}
	for y := boardTop + 1; y < bottom; y++ {
		screen.SetContent(0, y, vertical, nil, style)
		screen.SetContent(right, y, vertical, nil, style)
	}
}

// drawMessage centers the lines over the board area.
func (r *Renderer) drawMessage(screen tcell.Screen, style tcell.Style, width, rows int, message string) {
	lines := strings.Split(message, "\n")
	y := boardTop + 1 + (rows-len(lines))/2
	if y < 0 {
		y = 0
	}
	for i, line := range lines {
		x := (width - len([]rune(line))) / 2
		if x < 0 {
			x = 0
		}
		drawText(screen, x, y+i, style, line)
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, ch := range text {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func hudLine(s game.Snapshot) string {
	line := fmt.Sprintf("Score: %d  Best: %d", s.Score, s.HighScore)
	if s.Mode == game.ModeDeluxe && s.WrapAround {
		line += "  wrap"
	}
	return line
}

func startMessage(s game.Snapshot) string {
	return fmt.Sprintf("SNAKE\nENTER to start\nBest: %d", s.HighScore)
}

func difficultyMessage(s game.Snapshot) string {
	return fmt.Sprintf("Difficulty\n1 Easy %s\n2 Normal %s\n3 Hard %s",
		s.Difficulties[0], s.Difficulties[1], s.Difficulties[2])
}

func gameOverMessage(s game.Snapshot) string {
	msg := fmt.Sprintf("GAME OVER\nScore: %d\nBest: %d", s.Score, s.HighScore)
	if h := s.History; h.GamesPlayed > 0 {
		msg += fmt.Sprintf("\nAvg: %.1f", h.AverageScore)
	}
	return msg + "\nENTER to reset"
}
