package ui

import (
	"time"

	"classic-snake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

type WindowOptions struct {
	Width  int
	Height int
	Title  string
	FPS    int
	Sound  bool
}

// Window is the raylib frontend. It also serves as the game's Alerter.
type Window struct {
	renderer *Renderer
	beeper   *Beeper
	log      zerolog.Logger
}

// OpenWindow creates the window; it must be called from the main goroutine.
func OpenWindow(opts WindowOptions, logger zerolog.Logger) *Window {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	rl.SetTargetFPS(int32(opts.FPS))

	w := &Window{
		renderer: NewRenderer(),
		log:      logger.With().Str("component", "window").Logger(),
	}
	if opts.Sound {
		w.beeper = NewBeeper()
	}
	w.log.Debug().Int("width", opts.Width).Int("height", opts.Height).Msg("Window opened")
	return w
}

func (w *Window) Alert() {
	w.renderer.Alert()
	w.beeper.Beep()
}

// Run polls input every frame and ticks the game whenever the current
// interval has elapsed, until the window is closed.
func (w *Window) Run(g *game.Game) {
	snap := g.Snapshot()
	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
			if a := ActionForKey(key); a != game.ActionNone {
				snap = g.OnKey(a)
			}
		}

		if time.Since(lastUpdate) >= snap.TickInterval {
			snap = g.OnTick()
			lastUpdate = time.Now()
		}

		w.renderer.Draw(snap)
	}
	w.log.Debug().Msg("Window closed by user")
}

func (w *Window) Close() {
	w.beeper.Close()
	rl.CloseWindow()
}
