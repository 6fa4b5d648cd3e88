package term

import (
	"context"
	"time"

	"classic-snake/game"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Terminal is the tcell frontend. It also serves as the game's Alerter.
type Terminal struct {
	screen   tcell.Screen
	renderer *Renderer
	log      zerolog.Logger
}

// Open initialises the real terminal.
func Open(logger zerolog.Logger) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create terminal screen")
	}
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "init terminal screen")
	}
	s.HideCursor()
	return New(s, logger), nil
}

// New wraps an initialised screen.
func New(screen tcell.Screen, logger zerolog.Logger) *Terminal {
	return &Terminal{
		screen:   screen,
		renderer: NewRenderer(),
		log:      logger.With().Str("component", "terminal").Logger(),
	}
}

func (t *Terminal) Alert() {
	t.renderer.Alert()
	if err := t.screen.Beep(); err != nil {
		t.log.Debug().Err(err).Msg("Terminal bell unavailable")
	}
}

// Run feeds key events and ticks into g until a quit key is pressed or ctx
// is done. Only the calling goroutine touches g; the poller just forwards
// events.
func (t *Terminal) Run(ctx context.Context, g *game.Game) error {
	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	snap := g.Snapshot()
	interval := snap.TickInterval
	tick := time.NewTicker(interval)
	defer tick.Stop()

	t.renderer.Draw(t.screen, snap)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				t.screen.Sync()
			case *tcell.EventKey:
				if IsQuit(e) {
					t.log.Debug().Msg("Quit requested")
					return nil
				}
				if a := ActionForKey(e); a != game.ActionNone {
					snap = g.OnKey(a)
				}
			}
		case <-tick.C:
			snap = g.OnTick()
		}

		if snap.TickInterval != interval {
			interval = snap.TickInterval
			tick.Reset(interval)
		}
		t.renderer.Draw(t.screen, snap)
	}
}

func (t *Terminal) Close() {
	t.screen.Fini()
}
