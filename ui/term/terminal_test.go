package term_test

import (
	"context"
	"testing"
	"time"

	"classic-snake/game"
	"classic-snake/game/types"
	"classic-snake/ui/term"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTerminalGame() *game.Game {
	settings := game.DefaultSettings(types.NewGrid(20, 10, 20))
	settings.Seed = 7
	return game.NewGame(settings, nil)
}

func TestTerminalRunHandlesKeysUntilQuit(t *testing.T) {
	screen := newScreen(t, 50, 14)
	g := newTerminalGame()

	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'p', tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	done := make(chan error, 1)
	go func() {
		done <- term.New(screen, zerolog.Nop()).Run(context.Background(), g)
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after the quit key")
	}
	assert.Equal(t, game.PhasePaused, g.Phase())
}

func TestTerminalRunStopsOnContext(t *testing.T) {
	screen := newScreen(t, 50, 14)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := term.New(screen, zerolog.Nop()).Run(ctx, newTerminalGame())
	assert.NoError(t, err)
}

func TestTerminalAlert(t *testing.T) {
	screen := newScreen(t, 50, 14)
	tm := term.New(screen, zerolog.Nop())

	assert.NotPanics(t, tm.Alert)
}
