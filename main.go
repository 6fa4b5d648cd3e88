package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"classic-snake/config"
	"classic-snake/game"
	"classic-snake/game/manager"
	"classic-snake/logging"
	"classic-snake/ui"
	"classic-snake/ui/term"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	xterm "golang.org/x/term"
)

func main() {
	configPath := flag.String("config", "snake.ini", "Path to the INI configuration file")
	frontend := flag.String("frontend", "", "Frontend to use: window or terminal (overrides config)")
	mode := flag.String("mode", "", "Game mode: classic or deluxe (overrides config)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fail(err)
	}
	if *frontend != "" {
		cfg.UI.Frontend = *frontend
	}
	if *mode != "" {
		cfg.Game.Mode = *mode
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fail(err)
	}

	// The terminal frontend owns the screen, so console logging is only
	// enabled for the window.
	var console io.Writer = os.Stderr
	if cfg.UI.Frontend == config.FrontendTerminal {
		console = nil
	}
	logger, closer, err := logging.New(cfg.Log.Level, cfg.Log.File, console)
	if err != nil {
		fail(err)
	}
	defer closer.Close()

	store := manager.NewStateManager(cfg.Storage.HighScoreFile, logger)
	history := manager.NewScoreHistory(cfg.Storage.HistoryFile, logger)

	switch cfg.UI.Frontend {
	case config.FrontendTerminal:
		err = runTerminal(cfg, store, history, logger)
	default:
		runWindow(cfg, store, history, logger)
	}
	if err != nil {
		closer.Close()
		fail(err)
	}

	printSummary(history.Summary())
}

func runWindow(cfg *config.Config, store game.HighScoreStore, history *manager.ScoreHistory, logger zerolog.Logger) {
	window := ui.OpenWindow(ui.WindowOptions{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
		FPS:    cfg.Window.FPS,
		Sound:  cfg.Window.Sound,
	}, logger)
	defer window.Close()

	g := game.NewGame(cfg.Settings(cfg.WindowGrid()), store,
		game.WithLogger(logger),
		game.WithRecorder(history),
		game.WithAlerter(window),
	)
	window.Run(g)
}

func runTerminal(cfg *config.Config, store game.HighScoreStore, history *manager.ScoreHistory, logger zerolog.Logger) error {
	fd := int(os.Stdout.Fd())
	if !xterm.IsTerminal(fd) {
		return errors.New("terminal frontend needs an interactive terminal")
	}
	fitTerminal(cfg, fd, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	t, err := term.Open(logger)
	if err != nil {
		return err
	}
	defer t.Close()

	g := game.NewGame(cfg.Settings(cfg.TerminalGrid()), store,
		game.WithLogger(logger),
		game.WithRecorder(history),
		game.WithAlerter(t),
	)
	return t.Run(ctx, g)
}

// fitTerminal shrinks the configured board to what the terminal can show:
// two columns per cell plus the border, and a HUD line above the border.
func fitTerminal(cfg *config.Config, fd int, logger zerolog.Logger) {
	width, height, err := xterm.GetSize(fd)
	if err != nil {
		logger.Debug().Err(err).Msg("Could not read terminal size")
		return
	}
	if cols := (width - 2) / 2; cols < cfg.Terminal.Columns {
		cfg.Terminal.Columns = max(cols, 4)
	}
	if rows := height - 3; rows < cfg.Terminal.Rows {
		cfg.Terminal.Rows = max(rows, 4)
	}
	logger.Debug().
		Int("columns", cfg.Terminal.Columns).
		Int("rows", cfg.Terminal.Rows).
		Msg("Terminal board size")
}

func printSummary(s manager.Summary) {
	if s.GamesPlayed == 0 {
		return
	}
	color.Green("Games played: %d", s.GamesPlayed)
	color.Cyan("Best score: %d  Average: %.1f  Average length of game: %s",
		s.BestScore, s.AverageScore, s.AverageDuration.Round(time.Second))
}

func fail(err error) {
	color.Red("snake: %v", err)
	fmt.Fprintln(os.Stderr, "Run with -h for usage.")
	os.Exit(1)
}
