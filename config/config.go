// Package config loads the game settings from an INI file.
package config

import (
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/ini.v1"

	"classic-snake/game"
	"classic-snake/game/types"
)

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

type Config struct {
	UI       UIConfig       `ini:"ui"`
	Window   WindowConfig   `ini:"window"`
	Terminal TerminalConfig `ini:"terminal"`
	Game     GameConfig     `ini:"game"`
	Storage  StorageConfig  `ini:"storage"`
	Log      LogConfig      `ini:"log"`
}

type UIConfig struct {
	Frontend string `ini:"frontend"`
}

type WindowConfig struct {
	Width   int    `ini:"width"`
	Height  int    `ini:"height"`
	Columns int    `ini:"columns"`
	Title   string `ini:"title"`
	FPS     int    `ini:"fps"`
	Sound   bool   `ini:"sound"`
}

// TerminalConfig sizes the board in cells; each cell is two characters wide.
type TerminalConfig struct {
	Columns int `ini:"columns"`
	Rows    int `ini:"rows"`
}

type GameConfig struct {
	Mode            string        `ini:"mode"`
	InitialLength   int           `ini:"initial_length"`
	TickInterval    time.Duration `ini:"tick_interval"`
	MinTickInterval time.Duration `ini:"min_tick_interval"`
	SpeedStep       time.Duration `ini:"speed_step"`
	Easy            time.Duration `ini:"easy"`
	Normal          time.Duration `ini:"normal"`
	Hard            time.Duration `ini:"hard"`
	WrapAround      bool          `ini:"wrap_around"`
	DarkTheme       bool          `ini:"dark_theme"`
	PulseMax        int           `ini:"pulse_max"`
	Seed            uint64        `ini:"seed"`
}

type StorageConfig struct {
	HighScoreFile string `ini:"highscore_file"`
	HistoryFile   string `ini:"history_file"`
}

type LogConfig struct {
	Level string `ini:"level"`
	File  string `ini:"file"`
}

func Default() *Config {
	return &Config{
		UI: UIConfig{Frontend: FrontendWindow},
		Window: WindowConfig{
			Width:   800,
			Height:  600,
			Columns: types.DefaultColumns,
			Title:   "Snake",
			FPS:     60,
			Sound:   true,
		},
		Terminal: TerminalConfig{Columns: 30, Rows: 20},
		Game: GameConfig{
			Mode:            "classic",
			InitialLength:   3,
			TickInterval:    100 * time.Millisecond,
			MinTickInterval: 30 * time.Millisecond,
			SpeedStep:       5 * time.Millisecond,
			Easy:            120 * time.Millisecond,
			Normal:          80 * time.Millisecond,
			Hard:            50 * time.Millisecond,
			DarkTheme:       true,
			PulseMax:        6,
		},
		Storage: StorageConfig{
			HighScoreFile: "highscore.dat",
			HistoryFile:   "data/history.json",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	iniFile, err := ini.Load(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "load config %s", path)
	}
	if err := iniFile.MapTo(cfg); err != nil {
		return cfg, errors.Wrapf(err, "map config %s", path)
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	switch c.UI.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		result = multierror.Append(result, errors.Errorf("ui.frontend: unknown frontend %q", c.UI.Frontend))
	}
	if _, ok := game.ParseMode(c.Game.Mode); !ok {
		result = multierror.Append(result, errors.Errorf("game.mode: unknown mode %q", c.Game.Mode))
	}

	if c.Window.Columns <= 0 {
		result = multierror.Append(result, errors.New("window.columns must be positive"))
	} else if c.Window.Width < c.Window.Columns {
		result = multierror.Append(result, errors.Errorf("window.width %d is smaller than window.columns %d", c.Window.Width, c.Window.Columns))
	}
	if c.Window.Height <= 0 {
		result = multierror.Append(result, errors.New("window.height must be positive"))
	}
	if c.Window.FPS <= 0 {
		result = multierror.Append(result, errors.New("window.fps must be positive"))
	}
	if c.Terminal.Columns < 4 || c.Terminal.Rows < 4 {
		result = multierror.Append(result, errors.New("terminal board must be at least 4x4 cells"))
	}

	if c.Game.InitialLength < 1 {
		result = multierror.Append(result, errors.New("game.initial_length must be at least 1"))
	}
	if c.Game.MinTickInterval <= 0 {
		result = multierror.Append(result, errors.New("game.min_tick_interval must be positive"))
	}
	for name, d := range map[string]time.Duration{
		"game.tick_interval": c.Game.TickInterval,
		"game.easy":          c.Game.Easy,
		"game.normal":        c.Game.Normal,
		"game.hard":          c.Game.Hard,
	} {
		if d < c.Game.MinTickInterval {
			result = multierror.Append(result, errors.Errorf("%s %s is below game.min_tick_interval %s", name, d, c.Game.MinTickInterval))
		}
	}
	if c.Game.SpeedStep < 0 {
		result = multierror.Append(result, errors.New("game.speed_step must not be negative"))
	}
	if c.Game.PulseMax < 0 {
		result = multierror.Append(result, errors.New("game.pulse_max must not be negative"))
	}

	if c.Storage.HighScoreFile == "" {
		result = multierror.Append(result, errors.New("storage.highscore_file must be set"))
	}

	return result.ErrorOrNil()
}

// WindowGrid is the board used by the window frontend.
func (c *Config) WindowGrid() types.Grid {
	return types.NewGrid(c.Window.Width, c.Window.Height, c.Window.Columns)
}

// TerminalGrid is the board used by the terminal frontend: one unit per cell.
func (c *Config) TerminalGrid() types.Grid {
	return types.NewGrid(c.Terminal.Columns, c.Terminal.Rows, c.Terminal.Columns)
}

// Settings converts the [game] section for the given board.
func (c *Config) Settings(grid types.Grid) game.Settings {
	mode, _ := game.ParseMode(c.Game.Mode)

	s := game.DefaultSettings(grid)
	s.Mode = mode
	s.InitialLength = c.Game.InitialLength
	s.TickInterval = c.Game.TickInterval
	s.MinTickInterval = c.Game.MinTickInterval
	s.SpeedStep = c.Game.SpeedStep
	s.Difficulties = [3]time.Duration{c.Game.Easy, c.Game.Normal, c.Game.Hard}
	s.WrapAround = c.Game.WrapAround
	s.DarkTheme = c.Game.DarkTheme
	s.PulseMax = c.Game.PulseMax
	s.Seed = c.Game.Seed
	return s
}
