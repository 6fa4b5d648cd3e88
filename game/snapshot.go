package game

import (
	"time"

	"classic-snake/game/manager"
	"classic-snake/game/types"
)

// Snapshot is everything a renderer needs for one frame. It shares no
// memory with the Game.
type Snapshot struct {
	Grid  types.Grid
	Mode  Mode
	Phase Phase

	Snake     []types.Point
	Direction types.Direction
	Food      types.Point
	HasFood   bool

	Score        int
	HighScore    int
	TickInterval time.Duration
	Pulse        int
	PulseMax     int

	Started           bool
	Over              bool
	Paused            bool
	WrapAround        bool
	DarkTheme         bool
	ShowingDifficulty bool

	Difficulties [3]time.Duration
	History      manager.Summary
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Grid:              g.grid,
		Mode:              g.settings.Mode,
		Phase:             g.phase,
		Snake:             g.snake.Cells(),
		Direction:         g.direction,
		Food:              g.food,
		HasFood:           g.hasFood,
		Score:             g.Score(),
		HighScore:         g.highScore,
		TickInterval:      g.interval,
		Pulse:             g.pulse,
		PulseMax:          g.settings.PulseMax,
		Started:           g.phase != PhaseAwaitingStart && g.phase != PhaseChoosingDifficulty,
		Over:              g.phase == PhaseGameOver,
		Paused:            g.phase == PhasePaused,
		WrapAround:        g.collisionMgr.WrapAround(),
		DarkTheme:         g.darkTheme,
		ShowingDifficulty: g.phase == PhaseChoosingDifficulty,
		Difficulties:      g.settings.Difficulties,
	}
	if g.recorder != nil {
		s.History = g.recorder.Summary()
	}
	return s
}
