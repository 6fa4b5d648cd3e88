package game

import (
	"time"

	"classic-snake/game/entity"
	"classic-snake/game/manager"
	"classic-snake/game/types"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// HighScoreStore loads the persisted high score once and saves it after
// every game. Implementations swallow their own errors.
type HighScoreStore interface {
	Load() int
	Save(score int)
}

// Recorder keeps finished games for the statistics shown on game over.
type Recorder interface {
	Record(rec manager.GameRecord)
	Summary() manager.Summary
}

// Alerter is notified when a game ends.
type Alerter interface {
	Alert()
}

// Settings are fixed for the lifetime of a Game.
type Settings struct {
	Grid            types.Grid
	Mode            Mode
	InitialLength   int
	TickInterval    time.Duration
	MinTickInterval time.Duration
	SpeedStep       time.Duration
	// Difficulties are the intervals offered on the deluxe difficulty screen.
	Difficulties [3]time.Duration
	WrapAround   bool
	DarkTheme    bool
	PulseMax     int
	// Seed for food placement; 0 seeds from the clock.
	Seed uint64
}

func DefaultSettings(grid types.Grid) Settings {
	return Settings{
		Grid:            grid,
		Mode:            ModeClassic,
		InitialLength:   3,
		TickInterval:    100 * time.Millisecond,
		MinTickInterval: 30 * time.Millisecond,
		SpeedStep:       5 * time.Millisecond,
		Difficulties:    [3]time.Duration{120 * time.Millisecond, 80 * time.Millisecond, 50 * time.Millisecond},
		DarkTheme:       true,
		PulseMax:        6,
	}
}

type Option func(*Game)

func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) {
		g.log = logger.With().Str("component", "game").Logger()
	}
}

func WithRecorder(r Recorder) Option {
	return func(g *Game) {
		g.recorder = r
	}
}

func WithAlerter(a Alerter) Option {
	return func(g *Game) {
		g.alerter = a
	}
}

func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// Game owns the whole game state. It is driven by OnTick and OnKey from a
// single goroutine and is not safe for concurrent use.
type Game struct {
	settings Settings
	grid     types.Grid

	snake     *entity.Snake
	food      types.Point
	hasFood   bool
	direction types.Direction
	pending   types.Direction

	phase     Phase
	interval  time.Duration
	highScore int
	darkTheme bool
	pulse     int
	pulseStep int

	roundID   string
	startedAt time.Time

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	store        HighScoreStore
	recorder     Recorder
	alerter      Alerter
	now          func() time.Time
	log          zerolog.Logger
}

func NewGame(settings Settings, store HighScoreStore, opts ...Option) *Game {
	if settings.InitialLength <= 0 {
		settings.InitialLength = 1
	}
	if settings.Mode == ModeClassic {
		settings.WrapAround = false
		settings.DarkTheme = true
	}
	seed := settings.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	collisionMgr := manager.NewCollisionManager(settings.Grid, settings.WrapAround)
	g := &Game{
		settings:     settings,
		grid:         settings.Grid,
		phase:        PhaseAwaitingStart,
		darkTheme:    settings.DarkTheme,
		pulseStep:    1,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(settings.Grid, collisionMgr, rand.New(rand.NewSource(seed))),
		store:        store,
		now:          time.Now,
		log:          zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.store != nil {
		g.highScore = g.store.Load()
	}
	g.reset()

	g.log.Debug().
		Str("mode", settings.Mode.String()).
		Int("columns", g.grid.Columns()).
		Int("rows", g.grid.Rows()).
		Int("highScore", g.highScore).
		Msg("Game created")
	return g
}

// reset recreates the snake and food for a new round.
func (g *Game) reset() {
	g.snake = entity.NewSnake(g.grid.Center(), types.Right, g.settings.InitialLength, g.grid.CellSize)
	g.direction = types.Right
	g.pending = types.Right
	g.interval = g.settings.TickInterval
	g.roundID = uuid.NewString()
	g.startedAt = time.Time{}
	g.placeFood()
}

func (g *Game) placeFood() {
	g.food, g.hasFood = g.foodMgr.GenerateFood(g.snake)
	if !g.hasFood {
		g.log.Info().Str("round", g.roundID).Msg("Board is full, no room for food")
	}
}

// OnKey applies one logical input and returns the resulting state.
func (g *Game) OnKey(a Action) Snapshot {
	g.handleKey(a)
	return g.Snapshot()
}

func (g *Game) handleKey(a Action) {
	if g.settings.Mode == ModeDeluxe {
		switch a {
		case ActionToggleWrap:
			g.collisionMgr.SetWrapAround(!g.collisionMgr.WrapAround())
			g.log.Debug().Bool("wrapAround", g.collisionMgr.WrapAround()).Msg("Wrap-around toggled")
			return
		case ActionToggleTheme:
			g.darkTheme = !g.darkTheme
			return
		}
	}

	switch g.phase {
	case PhaseAwaitingStart:
		if a != ActionConfirm {
			return
		}
		if g.settings.Mode == ModeDeluxe {
			g.setPhase(PhaseChoosingDifficulty)
			return
		}
		g.start()

	case PhaseChoosingDifficulty:
		if interval, ok := g.difficulty(a); ok {
			g.interval = interval
			g.start()
		}

	case PhaseRunning:
		switch a {
		case ActionPause:
			g.setPhase(PhasePaused)
		case ActionMoveUp:
			g.steer(types.Up)
		case ActionMoveDown:
			g.steer(types.Down)
		case ActionMoveLeft:
			g.steer(types.Left)
		case ActionMoveRight:
			g.steer(types.Right)
		}

	case PhasePaused:
		if a == ActionPause {
			g.setPhase(PhaseRunning)
		}

	case PhaseGameOver:
		if a != ActionConfirm {
			return
		}
		g.reset()
		if g.settings.Mode == ModeDeluxe {
			g.setPhase(PhaseChoosingDifficulty)
		} else {
			g.setPhase(PhaseAwaitingStart)
		}
	}
}

func (g *Game) difficulty(a Action) (time.Duration, bool) {
	switch a {
	case ActionDifficulty1:
		return g.settings.Difficulties[0], true
	case ActionDifficulty2:
		return g.settings.Difficulties[1], true
	case ActionDifficulty3:
		return g.settings.Difficulties[2], true
	default:
		return 0, false
	}
}

func (g *Game) start() {
	g.startedAt = g.now()
	g.setPhase(PhaseRunning)
}

// steer buffers dir unless it reverses the committed heading.
func (g *Game) steer(dir types.Direction) {
	if dir == g.direction.Opposite() {
		return
	}
	g.pending = dir
}

func (g *Game) setPhase(p Phase) {
	if g.phase == p {
		return
	}
	g.log.Debug().Str("from", g.phase.String()).Str("to", p.String()).Msg("Phase change")
	g.phase = p
}

// OnTick runs one scheduler tick and returns the resulting state.
func (g *Game) OnTick() Snapshot {
	g.advancePulse()
	if g.phase == PhaseRunning {
		g.direction = g.pending
		g.Advance(g.direction)
	}
	return g.Snapshot()
}

func (g *Game) advancePulse() {
	if g.settings.PulseMax <= 0 {
		return
	}
	g.pulse += g.pulseStep
	if g.pulse >= g.settings.PulseMax {
		g.pulse = g.settings.PulseMax
		g.pulseStep = -1
	} else if g.pulse <= 0 {
		g.pulse = 0
		g.pulseStep = 1
	}
}

// Advance moves the snake one cell in dir. It does not check whether dir
// reverses the snake; steering input is filtered before it gets here.
func (g *Game) Advance(dir types.Direction) Outcome {
	newHead := g.collisionMgr.NextHead(g.snake.GetHead(), dir)
	g.snake.Move(newHead)

	if g.hasFood && g.collisionMgr.IsFoodCollision(newHead, g.food) {
		g.placeFood()
		g.speedUp()
		return OutcomeAte
	}

	if g.IsCollision() {
		g.snake.RemoveHead()
		g.gameOver()
		return OutcomeCollided
	}

	g.snake.RemoveTail()
	return OutcomeMoved
}

// IsCollision reports a wall or self collision of the current body.
func (g *Game) IsCollision() bool {
	return g.collisionMgr.IsCollision(g.snake)
}

func (g *Game) speedUp() {
	if g.interval <= g.settings.MinTickInterval {
		return
	}
	g.interval -= g.settings.SpeedStep
	if g.interval < g.settings.MinTickInterval {
		g.interval = g.settings.MinTickInterval
	}
}

func (g *Game) gameOver() {
	g.setPhase(PhaseGameOver)

	score := g.Score()
	if score > g.highScore {
		g.highScore = score
	}
	if g.store != nil {
		g.store.Save(g.highScore)
	}

	end := g.now()
	start := g.startedAt
	if start.IsZero() {
		start = end
	}
	if g.recorder != nil {
		g.recorder.Record(manager.GameRecord{
			ID:        g.roundID,
			Mode:      g.settings.Mode.String(),
			Score:     score,
			StartTime: start,
			EndTime:   end,
		})
	}

	g.log.Info().
		Str("round", g.roundID).
		Int("score", score).
		Int("highScore", g.highScore).
		Dur("played", end.Sub(start)).
		Msg("Game over")

	if g.alerter != nil {
		g.alerter.Alert()
	}
}

// Score is the number of cells grown since the round started.
func (g *Game) Score() int {
	score := g.snake.Len() - g.settings.InitialLength
	if score < 0 {
		return 0
	}
	return score
}

func (g *Game) HighScore() int {
	return g.highScore
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) TickInterval() time.Duration {
	return g.interval
}
