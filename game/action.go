package game

// Action is a logical input, independent of the key that produced it.
type Action int

const (
	ActionNone Action = iota
	ActionConfirm
	ActionPause
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionToggleWrap
	ActionToggleTheme
	ActionDifficulty1
	ActionDifficulty2
	ActionDifficulty3
)

var actionNames = map[Action]string{
	ActionNone:        "none",
	ActionConfirm:     "confirm",
	ActionPause:       "pause",
	ActionMoveUp:      "up",
	ActionMoveDown:    "down",
	ActionMoveLeft:    "left",
	ActionMoveRight:   "right",
	ActionToggleWrap:  "toggle-wrap",
	ActionToggleTheme: "toggle-theme",
	ActionDifficulty1: "difficulty-1",
	ActionDifficulty2: "difficulty-2",
	ActionDifficulty3: "difficulty-3",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Phase is the state of the game loop.
type Phase int

const (
	PhaseAwaitingStart Phase = iota
	PhaseChoosingDifficulty
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingStart:
		return "awaiting-start"
	case PhaseChoosingDifficulty:
		return "choosing-difficulty"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Mode selects the rule set.
type Mode int

const (
	// ModeClassic: start, pause, steer, restart.
	ModeClassic Mode = iota
	// ModeDeluxe adds difficulty selection, wrap-around and theme toggles.
	ModeDeluxe
)

func (m Mode) String() string {
	if m == ModeDeluxe {
		return "deluxe"
	}
	return "classic"
}

// ParseMode accepts "classic" or "deluxe".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "classic":
		return ModeClassic, true
	case "deluxe":
		return ModeDeluxe, true
	default:
		return ModeClassic, false
	}
}

// Outcome is the result of a single Advance.
type Outcome int

const (
	OutcomeMoved Outcome = iota
	OutcomeAte
	OutcomeCollided
)
