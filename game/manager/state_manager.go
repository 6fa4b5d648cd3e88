package manager

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// StateManager persists the all-time high score as a single line of text.
// Failures never reach the player: a missing or broken file reads as 0 and
// write errors are only logged.
type StateManager struct {
	path string
	log  zerolog.Logger
}

func NewStateManager(path string, logger zerolog.Logger) *StateManager {
	return &StateManager{
		path: path,
		log:  logger.With().Str("component", "highscore").Str("file", path).Logger(),
	}
}

func (sm *StateManager) Path() string {
	return sm.path
}

// Load implements game.HighScoreStore.
func (sm *StateManager) Load() int {
	score, err := sm.LoadHighScore()
	if err != nil {
		sm.log.Debug().Err(err).Msg("High score unavailable, starting from 0")
		return 0
	}
	return score
}

// Save implements game.HighScoreStore.
func (sm *StateManager) Save(score int) {
	if err := sm.SaveHighScore(score); err != nil {
		sm.log.Warn().Err(err).Int("score", score).Msg("Could not save high score")
		return
	}
	sm.log.Debug().Int("score", score).Msg("High score saved")
}

func (sm *StateManager) LoadHighScore() (int, error) {
	f, err := os.Open(sm.path)
	if err != nil {
		return 0, errors.Wrap(err, "open high score file")
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, errors.Wrap(err, "read high score file")
		}
		return 0, errors.New("high score file is empty")
	}

	score, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return 0, errors.Wrap(err, "parse high score")
	}
	if score < 0 {
		return 0, errors.Errorf("negative high score %d", score)
	}
	return score, nil
}

func (sm *StateManager) SaveHighScore(score int) error {
	if score < 0 {
		score = 0
	}
	if dir := filepath.Dir(sm.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "create high score directory")
		}
	}
	data := []byte(strconv.Itoa(score) + "\n")
	if err := os.WriteFile(sm.path, data, 0644); err != nil {
		return errors.Wrap(err, "write high score file")
	}
	return nil
}
