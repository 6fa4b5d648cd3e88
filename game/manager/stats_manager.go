package manager

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MaxRecords is the number of finished games kept in the history file.
const MaxRecords = 200

// GameRecord describes one finished game.
type GameRecord struct {
	ID        string    `json:"id"`
	Mode      string    `json:"mode"`
	Score     int       `json:"score"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// Summary aggregates the stored records for display.
type Summary struct {
	GamesPlayed     int
	AverageScore    float64
	BestScore       int
	AverageDuration time.Duration
}

// ScoreHistory keeps the most recent finished games in a JSON file.
// Like the high score, it is best-effort: read and write failures are
// logged and otherwise ignored.
type ScoreHistory struct {
	path  string
	games []GameRecord
	log   zerolog.Logger
}

// NewScoreHistory loads the history at path. An empty path keeps the
// history in memory only.
func NewScoreHistory(path string, logger zerolog.Logger) *ScoreHistory {
	h := &ScoreHistory{
		path: path,
		log:  logger.With().Str("component", "history").Str("file", path).Logger(),
	}
	if err := h.loadFromFile(); err != nil {
		h.log.Debug().Err(err).Msg("Starting with an empty history")
		h.games = nil
	}
	return h
}

func (h *ScoreHistory) Record(rec GameRecord) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	h.games = append(h.games, rec)
	if len(h.games) > MaxRecords {
		h.games = h.games[len(h.games)-MaxRecords:]
	}

	if err := h.SaveToFile(); err != nil {
		h.log.Warn().Err(err).Msg("Could not save game history")
	}
}

// Games returns the stored records, oldest first.
func (h *ScoreHistory) Games() []GameRecord {
	games := make([]GameRecord, len(h.games))
	copy(games, h.games)
	return games
}

func (h *ScoreHistory) Summary() Summary {
	if len(h.games) == 0 {
		return Summary{}
	}

	scores := make([]float64, len(h.games))
	durations := make([]float64, len(h.games))
	for i, g := range h.games {
		scores[i] = float64(g.Score)
		durations[i] = g.Duration().Seconds()
	}

	return Summary{
		GamesPlayed:     len(h.games),
		AverageScore:    stat.Mean(scores, nil),
		BestScore:       int(floats.Max(scores)),
		AverageDuration: time.Duration(stat.Mean(durations, nil) * float64(time.Second)),
	}
}

// SaveToFile writes the history as JSON.
func (h *ScoreHistory) SaveToFile() error {
	if h.path == "" {
		return nil
	}
	if dir := filepath.Dir(h.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "create history directory")
		}
	}

	data, err := json.MarshalIndent(h.games, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal history")
	}
	if err := os.WriteFile(h.path, data, 0644); err != nil {
		return errors.Wrap(err, "write history file")
	}
	return nil
}

func (h *ScoreHistory) loadFromFile() error {
	if h.path == "" {
		return nil
	}
	data, err := os.ReadFile(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "read history file")
	}

	var games []GameRecord
	if err := json.Unmarshal(data, &games); err != nil {
		return errors.Wrap(err, "parse history file")
	}
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].StartTime.Before(games[j].StartTime)
	})
	if len(games) > MaxRecords {
		games = games[len(games)-MaxRecords:]
	}
	h.games = games
	return nil
}
