package manager_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classic-snake/game/manager"
)

func record(score int, start time.Time, d time.Duration) manager.GameRecord {
	return manager.GameRecord{Mode: "classic", Score: score, StartTime: start, EndTime: start.Add(d)}
}

func TestScoreHistorySummary(t *testing.T) {
	h := manager.NewScoreHistory("", zerolog.Nop())
	assert.Equal(t, manager.Summary{}, h.Summary())

	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	h.Record(record(2, start, 10*time.Second))
	h.Record(record(6, start.Add(time.Minute), 30*time.Second))
	h.Record(record(1, start.Add(2*time.Minute), 20*time.Second))

	sum := h.Summary()
	assert.Equal(t, 3, sum.GamesPlayed)
	assert.InDelta(t, 3.0, sum.AverageScore, 1e-9)
	assert.Equal(t, 6, sum.BestScore)
	assert.Equal(t, 20*time.Second, sum.AverageDuration)
}

func TestScoreHistoryPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "history.json")
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	h := manager.NewScoreHistory(path, zerolog.Nop())
	h.Record(record(4, start, time.Second))

	games := manager.NewScoreHistory(path, zerolog.Nop()).Games()
	require.Len(t, games, 1)
	assert.Equal(t, 4, games[0].Score)
	assert.NotEmpty(t, games[0].ID)
	assert.True(t, start.Equal(games[0].StartTime))
}

func TestScoreHistoryKeepsNewest(t *testing.T) {
	h := manager.NewScoreHistory("", zerolog.Nop())
	start := time.Now()

	for i := 0; i < manager.MaxRecords+5; i++ {
		h.Record(record(i, start.Add(time.Duration(i)*time.Second), time.Second))
	}

	games := h.Games()
	require.Len(t, games, manager.MaxRecords)
	assert.Equal(t, 5, games[0].Score)
	assert.Equal(t, manager.MaxRecords+4, games[len(games)-1].Score)
}

func TestScoreHistoryCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	h := manager.NewScoreHistory(path, zerolog.Nop())
	assert.Empty(t, h.Games())
}
