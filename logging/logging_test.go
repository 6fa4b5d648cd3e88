package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classic-snake/logging"
)

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := logging.New("warn", "", &buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.log")
	logger, closer, err := logging.New("debug", path, nil)
	require.NoError(t, err)

	logger.Debug().Int("score", 3).Msg("Game over")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"score":3`)
	assert.Contains(t, string(data), `"message":"Game over"`)
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, _, err := logging.New("chatty", "", nil)
	assert.Error(t, err)
}

func TestNewWithoutWriterDiscards(t *testing.T) {
	logger, _, err := logging.New("info", "", nil)
	require.NoError(t, err)
	assert.NotPanics(t, func() { logger.Info().Msg("nowhere") })
}
