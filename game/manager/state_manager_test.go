package manager_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classic-snake/game/manager"
)

func TestHighScoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	sm := manager.NewStateManager(filepath.Join(dir, "highscore.dat"), zerolog.Nop())

	for _, n := range []int{0, 1, 7, 1234} {
		sm.Save(n)
		assert.Equal(t, n, sm.Load())
	}
}

func TestHighScoreFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "highscore.dat")
	sm := manager.NewStateManager(path, zerolog.Nop())

	require.NoError(t, sm.SaveHighScore(42))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "42\n", string(data))
}

func TestHighScoreLoadDefaults(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name    string
		content string
	}{
		{"garbage", "not a number\n"},
		{"empty", ""},
		{"negative", "-5\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name)
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0644))

			sm := manager.NewStateManager(path, zerolog.Nop())
			assert.Equal(t, 0, sm.Load())

			_, err := sm.LoadHighScore()
			assert.Error(t, err)
		})
	}

	t.Run("missing", func(t *testing.T) {
		sm := manager.NewStateManager(filepath.Join(dir, "absent.dat"), zerolog.Nop())
		assert.Equal(t, 0, sm.Load())
	})
}

func TestHighScoreToleratesSurroundingWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.dat")
	require.NoError(t, os.WriteFile(path, []byte("  19 \nextra\n"), 0644))

	assert.Equal(t, 19, manager.NewStateManager(path, zerolog.Nop()).Load())
}

func TestHighScoreSaveFailureIsSilent(t *testing.T) {
	dir := t.TempDir()
	// A directory where the file should be makes the write fail.
	path := filepath.Join(dir, "taken")
	require.NoError(t, os.Mkdir(path, 0755))

	sm := manager.NewStateManager(path, zerolog.Nop())
	assert.NotPanics(t, func() { sm.Save(3) })
	assert.Error(t, sm.SaveHighScore(3))
	assert.Equal(t, 0, sm.Load())
}
