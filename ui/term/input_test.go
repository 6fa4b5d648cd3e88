package term_test

import (
	"testing"

	"classic-snake/game"
	"classic-snake/ui/term"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestActionForKey(t *testing.T) {
	cases := []struct {
		key  tcell.Key
		ch   rune
		want game.Action
	}{
		{tcell.KeyEnter, 0, game.ActionConfirm},
		{tcell.KeyUp, 0, game.ActionMoveUp},
		{tcell.KeyDown, 0, game.ActionMoveDown},
		{tcell.KeyLeft, 0, game.ActionMoveLeft},
		{tcell.KeyRight, 0, game.ActionMoveRight},
		{tcell.KeyRune, 'p', game.ActionPause},
		{tcell.KeyRune, ' ', game.ActionPause},
		{tcell.KeyRune, 'W', game.ActionToggleWrap},
		{tcell.KeyRune, 't', game.ActionToggleTheme},
		{tcell.KeyRune, '1', game.ActionDifficulty1},
		{tcell.KeyRune, '2', game.ActionDifficulty2},
		{tcell.KeyRune, '3', game.ActionDifficulty3},
		{tcell.KeyRune, 'x', game.ActionNone},
		{tcell.KeyTab, 0, game.ActionNone},
	}

	for _, tc := range cases {
		ev := tcell.NewEventKey(tc.key, tc.ch, tcell.ModNone)
		assert.Equal(t, tc.want, term.ActionForKey(ev), "key %v rune %q", tc.key, tc.ch)
	}
}

func TestIsQuit(t *testing.T) {
	assert.True(t, term.IsQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, term.IsQuit(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.True(t, term.IsQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, term.IsQuit(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)))
	assert.False(t, term.IsQuit(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
}
