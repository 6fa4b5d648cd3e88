package term

import (
	"classic-snake/game"

	"github.com/gdamore/tcell/v2"
)

// ActionForKey maps a terminal key event to a game action.
func ActionForKey(ev *tcell.EventKey) game.Action {
	switch ev.Key() {
	case tcell.KeyEnter:
		return game.ActionConfirm
	case tcell.KeyUp:
		return game.ActionMoveUp
	case tcell.KeyDown:
		return game.ActionMoveDown
	case tcell.KeyLeft:
		return game.ActionMoveLeft
	case tcell.KeyRight:
		return game.ActionMoveRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'p', 'P', ' ':
			return game.ActionPause
		case 'w', 'W':
			return game.ActionToggleWrap
		case 't', 'T':
			return game.ActionToggleTheme
		case '1':
			return game.ActionDifficulty1
		case '2':
			return game.ActionDifficulty2
		case '3':
			return game.ActionDifficulty3
		}
	}
	return game.ActionNone
}

// IsQuit reports whether the key closes the game.
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
