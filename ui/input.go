package ui

import (
	"classic-snake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ActionForKey maps a raylib key code to a game action.
func ActionForKey(key int32) game.Action {
	switch key {
	case rl.KeyEnter, rl.KeyKpEnter:
		return game.ActionConfirm
	case rl.KeyP:
		return game.ActionPause
	case rl.KeyUp:
		return game.ActionMoveUp
	case rl.KeyDown:
		return game.ActionMoveDown
	case rl.KeyLeft:
		return game.ActionMoveLeft
	case rl.KeyRight:
		return game.ActionMoveRight
	case rl.KeyW:
		return game.ActionToggleWrap
	case rl.KeyT:
		return game.ActionToggleTheme
	case rl.KeyOne, rl.KeyKp1:
		return game.ActionDifficulty1
	case rl.KeyTwo, rl.KeyKp2:
		return game.ActionDifficulty2
	case rl.KeyThree, rl.KeyKp3:
		return game.ActionDifficulty3
	default:
		return game.ActionNone
	}
}
