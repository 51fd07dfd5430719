package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game/types"
)

// keyOrder is checked in order each frame; the first pressed key wins.
var keyOrder = []int32{
	rl.KeyUp, rl.KeyDown, rl.KeyLeft, rl.KeyRight,
	rl.KeyW, rl.KeyS, rl.KeyA, rl.KeyD,
}

// KeyToDirection maps arrow and WASD keys to headings. Up is +Z.
func KeyToDirection(key int32) (types.Direction, bool) {
	switch key {
	case rl.KeyUp, rl.KeyW:
		return types.North, true
	case rl.KeyDown, rl.KeyS:
		return types.South, true
	case rl.KeyLeft, rl.KeyA:
		return types.West, true
	case rl.KeyRight, rl.KeyD:
		return types.East, true
	default:
		return 0, false
	}
}

// PollDirection returns the first directional key pressed this frame.
func PollDirection() (types.Direction, bool) {
	for _, key := range keyOrder {
		if rl.IsKeyPressed(key) {
			return KeyToDirection(key)
		}
	}
	return 0, false
}

// RestartPressed reports the keyboard shortcut for the restart button.
func RestartPressed() bool {
	return rl.IsKeyPressed(rl.KeyR) || rl.IsKeyPressed(rl.KeyEnter)
}
