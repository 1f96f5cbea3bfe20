package ui

import (
	"dp-effects/game/types"
)

// Key is a backend-neutral key press
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEscape
	KeyTheme      // t
	KeyMotion     // m
	KeySnake      // p
	KeyQuit       // q
	KeyThemeReset // r: back to the system theme
)

// KeyForRune maps letter keys, WASD included
func KeyForRune(r rune) Key {
	switch r {
	case 'w', 'W':
		return KeyUp
	case 's', 'S':
		return KeyDown
	case 'a', 'A':
		return KeyLeft
	case 'd', 'D':
		return KeyRight
	case ' ':
		return KeySpace
	case 't', 'T':
		return KeyTheme
	case 'm', 'M':
		return KeyMotion
	case 'p', 'P':
		return KeySnake
	case 'q', 'Q':
		return KeyQuit
	case 'r', 'R':
		return KeyThemeReset
	}
	return KeyNone
}

// DirectionFor returns the heading a key asks for
func DirectionFor(k Key) (types.Direction, bool) {
	switch k {
	case KeyUp:
		return types.Up, true
	case KeyDown:
		return types.Down, true
	case KeyLeft:
		return types.Left, true
	case KeyRight:
		return types.Right, true
	}
	return types.Direction{}, false
}
