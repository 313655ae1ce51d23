package tcellui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-rockfall/internal/core"
)

// DecodeKey maps a key press to a game action.
// The bindings mirror the Bubble Tea key map.
func DecodeKey(k tcell.Key, r rune) core.Action {
	switch k {
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEscape:
		return core.ActionQuit
	case tcell.KeyRune:
		switch r {
		case 'h', 'a':
			return core.ActionLeft
		case 'l', 'd':
			return core.ActionRight
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

// isExitKey reports whether a key dismisses the score screen.
func isExitKey(k tcell.Key, r rune) bool {
	switch k {
	case tcell.KeyEscape, tcell.KeyEnter, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return r == 'q' || r == ' '
	}
	return false
}
