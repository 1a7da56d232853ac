package browser

import (
	"github.com/gdamore/tcell/v2"
)

// CommandForKey maps a key press to a Command. Unbound keys map to None.
func CommandForKey(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Quit
	case tcell.KeyDown:
		return NextRow
	case tcell.KeyUp:
		return PreviousRow
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return Quit
		case 'j':
			return NextRow
		case 'k':
			return PreviousRow
		}
	}

	return None
}
