package editor

import (
	"github.com/bbodi/notecalc3-sub001/internal/content"
	"github.com/bbodi/notecalc3-sub001/internal/selection"
)

// HandleInput is the primary entry point: it translates one input event
// into at most one mutation of c, returning the resulting modification
// scope and whether anything changed. Navigation and the no-op/refused
// cases return (zero Modification, false).
func (e *Editor[T]) HandleInput(ev Event, mods Modifiers, c *content.Content[T]) (content.Modification, bool) {
	if ev.Key == KeyChar && mods.Ctrl {
		switch ev.Ch {
		case 'z', 'Z':
			if mods.Shift || ev.Ch == 'Z' {
				return e.Redo(c)
			}
			return e.Undo(c)
		case 'w', 'W':
			e.handleSelectWord(c)
			return content.Modification{}, false
		case 'a', 'A':
			e.handleSelectAll(c)
			return content.Modification{}, false
		case 'd', 'D':
			return e.handleDuplicateLine(c)
		case 'c', 'C':
			e.handleCopy(c)
			return content.Modification{}, false
		case 'x', 'X':
			return e.handleCut(c)
		}
	}

	if mods.Ctrl && mods.Shift && ev.Key == KeyUp {
		return e.handleSwap(c, -1)
	}
	if mods.Ctrl && mods.Shift && ev.Key == KeyDown {
		return e.handleSwap(c, 1)
	}

	switch ev.Key {
	case KeyLeft, KeyRight, KeyUp, KeyDown, KeyHome, KeyEnd, KeyPageUp, KeyPageDown:
		e.handleNavigation(ev, mods, c)
		return content.Modification{}, false
	case KeyEsc:
		e.setSelectionSaveCol(selection.NewCaret(e.selection.GetCursorPos()))
		return content.Modification{}, false
	case KeyEnter:
		if mods.Ctrl {
			return e.handleCtrlEnter(c)
		}
		return e.handleEnter(c)
	case KeyBackspace:
		if mods.Ctrl {
			return e.handleCtrlBackspace(c)
		}
		return e.handleBackspace(c)
	case KeyDel:
		if mods.Ctrl {
			return e.handleCtrlDel(c)
		}
		return e.handleDel(c)
	case KeyTab:
		return e.handleTab(c)
	case KeyChar:
		return e.handleChar(ev.Ch, c)
	}
	return content.Modification{}, false
}
