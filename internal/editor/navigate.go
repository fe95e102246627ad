package editor

import (
	"github.com/bbodi/notecalc3-sub001/internal/content"
	"github.com/bbodi/notecalc3-sub001/internal/selection"
)

// handleNavigation processes the pure cursor-movement keys. It never
// mutates the document and never pushes a command; it always blinks the
// cursor back on.
func (e *Editor[T]) handleNavigation(ev Event, mods Modifiers, c *content.Content[T]) bool {
	var target selection.Pos
	cur := e.selection.GetCursorPos()

	switch ev.Key {
	case KeyLeft:
		if !mods.Shift {
			if first, _, ok := e.selection.IsRange(); ok {
				e.setSelectionSaveCol(selection.NewCaret(first))
				e.BlinkCursor()
				return true
			}
		}
		if mods.Ctrl {
			target = selection.NewPos(cur.Row, c.JumpWordBackward(cur, content.IgnoreWhitespaces))
		} else if cur.Column > 0 {
			target = cur.WithColumn(cur.Column - 1)
		} else if cur.Row > 0 {
			target = selection.NewPos(cur.Row-1, c.LineLen(cur.Row-1))
		} else {
			target = cur
		}
	case KeyRight:
		if !mods.Shift {
			if _, second, ok := e.selection.IsRange(); ok {
				e.setSelectionSaveCol(selection.NewCaret(second))
				e.BlinkCursor()
				return true
			}
		}
		if mods.Ctrl {
			target = selection.NewPos(cur.Row, c.JumpWordForward(cur, content.IgnoreWhitespaces))
		} else if cur.Column < c.LineLen(cur.Row) {
			target = cur.WithColumn(cur.Column + 1)
		} else if cur.Row+1 < c.LineCount() {
			target = selection.NewPos(cur.Row+1, 0)
		} else {
			target = cur
		}
	case KeyUp:
		if cur.Row == 0 {
			target = cur
		} else {
			target = clampColumn(cur.Row-1, e.lastColumnIndex, c)
		}
	case KeyDown:
		if cur.Row+1 >= c.LineCount() {
			target = cur
		} else {
			target = clampColumn(cur.Row+1, e.lastColumnIndex, c)
		}
	case KeyHome:
		target = cur.WithColumn(0)
	case KeyEnd:
		target = cur.WithColumn(c.LineLen(cur.Row))
	case KeyPageUp:
		target = selection.NewPos(0, 0)
	case KeyPageDown:
		last := c.LineCount() - 1
		target = selection.NewPos(last, c.LineLen(last))
	default:
		return false
	}

	if ev.Key == KeyUp || ev.Key == KeyDown {
		// Up/Down preserve lastColumnIndex; every other key updates it.
		if mods.Shift {
			e.selection = e.selection.Extend(target)
		} else {
			e.selection = selection.NewCaret(target)
		}
	} else if mods.Shift {
		e.setSelectionSaveCol(e.selection.Extend(target))
	} else {
		e.setSelectionSaveCol(selection.NewCaret(target))
	}
	e.BlinkCursor()
	return true
}

func clampColumn[T any](row, col uint32, c *content.Content[T]) selection.Pos {
	if l := c.LineLen(row); col > l {
		col = l
	}
	return selection.NewPos(row, col)
}
