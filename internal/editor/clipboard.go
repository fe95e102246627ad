package editor

import (
	"strings"

	"github.com/bbodi/notecalc3-sub001/internal/content"
	"github.com/bbodi/notecalc3-sub001/internal/history"
	"github.com/bbodi/notecalc3-sub001/internal/selection"
)

// SendSelectionToClipboard serialises sel into the in-process clipboard
// without deleting anything.
func (e *Editor[T]) SendSelectionToClipboard(sel selection.Selection, c *content.Content[T]) {
	var b strings.Builder
	c.WriteSelectionInto(sel, &b)
	e.clipboard = b.String()
}

// GetSelectedText returns the text covered by the current selection
// without touching the clipboard. A caret selection returns "".
func (e *Editor[T]) GetSelectedText(c *content.Content[T]) string {
	return selectedText(c, e.selection)
}

// handleCopy implements Ctrl+C.
func (e *Editor[T]) handleCopy(c *content.Content[T]) {
	e.SendSelectionToClipboard(e.selection, c)
}

// handleCut implements Ctrl+X. With a range selection it copies then
// deletes it; without one it cuts the current row, including its trailing
// newline unless it is the last row.
func (e *Editor[T]) handleCut(c *content.Content[T]) (content.Modification, bool) {
	if _, _, ok := e.selection.IsRange(); ok {
		e.SendSelectionToClipboard(e.selection, c)
		return e.deleteRange(c, false)
	}

	before := e.selection
	row := e.selection.GetCursorPos().Row
	wasLast := row+1 >= c.LineCount()
	rowText := string(c.GetLineChars(row))
	if wasLast {
		e.clipboard = rowText
	} else {
		e.clipboard = rowText + "\n"
	}

	if wasLast {
		for c.LineLen(row) > 0 {
			c.RemoveChar(row, 0)
		}
	} else {
		c.RemoveLineAt(row)
	}
	after := selection.NewCaret(selection.NewPos(row, 0))
	e.pushCommand(history.NewCutLine[T](selection.NewPos(row, 0), rowText, wasLast, before, after))
	e.setSelectionSaveCol(after)
	return content.AllLinesFrom(row), true
}
