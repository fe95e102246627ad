package editor

import (
	"github.com/bbodi/notecalc3-sub001/internal/content"
	"github.com/bbodi/notecalc3-sub001/internal/selection"
)

// handleSelectWord implements Ctrl+W: selects the current word, or widens
// an existing selection by jumping each end outward one more run.
func (e *Editor[T]) handleSelectWord(c *content.Content[T]) {
	first, second, isRange := e.selection.IsRange()
	mode := content.BlockOnWhitespace
	if isRange {
		mode = content.IgnoreWhitespaces
	} else {
		first = e.selection.GetCursorPos()
		second = first
	}

	prevCol := c.JumpWordBackward(first, mode)
	nextCol := c.JumpWordForward(second, mode)

	start := selection.NewPos(first.Row, prevCol)
	end := selection.NewPos(second.Row, nextCol)
	e.setSelectionSaveCol(selection.NewRange(start, end))
	e.BlinkCursor()
}

// handleSelectAll implements Ctrl+A: selects the entire document.
func (e *Editor[T]) handleSelectAll(c *content.Content[T]) {
	last := c.LineCount() - 1
	e.setSelectionSaveCol(selection.NewRange(selection.NewPos(0, 0), selection.NewPos(last, c.LineLen(last))))
	e.BlinkCursor()
}
