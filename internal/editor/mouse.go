package editor

import (
	"github.com/bbodi/notecalc3-sub001/internal/content"
	"github.com/bbodi/notecalc3-sub001/internal/selection"
)

func clampClick[T any](x, y int, c *content.Content[T]) selection.Pos {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	row := uint32(y)
	if last := c.LineCount() - 1; row > last {
		row = last
	}
	col := uint32(x)
	if l := c.LineLen(row); col > l {
		col = l
	}
	return selection.NewPos(row, col)
}

// HandleClick sets a caret at the position clamped into the valid range for
// the given content, in row/column character units.
func (e *Editor[T]) HandleClick(x, y int, c *content.Content[T]) {
	e.SetCursorPos(clampClick(x, y, c))
	e.BlinkCursor()
}

// HandleDrag extends the current selection to the clamped position.
func (e *Editor[T]) HandleDrag(x, y int, c *content.Content[T]) {
	e.setSelectionSaveCol(e.selection.Extend(clampClick(x, y, c)))
	e.BlinkCursor()
}
