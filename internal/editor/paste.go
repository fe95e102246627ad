package editor

import (
	"strings"

	"github.com/bbodi/notecalc3-sub001/internal/content"
	"github.com/bbodi/notecalc3-sub001/internal/history"
	"github.com/bbodi/notecalc3-sub001/internal/selection"
)

func pasteModification(row uint32, text string, overflowed bool) content.Modification {
	if overflowed || strings.ContainsRune(text, '\n') {
		return content.AllLinesFrom(row)
	}
	return content.SingleLine(row)
}

// tailOverflows reports whether inserting text at pos would bump whatever
// already follows pos on its row onto a fresh row, the same way the line
// itself would wrap. It is evaluated against the pre-insert row so it can
// still tell the pasted text and the pre-existing tail apart; once the
// paste runs the two are interleaved in the same row and indistinguishable.
func tailOverflows[T any](c *content.Content[T], pos selection.Pos, text string) bool {
	tailLen := c.LineLen(pos.Row) - pos.Column
	end := content.PasteEndPos(pos, text, c.MaxLineLen())
	return end.Column+tailLen > c.MaxLineLen()
}

// InsertText is the bulk-paste entry point: it inserts text at the current
// selection, replacing it first if it is a range, and records whichever of
// InsertText/InsertTextSelection applies so that undo can correctly rejoin
// any tail pushed onto a new row by a capacity overflow.
func (e *Editor[T]) InsertText(text string, c *content.Content[T]) (content.Modification, bool) {
	before := e.selection
	if first, _, ok := e.selection.IsRange(); ok {
		removed := selectedText(c, e.selection)
		m, _ := c.RemoveSelection(e.selection)
		overflowed := tailOverflows(c, first, text)
		pastedEnd, wrapped := c.InsertStrAt(first, text)
		after := selection.NewCaret(pastedEnd)
		e.pushCommand(history.NewInsertTextSelection[T](e.selection, text, removed, overflowed, before, after))
		e.setSelectionSaveCol(after)
		return m.Merge(pasteModification(first.Row, text, overflowed || wrapped)), true
	}

	pos := e.selection.GetCursorPos()
	overflowed := tailOverflows(c, pos, text)
	pastedEnd, wrapped := c.InsertStrAt(pos, text)
	after := selection.NewCaret(pastedEnd)
	e.pushCommand(history.NewInsertText[T](pos, text, overflowed, before, after))
	e.setSelectionSaveCol(after)
	return pasteModification(pos.Row, text, overflowed || wrapped), true
}
