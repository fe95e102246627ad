package editor

import (
	"strings"

	"github.com/bbodi/notecalc3-sub001/internal/content"
	"github.com/bbodi/notecalc3-sub001/internal/history"
	"github.com/bbodi/notecalc3-sub001/internal/selection"
)

func selectedText[T any](c *content.Content[T], sel selection.Selection) string {
	var b strings.Builder
	c.WriteSelectionInto(sel, &b)
	return b.String()
}

// handleChar implements the plain Char(c) edit contract.
func (e *Editor[T]) handleChar(ch rune, c *content.Content[T]) (content.Modification, bool) {
	before := e.selection
	if first, second, ok := e.selection.IsRange(); ok {
		fits := first.Column+(c.LineLen(second.Row)-second.Column)+1 <= c.MaxLineLen()
		if !fits {
			return content.Modification{}, false
		}
		removed := selectedText(c, e.selection)
		m, _ := c.RemoveSelection(e.selection)
		c.InsertChar(first.Row, first.Column, ch)
		after := selection.NewCaret(first.WithColumn(first.Column + 1))
		e.pushCommand(history.NewInsertCharSelection[T](ch, e.selection, removed, before, after))
		e.setSelectionSaveCol(after)
		return m.Merge(content.SingleLine(first.Row)), true
	}

	pos := e.selection.GetCursorPos()
	if !c.InsertChar(pos.Row, pos.Column, ch) {
		return content.Modification{}, false
	}
	after := selection.NewCaret(pos.WithColumn(pos.Column + 1))
	e.pushCommand(history.NewInsertChar[T](pos, ch, before, after))
	e.setSelectionSaveCol(after)
	return content.SingleLine(pos.Row), true
}

// handleEnter implements the Enter edit contract.
func (e *Editor[T]) handleEnter(c *content.Content[T]) (content.Modification, bool) {
	before := e.selection
	if first, _, ok := e.selection.IsRange(); ok {
		removed := selectedText(c, e.selection)
		m, _ := c.RemoveSelection(e.selection)
		c.SplitLine(first.Row, first.Column)
		after := selection.NewCaret(selection.NewPos(first.Row+1, 0))
		e.pushCommand(history.NewEnterSelection[T](e.selection, removed, before, after))
		e.setSelectionSaveCol(after)
		return m.Merge(content.AllLinesFrom(first.Row)), true
	}

	pos := e.selection.GetCursorPos()
	if pos.Column == 0 {
		c.InsertLineAt(pos.Row)
	} else {
		c.SplitLine(pos.Row, pos.Column)
	}
	after := selection.NewCaret(selection.NewPos(pos.Row+1, 0))
	e.pushCommand(history.NewEnter[T](pos, before, after))
	e.setSelectionSaveCol(after)
	return content.AllLinesFrom(pos.Row), true
}

// handleBackspace implements the Backspace edit contract.
func (e *Editor[T]) handleBackspace(c *content.Content[T]) (content.Modification, bool) {
	before := e.selection
	if _, _, ok := e.selection.IsRange(); ok {
		return e.deleteRange(c, true)
	}

	cur := e.selection.GetCursorPos()
	if cur.Column > 0 {
		removed := c.GetChar(cur.Row, cur.Column-1)
		c.RemoveChar(cur.Row, cur.Column-1)
		after := selection.NewCaret(cur.WithColumn(cur.Column - 1))
		e.pushCommand(history.NewBackspace[T](cur, removed, before, after))
		e.setSelectionSaveCol(after)
		return content.SingleLine(cur.Row), true
	}
	if cur.Row == 0 {
		return content.Modification{}, false
	}
	if c.LineLen(cur.Row-1) == 0 {
		removedData := *c.GetData(cur.Row - 1)
		c.RemoveLineAt(cur.Row - 1)
		after := selection.NewCaret(selection.NewPos(cur.Row-1, 0))
		e.pushCommand(history.NewRemoveEmptyRow[T](cur.Row-1, removedData, before, after))
		e.setSelectionSaveCol(after)
		return content.AllLinesFrom(cur.Row - 1), true
	}

	prevLen := c.LineLen(cur.Row - 1)
	upperData := *c.GetData(cur.Row - 1)
	lowerData := *c.GetData(cur.Row)
	if !c.MergeWithNextRow(cur.Row-1, prevLen, 0) {
		return content.Modification{}, false
	}
	after := selection.NewCaret(selection.NewPos(cur.Row-1, prevLen))
	e.pushCommand(history.NewMergeLineWithNextRow[T](cur.Row-1, upperData, lowerData, cur, selection.NewPos(cur.Row-1, prevLen), before, after))
	e.setSelectionSaveCol(after)
	return content.AllLinesFrom(cur.Row - 1), true
}

// handleDel implements the Del edit contract.
func (e *Editor[T]) handleDel(c *content.Content[T]) (content.Modification, bool) {
	before := e.selection
	if _, _, ok := e.selection.IsRange(); ok {
		return e.deleteRange(c, false)
	}

	cur := e.selection.GetCursorPos()
	if cur.Column < c.LineLen(cur.Row) {
		removed := c.GetChar(cur.Row, cur.Column)
		c.RemoveChar(cur.Row, cur.Column)
		e.pushCommand(history.NewDel[T](cur, removed, before, before))
		return content.SingleLine(cur.Row), true
	}
	if cur.Row+1 >= c.LineCount() {
		return content.Modification{}, false
	}
	if c.LineLen(cur.Row) == 0 {
		removedData := *c.GetData(cur.Row)
		c.RemoveLineAt(cur.Row)
		e.pushCommand(history.NewRemoveEmptyRow[T](cur.Row, removedData, before, before))
		return content.AllLinesFrom(cur.Row), true
	}

	upperData := *c.GetData(cur.Row)
	lowerData := *c.GetData(cur.Row + 1)
	if !c.MergeWithNextRow(cur.Row, cur.Column, 0) {
		return content.Modification{}, false
	}
	e.pushCommand(history.NewMergeLineWithNextRow[T](cur.Row, upperData, lowerData, cur, cur, before, before))
	return content.AllLinesFrom(cur.Row), true
}

// deleteRange is the shared implementation of Backspace/Del over a range
// selection: both collapse the selection to its first endpoint.
func (e *Editor[T]) deleteRange(c *content.Content[T], isBackspace bool) (content.Modification, bool) {
	before := e.selection
	removed := selectedText(c, e.selection)
	m, ok := c.RemoveSelection(e.selection)
	if !ok {
		return content.Modification{}, false
	}
	first := e.selection.GetFirst()
	after := selection.NewCaret(first)
	if isBackspace {
		e.pushCommand(history.NewBackspaceSelection[T](e.selection, removed, before, after))
	} else {
		e.pushCommand(history.NewDelSelection[T](e.selection, removed, before, after))
	}
	e.setSelectionSaveCol(after)
	return m, true
}

// handleCtrlBackspace implements Ctrl+Backspace: jump one word and delete
// the intervening text on the current line only.
func (e *Editor[T]) handleCtrlBackspace(c *content.Content[T]) (content.Modification, bool) {
	before := e.selection
	cur := e.selection.GetCursorPos()
	jumpCol := c.JumpWordBackward(cur, content.IgnoreWhitespaces)
	if jumpCol == cur.Column {
		e.pushCommand(history.NewBackspaceCtrl[T](cur, jumpCol, nil, before, before))
		return content.SingleLine(cur.Row), true
	}
	removed := string(c.GetLineChars(cur.Row)[jumpCol:cur.Column])
	sel := selection.NewRange(selection.NewPos(cur.Row, jumpCol), cur)
	c.RemoveSelection(sel)
	after := selection.NewCaret(selection.NewPos(cur.Row, jumpCol))
	e.pushCommand(history.NewBackspaceCtrl[T](cur, jumpCol, &removed, before, after))
	e.setSelectionSaveCol(after)
	return content.SingleLine(cur.Row), true
}

// handleCtrlDel implements Ctrl+Del: symmetric to Ctrl+Backspace.
func (e *Editor[T]) handleCtrlDel(c *content.Content[T]) (content.Modification, bool) {
	before := e.selection
	cur := e.selection.GetCursorPos()
	jumpCol := c.JumpWordForward(cur, content.IgnoreWhitespaces)
	if jumpCol == cur.Column {
		e.pushCommand(history.NewDelCtrl[T](cur, jumpCol, nil, before, before))
		return content.SingleLine(cur.Row), true
	}
	removed := string(c.GetLineChars(cur.Row)[cur.Column:jumpCol])
	sel := selection.NewRange(cur, selection.NewPos(cur.Row, jumpCol))
	c.RemoveSelection(sel)
	e.pushCommand(history.NewDelCtrl[T](cur, jumpCol, &removed, before, before))
	return content.SingleLine(cur.Row), true
}

// handleTab inserts spaces to round the column up to the next multiple of
// four, one InsertChar command per space.
func (e *Editor[T]) handleTab(c *content.Content[T]) (content.Modification, bool) {
	cur := e.selection.GetCursorPos()
	target := (cur.Column/4 + 1) * 4
	var mod content.Modification
	changed := false
	for cur.Column < target {
		m, ok := e.handleChar(' ', c)
		if !ok {
			break
		}
		if !changed {
			mod = m
		} else {
			mod = mod.Merge(m)
		}
		changed = true
		cur = e.selection.GetCursorPos()
	}
	return mod, changed
}

// handleCtrlEnter inserts an empty row at the caret's row.
func (e *Editor[T]) handleCtrlEnter(c *content.Content[T]) (content.Modification, bool) {
	before := e.selection
	row := e.selection.GetCursorPos().Row
	c.InsertLineAt(row)
	after := selection.NewCaret(selection.NewPos(row, 0))
	e.pushCommand(history.NewInsertEmptyRow[T](row, before, after))
	e.setSelectionSaveCol(after)
	return content.AllLinesFrom(row), true
}

// handleDuplicateLine implements Ctrl+D.
func (e *Editor[T]) handleDuplicateLine(c *content.Content[T]) (content.Modification, bool) {
	before := e.selection
	row := e.selection.GetCursorPos().Row
	c.DuplicateLine(row)
	text := string(c.GetLineChars(row))
	after := selection.NewCaret(selection.NewPos(row+1, e.selection.GetCursorPos().Column))
	e.pushCommand(history.NewDuplicateLine[T](selection.NewPos(row, 0), text, before, after))
	e.setSelectionSaveCol(after)
	return content.AllLinesFrom(row), true
}

// handleSwap implements Ctrl+Shift+Up/Down row swaps. dir is -1 for up, +1
// for down. No-op at document boundaries.
func (e *Editor[T]) handleSwap(c *content.Content[T], dir int) (content.Modification, bool) {
	before := e.selection
	cur := e.selection.GetCursorPos()
	if dir < 0 {
		if cur.Row == 0 {
			return content.Modification{}, false
		}
		c.SwapLinesUpward(cur.Row)
		after := selection.NewCaret(selection.NewPos(cur.Row-1, cur.Column))
		e.pushCommand(history.NewSwapLineUpwards[T](cur, before, after))
		e.setSelectionSaveCol(after)
		return content.AllLinesFrom(cur.Row - 1), true
	}
	if cur.Row+1 >= c.LineCount() {
		return content.Modification{}, false
	}
	c.SwapLinesUpward(cur.Row + 1)
	after := selection.NewCaret(selection.NewPos(cur.Row+1, cur.Column))
	e.pushCommand(history.NewSwapLineDownwards[T](cur, before, after))
	e.setSelectionSaveCol(after)
	return content.AllLinesFrom(cur.Row), true
}
