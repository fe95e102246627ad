package history

import (
	"strings"

	"github.com/bbodi/notecalc3-sub001/internal/content"
	"github.com/bbodi/notecalc3-sub001/internal/selection"
)

// Command is one reversible mutation of a Content[T]. Redo applies the
// forward operation (used both for the initial execution and for replaying
// a redo group); Undo applies the inverse. Before/After report the
// selection the Editor Controller should restore after undoing or
// redoing this command.
type Command[T any] interface {
	Redo(c *content.Content[T]) content.Modification
	Undo(c *content.Content[T]) content.Modification
	Before() selection.Selection
	After() selection.Selection
	Description() string
}

func modForSpan(row uint32, text string) content.Modification {
	if strings.ContainsRune(text, '\n') {
		return content.AllLinesFrom(row)
	}
	return content.SingleLine(row)
}

// base carries the before/after selection snapshot every command needs;
// embed it to get Before/After for free.
type base struct {
	before selection.Selection
	after  selection.Selection
}

func (b base) Before() selection.Selection { return b.before }
func (b base) After() selection.Selection  { return b.after }

// InsertChar records a single plain character insertion at a caret.
type InsertChar[T any] struct {
	base
	Pos selection.Pos
	Ch  rune
}

// NewInsertChar builds an InsertChar command; after should already reflect
// the caret one column past Pos.
func NewInsertChar[T any](pos selection.Pos, ch rune, before, after selection.Selection) *InsertChar[T] {
	return &InsertChar[T]{base: base{before, after}, Pos: pos, Ch: ch}
}

func (cmd *InsertChar[T]) Redo(c *content.Content[T]) content.Modification {
	c.InsertChar(cmd.Pos.Row, cmd.Pos.Column, cmd.Ch)
	return content.SingleLine(cmd.Pos.Row)
}

func (cmd *InsertChar[T]) Undo(c *content.Content[T]) content.Modification {
	c.RemoveChar(cmd.Pos.Row, cmd.Pos.Column)
	return content.SingleLine(cmd.Pos.Row)
}

func (cmd *InsertChar[T]) Description() string { return "insert char" }

// InsertCharSelection records a plain character typed over a range
// selection: the selection is removed, then the character is inserted.
type InsertCharSelection[T any] struct {
	base
	Ch           rune
	Sel          selection.Selection
	SelectedText string
}

func NewInsertCharSelection[T any](ch rune, sel selection.Selection, selectedText string, before, after selection.Selection) *InsertCharSelection[T] {
	return &InsertCharSelection[T]{base: base{before, after}, Ch: ch, Sel: sel, SelectedText: selectedText}
}

func (cmd *InsertCharSelection[T]) Redo(c *content.Content[T]) content.Modification {
	m, _ := c.RemoveSelection(cmd.Sel)
	first := cmd.Sel.GetFirst()
	c.InsertChar(first.Row, first.Column, cmd.Ch)
	return m.Merge(content.SingleLine(first.Row))
}

func (cmd *InsertCharSelection[T]) Undo(c *content.Content[T]) content.Modification {
	first := cmd.Sel.GetFirst()
	c.RemoveChar(first.Row, first.Column)
	c.InsertStrAt(first, cmd.SelectedText)
	return modForSpan(first.Row, cmd.SelectedText)
}

func (cmd *InsertCharSelection[T]) Description() string { return "type over selection" }

// Backspace records a plain Backspace that removed the character to the
// left of the caret (col > 0 case).
type Backspace[T any] struct {
	base
	Pos     selection.Pos
	Removed rune
}

func NewBackspace[T any](pos selection.Pos, removed rune, before, after selection.Selection) *Backspace[T] {
	return &Backspace[T]{base: base{before, after}, Pos: pos, Removed: removed}
}

func (cmd *Backspace[T]) Redo(c *content.Content[T]) content.Modification {
	c.RemoveChar(cmd.Pos.Row, cmd.Pos.Column-1)
	return content.SingleLine(cmd.Pos.Row)
}

func (cmd *Backspace[T]) Undo(c *content.Content[T]) content.Modification {
	c.InsertChar(cmd.Pos.Row, cmd.Pos.Column-1, cmd.Removed)
	return content.SingleLine(cmd.Pos.Row)
}

func (cmd *Backspace[T]) Description() string { return "backspace" }

// BackspaceSelection records a Backspace that deleted a range selection.
type BackspaceSelection[T any] struct {
	base
	Sel     selection.Selection
	Removed string
}

func NewBackspaceSelection[T any](sel selection.Selection, removed string, before, after selection.Selection) *BackspaceSelection[T] {
	return &BackspaceSelection[T]{base: base{before, after}, Sel: sel, Removed: removed}
}

func (cmd *BackspaceSelection[T]) Redo(c *content.Content[T]) content.Modification {
	m, _ := c.RemoveSelection(cmd.Sel)
	return m
}

func (cmd *BackspaceSelection[T]) Undo(c *content.Content[T]) content.Modification {
	first := cmd.Sel.GetFirst()
	c.InsertStrAt(first, cmd.Removed)
	return modForSpan(first.Row, cmd.Removed)
}

func (cmd *BackspaceSelection[T]) Description() string { return "backspace selection" }

// BackspaceCtrl records a Ctrl+Backspace word-delete on the current line.
// Removed is nil when the jump did not advance (a vacuous command).
type BackspaceCtrl[T any] struct {
	base
	Pos     selection.Pos
	JumpCol uint32
	Removed *string
}

func NewBackspaceCtrl[T any](pos selection.Pos, jumpCol uint32, removed *string, before, after selection.Selection) *BackspaceCtrl[T] {
	return &BackspaceCtrl[T]{base: base{before, after}, Pos: pos, JumpCol: jumpCol, Removed: removed}
}

func (cmd *BackspaceCtrl[T]) Redo(c *content.Content[T]) content.Modification {
	if cmd.Removed == nil {
		return content.SingleLine(cmd.Pos.Row)
	}
	sel := selection.NewRange(selection.NewPos(cmd.Pos.Row, cmd.JumpCol), cmd.Pos)
	c.RemoveSelection(sel)
	return content.SingleLine(cmd.Pos.Row)
}

func (cmd *BackspaceCtrl[T]) Undo(c *content.Content[T]) content.Modification {
	if cmd.Removed == nil {
		return content.SingleLine(cmd.Pos.Row)
	}
	c.InsertStrAt(selection.NewPos(cmd.Pos.Row, cmd.JumpCol), *cmd.Removed)
	return content.SingleLine(cmd.Pos.Row)
}

func (cmd *BackspaceCtrl[T]) Description() string { return "ctrl+backspace" }

// Del records a plain Del that removed the character under the caret.
type Del[T any] struct {
	base
	Pos     selection.Pos
	Removed rune
}

func NewDel[T any](pos selection.Pos, removed rune, before, after selection.Selection) *Del[T] {
	return &Del[T]{base: base{before, after}, Pos: pos, Removed: removed}
}

func (cmd *Del[T]) Redo(c *content.Content[T]) content.Modification {
	c.RemoveChar(cmd.Pos.Row, cmd.Pos.Column)
	return content.SingleLine(cmd.Pos.Row)
}

func (cmd *Del[T]) Undo(c *content.Content[T]) content.Modification {
	c.InsertChar(cmd.Pos.Row, cmd.Pos.Column, cmd.Removed)
	return content.SingleLine(cmd.Pos.Row)
}

func (cmd *Del[T]) Description() string { return "delete" }

// DelSelection records a Del that deleted a range selection.
type DelSelection[T any] struct {
	base
	Sel     selection.Selection
	Removed string
}

func NewDelSelection[T any](sel selection.Selection, removed string, before, after selection.Selection) *DelSelection[T] {
	return &DelSelection[T]{base: base{before, after}, Sel: sel, Removed: removed}
}

func (cmd *DelSelection[T]) Redo(c *content.Content[T]) content.Modification {
	m, _ := c.RemoveSelection(cmd.Sel)
	return m
}

func (cmd *DelSelection[T]) Undo(c *content.Content[T]) content.Modification {
	first := cmd.Sel.GetFirst()
	c.InsertStrAt(first, cmd.Removed)
	return modForSpan(first.Row, cmd.Removed)
}

func (cmd *DelSelection[T]) Description() string { return "delete selection" }

// DelCtrl records a Ctrl+Del word-delete on the current line.
type DelCtrl[T any] struct {
	base
	Pos     selection.Pos
	JumpCol uint32
	Removed *string
}

func NewDelCtrl[T any](pos selection.Pos, jumpCol uint32, removed *string, before, after selection.Selection) *DelCtrl[T] {
	return &DelCtrl[T]{base: base{before, after}, Pos: pos, JumpCol: jumpCol, Removed: removed}
}

func (cmd *DelCtrl[T]) Redo(c *content.Content[T]) content.Modification {
	if cmd.Removed == nil {
		return content.SingleLine(cmd.Pos.Row)
	}
	sel := selection.NewRange(cmd.Pos, selection.NewPos(cmd.Pos.Row, cmd.JumpCol))
	c.RemoveSelection(sel)
	return content.SingleLine(cmd.Pos.Row)
}

func (cmd *DelCtrl[T]) Undo(c *content.Content[T]) content.Modification {
	if cmd.Removed == nil {
		return content.SingleLine(cmd.Pos.Row)
	}
	c.InsertStrAt(cmd.Pos, *cmd.Removed)
	return content.SingleLine(cmd.Pos.Row)
}

func (cmd *DelCtrl[T]) Description() string { return "ctrl+delete" }

// RemoveEmptyRow records removing a row that was already empty: the
// Backspace-into-empty-previous-row and Del-of-empty-current-row shortcuts.
// Unlike MergeLineWithNextRow it does not touch the surviving neighbour's
// metadata at all, which is the point of using it instead of a merge: the
// neighbour's data moves up (or stays) purely by the other row's removal
// shifting indices.
type RemoveEmptyRow[T any] struct {
	base
	Row         uint32
	RemovedData T
}

func NewRemoveEmptyRow[T any](row uint32, removedData T, before, after selection.Selection) *RemoveEmptyRow[T] {
	return &RemoveEmptyRow[T]{base: base{before, after}, Row: row, RemovedData: removedData}
}

func (cmd *RemoveEmptyRow[T]) Redo(c *content.Content[T]) content.Modification {
	c.RemoveLineAt(cmd.Row)
	return content.AllLinesFrom(cmd.Row)
}

func (cmd *RemoveEmptyRow[T]) Undo(c *content.Content[T]) content.Modification {
	c.InsertLineAt(cmd.Row)
	*c.GetData(cmd.Row) = cmd.RemovedData
	return content.AllLinesFrom(cmd.Row)
}

func (cmd *RemoveEmptyRow[T]) Description() string { return "remove empty row" }

// Enter records a plain Enter at a caret.
type Enter[T any] struct {
	base
	Pos selection.Pos
}

func NewEnter[T any](pos selection.Pos, before, after selection.Selection) *Enter[T] {
	return &Enter[T]{base: base{before, after}, Pos: pos}
}

func (cmd *Enter[T]) Redo(c *content.Content[T]) content.Modification {
	if cmd.Pos.Column == 0 {
		c.InsertLineAt(cmd.Pos.Row)
	} else {
		c.SplitLine(cmd.Pos.Row, cmd.Pos.Column)
	}
	return content.AllLinesFrom(cmd.Pos.Row)
}

func (cmd *Enter[T]) Undo(c *content.Content[T]) content.Modification {
	c.MergeWithNextRow(cmd.Pos.Row, cmd.Pos.Column, 0)
	return content.AllLinesFrom(cmd.Pos.Row)
}

func (cmd *Enter[T]) Description() string { return "enter" }

// EnterSelection records an Enter pressed over a range selection.
type EnterSelection[T any] struct {
	base
	Sel          selection.Selection
	SelectedText string
}

func NewEnterSelection[T any](sel selection.Selection, selectedText string, before, after selection.Selection) *EnterSelection[T] {
	return &EnterSelection[T]{base: base{before, after}, Sel: sel, SelectedText: selectedText}
}

func (cmd *EnterSelection[T]) Redo(c *content.Content[T]) content.Modification {
	m, _ := c.RemoveSelection(cmd.Sel)
	first := cmd.Sel.GetFirst()
	c.SplitLine(first.Row, first.Column)
	return m.Merge(content.AllLinesFrom(first.Row))
}

func (cmd *EnterSelection[T]) Undo(c *content.Content[T]) content.Modification {
	first := cmd.Sel.GetFirst()
	c.MergeWithNextRow(first.Row, first.Column, 0)
	c.InsertStrAt(first, cmd.SelectedText)
	return content.AllLinesFrom(first.Row)
}

func (cmd *EnterSelection[T]) Description() string { return "enter over selection" }

// InsertEmptyRow records a Ctrl+Enter inserting a blank row at Row.
type InsertEmptyRow[T any] struct {
	base
	Row uint32
}

func NewInsertEmptyRow[T any](row uint32, before, after selection.Selection) *InsertEmptyRow[T] {
	return &InsertEmptyRow[T]{base: base{before, after}, Row: row}
}

func (cmd *InsertEmptyRow[T]) Redo(c *content.Content[T]) content.Modification {
	c.InsertLineAt(cmd.Row)
	return content.AllLinesFrom(cmd.Row)
}

func (cmd *InsertEmptyRow[T]) Undo(c *content.Content[T]) content.Modification {
	c.RemoveLineAt(cmd.Row)
	return content.AllLinesFrom(cmd.Row)
}

func (cmd *InsertEmptyRow[T]) Description() string { return "insert empty row" }

// MergeLineWithNextRow records a Backspace/Del merge of a row with the row
// below it (as opposed to the remove_line_at shortcut used when the upper
// row is empty). The lower row may be empty.
type MergeLineWithNextRow[T any] struct {
	base
	UpperRow           uint32
	UpperData          T
	LowerData          T
	PosBefore, PosAfter selection.Pos
}

func NewMergeLineWithNextRow[T any](upperRow uint32, upperData, lowerData T, posBefore, posAfter selection.Pos, before, after selection.Selection) *MergeLineWithNextRow[T] {
	return &MergeLineWithNextRow[T]{
		base: base{before, after}, UpperRow: upperRow, UpperData: upperData, LowerData: lowerData,
		PosBefore: posBefore, PosAfter: posAfter,
	}
}

func (cmd *MergeLineWithNextRow[T]) Redo(c *content.Content[T]) content.Modification {
	c.MergeWithNextRow(cmd.UpperRow, cmd.PosAfter.Column, 0)
	return content.AllLinesFrom(cmd.UpperRow)
}

func (cmd *MergeLineWithNextRow[T]) Undo(c *content.Content[T]) content.Modification {
	c.SplitLine(cmd.UpperRow, cmd.PosAfter.Column)
	*c.GetData(cmd.UpperRow) = cmd.UpperData
	*c.GetData(cmd.UpperRow + 1) = cmd.LowerData
	return content.AllLinesFrom(cmd.UpperRow)
}

func (cmd *MergeLineWithNextRow[T]) Description() string { return "merge line with next row" }

// SwapLineUpwards records a Ctrl+Shift+Up row swap. It is its own inverse:
// swapping rows r-1 and r twice restores the original order.
type SwapLineUpwards[T any] struct {
	base
	Pos selection.Pos
}

func NewSwapLineUpwards[T any](pos selection.Pos, before, after selection.Selection) *SwapLineUpwards[T] {
	return &SwapLineUpwards[T]{base: base{before, after}, Pos: pos}
}

func (cmd *SwapLineUpwards[T]) Redo(c *content.Content[T]) content.Modification {
	c.SwapLinesUpward(cmd.Pos.Row)
	return content.AllLinesFrom(cmd.Pos.Row - 1)
}

func (cmd *SwapLineUpwards[T]) Undo(c *content.Content[T]) content.Modification {
	c.SwapLinesUpward(cmd.Pos.Row)
	return content.AllLinesFrom(cmd.Pos.Row - 1)
}

func (cmd *SwapLineUpwards[T]) Description() string { return "swap line upwards" }

// SwapLineDownwards records a Ctrl+Shift+Down row swap. Like
// SwapLineUpwards it is its own inverse.
type SwapLineDownwards[T any] struct {
	base
	Pos selection.Pos
}

func NewSwapLineDownwards[T any](pos selection.Pos, before, after selection.Selection) *SwapLineDownwards[T] {
	return &SwapLineDownwards[T]{base: base{before, after}, Pos: pos}
}

func (cmd *SwapLineDownwards[T]) Redo(c *content.Content[T]) content.Modification {
	c.SwapLinesUpward(cmd.Pos.Row + 1)
	return content.AllLinesFrom(cmd.Pos.Row)
}

func (cmd *SwapLineDownwards[T]) Undo(c *content.Content[T]) content.Modification {
	c.SwapLinesUpward(cmd.Pos.Row + 1)
	return content.AllLinesFrom(cmd.Pos.Row)
}

func (cmd *SwapLineDownwards[T]) Description() string { return "swap line downwards" }

// DuplicateLine records a Ctrl+D row duplication.
type DuplicateLine[T any] struct {
	base
	Pos          selection.Pos
	InsertedText string
}

func NewDuplicateLine[T any](pos selection.Pos, insertedText string, before, after selection.Selection) *DuplicateLine[T] {
	return &DuplicateLine[T]{base: base{before, after}, Pos: pos, InsertedText: insertedText}
}

func (cmd *DuplicateLine[T]) Redo(c *content.Content[T]) content.Modification {
	c.DuplicateLine(cmd.Pos.Row)
	return content.AllLinesFrom(cmd.Pos.Row)
}

func (cmd *DuplicateLine[T]) Undo(c *content.Content[T]) content.Modification {
	c.RemoveLineAt(cmd.Pos.Row + 1)
	return content.AllLinesFrom(cmd.Pos.Row)
}

func (cmd *DuplicateLine[T]) Description() string { return "duplicate line" }

// CutLine records a Ctrl+X without a range, cutting the current row
// including its trailing newline (unless it is the last row).
type CutLine[T any] struct {
	base
	Pos     selection.Pos
	Removed string
	WasLast bool
}

func NewCutLine[T any](pos selection.Pos, removed string, wasLast bool, before, after selection.Selection) *CutLine[T] {
	return &CutLine[T]{base: base{before, after}, Pos: pos, Removed: removed, WasLast: wasLast}
}

func (cmd *CutLine[T]) Redo(c *content.Content[T]) content.Modification {
	if cmd.WasLast {
		for c.LineLen(cmd.Pos.Row) > 0 {
			c.RemoveChar(cmd.Pos.Row, 0)
		}
	} else {
		c.RemoveLineAt(cmd.Pos.Row)
	}
	return content.AllLinesFrom(cmd.Pos.Row)
}

func (cmd *CutLine[T]) Undo(c *content.Content[T]) content.Modification {
	if !cmd.WasLast {
		c.InsertLineAt(cmd.Pos.Row)
	}
	c.InsertStrAt(selection.NewPos(cmd.Pos.Row, 0), cmd.Removed)
	return content.AllLinesFrom(cmd.Pos.Row)
}

func (cmd *CutLine[T]) Description() string { return "cut line" }

// InsertText records a bulk paste (insert_text) at a caret. Overflowed
// records whether whatever followed Pos on its row at paste time got bumped
// onto a fresh row by the paste, per PasteEndPos; it is computed once at
// paste time (from the pre-paste tail length) because once the paste runs,
// that tail is no longer distinguishable from the rest of the row it ends
// up sharing.
type InsertText[T any] struct {
	base
	Pos        selection.Pos
	Text       string
	Overflowed bool
}

func NewInsertText[T any](pos selection.Pos, text string, overflowed bool, before, after selection.Selection) *InsertText[T] {
	return &InsertText[T]{base: base{before, after}, Pos: pos, Text: text, Overflowed: overflowed}
}

func (cmd *InsertText[T]) Redo(c *content.Content[T]) content.Modification {
	_, wrapped := c.InsertStrAt(cmd.Pos, cmd.Text)
	if cmd.Overflowed || wrapped {
		return content.AllLinesFrom(cmd.Pos.Row)
	}
	return modForSpan(cmd.Pos.Row, cmd.Text)
}

// Undo removes exactly the span the pasted text itself occupies, using
// PasteEndPos rather than the real post-paste cursor: the real cursor
// position can't tell pasted characters apart from whatever tail text got
// swept along with them. If Overflowed, that tail ended up on its own row
// once the paste filled Pos.Row, so it still needs rejoining onto Pos.Row.
func (cmd *InsertText[T]) Undo(c *content.Content[T]) content.Modification {
	pasteEnd := content.PasteEndPos(cmd.Pos, cmd.Text, c.MaxLineLen())
	c.RemoveSelection(selection.NewRange(cmd.Pos, pasteEnd))
	if cmd.Overflowed {
		c.MergeWithNextRow(cmd.Pos.Row, c.LineLen(cmd.Pos.Row), 0)
	}
	return content.AllLinesFrom(cmd.Pos.Row)
}

func (cmd *InsertText[T]) Description() string { return "paste" }

// InsertTextSelection records a bulk paste (insert_text) over a range
// selection. See InsertText for what Overflowed tracks.
type InsertTextSelection[T any] struct {
	base
	Sel        selection.Selection
	Text       string
	Removed    string
	Overflowed bool
}

func NewInsertTextSelection[T any](sel selection.Selection, text, removed string, overflowed bool, before, after selection.Selection) *InsertTextSelection[T] {
	return &InsertTextSelection[T]{base: base{before, after}, Sel: sel, Text: text, Removed: removed, Overflowed: overflowed}
}

func (cmd *InsertTextSelection[T]) Redo(c *content.Content[T]) content.Modification {
	m, _ := c.RemoveSelection(cmd.Sel)
	first := cmd.Sel.GetFirst()
	_, wrapped := c.InsertStrAt(first, cmd.Text)
	if cmd.Overflowed || wrapped {
		return m.Merge(content.AllLinesFrom(first.Row))
	}
	return m.Merge(modForSpan(first.Row, cmd.Text))
}

func (cmd *InsertTextSelection[T]) Undo(c *content.Content[T]) content.Modification {
	first := cmd.Sel.GetFirst()
	pasteEnd := content.PasteEndPos(first, cmd.Text, c.MaxLineLen())
	c.RemoveSelection(selection.NewRange(first, pasteEnd))
	if cmd.Overflowed {
		c.MergeWithNextRow(first.Row, c.LineLen(first.Row), 0)
	}
	c.InsertStrAt(first, cmd.Removed)
	return content.AllLinesFrom(first.Row)
}

func (cmd *InsertTextSelection[T]) Description() string { return "paste over selection" }
