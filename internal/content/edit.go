package content

import (
	"strings"

	"github.com/bbodi/notecalc3-sub001/internal/selection"
)

// InsertStrAt writes text at pos, interpreting it as a sequence of scalar
// characters: '\r' is ignored, '\n' splits the line at the current write
// cursor, and any other character is inserted via InsertChar, wrapping to a
// newly inserted line when the current line is full. Returns the position
// immediately after the last written character and whether any line-wrap
// occurred because a row was full (as opposed to an explicit '\n').
func (c *Content[T]) InsertStrAt(pos selection.Pos, text string) (selection.Pos, bool) {
	row, col := pos.Row, pos.Column
	overflowed := false
	for _, ch := range text {
		switch ch {
		case '\r':
			continue
		case '\n':
			c.SplitLine(row, col)
			row++
			col = 0
		default:
			if !c.InsertChar(row, col, ch) {
				c.InsertLineAt(row + 1)
				row++
				col = 0
				overflowed = true
				c.InsertChar(row, col, ch)
			}
			col++
		}
	}
	return selection.NewPos(row, col), overflowed
}

// PasteEndPos computes where text alone would end if written at pos,
// wrapping purely on maxLineLen. It ignores whatever already follows pos on
// its row, so it is not the real post-insert cursor (InsertStrAt returns
// that); it is the inverse-selection boundary undo needs, since any tail
// that followed pos stays embedded in the row InsertStrAt filled rather than
// travelling with the pasted text.
func PasteEndPos(pos selection.Pos, text string, maxLineLen uint32) selection.Pos {
	row, col := pos.Row, pos.Column
	for _, ch := range text {
		switch ch {
		case '\r':
			continue
		case '\n':
			row++
			col = 0
		default:
			if col == maxLineLen {
				row++
				col = 0
			}
			col++
		}
	}
	return selection.NewPos(row, col)
}

// RemoveSelection deletes the text covered by sel. A caret selection is a
// no-op. A single-row selection shifts characters left; a multi-row
// selection removes every fully-contained row and merges the leading and
// trailing partial rows. Returns the resulting modification scope and true;
// returns false for a caret, and when the merged row would exceed
// MaxLineLen, in which case state is left unchanged.
func (c *Content[T]) RemoveSelection(sel selection.Selection) (Modification, bool) {
	first, second, ok := sel.IsRange()
	if !ok {
		return Modification{}, false
	}
	if first.Row == second.Row {
		row := &c.rows[first.Row]
		n := row.length - second.Column
		copy(row.chars[first.Column:first.Column+n], row.chars[second.Column:row.length])
		row.length = first.Column + n
		return SingleLine(first.Row), true
	}
	// Check the merge capacity before removing any row, so a refusal leaves
	// the document untouched.
	if first.Column+(c.LineLen(second.Row)-second.Column) > c.maxLineLen {
		return Modification{}, false
	}
	for r := second.Row - 1; r > first.Row; r-- {
		c.RemoveLineAt(r)
	}
	c.MergeWithNextRow(first.Row, first.Column, second.Column)
	return AllLinesFrom(first.Row), true
}

// WriteSelectionInto appends the characters covered by sel to out, with a
// '\n' separating rows. A caret selection appends nothing.
func (c *Content[T]) WriteSelectionInto(sel selection.Selection, out *strings.Builder) {
	first, second, ok := sel.IsRange()
	if !ok {
		return
	}
	if first.Row == second.Row {
		out.WriteString(string(c.rows[first.Row].chars[first.Column:second.Column]))
		return
	}
	out.WriteString(string(c.rows[first.Row].chars[first.Column:c.rows[first.Row].length]))
	for r := first.Row + 1; r < second.Row; r++ {
		out.WriteByte('\n')
		out.WriteString(string(c.rows[r].chars[:c.rows[r].length]))
	}
	out.WriteByte('\n')
	out.WriteString(string(c.rows[second.Row].chars[:second.Column]))
}
