package content

import (
	"strings"
	"testing"

	"github.com/bbodi/notecalc3-sub001/internal/selection"
)

func TestNewHasOneEmptyRow(t *testing.T) {
	c := New[struct{}](80)
	if c.LineCount() != 1 {
		t.Errorf("expected 1 row, got %d", c.LineCount())
	}
	if c.LineLen(0) != 0 {
		t.Errorf("expected empty row, got len %d", c.LineLen(0))
	}
	if c.MaxLineLen() != 80 {
		t.Errorf("expected max line len 80, got %d", c.MaxLineLen())
	}
}

func TestInsertAndRemoveCharRoundTrip(t *testing.T) {
	c := New[struct{}](80)
	c.InsertChar(0, 0, 'a')
	c.InsertChar(0, 1, 'b')
	c.InsertChar(0, 2, 'c')
	if got := c.GetContent(); got != "abc" {
		t.Fatalf("expected %q, got %q", "abc", got)
	}
	c.RemoveChar(0, 1)
	if got := c.GetContent(); got != "ac" {
		t.Errorf("expected %q, got %q", "ac", got)
	}
}

func TestInsertCharAtCapacityRefused(t *testing.T) {
	c := New[struct{}](3)
	if !c.InsertChar(0, 0, 'a') || !c.InsertChar(0, 1, 'b') || !c.InsertChar(0, 2, 'c') {
		t.Fatalf("expected first three inserts to succeed")
	}
	if c.InsertChar(0, 3, 'd') {
		t.Errorf("expected insert at capacity to be refused")
	}
	if got := c.GetContent(); got != "abc" {
		t.Errorf("expected state unchanged at %q, got %q", "abc", got)
	}
}

func TestSetCharGrowsRows(t *testing.T) {
	c := New[struct{}](80)
	c.SetChar(2, 0, 'x')
	if c.LineCount() != 3 {
		t.Fatalf("expected 3 rows, got %d", c.LineCount())
	}
	if c.GetChar(2, 0) != 'x' {
		t.Errorf("expected 'x' at (2,0)")
	}
}

func TestPushAndInsertLineAt(t *testing.T) {
	c := New[struct{}](80)
	c.InsertStrAt(selection.NewPos(0, 0), "a")
	c.PushLine()
	if c.LineCount() != 2 {
		t.Fatalf("expected 2 rows, got %d", c.LineCount())
	}
	c.InsertLineAt(1)
	if c.LineCount() != 3 {
		t.Fatalf("expected 3 rows, got %d", c.LineCount())
	}
	if c.LineLen(1) != 0 {
		t.Errorf("expected inserted row empty, got len %d", c.LineLen(1))
	}
}

func TestRemoveLineAt(t *testing.T) {
	c := New[struct{}](80)
	c.InitWith("aaa\nbbb\nccc")
	c.RemoveLineAt(1)
	if got := c.GetContent(); got != "aaa\nccc" {
		t.Errorf("expected %q, got %q", "aaa\nccc", got)
	}
}

func TestSwapLinesUpwardTwiceIsIdentity(t *testing.T) {
	c := New[struct{}](80)
	c.InitWith("aaa\nbbb")
	*c.GetData(0) = struct{}{}
	c.SwapLinesUpward(1)
	if got := c.GetContent(); got != "bbb\naaa" {
		t.Fatalf("expected swap once to give %q, got %q", "bbb\naaa", got)
	}
	c.SwapLinesUpward(1)
	if got := c.GetContent(); got != "aaa\nbbb" {
		t.Errorf("expected double swap to restore %q, got %q", "aaa\nbbb", got)
	}
}

func TestSwapLinesUpwardMovesMetadata(t *testing.T) {
	c := New[int](80)
	c.InitWith("aaa\nbbb")
	*c.GetData(0) = 1
	*c.GetData(1) = 2
	c.SwapLinesUpward(1)
	if *c.GetData(0) != 2 || *c.GetData(1) != 1 {
		t.Errorf("expected metadata to move with its row, got (%d,%d)", *c.GetData(0), *c.GetData(1))
	}
}

func TestDuplicateLineCopiesTextAndData(t *testing.T) {
	c := New[int](80)
	c.InitWith("abc\ndef")
	*c.GetData(0) = 7
	c.DuplicateLine(0)
	if c.LineCount() != 3 {
		t.Fatalf("expected 3 rows, got %d", c.LineCount())
	}
	if got := c.GetContent(); got != "abc\nabc\ndef" {
		t.Errorf("expected %q, got %q", "abc\nabc\ndef", got)
	}
	if *c.GetData(1) != 7 {
		t.Errorf("expected duplicated row to carry metadata, got %d", *c.GetData(1))
	}
}

func TestSplitLineThenMergeIsIdentity(t *testing.T) {
	c := New[struct{}](80)
	c.InitWith("hello world")
	c.SplitLine(0, 5)
	if got := c.GetContent(); got != "hello\n world" {
		t.Fatalf("expected split to give %q, got %q", "hello\n world", got)
	}
	if !c.MergeWithNextRow(0, 5, 0) {
		t.Fatalf("expected merge to succeed")
	}
	if got := c.GetContent(); got != "hello world" {
		t.Errorf("expected merge to restore %q, got %q", "hello world", got)
	}
}

func TestSplitLineKeepsMetadataWithUpperRow(t *testing.T) {
	c := New[int](80)
	c.InitWith("hello world")
	*c.GetData(0) = 42
	c.SplitLine(0, 5)
	if *c.GetData(0) != 42 {
		t.Errorf("expected upper row to keep metadata 42, got %d", *c.GetData(0))
	}
	if *c.GetData(1) != 0 {
		t.Errorf("expected new row to have default metadata, got %d", *c.GetData(1))
	}
}

func TestMergeWithNextRowRefusedOverCapacity(t *testing.T) {
	c := New[struct{}](10)
	c.InitWith("aaaaa\nbbbbbb")
	if c.MergeWithNextRow(0, 5, 0) {
		t.Errorf("expected merge exceeding capacity to be refused")
	}
	if got := c.GetContent(); got != "aaaaa\nbbbbbb" {
		t.Errorf("expected state unchanged, got %q", got)
	}
}

func TestMergeWithNextRowKeepsUpperMetadata(t *testing.T) {
	c := New[int](80)
	c.InitWith("aa\nbb")
	*c.GetData(0) = 1
	*c.GetData(1) = 2
	c.MergeWithNextRow(0, 2, 0)
	if *c.GetData(0) != 1 {
		t.Errorf("expected upper row metadata retained, got %d", *c.GetData(0))
	}
}

func TestInsertStrAtHandlesNewlineAndCR(t *testing.T) {
	c := New[struct{}](80)
	pos, overflow := c.InsertStrAt(selection.NewPos(0, 0), "ab\r\ncd")
	if overflow {
		t.Errorf("expected no overflow from an explicit newline")
	}
	if got := c.GetContent(); got != "ab\ncd" {
		t.Errorf("expected %q, got %q", "ab\ncd", got)
	}
	if pos != selection.NewPos(1, 2) {
		t.Errorf("expected final pos (1,2), got %s", pos)
	}
}

func TestInsertStrAtOverflowsToNewRow(t *testing.T) {
	c := New[struct{}](3)
	c.InsertStrAt(selection.NewPos(0, 0), "abc")
	pos, overflow := c.InsertStrAt(selection.NewPos(0, 3), "de")
	if !overflow {
		t.Errorf("expected overflow when a row fills up mid-insert")
	}
	if c.LineCount() != 2 {
		t.Fatalf("expected 2 rows after overflow, got %d", c.LineCount())
	}
	if got := c.GetContent(); got != "abc\nde" {
		t.Errorf("expected %q, got %q", "abc\nde", got)
	}
	if pos != selection.NewPos(1, 2) {
		t.Errorf("expected final pos (1,2), got %s", pos)
	}
}

func TestPasteEndPosMatchesRealInsertWhenRowHasNoTail(t *testing.T) {
	c := New[struct{}](3)
	c.InsertStrAt(selection.NewPos(0, 0), "abc")
	real, _ := c.InsertStrAt(selection.NewPos(0, 3), "de")
	naive := PasteEndPos(selection.NewPos(0, 3), "de", c.MaxLineLen())
	if naive != real {
		t.Errorf("expected PasteEndPos %s to match the real insert end %s when there's no tail", naive, real)
	}
}

func TestPasteEndPosIgnoresExistingTail(t *testing.T) {
	// A caret mid-row with a non-empty tail: PasteEndPos lays out the pasted
	// text alone, wrapping purely on maxLineLen, so it disagrees with the
	// real InsertStrAt result (which must also make room for the tail).
	got := PasteEndPos(selection.NewPos(0, 1), "XYZ", 4)
	if want := selection.NewPos(0, 4); got != want {
		t.Errorf("expected naive end %s ignoring tail, got %s", want, got)
	}
}

func TestRemoveSelectionCaretIsNoOp(t *testing.T) {
	c := New[struct{}](80)
	c.InitWith("abc")
	_, ok := c.RemoveSelection(selection.NewCaret(selection.NewPos(0, 1)))
	if ok {
		t.Errorf("expected caret selection removal to report no modification")
	}
	if got := c.GetContent(); got != "abc" {
		t.Errorf("expected state unchanged, got %q", got)
	}
}

func TestRemoveSelectionSingleRow(t *testing.T) {
	c := New[struct{}](80)
	c.InitWith("hello world")
	mod, ok := c.RemoveSelection(selection.NewRange(selection.NewPos(0, 5), selection.NewPos(0, 11)))
	if !ok {
		t.Fatalf("expected removal to succeed")
	}
	if mod.Kind != KindSingleLine || mod.Row != 0 {
		t.Errorf("expected SingleLine(0), got %+v", mod)
	}
	if got := c.GetContent(); got != "hello" {
		t.Errorf("expected %q, got %q", "hello", got)
	}
}

// Removing a selection spanning three 26-char rows, from (0,4) to (2,12),
// collapses to one row.
func TestRemoveSelectionMultiRow(t *testing.T) {
	c := New[struct{}](80)
	row := "abcdefghijklmnopqrstuvwxyz"
	c.InitWith(strings.Join([]string{row, row, row}, "\n"))
	sel := selection.NewRange(selection.NewPos(0, 4), selection.NewPos(2, 12))
	mod, ok := c.RemoveSelection(sel)
	if !ok {
		t.Fatalf("expected removal to succeed")
	}
	if mod.Kind != KindAllLinesFrom || mod.Row != 0 {
		t.Errorf("expected AllLinesFrom(0), got %+v", mod)
	}
	if c.LineCount() != 1 {
		t.Fatalf("expected a single remaining row, got %d", c.LineCount())
	}
	want := row[:4] + row[12:]
	if got := c.GetContent(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestWriteSelectionIntoMultiRow(t *testing.T) {
	c := New[struct{}](80)
	c.InitWith("abc\ndef\nghi")
	var b strings.Builder
	c.WriteSelectionInto(selection.NewRange(selection.NewPos(0, 1), selection.NewPos(2, 2)), &b)
	if got := b.String(); got != "bc\ndef\ngh" {
		t.Errorf("expected %q, got %q", "bc\ndef\ngh", got)
	}
}

func TestWriteSelectionIntoCaretWritesNothing(t *testing.T) {
	c := New[struct{}](80)
	c.InitWith("abc")
	var b strings.Builder
	c.WriteSelectionInto(selection.NewCaret(selection.NewPos(0, 1)), &b)
	if b.Len() != 0 {
		t.Errorf("expected nothing written for a caret, got %q", b.String())
	}
}

func TestGetContentInitWithIsFixedPoint(t *testing.T) {
	texts := []string{"", "abc", "abc\ndef", "a\n\nb", "trailing empty\n"}
	for _, text := range texts {
		c := New[struct{}](80)
		c.InitWith(text)
		if got := c.GetContent(); got != text {
			t.Errorf("InitWith(%q) then GetContent: expected %q, got %q", text, text, got)
		}
	}
}

func TestInitWithStripsCarriageReturn(t *testing.T) {
	c := New[struct{}](80)
	c.InitWith("abc\r\ndef\r\n")
	if got := c.GetContent(); got != "abc\ndef\n" {
		t.Errorf("expected %q, got %q", "abc\ndef\n", got)
	}
}

func TestGetLineCharsClipsToLength(t *testing.T) {
	c := New[struct{}](80)
	c.InsertChar(0, 0, 'x')
	if got := len(c.GetLineChars(0)); got != 1 {
		t.Errorf("expected GetLineChars to clip to length 1, got %d", got)
	}
}

func TestJumpWordForwardIgnoreWhitespaces(t *testing.T) {
	c := New[struct{}](80)
	c.InitWith("vvv asd 12")
	col := c.JumpWordForward(selection.NewPos(0, 0), IgnoreWhitespaces)
	if col != 3 {
		t.Errorf("expected jump to col 3, got %d", col)
	}
	col = c.JumpWordForward(selection.NewPos(0, 3), IgnoreWhitespaces)
	if col != 7 {
		t.Errorf("expected jump over space+asd to col 7, got %d", col)
	}
}

func TestJumpWordForwardConsiderWhitespacesIsMonotone(t *testing.T) {
	c := New[struct{}](80)
	c.InitWith("aa  bb")
	prev := uint32(0)
	for col := uint32(0); col <= c.LineLen(0); col++ {
		got := c.JumpWordForward(selection.NewPos(0, col), ConsiderWhitespaces)
		if got < prev {
			t.Errorf("expected monotone non-decreasing results, col %d gave %d after %d", col, got, prev)
		}
		if got < col {
			t.Errorf("expected result >= starting column, col %d gave %d", col, got)
		}
		prev = got
	}
}

func TestJumpWordBackwardMirror(t *testing.T) {
	c := New[struct{}](80)
	c.InitWith("vvv asd 12")
	col := c.JumpWordBackward(selection.NewPos(0, 10), IgnoreWhitespaces)
	if col != 8 {
		t.Errorf("expected jump back to col 8, got %d", col)
	}
}

func TestJumpWordBlockOnWhitespaceStopsAtBoundary(t *testing.T) {
	c := New[struct{}](80)
	c.InitWith("vvv asd")
	col := c.JumpWordForward(selection.NewPos(0, 0), BlockOnWhitespace)
	if col != 3 {
		t.Errorf("expected block-on-whitespace jump to stop at col 3, got %d", col)
	}
	col = c.JumpWordForward(selection.NewPos(0, 3), BlockOnWhitespace)
	if col != 3 {
		t.Errorf("expected jump starting on whitespace to not advance, got %d", col)
	}
}

func TestJumpWordQuoteTerminatesRun(t *testing.T) {
	c := New[struct{}](80)
	c.InitWith(`"abc"`)
	col := c.JumpWordForward(selection.NewPos(0, 0), IgnoreWhitespaces)
	if col != 1 {
		t.Errorf("expected quote to terminate its own run at col 1, got %d", col)
	}
}

func TestModificationMergeTakesWidestKindAndLowestRow(t *testing.T) {
	a := SingleLine(5)
	b := AllLinesFrom(2)
	got := a.Merge(b)
	if got.Kind != KindAllLinesFrom || got.Row != 2 {
		t.Errorf("expected AllLinesFrom(2), got %+v", got)
	}

	c := SingleLine(5).Merge(SingleLine(1))
	if c.Kind != KindSingleLine || c.Row != 1 {
		t.Errorf("expected SingleLine(1), got %+v", c)
	}
}
