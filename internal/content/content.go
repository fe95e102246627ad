package content

import (
	"strings"

	"github.com/bbodi/notecalc3-sub001/internal/selection"
)

// row is a single line: a pre-allocated rune buffer of capacity MaxLineLen
// and the count of valid leading characters, plus the opaque per-row
// payload the formula layer attaches to it.
type row[T any] struct {
	chars  []rune
	length uint32
	data   T
}

func newRow[T any](capacity uint32) row[T] {
	return row[T]{chars: make([]rune, capacity)}
}

func (r row[T]) clone() row[T] {
	clone := row[T]{chars: make([]rune, len(r.chars)), length: r.length, data: r.data}
	copy(clone.chars, r.chars)
	return clone
}

// Content is a growable sequence of fixed-capacity rows plus a parallel,
// per-row metadata payload of type T. It is not safe for concurrent use;
// the owning Editor Controller guarantees single-threaded access.
type Content[T any] struct {
	rows       []row[T]
	maxLineLen uint32
}

// Option configures a Content at construction time.
type Option[T any] func(*Content[T])

// WithInitialText loads s as the content's starting text, using the same
// rules as [Content.InitWith].
func WithInitialText[T any](s string) Option[T] {
	return func(c *Content[T]) {
		c.InitWith(s)
	}
}

// New returns a Content with a single empty row and the given per-row
// character capacity.
func New[T any](maxLineLen uint32, opts ...Option[T]) *Content[T] {
	c := &Content[T]{
		maxLineLen: maxLineLen,
		rows:       []row[T]{newRow[T](maxLineLen)},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MaxLineLen returns the configured per-row character capacity.
func (c *Content[T]) MaxLineLen() uint32 {
	return c.maxLineLen
}

// LineCount returns the number of rows. Always at least 1.
func (c *Content[T]) LineCount() uint32 {
	return uint32(len(c.rows))
}

// LineLen returns the number of valid characters in row r.
func (c *Content[T]) LineLen(r uint32) uint32 {
	return c.rows[r].length
}

// GetChar returns the character at (r, col). col must be < LineLen(r).
func (c *Content[T]) GetChar(r, col uint32) rune {
	return c.rows[r].chars[col]
}

// GetLineChars returns the valid character slice of row r. The slice
// aliases internal storage and must not be retained across mutations.
func (c *Content[T]) GetLineChars(r uint32) []rune {
	return c.rows[r].chars[:c.rows[r].length]
}

// GetData returns a pointer to row r's metadata payload.
func (c *Content[T]) GetData(r uint32) *T {
	return &c.rows[r].data
}

// SetChar writes ch at (r, col), growing the document with empty rows up to
// r if necessary. Intended only for initial content loading paths; it does
// not shift existing characters.
func (c *Content[T]) SetChar(r, col uint32, ch rune) {
	for uint32(len(c.rows)) <= r {
		c.rows = append(c.rows, newRow[T](c.maxLineLen))
	}
	row := &c.rows[r]
	row.chars[col] = ch
	if col+1 > row.length {
		row.length = col + 1
	}
}

// InsertChar inserts ch at column col of row r, shifting the trailing
// characters one column right. Returns false and leaves state unchanged if
// row r is already at capacity.
func (c *Content[T]) InsertChar(r, col uint32, ch rune) bool {
	row := &c.rows[r]
	if row.length == c.maxLineLen {
		return false
	}
	copy(row.chars[col+1:row.length+1], row.chars[col:row.length])
	row.chars[col] = ch
	row.length++
	return true
}

// RemoveChar removes the character at column col of row r, shifting the
// trailing characters one column left. Precondition: col < LineLen(r).
func (c *Content[T]) RemoveChar(r, col uint32) {
	row := &c.rows[r]
	copy(row.chars[col:row.length-1], row.chars[col+1:row.length])
	row.length--
}

// PushLine appends a fresh empty row with default metadata.
func (c *Content[T]) PushLine() {
	c.rows = append(c.rows, newRow[T](c.maxLineLen))
}

// InsertLineAt inserts a fresh empty row before row r, shifting r and
// following rows down by one.
func (c *Content[T]) InsertLineAt(r uint32) {
	c.rows = append(c.rows, row[T]{})
	copy(c.rows[r+1:], c.rows[r:len(c.rows)-1])
	c.rows[r] = newRow[T](c.maxLineLen)
}

// RemoveLineAt removes row r and its metadata, shifting following rows up.
// Precondition: LineCount() > 1 is not enforced here; callers that must
// preserve the line_count >= 1 invariant check it before calling.
func (c *Content[T]) RemoveLineAt(r uint32) {
	c.rows = append(c.rows[:r], c.rows[r+1:]...)
}

// SwapLinesUpward swaps rows r-1 and r, including metadata. Precondition:
// r >= 1.
func (c *Content[T]) SwapLinesUpward(r uint32) {
	c.rows[r-1], c.rows[r] = c.rows[r], c.rows[r-1]
}

// DuplicateLine inserts a copy of row r, including its metadata, at r+1.
func (c *Content[T]) DuplicateLine(r uint32) {
	dup := c.rows[r].clone()
	c.rows = append(c.rows, row[T]{})
	copy(c.rows[r+2:], c.rows[r+1:len(c.rows)-1])
	c.rows[r+1] = dup
}

// SplitLine inserts a new row at r+1, moving characters [c, LineLen(r)) of
// row r there in order and truncating row r to length c. Metadata of row r
// stays with the upper part; the new row gets default metadata.
func (c *Content[T]) SplitLine(r, col uint32) {
	upper := &c.rows[r]
	tail := append([]rune(nil), upper.chars[col:upper.length]...)
	upper.length = col

	c.rows = append(c.rows, row[T]{})
	copy(c.rows[r+2:], c.rows[r+1:len(c.rows)-1])
	newRow := newRow[T](c.maxLineLen)
	copy(newRow.chars, tail)
	newRow.length = uint32(len(tail))
	c.rows[r+1] = newRow
}

// MergeWithNextRow copies characters [lowerCol, LineLen(r+1)) of row r+1 to
// column upperCol of row r, then removes row r+1. Metadata of row r is
// retained. Returns false and leaves state unchanged if the merged length
// would exceed MaxLineLen.
func (c *Content[T]) MergeWithNextRow(r, upperCol, lowerCol uint32) bool {
	next := &c.rows[r+1]
	tailLen := next.length - lowerCol
	if upperCol+tailLen > c.maxLineLen {
		return false
	}
	upper := &c.rows[r]
	copy(upper.chars[upperCol:upperCol+tailLen], next.chars[lowerCol:next.length])
	upper.length = upperCol + tailLen
	c.RemoveLineAt(r + 1)
	return true
}

// GetContent serialises the document: rows joined by '\n', with no
// trailing newline unless the final row is empty.
func (c *Content[T]) GetContent() string {
	var b strings.Builder
	for i, row := range c.rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row.chars[:row.length]))
	}
	return b.String()
}

// InitWith resets the document to s, discarding all existing rows and
// metadata. Callers that must also discard undo/redo history do so
// separately; this method only touches the content store.
func (c *Content[T]) InitWith(s string) {
	c.rows = []row[T]{newRow[T](c.maxLineLen)}
	c.InsertStrAt(selection.NewPos(0, 0), s)
}
