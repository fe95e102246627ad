package content

import "github.com/bbodi/notecalc3-sub001/internal/selection"

// WordJumpMode selects how JumpWordForward/JumpWordBackward classify the
// initial run when starting a jump.
type WordJumpMode int

const (
	// IgnoreWhitespaces skips any leading whitespace before choosing the
	// run class to jump across.
	IgnoreWhitespaces WordJumpMode = iota
	// ConsiderWhitespaces treats a leading whitespace character as its own
	// run, jumping across it rather than skipping it.
	ConsiderWhitespaces
	// BlockOnWhitespace stops the jump immediately at a whitespace
	// boundary instead of skipping or crossing it. Used by word-select.
	BlockOnWhitespace
)

type charClass int

const (
	classWhitespace charClass = iota
	classWord
	classQuote
	classOther
)

func isASCIIWhitespace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func isASCIIAlnum(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')
}

func classify(ch rune) charClass {
	switch {
	case isASCIIWhitespace(ch):
		return classWhitespace
	case ch == '"':
		return classQuote
	case ch == '_' || isASCIIAlnum(ch):
		return classWord
	default:
		return classOther
	}
}

// JumpWordForward returns the column reached by stepping from pos.Column
// over one classification run, per mode. The quote character terminates
// its run immediately after being consumed.
func (c *Content[T]) JumpWordForward(pos selection.Pos, mode WordJumpMode) uint32 {
	chars := c.GetLineChars(pos.Row)
	n := uint32(len(chars))
	col := pos.Column
	if col >= n {
		return n
	}
	switch mode {
	case IgnoreWhitespaces:
		for col < n && isASCIIWhitespace(chars[col]) {
			col++
		}
		if col == n {
			return n
		}
	case BlockOnWhitespace:
		if isASCIIWhitespace(chars[col]) {
			return col
		}
	}
	cls := classify(chars[col])
	if cls == classQuote {
		return col + 1
	}
	for col < n && classify(chars[col]) == cls {
		col++
	}
	return col
}

// JumpWordBackward is the mirror of JumpWordForward, stepping leftward from
// pos.Column.
func (c *Content[T]) JumpWordBackward(pos selection.Pos, mode WordJumpMode) uint32 {
	chars := c.GetLineChars(pos.Row)
	col := pos.Column
	if col == 0 {
		return 0
	}
	switch mode {
	case IgnoreWhitespaces:
		for col > 0 && isASCIIWhitespace(chars[col-1]) {
			col--
		}
		if col == 0 {
			return 0
		}
	case BlockOnWhitespace:
		if isASCIIWhitespace(chars[col-1]) {
			return col
		}
	}
	cls := classify(chars[col-1])
	if cls == classQuote {
		return col - 1
	}
	for col > 0 && classify(chars[col-1]) == cls {
		col--
	}
	return col
}
