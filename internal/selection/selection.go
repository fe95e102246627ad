package selection

import "fmt"

// Selection is either a caret (End absent) or a range running from Start
// (the anchor) to End (the active end). A range whose End equals Start is
// never observable: every constructor and mutator normalises it back to a
// caret.
type Selection struct {
	Start  Pos
	End    Pos
	hasEnd bool
}

// NewCaret returns a caret selection at pos.
func NewCaret(pos Pos) Selection {
	return Selection{Start: pos}
}

// NewRange returns a range selection anchored at start with active end end.
// If start equals end the result normalises to a caret.
func NewRange(start, end Pos) Selection {
	if start == end {
		return NewCaret(start)
	}
	return Selection{Start: start, End: end, hasEnd: true}
}

// IsRange reports whether the selection spans a non-empty range and, if so,
// returns its endpoints in linear order.
func (s Selection) IsRange() (first, second Pos, ok bool) {
	if !s.hasEnd {
		return Pos{}, Pos{}, false
	}
	return s.GetFirst(), s.GetSecond(), true
}

// IsCaret reports whether the selection has no active end.
func (s Selection) IsCaret() bool {
	return !s.hasEnd
}

// GetFirst returns the endpoint that sorts first in linear order.
func (s Selection) GetFirst() Pos {
	if !s.hasEnd || s.Start.LessEqual(s.End) {
		return s.Start
	}
	return s.End
}

// GetSecond returns the endpoint that sorts last in linear order.
func (s Selection) GetSecond() Pos {
	if !s.hasEnd || s.Start.LessEqual(s.End) {
		if s.hasEnd {
			return s.End
		}
		return s.Start
	}
	return s.Start
}

// IsBackward reports whether the active end precedes the anchor in linear
// order, i.e. the user dragged or shift-selected leftward/upward.
func (s Selection) IsBackward() bool {
	return s.hasEnd && s.End.Less(s.Start)
}

// GetCursorPos returns the position the caret is rendered at: the active end
// when one exists, otherwise the anchor.
func (s Selection) GetCursorPos() Pos {
	if s.hasEnd {
		return s.End
	}
	return s.Start
}

// Extend keeps the anchor fixed and moves the active end to newEnd,
// collapsing to a caret when newEnd equals the anchor.
func (s Selection) Extend(newEnd Pos) Selection {
	return NewRange(s.Start, newEnd)
}

// CollapseToFirst returns a caret at the selection's first endpoint.
func (s Selection) CollapseToFirst() Selection {
	return NewCaret(s.GetFirst())
}

// CollapseToSecond returns a caret at the selection's second endpoint.
func (s Selection) CollapseToSecond() Selection {
	return NewCaret(s.GetSecond())
}

// RowRange returns the inclusive first and last row touched by the
// selection. For a caret both values equal the caret's row.
func (s Selection) RowRange() (firstRow, lastRow uint32) {
	first, second, ok := s.IsRange()
	if !ok {
		return s.Start.Row, s.Start.Row
	}
	return first.Row, second.Row
}

// ForEachRowIncl calls f once for every row touched by the selection,
// inclusive of the last row.
func (s Selection) ForEachRowIncl(f func(row uint32)) {
	first, last := s.RowRange()
	for r := first; r <= last; r++ {
		f(r)
	}
}

// ForEachRowExcl calls f once for every row touched by the selection,
// excluding the last row. Useful for operations that treat the final row's
// partial content specially.
func (s Selection) ForEachRowExcl(f func(row uint32)) {
	first, last := s.RowRange()
	for r := first; r < last; r++ {
		f(r)
	}
}

func (s Selection) String() string {
	if !s.hasEnd {
		return fmt.Sprintf("caret%s", s.Start)
	}
	arrow := "->"
	if s.IsBackward() {
		arrow = "<-"
	}
	return fmt.Sprintf("%s%s%s", s.Start, arrow, s.End)
}
