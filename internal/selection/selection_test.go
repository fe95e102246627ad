package selection

import "testing"

func TestNewCaretIsNotRange(t *testing.T) {
	s := NewCaret(NewPos(1, 2))
	if _, _, ok := s.IsRange(); ok {
		t.Errorf("expected caret to not be a range")
	}
	if !s.IsCaret() {
		t.Errorf("expected IsCaret true")
	}
	if got := s.GetCursorPos(); got != NewPos(1, 2) {
		t.Errorf("expected cursor (1,2), got %s", got)
	}
}

func TestNewRangeNormalisesEqualEndpointsToCaret(t *testing.T) {
	p := NewPos(3, 4)
	s := NewRange(p, p)
	if !s.IsCaret() {
		t.Errorf("expected range with equal endpoints to normalise to a caret")
	}
}

func TestGetFirstSecondForward(t *testing.T) {
	s := NewRange(NewPos(0, 1), NewPos(0, 5))
	if got := s.GetFirst(); got != NewPos(0, 1) {
		t.Errorf("expected first (0,1), got %s", got)
	}
	if got := s.GetSecond(); got != NewPos(0, 5) {
		t.Errorf("expected second (0,5), got %s", got)
	}
	if s.IsBackward() {
		t.Errorf("expected forward selection")
	}
}

func TestGetFirstSecondBackward(t *testing.T) {
	s := NewRange(NewPos(0, 5), NewPos(0, 1))
	if got := s.GetFirst(); got != NewPos(0, 1) {
		t.Errorf("expected first (0,1), got %s", got)
	}
	if got := s.GetSecond(); got != NewPos(0, 5) {
		t.Errorf("expected second (0,5), got %s", got)
	}
	if !s.IsBackward() {
		t.Errorf("expected backward selection")
	}
}

func TestExtendCollapsesWhenReturningToAnchor(t *testing.T) {
	s := NewCaret(NewPos(0, 0))
	extended := s.Extend(NewPos(0, 5))
	if extended.IsCaret() {
		t.Errorf("expected extended selection to be a range")
	}
	collapsed := extended.Extend(NewPos(0, 0))
	if !collapsed.IsCaret() {
		t.Errorf("expected extend back to anchor to collapse to a caret")
	}
}

func TestExtendKeepsAnchorFixed(t *testing.T) {
	s := NewCaret(NewPos(2, 0))
	s = s.Extend(NewPos(2, 5))
	s = s.Extend(NewPos(0, 0))
	if s.Start != NewPos(2, 0) {
		t.Errorf("expected anchor to stay at (2,0), got %s", s.Start)
	}
	if s.GetCursorPos() != NewPos(0, 0) {
		t.Errorf("expected cursor at (0,0), got %s", s.GetCursorPos())
	}
	if !s.IsBackward() {
		t.Errorf("expected a backward selection after extending past the anchor")
	}
}

func TestCollapseToFirstAndSecond(t *testing.T) {
	s := NewRange(NewPos(1, 5), NewPos(0, 0))
	if got := s.CollapseToFirst(); got.GetCursorPos() != NewPos(0, 0) {
		t.Errorf("expected collapse-to-first at (0,0), got %s", got.GetCursorPos())
	}
	if got := s.CollapseToSecond(); got.GetCursorPos() != NewPos(1, 5) {
		t.Errorf("expected collapse-to-second at (1,5), got %s", got.GetCursorPos())
	}
}

func TestRowRangeCaret(t *testing.T) {
	s := NewCaret(NewPos(3, 2))
	first, last := s.RowRange()
	if first != 3 || last != 3 {
		t.Errorf("expected (3,3), got (%d,%d)", first, last)
	}
}

func TestRowRangeMultiRow(t *testing.T) {
	s := NewRange(NewPos(2, 9), NewPos(0, 1))
	first, last := s.RowRange()
	if first != 0 || last != 2 {
		t.Errorf("expected (0,2), got (%d,%d)", first, last)
	}
}

func TestForEachRowInclExcl(t *testing.T) {
	s := NewRange(NewPos(0, 0), NewPos(2, 0))
	var incl, excl []uint32
	s.ForEachRowIncl(func(r uint32) { incl = append(incl, r) })
	s.ForEachRowExcl(func(r uint32) { excl = append(excl, r) })
	wantIncl := []uint32{0, 1, 2}
	wantExcl := []uint32{0, 1}
	if len(incl) != len(wantIncl) {
		t.Fatalf("expected %d inclusive rows, got %d", len(wantIncl), len(incl))
	}
	for i, r := range wantIncl {
		if incl[i] != r {
			t.Errorf("incl[%d]: expected %d, got %d", i, r, incl[i])
		}
	}
	if len(excl) != len(wantExcl) {
		t.Fatalf("expected %d exclusive rows, got %d", len(wantExcl), len(excl))
	}
	for i, r := range wantExcl {
		if excl[i] != r {
			t.Errorf("excl[%d]: expected %d, got %d", i, r, excl[i])
		}
	}
}

func TestPosLessAndLinearOrder(t *testing.T) {
	a := NewPos(0, 5)
	b := NewPos(1, 0)
	if !a.Less(b) {
		t.Errorf("expected (0,5) < (1,0)")
	}
	if b.Less(a) {
		t.Errorf("expected (1,0) not < (0,5)")
	}
	if !a.LessEqual(a) {
		t.Errorf("expected LessEqual reflexive")
	}
}

func TestPosWithColumn(t *testing.T) {
	p := NewPos(4, 1)
	got := p.WithColumn(9)
	if got.Row != 4 || got.Column != 9 {
		t.Errorf("expected (4,9), got %s", got)
	}
	if p.Column != 1 {
		t.Errorf("expected original Pos unaffected, got %s", p)
	}
}
